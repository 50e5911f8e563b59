package binder

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
)

// MaxBodySize caps JSON request bodies.
const MaxBodySize = 64 << 10

// JSON decodes the request body into v. A missing Content-Type is accepted;
// any other media type than application/json is rejected. Unknown fields
// are ignored.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			mediaType, _, err := mime.ParseMediaType(ct)
			if err != nil || mediaType != "application/json" {
				return errors.Join(ErrUnsupportedMediaType, err)
			}
		}

		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodySize))
		if err := dec.Decode(v); err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				return ErrBodyTooLarge
			case errors.Is(err, io.EOF):
				return errors.Join(ErrInvalidJSON, errors.New("empty body"))
			default:
				return errors.Join(ErrInvalidJSON, err)
			}
		}

		if dec.More() {
			return errors.Join(ErrInvalidJSON, errors.New("unexpected data after JSON value"))
		}
		return nil
	}
}
