package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries a status code and a client-safe body. Cause is kept for
// logging and never rendered.
type HTTPError struct {
	Status int
	Body   any
	Cause  error
}

func (e HTTPError) Error() string {
	if e.Cause != nil {
		return http.StatusText(e.Status) + ": " + e.Cause.Error()
	}
	return http.StatusText(e.Status)
}

func (e HTTPError) Unwrap() error { return e.Cause }

// DefaultErrorHandler renders HTTPError bodies as JSON and everything else as
// an opaque 500.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.Status != 0 {
		_ = JSON(httpErr.Status, httpErr.Body).Render(w, r)
		return
	}
	_ = JSON(http.StatusInternalServerError, map[string]string{"status": "error"}).Render(w, r)
}
