package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type jsonResponse struct {
	status int
	body   any
}

// JSON renders body as-is, without an envelope.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	data, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(j.status)
	_, err = w.Write(data)
	return err
}

type blobResponse struct {
	contentType string
	data        []byte
}

// Blob renders raw bytes with the given content type.
func Blob(contentType string, data []byte) Response {
	return blobResponse{contentType: contentType, data: data}
}

func (b blobResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.data)
	return err
}

// Error returns a Response that hands err to the wrapper's ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }
