package twofa

import (
	"bytes"
	"encoding/json"
	"errors"
)

type decryptSeedRequest struct {
	EncryptedSeed string `json:"encrypted_seed"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// errorResponse is every failure body: status is always "error", the message
// is a fixed string and never carries the underlying cause.
type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func newErrorResponse(msg string) errorResponse {
	return errorResponse{Status: "error", Error: msg}
}

type generateResponse struct {
	Code     string `json:"code"`
	ValidFor int    `json:"valid_for"`
}

type verifyRequest struct {
	Code codeValue `json:"code"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// codeValue accepts a JSON string or a bare JSON number. Numbers are kept as
// written, so 012345 style codes must be sent as strings.
type codeValue string

func (c *codeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = codeValue(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.New("code must be a string or number")
		}
		*c = codeValue(n.String())
		return nil
	}
}
