package api

import (
	"encoding/json"
	"fmt"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// Error is the single error shape every transport failure normalizes to.
// Status 0 means no HTTP response was received (network-level failure);
// Timeout marks the distinguished subtype of that. Everything crossing the
// transport boundary is either a typed result or an *Error.
type Error struct {
	Message string
	Code    string
	Fields  []wire.FieldError
	Body    json.RawMessage
	Status  int
	Timeout bool
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsNetwork reports whether the failure happened below the HTTP layer
// (no response reached the client). Timeouts count as network failures.
func (e *Error) IsNetwork() bool {
	return e.Status == 0
}

func newTimeoutError() *Error {
	return &Error{Message: "request timed out", Status: 0, Timeout: true}
}

func newNetworkError(err error) *Error {
	return &Error{Message: err.Error(), Status: 0}
}

// newStatusError builds an *Error from a non-2xx response body. The body is
// parsed as the backend's error shape when it is JSON; otherwise the raw text
// is kept in Body and a generic message is synthesized.
func newStatusError(status int, contentType string, body []byte) *Error {
	e := &Error{
		Status:  status,
		Body:    json.RawMessage(body),
		Message: fmt.Sprintf("request failed with status %d", status),
	}
	if !isJSONContentType(contentType) {
		return e
	}
	var errResp wire.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return e
	}
	if errResp.Message != "" {
		e.Message = errResp.Message
	}
	e.Code = errResp.Code
	e.Fields = errResp.Errors
	return e
}
