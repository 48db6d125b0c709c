package auth

import (
	"errors"
	"net/http"

	"github.com/abdulkader3/expence-go/internal/client/api"
	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// ErrSessionExpired is returned when the refresh token is no longer accepted
// and the only way forward is a fresh login.
var ErrSessionExpired = errors.New("session expired, please log in again")

// ErrorInfo is the classified, user-actionable form of an auth failure.
// DuplicateEmail maps 409 (registration with a known email), RateLimited maps
// 429, Timeout is carried through from the transport error. FieldErrors is
// populated from a 400 body's errors array and is never nil.
type ErrorInfo struct {
	Message        string
	FieldErrors    []wire.FieldError
	DuplicateEmail bool
	RateLimited    bool
	Timeout        bool
}

// Classify turns any failure into a structured ErrorInfo. It is pure and
// total: no I/O, and every input, including nil and errors from outside the
// transport, yields a well-formed result.
func Classify(err error) ErrorInfo {
	info := ErrorInfo{FieldErrors: []wire.FieldError{}}
	if err == nil {
		return info
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		info.Message = err.Error()
		return info
	}

	info.Message = apiErr.Message
	info.Timeout = apiErr.Timeout
	switch apiErr.Status {
	case http.StatusConflict:
		info.DuplicateEmail = true
	case http.StatusTooManyRequests:
		info.RateLimited = true
	case http.StatusBadRequest:
		if len(apiErr.Fields) > 0 {
			info.FieldErrors = apiErr.Fields
		}
	}
	return info
}
