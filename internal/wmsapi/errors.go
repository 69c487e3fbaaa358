package wmsapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is matched by errors.Is for missing records.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is matched by errors.Is when the token is missing or expired.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnknownResource is returned by Client.Resource for an unknown name.
	ErrUnknownResource = errors.New("unknown resource")
)

// APIError is a failed backend call: either an HTTP error status or an
// envelope whose code is not 200.
type APIError struct {
	Op     string
	Status int
	Code   int
	Msg    string
}

func (e *APIError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s: wms api error: status=%d, code=%d, message=%s", e.Op, e.Status, e.Code, msg)
}

// Is maps HTTP and envelope codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound || e.Code == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Code == http.StatusUnauthorized
	}
	return false
}
