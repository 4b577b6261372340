package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("catalog unavailable")
	ErrUnexpectedPayload = errors.New("unexpected catalog payload")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog responded %s", e.Status)
	}
	return fmt.Sprintf("catalog responded %s: %s", e.Status, e.Body)
}
