package portalclient

import (
	"errors"
	"fmt"
)

var ErrBaseURLRequired = errors.New("portal base url is required")

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal: http %d %s", e.Status, e.Code)
	}
	return fmt.Sprintf("portal: http %d %s: %s", e.Status, e.Code, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == "not_found"
}
