package notifications

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrFanoutPartialFailure marks a fan-out that failed after the parent
	// write committed. It is a warning: the parent stands.
	ErrFanoutPartialFailure = errors.New("notification fan-out incomplete")
)
