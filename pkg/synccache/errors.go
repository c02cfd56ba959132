package synccache

import "errors"

var (
	ErrClosed          = errors.New("sync cache closed")
	ErrUnknownKey      = errors.New("item not in cache")
	ErrMutationPending = errors.New("mutation already pending for item")
	ErrNotPending      = errors.New("mutation already resolved")
	ErrSuperseded      = errors.New("refresh superseded")
	// ErrRolledBack wraps the cause of a failed optimistic mutation.
	ErrRolledBack = errors.New("optimistic change rolled back")
)
