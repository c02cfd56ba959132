package toggle

import "errors"

var (
	ErrNotFound   = errors.New("toggle target not found")
	ErrInvalidKey = errors.New("invalid toggle key")
)
