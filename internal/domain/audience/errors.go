package audience

import "errors"

var ErrInvalidAudience = errors.New("invalid audience")
