package colour

import "errors"

// ErrInvalidFormat is returned when a colour string cannot be decoded.
// It is the only error the conversion functions produce; callers should keep
// their previous value when they see it.
var ErrInvalidFormat = errors.New("invalid colour format")
