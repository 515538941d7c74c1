package fileinspector

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrConfiguration is the parent of every format specification error.
	ErrConfiguration   = errors.New("configuration error")
	ErrEmptyFormat     = fmt.Errorf("%w: must provide a list of display formats", ErrConfiguration)
	ErrUnsupportedCode = fmt.Errorf("%w: unsupported format", ErrConfiguration)

	ErrRange             = errors.New("invalid byte range")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidTemplate   = errors.New("invalid template")
)
