// Package byterange parses the -b/--bytes argument of fin.
package byterange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyFile = errors.New("file is empty")
	ErrSyntax    = errors.New("invalid byte range")
)

// Range is an inclusive byte range. Clamped reports that the requested end
// was past the last byte and was moved back to it.
type Range struct {
	Start   int
	End     int
	Clamped bool
}

// Parse reads "start:end" for data of the given size. Either side may be
// omitted ("start:", ":end", or a bare "start"); the defaults are the first
// and last byte. An end past the last byte is clamped. An inverted range is
// returned as is so that the renderer can reject it.
func Parse(spec string, size int) (Range, error) {
	if size <= 0 {
		return Range{}, ErrEmptyFile
	}
	r := Range{Start: 0, End: size - 1}

	spec = strings.TrimSpace(spec)
	if spec == "" {
		return r, nil
	}

	startText, endText, _ := strings.Cut(spec, ":")
	if startText != "" {
		n, err := parseOffset(startText)
		if err != nil {
			return Range{}, err
		}
		r.Start = n
	}
	if endText != "" {
		n, err := parseOffset(endText)
		if err != nil {
			return Range{}, err
		}
		r.End = n
	}

	if r.End > size-1 {
		r.End = size - 1
		r.Clamped = true
	}
	return r, nil
}

func parseOffset(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrSyntax, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrSyntax, n)
	}
	return n, nil
}
