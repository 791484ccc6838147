package captcha

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyInput is returned by the next variant when there are no digits.
	ErrEmptyInput = errors.New("input is empty")

	// ErrOddLength is returned by the strict half variant for odd-length input.
	ErrOddLength = errors.New("input length is odd")
)

// ParseError reports a character that is not a decimal digit.
type ParseError struct {
	Offset int
	Char   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid digit %q at offset %d", e.Char, e.Offset)
}

// FileAccessError reports an input file that is missing or unreadable.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("error reading input file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
