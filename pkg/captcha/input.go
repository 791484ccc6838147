package captcha

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadFile returns the trimmed contents of the file at path.
func ReadFile(path string) (string, error) {
	if path == "" {
		return "", &FileAccessError{Path: path, Err: errors.New("path not specified")}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	slog.Debug("input read", "path", path, "bytes", len(b))

	return strings.TrimSpace(string(b)), nil
}

// Load reads and parses the digit sequence stored at path.
func Load(path string) (Digits, error) {
	s, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	d, err := Parse(s)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing input file %s", path)
	}
	return d, nil
}
