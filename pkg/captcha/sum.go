package captcha

import (
	"iter"
	"log/slog"

	"github.com/pkg/errors"
)

// SumNext adds every digit that matches its circular successor.
func SumNext(d Digits) (int, error) {
	if len(d) == 0 {
		return 0, ErrEmptyInput
	}
	return sumMatches(d.CircularPairs(), 1), nil
}

// SumHalf adds, twice, every first-half digit that matches the digit at the
// same position in the second half. Odd-length input is truncated.
func SumHalf(d Digits) (int, error) {
	if len(d)%2 != 0 {
		slog.Debug("odd length input, last digit not paired", "length", len(d))
	}
	return sumMatches(d.MirrorPairs(), 2), nil
}

// SumHalfStrict is SumHalf that rejects odd-length input.
func SumHalfStrict(d Digits) (int, error) {
	if len(d)%2 != 0 {
		return 0, errors.Wrapf(ErrOddLength, "length %d", len(d))
	}
	return SumHalf(d)
}

// SumNextString parses s and applies SumNext.
func SumNextString(s string) (int, error) {
	return sumString(s, SumNext)
}

// SumHalfString parses s and applies SumHalf.
func SumHalfString(s string) (int, error) {
	return sumString(s, SumHalf)
}

func sumString(s string, fn SumFunc) (int, error) {
	d, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return fn(d)
}

func sumMatches(pairs iter.Seq2[int, int], weight int) int {
	var sum int
	for a, b := range pairs {
		if a == b {
			sum += a * weight
		}
	}
	return sum
}
