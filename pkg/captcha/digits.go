package captcha

import (
	"iter"
	"strings"
)

// Digits is an ordered sequence of decimal digit values.
type Digits []int

// Parse trims surrounding whitespace from s and converts every character
// into its digit value.
func Parse(s string) (Digits, error) {
	s = strings.TrimSpace(s)
	d := make(Digits, 0, len(s))
	for i, r := range s {
		v, ok := digitValue(r)
		if !ok {
			return nil, &ParseError{Offset: i, Char: r}
		}
		d = append(d, v)
	}
	return d, nil
}

func digitValue(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// String returns the digits in their textual form.
func (d Digits) String() string {
	var b strings.Builder
	b.Grow(len(d))
	for _, v := range d {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

// CircularPairs yields each digit with its successor, wrapping the last
// digit back to the first.
func (d Digits) CircularPairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n := len(d)
		for i := 0; i < n; i++ {
			if !yield(d[i], d[(i+1)%n]) {
				return
			}
		}
	}
}

// MirrorPairs yields digit i of the first half with digit i of the second
// half. For odd lengths the first half is the shorter one and the last
// digit is never paired.
func (d Digits) MirrorPairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		half := len(d) / 2
		for i := 0; i < half; i++ {
			if !yield(d[i], d[half+i]) {
				return
			}
		}
	}
}
