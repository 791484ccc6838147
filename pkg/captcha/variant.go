package captcha

import (
	"fmt"
	"strings"
)

// SumFunc computes a checksum over a digit sequence.
type SumFunc func(Digits) (int, error)

// Variant is a named pairing rule.
type Variant struct {
	Name  string
	Usage string
	Sum   SumFunc
}

var (
	// Next pairs each digit with its circular successor.
	Next = Variant{
		Name:  "next",
		Usage: "Sum digits that match the next digit, wrapping around at the end",
		Sum:   SumNext,
	}

	// Half pairs each digit with the one halfway around the sequence.
	Half = Variant{
		Name:  "half",
		Usage: "Sum digits that match the digit halfway around, counted twice",
		Sum:   SumHalf,
	}

	// Variants lists all supported variants.
	Variants = []Variant{Next, Half}
)

// Strict returns the variant with odd-length input rejected where the rule
// depends on an even split.
func (v Variant) Strict() Variant {
	if v.Name == Half.Name {
		v.Sum = SumHalfStrict
	}
	return v
}

// VariantByName looks up a variant.
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant: %s", name)
}
