package registry

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// Descriptor is a length and charset description for countries without a dedicated
// codec (tier b). Generated values carry no check digit.
type Descriptor struct {
	Code        string `yaml:"code"`
	FormatName  string `yaml:"name"`
	Length      int    `yaml:"length"`
	NumericOnly bool   `yaml:"numeric"`
}

const (
	digitChars = "0123456789"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func (d Descriptor) validate() error {
	if d.Length <= 0 || d.Length > 64 {
		return errors.Wrapf(ErrInvalidTable, "descriptor %s has length %d", d.Code, d.Length)
	}
	return nil
}

type genericCodec struct {
	desc Descriptor
}

// Generate never starts a numeric value with zero and always starts an alphanumeric
// value with a letter.
func (g genericCodec) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	b := make([]byte, g.desc.Length)
	if g.desc.NumericOnly {
		b[0] = digitChars[1+rng.IntN(9)]
		for i := 1; i < len(b); i++ {
			b[i] = digitChars[rng.IntN(10)]
		}
	} else {
		charset := digitChars + upperChars
		b[0] = upperChars[rng.IntN(len(upperChars))]
		for i := 1; i < len(b); i++ {
			b[i] = charset[rng.IntN(len(charset))]
		}
	}
	raw := string(b)
	return domain.Result{Raw: raw, Formatted: raw}, nil
}

func (g genericCodec) Validate(raw string) bool {
	value := strings.ToUpper(StripSeparators(raw))
	if len(value) != g.desc.Length {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		isDigit := c >= '0' && c <= '9'
		if g.desc.NumericOnly && !isDigit {
			return false
		}
		if !isDigit && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func (g genericCodec) Format(raw string) string {
	return strings.ToUpper(StripSeparators(raw))
}

// StripSeparators removes the display separators (space, hyphen, dot, slash) from s.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '/', '\t':
			return -1
		}
		return r
	}, s)
}
