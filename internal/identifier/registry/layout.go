package registry

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/identifier/domain"
)

// Layout lists the shapes of a format without check digits. In a shape, a is a letter,
// 9 a digit, n a non-zero digit and x a letter or digit; any other byte, uppercase
// letters included, is literal.
type Layout []string

func shapeClass(c byte) string {
	switch c {
	case 'a':
		return upperChars
	case '9':
		return digitChars
	case 'n':
		return digitChars[1:]
	case 'x':
		return digitChars + upperChars
	}
	return ""
}

func matchShape(shape, s string) bool {
	if len(shape) != len(s) {
		return false
	}
	for i := 0; i < len(shape); i++ {
		chars := shapeClass(shape[i])
		if chars == "" {
			if s[i] != shape[i] {
				return false
			}
			continue
		}
		if strings.IndexByte(chars, s[i]) < 0 {
			return false
		}
	}
	return true
}

func (l Layout) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	shape := l[rng.IntN(len(l))]
	b := make([]byte, len(shape))
	for i := 0; i < len(shape); i++ {
		if chars := shapeClass(shape[i]); chars != "" {
			b[i] = chars[rng.IntN(len(chars))]
		} else {
			b[i] = shape[i]
		}
	}
	return domain.Result{Raw: string(b)}, nil
}

func (l Layout) Validate(raw string) bool {
	s := Compact(raw)
	for _, shape := range l {
		if matchShape(shape, s) {
			return true
		}
	}
	return false
}

func (l Layout) Format(raw string) string {
	return Compact(raw)
}
