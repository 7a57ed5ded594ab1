package bankaccount

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

func randomDigits(rng *rand.Rand, n int) []int {
	d := make([]int, n)
	for i := range d {
		d[i] = rng.IntN(10)
	}
	return d
}

func randomNumber(rng *rand.Rand, n int) string {
	return checksum.String(randomDigits(rng, n))
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// compactDigits strips display separators and reports whether the remainder is a
// non-empty run of digits.
func compactDigits(raw string) (string, bool) {
	s := registry.StripSeparators(strings.TrimSpace(raw))
	return s, checksum.IsNumeric(s)
}

// groups splits s at the given cut points; the final group takes the rest.
func groups(s string, sep string, cuts ...int) string {
	parts := make([]string, 0, len(cuts)+1)
	prev := 0
	for _, cut := range cuts {
		if cut > len(s) {
			break
		}
		parts = append(parts, s[prev:cut])
		prev = cut
	}
	if prev < len(s) {
		parts = append(parts, s[prev:])
	}
	return strings.Join(parts, sep)
}

// chunks splits s into runs of n separated by a single space.
func chunks(s string, n int) string {
	var sb strings.Builder
	for i := 0; i < len(s); i += n {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i:min(i+n, len(s))])
	}
	return sb.String()
}
