package personalid

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

// compact uppercases raw and removes display separators.
func compact(raw string) string {
	return registry.StripSeparators(strings.ToUpper(strings.TrimSpace(raw)))
}

// digitsOf returns the digits of raw once compacted, requiring exactly n of them.
func digitsOf(raw string, n int) ([]int, bool) {
	s := compact(raw)
	if len(s) != n {
		return nil, false
	}
	return checksum.Digits(s)
}

func randomDigits(rng *rand.Rand, n int) []int {
	d := make([]int, n)
	for i := range d {
		d[i] = rng.IntN(10)
	}
	return d
}

// number reads digits as a base-10 integer.
func number(digits []int) int {
	n := 0
	for _, d := range digits {
		n = n*10 + d
	}
	return n
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// pad renders v as n zero-padded digits.
func pad(v, n int) string {
	return fmt.Sprintf("%0*d", n, v)
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
