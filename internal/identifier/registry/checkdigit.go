package registry

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/solver"
)

// NonZero is the Lead set that forbids a leading zero.
const NonZero = "123456789"

// CheckDigit is a numeric value ending in one check digit computed from the digits
// before it. Most business and VAT numbers fit this shape.
type CheckDigit struct {
	Length   int
	// Lead lists the digits allowed in first position; empty allows any.
	Lead     string
	// Prefixes lists fixed leading digits; one is drawn per value.
	Prefixes []string
	// Check returns the check digit for body, false when body has none and must be redrawn.
	Check    func(body []int) (int, bool)
	// Render formats a valid raw value; nil leaves it compacted.
	Render   func(raw string) string
}

func (c CheckDigit) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	var raw string
	err := solver.Redraw(0, func() bool {
		body := c.draw(rng)
		check, ok := c.Check(body)
		if ok {
			raw = checksum.String(append(body, check))
		}
		return ok
	})
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Raw: raw, CheckDigits: raw[c.Length-1:]}, nil
}

func (c CheckDigit) draw(rng *rand.Rand) []int {
	prefix := ""
	if len(c.Prefixes) > 0 {
		prefix = c.Prefixes[rng.IntN(len(c.Prefixes))]
	}
	body, _ := checksum.Digits(prefix)
	if c.Lead != "" && len(body) == 0 {
		body = append(body, int(c.Lead[rng.IntN(len(c.Lead))]-'0'))
	}
	for len(body) < c.Length-1 {
		body = append(body, rng.IntN(10))
	}
	return body
}

func (c CheckDigit) Validate(raw string) bool {
	s := Compact(raw)
	if len(s) != c.Length {
		return false
	}
	digits, ok := checksum.Digits(s)
	if !ok {
		return false
	}
	if c.Lead != "" && strings.IndexByte(c.Lead, s[0]) < 0 {
		return false
	}
	if len(c.Prefixes) > 0 && !hasAnyPrefix(s, c.Prefixes) {
		return false
	}
	check, ok := c.Check(digits[:c.Length-1])
	return ok && check == digits[c.Length-1]
}

func (c CheckDigit) Format(raw string) string {
	s := Compact(raw)
	if c.Render == nil {
		return s
	}
	return c.Render(s)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Always adapts a check function that is defined for every body.
func Always(f func(body []int) int) func(body []int) (int, bool) {
	return func(body []int) (int, bool) { return f(body), true }
}

// Compact uppercases raw and removes display separators.
func Compact(raw string) string {
	return StripSeparators(strings.ToUpper(strings.TrimSpace(raw)))
}

// Groups splits s at the given cut points and joins the parts with sep; the final group
// takes the rest.
func Groups(s string, sep string, cuts ...int) string {
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
