package iban

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/solver"
)

// MaxRedraws bounds how many BBANs are drawn for countries whose national check can be
// unsatisfiable for a given draw (NO, CZ, SK).
const MaxRedraws = 64

var supported = func() []string {
	codes := make([]string, 0, len(layouts))
	for code := range layouts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}()

// Spec returns the BBAN layout of country (case-insensitive).
func Spec(country string) (FormatSpec, bool) {
	code := strings.ToUpper(strings.TrimSpace(country))
	fields, ok := layouts[code]
	if !ok {
		return FormatSpec{}, false
	}
	return FormatSpec{Country: code, Fields: fields}, true
}

// SupportedCountries returns every country with an IBAN layout, sorted.
func SupportedCountries() []string {
	return append([]string(nil), supported...)
}

// IsSupported reports whether country has an IBAN layout.
func IsSupported(country string) bool {
	_, ok := Spec(country)
	return ok
}

// IsWellFormed reports whether raw matches the BBAN layout of country.
func IsWellFormed(country, raw string) bool {
	spec, ok := Spec(country)
	if !ok {
		return false
	}
	return spec.IsWellFormed(raw)
}

// GenerateBBAN draws a layout-conforming BBAN and applies the country's national check
// digits when it has any.
func GenerateBBAN(country string, rng *rand.Rand) (string, error) {
	spec, ok := Spec(country)
	if !ok {
		return "", errors.Wrapf(domain.ErrUnsupportedCountry, "no IBAN layout for %q", country)
	}

	rule := nationalRules[spec.Country]
	if rule == nil {
		return spec.Generate(rng), nil
	}

	var bban []byte
	err := solver.Redraw(MaxRedraws, func() bool {
		bban = []byte(spec.Generate(rng))
		return rule(bban)
	})
	if err != nil {
		return "", errors.Wrapf(err, "national check for %s", spec.Country)
	}
	return string(bban), nil
}

// ValidateNational reports whether bban is well formed and carries the national check
// digits of country. Countries without a national check only need a well-formed BBAN.
func ValidateNational(country, bban string) bool {
	spec, ok := Spec(country)
	if !ok || !spec.IsWellFormed(bban) {
		return false
	}
	rule := nationalRules[spec.Country]
	if rule == nil {
		return true
	}
	recomputed := []byte(bban)
	if !rule(recomputed) {
		return false
	}
	return string(recomputed) == bban
}

// CheckDigits computes the two ISO 13616 check digits for bban in country:
// 98 - mod97(numeric(bban + country + "00")).
func CheckDigits(country, bban string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(country))
	if len(code) != 2 {
		return "", errors.Wrapf(domain.ErrMalformedValue, "country code %q", country)
	}
	numeric, ok := checksum.ToNumeric(bban + code + "00")
	if !ok {
		return "", errors.Wrapf(domain.ErrMalformedValue, "bban %q is not alphanumeric", bban)
	}
	return fmt.Sprintf("%02d", checksum.Mod97Complement(numeric)), nil
}

// Generate returns a compact IBAN for country, or for a random supported country when
// country is empty.
func Generate(country string, rng *rand.Rand) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(country))
	if code == "" {
		code = supported[rng.IntN(len(supported))]
	}

	bban, err := GenerateBBAN(code, rng)
	if err != nil {
		return "", err
	}
	check, err := CheckDigits(code, bban)
	if err != nil {
		return "", err
	}
	return code + check + bban, nil
}

// Compact removes whitespace and uppercases value.
func Compact(value string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value))
}

// Validate reports whether value (whitespace tolerant) satisfies the mod-97 check:
// the rearranged numeral string body + country + check must be congruent to 1.
func Validate(value string) bool {
	compact := Compact(value)
	if len(compact) < 5 {
		return false
	}
	if !Alpha.Matches(compact[0]) || !Alpha.Matches(compact[1]) ||
		!Numeric.Matches(compact[2]) || !Numeric.Matches(compact[3]) {
		return false
	}
	numeric, ok := checksum.ToNumeric(compact[4:] + compact[:4])
	if !ok {
		return false
	}
	return checksum.Mod97(numeric) == 1
}

// Split returns the country, check digits and BBAN of a compact IBAN.
func Split(value string) (country, check, bban string, ok bool) {
	compact := Compact(value)
	if len(compact) < 5 {
		return "", "", "", false
	}
	return compact[:2], compact[2:4], compact[4:], true
}

// Format groups the compact form of value into runs of four characters separated by
// single spaces. The last group is not padded.
func Format(value string) string {
	compact := Compact(value)
	var sb strings.Builder
	for i := 0; i < len(compact); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(compact[i:min(i+4, len(compact))])
	}
	return sb.String()
}
