// Package lei generates and validates ISO 17442 Legal Entity Identifiers: 18
// alphanumeric characters followed by two ISO 7064 MOD 97-10 check digits.
package lei

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

const (
	// Length is the number of characters in an LEI.
	Length = 20

	alnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// DefaultCountries are drawn from when no country is requested.
var DefaultCountries = []string{
	"US", "GB", "DE", "FR", "IT", "ES", "NL", "CH", "JP", "AU", "CA", "SG", "HK", "IN", "CN",
}

// LEI is a generated or parsed identifier. LOU is the issuing unit prefix and
// CountryCode the jurisdiction carried in characters five and six.
type LEI struct {
	Code        string
	LOU         string
	CountryCode string
	CheckDigits string
	Valid       bool
}

// Options picks the jurisdiction; empty draws one of DefaultCountries.
type Options struct {
	Country string
}

func randomAlnum(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alnum[rng.IntN(len(alnum))]
	}
	return string(b)
}

// CheckDigits returns the two check digits for an 18-character base.
func CheckDigits(base string) (string, error) {
	numeric, ok := checksum.ToNumeric(base)
	if len(base) != Length-2 || !ok {
		return "", errors.Wrapf(domain.ErrMalformedValue, "lei base %q", base)
	}
	return fmt.Sprintf("%02d", checksum.Mod97Complement(numeric+"00")), nil
}

// Generate returns a random valid LEI.
func Generate(opts Options, rng *rand.Rand) (LEI, error) {
	country := strings.ToUpper(strings.TrimSpace(opts.Country))
	if country == "" {
		country = DefaultCountries[rng.IntN(len(DefaultCountries))]
	}
	if len(country) != 2 || country[0] < 'A' || country[0] > 'Z' || country[1] < 'A' || country[1] > 'Z' {
		return LEI{}, errors.Wrapf(domain.ErrInvalidOption, "country %q", opts.Country)
	}

	base := randomAlnum(rng, 4) + country + randomAlnum(rng, 12)
	check, err := CheckDigits(base)
	if err != nil {
		return LEI{}, err
	}
	return Parse(base + check), nil
}

// Normalize trims and uppercases code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate reports whether code is 20 alphanumeric characters whose MOD 97 residue is 1.
func Validate(code string) bool {
	s := Normalize(code)
	if len(s) != Length {
		return false
	}
	numeric, ok := checksum.ToNumeric(s)
	return ok && checksum.Mod97(numeric) == 1
}

// Parse splits code into its parts. Invalid codes come back with Valid false and only
// Code set.
func Parse(code string) LEI {
	s := Normalize(code)
	if !Validate(s) {
		return LEI{Code: s}
	}
	return LEI{Code: s, LOU: s[:4], CountryCode: s[4:6], CheckDigits: s[18:], Valid: true}
}
