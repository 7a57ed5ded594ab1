package bankaccount

import (
	"math/rand/v2"
	"strconv"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// chinaCodec is a 16 to 19 digit account ending in a Luhn check digit.
type chinaCodec struct{}

func (chinaCodec) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d := randomDigits(rng, between(rng, 16, 19)-1)
	d[0] = between(rng, 1, 9)
	check := checksum.LuhnCheckDigit(d)
	raw := checksum.String(append(d, check))

	return domain.Result{
		Raw:           raw,
		Formatted:     chunks(raw, 4),
		AccountNumber: raw,
		CheckDigits:   strconv.Itoa(check),
	}, nil
}

func (chinaCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	if !ok || len(s) < 16 || len(s) > 19 {
		return false
	}
	d, _ := checksum.Digits(s)
	return checksum.LuhnValidate(d)
}

func (chinaCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return chunks(s, 4)
}

func (chinaCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	return domain.Result{Raw: s, AccountNumber: s, CheckDigits: s[len(s)-1:]}
}
