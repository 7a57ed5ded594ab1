package bankaccount

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

var abaWeights = []int{3, 7, 1, 3, 7, 1, 3, 7}

// abaCodec is a nine digit ABA routing number (Federal Reserve district 01-12) followed
// by an 8 to 17 digit account number.
type abaCodec struct{}

func abaCheckDigit(d []int) int {
	return checksum.ComplementMod10(checksum.WeightedSum(d, abaWeights))
}

func (abaCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	prefix, err := bankCodeOption(opts, 2)
	if err != nil {
		return domain.Result{}, err
	}
	if prefix == "" {
		prefix = fmt.Sprintf("%02d", between(rng, 1, 12))
	}

	d := randomDigits(rng, 8)
	d[0], d[1] = int(prefix[0]-'0'), int(prefix[1]-'0')
	check := abaCheckDigit(d)
	routing := checksum.String(append(d, check))
	account := randomNumber(rng, between(rng, 8, 17))

	raw := routing + account
	return domain.Result{
		Raw:           raw,
		Formatted:     routing + " " + account,
		BankCode:      routing,
		AccountNumber: account,
		CheckDigits:   strconv.Itoa(check),
	}, nil
}

func (abaCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	if !ok || len(s) < 17 || len(s) > 26 {
		return false
	}
	d, _ := checksum.Digits(s[:9])
	return d[8] == abaCheckDigit(d[:8])
}

func (abaCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return s[:9] + " " + s[9:]
}

func (abaCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	return domain.Result{Raw: s, BankCode: s[:9], AccountNumber: s[9:], CheckDigits: s[8:9]}
}
