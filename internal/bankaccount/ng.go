package bankaccount

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

var nubanWeights = []int{3, 7, 3, 3, 7, 3, 3, 7, 3}

// nubanCodec is the ten digit NUBAN: bank code (3) + serial (6) + check.
type nubanCodec struct{}

func (nubanCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	bank, err := bankCodeOption(opts, 3)
	if err != nil {
		return domain.Result{}, err
	}
	if bank == "" {
		bank = fmt.Sprintf("%03d", between(rng, 1, 999))
	}

	d, _ := checksum.Digits(bank)
	d = append(d, randomDigits(rng, 6)...)
	check := checksum.ComplementMod10(checksum.WeightedSum(d, nubanWeights))
	raw := checksum.String(append(d, check))

	return domain.Result{
		Raw:           raw,
		Formatted:     raw[:3] + " " + raw[3:],
		BankCode:      bank,
		AccountNumber: raw[3:],
		CheckDigits:   strconv.Itoa(check),
	}, nil
}

func (nubanCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	if !ok || len(s) != 10 {
		return false
	}
	d, _ := checksum.Digits(s)
	return d[9] == checksum.ComplementMod10(checksum.WeightedSum(d[:9], nubanWeights))
}

func (nubanCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return s[:3] + " " + s[3:]
}

func (nubanCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	return domain.Result{Raw: s, BankCode: s[:3], AccountNumber: s[3:], CheckDigits: s[9:]}
}
