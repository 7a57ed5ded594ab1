package bankaccount

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/iban"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// sortCodeCodec is a six digit sort code followed by an eight digit account number.
// Generated accounts also carry the matching IBAN under a random four letter bank id.
type sortCodeCodec struct{}

func (sortCodeCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	sortCode, err := bankCodeOption(opts, 6)
	if err != nil {
		return domain.Result{}, err
	}
	if sortCode == "" {
		sortCode = randomNumber(rng, 6)
	}
	account := randomNumber(rng, 8)

	var bank strings.Builder
	for i := 0; i < 4; i++ {
		bank.WriteByte(upperChars[rng.IntN(len(upperChars))])
	}
	bban := bank.String() + sortCode + account
	check, err := iban.CheckDigits("GB", bban)
	if err != nil {
		return domain.Result{}, err
	}

	raw := sortCode + account
	return domain.Result{
		Raw:           raw,
		Formatted:     formatSortCode(raw),
		BankCode:      sortCode,
		AccountNumber: account,
		IBAN:          "GB" + check + bban,
	}, nil
}

func (sortCodeCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	return ok && len(s) == 14
}

func (sortCodeCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return formatSortCode(s)
}

func (sortCodeCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	return domain.Result{Raw: s, BankCode: s[:6], AccountNumber: s[6:]}
}

func formatSortCode(s string) string {
	return groups(s[:6], "-", 2, 4) + " " + s[6:]
}
