package bankaccount

import (
	"fmt"
	"math/rand/v2"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

var brazilBranchWeights = []int{5, 4, 3, 2}

// brazilCodec is bank (3) + branch (4) + branch check + account (6-10) + account check.
type brazilCodec struct{}

// brazilMod11 maps remainders 0 and 1 to 0, anything else to 11-r.
func brazilMod11(d, weights []int) int {
	r := checksum.WeightedCheck(d, weights, 11)
	if r < 2 {
		return 0
	}
	return 11 - r
}

// brazilAccountWeights descends from len(d)+1 to 2.
func brazilAccountWeights(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = n + 1 - i
	}
	return w
}

func (brazilCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	bank, err := bankCodeOption(opts, 3)
	if err != nil {
		return domain.Result{}, err
	}
	if bank == "" {
		bank = fmt.Sprintf("%03d", between(rng, 1, 999))
	}

	branch := randomDigits(rng, 4)
	branchCheck := brazilMod11(branch, brazilBranchWeights)
	account := randomDigits(rng, between(rng, 6, 10))
	accountCheck := brazilMod11(account, brazilAccountWeights(len(account)))

	branchStr, accountStr := checksum.String(branch), checksum.String(account)
	raw := fmt.Sprintf("%s%s%d%s%d", bank, branchStr, branchCheck, accountStr, accountCheck)

	return domain.Result{
		Raw:           raw,
		Formatted:     fmt.Sprintf("%s %s-%d %s-%d", bank, branchStr, branchCheck, accountStr, accountCheck),
		BankCode:      bank,
		BranchCode:    fmt.Sprintf("%s-%d", branchStr, branchCheck),
		AccountNumber: fmt.Sprintf("%s-%d", accountStr, accountCheck),
		CheckDigits:   fmt.Sprintf("%d%d", branchCheck, accountCheck),
	}, nil
}

func (brazilCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	if !ok || len(s) < 15 || len(s) > 19 {
		return false
	}
	d, _ := checksum.Digits(s)
	if d[7] != brazilMod11(d[3:7], brazilBranchWeights) {
		return false
	}
	account := d[8 : len(d)-1]
	return d[len(d)-1] == brazilMod11(account, brazilAccountWeights(len(account)))
}

func (brazilCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return fmt.Sprintf("%s %s-%s %s-%s", s[:3], s[3:7], s[7:8], s[8:len(s)-1], s[len(s)-1:])
}

func (brazilCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	n := len(s)
	return domain.Result{
		Raw:           s,
		BankCode:      s[:3],
		BranchCode:    s[3:7] + "-" + s[7:8],
		AccountNumber: s[8:n-1] + "-" + s[n-1:],
		CheckDigits:   s[7:8] + s[n-1:],
	}
}
