package bankaccount

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

var cbuWeights = []int{3, 1, 7, 9}

// cbuCodec is the 22 digit CBU: bank (3) + branch (4) + check, then account (13) + check.
type cbuCodec struct{}

// cbuCheckDigit applies the weights 3,1,7,9 cyclically from the rightmost digit.
func cbuCheckDigit(d []int) int {
	sum := 0
	for i := range d {
		sum += d[len(d)-1-i] * cbuWeights[i%len(cbuWeights)]
	}
	return checksum.ComplementMod10(sum)
}

func (cbuCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	bank, err := bankCodeOption(opts, 3)
	if err != nil {
		return domain.Result{}, err
	}
	if bank == "" {
		bank = fmt.Sprintf("%03d", between(rng, 1, 999))
	}
	branch := fmt.Sprintf("%04d", between(rng, 1, 9999))

	first, _ := checksum.Digits(bank + branch)
	check1 := cbuCheckDigit(first)
	account := randomDigits(rng, 13)
	check2 := cbuCheckDigit(account)

	block1 := checksum.String(append(first, check1))
	block2 := checksum.String(append(account, check2))

	return domain.Result{
		Raw:           block1 + block2,
		Formatted:     block1 + " " + block2,
		BankCode:      bank,
		BranchCode:    branch,
		AccountNumber: checksum.String(account),
		CheckDigits:   strconv.Itoa(check1) + strconv.Itoa(check2),
	}, nil
}

func (cbuCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	if !ok || len(s) != 22 {
		return false
	}
	d, _ := checksum.Digits(s)
	return d[7] == cbuCheckDigit(d[:7]) && d[21] == cbuCheckDigit(d[8:21])
}

func (cbuCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return s[:8] + " " + s[8:]
}

func (cbuCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	return domain.Result{
		Raw:           s,
		BankCode:      s[:3],
		BranchCode:    s[3:7],
		AccountNumber: s[8:21],
		CheckDigits:   s[7:8] + s[21:],
	}
}
