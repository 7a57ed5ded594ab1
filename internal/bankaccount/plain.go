package bankaccount

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// plainCodec is a numeric bank + branch + account layout that carries no check digit.
type plainCodec struct {
	bankLen    int
	branchLen  int
	accountMin int
	accountMax int
	// nonZeroCodes excludes the all-zero bank and branch codes.
	nonZeroCodes bool
	format       func(raw string) string
}

var (
	canadaCodec = plainCodec{
		bankLen: 3, branchLen: 5, accountMin: 7, accountMax: 12, nonZeroCodes: true,
		format: func(raw string) string { return groups(raw, "-", 3, 8) },
	}
	australiaCodec = plainCodec{
		bankLen: 6, accountMin: 5, accountMax: 9,
		format: func(raw string) string { return raw[:3] + "-" + raw[3:6] + " " + raw[6:] },
	}
	southAfricaCodec = plainCodec{
		bankLen: 6, accountMin: 7, accountMax: 11,
		format: func(raw string) string { return groups(raw, " ", 6) },
	}
	singaporeCodec = plainCodec{
		bankLen: 4, branchLen: 3, accountMin: 6, accountMax: 10, nonZeroCodes: true,
		format: func(raw string) string { return groups(raw, "-", 4, 7) },
	}
	hongKongCodec = plainCodec{
		bankLen: 3, accountMin: 9, accountMax: 12, nonZeroCodes: true,
		format: func(raw string) string { return groups(raw, "-", 3) },
	}
)

func (c plainCodec) code(rng *rand.Rand, n int) string {
	if n == 0 {
		return ""
	}
	if !c.nonZeroCodes {
		return randomNumber(rng, n)
	}
	limit := 1
	for i := 0; i < n; i++ {
		limit *= 10
	}
	return fmt.Sprintf("%0*d", n, between(rng, 1, limit-1))
}

func (c plainCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	bank, err := bankCodeOption(opts, c.bankLen)
	if err != nil {
		return domain.Result{}, err
	}
	if bank == "" {
		bank = c.code(rng, c.bankLen)
	}
	branch := c.code(rng, c.branchLen)
	account := randomNumber(rng, between(rng, c.accountMin, c.accountMax))

	raw := bank + branch + account
	return domain.Result{
		Raw:           raw,
		Formatted:     c.format(raw),
		BankCode:      bank,
		BranchCode:    branch,
		AccountNumber: account,
	}, nil
}

func (c plainCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	if !ok {
		return false
	}
	prefix := c.bankLen + c.branchLen
	return len(s) >= prefix+c.accountMin && len(s) <= prefix+c.accountMax
}

func (c plainCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return c.format(s)
}

func (c plainCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	prefix := c.bankLen + c.branchLen
	return domain.Result{
		Raw:           s,
		BankCode:      s[:c.bankLen],
		BranchCode:    s[c.bankLen:prefix],
		AccountNumber: s[prefix:],
	}
}

// bankCodeOption returns the caller's bank code when it is exactly n digits, "" when
// none was given, and ErrInvalidOption otherwise.
func bankCodeOption(opts domain.GenOptions, n int) (string, error) {
	code := strings.TrimSpace(opts.BankCode)
	if code == "" {
		return "", nil
	}
	if len(code) != n || !checksum.IsNumeric(code) {
		return "", errors.Wrapf(domain.ErrInvalidOption, "bank code %q must be %d digits", opts.BankCode, n)
	}
	return code, nil
}

// koreaCodec is an 11 to 14 digit account grouped by length.
type koreaCodec struct{}

func (koreaCodec) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d := randomDigits(rng, between(rng, 11, 14))
	d[0] = between(rng, 1, 9)
	raw := checksum.String(d)
	return domain.Result{Raw: raw, AccountNumber: raw}, nil
}

func (koreaCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	return ok && len(s) >= 11 && len(s) <= 14
}

func (koreaCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	switch len(s) {
	case 11:
		return groups(s, "-", 3, 5)
	case 12:
		return groups(s, "-", 3, 6)
	default:
		return groups(s, "-", 3, 7, 11)
	}
}
