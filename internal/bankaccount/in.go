package bankaccount

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnumChars = "0123456789" + upperChars
)

// ifscCodec is an 11 character IFSC (4 letters, '0', 6 alphanumerics) followed by a
// 9 to 18 digit account number.
type ifscCodec struct{}

func (ifscCodec) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		sb.WriteByte(upperChars[rng.IntN(len(upperChars))])
	}
	sb.WriteByte('0')
	for i := 0; i < 6; i++ {
		sb.WriteByte(alnumChars[rng.IntN(len(alnumChars))])
	}
	ifsc := sb.String()
	account := randomNumber(rng, between(rng, 9, 18))

	return domain.Result{
		Raw:           ifsc + account,
		Formatted:     ifsc + " " + account,
		BankCode:      ifsc,
		AccountNumber: account,
	}, nil
}

func (ifscCodec) compact(raw string) string {
	return strings.ToUpper(registry.StripSeparators(strings.TrimSpace(raw)))
}

func (c ifscCodec) Validate(raw string) bool {
	s := c.compact(raw)
	if len(s) < 20 || len(s) > 29 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		isDigit := ch >= '0' && ch <= '9'
		isUpper := ch >= 'A' && ch <= 'Z'
		switch {
		case i < 4 && !isUpper:
			return false
		case i == 4 && ch != '0':
			return false
		case i > 4 && i < 11 && !isDigit && !isUpper:
			return false
		case i >= 11 && !isDigit:
			return false
		}
	}
	return true
}

func (c ifscCodec) Format(raw string) string {
	s := c.compact(raw)
	return s[:11] + " " + s[11:]
}

func (c ifscCodec) Parse(raw string) domain.Result {
	s := c.compact(raw)
	return domain.Result{Raw: s, BankCode: s[:11], AccountNumber: s[11:]}
}
