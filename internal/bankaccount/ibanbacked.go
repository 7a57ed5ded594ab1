package bankaccount

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/iban"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

// ibanCodec serves a country through its BBAN layout. The raw value is the BBAN; the
// result also carries the full IBAN.
type ibanCodec struct {
	country string
}

func (c ibanCodec) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	bban, err := iban.GenerateBBAN(c.country, rng)
	if err != nil {
		return domain.Result{}, err
	}
	result := c.Parse(bban)
	result.Formatted = c.Format(bban)
	return result, nil
}

func (ibanCodec) compact(raw string) string {
	return strings.ToUpper(registry.StripSeparators(strings.TrimSpace(raw)))
}

func (c ibanCodec) Validate(raw string) bool {
	return iban.ValidateNational(c.country, c.compact(raw))
}

// Format separates the BBAN fields with spaces.
func (c ibanCodec) Format(raw string) string {
	bban := c.compact(raw)
	spec, ok := iban.Spec(c.country)
	if !ok {
		return bban
	}
	parts, ok := spec.Segment(bban)
	if !ok {
		return bban
	}
	return strings.Join(parts, " ")
}

// Parse treats the first field as the bank code and, for layouts with three or more
// fields, the second as the branch code. A single-field layout is all account number.
func (c ibanCodec) Parse(raw string) domain.Result {
	bban := c.compact(raw)
	result := domain.Result{Raw: bban}

	spec, ok := iban.Spec(c.country)
	if !ok {
		return result
	}
	parts, ok := spec.Segment(bban)
	if !ok {
		return result
	}
	rest := parts
	if len(parts) >= 2 {
		result.BankCode = parts[0]
		rest = parts[1:]
	}
	if len(parts) >= 3 {
		result.BranchCode = parts[1]
		rest = parts[2:]
	}
	result.AccountNumber = strings.Join(rest, "")

	if check, err := iban.CheckDigits(c.country, bban); err == nil {
		result.CheckDigits = check
		result.IBAN = c.country + check + bban
	}
	return result
}
