// Package domain defines the types shared by every identifier domain: the kinds of
// identifiers, generation options, result records and the domain errors.
package domain

import "strings"

// Kind identifies an identifier domain. Each kind is served by its own registry.
type Kind string

const (
	KindBankAccount   Kind = "bank-account"
	KindPersonalID    Kind = "personal-id"
	KindTaxID         Kind = "tax-id"
	KindCompanyID     Kind = "company-id"
	KindVAT           Kind = "vat"
	KindPassport      Kind = "passport"
	KindDriverLicense Kind = "driver-license"
)

// Kinds lists every registry-backed kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindBankAccount, KindPersonalID, KindTaxID,
		KindCompanyID, KindVAT, KindPassport, KindDriverLicense,
	}
}

// ParseKind accepts the singular or plural spelling, with hyphens or underscores.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	normalized = strings.TrimSuffix(normalized, "s")
	for _, k := range Kinds() {
		if Kind(normalized) == k {
			return k, nil
		}
	}
	return "", ErrUnsupportedKind
}

// Validate checks if the kind is known.
func (k Kind) Validate() error {
	_, err := ParseKind(string(k))
	return err
}

// Plural returns the collection name used in HTTP paths.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}
