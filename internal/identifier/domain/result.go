package domain

// Tier names the registry level that serves a country code.
type Tier string

const (
	TierSpecific Tier = "specific"
	TierGeneric  Tier = "generic"
	TierAlias    Tier = "alias"
)

// Result is produced by generate and parse operations. Optional decomposed fields are
// empty when the format does not expose them.
type Result struct {
	CountryCode   string
	CountryName   string
	FormatName    string
	Raw           string
	Formatted     string
	BankCode      string
	BranchCode    string
	AccountNumber string
	CheckDigits   string
	IBAN          string
	Gender        Gender
	DOB           string
	HolderType    string
	Region        string
	Valid         bool
}

// CountryInfo describes one supported code in a registry listing.
type CountryInfo struct {
	Code       string
	Name       string
	FormatName string
	HasIBAN    bool
	Tier       Tier
	ParentCode string
}
