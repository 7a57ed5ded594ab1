package domain

// IBAN is a generated or inspected International Bank Account Number.
type IBAN struct {
	CountryCode string
	CountryName string
	IBAN        string
	Formatted   string
	CheckDigits string
	BBAN        string
	Valid       bool
}

// IBANCountry describes one country with an IBAN layout.
type IBANCountry struct {
	Code       string
	Name       string
	BBANLength int
	Layout     string
}
