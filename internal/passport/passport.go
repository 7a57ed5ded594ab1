// Package passport builds the passport number registry. Passport numbers carry no
// national check digit; each country is described by the layouts its documents use, and
// generated or parsed values report the ICAO 9303 check digit printed next to the
// number in the machine readable zone.
package passport

import (
	_ "embed"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

//go:embed tables.yaml
var tablesYAML []byte

// New builds the passport registry.
func New(names registry.Names) (*registry.Registry, error) {
	tables, err := registry.LoadTables(tablesYAML)
	if err != nil {
		return nil, err
	}
	return registry.New(domain.KindPassport, names, Bindings(), tables.Descriptors, tables.Aliases)
}

var (
	letterDigits7   = shapes("a9999999")
	nineDigits      = shapes("n99999999")
	twoLetters7     = shapes("aa9999999")
	twoLetters6     = shapes("aa999999")
	threeLetters6   = shapes("aaa999999")
	eightDigits     = shapes("n9999999")
	letterDigits8   = shapes("a99999999")
	germanReisepass = shapes("Cxxxxxxxx")
)

// Bindings returns the tier a codecs.
func Bindings() []registry.Binding {
	return []registry.Binding{
		{Code: "AE", FormatName: "Passport", Codec: nineDigits},
		{Code: "AR", FormatName: "Pasaporte", Codec: threeLetters6},
		{Code: "AT", FormatName: "Reisepass", Codec: letterDigits7},
		{Code: "AU", FormatName: "Passport", Codec: letterDigits7},
		{Code: "BD", FormatName: "Passport", Codec: twoLetters7},
		{Code: "BE", FormatName: "Paspoort", Codec: twoLetters7},
		{Code: "BG", FormatName: "Passport", Codec: nineDigits},
		{Code: "BH", FormatName: "Passport", Codec: nineDigits},
		{Code: "BR", FormatName: "Passaporte", Codec: twoLetters6},
		{Code: "CA", FormatName: "Passport", Codec: twoLetters6},
		{Code: "CH", FormatName: "Reisepass", Codec: letterDigits7},
		{Code: "CL", FormatName: "Pasaporte", Codec: nineDigits},
		{Code: "CN", FormatName: "Passport", Codec: shapes("E99999999", "G99999999")},
		{Code: "CO", FormatName: "Pasaporte", Codec: twoLetters7},
		{Code: "CZ", FormatName: "Cestovní pas", Codec: eightDigits},
		{Code: "DE", FormatName: "Reisepass", Codec: germanReisepass},
		{Code: "DK", FormatName: "Pas", Codec: nineDigits},
		{Code: "DZ", FormatName: "Passeport", Codec: nineDigits},
		{Code: "EC", FormatName: "Pasaporte", Codec: letterDigits7},
		{Code: "EE", FormatName: "Pass", Codec: twoLetters6},
		{Code: "EG", FormatName: "Passport", Codec: nineDigits},
		{Code: "ES", FormatName: "Pasaporte", Codec: threeLetters6},
		{Code: "ET", FormatName: "Passport", Codec: twoLetters6},
		{Code: "FI", FormatName: "Passi", Codec: twoLetters7},
		{Code: "FR", FormatName: "Passeport", Codec: twoLetters7},
		{Code: "GB", FormatName: "Passport", Codec: nineDigits},
		{Code: "GH", FormatName: "Passport", Codec: letterDigits7},
		{Code: "GR", FormatName: "Passport", Codec: twoLetters6},
		{Code: "HK", FormatName: "Passport", Codec: shapes("H99999999")},
		{Code: "HR", FormatName: "Putovnica", Codec: nineDigits},
		{Code: "HU", FormatName: "Útlevél", Codec: twoLetters6},
		{Code: "ID", FormatName: "Passport", Codec: letterDigits7},
		{Code: "IE", FormatName: "Passport", Codec: twoLetters7},
		{Code: "IL", FormatName: "Passport", Codec: eightDigits},
		{Code: "IN", FormatName: "Passport", Codec: letterDigits7},
		{Code: "IS", FormatName: "Vegabréf", Codec: letterDigits7},
		{Code: "IT", FormatName: "Passaporto", Codec: twoLetters7},
		{Code: "JP", FormatName: "Passport", Codec: twoLetters7},
		{Code: "KE", FormatName: "Passport", Codec: nineDigits},
		{Code: "KR", FormatName: "여권", Codec: shapes("M99999999", "S99999999")},
		{Code: "KW", FormatName: "Passport", Codec: nineDigits},
		{Code: "LK", FormatName: "Passport", Codec: letterDigits7},
		{Code: "LT", FormatName: "Pasas", Codec: eightDigits},
		{Code: "LU", FormatName: "Passeport", Codec: twoLetters6},
		{Code: "LV", FormatName: "Pase", Codec: twoLetters6},
		{Code: "MA", FormatName: "Passeport", Codec: twoLetters7},
		{Code: "MT", FormatName: "Passaport", Codec: eightDigits},
		{Code: "MX", FormatName: "Pasaporte", Codec: shapes("n999999999")},
		{Code: "MY", FormatName: "Passport", Codec: letterDigits7},
		{Code: "NG", FormatName: "Passport", Codec: letterDigits8},
		{Code: "NL", FormatName: "Paspoort", Codec: twoLetters7},
		{Code: "NO", FormatName: "Pass", Codec: nineDigits},
		{Code: "NP", FormatName: "Passport", Codec: eightDigits},
		{Code: "NZ", FormatName: "Passport", Codec: twoLetters6},
		{Code: "OM", FormatName: "Passport", Codec: eightDigits},
		{Code: "PE", FormatName: "Pasaporte", Codec: nineDigits},
		{Code: "PH", FormatName: "Passport", Codec: twoLetters7},
		{Code: "PK", FormatName: "Passport", Codec: twoLetters7},
		{Code: "PL", FormatName: "Paszport", Codec: twoLetters7},
		{Code: "PT", FormatName: "Passaporte", Codec: twoLetters6},
		{Code: "QA", FormatName: "Passport", Codec: nineDigits},
		{Code: "RO", FormatName: "Pașaport", Codec: nineDigits},
		{Code: "RS", FormatName: "Pasoš", Codec: nineDigits},
		{Code: "SA", FormatName: "Passport", Codec: letterDigits8},
		{Code: "SE", FormatName: "Pass", Codec: eightDigits},
		{Code: "SG", FormatName: "Passport", Codec: shapes("E9999999a")},
		{Code: "SI", FormatName: "Potni list", Codec: twoLetters6},
		{Code: "SK", FormatName: "Cestovný pas", Codec: twoLetters6},
		{Code: "TH", FormatName: "Passport", Codec: twoLetters7},
		{Code: "TN", FormatName: "Passeport", Codec: eightDigits},
		{Code: "TR", FormatName: "Pasaport", Codec: letterDigits8},
		{Code: "TW", FormatName: "Passport", Codec: nineDigits},
		{Code: "TZ", FormatName: "Passport", Codec: twoLetters7},
		{Code: "UA", FormatName: "Passport", Codec: twoLetters6},
		{Code: "US", FormatName: "Passport", Codec: nineDigits},
		{Code: "UY", FormatName: "Pasaporte", Codec: eightDigits},
		{Code: "VE", FormatName: "Pasaporte", Codec: nineDigits},
		{Code: "VN", FormatName: "Passport", Codec: letterDigits7},
		{Code: "ZA", FormatName: "Passport", Codec: letterDigits8},
	}
}
