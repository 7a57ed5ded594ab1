// Package personalid builds the personal identifier registry: national id codecs that
// encode a date of birth and gender where the format does, generic descriptors for the
// remaining countries, and territory aliases.
//
// Formats that carry a two-digit birth year resolve the century with a pivot (FR, ZA,
// the 10-digit SE form) or a sequence range (DK, NO). A value born exactly at a pivot
// year reads back in the later century; generators refuse years that would not round
// trip instead of moving the pivot.
package personalid

import (
	_ "embed"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

//go:embed tables.yaml
var tablesYAML []byte

// New builds the personal id registry.
func New(names registry.Names) (*registry.Registry, error) {
	tables, err := registry.LoadTables(tablesYAML)
	if err != nil {
		return nil, err
	}
	return registry.New(domain.KindPersonalID, names, Bindings(), tables.Descriptors, tables.Aliases)
}

// Bindings returns the tier a codecs.
func Bindings() []registry.Binding {
	return []registry.Binding{
		{Code: "US", FormatName: "SSN", Codec: ssn{}},
		{Code: "DE", FormatName: "Steuerliche IdNr", Codec: steuerID{}},
		{Code: "EE", FormatName: "Isikukood", Codec: isikukood{}},
		{Code: "FI", FormatName: "Henkilotunnus", Codec: hetu{}},
		{Code: "SE", FormatName: "Personnummer", Codec: personnummer{}},
		{Code: "NO", FormatName: "Fodselsnummer", Codec: fodselsnummer{}},
		{Code: "DK", FormatName: "CPR-nummer", Codec: cpr{}},
		{Code: "PL", FormatName: "PESEL", Codec: pesel{}},
		{Code: "ES", FormatName: "DNI", Codec: dni{}},
		{Code: "NL", FormatName: "BSN", Codec: bsn{}},
		{Code: "FR", FormatName: "NIR", Codec: nir{}},
		{Code: "GB", FormatName: "National Insurance Number", Codec: nino{}},
		{Code: "LU", FormatName: "Matricule", Codec: matricule{}},
		{Code: "ZA", FormatName: "SA ID", Codec: southAfricanID{}},
		{Code: "BR", FormatName: "CPF", Codec: cpf{}},
		{Code: "IL", FormatName: "Teudat Zehut", Codec: teudatZehut{}},
		{Code: "IN", FormatName: "Aadhaar", Codec: aadhaar{}},
		{Code: "CN", FormatName: "Resident ID", Codec: residentID{}},
		{Code: "AU", FormatName: "TFN", Codec: tfn{}},
		{Code: "NZ", FormatName: "IRD", Codec: ird{}},
	}
}

// Codec returns the tier a codec bound to code, or nil. Other registries reuse national
// ids that double as tax numbers.
func Codec(code string) registry.Codec {
	for _, b := range Bindings() {
		if b.Code == code {
			return b.Codec
		}
	}
	return nil
}
