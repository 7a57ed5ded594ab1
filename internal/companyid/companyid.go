// Package companyid builds the company registration number registry. Where a company is
// identified by a number the tax registry already models, the codec is shared.
package companyid

import (
	_ "embed"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
	"github.com/allisson/idsmith/internal/personalid"
	"github.com/allisson/idsmith/internal/taxid"
)

//go:embed tables.yaml
var tablesYAML []byte

// New builds the company id registry.
func New(names registry.Names) (*registry.Registry, error) {
	tables, err := registry.LoadTables(tablesYAML)
	if err != nil {
		return nil, err
	}
	return registry.New(domain.KindCompanyID, names, Bindings(), tables.Descriptors, tables.Aliases)
}

// Bindings returns the tier a codecs.
func Bindings() []registry.Binding {
	return []registry.Binding{
		{Code: "AU", FormatName: "ABN", Codec: abn{}},
		{Code: "BE", FormatName: "Ondernemingsnummer", Codec: enterpriseNumberCodec},
		{Code: "BR", FormatName: "CNPJ", Codec: cnpj{}},
		{Code: "CH", FormatName: "UID", Codec: uidCodec},
		{Code: "CZ", FormatName: "IČO", Codec: icoCodec},
		{Code: "DK", FormatName: "CVR", Codec: cvrCodec},
		{Code: "EE", FormatName: "Registrikood", Codec: registrikoodCodec},
		{Code: "ES", FormatName: "CIF", Codec: cif{}},
		{Code: "FI", FormatName: "Y-tunnus", Codec: ytunnusCodec},
		{Code: "FR", FormatName: "SIREN", Codec: sirenCodec},
		{Code: "GB", FormatName: "VAT Number", Codec: gbVAT{}},
		{Code: "JP", FormatName: "Corporate Number", Codec: corporateNumber{}},
		{Code: "NO", FormatName: "Orgnr", Codec: orgnrNOCodec},
		{Code: "PL", FormatName: "REGON", Codec: regonCodec},
		{Code: "RU", FormatName: "OGRN", Codec: ogrnCodec},
		{Code: "SE", FormatName: "Orgnr", Codec: orgnrSECodec},
		{Code: "US", FormatName: "EIN", Codec: ein{}},

		{Code: "AR", FormatName: "CUIT", Codec: taxid.Codec("AR")},
		{Code: "CL", FormatName: "RUT", Codec: taxid.Codec("CL")},
		{Code: "CN", FormatName: "USCC", Codec: taxid.Codec("CN")},
		{Code: "GR", FormatName: "AFM", Codec: taxid.Codec("GR")},
		{Code: "HR", FormatName: "OIB", Codec: taxid.Codec("HR")},
		{Code: "IT", FormatName: "Partita IVA", Codec: taxid.Codec("IT")},
		{Code: "KR", FormatName: "BRN", Codec: taxid.Codec("KR")},
		{Code: "MX", FormatName: "RFC", Codec: taxid.Codec("MX")},
		{Code: "PT", FormatName: "NIPC", Codec: taxid.Codec("PT")},
		{Code: "NL", FormatName: "RSIN", Codec: personalid.Codec("NL")},
		{Code: "NZ", FormatName: "IRD", Codec: personalid.Codec("NZ")},
	}
}

// Codec returns the tier a codec bound to code, or nil.
func Codec(code string) registry.Codec {
	for _, b := range Bindings() {
		if b.Code == code {
			return b.Codec
		}
	}
	return nil
}
