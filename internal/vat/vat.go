// Package vat builds the VAT registration number registry. EU numbers carry their
// member state prefix (EL for Greece) and reuse the company or tax number codec where
// the national body is the same number.
package vat

import (
	_ "embed"

	"github.com/allisson/idsmith/internal/companyid"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
	"github.com/allisson/idsmith/internal/personalid"
	"github.com/allisson/idsmith/internal/taxid"
)

//go:embed tables.yaml
var tablesYAML []byte

// New builds the VAT registry.
func New(names registry.Names) (*registry.Registry, error) {
	tables, err := registry.LoadTables(tablesYAML)
	if err != nil {
		return nil, err
	}
	return registry.New(domain.KindVAT, names, Bindings(), tables.Descriptors, tables.Aliases)
}

func eu(prefix string, codec registry.Codec) registry.Prefixed {
	return registry.Prefixed{Prefix: prefix, Codec: codec, Render: registry.Bare}
}

// Bindings returns the tier a codecs: the EU member states, then national sales tax
// numbers outside the EU.
func Bindings() []registry.Binding {
	return []registry.Binding{
		{Code: "AT", FormatName: "UID", Codec: registry.Prefixed{Prefix: "ATU", Codec: atCodec, Render: registry.Bare}},
		{Code: "BE", FormatName: "BTW", Codec: eu("BE", companyid.Codec("BE"))},
		{Code: "BG", FormatName: "ДДС", Codec: eu("BG", bgCodec)},
		{Code: "CY", FormatName: "ΦΠΑ", Codec: eu("CY", cyVAT{})},
		{Code: "CZ", FormatName: "DIČ", Codec: eu("CZ", companyid.Codec("CZ"))},
		{Code: "DE", FormatName: "USt-IdNr", Codec: eu("DE", deCodec)},
		{Code: "DK", FormatName: "CVR", Codec: eu("DK", companyid.Codec("DK"))},
		{Code: "EE", FormatName: "KMKR", Codec: eu("EE", eeCodec)},
		{Code: "ES", FormatName: "NIF-IVA", Codec: eu("ES", registry.OneOf{companyid.Codec("ES"), personalid.Codec("ES")})},
		{Code: "FI", FormatName: "ALV nro", Codec: eu("FI", companyid.Codec("FI"))},
		{Code: "FR", FormatName: "TVA", Codec: eu("FR", frVAT{})},
		{Code: "GB", FormatName: "VAT Reg No", Codec: eu("GB", companyid.Codec("GB"))},
		{Code: "GR", FormatName: "ΑΦΜ", Codec: registry.Prefixed{Prefix: "EL", Alternate: []string{"GR"}, Codec: taxid.Codec("GR"), Render: registry.Bare}},
		{Code: "HR", FormatName: "PDV", Codec: eu("HR", taxid.Codec("HR"))},
		{Code: "HU", FormatName: "ANUM", Codec: eu("HU", huCodec)},
		{Code: "IE", FormatName: "VAT No", Codec: eu("IE", ieVAT{})},
		{Code: "IT", FormatName: "Partita IVA", Codec: eu("IT", taxid.Codec("IT"))},
		{Code: "LT", FormatName: "PVM", Codec: eu("LT", ltVAT{})},
		{Code: "LU", FormatName: "TVA", Codec: eu("LU", luCodec)},
		{Code: "LV", FormatName: "PVN", Codec: eu("LV", lvCodec)},
		{Code: "MT", FormatName: "VAT No", Codec: eu("MT", mtCodec)},
		{Code: "NL", FormatName: "BTW-id", Codec: eu("NL", nlVAT{})},
		{Code: "PL", FormatName: "NIP", Codec: eu("PL", plCodec)},
		{Code: "PT", FormatName: "NIF", Codec: eu("PT", taxid.Codec("PT"))},
		{Code: "RO", FormatName: "CIF", Codec: eu("RO", roVAT{})},
		{Code: "SE", FormatName: "Momsnr", Codec: eu("SE", seVAT{})},
		{Code: "SI", FormatName: "DDV", Codec: eu("SI", siCodec)},
		{Code: "SK", FormatName: "IČ DPH", Codec: eu("SK", skCodec)},

		{Code: "AU", FormatName: "ABN", Codec: companyid.Codec("AU")},
		{Code: "CH", FormatName: "MWST", Codec: companyid.Codec("CH")},
		{Code: "NO", FormatName: "MVA", Codec: companyid.Codec("NO")},
		{Code: "JP", FormatName: "Invoice Registration Number", Codec: registry.Prefixed{Prefix: "T", Codec: companyid.Codec("JP"), Render: registry.Bare}},
		{Code: "NZ", FormatName: "GST", Codec: personalid.Codec("NZ")},
		{Code: "MX", FormatName: "RFC", Codec: taxid.Codec("MX")},
		{Code: "AR", FormatName: "CUIT", Codec: taxid.Codec("AR")},
		{Code: "CL", FormatName: "RUT", Codec: taxid.Codec("CL")},
		{Code: "KR", FormatName: "BRN", Codec: taxid.Codec("KR")},
	}
}
