// Package taxid builds the tax identifier registry. National ids that double as tax
// numbers are shared with the personal id registry.
package taxid

import (
	_ "embed"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
	"github.com/allisson/idsmith/internal/personalid"
)

//go:embed tables.yaml
var tablesYAML []byte

// New builds the tax id registry.
func New(names registry.Names) (*registry.Registry, error) {
	tables, err := registry.LoadTables(tablesYAML)
	if err != nil {
		return nil, err
	}
	return registry.New(domain.KindTaxID, names, Bindings(), tables.Descriptors, tables.Aliases)
}

// Bindings returns the tier a codecs: tax-specific formats first, then personal ids used
// as tax numbers.
func Bindings() []registry.Binding {
	return []registry.Binding{
		{Code: "HR", FormatName: "OIB", Codec: oibCodec},
		{Code: "IN", FormatName: "PAN", Codec: panCodec{}},
		{Code: "FR", FormatName: "NIF", Codec: frenchNIF{}},
		{Code: "GB", FormatName: "UTR", Codec: utr{}},
		{Code: "IT", FormatName: "Partita IVA", Codec: partitaIVACodec},
		{Code: "CN", FormatName: "USCI", Codec: usci{}},
		{Code: "PT", FormatName: "NIF", Codec: portugueseNIFCodec},
		{Code: "AR", FormatName: "CUIT", Codec: cuitCodec},
		{Code: "CA", FormatName: "SIN", Codec: sinCodec},
		{Code: "CH", FormatName: "AHV", Codec: ahvCodec},
		{Code: "GR", FormatName: "AFM", Codec: afmCodec},
		{Code: "KR", FormatName: "BRN", Codec: brnCodec},
		{Code: "ZA", FormatName: "Tax Number", Codec: zaTaxCodec},
		{Code: "CL", FormatName: "RUT", Codec: rut{}},
		{Code: "BE", FormatName: "NN", Codec: belgianNN{}},
		{Code: "TR", FormatName: "TC Kimlik", Codec: tcKimlik{}},
		{Code: "MX", FormatName: "RFC", Codec: rfc{}},

		{Code: "DE", FormatName: "Steuer-IdNr", Codec: personalid.Codec("DE")},
		{Code: "ES", FormatName: "NIF", Codec: personalid.Codec("ES")},
		{Code: "US", FormatName: "TIN", Codec: personalid.Codec("US")},
		{Code: "AU", FormatName: "TFN", Codec: personalid.Codec("AU")},
		{Code: "NZ", FormatName: "IRD", Codec: personalid.Codec("NZ")},
		{Code: "NL", FormatName: "BSN", Codec: personalid.Codec("NL")},
		{Code: "BR", FormatName: "CPF", Codec: personalid.Codec("BR")},
		{Code: "EE", FormatName: "Isikukood", Codec: personalid.Codec("EE")},
		{Code: "FI", FormatName: "HETU", Codec: personalid.Codec("FI")},
		{Code: "SE", FormatName: "Personnummer", Codec: personalid.Codec("SE")},
		{Code: "NO", FormatName: "Fodselsnummer", Codec: personalid.Codec("NO")},
		{Code: "DK", FormatName: "CPR", Codec: personalid.Codec("DK")},
		{Code: "PL", FormatName: "PESEL", Codec: personalid.Codec("PL")},
		{Code: "LU", FormatName: "Matricule", Codec: personalid.Codec("LU")},
		{Code: "IL", FormatName: "Mispar Zehut", Codec: personalid.Codec("IL")},
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
