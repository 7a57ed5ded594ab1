// Package bankaccount builds the bank account registry: hand-written national codecs,
// IBAN-backed codecs for every IBAN country, generic descriptors and territory aliases.
package bankaccount

import (
	_ "embed"

	"github.com/allisson/idsmith/internal/iban"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

//go:embed tables.yaml
var tablesYAML []byte

// New builds the bank account registry. solverMaxAttempts bounds the NZ checksum solver
// (solver.DefaultMaxAttempts when not positive).
func New(names registry.Names, solverMaxAttempts int) (*registry.Registry, error) {
	tables, err := registry.LoadTables(tablesYAML)
	if err != nil {
		return nil, err
	}
	return registry.New(domain.KindBankAccount, names, Bindings(solverMaxAttempts), tables.Descriptors, tables.Aliases)
}

// Bindings returns the tier a codecs. Hand-written codecs come first so they shadow the
// IBAN-backed codec of the same country (GB, BR).
func Bindings(solverMaxAttempts int) []registry.Binding {
	bindings := []registry.Binding{
		{Code: "US", FormatName: "ABA Routing + Account", Codec: abaCodec{}},
		{Code: "CA", FormatName: "Inst + Transit + Account", Codec: canadaCodec},
		{Code: "MX", FormatName: "CLABE", Codec: clabeCodec{}},
		{Code: "AU", FormatName: "BSB + Account", Codec: australiaCodec},
		{Code: "IN", FormatName: "IFSC + Account", Codec: ifscCodec{}},
		{Code: "CN", FormatName: "Bank Account (Luhn)", Codec: chinaCodec{}},
		{Code: "ZA", FormatName: "Branch + Account", Codec: southAfricaCodec},
		{Code: "NZ", FormatName: "Bank + Branch + Account + Suffix", Codec: nzCodec{maxAttempts: solverMaxAttempts}},
		{Code: "SG", FormatName: "Bank + Branch + Account", Codec: singaporeCodec},
		{Code: "HK", FormatName: "Bank + Account", Codec: hongKongCodec},
		{Code: "KR", FormatName: "Bank Account", Codec: koreaCodec{}},
		{Code: "BR", FormatName: "Bank + Branch + Account", Codec: brazilCodec{}},
		{Code: "GB", FormatName: "Sort Code + Account", HasIBAN: true, Codec: sortCodeCodec{}},
		{Code: "AR", FormatName: "CBU", Codec: cbuCodec{}},
		{Code: "NG", FormatName: "NUBAN", Codec: nubanCodec{}},
	}
	for _, code := range iban.SupportedCountries() {
		bindings = append(bindings, registry.Binding{
			Code:       code,
			FormatName: "IBAN Account",
			HasIBAN:    true,
			Codec:      ibanCodec{country: code},
		})
	}
	return bindings
}
