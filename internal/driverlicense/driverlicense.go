// Package driverlicense builds the driving licence registry. A few formats carry a check
// or encode the holder (Great Britain, Brazil, Singapore and the countries that print a
// national id); regional formats accept a region option naming the issuing state,
// province or prefecture.
package driverlicense

import (
	_ "embed"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
	"github.com/allisson/idsmith/internal/personalid"
	"github.com/allisson/idsmith/internal/taxid"
)

//go:embed tables.yaml
var tablesYAML []byte

// New builds the driving licence registry.
func New(names registry.Names) (*registry.Registry, error) {
	tables, err := registry.LoadTables(tablesYAML)
	if err != nil {
		return nil, err
	}
	return registry.New(domain.KindDriverLicense, names, Bindings(), tables.Descriptors, tables.Aliases)
}

var (
	twoLetters6 = registry.Layout{"aa999999"}
	twoLetters7 = registry.Layout{"aa9999999"}
	twoLetters8 = registry.Layout{"aa99999999"}
)

// Bindings returns the tier a codecs.
func Bindings() []registry.Binding {
	return []registry.Binding{
		{Code: "AU", FormatName: "Driver Licence", Codec: regional{Regions: australianStates, Shape: registry.Layout{"9999999n99"}}},
		{Code: "BR", FormatName: "CNH", Codec: cnh{}},
		{Code: "CA", FormatName: "Driver's Licence", Codec: regional{Regions: canadianProvinces, Shape: registry.Layout{"a999999999999"}}},
		{Code: "CH", FormatName: "Führerausweis", Codec: registry.Layout{"aa9999999999"}},
		{Code: "CL", FormatName: "Licencia de Conducir", Codec: taxid.Codec("CL")},
		{Code: "CN", FormatName: "驾驶证", Codec: registry.Layout{"n99999999999"}},
		{Code: "CZ", FormatName: "Řidičský průkaz", Codec: twoLetters8},
		{
			Code: "DE", FormatName: "Führerschein",
			Codec: germanShapes("B", "M", "K", "D", "F", "S", "H", "N", "HH", "HB", "DO", "E", "DD", "L", "BN"),
		},
		{Code: "EE", FormatName: "Juhiluba", Codec: twoLetters6},
		{Code: "ES", FormatName: "Permiso de Conducir", Codec: personalid.Codec("ES")},
		{Code: "FI", FormatName: "Ajokortti", Codec: twoLetters8},
		{Code: "FR", FormatName: "Permis de Conduire", Codec: registry.Layout{"aa9999999999"}},
		{Code: "GB", FormatName: "Driving Licence", Codec: dvla{}},
		{Code: "GH", FormatName: "Driver's Licence", Codec: registry.Layout{"a999999999"}},
		{Code: "HK", FormatName: "Driving Licence", Codec: twoLetters6},
		{Code: "HU", FormatName: "Vezetői engedély", Codec: twoLetters6},
		{Code: "IN", FormatName: "Driving Licence", Codec: indian{}},
		{Code: "IS", FormatName: "Ökuskírteini", Codec: twoLetters7},
		{Code: "IT", FormatName: "Patente", Codec: registry.Layout{"aa9999999a"}},
		{Code: "JP", FormatName: "運転免許証", Codec: regional{Regions: japanesePrefectures, Embedded: true, Shape: registry.Layout{"9999999999"}}},
		{Code: "KR", FormatName: "운전면허증", Codec: regional{Regions: koreanRegions, Embedded: true, Shape: registry.Layout{"9999999999"}}},
		{Code: "LK", FormatName: "Driving Licence", Codec: registry.Layout{"a9999999"}},
		{Code: "LV", FormatName: "Vadītāja apliecība", Codec: twoLetters6},
		{Code: "MX", FormatName: "Licencia de Conducir", Codec: registry.Layout{"aaaa999999xx"}},
		{Code: "NG", FormatName: "Driver's Licence", Codec: registry.Layout{"aaa999999999"}},
		{Code: "NL", FormatName: "Rijbewijs", Codec: registry.Layout{"n999999999"}},
		{Code: "NZ", FormatName: "Driver Licence", Codec: twoLetters6},
		{Code: "PE", FormatName: "Licencia de Conducir", Codec: registry.Layout{"a99999999"}},
		{Code: "PH", FormatName: "Driver's License", Codec: registry.Layout{"a9999999999"}},
		{Code: "PT", FormatName: "Carta de Condução", Codec: twoLetters7},
		{Code: "RO", FormatName: "Permis de Conducere", Codec: twoLetters8},
		{Code: "SE", FormatName: "Körkort", Codec: personalid.Codec("SE")},
		{Code: "SG", FormatName: "Driving Licence", Codec: nric{}},
		{Code: "SK", FormatName: "Vodičský preukaz", Codec: twoLetters6},
		{Code: "TR", FormatName: "Sürücü Belgesi", Codec: taxid.Codec("TR")},
		{Code: "TW", FormatName: "Driving Licence", Codec: registry.Layout{"a999999999"}},
		{Code: "UA", FormatName: "Driving Licence", Codec: registry.Layout{"aaa999999"}},
		{Code: "US", FormatName: "Driver's License", Codec: regional{Regions: usStates, Shape: registry.Layout{"a999999999999"}}},
		{Code: "ZA", FormatName: "Driver's Licence", Codec: personalid.Codec("ZA")},
	}
}
