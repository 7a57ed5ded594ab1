package driverlicense

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/idsmith/internal/country"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	names, err := country.Load()
	require.NoError(t, err)
	r, err := New(names)
	require.NoError(t, err)
	return r
}

func TestRegistry_RoundTrip(t *testing.T) {
	r := newRegistry(t)

	for _, info := range r.ListCountries() {
		t.Run(info.Code, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(info.Code[0]), uint64(info.Code[1])))
			for seed := 0; seed < 1000; seed++ {
				result, err := r.Generate(info.Code, domain.GenOptions{}, rng)
				require.NoError(t, err)
				require.True(t, result.Valid, "%s %q", info.Code, result.Raw)
				assert.Equal(t, info.Code, result.CountryCode)

				formatted, err := r.Format(info.Code, result.Raw)
				require.NoError(t, err)
				assert.Equal(t, registry.StripSeparators(result.Raw), registry.StripSeparators(formatted))

				valid, err := r.Validate(info.Code, result.Formatted)
				require.NoError(t, err)
				assert.True(t, valid, "formatted value %q", result.Formatted)
			}
		})
	}
}

func TestRegistry_ListCountries(t *testing.T) {
	r := newRegistry(t)

	byCode := map[string]domain.CountryInfo{}
	for _, info := range r.ListCountries() {
		byCode[info.Code] = info
	}

	for _, b := range Bindings() {
		assert.Equal(t, domain.TierSpecific, byCode[b.Code].Tier, b.Code)
	}
	assert.Equal(t, "CNH", byCode["BR"].FormatName)
	assert.Equal(t, "Führerschein", byCode["DE"].FormatName)
	assert.Equal(t, domain.TierGeneric, byCode["AT"].Tier)
	assert.Equal(t, "Führerschein", byCode["AT"].FormatName)
	assert.Equal(t, domain.TierAlias, byCode["PR"].Tier)
	assert.Equal(t, "US", byCode["PR"].ParentCode)
}

func TestValidate_KnownValues(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		name     string
		code     string
		value    string
		expected bool
	}{
		{name: "GB", code: "GB", value: "MORGA753116SM9IJ", expected: true},
		{name: "GB_Spaced", code: "GB", value: "morga 753116 sm9ij", expected: true},
		{name: "GB_ShortSurname", code: "GB", value: "AB999753116SM9IJ", expected: true},
		{name: "GB_BadMonth", code: "GB", value: "MORGA713116SM9IJ", expected: false},
		{name: "GB_LetterAfterPadding", code: "GB", value: "M9RGA753116SM9IJ", expected: false},
		{name: "BR", code: "BR", value: "40281736535", expected: true},
		{name: "BR_Zeros", code: "BR", value: "12345678900", expected: true},
		{name: "BR_BadCheck", code: "BR", value: "40281736536", expected: false},
		{name: "BR_SameDigits", code: "BR", value: "00000000000", expected: false},
		{name: "SG_S", code: "SG", value: "S1234567D", expected: true},
		{name: "SG_T", code: "SG", value: "T0123456G", expected: true},
		{name: "SG_BadLetter", code: "SG", value: "S1234567A", expected: false},
		{name: "SG_BadPrefix", code: "SG", value: "F1234567D", expected: false},
		{name: "IN", code: "IN", value: "MH0220190000001", expected: true},
		{name: "IN_Spaced", code: "IN", value: "MH02 20190000001", expected: true},
		{name: "IN_UnknownState", code: "IN", value: "ZZ0220190000001", expected: false},
		{name: "IN_ZeroRTO", code: "IN", value: "MH0020190000001", expected: false},
		{name: "DE_Berlin", code: "DE", value: "B1234567890", expected: true},
		{name: "DE_Hamburg", code: "DE", value: "HH123456789", expected: true},
		{name: "DE_UnknownPrefix", code: "DE", value: "X1234567890", expected: false},
		{name: "JP", code: "JP", value: "131234567890", expected: true},
		{name: "JP_BadPrefecture", code: "JP", value: "481234567890", expected: false},
		{name: "KR", code: "KR", value: "111234567890", expected: true},
		{name: "KR_BadRegion", code: "KR", value: "101234567890", expected: false},
		{name: "US", code: "US", value: "A123456789012", expected: true},
		{name: "US_Short", code: "US", value: "A12345678901", expected: false},
		{name: "AU", code: "AU", value: "1234567890", expected: true},
		{name: "AU_ZeroEighth", code: "AU", value: "1234567090", expected: false},
		{name: "IT", code: "IT", value: "AB1234567C", expected: true},
		{name: "MX", code: "MX", value: "ABCD1234565Z", expected: true},
		{name: "ES", code: "ES", value: "12345678Z", expected: true},
		{name: "SE", code: "SE", value: "811218-9876", expected: true},
		{name: "ZA", code: "ZA", value: "8001015009087", expected: true},
		{name: "TR", code: "TR", value: "10000000146", expected: true},
		{name: "CL", code: "CL", value: "12.345.678-5", expected: true},
		{name: "Generic_AT", code: "AT", value: "12345678", expected: true},
		{name: "Alias_PR", code: "PR", value: "A123456789012", expected: true},
		{name: "Junk", code: "GB", value: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := r.Validate(tt.code, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestGenerate_Region(t *testing.T) {
	r := newRegistry(t)
	rng := rand.New(rand.NewPCG(3, 5))

	tests := []struct {
		name     string
		code     string
		region   string
		expected string
	}{
		{name: "US_State", code: "US", region: "ca", expected: "CA"},
		{name: "AU_State", code: "AU", region: "NSW", expected: "NSW"},
		{name: "CA_Province", code: "CA", region: "QC", expected: "QC"},
		{name: "JP_Prefecture", code: "JP", region: "13", expected: "13"},
		{name: "KR_Region", code: "KR", region: "26", expected: "26"},
		{name: "IN_State", code: "IN", region: "mh", expected: "MH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Generate(tt.code, domain.GenOptions{Region: tt.region}, rng)
			require.NoError(t, err)
			assert.True(t, result.Valid)
			assert.Equal(t, tt.expected, result.Region)
		})
	}

	t.Run("Random", func(t *testing.T) {
		result, err := r.Generate("US", domain.GenOptions{}, rng)
		require.NoError(t, err)
		assert.Contains(t, usStates, result.Region)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := r.Generate("US", domain.GenOptions{Region: "ZZ"}, rng)
		assert.ErrorIs(t, err, domain.ErrInvalidOption)

		_, err = r.Generate("JP", domain.GenOptions{Region: "48"}, rng)
		assert.ErrorIs(t, err, domain.ErrInvalidOption)
	})
}

func TestParse(t *testing.T) {
	r := newRegistry(t)

	t.Run("JP_Prefecture", func(t *testing.T) {
		parsed, err := r.Parse("JP", "131234567890")
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, "13", parsed.Region)
	})

	t.Run("IN_State", func(t *testing.T) {
		parsed, err := r.Parse("IN", "mh0220190000001")
		require.NoError(t, err)
		assert.Equal(t, "MH", parsed.Region)
		assert.Equal(t, "MH02 20190000001", parsed.Formatted)
	})

	t.Run("GB_Gender", func(t *testing.T) {
		parsed, err := r.Parse("GB", "MORGA753116SM9IJ")
		require.NoError(t, err)
		assert.Equal(t, domain.GenderFemale, parsed.Gender)
		assert.Equal(t, "MORGA 753116 SM9IJ", parsed.Formatted)

		parsed, err = r.Parse("GB", "JONES710238AB1CD")
		require.NoError(t, err)
		assert.Equal(t, domain.GenderMale, parsed.Gender)
	})

	t.Run("BR_CheckDigits", func(t *testing.T) {
		parsed, err := r.Parse("BR", "40281736535")
		require.NoError(t, err)
		assert.Equal(t, "35", parsed.CheckDigits)
	})

	t.Run("Invalid", func(t *testing.T) {
		parsed, err := r.Parse("JP", "481234567890")
		require.NoError(t, err)
		assert.False(t, parsed.Valid)
		assert.Empty(t, parsed.Region)
	})
}

func TestDVLA_Options(t *testing.T) {
	r := newRegistry(t)
	rng := rand.New(rand.NewPCG(11, 13))

	for i := 0; i < 50; i++ {
		result, err := r.Generate("GB", domain.GenOptions{Year: 1983, Gender: domain.GenderFemale}, rng)
		require.NoError(t, err)
		assert.Equal(t, byte('8'), result.Raw[5])
		assert.Equal(t, byte('3'), result.Raw[10])
		assert.GreaterOrEqual(t, result.Raw[6], byte('5'))
		assert.Equal(t, domain.GenderFemale, result.Gender)
	}
}

func FuzzValidate(f *testing.F) {
	r, err := New(nil)
	if err != nil {
		f.Fatal(err)
	}
	f.Add("GB", "MORGA753116SM9IJ")
	f.Add("IN", "MH")
	f.Add("JP", "1")
	f.Add("BR", "")
	f.Add("SG", string([]byte{0xff, 0x53}))

	f.Fuzz(func(t *testing.T, code, value string) {
		valid, err := r.Validate(code, value)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
			return
		}
		if valid {
			_, err := r.Format(code, value)
			assert.NoError(t, err)
			_, err = r.Parse(code, value)
			assert.NoError(t, err)
		}
	})
}
