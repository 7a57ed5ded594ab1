package registry

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// luhnCodec is a six digit value whose last digit is a Luhn check digit, formatted
// as "XXX-XXX".
type luhnCodec struct{}

func (luhnCodec) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d := make([]int, 5)
	for i := range d {
		d[i] = rng.IntN(10)
	}
	d = append(d, checksum.LuhnCheckDigit(d))
	return domain.Result{Raw: checksum.String(d)}, nil
}

func (luhnCodec) Validate(raw string) bool {
	d, ok := checksum.Digits(StripSeparators(raw))
	return ok && len(d) == 6 && checksum.LuhnValidate(d)
}

func (luhnCodec) Format(raw string) string {
	s := StripSeparators(raw)
	return s[:3] + "-" + s[3:]
}

func (luhnCodec) Parse(raw string) domain.Result {
	s := StripSeparators(raw)
	return domain.Result{Raw: s, CheckDigits: s[5:]}
}

// brokenCodec always fails to generate.
type brokenCodec struct{ luhnCodec }

func (brokenCodec) Generate(domain.GenOptions, *rand.Rand) (domain.Result, error) {
	return domain.Result{}, domain.ErrSolverExhausted
}

type names map[string]string

func (n names) Name(code string) (string, bool) {
	name, ok := n[code]
	return name, ok
}

var testNames = names{
	"US": "United States",
	"PR": "Puerto Rico",
	"DE": "Germany",
	"IS": "Iceland",
	"GU": "Guam",
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New(
		domain.KindPersonalID,
		testNames,
		[]Binding{
			{Code: "US", FormatName: "Test Number", Codec: luhnCodec{}},
			{Code: "us", FormatName: "Shadowed", Codec: brokenCodec{}},
			{Code: "DE", FormatName: "Broken", Codec: brokenCodec{}},
		},
		[]Descriptor{
			{Code: "IS", FormatName: "Kennitala", Length: 10, NumericOnly: true},
			{Code: "US", FormatName: "Shadowed Descriptor", Length: 4},
			{Code: "XK", FormatName: "Letters", Length: 8},
		},
		[]Alias{
			{Code: "PR", Parent: "US"},
			{Code: "GU", Parent: "us"},
			{Code: "US", Parent: "IS"},
		},
	)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		aliases []Alias
		descs   []Descriptor
		binds   []Binding
	}{
		{
			name:    "Error_SelfAlias",
			aliases: []Alias{{Code: "AQ", Parent: "AQ"}},
		},
		{
			name:    "Error_AliasChain",
			aliases: []Alias{{Code: "PR", Parent: "US"}, {Code: "VI", Parent: "PR"}},
		},
		{
			name:    "Error_UnknownParent",
			aliases: []Alias{{Code: "PR", Parent: "ZZ"}},
		},
		{
			name:  "Error_BadCode",
			binds: []Binding{{Code: "USA", Codec: luhnCodec{}}},
		},
		{
			name:  "Error_NilCodec",
			binds: []Binding{{Code: "FR"}},
		},
		{
			name:  "Error_ZeroLengthDescriptor",
			descs: []Descriptor{{Code: "IS", Length: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binds := append([]Binding{{Code: "US", Codec: luhnCodec{}}}, tt.binds...)
			_, err := New(domain.KindTaxID, testNames, binds, tt.descs, tt.aliases)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTable)
			assert.True(t, errors.Is(err, errors.ErrInternal))
		})
	}

	t.Run("Success_NilNames", func(t *testing.T) {
		r, err := New(domain.KindTaxID, nil, []Binding{{Code: "US", Codec: luhnCodec{}}}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "US", r.ListCountries()[0].Name)
		assert.Equal(t, domain.KindTaxID, r.Kind())
	})
}

func TestRegistry_Generate(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("Success_Specific", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 1))
		for i := 0; i < 1000; i++ {
			result, err := r.Generate("us", domain.GenOptions{}, rng)
			require.NoError(t, err)
			assert.Equal(t, "US", result.CountryCode)
			assert.Equal(t, "United States", result.CountryName)
			assert.Equal(t, "Test Number", result.FormatName)
			assert.True(t, result.Valid)
			assert.Equal(t, result.Raw[:3]+"-"+result.Raw[3:], result.Formatted)
		}
	})

	t.Run("Success_AliasTransparency", func(t *testing.T) {
		result, err := r.Generate("PR", domain.GenOptions{}, rand.New(rand.NewPCG(2, 2)))
		require.NoError(t, err)
		assert.Equal(t, "PR", result.CountryCode)
		assert.Equal(t, "Puerto Rico", result.CountryName)
		assert.Equal(t, "Test Number", result.FormatName)
		assert.True(t, result.Valid)

		valid, err := r.Validate("PR", result.Raw)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Success_Generic", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 3))
		for i := 0; i < 1000; i++ {
			result, err := r.Generate("IS", domain.GenOptions{}, rng)
			require.NoError(t, err)
			assert.Len(t, result.Raw, 10)
			assert.NotEqual(t, byte('0'), result.Raw[0])
			assert.True(t, result.Valid)

			result, err = r.Generate("XK", domain.GenOptions{}, rng)
			require.NoError(t, err)
			assert.Len(t, result.Raw, 8)
			assert.True(t, result.Raw[0] >= 'A' && result.Raw[0] <= 'Z')
			assert.Equal(t, "XK", result.CountryName, "falls back to the code without a name")
		}
	})

	t.Run("Success_RandomCode", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(4, 4))
		for i := 0; i < 50; i++ {
			result, err := r.Generate("", domain.GenOptions{}, rng)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrSolverExhausted, "only DE is broken")
				continue
			}
			assert.True(t, r.IsSupported(result.CountryCode))
		}
	})

	t.Run("Error_Unsupported", func(t *testing.T) {
		_, err := r.Generate("ZZ", domain.GenOptions{}, rand.New(rand.NewPCG(5, 5)))
		assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	t.Run("Error_InvalidOption", func(t *testing.T) {
		_, err := r.Generate("US", domain.GenOptions{Year: 1500}, rand.New(rand.NewPCG(5, 5)))
		assert.ErrorIs(t, err, domain.ErrInvalidOption)
	})

	t.Run("Error_CodecFailure", func(t *testing.T) {
		_, err := r.Generate("DE", domain.GenOptions{}, rand.New(rand.NewPCG(6, 6)))
		assert.ErrorIs(t, err, domain.ErrSolverExhausted)
	})
}

func TestRegistry_ValidateFormatParse(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("Validate", func(t *testing.T) {
		tests := []struct {
			code     string
			value    string
			expected bool
		}{
			{code: "US", value: "799273", expected: checksum.LuhnValidate([]int{7, 9, 9, 2, 7, 3})},
			{code: "US", value: "", expected: false},
			{code: "US", value: "abc", expected: false},
			{code: "IS", value: "1234567890", expected: true},
			{code: "IS", value: "123456789A", expected: false},
			{code: "XK", value: "abcd-1234", expected: true},
			{code: "XK", value: "ABCD_1234", expected: false},
		}
		for _, tt := range tests {
			valid, err := r.Validate(tt.code, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid, "%s %q", tt.code, tt.value)
		}
	})

	t.Run("Format", func(t *testing.T) {
		result, err := r.Generate("US", domain.GenOptions{}, rand.New(rand.NewPCG(7, 7)))
		require.NoError(t, err)

		formatted, err := r.Format("GU", result.Raw)
		require.NoError(t, err)
		assert.Equal(t, result.Raw, StripSeparators(formatted))

		formatted, err = r.Format("US", " 12 ")
		require.NoError(t, err)
		assert.Equal(t, "12", formatted, "invalid values are only trimmed")
	})

	t.Run("Parse", func(t *testing.T) {
		result, err := r.Generate("US", domain.GenOptions{}, rand.New(rand.NewPCG(8, 8)))
		require.NoError(t, err)

		parsed, err := r.Parse("PR", result.Formatted)
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, "PR", parsed.CountryCode)
		assert.Equal(t, result.Raw, parsed.Raw)
		assert.Equal(t, result.Raw[5:], parsed.CheckDigits)

		parsed, err = r.Parse("US", "junk")
		require.NoError(t, err)
		assert.False(t, parsed.Valid)
		assert.Empty(t, parsed.CheckDigits)
		assert.Equal(t, "junk", parsed.Raw)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := r.Validate("ZZ", "1")
		assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
		_, err = r.Format("ZZ", "1")
		assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
		_, err = r.Parse("ZZ", "1")
		assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
		assert.False(t, r.IsSupported("ZZ"))
	})
}

func TestRegistry_ListCountries(t *testing.T) {
	r := newTestRegistry(t)

	infos := r.ListCountries()
	codes := make([]string, 0, len(infos))
	for _, info := range infos {
		codes = append(codes, info.Code)
	}
	assert.Equal(t, []string{"DE", "GU", "IS", "PR", "US", "XK"}, codes)

	byCode := map[string]domain.CountryInfo{}
	for _, info := range infos {
		byCode[info.Code] = info
	}
	assert.Equal(t, domain.TierSpecific, byCode["US"].Tier)
	assert.Equal(t, "Test Number", byCode["US"].FormatName)
	assert.Equal(t, domain.TierGeneric, byCode["IS"].Tier)
	assert.Equal(t, domain.TierAlias, byCode["PR"].Tier)
	assert.Equal(t, "US", byCode["PR"].ParentCode)
	assert.Equal(t, "Test Number", byCode["PR"].FormatName)
	assert.Empty(t, byCode["US"].ParentCode)
}

func TestLoadTables(t *testing.T) {
	data := []byte(`
descriptors:
  - {code: "NO", name: Fødselsnummer, length: 11, numeric: true}
  - {code: AT, name: Sozialversicherungsnummer, length: 10, numeric: true}
aliases:
  - {code: SJ, parent: "NO"}
`)
	tables, err := LoadTables(data)
	require.NoError(t, err)
	require.Len(t, tables.Descriptors, 2)
	assert.Equal(t, Descriptor{Code: "NO", FormatName: "Fødselsnummer", Length: 11, NumericOnly: true}, tables.Descriptors[0])
	assert.Equal(t, []Alias{{Code: "SJ", Parent: "NO"}}, tables.Aliases)

	r, err := New(domain.KindPersonalID, nil, nil, tables.Descriptors, tables.Aliases)
	require.NoError(t, err)
	assert.True(t, r.IsSupported("sj"))

	_, err = LoadTables([]byte("descriptors: {"))
	assert.Error(t, err)
}

func TestStripSeparators(t *testing.T) {
	assert.Equal(t, "123456789", StripSeparators("123-45.67/8 9"))
	assert.Equal(t, "", StripSeparators(" - "))
	assert.Equal(t, "ABC", StripSeparators("ABC"))
}

func FuzzGenericValidate(f *testing.F) {
	codec := genericCodec{desc: Descriptor{Code: "IS", Length: 10, NumericOnly: true}}
	f.Add("1234567890")
	f.Add("")
	f.Add(strings.Repeat("9", 64))
	f.Add(string([]byte{0xff, 0x00}))

	f.Fuzz(func(t *testing.T, input string) {
		if codec.Validate(input) {
			assert.Len(t, codec.Format(input), 10)
		}
	})
}
