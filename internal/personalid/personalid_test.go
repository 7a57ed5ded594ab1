package personalid

import (
	"math/rand/v2"
	"strconv"
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
	genders := []domain.Gender{domain.GenderUnspecified, domain.GenderMale, domain.GenderFemale}

	for _, info := range r.ListCountries() {
		t.Run(info.Code, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(info.Code[0]), uint64(info.Code[1])))
			for seed := 0; seed < 1000; seed++ {
				opts := domain.GenOptions{Gender: genders[seed%3]}
				if seed%2 == 0 {
					opts.Year = 1950 + rng.IntN(51)
				}

				result, err := r.Generate(info.Code, opts, rng)
				require.NoError(t, err)
				require.True(t, result.Valid, "%s %q", info.Code, result.Raw)
				assert.Equal(t, info.Code, result.CountryCode)

				formatted, err := r.Format(info.Code, result.Raw)
				require.NoError(t, err)
				assert.Equal(t, registry.StripSeparators(result.Raw), registry.StripSeparators(formatted))

				valid, err := r.Validate(info.Code, result.Formatted)
				require.NoError(t, err)
				assert.True(t, valid, "formatted value %q", result.Formatted)

				parsed, err := r.Parse(info.Code, result.Raw)
				require.NoError(t, err)
				require.True(t, parsed.Valid)
				if result.Gender != domain.GenderUnspecified {
					assert.Equal(t, result.Gender, parsed.Gender, result.Raw)
					if opts.Gender != domain.GenderUnspecified {
						assert.Equal(t, opts.Gender, result.Gender)
					}
				}
				if result.DOB != "" {
					assert.Equal(t, result.DOB, parsed.DOB, result.Raw)
					if opts.Year != 0 {
						assert.Equal(t, strconv.Itoa(opts.Year), parsed.DOB[:4])
					}
				}
			}
		})
	}
}

func TestRegistry_ListCountries(t *testing.T) {
	r := newRegistry(t)
	infos := r.ListCountries()

	byCode := map[string]domain.CountryInfo{}
	for i, info := range infos {
		if i > 0 {
			assert.Less(t, infos[i-1].Code, info.Code, "sorted and deduplicated")
		}
		byCode[info.Code] = info
	}

	for _, b := range Bindings() {
		assert.Equal(t, domain.TierSpecific, byCode[b.Code].Tier, b.Code)
	}
	assert.Equal(t, "Personnummer", byCode["SE"].FormatName)
	assert.Equal(t, domain.TierGeneric, byCode["PK"].Tier)
	assert.Equal(t, "CNIC", byCode["PK"].FormatName)
	assert.Equal(t, domain.TierAlias, byCode["FO"].Tier)
	assert.Equal(t, "DK", byCode["FO"].ParentCode)
	assert.Equal(t, "CPR-nummer", byCode["FO"].FormatName)
	assert.Equal(t, "NO", byCode["SJ"].ParentCode)
}

func TestRegistry_AliasTransparency(t *testing.T) {
	r := newRegistry(t)
	rng := rand.New(rand.NewPCG(3, 4))

	tests := []struct {
		alias, parent string
	}{
		{alias: "PR", parent: "US"},
		{alias: "GF", parent: "FR"},
		{alias: "CX", parent: "AU"},
		{alias: "NU", parent: "NZ"},
		{alias: "GS", parent: "GB"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			result, err := r.Generate(tt.alias, domain.GenOptions{}, rng)
			require.NoError(t, err)
			assert.Equal(t, tt.alias, result.CountryCode)

			valid, err := r.Validate(tt.parent, result.Raw)
			require.NoError(t, err)
			assert.True(t, valid)
		})
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Generate("ZZ", domain.GenOptions{}, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
	_, err = r.Validate("ZZ", "123")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
}

func TestValidate_KnownValues(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		name     string
		code     string
		value    string
		expected bool
	}{
		{name: "US_SSN", code: "US", value: "123-45-6789", expected: true},
		{name: "US_Area666", code: "US", value: "666-45-6789", expected: false},
		{name: "US_ZeroGroup", code: "US", value: "123-00-6789", expected: false},
		{name: "DE_IdNr", code: "DE", value: "36 574 261 809", expected: true},
		{name: "DE_BadCheck", code: "DE", value: "36574261808", expected: false},
		{name: "DE_NoRepeat", code: "DE", value: "49701934672", expected: false},
		{name: "EE_Isikukood", code: "EE", value: "37601231233", expected: true},
		{name: "EE_BadCheck", code: "EE", value: "37601231234", expected: false},
		{name: "EE_BadMonth", code: "EE", value: "37613231233", expected: false},
		{name: "FI_Hetu", code: "FI", value: "131052-308T", expected: true},
		{name: "FI_Lowercase", code: "FI", value: "131052-308t", expected: true},
		{name: "FI_BadSign", code: "FI", value: "131052G308T", expected: false},
		{name: "SE_Short", code: "SE", value: "811218-9876", expected: true},
		{name: "SE_Long", code: "SE", value: "19811218-9876", expected: true},
		{name: "SE_BadCheck", code: "SE", value: "811218-9875", expected: false},
		{name: "NO_Fodselsnummer", code: "NO", value: "01010551265", expected: true},
		{name: "NO_BadCheck", code: "NO", value: "01010551266", expected: false},
		{name: "DK_CPR", code: "DK", value: "010190-1234", expected: true},
		{name: "DK_BadDate", code: "DK", value: "3202901234", expected: false},
		{name: "PL_Pesel", code: "PL", value: "44051401359", expected: true},
		{name: "PL_2000s", code: "PL", value: "02270101234", expected: true},
		{name: "PL_BadCheck", code: "PL", value: "44051401358", expected: false},
		{name: "ES_DNI", code: "ES", value: "12345678Z", expected: true},
		{name: "ES_Lowercase", code: "ES", value: "12345678z", expected: true},
		{name: "ES_NIE", code: "ES", value: "X1234567L", expected: true},
		{name: "ES_BadLetter", code: "ES", value: "12345678A", expected: false},
		{name: "NL_BSN", code: "NL", value: "111222333", expected: true},
		{name: "NL_BadCheck", code: "NL", value: "111222334", expected: false},
		{name: "LU_Matricule", code: "LU", value: "1983011512313", expected: true},
		{name: "LU_BadVerhoeff", code: "LU", value: "1983011512314", expected: false},
		{name: "FR_NIR", code: "FR", value: "1 85 07 75 123 456 08", expected: true},
		{name: "FR_BadKey", code: "FR", value: "185077512345609", expected: false},
		{name: "GB_NINO", code: "GB", value: "AB 12 34 56 C", expected: true},
		{name: "GB_BadPrefix", code: "GB", value: "GB123456A", expected: false},
		{name: "GB_BadSuffix", code: "GB", value: "AB123456E", expected: false},
		{name: "ZA_ID", code: "ZA", value: "8001015009087", expected: true},
		{name: "ZA_BadCheck", code: "ZA", value: "8001015009088", expected: false},
		{name: "BR_CPF", code: "BR", value: "123.456.789-09", expected: true},
		{name: "BR_AllSame", code: "BR", value: "11111111111", expected: false},
		{name: "IL_Padded", code: "IL", value: "18", expected: true},
		{name: "IL_TeudatZehut", code: "IL", value: "123456782", expected: true},
		{name: "IL_BadCheck", code: "IL", value: "123456783", expected: false},
		{name: "IN_Aadhaar", code: "IN", value: "2345 6789 0124", expected: true},
		{name: "IN_LeadingOne", code: "IN", value: "123456789012", expected: false},
		{name: "CN_ResidentID", code: "CN", value: "11010519491231002X", expected: true},
		{name: "CN_LowercaseX", code: "CN", value: "11010519491231002x", expected: true},
		{name: "CN_Second", code: "CN", value: "440305199003071236", expected: true},
		{name: "CN_BadCheck", code: "CN", value: "440305199003071237", expected: false},
		{name: "AU_TFN", code: "AU", value: "876 543 210", expected: true},
		{name: "AU_BadCheck", code: "AU", value: "876543211", expected: false},
		{name: "NZ_IRD_EightDigits", code: "NZ", value: "49-091-850", expected: true},
		{name: "NZ_IRD", code: "NZ", value: "136006207", expected: true},
		{name: "NZ_IRD_BadCheck", code: "NZ", value: "136006208", expected: false},
		{name: "Generic_Numeric", code: "PK", value: "1234512345671", expected: true},
		{name: "Generic_WrongLength", code: "PK", value: "123", expected: false},
		{name: "Empty", code: "SE", value: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := r.Validate(tt.code, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestParse(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		code      string
		value     string
		gender    domain.Gender
		dob       string
		formatted string
	}{
		{code: "EE", value: "37601231233", gender: domain.GenderMale, dob: "1976-01-23", formatted: "37601231233"},
		{code: "FI", value: "131052-308t", gender: domain.GenderFemale, dob: "1952-10-13", formatted: "131052-308T"},
		{code: "SE", value: "8112189876", gender: domain.GenderMale, dob: "1981-12-18", formatted: "811218-9876"},
		{code: "SE", value: "19811218-9876", gender: domain.GenderMale, dob: "1981-12-18", formatted: "19811218-9876"},
		{code: "NO", value: "01010551265", gender: domain.GenderFemale, dob: "2005-01-01", formatted: "010105 51265"},
		{code: "DK", value: "0101901234", gender: domain.GenderFemale, dob: "1990-01-01", formatted: "010190-1234"},
		{code: "PL", value: "44051401359", gender: domain.GenderMale, dob: "1944-05-14", formatted: "44051401359"},
		{code: "PL", value: "02270101234", gender: domain.GenderMale, dob: "2002-07-01", formatted: "02270101234"},
		{code: "LU", value: "1983011512313", dob: "1983-01-15", formatted: "1983 0115 123 13"},
		{code: "FR", value: "185077512345608", gender: domain.GenderMale, dob: "1985-07", formatted: "1 85 07 75 123 456 08"},
		{code: "ZA", value: "8001015009087", gender: domain.GenderMale, dob: "1980-01-01", formatted: "800101 5009 087"},
		{code: "CN", value: "11010519491231002x", gender: domain.GenderFemale, dob: "1949-12-31", formatted: "11010519491231002X"},
		{code: "US", value: "123456789", formatted: "123-45-6789"},
		{code: "BR", value: "12345678909", formatted: "123.456.789-09"},
		{code: "GB", value: "ab123456c", formatted: "AB 12 34 56 C"},
		{code: "NZ", value: "49091850", formatted: "049-091-850"},
		{code: "IL", value: "18", formatted: "000000018"},
	}

	for _, tt := range tests {
		t.Run(tt.code+"_"+tt.value, func(t *testing.T) {
			result, err := r.Parse(tt.code, tt.value)
			require.NoError(t, err)
			assert.True(t, result.Valid)
			assert.Equal(t, tt.gender, result.Gender)
			assert.Equal(t, tt.dob, result.DOB)
			assert.Equal(t, tt.formatted, result.Formatted)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		result, err := r.Parse("EE", " 123 ")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "123", result.Raw)
		assert.Empty(t, result.DOB)
	})
}

func TestCenturyHeuristics(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		name  string
		code  string
		value string
		dob   string
	}{
		{name: "SE_PivotInside", code: "SE", value: "2501011239", dob: "2025-01-01"},
		{name: "SE_PivotOutside", code: "SE", value: "2601011238", dob: "1926-01-01"},
		{name: "SE_Centenarian", code: "SE", value: "250101+1239", dob: "1925-01-01"},
		{name: "DK_Seq4000_Young", code: "DK", value: "0101364000", dob: "2036-01-01"},
		{name: "DK_Seq4000_Old", code: "DK", value: "0101374000", dob: "1937-01-01"},
		{name: "DK_Seq5000_1800s", code: "DK", value: "0101585000", dob: "1858-01-01"},
		{name: "NO_Individual500", code: "NO", value: "01010551265", dob: "2005-01-01"},
		{name: "ZA_Pivot", code: "ZA", value: "3001015009082", dob: "2030-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Parse(tt.code, tt.value)
			require.NoError(t, err)
			require.True(t, result.Valid)
			assert.Equal(t, tt.dob, result.DOB)
		})
	}
}

func TestGenerate_YearOutOfRange(t *testing.T) {
	r := newRegistry(t)
	rng := rand.New(rand.NewPCG(5, 5))

	tests := []struct {
		code string
		year int
	}{
		{code: "NO", year: 1850},
		{code: "DK", year: 2050},
		{code: "FR", year: 1900},
		{code: "ZA", year: 2090},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			_, err := r.Generate(tt.code, domain.GenOptions{Year: tt.year}, rng)
			assert.ErrorIs(t, err, domain.ErrInvalidOption)
		})
	}

	result, err := r.Generate("PL", domain.GenOptions{Year: 1850, Gender: domain.GenderFemale}, rng)
	require.NoError(t, err)
	assert.Equal(t, "1850", result.DOB[:4])
	assert.Equal(t, domain.GenderFemale, result.Gender)
}

func TestSteuerID_Repetition(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 2000; i++ {
		result, err := steuerID{}.Generate(domain.GenOptions{}, rng)
		require.NoError(t, err)
		require.NotEqual(t, byte('0'), result.Raw[0])
		require.True(t, steuerID{}.Validate(result.Raw), result.Raw)
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, 29, daysInMonth(2000, 2))
	assert.Equal(t, 28, daysInMonth(1900, 2))
	assert.Equal(t, 31, daysInMonth(2021, 12))
	assert.False(t, date{year: 2021, month: 2, day: 29}.valid())
	assert.True(t, date{year: 2024, month: 2, day: 29}.valid())
	assert.Equal(t, "0987-03-04", date{year: 987, month: 3, day: 4}.String())
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 500; i++ {
		male := pick(rng, 2, 899, domain.GenderMale)
		assert.Equal(t, 1, male%2)
		assert.GreaterOrEqual(t, male, 3)
		assert.LessOrEqual(t, male, 899)

		female := pick(rng, 2, 899, domain.GenderFemale)
		assert.Equal(t, 0, female%2)
		assert.GreaterOrEqual(t, female, 2)
		assert.LessOrEqual(t, female, 898)
	}

	assert.Equal(t, 5, pick(rng, 5, 5, domain.GenderMale))
	assert.Equal(t, 4, pick(rng, 4, 5, domain.GenderFemale))
	assert.Equal(t, 5, pick(rng, 5, 5, domain.GenderFemale))
}

func FuzzValidate(f *testing.F) {
	r, err := New(nil)
	if err != nil {
		f.Fatal(err)
	}
	f.Add("SE", "811218+9876")
	f.Add("FI", "131052-308T")
	f.Add("CN", "11010519491231002X")
	f.Add("ES", "X1234567L")
	f.Add("IL", "0")
	f.Add("NZ", "")
	f.Add("FR", string([]byte{0xff, 0x2b}))

	f.Fuzz(func(t *testing.T, code, value string) {
		valid, err := r.Validate(code, value)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
			return
		}
		if valid {
			_, err := r.Format(code, value)
			assert.NoError(t, err)
			result, err := r.Parse(code, value)
			assert.NoError(t, err)
			assert.True(t, result.Valid)
		}
	})
}

func TestCodec(t *testing.T) {
	assert.NotNil(t, Codec("SE"))
	assert.Nil(t, Codec("PK"), "generic tier has no exported codec")
	assert.True(t, Codec("NL").Validate("111222333"))
}
