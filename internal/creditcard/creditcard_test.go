package creditcard

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	for _, brand := range Brands() {
		t.Run(string(brand), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(len(brand)), 42))
			for i := 0; i < 1000; i++ {
				card, err := Generate(Options{Brand: brand, Now: now}, rng)
				require.NoError(t, err)
				assert.True(t, card.Valid)
				assert.True(t, Validate(card.Number), card.Number)
				assert.True(t, Validate(card.Formatted), card.Formatted)
				assert.Len(t, card.Number, brand.Length())
				assert.Len(t, card.CVV, brand.CVVLength())
				assert.Equal(t, card.Number, strings.ReplaceAll(card.Formatted, " ", ""))

				detected, ok := Detect(card.Number)
				require.True(t, ok, card.Number)
				assert.Equal(t, brand, detected)

				yy := card.Expiry[3:]
				assert.GreaterOrEqual(t, yy, "26")
				assert.LessOrEqual(t, yy, "31")
			}
		})
	}
}

func TestGenerate_RandomBrand(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	seen := map[Brand]bool{}
	for i := 0; i < 200; i++ {
		card, err := Generate(Options{Now: now}, rng)
		require.NoError(t, err)
		seen[card.Brand] = true
	}
	assert.Len(t, seen, len(Brands()))

	_, err := Generate(Options{Brand: "unionpay", Now: now}, rng)
	assert.ErrorIs(t, err, ErrUnsupportedBrand)
}

func TestGenerate_ReferenceTime(t *testing.T) {
	_, err := Generate(Options{Brand: BrandVisa}, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrMissingReferenceTime)

	jan := time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2027, time.December, 30, 0, 0, 0, 0, time.UTC)
	first, err := Generate(Options{Brand: BrandVisa, Now: jan}, rand.New(rand.NewPCG(3, 3)))
	require.NoError(t, err)
	second, err := Generate(Options{Brand: BrandVisa, Now: dec}, rand.New(rand.NewPCG(3, 3)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected bool
	}{
		{name: "Visa", number: "4539 1488 0343 6467", expected: true},
		{name: "ClassicLuhn", number: "79927398713", expected: false},
		{name: "Amex", number: "378282246310005", expected: true},
		{name: "BadCheck", number: "4539148803436468", expected: false},
		{name: "TooLong", number: "45391488034364670000", expected: false},
		{name: "Letters", number: "4539-1488-0343-646A", expected: false},
		{name: "Empty", number: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.number))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "3782 822463 10005", Format(BrandAmex, "378282246310005"))
	assert.Equal(t, "3056 930902 5904", Format(BrandDiners, "30569309025904"))
	assert.Equal(t, "4539 1488 0343 6467", Format(BrandVisa, "4539148803436467"))
	assert.Equal(t, "not a card", Format(BrandVisa, " not a card "))
}

func TestParseBrand(t *testing.T) {
	b, err := ParseBrand(" JCB ")
	require.NoError(t, err)
	assert.Equal(t, BrandJCB, b)
	assert.Equal(t, "JCB", b.DisplayName())
	assert.Equal(t, "Mastercard", BrandMastercard.DisplayName())
	assert.Empty(t, Brand("").DisplayName())

	b, err = ParseBrand("")
	require.NoError(t, err)
	assert.Equal(t, Brand(""), b)

	_, err = ParseBrand("maestro")
	assert.ErrorIs(t, err, ErrUnsupportedBrand)
}

func TestInspect(t *testing.T) {
	card := Inspect("3782 822463 10005")
	assert.True(t, card.Valid)
	assert.Equal(t, BrandAmex, card.Brand)
	assert.Equal(t, "378282246310005", card.Number)
	assert.Equal(t, "3782 822463 10005", card.Formatted)

	card = Inspect("6011111111111117")
	assert.True(t, card.Valid)
	assert.Equal(t, BrandDiscover, card.Brand)

	card = Inspect(" 4539148803436468 ")
	assert.False(t, card.Valid)
	assert.Equal(t, "4539148803436468", card.Formatted)
}

func FuzzValidate(f *testing.F) {
	f.Add("4539148803436467")
	f.Add("")
	f.Add("3")
	f.Add(string([]byte{0xff}))

	f.Fuzz(func(t *testing.T, number string) {
		if Validate(number) {
			_, _ = Detect(number)
			assert.NotEmpty(t, Format(BrandVisa, number))
		}
	})
}
