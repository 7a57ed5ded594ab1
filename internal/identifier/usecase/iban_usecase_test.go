package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/idsmith/internal/country"
	"github.com/allisson/idsmith/internal/creditcard"
	"github.com/allisson/idsmith/internal/iban"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

func TestIBANUseCase(t *testing.T) {
	names, err := country.Load()
	require.NoError(t, err)
	uc := NewIBANUseCase(Config{MaxBatchSize: 100}, names)
	ctx := context.Background()

	t.Run("Generate_Country", func(t *testing.T) {
		ibans, err := uc.Generate(ctx, "de", Batch{Count: 100})
		require.NoError(t, err)
		require.Len(t, ibans, 100)
		for _, out := range ibans {
			assert.True(t, out.Valid)
			assert.Equal(t, "DE", out.CountryCode)
			assert.Equal(t, "Germany", out.CountryName)
			assert.Len(t, out.IBAN, 22)
			assert.Equal(t, out.IBAN, iban.Compact(out.Formatted))
		}
	})

	t.Run("Generate_RandomCountry", func(t *testing.T) {
		ibans, err := uc.Generate(ctx, "", Batch{Count: 30, Seed: seed(7)})
		require.NoError(t, err)
		for _, out := range ibans {
			assert.True(t, iban.IsSupported(out.CountryCode))
			assert.True(t, out.Valid)
		}
	})

	t.Run("Generate_Unsupported", func(t *testing.T) {
		_, err := uc.Generate(ctx, "ZZ", Batch{})
		assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
	})

	t.Run("Validate", func(t *testing.T) {
		out, err := uc.Validate(ctx, "gb82 west 1234 5698 7654 32")
		require.NoError(t, err)
		assert.True(t, out.Valid)
		assert.Equal(t, "GB82WEST12345698765432", out.IBAN)
		assert.Equal(t, "GB82 WEST 1234 5698 7654 32", out.Formatted)
		assert.Equal(t, "82", out.CheckDigits)
		assert.Equal(t, "WEST12345698765432", out.BBAN)
		assert.Equal(t, "United Kingdom", out.CountryName)

		out, err = uc.Validate(ctx, "GB83WEST12345698765432")
		require.NoError(t, err)
		assert.False(t, out.Valid)

		out, err = uc.Validate(ctx, "x")
		require.NoError(t, err)
		assert.False(t, out.Valid)
		assert.Empty(t, out.CountryCode)
	})

	t.Run("ListCountries", func(t *testing.T) {
		countries, err := uc.ListCountries(ctx)
		require.NoError(t, err)
		require.Len(t, countries, len(iban.SupportedCountries()))
		for _, c := range countries {
			if c.Code == "GB" {
				assert.Equal(t, 18, c.BBANLength)
				assert.Equal(t, "4!a6!n8!n", c.Layout)
			}
		}
	})
}

func TestCardUseCase(t *testing.T) {
	uc := NewCardUseCase(Config{})
	ctx := context.Background()

	cards, err := uc.Generate(ctx, "AMEX", Batch{Count: 20})
	require.NoError(t, err)
	for _, card := range cards {
		assert.Equal(t, creditcard.BrandAmex, card.Brand)
		assert.True(t, creditcard.Validate(card.Number))
		assert.Len(t, card.CVV, 4)
	}

	cards, err = uc.Generate(ctx, "", Batch{Count: 20})
	require.NoError(t, err)
	assert.Len(t, cards, 20)

	_, err = uc.Generate(ctx, "maestro", Batch{})
	assert.ErrorIs(t, err, creditcard.ErrUnsupportedBrand)

	card, err := uc.Validate(ctx, "4539 1488 0343 6467")
	require.NoError(t, err)
	assert.True(t, card.Valid)
	assert.Equal(t, creditcard.BrandVisa, card.Brand)
}

func TestCardUseCase_ReferenceTime(t *testing.T) {
	ctx := context.Background()
	seed := uint64(11)

	clock := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)
	uc := NewCardUseCase(Config{Clock: func() time.Time { return clock }})

	first, err := uc.Generate(ctx, "visa", Batch{Count: 5, Seed: &seed})
	require.NoError(t, err)
	for _, card := range first {
		yy := card.Expiry[3:]
		assert.GreaterOrEqual(t, yy, "30")
		assert.LessOrEqual(t, yy, "35")
	}

	clock = time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)
	second, err := uc.Generate(ctx, "visa", Batch{Count: 5, Seed: &seed, AsOf: asOf})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	third, err := uc.Generate(ctx, "visa", Batch{Count: 5, Seed: &seed})
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestLEIUseCase(t *testing.T) {
	uc := NewLEIUseCase(Config{})
	ctx := context.Background()

	leis, err := uc.Generate(ctx, "JP", Batch{Count: 10, Seed: seed(1)})
	require.NoError(t, err)
	for _, l := range leis {
		assert.True(t, l.Valid)
		assert.Equal(t, "JP", l.CountryCode)
	}

	_, err = uc.Generate(ctx, "J", Batch{})
	assert.ErrorIs(t, err, domain.ErrInvalidOption)

	out, err := uc.Validate(ctx, "5493001KJTIIGC8Y1R12")
	require.NoError(t, err)
	assert.True(t, out.Valid)
}
