package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/idsmith/internal/creditcard"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/usecase"
	"github.com/allisson/idsmith/internal/identifier/usecase/mocks"
	"github.com/allisson/idsmith/internal/lei"
	"github.com/allisson/idsmith/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordGenerated(ctx context.Context, kind string, count int) {
	m.Called(ctx, kind, count)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectRecorded(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "identifier", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "identifier", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNewIdentifierUseCaseWithMetrics(t *testing.T) {
	decorator := usecase.NewIdentifierUseCaseWithMetrics(&mocks.MockIdentifierUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*usecase.IdentifierUseCase)(nil), decorator)
}

func TestIdentifierMetricsDecorator_Generate(t *testing.T) {
	ctx := context.Background()
	opts := domain.GenOptions{Country: "DE"}
	batch := usecase.Batch{Count: 2}

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &mocks.MockIdentifierUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		expected := []domain.Result{{CountryCode: "DE", Valid: true}, {CountryCode: "DE", Valid: true}}

		mockUseCase.On("Generate", ctx, domain.KindTaxID, opts, batch).Return(expected, nil).Once()
		expectRecorded(mockMetrics, ctx, "tax-id_generate", "success")
		mockMetrics.On("RecordGenerated", ctx, "tax-id", 2).Return().Once()

		decorator := usecase.NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics)
		results, err := decorator.Generate(ctx, domain.KindTaxID, opts, batch)

		assert.NoError(t, err)
		assert.Equal(t, expected, results)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &mocks.MockIdentifierUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Generate", ctx, domain.KindTaxID, opts, batch).
			Return(nil, domain.ErrUnsupportedCountry).
			Once()
		expectRecorded(mockMetrics, ctx, "tax-id_generate", "error")
		mockMetrics.On("RecordGenerated", ctx, "tax-id", 0).Return().Once()

		decorator := usecase.NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics)
		results, err := decorator.Generate(ctx, domain.KindTaxID, opts, batch)

		assert.ErrorIs(t, err, domain.ErrUnsupportedCountry)
		assert.Nil(t, results)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestIdentifierMetricsDecorator_Lookups(t *testing.T) {
	ctx := context.Background()
	mockUseCase := &mocks.MockIdentifierUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("Validate", ctx, domain.KindPersonalID, "US", "123-45-6789").Return(true, nil).Once()
	mockUseCase.On("Format", ctx, domain.KindPersonalID, "US", "123456789").Return("123-45-6789", nil).Once()
	mockUseCase.On("Parse", ctx, domain.KindPersonalID, "US", "123456789").
		Return(domain.Result{Raw: "123456789", Valid: true}, nil).
		Once()
	mockUseCase.On("ListCountries", ctx, domain.KindPersonalID).
		Return(nil, errors.New("boom")).
		Once()
	expectRecorded(mockMetrics, ctx, "personal-id_validate", "success")
	expectRecorded(mockMetrics, ctx, "personal-id_format", "success")
	expectRecorded(mockMetrics, ctx, "personal-id_parse", "success")
	expectRecorded(mockMetrics, ctx, "personal-id_countries", "error")

	decorator := usecase.NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics)

	valid, err := decorator.Validate(ctx, domain.KindPersonalID, "US", "123-45-6789")
	assert.NoError(t, err)
	assert.True(t, valid)

	formatted, err := decorator.Format(ctx, domain.KindPersonalID, "US", "123456789")
	assert.NoError(t, err)
	assert.Equal(t, "123-45-6789", formatted)

	result, err := decorator.Parse(ctx, domain.KindPersonalID, "US", "123456789")
	assert.NoError(t, err)
	assert.True(t, result.Valid)

	_, err = decorator.ListCountries(ctx, domain.KindPersonalID)
	assert.Error(t, err)

	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestIBANMetricsDecorator(t *testing.T) {
	ctx := context.Background()
	mockUseCase := &mocks.MockIBANUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("Generate", ctx, "DE", usecase.Batch{}).Return([]domain.IBAN{{Valid: true}}, nil).Once()
	mockUseCase.On("Validate", ctx, "junk").Return(domain.IBAN{IBAN: "JUNK"}, nil).Once()
	mockUseCase.On("ListCountries", ctx).Return([]domain.IBANCountry{{Code: "DE"}}, nil).Once()
	expectRecorded(mockMetrics, ctx, "iban_generate", "success")
	mockMetrics.On("RecordGenerated", ctx, "iban", 1).Return().Once()
	expectRecorded(mockMetrics, ctx, "iban_validate", "success")
	expectRecorded(mockMetrics, ctx, "iban_countries", "success")

	decorator := usecase.NewIBANUseCaseWithMetrics(mockUseCase, mockMetrics)

	ibans, err := decorator.Generate(ctx, "DE", usecase.Batch{})
	assert.NoError(t, err)
	assert.Len(t, ibans, 1)

	out, err := decorator.Validate(ctx, "junk")
	assert.NoError(t, err)
	assert.False(t, out.Valid)

	countries, err := decorator.ListCountries(ctx)
	assert.NoError(t, err)
	assert.Len(t, countries, 1)

	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestCardAndLEIMetricsDecorators(t *testing.T) {
	ctx := context.Background()
	mockCards := &mocks.MockCardUseCase{}
	mockLEIs := &mocks.MockLEIUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockCards.On("Generate", ctx, "visa", usecase.Batch{}).Return(nil, creditcard.ErrUnsupportedBrand).Once()
	mockCards.On("Validate", ctx, "4539148803436467").Return(creditcard.Card{Valid: true}, nil).Once()
	mockLEIs.On("Generate", ctx, "US", usecase.Batch{}).Return([]lei.LEI{{Valid: true}}, nil).Once()
	mockLEIs.On("Validate", ctx, "x").Return(lei.LEI{Code: "X"}, nil).Once()
	expectRecorded(mockMetrics, ctx, "card_generate", "error")
	mockMetrics.On("RecordGenerated", ctx, "card", 0).Return().Once()
	expectRecorded(mockMetrics, ctx, "card_validate", "success")
	expectRecorded(mockMetrics, ctx, "lei_generate", "success")
	mockMetrics.On("RecordGenerated", ctx, "lei", 1).Return().Once()
	expectRecorded(mockMetrics, ctx, "lei_validate", "success")

	cards := usecase.NewCardUseCaseWithMetrics(mockCards, mockMetrics)
	leis := usecase.NewLEIUseCaseWithMetrics(mockLEIs, mockMetrics)

	_, err := cards.Generate(ctx, "visa", usecase.Batch{})
	assert.ErrorIs(t, err, creditcard.ErrUnsupportedBrand)
	card, err := cards.Validate(ctx, "4539148803436467")
	assert.NoError(t, err)
	assert.True(t, card.Valid)

	generated, err := leis.Generate(ctx, "US", usecase.Batch{})
	assert.NoError(t, err)
	assert.Len(t, generated, 1)
	out, err := leis.Validate(ctx, "x")
	assert.NoError(t, err)
	assert.False(t, out.Valid)

	mockCards.AssertExpectations(t)
	mockLEIs.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}
