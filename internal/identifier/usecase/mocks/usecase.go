// Package mocks provides mock implementations of the identifier use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/idsmith/internal/creditcard"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/usecase"
	"github.com/allisson/idsmith/internal/lei"
)

// MockIdentifierUseCase is a mock implementation of usecase.IdentifierUseCase.
type MockIdentifierUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Generate(
	ctx context.Context,
	kind domain.Kind,
	opts domain.GenOptions,
	batch usecase.Batch,
) ([]domain.Result, error) {
	args := m.Called(ctx, kind, opts, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Result), args.Error(1)
}

// Validate mocks the Validate method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Validate(ctx context.Context, kind domain.Kind, country, value string) (bool, error) {
	args := m.Called(ctx, kind, country, value)
	return args.Bool(0), args.Error(1)
}

// Format mocks the Format method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Format(ctx context.Context, kind domain.Kind, country, value string) (string, error) {
	args := m.Called(ctx, kind, country, value)
	return args.String(0), args.Error(1)
}

// Parse mocks the Parse method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Parse(
	ctx context.Context,
	kind domain.Kind,
	country, value string,
) (domain.Result, error) {
	args := m.Called(ctx, kind, country, value)
	return args.Get(0).(domain.Result), args.Error(1)
}

// ListCountries mocks the ListCountries method of IdentifierUseCase.
func (m *MockIdentifierUseCase) ListCountries(ctx context.Context, kind domain.Kind) ([]domain.CountryInfo, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountryInfo), args.Error(1)
}

// MockIBANUseCase is a mock implementation of usecase.IBANUseCase.
type MockIBANUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of IBANUseCase.
func (m *MockIBANUseCase) Generate(ctx context.Context, country string, batch usecase.Batch) ([]domain.IBAN, error) {
	args := m.Called(ctx, country, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IBAN), args.Error(1)
}

// Validate mocks the Validate method of IBANUseCase.
func (m *MockIBANUseCase) Validate(ctx context.Context, value string) (domain.IBAN, error) {
	args := m.Called(ctx, value)
	return args.Get(0).(domain.IBAN), args.Error(1)
}

// ListCountries mocks the ListCountries method of IBANUseCase.
func (m *MockIBANUseCase) ListCountries(ctx context.Context) ([]domain.IBANCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IBANCountry), args.Error(1)
}

// MockCardUseCase is a mock implementation of usecase.CardUseCase.
type MockCardUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of CardUseCase.
func (m *MockCardUseCase) Generate(ctx context.Context, brand string, batch usecase.Batch) ([]creditcard.Card, error) {
	args := m.Called(ctx, brand, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]creditcard.Card), args.Error(1)
}

// Validate mocks the Validate method of CardUseCase.
func (m *MockCardUseCase) Validate(ctx context.Context, value string) (creditcard.Card, error) {
	args := m.Called(ctx, value)
	return args.Get(0).(creditcard.Card), args.Error(1)
}

// MockLEIUseCase is a mock implementation of usecase.LEIUseCase.
type MockLEIUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of LEIUseCase.
func (m *MockLEIUseCase) Generate(ctx context.Context, country string, batch usecase.Batch) ([]lei.LEI, error) {
	args := m.Called(ctx, country, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lei.LEI), args.Error(1)
}

// Validate mocks the Validate method of LEIUseCase.
func (m *MockLEIUseCase) Validate(ctx context.Context, value string) (lei.LEI, error) {
	args := m.Called(ctx, value)
	return args.Get(0).(lei.LEI), args.Error(1)
}

var (
	_ usecase.IdentifierUseCase = (*MockIdentifierUseCase)(nil)
	_ usecase.IBANUseCase       = (*MockIBANUseCase)(nil)
	_ usecase.CardUseCase       = (*MockCardUseCase)(nil)
	_ usecase.LEIUseCase        = (*MockLEIUseCase)(nil)
)
