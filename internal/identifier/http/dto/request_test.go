package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/idsmith/internal/identifier/domain"
)

func TestGenerateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateRequest
		errText string
	}{
		{name: "Success_Empty", req: GenerateRequest{}},
		{name: "Success_AllKnobs", req: GenerateRequest{
			Country: "se", Gender: "female", Year: 1985, BankCode: "01", HolderType: "p", Region: "nsw", Count: 10,
		}},
		{name: "Error_Region", req: GenerateRequest{Region: "ABCD"}, errText: "region"},
		{name: "Error_Country", req: GenerateRequest{Country: "SWE"}, errText: "country"},
		{name: "Error_Gender", req: GenerateRequest{Gender: "x"}, errText: "gender"},
		{name: "Error_YearLow", req: GenerateRequest{Year: 1700}, errText: "year"},
		{name: "Error_YearHigh", req: GenerateRequest{Year: 2100}, errText: "year"},
		{name: "Error_HolderType", req: GenerateRequest{HolderType: "PC"}, errText: "holder_type"},
		{name: "Error_NegativeCount", req: GenerateRequest{Count: -2}, errText: "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.errText == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestGenerateRequest_ToOptions(t *testing.T) {
	seed := uint64(9)
	req := GenerateRequest{
		Country: " nz ", Gender: "M", Year: 1990, BankCode: " 01 ", HolderType: "c", Region: " tx ", Count: 3, Seed: &seed,
	}

	opts, batch, err := req.ToOptions()
	require.NoError(t, err)
	assert.Equal(t, domain.GenOptions{
		Country: "NZ", Gender: domain.GenderMale, Year: 1990, BankCode: "01", HolderType: "C", Region: "TX",
	}, opts)
	assert.Equal(t, 3, batch.Count)
	assert.Equal(t, &seed, batch.Seed)
}

func TestValueRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ValueRequest{Country: "US", Value: "123-45-6789"}).Validate())
	assert.Error(t, (&ValueRequest{Value: "123-45-6789"}).Validate())
	assert.Error(t, (&ValueRequest{Country: "US", Value: "   "}).Validate())
	assert.Error(t, (&ValueRequest{Country: "US"}).Validate())

	assert.NoError(t, (&ValueRequest{Value: "GB82WEST12345698765432"}).ValidateValueOnly())
	assert.Error(t, (&ValueRequest{Value: ""}).ValidateValueOnly())
	assert.Error(t, (&ValueRequest{Value: string(make([]byte, MaxValueLength+1))}).ValidateValueOnly())
}

func TestCardGenerateRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CardGenerateRequest{}).Validate())
	assert.NoError(t, (&CardGenerateRequest{Brand: "AMEX"}).Validate())
	assert.Error(t, (&CardGenerateRequest{Brand: "maestro"}).Validate())
	assert.Error(t, (&CardGenerateRequest{Count: -1}).Validate())
	assert.NoError(t, (&CardGenerateRequest{AsOf: "2030-06-15"}).Validate())
	assert.Error(t, (&CardGenerateRequest{AsOf: "15/06/2030"}).Validate())
}

func TestCardGenerateRequest_Batch(t *testing.T) {
	seed := uint64(3)
	batch := (&CardGenerateRequest{Count: 2, Seed: &seed, AsOf: "2030-06-15"}).Batch()
	assert.Equal(t, 2, batch.Count)
	assert.Equal(t, &seed, batch.Seed)
	assert.Equal(t, time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC), batch.AsOf)

	assert.True(t, (&CardGenerateRequest{}).Batch().AsOf.IsZero())
}

func TestIBANAndLEIGenerateRequest_Validate(t *testing.T) {
	assert.NoError(t, (&IBANGenerateRequest{Country: "de", Count: 5}).Validate())
	assert.Error(t, (&IBANGenerateRequest{Country: "D"}).Validate())
	assert.Equal(t, 5, (&IBANGenerateRequest{Count: 5}).Batch().Count)

	assert.NoError(t, (&LEIGenerateRequest{}).Validate())
	assert.Error(t, (&LEIGenerateRequest{Country: "12"}).Validate())
}
