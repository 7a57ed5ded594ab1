// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/idsmith/internal/creditcard"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/usecase"
	customValidation "github.com/allisson/idsmith/internal/validation"
)

// MaxValueLength bounds every value submitted for validation or parsing.
const MaxValueLength = 64

// GenerateRequest contains the generation knobs for a registry-backed kind. Every field
// is optional; Count defaults to 1 and a missing Seed draws a random one.
type GenerateRequest struct {
	Country    string  `json:"country"`
	Gender     string  `json:"gender"`
	Year       int     `json:"year"`
	BankCode   string  `json:"bank_code"`
	HolderType string  `json:"holder_type"`
	Region     string  `json:"region"`
	Count      int     `json:"count"`
	Seed       *uint64 `json:"seed"`
}

// Validate checks the knobs that do not depend on the country.
func (r *GenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Country, customValidation.CountryCode),
		validation.Field(&r.Gender, customValidation.Gender),
		validation.Field(&r.Year, validation.Min(domain.MinYear), validation.Max(domain.MaxYear)),
		validation.Field(&r.BankCode, validation.Length(0, 16)),
		validation.Field(&r.HolderType, validation.Length(0, 1)),
		validation.Field(&r.Region, validation.Length(0, 3)),
		validation.Field(&r.Count, validation.Min(1)),
	)
}

// ToOptions converts the request into generation options and a batch.
func (r *GenerateRequest) ToOptions() (domain.GenOptions, usecase.Batch, error) {
	gender, err := domain.ParseGender(r.Gender)
	if err != nil {
		return domain.GenOptions{}, usecase.Batch{}, err
	}
	opts := domain.GenOptions{
		Country:    strings.ToUpper(strings.TrimSpace(r.Country)),
		Gender:     gender,
		Year:       r.Year,
		BankCode:   strings.TrimSpace(r.BankCode),
		HolderType: strings.ToUpper(strings.TrimSpace(r.HolderType)),
		Region:     strings.ToUpper(strings.TrimSpace(r.Region)),
	}
	return opts, usecase.Batch{Count: r.Count, Seed: r.Seed}, nil
}

// ValueRequest carries a value to validate, format or parse. Country is required for
// registry-backed kinds and ignored by IBAN, card and LEI endpoints.
type ValueRequest struct {
	Country string `json:"country"`
	Value   string `json:"value"`
}

// Validate checks a request for a registry-backed kind.
func (r *ValueRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Country, validation.Required, customValidation.CountryCode),
		validation.Field(&r.Value, validation.Required, customValidation.NotBlank, validation.Length(1, MaxValueLength)),
	)
}

// ValidateValueOnly checks a request whose country is carried inside the value.
func (r *ValueRequest) ValidateValueOnly() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value, validation.Required, customValidation.NotBlank, validation.Length(1, MaxValueLength)),
	)
}

// IBANGenerateRequest asks for IBANs of one country, or of random IBAN countries.
type IBANGenerateRequest struct {
	Country string  `json:"country"`
	Count   int     `json:"count"`
	Seed    *uint64 `json:"seed"`
}

// Validate checks if the IBAN generate request is valid.
func (r *IBANGenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Country, customValidation.CountryCode),
		validation.Field(&r.Count, validation.Min(1)),
	)
}

// Batch returns the batch settings of the request.
func (r *IBANGenerateRequest) Batch() usecase.Batch {
	return usecase.Batch{Count: r.Count, Seed: r.Seed}
}

// AsOfLayout is the date layout of the as_of field.
const AsOfLayout = "2006-01-02"

// CardGenerateRequest asks for payment card numbers of one brand, or of random brands.
// AsOf pins the date expiry dates are drawn after, so a seeded request stays
// reproducible; it defaults to today.
type CardGenerateRequest struct {
	Brand string  `json:"brand"`
	Count int     `json:"count"`
	Seed  *uint64 `json:"seed"`
	AsOf  string  `json:"as_of"`
}

func brandNames() []interface{} {
	brands := creditcard.Brands()
	names := make([]interface{}, 0, len(brands))
	for _, b := range brands {
		names = append(names, string(b))
	}
	return names
}

// Validate checks if the card generate request is valid.
func (r *CardGenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Brand, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			return validation.In(brandNames()...).Validate(strings.ToLower(strings.TrimSpace(s)))
		})),
		validation.Field(&r.Count, validation.Min(1)),
		validation.Field(&r.AsOf, validation.Date(AsOfLayout)),
	)
}

// Batch returns the batch settings of the request. An unparsable AsOf, which Validate
// rejects, is left zero.
func (r *CardGenerateRequest) Batch() usecase.Batch {
	batch := usecase.Batch{Count: r.Count, Seed: r.Seed}
	if asOf, err := time.Parse(AsOfLayout, strings.TrimSpace(r.AsOf)); err == nil {
		batch.AsOf = asOf
	}
	return batch
}

// LEIGenerateRequest asks for LEIs, optionally pinned to a jurisdiction.
type LEIGenerateRequest struct {
	Country string  `json:"country"`
	Count   int     `json:"count"`
	Seed    *uint64 `json:"seed"`
}

// Validate checks if the LEI generate request is valid.
func (r *LEIGenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Country, customValidation.CountryCode),
		validation.Field(&r.Count, validation.Min(1)),
	)
}

// Batch returns the batch settings of the request.
func (r *LEIGenerateRequest) Batch() usecase.Batch {
	return usecase.Batch{Count: r.Count, Seed: r.Seed}
}
