package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/allisson/idsmith/internal/iban"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

type ibanUseCase struct {
	names registry.Names
	cfg   Config
}

// NewIBANUseCase builds the IBAN use case. names supplies country display names.
func NewIBANUseCase(cfg Config, names registry.Names) IBANUseCase {
	return &ibanUseCase{names: names, cfg: cfg.withDefaults()}
}

func (u *ibanUseCase) describe(value string) domain.IBAN {
	compact := iban.Compact(value)
	out := domain.IBAN{IBAN: compact, Formatted: iban.Format(compact), Valid: iban.Validate(compact)}
	if country, check, bban, ok := iban.Split(compact); ok {
		out.CountryCode = country
		out.CheckDigits = check
		out.BBAN = bban
		out.CountryName = u.name(country)
	}
	return out
}

func (u *ibanUseCase) name(code string) string {
	if u.names == nil {
		return code
	}
	if name, ok := u.names.Name(code); ok {
		return name
	}
	return code
}

// Generate returns batch.Count IBANs for country, or for random IBAN countries when
// country is empty.
func (u *ibanUseCase) Generate(ctx context.Context, country string, batch Batch) ([]domain.IBAN, error) {
	return generateBatch(ctx, u.cfg, batch, func(rng *rand.Rand) (domain.IBAN, error) {
		value, err := iban.Generate(country, rng)
		if err != nil {
			return domain.IBAN{}, err
		}
		return u.describe(value), nil
	})
}

// Validate never fails; a malformed value comes back with Valid false.
func (u *ibanUseCase) Validate(_ context.Context, value string) (domain.IBAN, error) {
	return u.describe(value), nil
}

func (u *ibanUseCase) ListCountries(_ context.Context) ([]domain.IBANCountry, error) {
	codes := iban.SupportedCountries()
	countries := make([]domain.IBANCountry, 0, len(codes))
	for _, code := range codes {
		spec, _ := iban.Spec(code)
		countries = append(countries, domain.IBANCountry{
			Code:       code,
			Name:       u.name(code),
			BBANLength: spec.Length(),
			Layout:     spec.Notation(),
		})
	}
	return countries, nil
}
