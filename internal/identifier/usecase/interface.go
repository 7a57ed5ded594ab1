// Package usecase orchestrates identifier generation and validation on top of the
// per-kind registries, the IBAN codec, payment cards and LEIs. It owns randomness: each
// request gets its own generator, seeded from the request seed when one is given, and
// each batch item gets a generator of its own.
package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/allisson/idsmith/internal/creditcard"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/lei"
)

// Registry is the tiered registry of one identifier kind.
type Registry interface {
	Kind() domain.Kind
	Generate(code string, opts domain.GenOptions, rng *rand.Rand) (domain.Result, error)
	Validate(code, value string) (bool, error)
	Format(code, value string) (string, error)
	Parse(code, value string) (domain.Result, error)
	ListCountries() []domain.CountryInfo
}

// Batch controls how many values a generate call returns and how they are seeded.
// A nil Seed draws a random one. AsOf anchors time-dependent fields (card expiry
// dates); zero means the use case clock.
type Batch struct {
	Count int
	Seed  *uint64
	AsOf  time.Time
}

// IdentifierUseCase serves the registry-backed kinds.
type IdentifierUseCase interface {
	Generate(ctx context.Context, kind domain.Kind, opts domain.GenOptions, batch Batch) ([]domain.Result, error)
	Validate(ctx context.Context, kind domain.Kind, country, value string) (bool, error)
	Format(ctx context.Context, kind domain.Kind, country, value string) (string, error)
	Parse(ctx context.Context, kind domain.Kind, country, value string) (domain.Result, error)
	ListCountries(ctx context.Context, kind domain.Kind) ([]domain.CountryInfo, error)
}

// IBANUseCase generates and inspects IBANs.
type IBANUseCase interface {
	Generate(ctx context.Context, country string, batch Batch) ([]domain.IBAN, error)
	Validate(ctx context.Context, value string) (domain.IBAN, error)
	ListCountries(ctx context.Context) ([]domain.IBANCountry, error)
}

// CardUseCase generates and validates payment card numbers.
type CardUseCase interface {
	Generate(ctx context.Context, brand string, batch Batch) ([]creditcard.Card, error)
	Validate(ctx context.Context, value string) (creditcard.Card, error)
}

// LEIUseCase generates and validates Legal Entity Identifiers.
type LEIUseCase interface {
	Generate(ctx context.Context, country string, batch Batch) ([]lei.LEI, error)
	Validate(ctx context.Context, value string) (lei.LEI, error)
}
