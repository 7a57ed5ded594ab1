package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// identifierUseCase dispatches to the registry of the requested kind.
type identifierUseCase struct {
	registries map[domain.Kind]Registry
	cfg        Config
}

// NewIdentifierUseCase builds the use case over one registry per kind.
func NewIdentifierUseCase(cfg Config, registries ...Registry) IdentifierUseCase {
	byKind := make(map[domain.Kind]Registry, len(registries))
	for _, r := range registries {
		byKind[r.Kind()] = r
	}
	return &identifierUseCase{registries: byKind, cfg: cfg.withDefaults()}
}

func (u *identifierUseCase) registry(kind domain.Kind) (Registry, error) {
	r, ok := u.registries[kind]
	if !ok {
		return nil, errors.Wrapf(domain.ErrUnsupportedKind, "%q", kind)
	}
	return r, nil
}

// Generate draws batch.Count values. An empty opts.Country picks a random supported
// country per item.
func (u *identifierUseCase) Generate(
	ctx context.Context,
	kind domain.Kind,
	opts domain.GenOptions,
	batch Batch,
) ([]domain.Result, error) {
	r, err := u.registry(kind)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return generateBatch(ctx, u.cfg, batch, func(rng *rand.Rand) (domain.Result, error) {
		return r.Generate(opts.Country, opts, rng)
	})
}

func (u *identifierUseCase) Validate(_ context.Context, kind domain.Kind, country, value string) (bool, error) {
	r, err := u.registry(kind)
	if err != nil {
		return false, err
	}
	return r.Validate(country, value)
}

func (u *identifierUseCase) Format(_ context.Context, kind domain.Kind, country, value string) (string, error) {
	r, err := u.registry(kind)
	if err != nil {
		return "", err
	}
	return r.Format(country, value)
}

func (u *identifierUseCase) Parse(_ context.Context, kind domain.Kind, country, value string) (domain.Result, error) {
	r, err := u.registry(kind)
	if err != nil {
		return domain.Result{}, err
	}
	return r.Parse(country, value)
}

func (u *identifierUseCase) ListCountries(_ context.Context, kind domain.Kind) ([]domain.CountryInfo, error) {
	r, err := u.registry(kind)
	if err != nil {
		return nil, err
	}
	return r.ListCountries(), nil
}
