package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/allisson/idsmith/internal/creditcard"
)

type cardUseCase struct {
	cfg Config
}

// NewCardUseCase builds the payment card use case.
func NewCardUseCase(cfg Config) CardUseCase {
	return &cardUseCase{cfg: cfg.withDefaults()}
}

// Generate returns batch.Count cards of brand; an empty brand picks one per card. Expiry
// dates are drawn after batch.AsOf, or after the configured clock when AsOf is zero.
func (u *cardUseCase) Generate(ctx context.Context, brand string, batch Batch) ([]creditcard.Card, error) {
	b, err := creditcard.ParseBrand(brand)
	if err != nil {
		return nil, err
	}
	now := batch.AsOf
	if now.IsZero() {
		now = u.cfg.Clock()
	}
	return generateBatch(ctx, u.cfg, batch, func(rng *rand.Rand) (creditcard.Card, error) {
		return creditcard.Generate(creditcard.Options{Brand: b, Now: now}, rng)
	})
}

// Validate never fails; the card carries the Luhn result, the detected brand and the
// brand-aware formatting.
func (u *cardUseCase) Validate(_ context.Context, value string) (creditcard.Card, error) {
	return creditcard.Inspect(value), nil
}
