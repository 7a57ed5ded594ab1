package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/allisson/idsmith/internal/lei"
)

type leiUseCase struct {
	cfg Config
}

// NewLEIUseCase builds the LEI use case.
func NewLEIUseCase(cfg Config) LEIUseCase {
	return &leiUseCase{cfg: cfg.withDefaults()}
}

func (u *leiUseCase) Generate(ctx context.Context, country string, batch Batch) ([]lei.LEI, error) {
	return generateBatch(ctx, u.cfg, batch, func(rng *rand.Rand) (lei.LEI, error) {
		return lei.Generate(lei.Options{Country: country}, rng)
	})
}

func (u *leiUseCase) Validate(_ context.Context, value string) (lei.LEI, error) {
	return lei.Parse(value), nil
}
