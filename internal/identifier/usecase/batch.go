package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

const (
	// DefaultMaxBatchSize caps Batch.Count when Config leaves it unset.
	DefaultMaxBatchSize = 1000

	// DefaultWorkers is the number of goroutines generating one batch.
	DefaultWorkers = 4
)

// Config bounds batch generation. Clock supplies the reference time of batches that do
// not set AsOf; nil means time.Now.
type Config struct {
	MaxBatchSize int
	Workers      int
	Clock        func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.MaxBatchSize <= 0 {
		c.MaxBatchSize = DefaultMaxBatchSize
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	return c
}

// newRand returns the request generator. A nil seed draws one from the runtime source.
func newRand(seed *uint64) *rand.Rand {
	s := rand.Uint64()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// generateBatch runs draw once per item, each item with its own generator split off the
// request generator before any worker starts, so a seeded batch is reproducible no
// matter how the workers interleave.
func generateBatch[T any](
	ctx context.Context,
	cfg Config,
	batch Batch,
	draw func(rng *rand.Rand) (T, error),
) ([]T, error) {
	count := batch.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > cfg.MaxBatchSize {
		return nil, errors.Wrapf(domain.ErrInvalidOption, "count %d outside 1-%d", batch.Count, cfg.MaxBatchSize)
	}

	root := newRand(batch.Seed)
	rngs := make([]*rand.Rand, count)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewPCG(root.Uint64(), root.Uint64()))
	}

	results := make([]T, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := draw(rngs[i])
			if err != nil {
				return err
			}
			results[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
