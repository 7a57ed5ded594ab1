// Package solver resolves check digits that have no closed-form formula because the
// weighting dialect depends on the value itself. It fills a value at random, then
// brute-forces at most two free positions (100 candidates) until the dialect chosen for
// that candidate is satisfied, redrawing under an explicit attempt ceiling.
package solver

import (
	"math/rand/v2"

	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

const (
	// DefaultMaxAttempts bounds the outer redraw loop when a Problem sets no ceiling.
	DefaultMaxAttempts = 64

	// MaxFree is the largest number of positions searched per draw.
	MaxFree = 2
)

// ErrInvalidProblem indicates a Problem that cannot be searched (no free positions,
// too many, or positions outside the value).
var ErrInvalidProblem = errors.Wrap(errors.ErrInternal, "invalid solver problem")

// Dialect is one weighting scheme. A value satisfies it when Checksum returns 0.
type Dialect struct {
	Name    string
	Weights []int
	// ProductModulus folds any single product larger than it (product % ProductModulus).
	// Zero disables folding.
	ProductModulus int
	// Modulus reduces the final sum. A modulus of 0 or 1 accepts every value.
	Modulus int
}

// Checksum returns the residue of digits under the dialect.
func (d Dialect) Checksum(digits []int) int {
	sum := 0
	for i, w := range d.Weights {
		if i >= len(digits) {
			break
		}
		product := digits[i] * w
		if d.ProductModulus > 0 && product > d.ProductModulus {
			product %= d.ProductModulus
		}
		sum += product
	}
	if d.Modulus <= 1 {
		return 0
	}
	return sum % d.Modulus
}

// Selector picks the effective dialect for a complete candidate value. Generation and
// validation must share the same Selector.
type Selector func(digits []int) Dialect

// Problem describes one constrained generation.
type Problem struct {
	Length int
	// Fill writes every position of digits. Free positions are overwritten by the search.
	Fill func(rng *rand.Rand, digits []int)
	// Select picks the dialect for a candidate.
	Select Selector
	// Free lists the positions searched exhaustively, at most MaxFree.
	Free []int
	// MaxAttempts bounds the number of redraws; DefaultMaxAttempts when zero.
	MaxAttempts int
}

// Verify reports whether digits satisfy the dialect Select picks for them.
func (p Problem) Verify(digits []int) bool {
	if len(digits) != p.Length {
		return false
	}
	return p.Select(digits).Checksum(digits) == 0
}

func (p Problem) validate() error {
	if len(p.Free) == 0 || len(p.Free) > MaxFree {
		return errors.Wrapf(ErrInvalidProblem, "%d free positions", len(p.Free))
	}
	for _, pos := range p.Free {
		if pos < 0 || pos >= p.Length {
			return errors.Wrapf(ErrInvalidProblem, "free position %d outside length %d", pos, p.Length)
		}
	}
	if p.Fill == nil || p.Select == nil {
		return errors.Wrap(ErrInvalidProblem, "missing fill or select")
	}
	return nil
}

// Solve returns a value satisfying p. The candidate space of each draw is scanned from a
// random offset so every satisfying assignment can be produced. When every draw up to
// the ceiling fails it returns domain.ErrSolverExhausted.
func Solve(p Problem, rng *rand.Rand) ([]int, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	space := 1
	for range p.Free {
		space *= 10
	}

	digits := make([]int, p.Length)
	for attempt := 0; attempt < attempts; attempt++ {
		p.Fill(rng, digits)

		start := rng.IntN(space)
		for i := 0; i < space; i++ {
			assign(digits, p.Free, (start+i)%space)
			if p.Verify(digits) {
				return digits, nil
			}
		}
	}

	return nil, errors.Wrapf(domain.ErrSolverExhausted, "no solution after %d draws", attempts)
}

// assign spreads candidate's decimal digits over the free positions, last position
// taking the least significant digit.
func assign(digits, free []int, candidate int) {
	for i := len(free) - 1; i >= 0; i-- {
		digits[free[i]] = candidate % 10
		candidate /= 10
	}
}

// Redraw calls draw until it reports success, at most maxAttempts times
// (DefaultMaxAttempts when maxAttempts is not positive).
func Redraw(maxAttempts int, draw func() bool) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if draw() {
			return nil
		}
	}
	return errors.Wrapf(domain.ErrRedrawExhausted, "no valid draw after %d attempts", maxAttempts)
}
