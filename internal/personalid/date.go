package personalid

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// yearRange bounds the birth years a format can encode unambiguously.
type yearRange struct {
	min, max int
}

// defaultYears is the birth year window used when no year is requested.
var defaultYears = yearRange{min: 1940, max: 2005}

type date struct {
	year, month, day int
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d date) valid() bool {
	return d.month >= 1 && d.month <= 12 && d.day >= 1 && d.day <= daysInMonth(d.year, d.month)
}

// String renders the date as YYYY-MM-DD.
func (d date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// birthDate draws a date in the requested year, or in the default window clipped to r
// when no year was requested. A requested year outside r is an invalid option.
func birthDate(rng *rand.Rand, year int, r yearRange) (date, error) {
	lo, hi := max(defaultYears.min, r.min), min(defaultYears.max, r.max)
	if year != 0 {
		if year < r.min || year > r.max {
			return date{}, errors.Wrapf(domain.ErrInvalidOption, "year %d outside %d-%d", year, r.min, r.max)
		}
		lo, hi = year, year
	}
	y := lo + rng.IntN(hi-lo+1)
	m := 1 + rng.IntN(12)
	d := 1 + rng.IntN(daysInMonth(y, m))
	return date{year: y, month: m, day: d}, nil
}

// pick returns a uniform integer in [lo, hi] with the parity the gender demands: odd for
// male, even for female. A range holding no value of that parity yields lo.
func pick(rng *rand.Rand, lo, hi int, g domain.Gender) int {
	first := lo
	if (lo%2 == 1) != (g == domain.GenderMale) {
		first++
	}
	if first > hi {
		return lo
	}
	return first + 2*rng.IntN((hi-first)/2+1)
}

func genderOf(odd bool) domain.Gender {
	if odd {
		return domain.GenderMale
	}
	return domain.GenderFemale
}
