package domain

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/errors"
)

// Gender is the optional gender knob used by personal id formats that encode it.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

// Year bounds accepted by the Year option.
const (
	MinYear = 1800
	MaxYear = 2099
)

// ParseGender accepts "m", "male", "f", "female" in any case. Empty means unspecified.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GenderUnspecified, nil
	case "m", "male":
		return GenderMale, nil
	case "f", "female":
		return GenderFemale, nil
	default:
		return GenderUnspecified, errors.Wrapf(ErrInvalidOption, "unknown gender %q", s)
	}
}

// Resolve returns g, or a uniformly random gender when g is unspecified.
func (g Gender) Resolve(rng *rand.Rand) Gender {
	if g != GenderUnspecified {
		return g
	}
	if rng.IntN(2) == 0 {
		return GenderMale
	}
	return GenderFemale
}

// String returns the string representation of the gender.
func (g Gender) String() string {
	return string(g)
}

// GenOptions holds the independently optional generation knobs. A zero value for any
// field means "choose at random from the valid domain".
type GenOptions struct {
	Country    string
	Gender     Gender
	Year       int
	BankCode   string
	HolderType string
	// Region selects a state, province or prefecture for formats issued regionally.
	Region     string
}

// Validate checks the knobs that can be checked without knowing the country.
func (o GenOptions) Validate() error {
	switch o.Gender {
	case GenderUnspecified, GenderMale, GenderFemale:
	default:
		return errors.Wrapf(ErrInvalidOption, "unknown gender %q", string(o.Gender))
	}
	if o.Year != 0 && (o.Year < MinYear || o.Year > MaxYear) {
		return errors.Wrapf(ErrInvalidOption, "year %d outside %d-%d", o.Year, MinYear, MaxYear)
	}
	return nil
}
