package registry

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/identifier/domain"
)

// OneOf serves a country that issues several shapes of the same identifier. Generate
// picks a member at random; the other operations use the first member that validates.
type OneOf []Codec

func (o OneOf) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	return o[rng.IntN(len(o))].Generate(opts, rng)
}

func (o OneOf) match(raw string) Codec {
	for _, c := range o {
		if c.Validate(raw) {
			return c
		}
	}
	return nil
}

func (o OneOf) Validate(raw string) bool {
	return o.match(raw) != nil
}

func (o OneOf) Format(raw string) string {
	if c := o.match(raw); c != nil {
		return c.Format(raw)
	}
	return strings.TrimSpace(raw)
}

func (o OneOf) Parse(raw string) domain.Result {
	c := o.match(raw)
	if parser, ok := c.(Parser); ok {
		return parser.Parse(raw)
	}
	return domain.Result{Raw: Compact(raw)}
}
