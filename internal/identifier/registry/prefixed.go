package registry

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/identifier/domain"
)

// Prefixed puts a fixed letter prefix in front of another codec's values, as VAT
// numbers do with their country code. Validation accepts the value with the prefix, with
// one of the alternate prefixes, or bare.
type Prefixed struct {
	Prefix    string
	Alternate []string
	Codec     Codec
	// Render formats the bare body; nil defers to Codec.Format.
	Render    func(body string) string
}

func (p Prefixed) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	result, err := p.Codec.Generate(opts, rng)
	if err != nil {
		return domain.Result{}, err
	}
	result.Raw = p.Prefix + Compact(result.Raw)
	result.Formatted = ""
	return result, nil
}

// body returns the compacted value without its prefix.
func (p Prefixed) body(raw string) string {
	s := Compact(raw)
	for _, prefix := range append([]string{p.Prefix}, p.Alternate...) {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return s[len(prefix):]
		}
	}
	return s
}

func (p Prefixed) Validate(raw string) bool {
	return p.Codec.Validate(p.body(raw))
}

func (p Prefixed) Format(raw string) string {
	body := p.body(raw)
	if p.Render != nil {
		return p.Prefix + p.Render(body)
	}
	return p.Prefix + p.Codec.Format(body)
}

// Bare renders a body without separators.
func Bare(body string) string {
	return body
}

func (p Prefixed) Parse(raw string) domain.Result {
	body := p.body(raw)
	result := domain.Result{Raw: body}
	if parser, ok := p.Codec.(Parser); ok {
		result = parser.Parse(body)
	}
	result.Raw = p.Prefix + Compact(result.Raw)
	result.Formatted = p.Format(raw)
	return result
}
