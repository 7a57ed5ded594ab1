// Package registry resolves a country code to the codec that generates, validates,
// formats and parses identifiers of one kind.
//
// Resolution runs through three tiers in priority order: a specific codec bound to the
// code, a generic length/charset descriptor, and finally a territory alias that borrows
// its sovereign parent's codec. Results served through an alias carry the alias's code
// and display name, never the parent's.
package registry

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// ErrInvalidTable indicates bindings, descriptors or aliases that violate the registry
// invariants. It is raised by New, never by lookups.
var ErrInvalidTable = errors.Wrap(errors.ErrInternal, "invalid registry table")

// Codec implements one national format.
type Codec interface {
	// Generate returns a fresh value. CountryCode and CountryName are filled by the
	// registry.
	Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error)
	// Validate reports whether raw is a well-formed value with correct check digits.
	// It never panics on junk.
	Validate(raw string) bool
	// Format renders a valid raw value in its display form.
	Format(raw string) string
}

// Parser is implemented by codecs that can decompose a valid value into result fields
// (date of birth, gender, bank code, ...).
type Parser interface {
	Parse(raw string) domain.Result
}

// Names resolves display names for country codes.
type Names interface {
	Name(code string) (string, bool)
}

// Binding attaches a codec to a country code (tier a).
type Binding struct {
	Code       string
	FormatName string
	HasIBAN    bool
	Codec      Codec
}

// Alias makes a territory borrow its sovereign parent's codec (tier c).
type Alias struct {
	Code   string `yaml:"code"`
	Parent string `yaml:"parent"`
}

type entry struct {
	code       string
	name       string
	formatName string
	hasIBAN    bool
	tier       domain.Tier
	parent     string
	codec      Codec
}

// Registry is an immutable, concurrency-safe tiered lookup for one identifier kind.
type Registry struct {
	kind    domain.Kind
	entries map[string]entry
	codes   []string
}

// New builds a registry. Bindings are ordered: the first binding for a code wins, and a
// binding always shadows a descriptor or alias for the same code. Aliases must point to
// a code served by a binding or descriptor; chains and self aliases are rejected.
func New(kind domain.Kind, names Names, bindings []Binding, descriptors []Descriptor, aliases []Alias) (*Registry, error) {
	entries := make(map[string]entry, len(bindings)+len(descriptors)+len(aliases))

	displayName := func(code string) string {
		if names != nil {
			if name, ok := names.Name(code); ok {
				return name
			}
		}
		return code
	}

	for _, b := range bindings {
		code, err := normalizeCode(b.Code)
		if err != nil {
			return nil, err
		}
		if b.Codec == nil {
			return nil, errors.Wrapf(ErrInvalidTable, "binding %s has no codec", code)
		}
		if _, exists := entries[code]; exists {
			continue
		}
		entries[code] = entry{
			code:       code,
			name:       displayName(code),
			formatName: b.FormatName,
			hasIBAN:    b.HasIBAN,
			tier:       domain.TierSpecific,
			codec:      b.Codec,
		}
	}

	for _, d := range descriptors {
		code, err := normalizeCode(d.Code)
		if err != nil {
			return nil, err
		}
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, exists := entries[code]; exists {
			continue
		}
		entries[code] = entry{
			code:       code,
			name:       displayName(code),
			formatName: d.FormatName,
			tier:       domain.TierGeneric,
			codec:      genericCodec{desc: d},
		}
	}

	resolved := make(map[string]entry, len(aliases))
	for _, a := range aliases {
		code, err := normalizeCode(a.Code)
		if err != nil {
			return nil, err
		}
		parentCode, err := normalizeCode(a.Parent)
		if err != nil {
			return nil, err
		}
		if code == parentCode {
			return nil, errors.Wrapf(ErrInvalidTable, "alias %s points to itself", code)
		}
		parent, ok := entries[parentCode]
		if !ok {
			if isAlias(aliases, parentCode) {
				return nil, errors.Wrapf(ErrInvalidTable, "alias %s points to alias %s", code, parentCode)
			}
			return nil, errors.Wrapf(ErrInvalidTable, "alias %s points to unknown parent %s", code, parentCode)
		}
		if _, exists := entries[code]; exists {
			continue
		}
		if _, exists := resolved[code]; exists {
			continue
		}
		resolved[code] = entry{
			code:       code,
			name:       displayName(code),
			formatName: parent.formatName,
			hasIBAN:    parent.hasIBAN,
			tier:       domain.TierAlias,
			parent:     parentCode,
			codec:      parent.codec,
		}
	}
	for code, e := range resolved {
		entries[code] = e
	}

	codes := make([]string, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &Registry{kind: kind, entries: entries, codes: codes}, nil
}

func isAlias(aliases []Alias, code string) bool {
	for _, a := range aliases {
		if strings.EqualFold(strings.TrimSpace(a.Code), code) {
			return true
		}
	}
	return false
}

func normalizeCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 2 {
		return "", errors.Wrapf(ErrInvalidTable, "invalid country code %q", code)
	}
	return normalized, nil
}

// Kind returns the identifier kind served by the registry.
func (r *Registry) Kind() domain.Kind {
	return r.kind
}

func (r *Registry) resolve(code string) (entry, error) {
	e, ok := r.entries[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return entry{}, errors.Wrapf(domain.ErrUnsupportedCountry, "%s %q", r.kind, code)
	}
	return e, nil
}

func (e entry) stamp(result domain.Result) domain.Result {
	result.CountryCode = e.code
	result.CountryName = e.name
	if result.FormatName == "" {
		result.FormatName = e.formatName
	}
	return result
}

// Generate produces a value for code, or for a random supported code when code is empty.
// The returned result is re-validated through the codec.
func (r *Registry) Generate(code string, opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	if err := opts.Validate(); err != nil {
		return domain.Result{}, err
	}
	if strings.TrimSpace(code) == "" {
		code = r.RandomCode(rng)
	}
	e, err := r.resolve(code)
	if err != nil {
		return domain.Result{}, err
	}

	opts.Country = e.code
	result, err := e.codec.Generate(opts, rng)
	if err != nil {
		return domain.Result{}, errors.Wrapf(err, "generate %s for %s", r.kind, e.code)
	}
	if result.Formatted == "" {
		result.Formatted = e.codec.Format(result.Raw)
	}
	result.Valid = e.codec.Validate(result.Raw)
	return e.stamp(result), nil
}

// Validate reports whether value is valid for code. Malformed values return false; only
// an unsupported code is an error.
func (r *Registry) Validate(code, value string) (bool, error) {
	e, err := r.resolve(code)
	if err != nil {
		return false, err
	}
	return e.codec.Validate(value), nil
}

// Format renders value for code. Values that do not validate are returned trimmed but
// otherwise unchanged.
func (r *Registry) Format(code, value string) (string, error) {
	e, err := r.resolve(code)
	if err != nil {
		return "", err
	}
	if !e.codec.Validate(value) {
		return strings.TrimSpace(value), nil
	}
	return e.codec.Format(value), nil
}

// Parse decomposes value for code. An invalid value yields a result with Valid false and
// no decomposed fields.
func (r *Registry) Parse(code, value string) (domain.Result, error) {
	e, err := r.resolve(code)
	if err != nil {
		return domain.Result{}, err
	}

	trimmed := strings.TrimSpace(value)
	if !e.codec.Validate(value) {
		return e.stamp(domain.Result{Raw: trimmed, Formatted: trimmed}), nil
	}

	var result domain.Result
	if parser, ok := e.codec.(Parser); ok {
		result = parser.Parse(value)
	} else {
		result = domain.Result{Raw: trimmed}
	}
	if result.Formatted == "" {
		result.Formatted = e.codec.Format(value)
	}
	result.Valid = true
	return e.stamp(result), nil
}

// ListCountries returns one entry per supported code, sorted by code. A code served by
// more than one tier is listed once with its highest-priority tier.
func (r *Registry) ListCountries() []domain.CountryInfo {
	infos := make([]domain.CountryInfo, 0, len(r.codes))
	for _, code := range r.codes {
		e := r.entries[code]
		infos = append(infos, domain.CountryInfo{
			Code:       e.code,
			Name:       e.name,
			FormatName: e.formatName,
			HasIBAN:    e.hasIBAN,
			Tier:       e.tier,
			ParentCode: e.parent,
		})
	}
	return infos
}

// IsSupported reports whether any tier serves code.
func (r *Registry) IsSupported(code string) bool {
	_, err := r.resolve(code)
	return err == nil
}

// RandomCode returns a uniformly chosen supported code.
func (r *Registry) RandomCode(rng *rand.Rand) string {
	if len(r.codes) == 0 {
		return ""
	}
	return r.codes[rng.IntN(len(r.codes))]
}
