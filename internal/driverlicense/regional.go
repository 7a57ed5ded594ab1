package driverlicense

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

var (
	indianStates = []string{
		"AN", "AP", "AR", "AS", "BR", "CG", "CH", "DD", "DL", "GA", "GJ", "HP", "HR", "JH", "JK", "KA",
		"KL", "LA", "LD", "MH", "ML", "MN", "MP", "MZ", "NL", "OD", "PB", "PY", "RJ", "SK", "TN", "TS",
		"TR", "UK", "UP", "WB",
	}

	usStates = []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS",
		"KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY",
		"NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
		"WI", "WY", "DC",
	}

	australianStates = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}

	canadianProvinces = []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"}

	japanesePrefectures = numberedRegions(1, 47)

	koreanRegions = numberedRegions(11, 26)
)

func numberedRegions(from, to int) []string {
	regions := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		regions = append(regions, fmt.Sprintf("%02d", i))
	}
	return regions
}

// pickRegion returns the requested region, or a random one when none is requested.
func pickRegion(opts domain.GenOptions, regions []string, rng *rand.Rand) (string, error) {
	region := strings.ToUpper(strings.TrimSpace(opts.Region))
	if region == "" {
		return regions[rng.IntN(len(regions))], nil
	}
	if !slices.Contains(regions, region) {
		return "", errors.Wrapf(domain.ErrInvalidOption, "region %q not in %s", opts.Region, strings.Join(regions, ","))
	}
	return region, nil
}

// regional is a licence issued by a state, province or prefecture. An embedded region
// leads the number; otherwise the region is reported only by Generate.
type regional struct {
	Regions  []string
	Embedded bool
	Shape    registry.Layout
}

func (r regional) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	region, err := pickRegion(opts, r.Regions, rng)
	if err != nil {
		return domain.Result{}, err
	}
	body, err := r.Shape.Generate(opts, rng)
	if err != nil {
		return domain.Result{}, err
	}
	raw := body.Raw
	if r.Embedded {
		raw = region + raw
	}
	return domain.Result{Raw: raw, Region: region}, nil
}

// region returns the leading region of an embedded value, or "".
func (r regional) region(s string) string {
	for _, region := range r.Regions {
		if strings.HasPrefix(s, region) && r.Shape.Validate(s[len(region):]) {
			return region
		}
	}
	return ""
}

func (r regional) Validate(raw string) bool {
	s := registry.Compact(raw)
	if r.Embedded {
		return r.region(s) != ""
	}
	return r.Shape.Validate(s)
}

func (r regional) Format(raw string) string {
	return registry.Compact(raw)
}

func (r regional) Parse(raw string) domain.Result {
	s := registry.Compact(raw)
	result := domain.Result{Raw: s}
	if r.Embedded {
		result.Region = r.region(s)
	}
	return result
}

// indian is the Indian driving licence: state code, two-digit RTO, year of issue and a
// seven-digit serial.
type indian struct{}

const indianFirstYear = 1950

func (indian) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	state, err := pickRegion(opts, indianStates, rng)
	if err != nil {
		return domain.Result{}, err
	}
	raw := fmt.Sprintf("%s%02d%d%07d", state, 1+rng.IntN(99), 1990+rng.IntN(36), 1+rng.IntN(9_999_999))
	return domain.Result{Raw: raw, Region: state}, nil
}

func (indian) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 15 || !slices.Contains(indianStates, s[:2]) || !checksum.IsNumeric(s[2:]) {
		return false
	}
	return s[2:4] != "00" && atoi(s[4:8]) >= indianFirstYear
}

func (indian) Format(raw string) string {
	return registry.Groups(registry.Compact(raw), " ", 4)
}

func (indian) Parse(raw string) domain.Result {
	s := registry.Compact(raw)
	return domain.Result{Raw: s, Region: s[:2]}
}
