package passport

import (
	"math/rand/v2"
	"strconv"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

// document is a passport number layout. Results carry the MRZ check digit of the number.
type document struct {
	registry.Layout
}

func shapes(s ...string) document {
	return document{Layout: registry.Layout(s)}
}

func (d document) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	result, err := d.Layout.Generate(opts, rng)
	if err != nil {
		return domain.Result{}, err
	}
	result.CheckDigits = strconv.Itoa(MRZCheckDigit(result.Raw))
	return result, nil
}

func (d document) Parse(raw string) domain.Result {
	s := registry.Compact(raw)
	return domain.Result{Raw: s, CheckDigits: strconv.Itoa(MRZCheckDigit(s))}
}

var mrzWeights = [3]int{7, 3, 1}

// MRZCheckDigit computes the ICAO 9303 check digit of a machine readable zone field:
// digits count as themselves, letters A-Z as 10-35 and the filler < as zero, weighted
// 7, 3, 1 repeating, modulo 10.
func MRZCheckDigit(field string) int {
	sum := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		v := 0
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'Z':
			v = int(c-'A') + 10
		}
		sum += v * mrzWeights[i%3]
	}
	return sum % 10
}
