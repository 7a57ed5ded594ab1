package taxid

import (
	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

func compact(raw string) string {
	return registry.Compact(raw)
}

func digitsOf(raw string, n int) ([]int, bool) {
	s := compact(raw)
	if len(s) != n {
		return nil, false
	}
	return checksum.Digits(s)
}

func groups(s string, sep string, cuts ...int) string {
	return registry.Groups(s, sep, cuts...)
}

var (
	oibCodec = registry.CheckDigit{
		Length: 11, Lead: registry.NonZero,
		Check: registry.Always(checksum.ISO7064Mod1110),
	}

	partitaIVACodec = registry.CheckDigit{
		Length: 11,
		Check: func(body []int) (int, bool) {
			// the all-zero number is reserved
			return checksum.LuhnCheckDigit(body), number(body) != 0
		},
	}

	portugueseNIFCodec = registry.CheckDigit{
		Length: 9, Lead: "123568",
		Check: registry.Always(func(body []int) int {
			if r := checksum.WeightedSum(body, []int{9, 8, 7, 6, 5, 4, 3, 2}) % 11; r >= 2 {
				return 11 - r
			}
			return 0
		}),
		Render: func(raw string) string { return groups(raw, " ", 3, 6) },
	}

	cuitLookup = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 9, 0}

	cuitCodec = registry.CheckDigit{
		Length:   11,
		Prefixes: []string{"20", "23", "24", "27", "30", "33", "34"},
		Check: registry.Always(func(body []int) int {
			return cuitLookup[11-checksum.WeightedSum(body, []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2})%11]
		}),
		Render: func(raw string) string { return groups(raw, "-", 2, 10) },
	}

	sinCodec = registry.CheckDigit{
		Length: 9, Lead: registry.NonZero,
		Check:  registry.Always(checksum.LuhnCheckDigit),
		Render: func(raw string) string { return groups(raw, " ", 3, 6) },
	}

	ahvCodec = registry.CheckDigit{
		Length:   13,
		Prefixes: []string{"756"},
		Check: registry.Always(func(body []int) int {
			return checksum.ComplementMod10(checksum.WeightedSum(body, []int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}))
		}),
		Render: func(raw string) string { return groups(raw, ".", 3, 7, 11) },
	}

	afmCodec = registry.CheckDigit{
		Length: 9, Lead: registry.NonZero,
		Check: registry.Always(func(body []int) int {
			return checksum.WeightedSum(body, []int{256, 128, 64, 32, 16, 8, 4, 2}) % 11 % 10
		}),
	}

	brnCodec = registry.CheckDigit{
		Length: 10, Lead: registry.NonZero,
		Check: registry.Always(func(body []int) int {
			sum := checksum.WeightedSum(body, []int{1, 3, 7, 1, 3, 7, 1, 3, 5}) + body[8]*5/10
			return checksum.ComplementMod10(sum)
		}),
		Render: func(raw string) string { return groups(raw, "-", 3, 5) },
	}

	zaTaxCodec = registry.CheckDigit{
		Length: 10, Lead: "0129",
		Check: registry.Always(checksum.LuhnCheckDigit),
	}
)

func number(digits []int) int {
	n := 0
	for _, d := range digits {
		n = n*10 + d
	}
	return n
}
