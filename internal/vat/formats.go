package vat

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/companyid"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
	"github.com/allisson/idsmith/internal/personalid"
)

func digitsOf(raw string, n int) ([]int, bool) {
	s := registry.Compact(raw)
	if len(s) != n {
		return nil, false
	}
	return checksum.Digits(s)
}

func number(digits []int) int {
	n := 0
	for _, d := range digits {
		n = n*10 + d
	}
	return n
}

func randomDigits(rng *rand.Rand, n int) []int {
	digits := make([]int, n)
	for i := range digits {
		digits[i] = rng.IntN(10)
	}
	return digits
}

// fallback weights a body twice: the second set applies only when the first leaves a
// remainder of 10, and a second 10 becomes 0.
func fallback(first, second []int) func(body []int) int {
	return func(body []int) int {
		r := checksum.WeightedSum(body, first) % 11
		if r == 10 {
			r = checksum.WeightedSum(body, second) % 11
		}
		return r % 10
	}
}

var (
	atCodec = registry.CheckDigit{
		Length: 8,
		Check: registry.Always(func(body []int) int {
			sum := 0
			for i, d := range body {
				if i%2 == 1 {
					if d *= 2; d > 9 {
						d -= 9
					}
				}
				sum += d
			}
			return (10 - (sum+4)%10) % 10
		}),
	}

	bgCodec = registry.CheckDigit{
		Length: 9,
		Check:  registry.Always(fallback([]int{1, 2, 3, 4, 5, 6, 7, 8}, []int{3, 4, 5, 6, 7, 8, 9, 10})),
	}

	deCodec = registry.CheckDigit{
		Length: 9, Lead: registry.NonZero,
		Check: registry.Always(checksum.ISO7064Mod1110),
	}

	eeCodec = registry.CheckDigit{
		Length: 9, Prefixes: []string{"10"},
		Check: registry.Always(func(body []int) int {
			return checksum.ComplementMod10(checksum.WeightedSum(body, []int{3, 7, 1, 3, 7, 1, 3, 7}))
		}),
	}

	huCodec = registry.CheckDigit{
		Length: 8, Lead: registry.NonZero,
		Check: registry.Always(func(body []int) int {
			return checksum.ComplementMod10(checksum.WeightedSum(body, []int{9, 7, 3, 1, 9, 7, 3}))
		}),
	}

	// lvCodec covers legal entities; the weighted sum including the check digit is 3
	// modulo 11.
	lvCodec = registry.CheckDigit{
		Length: 11, Lead: "4569",
		Check: func(body []int) (int, bool) {
			c := ((3-checksum.WeightedSum(body, []int{9, 1, 4, 8, 3, 10, 2, 5, 7, 6}))%11 + 11) % 11
			return c, c < 10
		},
	}

	plCodec = registry.CheckDigit{
		Length: 10, Lead: registry.NonZero,
		Check: func(body []int) (int, bool) {
			r := checksum.WeightedSum(body, []int{6, 5, 7, 2, 3, 4, 5, 6, 7}) % 11
			return r, r < 10
		},
	}

	siCodec = registry.CheckDigit{
		Length: 8, Lead: registry.NonZero,
		Check: func(body []int) (int, bool) {
			r := checksum.WeightedSum(body, []int{8, 7, 6, 5, 4, 3, 2}) % 11
			return 11 - r, r > 1
		},
	}

	// skCodec numbers are divisible by 11 and have a third digit in skThirdDigits.
	skCodec = registry.CheckDigit{
		Length: 10, Lead: registry.NonZero,
		Check: func(body []int) (int, bool) {
			c := (11 - number(body)*10%11) % 11
			return c, c < 10 && skThirdDigits[body[2]]
		},
	}

	skThirdDigits = map[int]bool{2: true, 3: true, 4: true, 7: true, 8: true, 9: true}

	luCodec = twoDigit{
		Body: 6,
		Check: func(body []int) int {
			return number(body) % 89
		},
	}

	mtCodec = twoDigit{
		Body: 6, Lead: registry.NonZero,
		Check: func(body []int) int {
			return 37 - checksum.WeightedSum(body, []int{3, 4, 6, 7, 8, 9})%37
		},
	}
)

// twoDigit is a numeric body followed by a two-digit check number.
type twoDigit struct {
	Body  int
	Lead  string
	Check func(body []int) int
}

func (t twoDigit) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := randomDigits(rng, t.Body)
	if t.Lead != "" {
		body[0] = int(t.Lead[rng.IntN(len(t.Lead))] - '0')
	}
	check := fmt.Sprintf("%02d", t.Check(body))
	return domain.Result{Raw: checksum.String(body) + check, CheckDigits: check}, nil
}

func (t twoDigit) Validate(raw string) bool {
	digits, ok := digitsOf(raw, t.Body+2)
	if !ok {
		return false
	}
	if t.Lead != "" && strings.IndexByte(t.Lead, registry.Compact(raw)[0]) < 0 {
		return false
	}
	return t.Check(digits[:t.Body]) == number(digits[t.Body:])
}

func (t twoDigit) Format(raw string) string {
	return registry.Compact(raw)
}

// cyVAT is the Cypriot number: eight digits and a check letter. Digits in odd positions
// are mapped through cyOddValues before summing. Numbers never start with 12.
type cyVAT struct{}

const cyLeads = "0134569"

var cyOddValues = []int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21}

func cyCheck(body []int) byte {
	sum := 0
	for i, d := range body {
		if i%2 == 0 {
			d = cyOddValues[d]
		}
		sum += d
	}
	return byte('A' + sum%26)
}

func (cyVAT) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := randomDigits(rng, 8)
	body[0] = int(cyLeads[rng.IntN(len(cyLeads))] - '0')
	if body[0] == 1 && body[1] == 2 {
		body[1] = 0
	}
	check := string(cyCheck(body))
	return domain.Result{Raw: checksum.String(body) + check, CheckDigits: check}, nil
}

func (cyVAT) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 9 {
		return false
	}
	body, ok := checksum.Digits(s[:8])
	if !ok || strings.IndexByte(cyLeads, s[0]) < 0 || strings.HasPrefix(s, "12") {
		return false
	}
	return cyCheck(body) == s[8]
}

func (cyVAT) Format(raw string) string {
	return registry.Compact(raw)
}

// frVAT is a two-digit key followed by the SIREN. The key is derived from the SIREN
// modulo 97.
type frVAT struct{}

var siren = companyid.Codec("FR")

func frKey(s string) int {
	return (12 + 3*checksum.Mod97(s)) % 97
}

func (frVAT) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	result, err := siren.Generate(opts, rng)
	if err != nil {
		return domain.Result{}, err
	}
	key := fmt.Sprintf("%02d", frKey(result.Raw))
	return domain.Result{Raw: key + result.Raw, CheckDigits: key}, nil
}

func (frVAT) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 11 || !checksum.IsNumeric(s) {
		return false
	}
	return siren.Validate(s[2:]) && fmt.Sprintf("%02d", frKey(s[2:])) == s[:2]
}

func (frVAT) Format(raw string) string {
	return registry.Compact(raw)
}

// ieVAT is the Irish number: seven digits and a check letter (W for a zero remainder).
type ieVAT struct{}

func ieCheck(body []int) byte {
	r := checksum.WeightedSum(body, []int{8, 7, 6, 5, 4, 3, 2}) % 23
	if r == 0 {
		return 'W'
	}
	return byte('A' + r - 1)
}

func (ieVAT) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := randomDigits(rng, 7)
	check := string(ieCheck(body))
	return domain.Result{Raw: checksum.String(body) + check, CheckDigits: check}, nil
}

func (ieVAT) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 8 {
		return false
	}
	body, ok := checksum.Digits(s[:7])
	return ok && ieCheck(body) == s[7]
}

func (ieVAT) Format(raw string) string {
	return registry.Compact(raw)
}

// ltVAT is the Lithuanian legal entity number: nine digits with a 1 in eighth position.
type ltVAT struct{}

var ltCheck = fallback([]int{1, 2, 3, 4, 5, 6, 7, 8}, []int{3, 4, 5, 6, 7, 8, 9, 1})

func (ltVAT) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := append(randomDigits(rng, 7), 1)
	check := ltCheck(body)
	raw := checksum.String(append(body, check))
	return domain.Result{Raw: raw, CheckDigits: raw[8:]}, nil
}

func (ltVAT) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 9)
	return ok && digits[7] == 1 && ltCheck(digits[:8]) == digits[8]
}

func (ltVAT) Format(raw string) string {
	return registry.Compact(raw)
}

// nlVAT is the Dutch number: nine digits, B and a two-digit branch. Numbers issued
// before 2020 wrap the holder's BSN; later ones make the whole value, country code
// included, equal 1 modulo 97.
type nlVAT struct{}

var bsn = personalid.Codec("NL")

func nlMod97(s string) int {
	numeric, ok := checksum.ToNumeric("NL" + s)
	if !ok {
		return -1
	}
	return checksum.Mod97(numeric)
}

func (nlVAT) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	if rng.IntN(2) == 0 {
		result, err := bsn.Generate(opts, rng)
		if err != nil {
			return domain.Result{}, err
		}
		return domain.Result{Raw: fmt.Sprintf("%sB%02d", registry.Compact(result.Raw), 1+rng.IntN(99))}, nil
	}
	body := checksum.String(randomDigits(rng, 9)) + "B"
	suffix := fmt.Sprintf("%02d", checksum.Mod97Complement(mustNumeric("NL"+body+"00")))
	return domain.Result{Raw: body + suffix, CheckDigits: suffix}, nil
}

func mustNumeric(s string) string {
	numeric, _ := checksum.ToNumeric(s)
	return numeric
}

func (nlVAT) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 12 || s[9] != 'B' || !checksum.IsNumeric(s[:9]) || !checksum.IsNumeric(s[10:]) {
		return false
	}
	return bsn.Validate(s[:9]) || nlMod97(s) == 1
}

func (nlVAT) Format(raw string) string {
	return registry.Compact(raw)
}

// roVAT is the Romanian fiscal code: two to ten digits, the check weighted from the
// right.
type roVAT struct{}

var roWeights = []int{7, 5, 3, 2, 1, 7, 5, 3, 2}

func roCheck(body []int) int {
	return checksum.WeightedSum(body, roWeights[len(roWeights)-len(body):]) * 10 % 11 % 10
}

func (roVAT) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := randomDigits(rng, 5+rng.IntN(5))
	body[0] = 1 + rng.IntN(9)
	raw := checksum.String(append(body, roCheck(body)))
	return domain.Result{Raw: raw, CheckDigits: raw[len(raw)-1:]}, nil
}

func (roVAT) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) < 2 || len(s) > 10 {
		return false
	}
	digits, ok := checksum.Digits(s)
	if !ok || digits[0] == 0 {
		return false
	}
	return roCheck(digits[:len(digits)-1]) == digits[len(digits)-1]
}

func (roVAT) Format(raw string) string {
	return registry.Compact(raw)
}

// seVAT is a Swedish organisation or personal number followed by 01.
type seVAT struct{}

var orgnr = companyid.Codec("SE")

func (seVAT) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	result, err := orgnr.Generate(opts, rng)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Raw: registry.Compact(result.Raw) + "01", CheckDigits: result.CheckDigits}, nil
}

func (seVAT) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 12)
	return ok && digits[10] == 0 && digits[11] == 1 && checksum.LuhnValidate(digits[:10])
}

func (seVAT) Format(raw string) string {
	return registry.Compact(raw)
}
