package companyid

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

// mod11 maps a weighted sum to 11 minus its remainder, with no digit for a remainder of 1.
func mod11(weights ...int) func(body []int) (int, bool) {
	return func(body []int) (int, bool) {
		r := checksum.ComplementMod11(checksum.WeightedSum(body, weights))
		return r, r < 10
	}
}

var (
	uidCodec = registry.Prefixed{
		Prefix: "CHE",
		Codec: registry.CheckDigit{
			Length: 9, Lead: registry.NonZero,
			Check: mod11(5, 4, 3, 2, 7, 6, 5, 4),
		},
		Render: func(body string) string { return "-" + registry.Groups(body, ".", 3, 6) },
	}

	icoCodec = registry.CheckDigit{
		Length: 8, Lead: "012345678",
		Check: registry.Always(func(body []int) int {
			return (11 - checksum.WeightedSum(body, []int{8, 7, 6, 5, 4, 3, 2})%11) % 10
		}),
	}

	cvrCodec = registry.CheckDigit{
		Length: 8, Lead: registry.NonZero,
		Check: mod11(2, 7, 6, 5, 4, 3, 2),
	}

	registrikoodCodec = registry.CheckDigit{
		Length: 8, Lead: "1789",
		Check: registry.Always(func(body []int) int {
			r := checksum.WeightedSum(body, []int{1, 2, 3, 4, 5, 6, 7}) % 11
			if r == 10 {
				r = checksum.WeightedSum(body, []int{3, 4, 5, 6, 7, 8, 9}) % 11
			}
			return r % 10
		}),
	}

	ytunnusCodec = registry.CheckDigit{
		Length: 8,
		Check:  mod11(7, 9, 10, 5, 8, 4, 2),
		Render: func(raw string) string { return registry.Groups(raw, "-", 7) },
	}

	sirenCodec = registry.CheckDigit{
		Length: 9, Lead: registry.NonZero,
		Check:  registry.Always(checksum.LuhnCheckDigit),
		Render: func(raw string) string { return registry.Groups(raw, " ", 3, 6) },
	}

	orgnrNOCodec = registry.CheckDigit{
		Length: 9, Lead: "89",
		Check:  mod11(3, 2, 7, 6, 5, 4, 3, 2),
		Render: func(raw string) string { return registry.Groups(raw, " ", 3, 6) },
	}

	regonCodec = registry.CheckDigit{
		Length: 9,
		Check: registry.Always(func(body []int) int {
			return checksum.WeightedSum(body, []int{8, 9, 2, 3, 4, 5, 6, 7}) % 11 % 10
		}),
	}

	// Swedish organisation numbers keep the month position at 20 or above so they never
	// collide with a personnummer.
	orgnrSECodec = registry.CheckDigit{
		Length: 10, Lead: registry.NonZero,
		Check: func(body []int) (int, bool) {
			return checksum.LuhnCheckDigit(body), body[2] >= 2
		},
		Render: func(raw string) string { return registry.Groups(raw, "-", 6) },
	}
)

// abn is the Australian Business Number: two leading check digits and a nine-digit body.
// Subtracting one from the first digit makes the weighted sum divisible by 89.
type abn struct{}

var abnWeights = []int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

func (abn) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := randomDigits(rng, 9)
	s := -checksum.WeightedSum(body, abnWeights[2:])
	check := fmt.Sprintf("%02d", 11+((s-1)%89+89)%89)
	return domain.Result{Raw: check + checksum.String(body), CheckDigits: check}, nil
}

func (abn) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok || digits[0] == 0 {
		return false
	}
	digits[0]--
	return checksum.WeightedSum(digits, abnWeights)%89 == 0
}

func (abn) Format(raw string) string {
	return registry.Groups(registry.Compact(raw), " ", 2, 5, 8)
}

// cnpj is the Brazilian company register: an eight-digit root, a four-digit branch and
// two mod 11 check digits.
type cnpj struct{}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func cnpjDigit(digits, weights []int) int {
	if r := checksum.WeightedSum(digits, weights) % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func cnpjChecks(base []int) (int, int) {
	d1 := cnpjDigit(base, cnpjWeights1)
	return d1, cnpjDigit(append(slices.Clone(base), d1), cnpjWeights2)
}

// Generate issues the head office branch 0001 three times in four.
func (cnpj) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	branch := 1
	if rng.IntN(4) == 0 {
		branch = 2 + rng.IntN(98)
	}
	base := randomDigits(rng, 8)
	branchDigits, _ := checksum.Digits(fmt.Sprintf("%04d", branch))
	base = append(base, branchDigits...)
	d1, d2 := cnpjChecks(base)
	raw := checksum.String(append(base, d1, d2))
	return domain.Result{Raw: raw, BranchCode: raw[8:12], CheckDigits: raw[12:]}, nil
}

func (cnpj) Validate(raw string) bool {
	s := registry.Compact(raw)
	digits, ok := digitsOf(s, 14)
	if !ok || strings.Count(s, s[:1]) == len(s) {
		return false
	}
	d1, d2 := cnpjChecks(digits[:12])
	return digits[12] == d1 && digits[13] == d2
}

func (cnpj) Format(raw string) string {
	s := registry.Compact(raw)
	return s[:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:]
}

func (cnpj) Parse(raw string) domain.Result {
	s := registry.Compact(raw)
	return domain.Result{Raw: s, BranchCode: s[8:12], CheckDigits: s[12:]}
}

// cif is the Spanish company tax code: an entity letter, seven digits and a control
// character. Entity letters in cifLetterControl take a letter, those in cifDigitControl
// a digit, and the rest accept either.
type cif struct{}

const (
	cifEntities      = "ABCDEFGHJNPQRSUVW"
	cifLetterControl = "NPQRSW"
	cifDigitControl  = "ABEH"
	cifLetters       = "JABCDEFGHI"
)

func (cif) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	entity := strings.ToUpper(strings.TrimSpace(opts.HolderType))
	switch {
	case entity == "":
		entity = string(cifEntities[rng.IntN(len(cifEntities))])
	case len(entity) != 1 || !strings.Contains(cifEntities, entity):
		return domain.Result{}, errors.Wrapf(domain.ErrInvalidOption, "holder type %q not in %s", opts.HolderType, cifEntities)
	}
	body := randomDigits(rng, 7)
	check := checksum.LuhnCheckDigit(body)
	control := byte('0' + check)
	if strings.Contains(cifLetterControl, entity) {
		control = cifLetters[check]
	}
	raw := entity + checksum.String(body) + string(control)
	return domain.Result{Raw: raw, HolderType: entity, CheckDigits: string(control)}, nil
}

func (cif) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 9 || strings.IndexByte(cifEntities, s[0]) < 0 {
		return false
	}
	body, ok := checksum.Digits(s[1:8])
	if !ok {
		return false
	}
	check := checksum.LuhnCheckDigit(body)
	control := s[8]
	switch {
	case strings.IndexByte(cifLetterControl, s[0]) >= 0:
		return control == cifLetters[check]
	case strings.IndexByte(cifDigitControl, s[0]) >= 0:
		return control == byte('0'+check)
	default:
		return control == cifLetters[check] || control == byte('0'+check)
	}
}

func (cif) Format(raw string) string {
	return registry.Compact(raw)
}

func (cif) Parse(raw string) domain.Result {
	s := registry.Compact(raw)
	return domain.Result{Raw: s, HolderType: s[:1], CheckDigits: s[8:]}
}

// corporateNumber is the Japanese 13-digit corporate number with its check digit first.
type corporateNumber struct{}

func corporateCheck(body []int) int {
	sum := 0
	for i, d := range body {
		if (len(body)-1-i)%2 == 1 {
			d *= 2
		}
		sum += d
	}
	return 9 - sum%9
}

func (corporateNumber) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := randomDigits(rng, 12)
	check := corporateCheck(body)
	return domain.Result{Raw: fmt.Sprint(check) + checksum.String(body), CheckDigits: fmt.Sprint(check)}, nil
}

func (corporateNumber) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 13)
	return ok && corporateCheck(digits[1:]) == digits[0]
}

func (corporateNumber) Format(raw string) string {
	return registry.Groups(registry.Compact(raw), "-", 1, 5, 9)
}

// ogrnCodec is the Russian primary state registration number: 13 digits for
// organisations, 15 (starting 3 or 4) for sole proprietors.
var ogrnCodec = registry.OneOf{
	registry.CheckDigit{
		Length: 13, Lead: registry.NonZero,
		Check: registry.Always(func(body []int) int { return number(body) % 11 % 10 }),
	},
	registry.CheckDigit{
		Length: 15, Lead: "34",
		Check: registry.Always(func(body []int) int { return number(body) % 13 % 10 }),
	},
}

// ein is the US Employer Identification Number: an IRS campus prefix and seven digits,
// without a check digit.
type ein struct{}

var einPrefixes = []string{"10", "12", "20", "22", "30", "33", "35", "36", "40", "45", "55", "60", "90"}

func (ein) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	raw := einPrefixes[rng.IntN(len(einPrefixes))] + checksum.String(randomDigits(rng, 7))
	return domain.Result{Raw: raw}, nil
}

func (ein) Validate(raw string) bool {
	s := registry.Compact(raw)
	return len(s) == 9 && checksum.IsNumeric(s) && slices.Contains(einPrefixes, s[:2])
}

func (ein) Format(raw string) string {
	return registry.Groups(registry.Compact(raw), "-", 2)
}

// enterpriseNumber is the Belgian company number: ten digits starting 0 or 1 whose last
// two digits are 97 minus the first eight modulo 97.
type enterpriseNumber struct{}

var enterpriseNumberCodec = enterpriseNumber{}

func (enterpriseNumber) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	base := rng.IntN(2)*10_000_000 + rng.IntN(10_000_000)
	check := fmt.Sprintf("%02d", 97-base%97)
	return domain.Result{Raw: fmt.Sprintf("%08d", base) + check, CheckDigits: check}, nil
}

func (enterpriseNumber) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 10)
	if !ok || digits[0] > 1 {
		return false
	}
	return 97-number(digits[:8])%97 == number(digits[8:])
}

func (enterpriseNumber) Format(raw string) string {
	return registry.Groups(registry.Compact(raw), ".", 4, 7)
}

// gbVAT is the UK VAT registration number: seven digits and a two-digit mod 97 check.
// Numbers issued since 2010 add 55 before the check.
type gbVAT struct{}

var gbVATWeights = []int{8, 7, 6, 5, 4, 3, 2}

func (gbVAT) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := randomDigits(rng, 7)
	sum := checksum.WeightedSum(body, gbVATWeights)
	if rng.IntN(2) == 0 {
		sum += 55
	}
	check := fmt.Sprintf("%02d", 97-sum%97)
	return domain.Result{Raw: checksum.String(body) + check, CheckDigits: check}, nil
}

func (gbVAT) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 9)
	if !ok {
		return false
	}
	total := checksum.WeightedSum(digits, gbVATWeights) + number(digits[7:])
	return total%97 == 0 || (total+55)%97 == 0
}

func (gbVAT) Format(raw string) string {
	return registry.Groups(registry.Compact(raw), " ", 3, 7)
}
