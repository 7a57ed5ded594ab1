package personalid

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
	"github.com/allisson/idsmith/internal/solver"
)

// isikukood is the Estonian personal code: GYYMMDDSSSC where G encodes century and gender.
type isikukood struct{}

var (
	eeWeights1 = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	eeWeights2 = []int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

func eeCheck(digits []int) int {
	if r := checksum.WeightedSum(digits, eeWeights1) % 11; r < 10 {
		return r
	}
	if r := checksum.WeightedSum(digits, eeWeights2) % 11; r < 10 {
		return r
	}
	return 0
}

func (isikukood) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1800, max: 2099})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	first := 2*(d.year/100-18) + 1
	if g == domain.GenderFemale {
		first++
	}
	s := pad(first, 1) + pad(d.year%100, 2) + pad(d.month, 2) + pad(d.day, 2) + pad(1+rng.IntN(999), 3)
	digits, _ := checksum.Digits(s)
	raw := s + pad(eeCheck(digits), 1)
	return domain.Result{Raw: raw, Gender: g, DOB: d.String()}, nil
}

func (isikukood) decode(digits []int) (date, domain.Gender, bool) {
	if digits[0] < 1 || digits[0] > 6 {
		return date{}, "", false
	}
	d := date{
		year:  1800 + 100*((digits[0]-1)/2) + number(digits[1:3]),
		month: number(digits[3:5]),
		day:   number(digits[5:7]),
	}
	return d, genderOf(digits[0]%2 == 1), d.valid()
}

func (c isikukood) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok {
		return false
	}
	if _, _, ok := c.decode(digits); !ok {
		return false
	}
	return eeCheck(digits[:10]) == digits[10]
}

func (isikukood) Format(raw string) string {
	return compact(raw)
}

func (c isikukood) Parse(raw string) domain.Result {
	digits, _ := digitsOf(raw, 11)
	d, g, _ := c.decode(digits)
	return domain.Result{Raw: compact(raw), CheckDigits: compact(raw)[10:], Gender: g, DOB: d.String()}
}

// hetu is the Finnish henkilötunnus: DDMMYY, a century sign, a serial and a mod 31 check
// character.
type hetu struct{}

const hetuChecks = "0123456789ABCDEFHJKLMNPRSTUVWXY"

var hetuCenturies = map[byte]int{
	'+': 1800,
	'-': 1900, 'Y': 1900, 'X': 1900, 'W': 1900, 'V': 1900, 'U': 1900,
	'A': 2000, 'B': 2000, 'C': 2000, 'D': 2000, 'E': 2000, 'F': 2000,
}

func hetuSign(year int) byte {
	switch year / 100 {
	case 18:
		return '+'
	case 19:
		return '-'
	default:
		return 'A'
	}
}

func (hetu) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1800, max: 2099})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	dob := pad(d.day, 2) + pad(d.month, 2) + pad(d.year%100, 2)
	serial := pad(pick(rng, 2, 899, g), 3)
	check := hetuChecks[atoi(dob+serial)%31]
	raw := dob + string(hetuSign(d.year)) + serial + string(check)
	return domain.Result{Raw: raw, CheckDigits: string(check), Gender: g, DOB: d.String()}, nil
}

func (hetu) Validate(raw string) bool {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 11 || !checksum.IsNumeric(s[:6]) || !checksum.IsNumeric(s[7:10]) {
		return false
	}
	century, ok := hetuCenturies[s[6]]
	if !ok {
		return false
	}
	d := date{year: century + atoi(s[4:6]), month: atoi(s[2:4]), day: atoi(s[:2])}
	if !d.valid() {
		return false
	}
	return hetuChecks[atoi(s[:6]+s[7:10])%31] == s[10]
}

func (hetu) Format(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func (h hetu) Parse(raw string) domain.Result {
	s := h.Format(raw)
	d := date{year: hetuCenturies[s[6]] + atoi(s[4:6]), month: atoi(s[2:4]), day: atoi(s[:2])}
	return domain.Result{
		Raw:         s,
		CheckDigits: s[10:],
		Gender:      genderOf(atoi(s[7:10])%2 == 1),
		DOB:         d.String(),
	}
}

// personnummer is the Swedish personal identity number. Generated values use the
// 12-digit YYYYMMDDNNNC form; the 10-digit YYMMDD-NNNC form (with '+' for centenarians)
// is accepted on input.
type personnummer struct{}

// sePivotYear resolves the century of a 10-digit personnummer: two-digit years up to its
// last two digits are read as 20xx.
const sePivotYear = 2025

func (personnummer) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1800, max: 2099})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	body := pad(d.year%100, 2) + pad(d.month, 2) + pad(d.day, 2) + pad(pick(rng, 0, 999, g), 3)
	digits, _ := checksum.Digits(body)
	check := pad(checksum.LuhnCheckDigit(digits), 1)
	raw := pad(d.year/100, 2) + body + check
	return domain.Result{Raw: raw, CheckDigits: check, Gender: g, DOB: d.String()}, nil
}

// split normalizes raw into its digits and whether the centenarian sign was used.
func (personnummer) split(raw string) (string, bool, bool) {
	s := strings.TrimSpace(raw)
	plus := strings.Contains(s, "+")
	s = registry.StripSeparators(strings.ReplaceAll(s, "+", ""))
	if (len(s) != 10 && len(s) != 12) || !checksum.IsNumeric(s) {
		return "", false, false
	}
	return s, plus, true
}

func (personnummer) birth(s string, plus bool) date {
	if len(s) == 12 {
		return date{year: atoi(s[:4]), month: atoi(s[4:6]), day: atoi(s[6:8])}
	}
	yy := atoi(s[:2])
	century := 1900
	if !plus && yy <= sePivotYear%100 {
		century = 2000
	}
	return date{year: century + yy, month: atoi(s[2:4]), day: atoi(s[4:6])}
}

func (c personnummer) Validate(raw string) bool {
	s, plus, ok := c.split(raw)
	if !ok || !c.birth(s, plus).valid() {
		return false
	}
	digits, _ := checksum.Digits(s[len(s)-10:])
	return checksum.LuhnValidate(digits)
}

func (c personnummer) Format(raw string) string {
	s, plus, _ := c.split(raw)
	sep := "-"
	if plus {
		sep = "+"
	}
	return s[:len(s)-4] + sep + s[len(s)-4:]
}

func (c personnummer) Parse(raw string) domain.Result {
	s, plus, _ := c.split(raw)
	return domain.Result{
		Raw:         s,
		CheckDigits: s[len(s)-1:],
		Gender:      genderOf(atoi(s[len(s)-2:len(s)-1])%2 == 1),
		DOB:         c.birth(s, plus).String(),
	}
}

// fodselsnummer is the Norwegian birth number: DDMMYY, a three-digit individual number
// and two mod 11 check digits.
type fodselsnummer struct{}

var (
	noWeights1 = []int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	noWeights2 = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// noChecks returns the two check digits of a 9-digit body, false when either would be 10.
func noChecks(body []int) (int, int, bool) {
	k1 := checksum.ComplementMod11(checksum.WeightedSum(body, noWeights1))
	if k1 == 10 {
		return 0, 0, false
	}
	k2 := checksum.ComplementMod11(checksum.WeightedSum(append(body[:9:9], k1), noWeights2))
	if k2 == 10 {
		return 0, 0, false
	}
	return k1, k2, true
}

func (fodselsnummer) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1900, max: 2039})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)
	dob := pad(d.day, 2) + pad(d.month, 2) + pad(d.year%100, 2)

	var raw string
	err = solver.Redraw(0, func() bool {
		ind := pick(rng, 0, 499, g)
		if d.year >= 2000 {
			ind = pick(rng, 500, 999, g)
		}
		body, _ := checksum.Digits(dob + pad(ind, 3))
		k1, k2, ok := noChecks(body)
		if ok {
			raw = checksum.String(body) + pad(k1, 1) + pad(k2, 1)
		}
		return ok
	})
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Raw: raw, CheckDigits: raw[9:], Gender: g, DOB: d.String()}, nil
}

// birth reads the individual number range as the century: 500 and above is 20xx.
func (fodselsnummer) birth(digits []int) date {
	century := 1900
	if number(digits[6:9]) >= 500 {
		century = 2000
	}
	return date{year: century + number(digits[4:6]), month: number(digits[2:4]), day: number(digits[:2])}
}

func (c fodselsnummer) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok || !c.birth(digits).valid() {
		return false
	}
	k1, k2, ok := noChecks(digits[:9])
	return ok && digits[9] == k1 && digits[10] == k2
}

func (fodselsnummer) Format(raw string) string {
	return groups(compact(raw), " ", 6)
}

func (c fodselsnummer) Parse(raw string) domain.Result {
	digits, _ := digitsOf(raw, 11)
	s := checksum.String(digits)
	return domain.Result{
		Raw:         s,
		CheckDigits: s[9:],
		Gender:      genderOf(digits[8]%2 == 1),
		DOB:         c.birth(digits).String(),
	}
}

// cpr is the Danish CPR number: DDMMYY and a four-digit sequence whose range encodes the
// century. It carries no check digit.
type cpr struct{}

func (cpr) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1900, max: 2036})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	seq := pick(rng, 1, 3999, g)
	if d.year >= 2000 {
		seq = pick(rng, 4000, 9999, g)
	}
	raw := pad(d.day, 2) + pad(d.month, 2) + pad(d.year%100, 2) + pad(seq, 4)
	return domain.Result{Raw: raw, Gender: g, DOB: d.String()}, nil
}

// cprCentury maps a sequence number and two-digit year to the birth century.
func cprCentury(seq, yy int) int {
	switch {
	case seq <= 3999:
		return 1900
	case seq <= 4999:
		if yy <= 36 {
			return 2000
		}
		return 1900
	case seq <= 8999:
		if yy <= 57 {
			return 2000
		}
		return 1800
	default:
		if yy <= 36 {
			return 2000
		}
		return 1900
	}
}

func (cpr) birth(digits []int) date {
	yy := number(digits[4:6])
	return date{year: cprCentury(number(digits[6:]), yy) + yy, month: number(digits[2:4]), day: number(digits[:2])}
}

func (c cpr) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 10)
	return ok && c.birth(digits).valid()
}

func (cpr) Format(raw string) string {
	return groups(compact(raw), "-", 6)
}

func (c cpr) Parse(raw string) domain.Result {
	digits, _ := digitsOf(raw, 10)
	return domain.Result{
		Raw:    checksum.String(digits),
		Gender: genderOf(digits[9]%2 == 1),
		DOB:    c.birth(digits).String(),
	}
}
