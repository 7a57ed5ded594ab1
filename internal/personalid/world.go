package personalid

import (
	"math/rand/v2"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/solver"
)

// ssn is the US Social Security number: area, group and serial, none of them zero and
// the area outside 666 and 900-999.
type ssn struct{}

func (ssn) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	area := 1 + rng.IntN(898)
	if area >= 666 {
		area++
	}
	raw := pad(area, 3) + pad(1+rng.IntN(99), 2) + pad(1+rng.IntN(9999), 4)
	return domain.Result{Raw: raw}, nil
}

func (ssn) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 9)
	if !ok {
		return false
	}
	area := number(digits[:3])
	return area != 0 && area != 666 && area < 900 && number(digits[3:5]) != 0 && number(digits[5:]) != 0
}

func (ssn) Format(raw string) string {
	return groups(compact(raw), "-", 3, 5)
}

// cpf is the Brazilian individual taxpayer registry number: nine digits and two mod 11
// check digits.
type cpf struct{}

func cpfCheck(digits []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (len(digits) + 1 - i)
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func (cpf) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	var digits []int
	err := solver.Redraw(0, func() bool {
		digits = randomDigits(rng, 9)
		return !allSame(digits)
	})
	if err != nil {
		return domain.Result{}, err
	}
	digits = append(digits, cpfCheck(digits))
	digits = append(digits, cpfCheck(digits))
	raw := checksum.String(digits)
	return domain.Result{Raw: raw, CheckDigits: raw[9:]}, nil
}

func (cpf) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok || allSame(digits) {
		return false
	}
	return cpfCheck(digits[:9]) == digits[9] && cpfCheck(digits[:10]) == digits[10]
}

func (cpf) Format(raw string) string {
	s := compact(raw)
	return s[:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:]
}

// southAfricanID is YYMMDD, a gender sequence, a citizenship digit, the legacy race digit
// and a Luhn check digit.
type southAfricanID struct{}

// zaPivot: two-digit years above it are read as 19xx.
const zaPivot = 30

func (southAfricanID) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1900 + zaPivot + 1, max: 2000 + zaPivot})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	seq := rng.IntN(5000)
	if g == domain.GenderMale {
		seq += 5000
	}
	body := pad(d.year%100, 2) + pad(d.month, 2) + pad(d.day, 2) + pad(seq, 4) + "08"
	digits, _ := checksum.Digits(body)
	check := pad(checksum.LuhnCheckDigit(digits), 1)
	return domain.Result{Raw: body + check, CheckDigits: check, Gender: g, DOB: d.String()}, nil
}

func (southAfricanID) birth(digits []int) date {
	yy := number(digits[:2])
	century := 2000
	if yy > zaPivot {
		century = 1900
	}
	return date{year: century + yy, month: number(digits[2:4]), day: number(digits[4:6])}
}

func (c southAfricanID) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 13)
	if !ok || !c.birth(digits).valid() || digits[10] > 2 {
		return false
	}
	return checksum.LuhnValidate(digits)
}

func (southAfricanID) Format(raw string) string {
	return groups(compact(raw), " ", 6, 10)
}

func (c southAfricanID) Parse(raw string) domain.Result {
	digits, _ := digitsOf(raw, 13)
	s := checksum.String(digits)
	return domain.Result{
		Raw:         s,
		CheckDigits: s[12:],
		Gender:      genderOf(number(digits[6:10]) >= 5000),
		DOB:         c.birth(digits).String(),
	}
}

// teudatZehut is the Israeli identity number: up to nine digits, Luhn-checked once padded.
type teudatZehut struct{}

func (teudatZehut) padded(raw string) ([]int, bool) {
	s := compact(raw)
	if len(s) == 0 || len(s) > 9 || !checksum.IsNumeric(s) {
		return nil, false
	}
	return checksum.Digits(pad(atoi(s), 9))
}

func (teudatZehut) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	digits := randomDigits(rng, 8)
	check := pad(checksum.LuhnCheckDigit(digits), 1)
	return domain.Result{Raw: checksum.String(digits) + check, CheckDigits: check}, nil
}

func (c teudatZehut) Validate(raw string) bool {
	digits, ok := c.padded(raw)
	return ok && checksum.LuhnValidate(digits)
}

func (c teudatZehut) Format(raw string) string {
	digits, _ := c.padded(raw)
	return checksum.String(digits)
}

// aadhaar is the Indian resident number: twelve digits, the first 2-9, with a Verhoeff
// check digit.
type aadhaar struct{}

func (aadhaar) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	digits := append([]int{2 + rng.IntN(8)}, randomDigits(rng, 10)...)
	digits = append(digits, checksum.VerhoeffCheckDigit(digits))
	raw := checksum.String(digits)
	return domain.Result{Raw: raw, CheckDigits: raw[11:]}, nil
}

func (aadhaar) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 12)
	return ok && digits[0] >= 2 && checksum.VerhoeffValidate(digits)
}

func (aadhaar) Format(raw string) string {
	return groups(compact(raw), " ", 4, 8)
}

// residentID is the Chinese resident identity card number: a six-digit area code, the
// date of birth, a sequence whose parity encodes gender and an ISO 7064 MOD 11-2 check.
type residentID struct{}

var cnAreas = []string{
	"110101", "110105", "120101", "310101", "310115", "320102", "330102", "350203",
	"420102", "440103", "440305", "500103", "510104", "610102",
}

func (residentID) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1800, max: 2099})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	body := cnAreas[rng.IntN(len(cnAreas))] + pad(d.year, 4) + pad(d.month, 2) + pad(d.day, 2) + pad(pick(rng, 0, 999, g), 3)
	digits, _ := checksum.Digits(body)
	check := string(checksum.ISO7064Mod112(digits))
	return domain.Result{Raw: body + check, CheckDigits: check, Gender: g, DOB: d.String()}, nil
}

func (residentID) birth(s string) date {
	return date{year: atoi(s[6:10]), month: atoi(s[10:12]), day: atoi(s[12:14])}
}

func (c residentID) Validate(raw string) bool {
	s := compact(raw)
	if len(s) != 18 || !checksum.ISO7064Mod112Validate(s) {
		return false
	}
	return c.birth(s).valid()
}

func (residentID) Format(raw string) string {
	return compact(raw)
}

func (c residentID) Parse(raw string) domain.Result {
	s := compact(raw)
	return domain.Result{
		Raw:         s,
		CheckDigits: s[17:],
		Gender:      genderOf(atoi(s[14:17])%2 == 1),
		DOB:         c.birth(s).String(),
	}
}

// tfn is the Australian tax file number: nine digits whose weighted sum is divisible by 11.
type tfn struct{}

var tfnWeights = []int{1, 4, 3, 7, 5, 8, 6, 9, 10}

func (tfn) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	var raw string
	err := solver.Redraw(0, func() bool {
		digits := randomDigits(rng, 8)
		// the last weight is -1 mod 11, so the check digit is the partial sum mod 11
		check := checksum.WeightedSum(digits, tfnWeights) % 11
		if check > 9 {
			return false
		}
		raw = checksum.String(append(digits, check))
		return true
	})
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Raw: raw, CheckDigits: raw[8:]}, nil
}

func (tfn) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 9)
	return ok && checksum.WeightedSum(digits, tfnWeights)%11 == 0
}

func (tfn) Format(raw string) string {
	return groups(compact(raw), " ", 3, 6)
}

// ird is the New Zealand Inland Revenue number: an eight-digit base padded with a leading
// zero when needed, plus a mod 11 check digit with a secondary weighting fallback.
type ird struct{}

var (
	irdWeights1 = []int{3, 2, 7, 6, 5, 4, 3, 2}
	irdWeights2 = []int{7, 4, 3, 2, 5, 2, 7, 6}
)

const (
	irdMin = 10_000_000
	irdMax = 150_000_000
)

func irdCheck(base []int) (int, bool) {
	for _, weights := range [][]int{irdWeights1, irdWeights2} {
		c := checksum.ComplementMod11(checksum.WeightedSum(base, weights))
		if c <= 9 {
			return c, true
		}
	}
	return 0, false
}

func (ird) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	var raw string
	err := solver.Redraw(0, func() bool {
		base, _ := checksum.Digits(pad(irdMin/10+rng.IntN((irdMax-irdMin)/10), 8))
		check, ok := irdCheck(base)
		if ok {
			raw = pad(number(append(base, check)), 9)
		}
		return ok
	})
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Raw: raw, CheckDigits: raw[8:]}, nil
}

func (ird) digits(raw string) ([]int, bool) {
	s := compact(raw)
	if (len(s) != 8 && len(s) != 9) || !checksum.IsNumeric(s) {
		return nil, false
	}
	return checksum.Digits(pad(atoi(s), 9))
}

func (c ird) Validate(raw string) bool {
	digits, ok := c.digits(raw)
	if !ok {
		return false
	}
	if n := number(digits); n < irdMin || n > irdMax {
		return false
	}
	check, ok := irdCheck(digits[:8])
	return ok && check == digits[8]
}

func (c ird) Format(raw string) string {
	digits, _ := c.digits(raw)
	return groups(checksum.String(digits), "-", 3, 6)
}
