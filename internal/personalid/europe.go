package personalid

import (
	"math/rand/v2"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/solver"
)

// steuerID is the German tax identification number: ten digits in which exactly one digit
// repeats (twice or three times), followed by an ISO 7064 MOD 11,10 check digit.
type steuerID struct{}

func (steuerID) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if rng.IntN(5) < 4 {
		// one digit twice: replace a random digit with a copy of another
		drop := rng.IntN(10)
		dup := (drop + 1 + rng.IntN(9)) % 10
		digits[drop] = digits[dup]
	} else {
		// one digit three times
		drop1 := rng.IntN(10)
		drop2 := (drop1 + 1 + rng.IntN(9)) % 10
		var keep []int
		for i, d := range digits {
			if i != drop1 && i != drop2 {
				keep = append(keep, d)
			}
		}
		dup := keep[rng.IntN(len(keep))]
		digits = append(keep, dup, dup)
	}
	rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })

	if digits[0] == 0 {
		var nonZero []int
		for i := 1; i < len(digits); i++ {
			if digits[i] != 0 {
				nonZero = append(nonZero, i)
			}
		}
		j := nonZero[rng.IntN(len(nonZero))]
		digits[0], digits[j] = digits[j], digits[0]
	}

	check := checksum.ISO7064Mod1110(digits)
	raw := checksum.String(digits) + pad(check, 1)
	return domain.Result{Raw: raw, CheckDigits: raw[10:]}, nil
}

// repeatsOnce reports whether exactly one digit occurs more than once, two or three times.
func repeatsOnce(digits []int) bool {
	var counts [10]int
	for _, d := range digits {
		counts[d]++
	}
	repeated := 0
	for _, c := range counts {
		switch {
		case c > 3:
			return false
		case c > 1:
			repeated++
		}
	}
	return repeated == 1
}

func (steuerID) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok || digits[0] == 0 || !repeatsOnce(digits[:10]) {
		return false
	}
	return checksum.ISO7064Mod1110Validate(digits)
}

func (steuerID) Format(raw string) string {
	return groups(compact(raw), " ", 2, 5, 8)
}

// pesel is the Polish PESEL: YYMMDD with the century folded into the month, a serial
// whose last digit encodes gender, and a weighted check digit.
type pesel struct{}

var peselWeights = []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// peselOffsets maps the month offset to its century.
var peselOffsets = map[int]int{80: 1800, 0: 1900, 20: 2000, 40: 2100, 60: 2200}

func (pesel) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1800, max: 2099})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	offset := 0
	for off, century := range peselOffsets {
		if century == d.year/100*100 {
			offset = off
		}
	}
	body := pad(d.year%100, 2) + pad(d.month+offset, 2) + pad(d.day, 2) + pad(rng.IntN(1000), 3) + pad(pick(rng, 0, 9, g), 1)
	digits, _ := checksum.Digits(body)
	check := pad(checksum.ComplementMod10(checksum.WeightedSum(digits, peselWeights)), 1)
	return domain.Result{Raw: body + check, CheckDigits: check, Gender: g, DOB: d.String()}, nil
}

func (pesel) birth(digits []int) (date, bool) {
	mm := number(digits[2:4])
	century, ok := peselOffsets[mm/20*20]
	if !ok {
		return date{}, false
	}
	d := date{year: century + number(digits[:2]), month: mm % 20, day: number(digits[4:6])}
	return d, d.valid()
}

func (c pesel) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok {
		return false
	}
	if _, ok := c.birth(digits); !ok {
		return false
	}
	return checksum.ComplementMod10(checksum.WeightedSum(digits, peselWeights)) == digits[10]
}

func (pesel) Format(raw string) string {
	return compact(raw)
}

func (c pesel) Parse(raw string) domain.Result {
	digits, _ := digitsOf(raw, 11)
	d, _ := c.birth(digits)
	s := checksum.String(digits)
	return domain.Result{Raw: s, CheckDigits: s[10:], Gender: genderOf(digits[9]%2 == 1), DOB: d.String()}
}

// dni is the Spanish national identity number: eight digits and a mod 23 control letter.
// Foreigner numbers (NIE) with an X, Y or Z prefix validate too.
type dni struct{}

const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

func (dni) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	n := rng.IntN(100_000_000)
	letter := string(dniLetters[n%23])
	return domain.Result{Raw: pad(n, 8) + letter, CheckDigits: letter}, nil
}

func (dni) Validate(raw string) bool {
	s := compact(raw)
	if len(s) != 9 {
		return false
	}
	body := s[:8]
	if i := strings.IndexByte("XYZ", s[0]); i >= 0 {
		body = pad(i, 1) + s[1:8]
	}
	if !checksum.IsNumeric(body) {
		return false
	}
	return dniLetters[atoi(body)%23] == s[8]
}

func (dni) Format(raw string) string {
	return compact(raw)
}

// bsn is the Dutch citizen service number, validated by the "elfproef": the weighted sum
// with weights 9..2 and -1 is divisible by 11.
type bsn struct{}

func bsnSum(digits []int) int {
	sum := 0
	for i := 0; i < 8; i++ {
		sum += digits[i] * (9 - i)
	}
	return sum
}

func (bsn) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	var raw string
	err := solver.Redraw(0, func() bool {
		digits := append([]int{1 + rng.IntN(9)}, randomDigits(rng, 7)...)
		check := bsnSum(digits) % 11
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

func (bsn) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 9)
	if !ok {
		return false
	}
	return (bsnSum(digits)-digits[8])%11 == 0
}

func (bsn) Format(raw string) string {
	return compact(raw)
}

// matricule is the Luxembourg national identification number: YYYYMMDD, a serial, then
// a Luhn and a Verhoeff check digit over the first eleven digits.
type matricule struct{}

func (matricule) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1800, max: 2099})
	if err != nil {
		return domain.Result{}, err
	}
	body := pad(d.year, 4) + pad(d.month, 2) + pad(d.day, 2) + pad(rng.IntN(1000), 3)
	digits, _ := checksum.Digits(body)
	checks := pad(checksum.LuhnCheckDigit(digits), 1) + pad(checksum.VerhoeffCheckDigit(digits), 1)
	return domain.Result{Raw: body + checks, CheckDigits: checks, DOB: d.String()}, nil
}

func (matricule) birth(digits []int) date {
	return date{year: number(digits[:4]), month: number(digits[4:6]), day: number(digits[6:8])}
}

func (c matricule) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 13)
	if !ok || !c.birth(digits).valid() {
		return false
	}
	return checksum.LuhnCheckDigit(digits[:11]) == digits[11] &&
		checksum.VerhoeffCheckDigit(digits[:11]) == digits[12]
}

func (matricule) Format(raw string) string {
	return groups(compact(raw), " ", 4, 8, 11)
}

func (c matricule) Parse(raw string) domain.Result {
	digits, _ := digitsOf(raw, 13)
	s := checksum.String(digits)
	return domain.Result{Raw: s, CheckDigits: s[11:], DOB: c.birth(digits).String()}
}

// nir is the French social security number: sex, YYMM of birth, department, commune,
// order number and a mod 97 key.
type nir struct{}

// nirPivot: two-digit years above it are read as 19xx.
const nirPivot = 25

func (nir) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	d, err := birthDate(rng, opts.Year, yearRange{min: 1900 + nirPivot + 1, max: 2000 + nirPivot})
	if err != nil {
		return domain.Result{}, err
	}
	g := opts.Gender.Resolve(rng)

	sex := 1
	if g == domain.GenderFemale {
		sex = 2
	}
	dept := 1 + rng.IntN(94)
	if dept >= 20 {
		dept++
	}
	body := pad(sex, 1) + pad(d.year%100, 2) + pad(d.month, 2) + pad(dept, 2) +
		pad(1+rng.IntN(999), 3) + pad(1+rng.IntN(999), 3)
	key := pad(97-atoi(body)%97, 2)
	return domain.Result{
		Raw:         body + key,
		CheckDigits: key,
		Gender:      g,
		DOB:         pad(d.year, 4) + "-" + pad(d.month, 2),
	}, nil
}

func (nir) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 15)
	if !ok || (digits[0] != 1 && digits[0] != 2) {
		return false
	}
	if mm := number(digits[3:5]); mm < 1 || mm > 12 {
		return false
	}
	return 97-number(digits[:13])%97 == number(digits[13:])
}

func (nir) Format(raw string) string {
	return groups(compact(raw), " ", 1, 3, 5, 7, 10, 13)
}

func (nir) Parse(raw string) domain.Result {
	digits, _ := digitsOf(raw, 15)
	s := checksum.String(digits)
	yy := number(digits[1:3])
	century := 2000
	if yy > nirPivot {
		century = 1900
	}
	return domain.Result{
		Raw:         s,
		CheckDigits: s[13:],
		Gender:      genderOf(digits[0] == 1),
		DOB:         pad(century+yy, 4) + "-" + s[3:5],
	}
}

// nino is the UK National Insurance number: two prefix letters, six digits and a suffix
// letter A-D. It has no check digit.
type nino struct{}

const (
	ninoFirstInvalid  = "DFIQUV"
	ninoSecondInvalid = "DFIOQUV"
)

var ninoInvalidPrefixes = []string{"BG", "GB", "KN", "NK", "NT", "TN", "ZZ"}

func ninoPrefixOK(p string) bool {
	if strings.IndexByte(ninoFirstInvalid, p[0]) >= 0 || strings.IndexByte(ninoSecondInvalid, p[1]) >= 0 {
		return false
	}
	for _, invalid := range ninoInvalidPrefixes {
		if p == invalid {
			return false
		}
	}
	return true
}

func (nino) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	var prefix string
	err := solver.Redraw(0, func() bool {
		prefix = string([]byte{byte('A' + rng.IntN(26)), byte('A' + rng.IntN(26))})
		return ninoPrefixOK(prefix)
	})
	if err != nil {
		return domain.Result{}, err
	}
	raw := prefix + checksum.String(randomDigits(rng, 6)) + string("ABCD"[rng.IntN(4)])
	return domain.Result{Raw: raw}, nil
}

func (nino) Validate(raw string) bool {
	s := compact(raw)
	if len(s) != 9 {
		return false
	}
	if s[0] < 'A' || s[0] > 'Z' || s[1] < 'A' || s[1] > 'Z' || !ninoPrefixOK(s[:2]) {
		return false
	}
	return checksum.IsNumeric(s[2:8]) && strings.IndexByte("ABCD", s[8]) >= 0
}

func (nino) Format(raw string) string {
	return groups(compact(raw), " ", 2, 4, 6, 8)
}
