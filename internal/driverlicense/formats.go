package driverlicense

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// germanShapes pads each issuing authority prefix with digits to eleven characters.
func germanShapes(prefixes ...string) registry.Layout {
	shapes := make(registry.Layout, len(prefixes))
	for i, p := range prefixes {
		shapes[i] = p + strings.Repeat("9", 11-len(p))
	}
	return shapes
}

// dvla is the sixteen character licence number of Great Britain: surname, birth decade,
// month (plus 50 for women), day, birth year, initials, a tie-break digit and two check
// characters.
type dvla struct{}

func (dvla) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	year := opts.Year
	if year == 0 {
		year = 1940 + rng.IntN(66)
	}
	gender := opts.Gender.Resolve(rng)
	month := 1 + rng.IntN(12)
	if gender == domain.GenderFemale {
		month += 50
	}

	var b strings.Builder
	surname := 2 + rng.IntN(4)
	for i := 0; i < 5; i++ {
		if i < surname {
			b.WriteByte(letters[rng.IntN(26)])
		} else {
			b.WriteByte('9')
		}
	}
	b.WriteString(strconv.Itoa(year / 10 % 10))
	b.WriteString(pad2(month))
	b.WriteString(pad2(1 + rng.IntN(28)))
	b.WriteString(strconv.Itoa(year % 10))
	b.WriteByte(letters[rng.IntN(26)])
	if rng.IntN(3) == 0 {
		b.WriteByte('9')
	} else {
		b.WriteByte(letters[rng.IntN(26)])
	}
	b.WriteString(strconv.Itoa(rng.IntN(10)))
	b.WriteByte(letters[rng.IntN(26)])
	b.WriteByte(letters[rng.IntN(26)])
	return domain.Result{Raw: b.String(), Gender: gender}, nil
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func (dvla) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 16 || !isLetter(s[0]) {
		return false
	}
	padded := false
	for i := 1; i < 5; i++ {
		switch {
		case s[i] == '9':
			padded = true
		case !isLetter(s[i]) || padded:
			return false
		}
	}
	if !checksum.IsNumeric(s[5:11]) {
		return false
	}
	month, day := atoi(s[6:8]), atoi(s[8:10])
	if month > 50 {
		month -= 50
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	if !isLetter(s[11]) || (!isLetter(s[12]) && s[12] != '9') || !isDigit(s[13]) {
		return false
	}
	for _, c := range []byte(s[14:]) {
		if !isLetter(c) && !isDigit(c) {
			return false
		}
	}
	return true
}

func (dvla) Format(raw string) string {
	return registry.Groups(registry.Compact(raw), " ", 5, 11)
}

func (dvla) Parse(raw string) domain.Result {
	s := registry.Compact(raw)
	gender := domain.GenderMale
	if s[6] >= '5' {
		gender = domain.GenderFemale
	}
	return domain.Result{Raw: s, Gender: gender}
}

// cnh is the Brazilian Carteira Nacional de Habilitação: nine digits and two check
// digits, weighted 9 down to 1 and 1 up to 9.
type cnh struct{}

var (
	cnhFirstWeights  = []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	cnhSecondWeights = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
)

func cnhCheck(body []int, weights []int) int {
	r := checksum.WeightedSum(body, weights) % 11
	if r >= 10 {
		return 0
	}
	return r
}

func cnhCheckDigits(body []int) string {
	return strconv.Itoa(cnhCheck(body, cnhFirstWeights)) + strconv.Itoa(cnhCheck(body, cnhSecondWeights))
}

func (cnh) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := make([]int, 9)
	body[0] = 1 + rng.IntN(9)
	for i := 1; i < len(body); i++ {
		body[i] = rng.IntN(10)
	}
	checks := cnhCheckDigits(body)
	return domain.Result{Raw: checksum.String(body) + checks, CheckDigits: checks}, nil
}

func (cnh) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 11 || strings.Count(s, s[:1]) == len(s) {
		return false
	}
	digits, ok := checksum.Digits(s)
	if !ok {
		return false
	}
	return cnhCheckDigits(digits[:9]) == s[9:]
}

func (cnh) Format(raw string) string {
	return registry.Compact(raw)
}

func (cnh) Parse(raw string) domain.Result {
	s := registry.Compact(raw)
	return domain.Result{Raw: s, CheckDigits: s[9:]}
}

// nric is the Singapore NRIC carried on the driving licence: S or T, seven digits and a
// check letter.
type nric struct{}

const nricLetters = "JZIHGFEDCBA"

var nricWeights = []int{2, 7, 6, 5, 4, 3, 2}

func nricLetter(prefix byte, digits []int) byte {
	sum := checksum.WeightedSum(digits, nricWeights)
	if prefix == 'T' {
		sum += 4
	}
	return nricLetters[sum%11]
}

func (nric) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	prefix := "ST"[rng.IntN(2)]
	digits := make([]int, 7)
	for i := range digits {
		digits[i] = rng.IntN(10)
	}
	check := nricLetter(prefix, digits)
	return domain.Result{
		Raw:         string(prefix) + checksum.String(digits) + string(check),
		CheckDigits: string(check),
	}, nil
}

func (nric) Validate(raw string) bool {
	s := registry.Compact(raw)
	if len(s) != 9 || (s[0] != 'S' && s[0] != 'T') {
		return false
	}
	digits, ok := checksum.Digits(s[1:8])
	if !ok {
		return false
	}
	return nricLetter(s[0], digits) == s[8]
}

func (nric) Format(raw string) string {
	return registry.Compact(raw)
}
