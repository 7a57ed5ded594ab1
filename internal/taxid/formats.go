package taxid

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

const upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func isUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return s != ""
}

func randomUpper(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = upperChars[rng.IntN(len(upperChars))]
	}
	return string(b)
}

// panCodec is the Indian Permanent Account Number: five letters (the fourth names the
// holder type), four digits and a letter.
type panCodec struct{}

// panHolderTypes: person, company, HUF, firm, AOP, trust, BOI, local authority,
// artificial juridical person, government.
const panHolderTypes = "PCHFATBLJG"

func (panCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	holder := strings.ToUpper(strings.TrimSpace(opts.HolderType))
	switch {
	case holder == "":
		holder = string(panHolderTypes[rng.IntN(len(panHolderTypes))])
	case len(holder) != 1 || !strings.Contains(panHolderTypes, holder):
		return domain.Result{}, errors.Wrapf(domain.ErrInvalidOption, "holder type %q not in %s", opts.HolderType, panHolderTypes)
	}
	raw := randomUpper(rng, 3) + holder + randomUpper(rng, 1) +
		fmt.Sprintf("%04d", 1+rng.IntN(9999)) + randomUpper(rng, 1)
	return domain.Result{Raw: raw, HolderType: holder}, nil
}

func (panCodec) Validate(raw string) bool {
	s := compact(raw)
	return len(s) == 10 && isUpper(s[:5]) && strings.IndexByte(panHolderTypes, s[3]) >= 0 &&
		checksum.IsNumeric(s[5:9]) && isUpper(s[9:])
}

func (panCodec) Format(raw string) string {
	return compact(raw)
}

func (panCodec) Parse(raw string) domain.Result {
	s := compact(raw)
	return domain.Result{Raw: s, HolderType: s[3:4]}
}

// frenchNIF is the French tax number: ten digits starting 0-3 and a three-digit key equal
// to the first ten modulo 511.
type frenchNIF struct{}

func (frenchNIF) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	base := rng.IntN(4)*1_000_000_000 + rng.IntN(1_000_000_000)
	key := fmt.Sprintf("%03d", base%511)
	return domain.Result{Raw: fmt.Sprintf("%010d", base) + key, CheckDigits: key}, nil
}

func (frenchNIF) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 13)
	if !ok || digits[0] > 3 {
		return false
	}
	return number(digits[:10])%511 == number(digits[10:])
}

func (frenchNIF) Format(raw string) string {
	return groups(compact(raw), " ", 2, 4, 7, 10)
}

// utr is the UK Unique Taxpayer Reference: a leading check digit and nine digits.
type utr struct{}

var (
	utrWeights = []int{6, 7, 8, 9, 10, 5, 4, 3, 2}
	utrLookup  = []int{2, 1, 9, 8, 7, 6, 5, 4, 3, 2, 1}
)

func (utr) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	base := make([]int, 9)
	for i := range base {
		base[i] = rng.IntN(10)
	}
	check := utrLookup[checksum.WeightedSum(base, utrWeights)%11]
	raw := strconv.Itoa(check) + checksum.String(base)
	return domain.Result{Raw: raw, CheckDigits: raw[:1]}, nil
}

func (utr) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 10)
	return ok && utrLookup[checksum.WeightedSum(digits[1:], utrWeights)%11] == digits[0]
}

func (utr) Format(raw string) string {
	return groups(compact(raw), " ", 5)
}

// usci is the Chinese Unified Social Credit Identifier: 18 characters from a 31-symbol
// alphabet with a weighted mod 31 check character.
type usci struct{}

const usciChars = "0123456789ABCDEFGHJKLMNPQRTUWXY"

var usciWeights = []int{1, 3, 9, 27, 19, 26, 16, 17, 20, 29, 25, 13, 8, 24, 10, 30, 28}

func usciCheck(values []int) byte {
	return usciChars[(31-checksum.WeightedSum(values, usciWeights)%31)%31]
}

func (usci) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	values := []int{1 + rng.IntN(9), 1 + rng.IntN(9)}
	region, _ := checksum.Digits(fmt.Sprintf("%06d", 110000+rng.IntN(549001)))
	values = append(values, region...)
	for i := 0; i < 9; i++ {
		values = append(values, rng.IntN(len(usciChars)))
	}

	var sb strings.Builder
	for _, v := range values {
		sb.WriteByte(usciChars[v])
	}
	check := usciCheck(values)
	sb.WriteByte(check)
	return domain.Result{Raw: sb.String(), CheckDigits: string(check)}, nil
}

func (usci) Validate(raw string) bool {
	s := compact(raw)
	if len(s) != 18 {
		return false
	}
	values := make([]int, 17)
	for i := range values {
		v := strings.IndexByte(usciChars, s[i])
		if v < 0 {
			return false
		}
		values[i] = v
	}
	return usciCheck(values) == s[17]
}

func (usci) Format(raw string) string {
	return compact(raw)
}

// rut is the Chilean Rol Unico Tributario: a body of seven or eight digits and a mod 11
// check character (0-9 or K).
type rut struct{}

func rutCheck(body string) byte {
	sum, w := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * w
		if w++; w > 7 {
			w = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + r)
	}
}

func (rut) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	body := strconv.Itoa(1_000_000 + rng.IntN(99_000_000))
	check := rutCheck(body)
	return domain.Result{Raw: body + string(check), CheckDigits: string(check)}, nil
}

func (rut) Validate(raw string) bool {
	s := compact(raw)
	if len(s) < 8 || len(s) > 9 {
		return false
	}
	body := s[:len(s)-1]
	return checksum.IsNumeric(body) && body[0] != '0' && rutCheck(body) == s[len(s)-1]
}

// Format renders the body with dotted thousands and a dash before the check character.
func (rut) Format(raw string) string {
	s := compact(raw)
	body := s[:len(s)-1]
	var parts []string
	for len(body) > 3 {
		parts = append([]string{body[len(body)-3:]}, parts...)
		body = body[:len(body)-3]
	}
	parts = append([]string{body}, parts...)
	return strings.Join(parts, ".") + "-" + s[len(s)-1:]
}

// belgianNN is the Belgian national number: YYMMDD, a sequence and a mod 97 key computed
// with a leading 2 for people born from 2000.
type belgianNN struct{}

func belgianKeys(base int) (int, int) {
	return 97 - base%97, 97 - (2_000_000_000+base)%97
}

func (belgianNN) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	yy, mm, dd := rng.IntN(100), 1+rng.IntN(12), 1+rng.IntN(28)
	base := fmt.Sprintf("%02d%02d%02d%03d", yy, mm, dd, 1+rng.IntN(997))
	k19, k20 := belgianKeys(atoi(base))
	key := k19
	if rng.IntN(2) == 0 {
		key = k20
	}
	check := fmt.Sprintf("%02d", key)
	return domain.Result{Raw: base + check, CheckDigits: check}, nil
}

func (belgianNN) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok {
		return false
	}
	k19, k20 := belgianKeys(number(digits[:9]))
	key := number(digits[9:])
	return key == k19 || key == k20
}

func (belgianNN) Format(raw string) string {
	s := compact(raw)
	return s[:2] + "." + s[2:4] + "." + s[4:6] + "-" + s[6:9] + "." + s[9:]
}

// tcKimlik is the Turkish identity number: nine digits, then two check digits derived
// from the odd and even position sums.
type tcKimlik struct{}

func tcChecks(body []int) (int, int) {
	odd, even := 0, 0
	for i, d := range body[:9] {
		if i%2 == 0 {
			odd += d
		} else {
			even += d
		}
	}
	d10 := ((odd*7-even)%10 + 10) % 10
	total := d10
	for _, d := range body[:9] {
		total += d
	}
	return d10, total % 10
}

func (tcKimlik) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	digits := []int{1 + rng.IntN(9)}
	for i := 0; i < 8; i++ {
		digits = append(digits, rng.IntN(10))
	}
	d10, d11 := tcChecks(digits)
	raw := checksum.String(append(digits, d10, d11))
	return domain.Result{Raw: raw, CheckDigits: raw[9:]}, nil
}

func (tcKimlik) Validate(raw string) bool {
	digits, ok := digitsOf(raw, 11)
	if !ok || digits[0] == 0 {
		return false
	}
	d10, d11 := tcChecks(digits)
	return digits[9] == d10 && digits[10] == d11
}

func (tcKimlik) Format(raw string) string {
	return compact(raw)
}

// rfc is the Mexican Registro Federal de Contribuyentes: three (companies) or four
// (individuals) letters, YYMMDD, a two-character homoclave and a check character.
type rfc struct{}

const (
	rfcChars      = "0123456789ABCDEFGHIJKLMN&OPQRSTUVWXYZ "
	rfcHomoclaves = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func rfcCheck(base string) byte {
	if len(base) == 11 {
		base = " " + base
	}
	sum := 0
	for i := 0; i < len(base); i++ {
		v := strings.IndexByte(rfcChars, base[i])
		if v < 0 {
			v = 0
		}
		sum += v * (13 - i)
	}
	switch r := sum % 11; r {
	case 0:
		return '0'
	case 1:
		return 'A'
	default:
		return byte('0' + 11 - r)
	}
}

func (rfc) Generate(_ domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	prefix := randomUpper(rng, 3+rng.IntN(2))
	homoclave := []byte{rfcHomoclaves[rng.IntN(len(rfcHomoclaves))], rfcHomoclaves[rng.IntN(len(rfcHomoclaves))]}
	base := fmt.Sprintf("%s%02d%02d%02d%s", prefix, 50+rng.IntN(50), 1+rng.IntN(12), 1+rng.IntN(28), homoclave)
	check := rfcCheck(base)
	return domain.Result{Raw: base + string(check), CheckDigits: string(check)}, nil
}

func (rfc) Validate(raw string) bool {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 12 && len(s) != 13 {
		return false
	}
	n := len(s) - 9
	for i := 0; i < n; i++ {
		if (s[i] < 'A' || s[i] > 'Z') && s[i] != '&' {
			return false
		}
	}
	if !checksum.IsNumeric(s[n : n+6]) {
		return false
	}
	for i := n + 6; i < len(s)-1; i++ {
		if strings.IndexByte(rfcHomoclaves, s[i]) < 0 {
			return false
		}
	}
	return rfcCheck(s[:len(s)-1]) == s[len(s)-1]
}

func (rfc) Format(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
