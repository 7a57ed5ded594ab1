package iban

import (
	"fmt"

	"github.com/allisson/idsmith/internal/checksum"
)

// nationalRule writes a country's domestic check digits into b in place. It returns
// false when the drawn digits admit no valid check, so the caller must redraw.
// Verification runs the same rule on a copy and compares.
type nationalRule func(b []byte) bool

var nationalRules = map[string]nationalRule{
	"NO": norwayRule,
	"EE": estoniaRule,
	"BE": belgiumRule,
	"BA": mod97TailRule,
	"ME": mod97TailRule,
	"MK": mod97TailRule,
	"PT": mod97TailRule,
	"RS": mod97TailRule,
	"SI": mod97TailRule,
	"PL": polandRule,
	"ES": spainRule,
	"HR": croatiaRule,
	"CZ": czechRule,
	"SK": czechRule,
	"HU": hungaryRule,
	"FR": ribRule,
	"MC": ribRule,
	"GF": ribRule,
	"GP": ribRule,
	"MF": ribRule,
	"MQ": ribRule,
	"NC": ribRule,
	"PF": ribRule,
	"PM": ribRule,
	"RE": ribRule,
	"TF": ribRule,
	"WF": ribRule,
	"YT": ribRule,
}

func digitsOf(b []byte) []int {
	d := make([]int, len(b))
	for i, c := range b {
		d[i] = int(c - '0')
	}
	return d
}

func repeatWeights(pattern []int, n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = pattern[i%len(pattern)]
	}
	return w
}

func putTwoDigits(b []byte, v int) {
	copy(b, fmt.Sprintf("%02d", v))
}

func norwayRule(b []byte) bool {
	sum := checksum.WeightedSum(digitsOf(b[:10]), []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2})
	check := checksum.ComplementMod11(sum)
	if check > 9 {
		return false
	}
	b[10] = byte('0' + check)
	return true
}

func estoniaRule(b []byte) bool {
	sum := checksum.WeightedSum(digitsOf(b[2:15]), repeatWeights([]int{7, 1, 3}, 13))
	b[15] = byte('0' + checksum.ComplementMod10(sum))
	return true
}

func belgiumRule(b []byte) bool {
	check := checksum.Mod97(string(b[:10]))
	if check == 0 {
		check = 97
	}
	putTwoDigits(b[10:12], check)
	return true
}

// mod97TailRule makes the whole numeric BBAN congruent to 1 mod 97 through its last
// two digits.
func mod97TailRule(b []byte) bool {
	n := len(b)
	b[n-2], b[n-1] = '0', '0'
	putTwoDigits(b[n-2:], checksum.Mod97Complement(string(b)))
	return true
}

func polandRule(b []byte) bool {
	sum := checksum.WeightedSum(digitsOf(b[:7]), []int{3, 9, 7, 1, 3, 9, 7})
	b[7] = byte('0' + checksum.ComplementMod10(sum))
	return true
}

// spanishMod11 maps remainder 0 to 0, 1 to 1 and anything else to 11-r.
func spanishMod11(digits, weights []int) int {
	r := checksum.WeightedCheck(digits, weights, 11)
	if r < 2 {
		return r
	}
	return 11 - r
}

func spainRule(b []byte) bool {
	b[8] = byte('0' + spanishMod11(digitsOf(b[:8]), []int{4, 8, 5, 10, 9, 7, 3, 6}))
	b[9] = byte('0' + spanishMod11(digitsOf(b[10:20]), []int{1, 2, 4, 8, 5, 10, 9, 7, 3, 6}))
	return true
}

func croatiaRule(b []byte) bool {
	b[6] = byte('0' + checksum.ISO7064Mod1110(digitsOf(b[:6])))
	b[16] = byte('0' + checksum.ISO7064Mod1110(digitsOf(b[7:16])))
	return true
}

func czechRule(b []byte) bool {
	prefix := checksum.ComplementMod11(checksum.WeightedSum(digitsOf(b[4:9]), []int{10, 5, 8, 4, 2}))
	suffix := checksum.ComplementMod11(checksum.WeightedSum(digitsOf(b[10:19]), []int{6, 3, 7, 9, 10, 5, 8, 4, 2}))
	if prefix > 9 || suffix > 9 {
		return false
	}
	b[9] = byte('0' + prefix)
	b[19] = byte('0' + suffix)
	return true
}

func hungaryRule(b []byte) bool {
	weights := repeatWeights([]int{9, 7, 3, 1}, 15)
	b[7] = byte('0' + checksum.ComplementMod10(checksum.WeightedSum(digitsOf(b[:7]), weights)))
	b[23] = byte('0' + checksum.ComplementMod10(checksum.WeightedSum(digitsOf(b[8:23]), weights)))
	return true
}

// ribLetterValues maps letters to digits for the French RIB key: A/J→1, B/K/S→2, …
const ribLetterValues = "12345678912345678923456789"

// ribRule computes the French RIB key over the BBAN with letters substituted.
func ribRule(b []byte) bool {
	n := len(b)
	b[n-2], b[n-1] = '0', '0'
	normalized := make([]byte, n)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			normalized[i] = ribLetterValues[c-'A']
		} else {
			normalized[i] = c
		}
	}
	putTwoDigits(b[n-2:], (97-checksum.Mod97(string(normalized)))%97)
	return true
}
