// Package iban implements the structured-field codec for Basic Bank Account Numbers and
// the ISO 13616 mod-97 wrapping that turns a BBAN into an IBAN.
package iban

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// CharClass is the character class of one BBAN field.
type CharClass int

const (
	Numeric CharClass = iota
	Alpha
	Alphanumeric
)

const (
	digitChars = "0123456789"
	alphaChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnumChars = digitChars + alphaChars
)

// Charset returns the characters a field of this class draws from.
func (c CharClass) Charset() string {
	switch c {
	case Alpha:
		return alphaChars
	case Alphanumeric:
		return alnumChars
	default:
		return digitChars
	}
}

// Matches reports whether b belongs to the class. Lowercase letters never match.
func (c CharClass) Matches(b byte) bool {
	isDigit := b >= '0' && b <= '9'
	isUpper := b >= 'A' && b <= 'Z'
	switch c {
	case Alpha:
		return isUpper
	case Alphanumeric:
		return isDigit || isUpper
	default:
		return isDigit
	}
}

// String returns the class name.
func (c CharClass) String() string {
	switch c {
	case Alpha:
		return "alpha"
	case Alphanumeric:
		return "alphanumeric"
	default:
		return "numeric"
	}
}

// Field is one positional BBAN field.
type Field struct {
	Length int
	Class  CharClass
}

// FormatSpec is the ordered field layout of a country's BBAN.
type FormatSpec struct {
	Country string
	Fields  []Field
}

// Notation renders the layout in SWIFT registry shorthand, for example "4!a6!n8!n" for GB.
func (s FormatSpec) Notation() string {
	var sb strings.Builder
	for _, f := range s.Fields {
		sb.WriteString(strconv.Itoa(f.Length))
		sb.WriteByte('!')
		switch f.Class {
		case Alpha:
			sb.WriteByte('a')
		case Alphanumeric:
			sb.WriteByte('c')
		default:
			sb.WriteByte('n')
		}
	}
	return sb.String()
}

// Length returns the BBAN length, the sum of the field lengths.
func (s FormatSpec) Length() int {
	total := 0
	for _, f := range s.Fields {
		total += f.Length
	}
	return total
}

// Generate draws every field from its class charset. It does not apply national checks.
func (s FormatSpec) Generate(rng *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(s.Length())
	for _, f := range s.Fields {
		charset := f.Class.Charset()
		for i := 0; i < f.Length; i++ {
			sb.WriteByte(charset[rng.IntN(len(charset))])
		}
	}
	return sb.String()
}

// IsWellFormed reports whether raw has the exact length and every position matches its
// field's class. It says nothing about check digits.
func (s FormatSpec) IsWellFormed(raw string) bool {
	_, ok := s.Segment(raw)
	return ok
}

// Segment splits raw into its fields, checking shape on the way.
func (s FormatSpec) Segment(raw string) ([]string, bool) {
	if len(raw) != s.Length() {
		return nil, false
	}
	parts := make([]string, 0, len(s.Fields))
	pos := 0
	for _, f := range s.Fields {
		part := raw[pos : pos+f.Length]
		for i := 0; i < len(part); i++ {
			if !f.Class.Matches(part[i]) {
				return nil, false
			}
		}
		parts = append(parts, part)
		pos += f.Length
	}
	return parts, true
}
