// Package creditcard generates and validates Luhn-valid payment card numbers for the
// major brands, with brand-aware formatting.
package creditcard

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/registry"
)

// ErrUnsupportedBrand indicates an unknown card brand.
var ErrUnsupportedBrand = errors.Wrap(errors.ErrNotFound, "unsupported card brand")

// Brand identifies a card network.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	BrandJCB        Brand = "jcb"
	BrandDiners     Brand = "diners"
)

// Brands lists every supported brand.
func Brands() []Brand {
	return []Brand{BrandVisa, BrandMastercard, BrandAmex, BrandDiscover, BrandJCB, BrandDiners}
}

// ParseBrand accepts a brand name in any case. Empty means any brand.
func ParseBrand(s string) (Brand, error) {
	b := Brand(strings.ToLower(strings.TrimSpace(s)))
	if b == "" {
		return "", nil
	}
	for _, known := range Brands() {
		if b == known {
			return b, nil
		}
	}
	return "", errors.Wrapf(ErrUnsupportedBrand, "%q", s)
}

// DisplayName returns the brand as printed on listings.
func (b Brand) DisplayName() string {
	switch b {
	case "":
		return ""
	case BrandAmex:
		return "Amex"
	case BrandJCB:
		return "JCB"
	default:
		return strings.ToUpper(string(b[:1])) + string(b[1:])
	}
}

// Length returns the number of digits the brand issues.
func (b Brand) Length() int {
	switch b {
	case BrandAmex:
		return 15
	case BrandDiners:
		return 14
	default:
		return 16
	}
}

// CVVLength returns the length of the brand's security code.
func (b Brand) CVVLength() int {
	if b == BrandAmex {
		return 4
	}
	return 3
}

// prefix draws an issuer identification prefix for the brand.
func (b Brand) prefix(rng *rand.Rand) string {
	switch b {
	case BrandVisa:
		return "4"
	case BrandMastercard:
		if rng.IntN(5) < 4 {
			return fmt.Sprintf("5%d", 1+rng.IntN(5))
		}
		return fmt.Sprintf("%d", 2221+rng.IntN(500))
	case BrandAmex:
		return []string{"34", "37"}[rng.IntN(2)]
	case BrandDiscover:
		switch rng.IntN(3) {
		case 0:
			return "6011"
		case 1:
			return "65"
		default:
			return fmt.Sprintf("64%d", 4+rng.IntN(6))
		}
	case BrandJCB:
		return fmt.Sprintf("%d", 3528+rng.IntN(62))
	default:
		if rng.IntN(2) == 0 {
			return fmt.Sprintf("30%d", rng.IntN(6))
		}
		return []string{"36", "38"}[rng.IntN(2)]
	}
}

// Card is a generated card.
type Card struct {
	Brand     Brand
	Number    string
	Formatted string
	CVV       string
	Expiry    string
	Valid     bool
}

// ErrMissingReferenceTime indicates Options.Now was left zero.
var ErrMissingReferenceTime = errors.Wrap(errors.ErrInvalidInput, "reference time for the expiry date is required")

// Options selects the brand (random when empty) and the reference time the expiry date
// is drawn after.
type Options struct {
	Brand Brand
	Now   time.Time
}

// Generate returns a Luhn-valid card with a CVV and an expiry within five years of Now.
func Generate(opts Options, rng *rand.Rand) (Card, error) {
	brand := opts.Brand
	if brand == "" {
		brands := Brands()
		brand = brands[rng.IntN(len(brands))]
	} else if _, err := ParseBrand(string(brand)); err != nil {
		return Card{}, err
	}
	now := opts.Now
	if now.IsZero() {
		return Card{}, ErrMissingReferenceTime
	}

	payload, _ := checksum.Digits(brand.prefix(rng))
	for len(payload) < brand.Length()-1 {
		payload = append(payload, rng.IntN(10))
	}
	number := checksum.String(append(payload, checksum.LuhnCheckDigit(payload)))

	cvv := make([]int, brand.CVVLength())
	for i := range cvv {
		cvv[i] = rng.IntN(10)
	}
	year := now.Year()%100 + rng.IntN(6)

	return Card{
		Brand:     brand,
		Number:    number,
		Formatted: Format(brand, number),
		CVV:       checksum.String(cvv),
		Expiry:    fmt.Sprintf("%02d/%02d", 1+rng.IntN(12), year%100),
		Valid:     true,
	}, nil
}

func compact(number string) (string, bool) {
	s := registry.StripSeparators(strings.TrimSpace(number))
	return s, checksum.IsNumeric(s)
}

// Validate reports whether number (separators allowed) has 13 to 19 digits and a valid
// Luhn check digit.
func Validate(number string) bool {
	s, ok := compact(number)
	if !ok || len(s) < 13 || len(s) > 19 {
		return false
	}
	digits, _ := checksum.Digits(s)
	return checksum.LuhnValidate(digits)
}

// Format groups number the way the brand prints it: 4-6-5 for Amex, 4-6-4 for Diners and
// blocks of four otherwise.
func Format(brand Brand, number string) string {
	s, ok := compact(number)
	if !ok {
		return strings.TrimSpace(number)
	}
	switch {
	case brand == BrandAmex && len(s) == 15, brand == BrandDiners && len(s) == 14:
		return s[:4] + " " + s[4:10] + " " + s[10:]
	}
	var sb strings.Builder
	for i := 0; i < len(s); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i:min(i+4, len(s))])
	}
	return sb.String()
}

// Detect infers the brand from the issuer prefix and length.
func Detect(number string) (Brand, bool) {
	s, ok := compact(number)
	if !ok {
		return "", false
	}
	p := func(n int) int {
		if len(s) < n {
			return -1
		}
		v := 0
		for i := 0; i < n; i++ {
			v = v*10 + int(s[i]-'0')
		}
		return v
	}
	switch {
	case s[0] == '4' && len(s) == 16:
		return BrandVisa, true
	case (p(2) >= 51 && p(2) <= 55 || p(4) >= 2221 && p(4) <= 2720) && len(s) == 16:
		return BrandMastercard, true
	case (p(2) == 34 || p(2) == 37) && len(s) == 15:
		return BrandAmex, true
	case (p(4) == 6011 || p(2) == 65 || p(3) >= 644 && p(3) <= 649) && len(s) == 16:
		return BrandDiscover, true
	case p(4) >= 3528 && p(4) <= 3589 && len(s) == 16:
		return BrandJCB, true
	case (p(3) >= 300 && p(3) <= 305 || p(2) == 36 || p(2) == 38) && len(s) == 14:
		return BrandDiners, true
	}
	return "", false
}

// Inspect validates number and, when it is valid, fills in the detected brand and the
// brand-aware formatting.
func Inspect(number string) Card {
	s, _ := compact(number)
	card := Card{Number: s, Formatted: strings.TrimSpace(number)}
	if !Validate(number) {
		return card
	}
	card.Valid = true
	card.Brand, _ = Detect(s)
	card.Formatted = Format(card.Brand, s)
	return card
}
