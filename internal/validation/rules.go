// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}

// CountryCode validates a two-letter country code in any case, surrounding whitespace
// allowed. Whether the code is supported is decided by the registry, not here.
var CountryCode = validation.NewStringRuleWithError(
	func(s string) bool {
		s = strings.TrimSpace(s)
		return len(s) == 2 && isLetter(s[0]) && isLetter(s[1])
	},
	validation.NewError("validation_country_code", "must be a two-letter country code"),
)

// Gender validates the gender knob spellings accepted by domain.ParseGender.
var Gender = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := domain.ParseGender(s)
		return err == nil
	},
	validation.NewError("validation_gender", "must be male or female"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
