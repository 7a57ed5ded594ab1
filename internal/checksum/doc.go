// Package checksum implements the check-digit algorithms shared by every identifier
// format: Luhn, ISO 7064 mod 11-10 and mod 11-2, Verhoeff, generic weighted sums and
// the ISO 13616 mod-97 used by IBANs and LEIs.
//
// All functions are pure. Every Validate function recomputes the check with the
// matching check function and compares, so generation and validation cannot drift.
package checksum
