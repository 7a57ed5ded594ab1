package checksum

// LuhnCheckDigit returns the Luhn check digit for digits, which must not include
// the check position. Every second digit from the right, starting with the
// rightmost payload digit, is doubled and folded.
func LuhnCheckDigit(digits []int) int {
	sum := 0
	length := len(digits)

	for i := 0; i < length; i++ {
		digit := digits[length-1-i]
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return (10 - sum%10) % 10
}

// LuhnValidate reports whether the last digit is the Luhn check digit of the rest.
func LuhnValidate(digits []int) bool {
	if len(digits) < 2 {
		return false
	}
	last := len(digits) - 1
	return LuhnCheckDigit(digits[:last]) == digits[last]
}
