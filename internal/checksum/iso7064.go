package checksum

// ISO7064Mod1110 returns the ISO 7064 MOD 11,10 check digit of digits.
// The running product starts at 10; a zero intermediate sum counts as 10.
func ISO7064Mod1110(digits []int) int {
	product := 10
	for _, d := range digits {
		sum := (d + product) % 10
		if sum == 0 {
			sum = 10
		}
		product = (sum * 2) % 11
	}
	return (11 - product) % 10
}

// ISO7064Mod1110Validate reports whether the last digit is the MOD 11,10 check of the rest.
func ISO7064Mod1110Validate(digits []int) bool {
	if len(digits) < 2 {
		return false
	}
	last := len(digits) - 1
	return ISO7064Mod1110(digits[:last]) == digits[last]
}

const mod112Symbols = "0123456789X"

// ISO7064Mod112 returns the ISO 7064 MOD 11-2 check character of digits: '0'-'9' or 'X'.
// Position i (1-based, n digits) carries weight 2^(n-i+1) mod 11.
func ISO7064Mod112(digits []int) byte {
	p := 0
	for _, d := range digits {
		p = ((p + d) * 2) % 11
	}
	return mod112Symbols[(12-p)%11]
}

// ISO7064Mod112Validate reports whether s is a digit string followed by its
// MOD 11-2 check character. A lowercase 'x' is accepted.
func ISO7064Mod112Validate(s string) bool {
	if len(s) < 2 {
		return false
	}
	last := len(s) - 1
	digits, ok := Digits(s[:last])
	if !ok {
		return false
	}
	check := s[last]
	if check == 'x' {
		check = 'X'
	}
	return ISO7064Mod112(digits) == check
}
