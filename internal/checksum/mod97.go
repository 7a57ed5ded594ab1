package checksum

// Mod97 returns numeric mod 97, processing the decimal string left to right so
// arbitrarily long inputs never overflow. Non-digit bytes are ignored.
func Mod97(numeric string) int {
	remainder := 0
	for i := 0; i < len(numeric); i++ {
		c := numeric[i]
		if c < '0' || c > '9' {
			continue
		}
		remainder = (remainder*10 + int(c-'0')) % 97
	}
	return remainder
}

// ToNumeric maps letters to two-digit numerals (A=10 … Z=35) and keeps digits.
// Lowercase letters map like their uppercase form. It returns false on any other byte.
func ToNumeric(s string) (string, bool) {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			out = append(out, byte('0'+v/10), byte('0'+v%10))
		case c >= 'a' && c <= 'z':
			v := int(c-'a') + 10
			out = append(out, byte('0'+v/10), byte('0'+v%10))
		default:
			return "", false
		}
	}
	return string(out), true
}

// Mod97Complement returns the two check digits that make body+check ≡ 1 (mod 97),
// where body already ends with the "00" placeholder: 98 - mod97(body).
func Mod97Complement(numericBody string) int {
	return 98 - Mod97(numericBody)
}
