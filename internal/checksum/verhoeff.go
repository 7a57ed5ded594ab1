package checksum

// Cayley table of the dihedral group D5.
var verhoeffD = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// Position permutations, indexed by position mod 8.
var verhoeffP = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

var verhoeffInv = [10]int{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}

// VerhoeffCheckDigit returns the Verhoeff check digit for digits (check position excluded).
// Digits are consumed right to left; the check digit will occupy position 0.
func VerhoeffCheckDigit(digits []int) int {
	c := 0
	length := len(digits)
	for i := 0; i < length; i++ {
		c = verhoeffD[c][verhoeffP[(i+1)%8][digits[length-1-i]]]
	}
	return verhoeffInv[c]
}

// VerhoeffValidate reports whether the last digit is the Verhoeff check of the rest.
func VerhoeffValidate(digits []int) bool {
	if len(digits) < 2 {
		return false
	}
	last := len(digits) - 1
	return VerhoeffCheckDigit(digits[:last]) == digits[last]
}
