package checksum

// WeightedSum returns Σ digits[i]*weights[i] over the shorter of the two slices.
func WeightedSum(digits, weights []int) int {
	n := min(len(digits), len(weights))
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * weights[i]
	}
	return sum
}

// WeightedCheck returns the remainder of the weighted sum modulo modulus.
// Callers map the remainder to a check digit with their own rules.
func WeightedCheck(digits, weights []int, modulus int) int {
	return WeightedSum(digits, weights) % modulus
}

// ComplementMod10 maps a weighted sum to (10 - sum%10) % 10.
func ComplementMod10(sum int) int {
	return (10 - sum%10) % 10
}

// ComplementMod11 maps a weighted sum to 11 - sum%11 with remainder 0 giving 0.
// The result is 10 when the remainder is 1; callers decide whether that is a redraw
// or a valid digit.
func ComplementMod11(sum int) int {
	r := sum % 11
	if r == 0 {
		return 0
	}
	return 11 - r
}
