package prompt

// DigitLength returns the number of decimal digits of n. Zero has one digit.
func DigitLength(n uint64) int {
	length := 1
	for n >= 10 {
		n /= 10
		length++
	}
	return length
}
