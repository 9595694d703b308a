package geometry

// Point represents a pixel coordinate.
type Point struct {
	X, Y int
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FloorDiv returns a/b rounded toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// RoundDiv returns a/b rounded to the nearest integer, with exact halves
// rounded up (toward positive infinity). b must be positive.
func RoundDiv(a, b int) int {
	return FloorDiv(2*a+b, 2*b)
}
