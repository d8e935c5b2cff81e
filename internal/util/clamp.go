package util

// SatSub returns a-b, saturating at zero. Coordinate math must never
// produce a negative value, so subtraction near the origin goes through
// this helper instead of relying on plain arithmetic.
func SatSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
