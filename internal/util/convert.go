// Package util provides shared utility functions used across peruse.
package util

import "strings"

// IntToString converts an integer to its string representation without
// using the fmt package. Escape sequences are assembled once per redraw
// cycle, so allocation from fmt.Sprintf is worth avoiding here.
func IntToString(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + IntToString(-n)
	}
	var result strings.Builder
	for n > 0 {
		result.WriteString(string(rune('0' + n%10)))
		n /= 10
	}
	// Reverse the string
	s := result.String()
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
