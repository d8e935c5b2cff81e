package util

import "testing"

func TestSatSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive result", 5, 3, 2},
		{"equal operands", 4, 4, 0},
		{"would underflow", 3, 5, 0},
		{"zero minus zero", 0, 0, 0},
		{"zero minus positive", 0, 1, 0},
		{"large minus one", 65535, 1, 65534},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SatSub(tt.a, tt.b); got != tt.expected {
				t.Errorf("SatSub(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
