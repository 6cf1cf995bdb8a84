package common

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.5, -1, 1, 0.5},
		{"below", -3, -1, 1, -1},
		{"above", 7, -1, 1, 1},
		{"at_low_edge", -1, -1, 1, -1},
		{"at_high_edge", 1, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
