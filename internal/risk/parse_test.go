package risk

import (
	"math"
	"testing"
)

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"45", 45},
		{" 45 ", 45},
		{"45.9", 45},
		{"145/90", 145},
		{"-3", -3},
		{"+7", 7},
		{"", 99},
		{"abc", 99},
		{"-", 99},
		{"0", 99},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
		{"99999999999999999999999 mmHg", math.MaxInt},
	}
	for _, tc := range tests {
		if got := leadingInt(tc.in, 99); got != tc.want {
			t.Errorf("leadingInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLeadingFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"22.5", 22.5},
		{"31.2 kg", 31.2},
		{".5", 0.5},
		{"5.", 5},
		{"1e1", 10},
		{"3e", 3},
		{"2E+1x", 20},
		{"", 7},
		{".", 7},
		{"0.0", 7},
		{"bmi", 7},
		{"1e999", math.Inf(1)},
		{"-1e999", math.Inf(-1)},
		{"1e-999", 7},
	}
	for _, tc := range tests {
		if got := leadingFloat(tc.in, 7); got != tc.want {
			t.Errorf("leadingFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
