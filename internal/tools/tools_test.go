package tools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOk bool
	}{
		{"10.5", 10.5, true},
		{"9.0", 9, true},
		{"  42", 42, true},
		{"-3.25", -3.25, true},
		{"+7", 7, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"1.5E-2", 0.015, true},
		{"1e", 1, true},
		{"12.5abc", 12.5, true},
		{"64350.0 USD", 64350, true},
		{"0x10", 0, true},
		{"1e400", math.Inf(1), true},
		{"-1e400", math.Inf(-1), true},
		{"1e2000000000", math.Inf(1), true},
		{"1e3000000000", math.Inf(1), true},
		{"1e-2000000000", 0, true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"+Infinityx", math.Inf(1), true},
		{"", 0, false},
		{"NaN", 0, false},
		{"infinity", 0, false},
		{"inf", 0, false},
		{"abc12", 0, false},
		{".", 0, false},
		{"-", 0, false},
		{"e5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePrice(tt.in)
			require.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{9, "9"},
		{10.5, "10.5"},
		{0.015, "0.015"},
		{-3.25, "-3.25"},
		{64350.5, "64350.5"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, FormatPrice(tt.in))
		})
	}
}
