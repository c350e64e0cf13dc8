package report

import (
	"math"
	"testing"

	"github.com/umi000/AMMA-Stress/internal/summary"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    summary.Value
		expected string
	}{
		{summary.Null, "—"},
		{summary.Of(0), "0"},
		{summary.Of(42), "42"},
		{summary.Of(-7), "-7"},
		{summary.Of(42.5), "42.50"},
		{summary.Of(464.5404), "464.54"},
		{summary.Of(1000000), "1000000"},
		{summary.Of(2000001), "2000001.00"},
		{summary.Of(0.125), "0.13"},
		{summary.Of(1e21), "1e+21"},
		{summary.Of(1.5e22), "1.5e+22"},
		{summary.Of(-2.5e22), "-2.5e+22"},
	}

	for _, tc := range tests {
		result := FormatNumber(tc.input)
		if result != tc.expected {
			t.Errorf("FormatNumber(%v) = %s, expected %s", tc.input, result, tc.expected)
		}
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		input    summary.Value
		expected string
	}{
		{summary.Null, "—"},
		{summary.Of(0), "0 ms"},
		{summary.Of(500), "500 ms"},
		{summary.Of(123.4), "123 ms"},
		{summary.Of(88.5), "89 ms"},
		{summary.Of(999.4), "999 ms"},
		{summary.Of(999.5), "1000 ms"},
		{summary.Of(-0.2), "0 ms"},
		{summary.Of(1000), "1.00 s"},
		{summary.Of(1500), "1.50 s"},
		{summary.Of(2412.8), "2.41 s"},
		{summary.Of(12345.678), "12.35 s"},
		{summary.Of(-3e21), "-3e+21 ms"},
	}

	for _, tc := range tests {
		result := FormatMillis(tc.input)
		if result != tc.expected {
			t.Errorf("FormatMillis(%v) = %s, expected %s", tc.input, result, tc.expected)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		input    summary.Value
		expected string
	}{
		{summary.Null, "—"},
		{summary.Of(0), "0.00%"},
		{summary.Of(0.0567), "5.67%"},
		{summary.Of(1), "100.00%"},
		{summary.Of(0.3), "30.00%"},
		{summary.Of(math.Copysign(0, -1)), "0.00%"},
		{summary.Of(1e20), "1e+22%"},
	}

	for _, tc := range tests {
		result := FormatRate(tc.input)
		if result != tc.expected {
			t.Errorf("FormatRate(%v) = %s, expected %s", tc.input, result, tc.expected)
		}
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		input    float64
		prec     int
		expected string
	}{
		{1.005, 2, "1.00"},
		{0.125, 2, "0.13"},
		{-0.125, 2, "-0.13"},
		{0.375, 2, "0.38"},
		{9.995, 2, "9.99"},
		{99.875, 2, "99.88"},
		{0.995, 2, "0.99"},
		{2.5, 0, "3"},
		{9.5, 0, "10"},
		{1.25, 1, "1.3"},
		{1e21, 2, "1e+21"},
		{-1e21, 2, "-1e+21"},
		{1e20, 2, "100000000000000000000.00"},
	}

	for _, tc := range tests {
		result := toFixed(tc.input, tc.prec)
		if result != tc.expected {
			t.Errorf("toFixed(%v, %d) = %s, expected %s", tc.input, tc.prec, result, tc.expected)
		}
	}
}
