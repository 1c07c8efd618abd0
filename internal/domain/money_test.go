package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIntegerToAmount(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		expected string
	}{
		{"zero", 0, "0.00"},
		{"one cent", 1, "0.01"},
		{"whole units", 100000, "1000.00"},
		{"negative", -2550, "-25.50"},
		{"sub-unit", 99, "0.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntegerToAmount(tt.minor)
			if got.StringFixed(2) != tt.expected {
				t.Errorf("IntegerToAmount(%d) = %s, want %s", tt.minor, got.StringFixed(2), tt.expected)
			}
		})
	}
}

func TestAmountToInteger(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected int64
	}{
		{"zero", "0", 0},
		{"whole units", "1000.00", 100000},
		{"negative", "-25.50", -2550},
		{"rounds half up", "0.005", 1},
		{"rounds half away from zero", "-0.005", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("bad test amount %q: %v", tt.amount, err)
			}
			if got := AmountToInteger(amount); got != tt.expected {
				t.Errorf("AmountToInteger(%s) = %d, want %d", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestAmountConversionRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 99, 100, 12345, -12345, 100000, 9999999999}

	for _, minor := range values {
		if got := AmountToInteger(IntegerToAmount(minor)); got != minor {
			t.Errorf("round trip of %d gave %d", minor, got)
		}
	}
}
