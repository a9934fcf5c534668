package cli

import (
	"testing"
	"time"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{12.5, "$12.50"},
		{1234.56, "$1,234.56"},
		{999.995, "$1,000.00"},
		{-42.25, "-$42.25"},
		{1000000, "$1,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "Mar 15" {
		t.Errorf("FormatDate = %q, want Mar 15", got)
	}
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("zero date = %q, want -", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatProgressLabel(t *testing.T) {
	if got := FormatProgressLabel(25.0); got != "25.0% complete" {
		t.Errorf("got %q, want \"25.0%% complete\"", got)
	}
	// Overfunded goals keep the unclamped figure in the label.
	if got := FormatProgressLabel(125.0); got != "125.0% complete" {
		t.Errorf("got %q, want \"125.0%% complete\"", got)
	}
}
