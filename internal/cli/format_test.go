package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{4.5, "$4.50"},
		{1234.5, "$1,234.50"},
		{-20, "-$20.00"},
		{0.999, "$1.00"},
		{1000000, "$1,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney("$", tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%.3f) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(1); got != "Mon" {
		t.Fatalf("FormatDayOfWeek(1) = %s, want Mon", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Fatalf("FormatDayOfWeek(9) = %s, want ???", got)
	}
}
