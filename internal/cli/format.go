// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with the given currency symbol.
// e.g., 1234.5 -> "$1,234.50", -20 -> "-$20.00"
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(symbol, -amount)
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s%s.%02d", symbol, FormatNumber(whole), cents)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatMode returns a short human label for a plan's target mode.
func FormatMode(mode string, penalty bool) string {
	if penalty {
		return mode + "+penalty"
	}
	return mode
}
