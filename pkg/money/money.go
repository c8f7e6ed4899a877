// Package money renders amounts with the app's fixed currency label and
// two-decimal format. Amounts are not locale-derived.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultLabel is the currency label used when config does not override it.
const DefaultLabel = "S/."

// Format renders an amount as "S/. 12.50".
func Format(amount float64) string {
	return FormatWith(DefaultLabel, amount)
}

// FormatWith renders an amount with a caller-supplied label.
func FormatWith(label string, amount float64) string {
	return fmt.Sprintf("%s %.2f", label, amount)
}

// ParsePrice parses a user-typed price. Empty or malformed input and
// negative values report ok=false; callers treat that as a no-op.
func ParsePrice(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
