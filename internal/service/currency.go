package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

// parseAmount parses a currency string such as "₹1,234.56" or "- 1,234.56".
// Thousands separators and internal spaces are stripped before parsing.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, currencySymbol, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return decimal.NewFromString(s)
}

// formatINR renders the absolute value with exactly two decimals, comma
// thousands grouping and the currency symbol prefix.
func formatINR(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	dot := strings.LastIndex(fixed, ".")
	return currencySymbol + groupThousands(fixed[:dot]) + fixed[dot:]
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
