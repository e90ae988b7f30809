package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimals shown for amounts.
const MoneyPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney formats an amount with two decimals and thousands separators.
// Example: -1234567.891 returns "-1,234,567.89"
func FormatMoney(amount decimal.Decimal) string {
	s := FormatWithPrecision(amount.Abs(), MoneyPrecision)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.Round(MoneyPrecision).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
