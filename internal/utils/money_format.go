package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmountES renders amount with two decimals in Spanish notation:
// dot as thousands separator and comma as decimal separator ("1.325,00").
func FormatAmountES(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}
	return sign + grouped.String() + "," + fracPart
}

// FormatOptionalAmountES formats a nullable amount, rendering a missing
// value as "-".
func FormatOptionalAmountES(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return "-"
	}
	return FormatAmountES(amount.Decimal)
}
