package money

import (
	"strconv"
	"strings"
)

// FormatEUR formats an amount as a string like "1.234,56 €".
// Uses dot as thousands separator and comma for decimals (German locale,
// matching the studio's invoices).
func FormatEUR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 4)
	if neg {
		b.WriteByte('-')
	}

	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte(',')
	b.WriteString(decPart)
	b.WriteString(" €")
	return b.String()
}
