package dashboard

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatDeltaMessage formats the difference between the current and previous
// month totals as the Korean message shown on the dashboard.
func FormatDeltaMessage(current, previous decimal.Decimal) string {
	delta := current.Sub(previous)
	switch {
	case delta.IsPositive():
		return "+" + formatWon(delta) + "원 증가"
	case delta.IsNegative():
		return formatWon(delta.Abs()) + "원 감소"
	default:
		return "변화 없음"
	}
}

// formatWon renders a non-negative amount with thousands separators.
func formatWon(d decimal.Decimal) string {
	s := d.String()
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
