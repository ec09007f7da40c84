package view

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money renders an amount with two decimals and the dollar sign the console uses.
// E.g. 12.5 -> "$12.50"
func Money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func DateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func TimeOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04:05")
}

func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// ShortID keeps the first 8 characters of an id, followed by "...".
func ShortID(id string) string {
	if r := []rune(id); len(r) > 8 {
		id = string(r[:8])
	}
	return id + "..."
}
