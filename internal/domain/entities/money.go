package entities

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyMarker is appended to every displayed money value.
const CurrencyMarker = "원"

var wonPrinter = message.NewPrinter(language.Korean)

// FormatWon renders an amount with thousands grouping and the currency marker,
// e.g. 40000 -> "40,000원".
func FormatWon(amount int64) string {
	return wonPrinter.Sprintf("%d", amount) + CurrencyMarker
}

// FormatDeduction renders a reduction row value, e.g. 5000 -> "-5,000원".
func FormatDeduction(amount int64) string {
	return "-" + FormatWon(amount)
}

// FormatPoints renders a point amount, e.g. 1000 -> "1,000P".
func FormatPoints(points int64) string {
	return wonPrinter.Sprintf("%d", points) + "P"
}
