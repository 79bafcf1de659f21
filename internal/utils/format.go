package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats an amount with thousands separators and two decimals
func FormatMoney(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}

// FormatWhole formats an amount rounded to whole units, e.g. "480,464"
func FormatWhole(amount float64) string {
	return printer.Sprintf("%d", int64(math.Round(amount)))
}

// FormatPercent formats a fraction as a percentage, e.g. 0.36 as "36.00%"
func FormatPercent(fraction float64) string {
	return printer.Sprintf("%.2f%%", fraction*100)
}
