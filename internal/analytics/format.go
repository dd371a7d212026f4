package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer groups digits the way bank statements in the target locale
// do (1,234,567).
var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount in the base currency with the rupee
// symbol and grouped digits, rounded to whole units.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("₹%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}

// FormatPercent renders a percentage rounded to whole units.
func FormatPercent(p float64) string {
	return printer.Sprintf("%v%%", number.Decimal(p, number.MaxFractionDigits(0)))
}
