package localize

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// INR formats an amount as Indian Rupees with lakh/crore digit grouping,
// e.g. 1234567.5 -> "₹12,34,567.50".
func INR(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()

	return inrPrinter.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
