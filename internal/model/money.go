package model

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupeePrinter = message.NewPrinter(language.English)

// FormatRupees renders an amount the way prices are shown to users,
// e.g. "Rs. 5,000".  Paisa are dropped.
func FormatRupees(d decimal.Decimal) string {
	return rupeePrinter.Sprintf("Rs. %d", d.IntPart())
}

// PriceLabel is FormatRupees for a ticket price, or "Free".
func (e Event) PriceLabel() string {
	if e.IsFree() {
		return "Free"
	}
	return FormatRupees(*e.Price)
}
