package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders a BRL amount in pt-BR notation with two decimal
// places. A nil or NaN value renders as the zero amount.
func Currency(value *float64) string {
	v := 0.0
	if value != nil && !math.IsNaN(*value) {
		v = *value
	}
	return printer.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// CurrencyValue is Currency for amounts that are always present.
func CurrencyValue(value float64) string {
	return Currency(&value)
}
