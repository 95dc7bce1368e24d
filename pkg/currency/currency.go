package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders an amount as a human-readable currency string.
type Formatter func(amount float64) string

var symbols = map[string]string{
	"COP": "$",
	"USD": "$",
	"MXN": "$",
	"EUR": "€",
	"GBP": "£",
}

// NewFormatter builds a whole-unit formatter for the given ISO currency code.
// Unknown codes fall back to prefixing the code itself.
func NewFormatter(code string) Formatter {
	symbol, ok := symbols[code]
	if !ok {
		symbol = code + " "
	}

	p := message.NewPrinter(language.Spanish)
	return func(amount float64) string {
		return p.Sprintf("%s%v", symbol, number.Decimal(amount, number.MaxFractionDigits(0)))
	}
}
