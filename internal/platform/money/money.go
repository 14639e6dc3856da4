package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// es-CO: miles con punto, decimales con coma. Igual que
// Intl.NumberFormat("es-CO", {style:"currency", currency:"COP"}).
var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP formatea un monto como peso colombiano, ej. "$ 15.000,00".
func FormatCOP(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
