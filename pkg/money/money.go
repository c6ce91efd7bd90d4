// Package money formatea valores monetarios en la frontera de presentación.
// El dominio opera con decimal.Decimal a precisión completa; el redondeo a
// dos decimales ocurre únicamente aquí.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Fixed devuelve el valor redondeado a dos decimales como string ("8.64").
// Es la representación que viaja en los DTOs.
func Fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Display devuelve el valor listo para pantalla, con símbolo y separador de
// miles según el locale ("$1,250.75").
func Display(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}
