// Package money convierte montos entre dólares y centavos y los formatea para mostrar.
// Los montos se persisten siempre como enteros en centavos.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxCents mayor monto almacenable por factura (columna INTEGER de 32 bits).
const MaxCents = math.MaxInt32

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(MaxCents)
	printer  = message.NewPrinter(language.AmericanEnglish)
)

// CentsOf convierte dólares a centavos (dollars * 100, redondeado al centavo) y exige
// que el resultado quede en (0, MaxCents]. ok es false si no.
func CentsOf(dollars decimal.Decimal) (cents int64, ok bool) {
	c := dollars.Mul(hundred).Round(0)
	if !c.IsPositive() || c.GreaterThan(maxCents) {
		return 0, false
	}
	return c.IntPart(), true
}

// FromCents convierte centavos a dólares (cents / 100). Inversa exacta de CentsOf.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCurrency formatea centavos como moneda USD, ej: 123450 → "$1,234.50".
// Opera en enteros: no hay pérdida de precisión en totales grandes.
func FormatCurrency(cents int64) string {
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		abs = uint64(-(cents + 1)) + 1
	}
	return sign + "$" + printer.Sprintf("%d", abs/100) + fmt.Sprintf(".%02d", abs%100)
}
