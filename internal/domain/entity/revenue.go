package entity

import "github.com/shopspring/decimal"

// Revenue fila del agregado mensual de ingresos (solo lectura).
type Revenue struct {
	Month   string
	Revenue decimal.Decimal
}
