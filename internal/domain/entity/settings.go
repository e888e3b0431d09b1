package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Defaults del sistema cuando la fila de configuración aún no existe.
const (
	DefaultSystemName = "POS Pro"
	DefaultCurrency   = "USD"
)

// Settings configuración global del sistema. Hay a lo sumo una fila.
type Settings struct {
	ID         string
	SystemName string
	Currency   string
	TaxRate    decimal.Decimal // porcentaje, ej. 19 = 19%
	UpdatedAt  time.Time
}
