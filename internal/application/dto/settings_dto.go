package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsResponse configuración global del sistema.
type SettingsResponse struct {
	SystemName string          `json:"system_name"`
	Currency   string          `json:"currency"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// UpdateSettingsRequest edición de la configuración global.
type UpdateSettingsRequest struct {
	SystemName string          `json:"system_name"`
	Currency   string          `json:"currency"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
}
