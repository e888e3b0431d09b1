package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// SettingsRepository puerto de persistencia para la configuración global.
// La tabla es un singleton: Get devuelve nil si aún no se ha guardado nada.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
