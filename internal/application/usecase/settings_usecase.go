package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// SettingsUseCase configuración global (nombre del sistema, moneda, IVA).
// Es un singleton: si nunca se guardó, Get devuelve los defaults.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente, o los defaults si no hay fila.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &dto.SettingsResponse{
			SystemName: entity.DefaultSystemName,
			Currency:   entity.DefaultCurrency,
		}, nil
	}
	return toSettingsResponse(settings), nil
}

// Update guarda la configuración (crea la fila única si no existe).
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.SystemName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{ID: uuid.New().String()}
	}
	settings.SystemName = in.SystemName
	settings.Currency = in.Currency
	if settings.Currency == "" {
		settings.Currency = entity.DefaultCurrency
	}
	settings.TaxRate = in.TaxRate
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		SystemName: s.SystemName,
		Currency:   s.Currency,
		TaxRate:    s.TaxRate,
		UpdatedAt:  s.UpdatedAt,
	}
}
