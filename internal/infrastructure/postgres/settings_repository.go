package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
// La tabla settings guarda a lo sumo una fila.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `SELECT id, system_name, currency, tax_rate, updated_at FROM settings LIMIT 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.SystemName, &s.Currency, &s.TaxRate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Upsert(s *entity.Settings) error {
	query := `
		INSERT INTO settings (id, system_name, currency, tax_rate, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id)
		DO UPDATE SET system_name = EXCLUDED.system_name,
		              currency = EXCLUDED.currency,
		              tax_rate = EXCLUDED.tax_rate,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.SystemName, s.Currency, s.TaxRate)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
