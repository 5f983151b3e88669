package postgresql

import (
	"context"
	"fmt"

	"github.com/harborops/stevedoring-backend-go/internal/domain/setting"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetByName(ctx context.Context, name string) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, value, created_at, updated_at
		FROM settings
		WHERE name = $1
	`

	var s setting.Setting
	err := q.QueryRow(ctx, query, name).Scan(&s.ID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}

	return s, nil
}

func (r *settingRepository) Upsert(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING id, name, value, created_at, updated_at
	`

	var saved setting.Setting
	err := q.QueryRow(ctx, query, s.Name, s.Value).Scan(
		&saved.ID, &saved.Name, &saved.Value, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return setting.Setting{}, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return saved, nil
}
