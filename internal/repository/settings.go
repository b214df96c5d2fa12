package repository

import (
	"context"
	"database/sql"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// SettingsProfile is one saved overlay configuration.
type SettingsProfile struct {
	ID                string
	Name              string
	AllowTextFallback bool
	OverlayScale      float64
	FavoriteChampion  string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type SettingsRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSettingsRepository(db *sql.DB, logger zerolog.Logger) *SettingsRepository {
	return &SettingsRepository{db: db, logger: logger}
}

func (r *SettingsRepository) Get(ctx context.Context, id string) (*SettingsProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, allow_text_fallback, overlay_scale, favorite_champion, created_at, updated_at
		FROM settings WHERE id = ?`, id)

	var p SettingsProfile
	err := row.Scan(&p.ID, &p.Name, &p.AllowTextFallback, &p.OverlayScale,
		&p.FavoriteChampion, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile and assigns it a nanoid.
func (r *SettingsRepository) Create(ctx context.Context, p *SettingsProfile) error {
	id, err := gonanoid.New()
	if err != nil {
		return err
	}
	p.ID = id

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO settings (id, name, allow_text_fallback, overlay_scale, favorite_champion, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.AllowTextFallback, p.OverlayScale, p.FavoriteChampion, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("profile", p.Name).Msg("failed to create settings profile")
		return err
	}
	return nil
}

func (r *SettingsRepository) Update(ctx context.Context, p *SettingsProfile) error {
	p.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, `
		UPDATE settings
		SET name = ?, allow_text_fallback = ?, overlay_scale = ?, favorite_champion = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.AllowTextFallback, p.OverlayScale, p.FavoriteChampion, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SettingsRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE id = ?", id)
	return err
}
