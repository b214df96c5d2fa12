package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"league-threats/internal/domain"

	"github.com/rs/zerolog"
)

type ChampionRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewChampionRepository(db *sql.DB, logger zerolog.Logger) *ChampionRepository {
	return &ChampionRepository{db: db, logger: logger}
}

const championColumns = "id, key, name, title, tags, passive, version, last_fetch_at, created_at, updated_at"

// Get returns one champion with its four abilities.
func (r *ChampionRepository) Get(ctx context.Context, id string) (*domain.Champion, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+championColumns+" FROM champions WHERE id = ?", id)

	champ, err := scanChampion(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadAbilities(ctx, champ); err != nil {
		return nil, err
	}
	return champ, nil
}

// GetByName resolves a champion by display name or slug-insensitive match.
func (r *ChampionRepository) GetByName(ctx context.Context, name string) (*domain.Champion, error) {
	slug := domain.Slug(name)

	rows, err := r.db.QueryContext(ctx, "SELECT "+championColumns+" FROM champions")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		champ, err := scanChampion(rows)
		if err != nil {
			return nil, err
		}
		if domain.Slug(champ.ID) == slug || domain.Slug(champ.Name) == slug {
			if err := r.loadAbilities(ctx, champ); err != nil {
				return nil, err
			}
			return champ, nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nil, sql.ErrNoRows
}

// List returns the roster without abilities, ordered by name.
func (r *ChampionRepository) List(ctx context.Context) ([]domain.Champion, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+championColumns+" FROM champions ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectChampions(rows)
}

// Search finds champions whose name contains the query, for autocomplete.
func (r *ChampionRepository) Search(ctx context.Context, query string, limit int) ([]domain.Champion, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+championColumns+" FROM champions WHERE name LIKE ? OR id LIKE ? ORDER BY name LIMIT ?",
		pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectChampions(rows)
}

// Count reports the mirrored roster size.
func (r *ChampionRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM champions").Scan(&n)
	return n, err
}

// Upsert writes a champion and its abilities in one transaction.
func (r *ChampionRepository) Upsert(ctx context.Context, champ *domain.Champion) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tags, err := json.Marshal(champ.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO champions (id, key, name, title, tags, passive, version, last_fetch_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			key = excluded.key,
			name = excluded.name,
			title = excluded.title,
			tags = excluded.tags,
			passive = excluded.passive,
			version = excluded.version,
			last_fetch_at = excluded.last_fetch_at,
			updated_at = excluded.updated_at`,
		champ.ID, champ.Key, champ.Name, champ.Title, string(tags), champ.Passive,
		champ.Version, champ.LastFetchAt, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert champion %s: %w", champ.ID, err)
	}

	for _, ability := range champ.Abilities {
		cooldowns, err := json.Marshal(ability.Cooldowns)
		if err != nil {
			return fmt.Errorf("failed to encode cooldowns: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO abilities (champion_id, slot, name, description, cooldowns, max_rank)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (champion_id, slot) DO UPDATE SET
				name = excluded.name,
				description = excluded.description,
				cooldowns = excluded.cooldowns,
				max_rank = excluded.max_rank`,
			champ.ID, string(ability.Slot), ability.Name, ability.Description,
			string(cooldowns), ability.MaxRank)
		if err != nil {
			return fmt.Errorf("failed to upsert ability %s/%s: %w", champ.ID, ability.Slot, err)
		}
	}

	return tx.Commit()
}

// ShouldRefresh reports whether the mirrored data is older than ttl. An
// unknown champion always refreshes.
func (r *ChampionRepository) ShouldRefresh(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	var lastFetchAt time.Time
	err := r.db.QueryRowContext(ctx,
		"SELECT last_fetch_at FROM champions WHERE id = ?", id).Scan(&lastFetchAt)
	if err == sql.ErrNoRows {
		r.logger.Debug().Str("champion", id).Msg("champion not mirrored, should refresh")
		return true, nil
	}
	if err != nil {
		return false, err
	}

	timeSince := time.Since(lastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("champion", id).
		Time("last_fetch_at", lastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if champion should refresh")

	return shouldRefresh, nil
}

func (r *ChampionRepository) loadAbilities(ctx context.Context, champ *domain.Champion) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT slot, name, description, cooldowns, max_rank FROM abilities WHERE champion_id = ?",
		champ.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	bySlot := make(map[domain.Slot]domain.Ability, 4)
	for rows.Next() {
		var a domain.Ability
		var slot, cooldowns string
		if err := rows.Scan(&slot, &a.Name, &a.Description, &cooldowns, &a.MaxRank); err != nil {
			return err
		}
		a.Slot = domain.Slot(slot)
		if err := json.Unmarshal([]byte(cooldowns), &a.Cooldowns); err != nil {
			return fmt.Errorf("failed to decode cooldowns for %s/%s: %w", champ.ID, slot, err)
		}
		bySlot[a.Slot] = a
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i, slot := range domain.Slots {
		champ.Abilities[i] = bySlot[slot]
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChampion(row rowScanner) (*domain.Champion, error) {
	var champ domain.Champion
	var tags string
	err := row.Scan(&champ.ID, &champ.Key, &champ.Name, &champ.Title, &tags,
		&champ.Passive, &champ.Version, &champ.LastFetchAt, &champ.CreatedAt, &champ.UpdatedAt)
	if err != nil {
		return nil, err
	}

	var roleTags []domain.RoleTag
	if err := json.Unmarshal([]byte(tags), &roleTags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for %s: %w", champ.ID, err)
	}
	champ.Tags = roleTags

	return &champ, nil
}

func collectChampions(rows *sql.Rows) ([]domain.Champion, error) {
	var out []domain.Champion
	for rows.Next() {
		champ, err := scanChampion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *champ)
	}
	return out, rows.Err()
}
