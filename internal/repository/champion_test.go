package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"league-threats/internal/config"
	"league-threats/internal/database"
	"league-threats/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testChampion(id, name string) *domain.Champion {
	champ := &domain.Champion{
		ID:          id,
		Key:         "22",
		Name:        name,
		Title:       "the Frost Archer",
		Tags:        []domain.RoleTag{domain.RoleMarksman, domain.RoleSupport},
		Passive:     "Frost Shot",
		Version:     "14.1.1",
		LastFetchAt: time.Now(),
	}
	for i := range champ.Abilities {
		champ.Abilities[i] = domain.Ability{
			Slot:        domain.SlotForIndex(i),
			Name:        name + " spell",
			Description: "Fires an arrow",
			Cooldowns:   []float64{18, 16, 14, 12, 10},
			MaxRank:     5,
		}
	}
	return champ
}

func TestChampionRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewChampionRepository(db, zerolog.Nop())
	ctx := context.Background()

	champ := testChampion("Ashe", "Ashe")
	require.NoError(t, repo.Upsert(ctx, champ))

	got, err := repo.Get(ctx, "Ashe")
	require.NoError(t, err)
	assert.Equal(t, "Ashe", got.Name)
	assert.Equal(t, []domain.RoleTag{domain.RoleMarksman, domain.RoleSupport}, got.Tags)
	assert.Equal(t, domain.SlotR, got.Abilities[3].Slot)
	assert.Equal(t, []float64{18, 16, 14, 12, 10}, got.Abilities[0].Cooldowns)

	// Upsert again must update, not duplicate.
	champ.Title = "updated"
	require.NoError(t, repo.Upsert(ctx, champ))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err = repo.Get(ctx, "Ashe")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Title)
}

func TestChampionRepositoryGetByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewChampionRepository(db, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testChampion("MissFortune", "Miss Fortune")))

	for _, name := range []string{"MissFortune", "Miss Fortune", "missfortune", "MISS FORTUNE"} {
		got, err := repo.GetByName(ctx, name)
		require.NoError(t, err, "lookup %q", name)
		assert.Equal(t, "MissFortune", got.ID)
	}

	_, err := repo.GetByName(ctx, "Teemo")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestChampionRepositorySearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewChampionRepository(db, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testChampion("Ashe", "Ashe")))
	require.NoError(t, repo.Upsert(ctx, testChampion("AurelionSol", "Aurelion Sol")))
	require.NoError(t, repo.Upsert(ctx, testChampion("Teemo", "Teemo")))

	found, err := repo.Search(ctx, "a", 10)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.Search(ctx, "a", 1)
	require.NoError(t, err)
	assert.Len(t, found, 1, "limit must apply")

	found, err = repo.Search(ctx, "zilean", 10)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestChampionRepositoryShouldRefresh(t *testing.T) {
	db := newTestDB(t)
	repo := NewChampionRepository(db, zerolog.Nop())
	ctx := context.Background()

	should, err := repo.ShouldRefresh(ctx, "Ashe", time.Hour)
	require.NoError(t, err)
	assert.True(t, should, "unknown champion always refreshes")

	champ := testChampion("Ashe", "Ashe")
	require.NoError(t, repo.Upsert(ctx, champ))

	should, err = repo.ShouldRefresh(ctx, "Ashe", time.Hour)
	require.NoError(t, err)
	assert.False(t, should)

	champ.LastFetchAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, champ))

	should, err = repo.ShouldRefresh(ctx, "Ashe", time.Hour)
	require.NoError(t, err)
	assert.True(t, should)
}

func TestSettingsRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db, zerolog.Nop())
	ctx := context.Background()

	profile := &SettingsProfile{
		Name:              "overlay",
		AllowTextFallback: true,
		OverlayScale:      1.25,
		FavoriteChampion:  "Jinx",
	}
	require.NoError(t, repo.Create(ctx, profile))
	require.NotEmpty(t, profile.ID)

	got, err := repo.Get(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "overlay", got.Name)
	assert.Equal(t, 1.25, got.OverlayScale)

	got.FavoriteChampion = "Ashe"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.Get(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ashe", got.FavoriteChampion)

	require.NoError(t, repo.Delete(ctx, profile.ID))
	_, err = repo.Get(ctx, profile.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	err = repo.Update(ctx, &SettingsProfile{ID: "missing"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
