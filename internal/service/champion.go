package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"league-threats/internal/config"
	"league-threats/internal/constants"
	"league-threats/internal/ddragon"
	"league-threats/internal/domain"
	"league-threats/internal/repository"
	"league-threats/internal/storage"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrChampionNotFound is returned when a name resolves to no champion in
// either the mirror or the Data Dragon roster.
var ErrChampionNotFound = errors.New("champion not found")

type ChampionService struct {
	ddragon *ddragon.Client
	repo    *repository.ChampionRepository
	cache   *storage.Cache
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewChampionService(dd *ddragon.Client, repo *repository.ChampionRepository, cache *storage.Cache, cfg *config.Config, logger zerolog.Logger) *ChampionService {
	return &ChampionService{ddragon: dd, repo: repo, cache: cache, cfg: cfg, logger: logger}
}

// ResolveVersion picks the patch to read from Data Dragon: the pinned
// configuration value if set, otherwise the latest published version (cached
// in redis between lookups).
func (s *ChampionService) ResolveVersion(ctx context.Context) (string, error) {
	if s.cfg.DDragonVersion != "" {
		return s.cfg.DDragonVersion, nil
	}

	var versions []string
	hit, err := s.cache.GetJSON(ctx, "ddragon:versions", &versions)
	if err != nil {
		s.logger.Warn().Err(err).Msg("version cache read failed")
	}
	if !hit {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		versions, err = s.ddragon.Versions(apiCtx)
		if err != nil {
			return "", fmt.Errorf("failed to fetch versions: %w", err)
		}
		if err := s.cache.SetJSON(ctx, "ddragon:versions", versions, s.cfg.CacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("version cache write failed")
		}
	}

	if len(versions) == 0 {
		return "", errors.New("ddragon returned no versions")
	}
	return versions[0], nil
}

// Get resolves a champion by name or Data Dragon id, refreshing the SQLite
// mirror from Data Dragon when it is stale, missing, or when the caller
// forces a refresh.
func (s *ChampionService) Get(ctx context.Context, name string, refresh bool) (*domain.Champion, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Debug().Str("name", name).Bool("refresh", refresh).Msg("getting champion")

	champ, err := s.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	shouldRefresh := refresh || champ == nil
	if champ != nil && !shouldRefresh {
		shouldRefresh, err = s.repo.ShouldRefresh(ctx, champ.ID, s.cfg.RefreshTTL)
		if err != nil {
			return nil, err
		}
	}

	if !shouldRefresh {
		s.logger.Debug().Str("champion", champ.ID).Msg("returning mirrored champion")
		return champ, nil
	}

	id := name
	if champ != nil {
		id = champ.ID
	}

	fetched, err := s.fetchChampion(ctx, id)
	if err != nil {
		if champ != nil {
			// Stale data beats no data when Data Dragon is unreachable.
			s.logger.Warn().Err(err).Str("champion", champ.ID).Msg("refresh failed, serving stale mirror")
			return champ, nil
		}
		return nil, err
	}

	if err := s.repo.Upsert(ctx, fetched); err != nil {
		s.logger.Error().Err(err).Str("champion", fetched.ID).Msg("failed to upsert champion")
		return nil, fmt.Errorf("failed to upsert champion: %w", err)
	}

	s.logger.Info().Str("champion", fetched.ID).Str("version", fetched.Version).Msg("champion refreshed")
	return fetched, nil
}

// List returns the mirrored roster, syncing it from Data Dragon on first use.
func (s *ChampionService) List(ctx context.Context) ([]domain.Champion, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := s.Sync(ctx); err != nil {
			return nil, err
		}
	}

	return s.repo.List(ctx)
}

// Search returns autocomplete suggestions from the mirror.
func (s *ChampionService) Search(ctx context.Context, query string) ([]domain.Champion, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	s.logger.Debug().Str("query", query).Msg("searching champions")

	champions, err := s.repo.Search(ctx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search champions")
		return nil, err
	}
	return champions, nil
}

// Sync mirrors the full roster: one index fetch, then bounded-concurrency
// detail fetches, then per-champion upserts.
func (s *ChampionService) Sync(ctx context.Context) error {
	version, err := s.ResolveVersion(ctx)
	if err != nil {
		return err
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	index, err := s.ddragon.ChampionIndex(apiCtx, version, s.cfg.DDragonLocale)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to fetch champion index: %w", err)
	}

	s.logger.Info().Str("version", version).Int("count", len(index.Data)).Msg("syncing champion roster")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.SyncConcurrency)

	for id := range index.Data {
		g.Go(func() error {
			champ, err := s.fetchChampionDetail(gCtx, version, id)
			if err != nil {
				return err
			}
			return s.repo.Upsert(gCtx, champ)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("roster sync failed: %w", err)
	}

	s.logger.Info().Str("version", version).Msg("roster sync complete")
	return nil
}

// fetchChampion resolves an arbitrary name to a Data Dragon id via the
// champion index, then fetches the detail file.
func (s *ChampionService) fetchChampion(ctx context.Context, name string) (*domain.Champion, error) {
	version, err := s.ResolveVersion(ctx)
	if err != nil {
		return nil, err
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	index, err := s.ddragon.ChampionIndex(apiCtx, version, s.cfg.DDragonLocale)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch champion index: %w", err)
	}

	slug := domain.Slug(name)
	for id, entry := range index.Data {
		if domain.Slug(id) == slug || domain.Slug(entry.Name) == slug {
			return s.fetchChampionDetail(ctx, version, id)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrChampionNotFound, name)
}

func (s *ChampionService) fetchChampionDetail(ctx context.Context, version, id string) (*domain.Champion, error) {
	cacheKey := fmt.Sprintf("ddragon:champion:%s:%s", version, id)

	var detail *ddragon.ChampionDetailResponse
	hit, err := s.cache.GetJSON(ctx, cacheKey, &detail)
	if err != nil {
		s.logger.Warn().Err(err).Str("champion", id).Msg("champion cache read failed")
	}
	if !hit {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		detail, err = s.ddragon.Champion(apiCtx, version, s.cfg.DDragonLocale, id)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch champion %s: %w", id, err)
		}
		if err := s.cache.SetJSON(ctx, cacheKey, detail, constants.ChampionCacheTTL); err != nil {
			s.logger.Warn().Err(err).Str("champion", id).Msg("champion cache write failed")
		}
	}

	entry, ok := detail.Data[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChampionNotFound, id)
	}

	return toDomain(&entry, version), nil
}

func toDomain(detail *ddragon.ChampionDetail, version string) *domain.Champion {
	champ := &domain.Champion{
		ID:          detail.ID,
		Key:         detail.Key,
		Name:        detail.Name,
		Title:       detail.Title,
		Passive:     detail.Passive.Name,
		Version:     version,
		LastFetchAt: time.Now(),
	}

	for _, tag := range detail.Tags {
		role := domain.RoleTag(tag)
		if role.IsValid() {
			champ.Tags = append(champ.Tags, role)
		}
	}

	for i := 0; i < len(champ.Abilities) && i < len(detail.Spells); i++ {
		spell := detail.Spells[i]
		champ.Abilities[i] = domain.Ability{
			Slot:        domain.SlotForIndex(i),
			Name:        spell.Name,
			Description: spell.Description,
			Cooldowns:   spell.Cooldown,
			MaxRank:     spell.MaxRank,
		}
	}

	return champ
}
