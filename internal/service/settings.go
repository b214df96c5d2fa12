package service

import (
	"context"

	"league-threats/internal/config"
	"league-threats/internal/constants"
	"league-threats/internal/repository"

	"github.com/rs/zerolog"
)

type SettingsService struct {
	repo   *repository.SettingsRepository
	cfg    *config.Config
	logger zerolog.Logger
}

func NewSettingsService(repo *repository.SettingsRepository, cfg *config.Config, logger zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, cfg: cfg, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context, id string) (*repository.SettingsProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}

// Create stores a new profile, filling unset fields with defaults.
func (s *SettingsService) Create(ctx context.Context, p *repository.SettingsProfile) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if p.Name == "" {
		p.Name = "default"
	}
	if p.OverlayScale == 0 {
		p.OverlayScale = 1.0
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	s.logger.Info().Str("id", p.ID).Str("name", p.Name).Msg("settings profile created")
	return nil
}

func (s *SettingsService) Update(ctx context.Context, p *repository.SettingsProfile) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Update(ctx, p)
}

func (s *SettingsService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Delete(ctx, id)
}
