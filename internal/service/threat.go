package service

import (
	"context"

	"league-threats/internal/config"
	"league-threats/internal/data"
	"league-threats/internal/domain"
	"league-threats/internal/threat"

	"github.com/rs/zerolog"
)

// AbilityThreats pairs one ability with its classifications and cooldowns
// for presentation.
type AbilityThreats struct {
	Slot      domain.Slot             `json:"slot"`
	Name      string                  `json:"name"`
	Cooldowns []float64               `json:"cooldowns"`
	Threats   []threat.Classification `json:"threats"`
}

// ChampionThreats is the full threat picture for one champion.
type ChampionThreats struct {
	Champion  string                  `json:"champion"`
	Name      string                  `json:"name"`
	Abilities []AbilityThreats        `json:"abilities"`
	Summary   []threat.Classification `json:"summary"`
}

type ThreatService struct {
	champions *ChampionService
	cfg       *config.Config
	logger    zerolog.Logger
}

func NewThreatService(champions *ChampionService, cfg *config.Config, logger zerolog.Logger) *ThreatService {
	return &ThreatService{champions: champions, cfg: cfg, logger: logger}
}

// ForChampion classifies every ability of the named champion and aggregates
// the champion-level summary. allowTextFallback gates CC inference from
// ability text for champions the curated dataset does not cover; nil means
// "use the configured default".
func (s *ThreatService) ForChampion(ctx context.Context, name string, refresh bool, allowTextFallback *bool) (*ChampionThreats, error) {
	champ, err := s.champions.Get(ctx, name, refresh)
	if err != nil {
		return nil, err
	}

	fallback := s.cfg.AllowTextFallback
	if allowTextFallback != nil {
		fallback = *allowTextFallback
	}

	return s.classify(champ, fallback), nil
}

// ForEnemies builds the threat picture for a full enemy team. Unknown names
// are skipped rather than failing the whole matchup: a half-filled draft is
// the normal case, not an error.
func (s *ThreatService) ForEnemies(ctx context.Context, names []string, allowTextFallback *bool) ([]*ChampionThreats, error) {
	out := make([]*ChampionThreats, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		ct, err := s.ForChampion(ctx, name, false, allowTextFallback)
		if err != nil {
			s.logger.Warn().Err(err).Str("champion", name).Msg("skipping unresolvable enemy pick")
			continue
		}
		out = append(out, ct)
	}
	return out, nil
}

func (s *ThreatService) classify(champ *domain.Champion, allowTextFallback bool) *ChampionThreats {
	summary := data.SummaryFor(champ.Name)
	if summary == nil {
		summary = data.SummaryFor(champ.ID)
	}

	result := &ChampionThreats{
		Champion:  champ.ID,
		Name:      champ.Name,
		Abilities: make([]AbilityThreats, 0, len(champ.Abilities)),
	}

	perAbility := make([][]threat.Classification, 0, len(champ.Abilities))
	for i, ability := range champ.Abilities {
		threats := threat.ClassifyAbility(ability.Name, ability.Description, summary.TagsFor(i), allowTextFallback)
		perAbility = append(perAbility, threats)
		result.Abilities = append(result.Abilities, AbilityThreats{
			Slot:      ability.Slot,
			Name:      ability.Name,
			Cooldowns: ability.Cooldowns,
			Threats:   threats,
		})
	}

	result.Summary = threat.AggregateChampion(perAbility...)
	return result
}
