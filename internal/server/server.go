// Package server exposes the companion API over JSON HTTP. Handlers stay
// thin: they parse the request, call a service, and encode the result.
package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"league-threats/internal/domain"
	"league-threats/internal/repository"
	"league-threats/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	championSvc *service.ChampionService
	threatSvc   *service.ThreatService
	settingsSvc *service.SettingsService
	logger      zerolog.Logger
}

func New(championSvc *service.ChampionService, threatSvc *service.ThreatService, settingsSvc *service.SettingsService, logger zerolog.Logger) *Server {
	return &Server{championSvc: championSvc, threatSvc: threatSvc, settingsSvc: settingsSvc, logger: logger}
}

// RegisterRoutes attaches all API routes to the mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/champions", s.handleChampions)
	mux.HandleFunc("GET /api/v1/champions/{name}", s.handleChampion)
	mux.HandleFunc("GET /api/v1/champions/{name}/threats", s.handleChampionThreats)
	mux.HandleFunc("GET /api/v1/matchup", s.handleMatchup)
	mux.HandleFunc("POST /api/v1/settings", s.handleCreateSettings)
	mux.HandleFunc("GET /api/v1/settings/{id}", s.handleGetSettings)
	mux.HandleFunc("PUT /api/v1/settings/{id}", s.handleUpdateSettings)
	mux.HandleFunc("DELETE /api/v1/settings/{id}", s.handleDeleteSettings)
	mux.HandleFunc("GET /health", s.handleHealth)
}

type championSummary struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

type abilityResponse struct {
	Slot        string    `json:"slot"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cooldowns   []float64 `json:"cooldowns"`
	MaxRank     int       `json:"maxRank"`
}

type championResponse struct {
	championSummary
	Passive   string            `json:"passive"`
	Version   string            `json:"version"`
	Abilities []abilityResponse `json:"abilities"`
}

// handleChampions lists the roster, or returns autocomplete suggestions when
// ?q= is present.
func (s *Server) handleChampions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		champions []domain.Champion
		err       error
	)
	if query != "" {
		champions, err = s.championSvc.Search(r.Context(), query)
	} else {
		champions, err = s.championSvc.List(r.Context())
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]championSummary, 0, len(champions))
	for i := range champions {
		c := &champions[i]
		out = append(out, championSummary{
			ID:    c.ID,
			Key:   c.Key,
			Name:  c.Name,
			Title: c.Title,
			Tags:  roleStrings(c),
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"champions": out})
}

func (s *Server) handleChampion(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	refresh := r.URL.Query().Get("refresh") == "true"

	champ, err := s.championSvc.Get(r.Context(), name, refresh)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := championResponse{
		championSummary: championSummary{
			ID:    champ.ID,
			Key:   champ.Key,
			Name:  champ.Name,
			Title: champ.Title,
			Tags:  roleStrings(champ),
		},
		Passive: champ.Passive,
		Version: champ.Version,
	}
	for _, a := range champ.Abilities {
		resp.Abilities = append(resp.Abilities, abilityResponse{
			Slot:        string(a.Slot),
			Name:        a.Name,
			Description: a.Description,
			Cooldowns:   a.Cooldowns,
			MaxRank:     a.MaxRank,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChampionThreats(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	refresh := r.URL.Query().Get("refresh") == "true"
	fallback := parseFallback(r)

	threats, err := s.threatSvc.ForChampion(r.Context(), name, refresh, fallback)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, threats)
}

// handleMatchup classifies a comma-separated enemy team in one call.
func (s *Server) handleMatchup(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("enemies")
	if raw == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "enemies query parameter is required"})
		return
	}

	enemies := strings.Split(raw, ",")
	threats, err := s.threatSvc.ForEnemies(r.Context(), enemies, parseFallback(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"enemies": threats})
}

type settingsRequest struct {
	Name              string  `json:"name"`
	AllowTextFallback bool    `json:"allowTextFallback"`
	OverlayScale      float64 `json:"overlayScale"`
	FavoriteChampion  string  `json:"favoriteChampion"`
}

type settingsResponse struct {
	ID string `json:"id"`
	settingsRequest
}

func (s *Server) handleCreateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	profile := &repository.SettingsProfile{
		Name:              req.Name,
		AllowTextFallback: req.AllowTextFallback,
		OverlayScale:      req.OverlayScale,
		FavoriteChampion:  req.FavoriteChampion,
	}
	if err := s.settingsSvc.Create(r.Context(), profile); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toSettingsResponse(profile))
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	profile, err := s.settingsSvc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSettingsResponse(profile))
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	profile := &repository.SettingsProfile{
		ID:                r.PathValue("id"),
		Name:              req.Name,
		AllowTextFallback: req.AllowTextFallback,
		OverlayScale:      req.OverlayScale,
		FavoriteChampion:  req.FavoriteChampion,
	}
	if err := s.settingsSvc.Update(r.Context(), profile); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toSettingsResponse(profile))
}

func (s *Server) handleDeleteSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.settingsSvc.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, service.ErrChampionNotFound) {
		status = http.StatusNotFound
	}

	s.logger.Error().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func parseFallback(r *http.Request) *bool {
	switch r.URL.Query().Get("fallback") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func roleStrings(c *domain.Champion) []string {
	out := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		out = append(out, t.String())
	}
	return out
}

func toSettingsResponse(p *repository.SettingsProfile) settingsResponse {
	return settingsResponse{
		ID: p.ID,
		settingsRequest: settingsRequest{
			Name:              p.Name,
			AllowTextFallback: p.AllowTextFallback,
			OverlayScale:      p.OverlayScale,
			FavoriteChampion:  p.FavoriteChampion,
		},
	}
}
