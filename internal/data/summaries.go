// Package data holds the curated per-champion threat-tag dataset. The
// dataset is hand-maintained and considered ground truth over any inference
// from ability text; it is embedded so the service works with no network and
// no files on disk.
package data

import (
	"encoding/json"
	"sync"

	"league-threats/internal/domain"

	_ "embed"
)

//go:embed summaries.json
var summariesJSON []byte

var (
	summaries     map[string]*domain.SummaryEntry
	summariesOnce sync.Once
	summariesErr  error
)

func load() {
	var entries []*domain.SummaryEntry
	if err := json.Unmarshal(summariesJSON, &entries); err != nil {
		summariesErr = err
		return
	}

	summaries = make(map[string]*domain.SummaryEntry, len(entries))
	for _, e := range entries {
		summaries[domain.Slug(e.Champion)] = e
	}
}

// Summaries returns the full curated dataset keyed by champion slug.
func Summaries() (map[string]*domain.SummaryEntry, error) {
	summariesOnce.Do(load)
	return summaries, summariesErr
}

// SummaryFor looks up the curated entry for a champion by name or slug.
// Missing champions return nil: absence of curated data is normal, not an
// error.
func SummaryFor(name string) *domain.SummaryEntry {
	summariesOnce.Do(load)
	if summariesErr != nil {
		return nil
	}
	return summaries[domain.Slug(name)]
}
