package constants

import "time"

const (
	// ChampionCacheTTL covers raw Data Dragon detail payloads in Redis. These
	// only change on patch, so it can run longer than the generic cache TTL.
	ChampionCacheTTL = 6 * time.Hour
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SearchSuggestionLimit = 10

	// SyncConcurrency bounds parallel champion-detail fetches during a full
	// Data Dragon sync.
	SyncConcurrency = 8
)
