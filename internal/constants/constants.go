package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	DefaultPageSize     = 20
	TrendWindow         = 7
	AnalyticsMatchLimit = 100
	RecentMatchesLimit  = 5
	PlayerMatchesLimit  = 20
	TeamMatchesLimit    = 10
	SearchResultLimit   = 6
)

const (
	TopTeamsLimit   = 10
	TopPlayersLimit = 15
	TopHeroesLimit  = 10
	TopRegionsLimit = 10
)

const (
	// Hero recommendation thresholds, expressed over pro pick counts.
	HeroRecommendationMinPicks = 20
	DraftPickMinPicks          = 10
	DraftPickLimit             = 5
)

const (
	// How many favorite snapshots to retain before pruning old rows.
	SnapshotHistoryLimit = 20
)
