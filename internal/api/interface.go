package api

import "context"

// StatsAPI is the consumed surface of the OpenDota collaborator. Every
// operation can fail (network, 4xx/5xx, malformed JSON) and failures are
// propagated to the caller, never substituted with default data.
type StatsAPI interface {
	SearchPlayers(ctx context.Context, query string) ([]SearchResult, error)
	GetProPlayers(ctx context.Context) ([]ProPlayer, error)
	GetProMatches(ctx context.Context, limit int) ([]ProMatch, error)
	GetPublicMatches(ctx context.Context, limit int) ([]PublicMatch, error)
	GetMatchDetails(ctx context.Context, matchID int64) (*MatchDetails, error)
	GetPlayerData(ctx context.Context, accountID int64) (*PlayerData, error)
	GetPlayerMatches(ctx context.Context, accountID int64, limit int) ([]PlayerRecentMatch, error)
	GetPlayerWinLoss(ctx context.Context, accountID int64) (*WinLoss, error)
	GetHeroStats(ctx context.Context) ([]HeroStats, error)
	GetProTeams(ctx context.Context) ([]Team, error)
	GetTeamData(ctx context.Context, teamID int64) (*Team, error)
	GetTeamPlayers(ctx context.Context, teamID int64) ([]TeamPlayer, error)
	GetTeamMatches(ctx context.Context, teamID int64, limit int) ([]TeamMatch, error)
	GetTeamHeroes(ctx context.Context, teamID int64) ([]TeamHero, error)
}
