package domain

import "time"

// Derived aggregates produced by the stats package.

type TeamAggregate struct {
	Team       string
	Wins       int
	Losses     int
	TotalGames int
	WinRatePct float64
}

type RegionStat struct {
	Country     string
	PlayerCount int
	TeamCount   int
}

type HeroMetaStat struct {
	HeroID      int
	Name        string
	PickRatePct float64
	WinRatePct  float64
	TotalPicks  int
}

type TrendPoint struct {
	Date  time.Time
	Count int
}

// PlayerMetric selects which column the analytics player ranking orders by.
type PlayerMetric int

const (
	MetricWinRate PlayerMetric = iota
	MetricRating
	MetricMatches
)

type PlayerStanding struct {
	AccountID    int64
	Name         string
	TeamName     string
	WinRatePct   float64
	Rating       float64
	TotalMatches int
}

type AnalyticsSummary struct {
	TotalPlayers int
	TotalMatches int
	TotalHeroes  int
	ActiveTeams  int
}

type AnalyticsView struct {
	Summary       AnalyticsSummary
	TopTeams      []TeamAggregate
	TopPlayers    []PlayerStanding
	PopularHeroes []HeroMetaStat
	Regions       []RegionStat
	Trend         []TrendPoint
}

type PlayerSearchResult struct {
	AccountID     int64
	Personaname   string
	Avatar        string
	LastMatchTime string
}

// PlayerPerformance decorates a raw match line with the derived KDA ratio.
// KDA carries the unrounded value used for ordering; KDADisplay is the
// 2-decimal form meant for rendering.
type PlayerPerformance struct {
	PlayerMatchStat
	KDA        float64
	KDADisplay string
	Won        bool
}

type PlayerProfileView struct {
	AccountID   int64
	Name        string
	Personaname string
	Avatar      string
	CountryCode string
	RankTier    int
	MMREstimate int
	Wins        int
	Losses      int
	WinRatePct  float64
	Matches     []PlayerMatchSummary
}

type PlayerMatchSummary struct {
	MatchID    int64
	HeroID     int
	StartTime  int64
	Duration   int
	Kills      int
	Deaths     int
	Assists    int
	KDA        float64
	KDADisplay string
	Won        bool
}

type TeamProfileView struct {
	Team       TeamRecord
	WinRatePct float64
	Players    []TeamPlayerStat
	Matches    []TeamMatchSummary
	Heroes     []TeamHeroStat
}

type TeamPlayerStat struct {
	AccountID   int64
	Name        string
	GamesPlayed int
	Wins        int
	WinRatePct  float64
	IsCurrent   bool
}

type TeamMatchSummary struct {
	MatchID      int64
	OpposingTeam string
	LeagueName   string
	StartTime    int64
	Duration     int
	Won          bool
}

type TeamHeroStat struct {
	HeroID      int
	Name        string
	GamesPlayed int
	Wins        int
	WinRatePct  float64
}

type MatchDetailView struct {
	Match         MatchRecord
	Radiant       []PlayerPerformance
	Dire          []PlayerPerformance
	TopPerformers []PlayerPerformance
	GoldAdv       []int
	XPAdv         []int
}

// Recommendation views, restored from the original dashboard's advisory page.

type TeamAdvice struct {
	Team       string
	WinRatePct float64
	Matches    int
	Advice     string
}

type PlayerAdvice struct {
	Name       string
	TeamName   string
	WinRatePct float64
	Matches    int
	Advice     string
}

type HeroAdvice struct {
	Name        string
	WinRatePct  float64
	PickRatePct float64
	Picks       int
	Advice      string
}

type DraftAdvice struct {
	Type   string
	Heroes []string
	Advice string
}

type RecommendationsView struct {
	Teams   []TeamAdvice
	Players []PlayerAdvice
	Heroes  []HeroAdvice
	Drafts  []DraftAdvice
}
