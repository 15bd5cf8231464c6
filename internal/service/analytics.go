package service

import (
	"context"
	"fmt"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/countries"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type AnalyticsService struct {
	api    api.StatsAPI
	loader *ViewLoader
	logger zerolog.Logger
}

func NewAnalyticsService(client api.StatsAPI, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{api: client, loader: &ViewLoader{}, logger: logger}
}

type AnalyticsQuery struct {
	PlayerMetric domain.PlayerMetric
	TrendWindow  int
}

// Cancel discards any in-flight load; a result arriving afterwards comes
// back as ErrStale.
func (s *AnalyticsService) Cancel() {
	s.loader.Cancel()
}

// LoadAnalytics fetches players, matches and hero stats in parallel and
// derives every analytics aggregate. The join is all-or-nothing: if any of
// the three fetches fails, no aggregate is computed from the rest.
func (s *AnalyticsService) LoadAnalytics(ctx context.Context, q AnalyticsQuery) (*domain.AnalyticsView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	trendWindow := q.TrendWindow
	if trendWindow <= 0 {
		trendWindow = constants.TrendWindow
	}

	token := s.loader.Begin()
	s.logger.Info().Int("trend_window", trendWindow).Msg("loading analytics view")

	var (
		players []domain.ProPlayerRecord
		matches []domain.MatchRecord
		heroes  []domain.HeroStatRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.api.GetProPlayers(gCtx)
		if err != nil {
			return err
		}
		players = toProPlayers(resp)
		return nil
	})
	g.Go(func() error {
		resp, err := s.api.GetProMatches(gCtx, constants.AnalyticsMatchLimit)
		if err != nil {
			return err
		}
		matches = toMatchesFromPro(resp)
		return nil
	})
	g.Go(func() error {
		resp, err := s.api.GetHeroStats(gCtx)
		if err != nil {
			return err
		}
		heroes = toHeroStats(resp)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch analytics data")
		return nil, fmt.Errorf("failed to fetch analytics data: %w", err)
	}
	if !s.loader.Alive(token) {
		s.logger.Debug().Msg("analytics load superseded, discarding result")
		return nil, ErrStale
	}

	view := &domain.AnalyticsView{
		Summary: domain.AnalyticsSummary{
			TotalPlayers: len(players),
			TotalMatches: len(matches),
			TotalHeroes:  len(heroes),
			ActiveTeams:  countActiveTeams(players),
		},
		TopTeams:      topTeams(matches, constants.TopTeamsLimit),
		TopPlayers:    topPlayers(players, q.PlayerMetric, constants.TopPlayersLimit),
		PopularHeroes: popularHeroes(heroes, constants.TopHeroesLimit),
		Regions:       topRegions(players, constants.TopRegionsLimit),
		Trend:         stats.ComputeMatchTrend(matches, stats.DailyBucket, trendWindow),
	}

	s.logger.Info().
		Int("players", len(players)).
		Int("matches", len(matches)).
		Int("heroes", len(heroes)).
		Msg("analytics view loaded")

	return view, nil
}

func countActiveTeams(players []domain.ProPlayerRecord) int {
	teams := make(map[string]struct{})
	for _, p := range players {
		if p.TeamName != "" {
			teams[p.TeamName] = struct{}{}
		}
	}
	return len(teams)
}

func topTeams(matches []domain.MatchRecord, limit int) []domain.TeamAggregate {
	rates := stats.ComputeTeamWinRates(matches)
	aggregates := make([]domain.TeamAggregate, 0, len(rates))
	for _, agg := range rates {
		aggregates = append(aggregates, agg)
	}
	// Map iteration order is random; fix it before the metric sort so the
	// stable ordering is deterministic run to run.
	aggregates = stats.SortByString(aggregates, func(a domain.TeamAggregate) string { return a.Team }, stats.Asc)
	aggregates = stats.SortByNumber(aggregates, func(a domain.TeamAggregate) float64 { return a.WinRatePct }, stats.Desc)
	return stats.TopN(aggregates, limit)
}

func topPlayers(players []domain.ProPlayerRecord, metric domain.PlayerMetric, limit int) []domain.PlayerStanding {
	var active []domain.ProPlayerRecord
	for _, p := range players {
		if p.IsCurrentTeamMember {
			active = append(active, p)
		}
	}

	var selector func(domain.ProPlayerRecord) float64
	switch metric {
	case domain.MetricRating:
		selector = func(p domain.ProPlayerRecord) float64 { return p.Rating }
	case domain.MetricMatches:
		selector = func(p domain.ProPlayerRecord) float64 { return float64(p.TotalMatches()) }
	default:
		selector = func(p domain.ProPlayerRecord) float64 { return stats.Percentage(p.Wins, p.TotalMatches()) }
	}

	active = stats.SortByNumber(active, selector, stats.Desc)
	active = stats.TopN(active, limit)

	standings := make([]domain.PlayerStanding, len(active))
	for i, p := range active {
		standings[i] = domain.PlayerStanding{
			AccountID:    p.AccountID,
			Name:         p.DisplayName(),
			TeamName:     p.TeamName,
			WinRatePct:   stats.Percentage(p.Wins, p.TotalMatches()),
			Rating:       p.Rating,
			TotalMatches: p.TotalMatches(),
		}
	}
	return standings
}

func popularHeroes(heroes []domain.HeroStatRecord, limit int) []domain.HeroMetaStat {
	meta := stats.ComputeHeroMeta(heroes)
	meta = stats.SortByNumber(meta, func(h domain.HeroMetaStat) float64 { return float64(h.TotalPicks) }, stats.Desc)
	return stats.TopN(meta, limit)
}

func topRegions(players []domain.ProPlayerRecord, limit int) []domain.RegionStat {
	regions := stats.ComputeRegionCounts(players, countries.Name)
	out := make([]domain.RegionStat, 0, len(regions))
	for _, r := range regions {
		out = append(out, r)
	}
	out = stats.SortByString(out, func(r domain.RegionStat) string { return r.Country }, stats.Asc)
	out = stats.SortByNumber(out, func(r domain.RegionStat) float64 { return float64(r.PlayerCount) }, stats.Desc)
	return stats.TopN(out, limit)
}
