package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/stats"

	"github.com/rs/zerolog"
)

type MatchSource int

const (
	SourcePro MatchSource = iota
	SourcePublic
)

type MatchSortKey int

const (
	MatchesByStartTime MatchSortKey = iota
	MatchesByDuration
	MatchesByLeague
)

type MatchesQuery struct {
	Source   MatchSource
	League   string
	SortBy   MatchSortKey
	Order    stats.Order
	Page     int
	PageSize int
}

func (q MatchesQuery) WithSource(source MatchSource) MatchesQuery {
	q.Source = source
	q.Page = 1
	return q
}

func (q MatchesQuery) WithLeague(league string) MatchesQuery {
	q.League = league
	q.Page = 1
	return q
}

func (q MatchesQuery) WithSort(key MatchSortKey, order stats.Order) MatchesQuery {
	q.SortBy = key
	q.Order = order
	q.Page = 1
	return q
}

func (q MatchesQuery) WithPage(page int) MatchesQuery {
	q.Page = page
	return q
}

type MatchesView struct {
	Page    stats.Page[domain.MatchRecord]
	Leagues []string
}

type MatchesService struct {
	api    api.StatsAPI
	loader *ViewLoader
	logger zerolog.Logger
}

func NewMatchesService(client api.StatsAPI, logger zerolog.Logger) *MatchesService {
	return &MatchesService{api: client, loader: &ViewLoader{}, logger: logger}
}

func (s *MatchesService) Cancel() {
	s.loader.Cancel()
}

// RecentMatches returns the newest pro matches for the landing view.
func (s *MatchesService) RecentMatches(ctx context.Context) ([]domain.MatchRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.api.GetProMatches(ctx, constants.RecentMatchesLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch recent matches")
		return nil, fmt.Errorf("failed to fetch recent matches: %w", err)
	}

	matches := toMatchesFromPro(resp)
	matches = stats.SortByNumber(matches, func(m domain.MatchRecord) float64 { return float64(m.StartTime) }, stats.Desc)
	return stats.TopN(matches, constants.RecentMatchesLimit), nil
}

// Browse fetches the match list for the query's source and applies the
// league filter, sort and pagination.
func (s *MatchesService) Browse(ctx context.Context, q MatchesQuery) (*MatchesView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	token := s.loader.Begin()

	var matches []domain.MatchRecord
	switch q.Source {
	case SourcePublic:
		resp, err := s.api.GetPublicMatches(ctx, constants.AnalyticsMatchLimit)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to fetch public matches")
			return nil, fmt.Errorf("failed to fetch public matches: %w", err)
		}
		matches = toMatchesFromPublic(resp)
	default:
		resp, err := s.api.GetProMatches(ctx, constants.AnalyticsMatchLimit)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to fetch pro matches")
			return nil, fmt.Errorf("failed to fetch pro matches: %w", err)
		}
		matches = toMatchesFromPro(resp)
	}
	if !s.loader.Alive(token) {
		return nil, ErrStale
	}

	leagues := uniqueLeagueNames(matches)
	filtered := filterMatches(matches, q.League)
	ordered := sortMatches(filtered, q.SortBy, q.Order)

	view := &MatchesView{
		Page:    stats.Paginate(ordered, q.PageSize, q.Page),
		Leagues: leagues,
	}

	s.logger.Info().
		Int("total", len(matches)).
		Int("matched", len(ordered)).
		Int("page", view.Page.Page).
		Msg("match browse completed")

	return view, nil
}

func filterMatches(matches []domain.MatchRecord, league string) []domain.MatchRecord {
	league = strings.ToLower(strings.TrimSpace(league))
	if league == "" {
		return matches
	}
	out := make([]domain.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m.LeagueName), league) {
			out = append(out, m)
		}
	}
	return out
}

func sortMatches(matches []domain.MatchRecord, key MatchSortKey, order stats.Order) []domain.MatchRecord {
	switch key {
	case MatchesByDuration:
		return stats.SortByNumber(matches, func(m domain.MatchRecord) float64 { return float64(m.Duration) }, order)
	case MatchesByLeague:
		return stats.SortByString(matches, func(m domain.MatchRecord) string { return m.LeagueName }, order)
	default:
		return stats.SortByNumber(matches, func(m domain.MatchRecord) float64 { return float64(m.StartTime) }, order)
	}
}

func uniqueLeagueNames(matches []domain.MatchRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range matches {
		name := strings.TrimSpace(m.LeagueName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
