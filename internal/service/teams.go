package service

import (
	"context"
	"fmt"
	"strings"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// TeamOrder orders the team directory by rating. The zero value lists the
// strongest teams first, which is the default presentation.
type TeamOrder int

const (
	TeamsByRatingDesc TeamOrder = iota
	TeamsByRatingAsc
)

type TeamsQuery struct {
	Search   string
	Order    TeamOrder
	Page     int
	PageSize int
}

func (q TeamsQuery) WithSearch(search string) TeamsQuery {
	q.Search = search
	q.Page = 1
	return q
}

func (q TeamsQuery) WithOrder(order TeamOrder) TeamsQuery {
	q.Order = order
	q.Page = 1
	return q
}

func (q TeamsQuery) WithPage(page int) TeamsQuery {
	q.Page = page
	return q
}

type TeamsService struct {
	api    api.StatsAPI
	loader *ViewLoader
	logger zerolog.Logger
}

func NewTeamsService(client api.StatsAPI, logger zerolog.Logger) *TeamsService {
	return &TeamsService{api: client, loader: &ViewLoader{}, logger: logger}
}

func (s *TeamsService) Cancel() {
	s.loader.Cancel()
}

// ListTeams fetches the pro team directory ordered by rating, strongest
// first unless the query asks for ascending.
func (s *TeamsService) ListTeams(ctx context.Context, q TeamsQuery) (stats.Page[domain.TeamRecord], error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	token := s.loader.Begin()

	resp, err := s.api.GetProTeams(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch pro teams")
		return stats.Page[domain.TeamRecord]{}, fmt.Errorf("failed to fetch pro teams: %w", err)
	}
	if !s.loader.Alive(token) {
		return stats.Page[domain.TeamRecord]{}, ErrStale
	}

	teams := make([]domain.TeamRecord, len(resp))
	for i, t := range resp {
		teams[i] = toTeam(t)
	}

	teams = filterTeams(teams, q.Search)
	order := stats.Desc
	if q.Order == TeamsByRatingAsc {
		order = stats.Asc
	}
	teams = stats.SortByNumber(teams, func(t domain.TeamRecord) float64 { return t.Rating }, order)

	page := stats.Paginate(teams, q.PageSize, q.Page)
	s.logger.Info().Int("total", page.TotalItems).Int("page", page.Page).Msg("team list loaded")
	return page, nil
}

// LoadTeamProfile joins the team record with its roster, recent matches and
// hero pool. All four fetches run in parallel and the join is all-or-nothing.
func (s *TeamsService) LoadTeamProfile(ctx context.Context, teamID int64) (*domain.TeamProfileView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	token := s.loader.Begin()
	s.logger.Info().Int64("team_id", teamID).Msg("loading team profile")

	var (
		team    *api.Team
		players []api.TeamPlayer
		matches []api.TeamMatch
		heroes  []api.TeamHero
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		team, err = s.api.GetTeamData(gCtx, teamID)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.api.GetTeamPlayers(gCtx, teamID)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.api.GetTeamMatches(gCtx, teamID, constants.TeamMatchesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		heroes, err = s.api.GetTeamHeroes(gCtx, teamID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Int64("team_id", teamID).Msg("failed to fetch team profile")
		return nil, fmt.Errorf("failed to fetch team profile: %w", err)
	}
	if !s.loader.Alive(token) {
		return nil, ErrStale
	}

	record := toTeam(*team)
	view := &domain.TeamProfileView{
		Team:       record,
		WinRatePct: stats.Percentage(record.Wins, record.Wins+record.Losses),
		Players:    teamRoster(players),
		Matches:    teamMatchSummaries(matches),
		Heroes:     teamHeroPool(heroes),
	}
	return view, nil
}

func filterTeams(teams []domain.TeamRecord, search string) []domain.TeamRecord {
	search = normalizeSearch(search)
	if search == "" {
		return teams
	}
	out := make([]domain.TeamRecord, 0, len(teams))
	for _, t := range teams {
		if containsFold(t.Name, search) || containsFold(t.Tag, search) {
			out = append(out, t)
		}
	}
	return out
}

func normalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func teamRoster(players []api.TeamPlayer) []domain.TeamPlayerStat {
	roster := make([]domain.TeamPlayerStat, len(players))
	for i, p := range players {
		roster[i] = domain.TeamPlayerStat{
			AccountID:   p.AccountID,
			Name:        p.Name,
			GamesPlayed: p.GamesPlayed,
			Wins:        p.Wins,
			WinRatePct:  stats.Percentage(p.Wins, p.GamesPlayed),
			IsCurrent:   p.IsCurrentTeamMember,
		}
	}
	// Current roster first, then by games played within each group.
	roster = stats.SortByNumber(roster, func(p domain.TeamPlayerStat) float64 { return float64(p.GamesPlayed) }, stats.Desc)
	roster = stats.SortByNumber(roster, func(p domain.TeamPlayerStat) float64 {
		if p.IsCurrent {
			return 1
		}
		return 0
	}, stats.Desc)
	return roster
}

func teamMatchSummaries(matches []api.TeamMatch) []domain.TeamMatchSummary {
	out := make([]domain.TeamMatchSummary, len(matches))
	for i, m := range matches {
		out[i] = domain.TeamMatchSummary{
			MatchID:      m.MatchID,
			OpposingTeam: m.OpposingTeamName,
			LeagueName:   m.LeagueName,
			StartTime:    m.StartTime,
			Duration:     m.Duration,
			Won:          m.Radiant == m.RadiantWin,
		}
	}
	return stats.SortByNumber(out, func(m domain.TeamMatchSummary) float64 { return float64(m.StartTime) }, stats.Desc)
}

func teamHeroPool(heroes []api.TeamHero) []domain.TeamHeroStat {
	out := make([]domain.TeamHeroStat, len(heroes))
	for i, h := range heroes {
		out[i] = domain.TeamHeroStat{
			HeroID:      h.HeroID,
			Name:        h.LocalizedName,
			GamesPlayed: h.GamesPlayed,
			Wins:        h.Wins,
			WinRatePct:  stats.Percentage(h.Wins, h.GamesPlayed),
		}
	}
	out = stats.SortByNumber(out, func(h domain.TeamHeroStat) float64 { return float64(h.GamesPlayed) }, stats.Desc)
	return stats.TopN(out, constants.TopHeroesLimit)
}
