package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/countries"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/stats"

	"github.com/rs/zerolog"
)

type PlayerSortKey int

const (
	PlayersByName PlayerSortKey = iota
	PlayersByTeam
	PlayersByCountry
	PlayersByRole
)

// PlayersQuery is the browse state for the player directory. Build updates
// through the With* methods: any filter or sort change resets the page to 1,
// while WithPage only moves the page.
type PlayersQuery struct {
	Search   string
	Team     string
	Country  string
	Role     int
	SortBy   PlayerSortKey
	Order    stats.Order
	Page     int
	PageSize int
}

func (q PlayersQuery) WithSearch(search string) PlayersQuery {
	q.Search = search
	q.Page = 1
	return q
}

func (q PlayersQuery) WithTeam(team string) PlayersQuery {
	q.Team = team
	q.Page = 1
	return q
}

func (q PlayersQuery) WithCountry(country string) PlayersQuery {
	q.Country = country
	q.Page = 1
	return q
}

func (q PlayersQuery) WithRole(role int) PlayersQuery {
	q.Role = role
	q.Page = 1
	return q
}

func (q PlayersQuery) WithSort(key PlayerSortKey, order stats.Order) PlayersQuery {
	q.SortBy = key
	q.Order = order
	q.Page = 1
	return q
}

func (q PlayersQuery) WithPage(page int) PlayersQuery {
	q.Page = page
	return q
}

type PlayersView struct {
	Page      stats.Page[domain.ProPlayerRecord]
	Teams     []string
	Countries []string
}

type PlayersService struct {
	api    api.StatsAPI
	loader *ViewLoader
	logger zerolog.Logger
}

func NewPlayersService(client api.StatsAPI, logger zerolog.Logger) *PlayersService {
	return &PlayersService{api: client, loader: &ViewLoader{}, logger: logger}
}

func (s *PlayersService) Cancel() {
	s.loader.Cancel()
}

// Browse fetches the pro player directory and applies the query's filters,
// sort and pagination.
func (s *PlayersService) Browse(ctx context.Context, q PlayersQuery) (*PlayersView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	token := s.loader.Begin()
	s.logger.Debug().Str("search", q.Search).Str("team", q.Team).Int("page", q.Page).Msg("browsing players")

	resp, err := s.api.GetProPlayers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch pro players")
		return nil, fmt.Errorf("failed to fetch pro players: %w", err)
	}
	if !s.loader.Alive(token) {
		return nil, ErrStale
	}

	players := toProPlayers(resp)
	filtered := filterPlayers(players, q)
	ordered := sortPlayers(filtered, q.SortBy, q.Order)

	view := &PlayersView{
		Page:      stats.Paginate(ordered, q.PageSize, q.Page),
		Teams:     uniqueTeamNames(players),
		Countries: uniqueCountryNames(players),
	}

	s.logger.Info().
		Int("total", len(players)).
		Int("matched", len(ordered)).
		Int("page", view.Page.Page).
		Msg("player browse completed")

	return view, nil
}

// Search runs a free-text persona-name search against the API, trimmed to
// the dashboard's result limit.
func (s *PlayersService) Search(ctx context.Context, query string) ([]domain.PlayerSearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	resp, err := s.api.SearchPlayers(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("player search failed")
		return nil, fmt.Errorf("player search failed: %w", err)
	}

	if len(resp) > constants.SearchResultLimit {
		resp = resp[:constants.SearchResultLimit]
	}

	results := make([]domain.PlayerSearchResult, len(resp))
	for i, r := range resp {
		results[i] = domain.PlayerSearchResult{
			AccountID:     r.AccountID,
			Personaname:   r.Personaname,
			Avatar:        r.AvatarFull,
			LastMatchTime: r.LastMatchTime,
		}
	}

	s.logger.Info().Int("count", len(results)).Str("query", query).Msg("player search completed")
	return results, nil
}

func filterPlayers(players []domain.ProPlayerRecord, q PlayersQuery) []domain.ProPlayerRecord {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	team := strings.ToLower(strings.TrimSpace(q.Team))
	country := strings.ToLower(strings.TrimSpace(q.Country))

	out := make([]domain.ProPlayerRecord, 0, len(players))
	for _, p := range players {
		if search != "" && !strings.Contains(strings.ToLower(p.DisplayName()), search) {
			continue
		}
		if team != "" && !strings.Contains(strings.ToLower(p.TeamName), team) {
			continue
		}
		if country != "" && strings.ToLower(countries.Name(p.CountryCode)) != country {
			continue
		}
		if q.Role != 0 && p.FantasyRole != q.Role {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortPlayers(players []domain.ProPlayerRecord, key PlayerSortKey, order stats.Order) []domain.ProPlayerRecord {
	switch key {
	case PlayersByTeam:
		return stats.SortByString(players, func(p domain.ProPlayerRecord) string { return p.TeamName }, order)
	case PlayersByCountry:
		return stats.SortByString(players, func(p domain.ProPlayerRecord) string { return countries.Name(p.CountryCode) }, order)
	case PlayersByRole:
		return stats.SortByNumber(players, func(p domain.ProPlayerRecord) float64 { return float64(p.FantasyRole) }, order)
	default:
		return stats.SortByString(players, func(p domain.ProPlayerRecord) string { return p.DisplayName() }, order)
	}
}

func uniqueTeamNames(players []domain.ProPlayerRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range players {
		name := strings.TrimSpace(p.TeamName)
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

func uniqueCountryNames(players []domain.ProPlayerRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range players {
		code := strings.TrimSpace(p.CountryCode)
		if code == "" {
			continue
		}
		name := countries.Name(code)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
