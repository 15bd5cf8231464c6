package service

import (
	"context"
	"fmt"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RecommendationsService derives advisory blurbs from the same aggregates
// the analytics view computes, bucketed by simple win-rate thresholds.
type RecommendationsService struct {
	api    api.StatsAPI
	loader *ViewLoader
	logger zerolog.Logger
}

func NewRecommendationsService(client api.StatsAPI, logger zerolog.Logger) *RecommendationsService {
	return &RecommendationsService{api: client, loader: &ViewLoader{}, logger: logger}
}

func (s *RecommendationsService) Cancel() {
	s.loader.Cancel()
}

func (s *RecommendationsService) LoadRecommendations(ctx context.Context) (*domain.RecommendationsView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	token := s.loader.Begin()
	s.logger.Info().Msg("loading recommendations")

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
		s.logger.Error().Err(err).Msg("failed to fetch recommendation data")
		return nil, fmt.Errorf("failed to fetch recommendation data: %w", err)
	}
	if !s.loader.Alive(token) {
		return nil, ErrStale
	}

	view := &domain.RecommendationsView{
		Teams:   teamAdvice(matches),
		Players: playerAdvice(players),
		Heroes:  heroAdvice(heroes),
		Drafts:  draftAdvice(heroes),
	}
	return view, nil
}

func teamAdvice(matches []domain.MatchRecord) []domain.TeamAdvice {
	rates := stats.ComputeTeamWinRates(matches)
	out := make([]domain.TeamAdvice, 0, len(rates))
	for _, agg := range rates {
		advice := "Solid performance, maintain current strategies"
		switch {
		case agg.WinRatePct < 40:
			advice = "Struggling recently, consider roster or draft changes"
		case agg.WinRatePct >= 60:
			advice = "Dominant form, strong pick for upcoming events"
		}
		out = append(out, domain.TeamAdvice{
			Team:       agg.Team,
			WinRatePct: agg.WinRatePct,
			Matches:    agg.TotalGames,
			Advice:     advice,
		})
	}
	out = stats.SortByString(out, func(a domain.TeamAdvice) string { return a.Team }, stats.Asc)
	out = stats.SortByNumber(out, func(a domain.TeamAdvice) float64 { return a.WinRatePct }, stats.Desc)
	return stats.TopN(out, constants.TopTeamsLimit)
}

func playerAdvice(players []domain.ProPlayerRecord) []domain.PlayerAdvice {
	var out []domain.PlayerAdvice
	for _, p := range players {
		if !p.IsCurrentTeamMember {
			continue
		}
		total := p.TotalMatches()
		winRate := stats.Percentage(p.Wins, total)

		advice := "Consistent performer"
		switch {
		case total < constants.DraftPickMinPicks:
			advice = "Not enough recorded matches to judge form"
		case winRate < 45:
			advice = "Below average win rate, review recent drafts"
		case winRate >= 60:
			advice = "Top form, one to watch"
		}
		out = append(out, domain.PlayerAdvice{
			Name:       p.DisplayName(),
			TeamName:   p.TeamName,
			WinRatePct: winRate,
			Matches:    total,
			Advice:     advice,
		})
	}
	out = stats.SortByNumber(out, func(a domain.PlayerAdvice) float64 { return a.WinRatePct }, stats.Desc)
	return stats.TopN(out, constants.TopPlayersLimit)
}

func heroAdvice(heroes []domain.HeroStatRecord) []domain.HeroAdvice {
	meta := stats.ComputeHeroMeta(heroes)

	var out []domain.HeroAdvice
	for _, h := range meta {
		if h.TotalPicks <= constants.HeroRecommendationMinPicks {
			continue
		}
		advice := "Stable meta pick"
		switch {
		case h.WinRatePct > 55 && h.PickRatePct < 5:
			advice = "Hidden gem, high win rate with low pick rate"
		case h.WinRatePct > 55:
			advice = "Strong meta hero, prioritize in drafts"
		case h.WinRatePct < 45:
			advice = "Underperforming, avoid unless it fits the lineup"
		}
		out = append(out, domain.HeroAdvice{
			Name:        h.Name,
			WinRatePct:  h.WinRatePct,
			PickRatePct: h.PickRatePct,
			Picks:       h.TotalPicks,
			Advice:      advice,
		})
	}
	out = stats.SortByNumber(out, func(a domain.HeroAdvice) float64 { return a.WinRatePct }, stats.Desc)
	return stats.TopN(out, constants.TopHeroesLimit)
}

func draftAdvice(heroes []domain.HeroStatRecord) []domain.DraftAdvice {
	var strong []domain.HeroStatRecord
	for _, h := range heroes {
		if h.ProPick > constants.DraftPickMinPicks &&
			float64(h.ProWin)/float64(h.ProPick) > 0.55 {
			strong = append(strong, h)
		}
	}
	strong = stats.SortByNumber(strong, func(h domain.HeroStatRecord) float64 {
		return float64(h.ProWin) / float64(h.ProPick)
	}, stats.Desc)
	strong = stats.TopN(strong, constants.DraftPickLimit)

	if len(strong) == 0 {
		return nil
	}

	names := make([]string, len(strong))
	for i, h := range strong {
		names[i] = heroDisplayName(h)
	}

	return []domain.DraftAdvice{{
		Type:   "priority_picks",
		Heroes: names,
		Advice: "Highest win rate heroes among frequently picked, secure early",
	}}
}

func heroDisplayName(h domain.HeroStatRecord) string {
	if h.LocalizedName != "" {
		return h.LocalizedName
	}
	if h.Name != "" {
		return h.Name
	}
	return fmt.Sprintf("Hero %d", h.ID)
}
