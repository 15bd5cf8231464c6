package service

import (
	"context"
	"fmt"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/stats"

	"github.com/rs/zerolog"
)

const topPerformerCount = 3

type MatchDetailService struct {
	api    api.StatsAPI
	loader *ViewLoader
	logger zerolog.Logger
}

func NewMatchDetailService(client api.StatsAPI, logger zerolog.Logger) *MatchDetailService {
	return &MatchDetailService{api: client, loader: &ViewLoader{}, logger: logger}
}

func (s *MatchDetailService) Cancel() {
	s.loader.Cancel()
}

// LoadMatch fetches the full match record and splits the scoreboard into
// radiant and dire sides, ranking the match's top performers by KDA.
func (s *MatchDetailService) LoadMatch(ctx context.Context, matchID int64) (*domain.MatchDetailView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	token := s.loader.Begin()
	s.logger.Info().Int64("match_id", matchID).Msg("loading match detail")

	resp, err := s.api.GetMatchDetails(ctx, matchID)
	if err != nil {
		s.logger.Error().Err(err).Int64("match_id", matchID).Msg("failed to fetch match details")
		return nil, fmt.Errorf("failed to fetch match details: %w", err)
	}
	if !s.loader.Alive(token) {
		return nil, ErrStale
	}

	match := toMatchFromDetails(resp)
	performances := matchPerformances(match)

	var radiant, dire []domain.PlayerPerformance
	for _, p := range performances {
		if p.Side() == domain.Radiant {
			radiant = append(radiant, p)
		} else {
			dire = append(dire, p)
		}
	}

	// Ranking uses the unrounded ratio; the rounded display string is only
	// for rendering.
	top := stats.SortByNumber(performances, func(p domain.PlayerPerformance) float64 { return p.KDA }, stats.Desc)
	top = stats.TopN(top, topPerformerCount)

	view := &domain.MatchDetailView{
		Match:         match,
		Radiant:       radiant,
		Dire:          dire,
		TopPerformers: top,
		GoldAdv:       match.RadiantGoldAdv,
		XPAdv:         match.RadiantXPAdv,
	}
	return view, nil
}

func matchPerformances(match domain.MatchRecord) []domain.PlayerPerformance {
	out := make([]domain.PlayerPerformance, len(match.Players))
	for i, p := range match.Players {
		kda := stats.KDA(p)
		out[i] = domain.PlayerPerformance{
			PlayerMatchStat: p,
			KDA:             kda,
			KDADisplay:      stats.FormatKDA(kda),
			Won:             (p.Side() == domain.Radiant) == match.RadiantWin,
		}
	}
	return out
}
