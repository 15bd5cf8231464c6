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

type PlayerProfileService struct {
	api    api.StatsAPI
	loader *ViewLoader
	logger zerolog.Logger
}

func NewPlayerProfileService(client api.StatsAPI, logger zerolog.Logger) *PlayerProfileService {
	return &PlayerProfileService{api: client, loader: &ViewLoader{}, logger: logger}
}

func (s *PlayerProfileService) Cancel() {
	s.loader.Cancel()
}

// LoadProfile joins the player's account data, win/loss record and recent
// matches. All three fetches run in parallel; any failure fails the view.
func (s *PlayerProfileService) LoadProfile(ctx context.Context, accountID int64) (*domain.PlayerProfileView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	token := s.loader.Begin()
	s.logger.Info().Int64("account_id", accountID).Msg("loading player profile")

	var (
		data    *api.PlayerData
		winLoss *api.WinLoss
		matches []api.PlayerRecentMatch
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.api.GetPlayerData(gCtx, accountID)
		return err
	})
	g.Go(func() error {
		var err error
		winLoss, err = s.api.GetPlayerWinLoss(gCtx, accountID)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.api.GetPlayerMatches(gCtx, accountID, constants.PlayerMatchesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Int64("account_id", accountID).Msg("failed to fetch player profile")
		return nil, fmt.Errorf("failed to fetch player profile: %w", err)
	}
	if !s.loader.Alive(token) {
		return nil, ErrStale
	}

	view := &domain.PlayerProfileView{
		AccountID:   accountID,
		Name:        data.Profile.Name,
		Personaname: data.Profile.Personaname,
		Avatar:      data.Profile.AvatarFull,
		CountryCode: data.Profile.LocCountryCode,
		RankTier:    data.RankTier,
		MMREstimate: data.MMREstimate.Estimate,
		Wins:        winLoss.Win,
		Losses:      winLoss.Lose,
		WinRatePct:  stats.Percentage(winLoss.Win, winLoss.Win+winLoss.Lose),
		Matches:     playerMatchSummaries(matches),
	}
	return view, nil
}

func playerMatchSummaries(matches []api.PlayerRecentMatch) []domain.PlayerMatchSummary {
	out := make([]domain.PlayerMatchSummary, len(matches))
	for i, m := range matches {
		kda := stats.KDA(domain.PlayerMatchStat{Kills: m.Kills, Deaths: m.Deaths, Assists: m.Assists})
		// The player won when their side matches the match outcome.
		won := (domain.SideOf(m.PlayerSlot) == domain.Radiant) == m.RadiantWin
		out[i] = domain.PlayerMatchSummary{
			MatchID:    m.MatchID,
			HeroID:     m.HeroID,
			StartTime:  m.StartTime,
			Duration:   m.Duration,
			Kills:      m.Kills,
			Deaths:     m.Deaths,
			Assists:    m.Assists,
			KDA:        kda,
			KDADisplay: stats.FormatKDA(kda),
			Won:        won,
		}
	}
	return stats.SortByNumber(out, func(m domain.PlayerMatchSummary) float64 { return float64(m.StartTime) }, stats.Desc)
}
