package service_test

import (
	"context"
	"errors"
	"testing"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/service"
	"dota-dashboard/internal/testutil/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadRecommendations_AdviceBuckets(t *testing.T) {
	players := []api.ProPlayer{
		{AccountID: 1, Name: "InForm", TeamName: "A", IsCurrentTeamMember: true, Wins: 70, Losses: 30},
		{AccountID: 2, Name: "Slumping", TeamName: "B", IsCurrentTeamMember: true, Wins: 20, Losses: 80},
		{AccountID: 3, Name: "Rookie", TeamName: "C", IsCurrentTeamMember: true, Wins: 2, Losses: 1},
		{AccountID: 4, Name: "Benched", TeamName: "D", IsCurrentTeamMember: false, Wins: 50, Losses: 50},
	}
	matches := []api.ProMatch{
		{MatchID: 1, RadiantName: "Dominant", DireName: "Struggling", RadiantWin: true},
		{MatchID: 2, RadiantName: "Struggling", DireName: "Dominant", RadiantWin: false},
	}
	heroes := []api.HeroStats{
		{ID: 1, LocalizedName: "Sleeper", ProPick: 25, ProWin: 15},
		{ID: 2, LocalizedName: "Popular", ProPick: 500, ProWin: 220},
		{ID: 3, LocalizedName: "Fringe", ProPick: 5, ProWin: 4},
	}

	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("GetProPlayers", mock.Anything).Return(players, nil)
	mockAPI.On("GetProMatches", mock.Anything, mock.Anything).Return(matches, nil)
	mockAPI.On("GetHeroStats", mock.Anything).Return(heroes, nil)

	svc := service.NewRecommendationsService(mockAPI, zerolog.Nop())
	view, err := svc.LoadRecommendations(context.Background())

	require.NoError(t, err)

	require.Len(t, view.Teams, 2)
	assert.Equal(t, "Dominant", view.Teams[0].Team)
	assert.Contains(t, view.Teams[0].Advice, "Dominant form")
	assert.Contains(t, view.Teams[1].Advice, "Struggling")

	require.Len(t, view.Players, 3, "former team members are excluded")
	byName := make(map[string]string)
	for _, p := range view.Players {
		byName[p.Name] = p.Advice
	}
	assert.Contains(t, byName["InForm"], "Top form")
	assert.Contains(t, byName["Slumping"], "Below average")
	assert.Contains(t, byName["Rookie"], "Not enough recorded matches")

	require.Len(t, view.Heroes, 2, "heroes under the pick threshold are skipped")
	heroAdvice := make(map[string]string)
	for _, h := range view.Heroes {
		heroAdvice[h.Name] = h.Advice
	}
	assert.Contains(t, heroAdvice["Sleeper"], "Hidden gem")
	assert.Contains(t, heroAdvice["Popular"], "Underperforming")

	require.Len(t, view.Drafts, 1)
	assert.Equal(t, "priority_picks", view.Drafts[0].Type)
	assert.Contains(t, view.Drafts[0].Heroes, "Sleeper")
	assert.NotContains(t, view.Drafts[0].Heroes, "Popular", "44 percent win rate is not a priority pick")
}

func TestLoadRecommendations_AnyFetchFailureFailsTheView(t *testing.T) {
	fetchErr := errors.New("opendota: 429")

	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("GetProPlayers", mock.Anything).Return([]api.ProPlayer{}, nil)
	mockAPI.On("GetProMatches", mock.Anything, mock.Anything).Return([]api.ProMatch{}, nil)
	mockAPI.On("GetHeroStats", mock.Anything).Return(nil, fetchErr)

	svc := service.NewRecommendationsService(mockAPI, zerolog.Nop())
	view, err := svc.LoadRecommendations(context.Background())

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, fetchErr)
}
