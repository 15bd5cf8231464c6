package service_test

import (
	"context"
	"testing"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/service"
	"dota-dashboard/internal/testutil/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadMatch_SplitsSidesAndRanksPerformers(t *testing.T) {
	details := &api.MatchDetails{
		MatchID:      8000000001,
		RadiantWin:   true,
		RadiantName:  "Team Spirit",
		DireName:     "Nigma",
		RadiantScore: 30,
		DireScore:    18,
		Players: []api.MatchPlayer{
			{AccountID: 1, Personaname: "carry", PlayerSlot: 0, Kills: 12, Deaths: 2, Assists: 8},
			{AccountID: 2, Personaname: "mid", PlayerSlot: 1, Kills: 8, Deaths: 4, Assists: 10},
			{AccountID: 3, Personaname: "offlane", PlayerSlot: 130, Kills: 5, Deaths: 0, Assists: 3},
			{AccountID: 4, Personaname: "support", PlayerSlot: 131, Kills: 1, Deaths: 9, Assists: 12},
		},
		RadiantGoldAdv: []int{0, 500, 1200},
		RadiantXPAdv:   []int{0, 300, 900},
	}

	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("GetMatchDetails", mock.Anything, int64(8000000001)).Return(details, nil)

	svc := service.NewMatchDetailService(mockAPI, zerolog.Nop())
	view, err := svc.LoadMatch(context.Background(), 8000000001)

	require.NoError(t, err)
	require.Len(t, view.Radiant, 2)
	require.Len(t, view.Dire, 2)

	for _, p := range view.Radiant {
		assert.Equal(t, domain.Radiant, p.Side())
		assert.True(t, p.Won, "radiant players won a radiant victory")
	}
	for _, p := range view.Dire {
		assert.Equal(t, domain.Dire, p.Side())
		assert.False(t, p.Won)
	}

	require.Len(t, view.TopPerformers, 3)
	assert.Equal(t, "carry", view.TopPerformers[0].Personaname, "10.00 KDA leads")
	assert.Equal(t, "offlane", view.TopPerformers[1].Personaname, "zero deaths counts kills+assists")
	assert.Equal(t, 8.0, view.TopPerformers[1].KDA)
	assert.Equal(t, "8.00", view.TopPerformers[1].KDADisplay)
	assert.Equal(t, "mid", view.TopPerformers[2].Personaname)

	assert.Equal(t, []int{0, 500, 1200}, view.GoldAdv)
	assert.Equal(t, []int{0, 300, 900}, view.XPAdv)
}
