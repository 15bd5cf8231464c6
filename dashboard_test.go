package dashboard_test

import (
	"context"
	"testing"

	dashboard "dota-dashboard"
	"dota-dashboard/internal/api"
	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/favorites"
	"dota-dashboard/internal/testutil/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T, statsAPI api.StatsAPI) *dashboard.Dashboard {
	t.Helper()
	ctx := context.Background()

	d, err := dashboard.New(ctx, dashboard.Options{
		DBPath:  ":memory:",
		Storage: favorites.NewMemoryStorage(),
		API:     statsAPI,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, d.Close(context.Background()))
	})
	return d
}

func TestNew_WiresEveryService(t *testing.T) {
	d := newTestDashboard(t, new(mocks.MockStatsAPI))

	assert.NotNil(t, d.Analytics)
	assert.NotNil(t, d.Players)
	assert.NotNil(t, d.PlayerProfiles)
	assert.NotNil(t, d.Matches)
	assert.NotNil(t, d.MatchDetails)
	assert.NotNil(t, d.Teams)
	assert.NotNil(t, d.Recommendations)
	assert.NotNil(t, d.Favorites)
}

func TestDashboard_EndToEndThroughFacade(t *testing.T) {
	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("GetProMatches", mock.Anything, mock.Anything).Return([]api.ProMatch{
		{MatchID: 1, StartTime: 100, RadiantName: "A", DireName: "B", RadiantWin: true},
	}, nil)

	d := newTestDashboard(t, mockAPI)

	recent, err := d.Matches.RecentMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, int64(1), recent[0].MatchID)

	ctx := context.Background()
	require.NoError(t, d.Favorites.Add(ctx, domain.FavoriteMatches, domain.FavoriteEntry{ID: 1, Name: "A vs B"}))
	assert.True(t, d.Favorites.IsFavorite(domain.FavoriteMatches, 1))
}
