package service_test

import (
	"context"
	"errors"
	"testing"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/service"
	"dota-dashboard/internal/stats"
	"dota-dashboard/internal/testutil/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayersQuery_FilterAndSortResetThePage(t *testing.T) {
	q := service.PlayersQuery{Page: 5, PageSize: 20}

	assert.Equal(t, 1, q.WithSearch("mir").Page)
	assert.Equal(t, 1, q.WithTeam("Nigma").Page)
	assert.Equal(t, 1, q.WithCountry("Jordan").Page)
	assert.Equal(t, 1, q.WithRole(1).Page)
	assert.Equal(t, 1, q.WithSort(service.PlayersByTeam, stats.Desc).Page)
	assert.Equal(t, 7, q.WithPage(7).Page, "only WithPage moves the page")
	assert.Equal(t, 5, q.Page, "builders do not mutate the receiver")
}

func TestPlayersBrowse_FiltersAndPaginates(t *testing.T) {
	players := []api.ProPlayer{
		{AccountID: 1, Name: "Miracle-", TeamName: "Nigma", CountryCode: "jo"},
		{AccountID: 2, Name: "Yatoro", TeamName: "Team Spirit", CountryCode: "ua"},
		{AccountID: 3, Name: "Mira", TeamName: "Team Spirit", CountryCode: "ua"},
		{AccountID: 4, Personaname: "anon", TeamName: "", CountryCode: ""},
	}

	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("GetProPlayers", mock.Anything).Return(players, nil)

	svc := service.NewPlayersService(mockAPI, zerolog.Nop())
	view, err := svc.Browse(context.Background(), service.PlayersQuery{Search: "mir", PageSize: 10, Page: 1})

	require.NoError(t, err)
	require.Len(t, view.Page.Items, 2, "search matches the display name, case-insensitive")
	assert.Equal(t, "Mira", view.Page.Items[0].DisplayName(), "default sort is by name ascending")
	assert.Equal(t, "Miracle-", view.Page.Items[1].DisplayName())

	assert.Equal(t, []string{"Nigma", "Team Spirit"}, view.Teams, "filter options come from the unfiltered set")
	assert.Equal(t, []string{"Jordan", "Ukraine"}, view.Countries)
}

func TestPlayersBrowse_TeamFilter(t *testing.T) {
	players := []api.ProPlayer{
		{AccountID: 1, Name: "Miracle-", TeamName: "Nigma"},
		{AccountID: 2, Name: "Yatoro", TeamName: "Team Spirit"},
	}

	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("GetProPlayers", mock.Anything).Return(players, nil)

	svc := service.NewPlayersService(mockAPI, zerolog.Nop())
	view, err := svc.Browse(context.Background(), service.PlayersQuery{Team: "spirit"})

	require.NoError(t, err)
	require.Len(t, view.Page.Items, 1)
	assert.Equal(t, "Yatoro", view.Page.Items[0].DisplayName())
}

func TestPlayersBrowse_FetchFailurePropagates(t *testing.T) {
	fetchErr := errors.New("opendota: timeout")

	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("GetProPlayers", mock.Anything).Return(nil, fetchErr)

	svc := service.NewPlayersService(mockAPI, zerolog.Nop())
	view, err := svc.Browse(context.Background(), service.PlayersQuery{})

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, fetchErr)
}

func TestPlayersSearch_TrimsAndLimits(t *testing.T) {
	results := make([]api.SearchResult, 10)
	for i := range results {
		results[i] = api.SearchResult{AccountID: int64(i + 1), Personaname: "player"}
	}

	mockAPI := new(mocks.MockStatsAPI)
	mockAPI.On("SearchPlayers", mock.Anything, "dendi").Return(results, nil)

	svc := service.NewPlayersService(mockAPI, zerolog.Nop())
	found, err := svc.Search(context.Background(), "  dendi  ")

	require.NoError(t, err)
	assert.Len(t, found, 6, "results are capped for the dropdown")
}

func TestPlayersSearch_EmptyQueryShortCircuits(t *testing.T) {
	mockAPI := new(mocks.MockStatsAPI)

	svc := service.NewPlayersService(mockAPI, zerolog.Nop())
	found, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Nil(t, found)
	mockAPI.AssertNotCalled(t, "SearchPlayers", mock.Anything, mock.Anything)
}
