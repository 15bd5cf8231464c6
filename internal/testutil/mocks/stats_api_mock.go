package mocks

import (
	"context"

	"dota-dashboard/internal/api"

	"github.com/stretchr/testify/mock"
)

// MockStatsAPI is a mock implementation of api.StatsAPI
type MockStatsAPI struct {
	mock.Mock
}

func (m *MockStatsAPI) SearchPlayers(ctx context.Context, query string) ([]api.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.SearchResult), args.Error(1)
}

func (m *MockStatsAPI) GetProPlayers(ctx context.Context) ([]api.ProPlayer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.ProPlayer), args.Error(1)
}

func (m *MockStatsAPI) GetProMatches(ctx context.Context, limit int) ([]api.ProMatch, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.ProMatch), args.Error(1)
}

func (m *MockStatsAPI) GetPublicMatches(ctx context.Context, limit int) ([]api.PublicMatch, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.PublicMatch), args.Error(1)
}

func (m *MockStatsAPI) GetMatchDetails(ctx context.Context, matchID int64) (*api.MatchDetails, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.MatchDetails), args.Error(1)
}

func (m *MockStatsAPI) GetPlayerData(ctx context.Context, accountID int64) (*api.PlayerData, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.PlayerData), args.Error(1)
}

func (m *MockStatsAPI) GetPlayerMatches(ctx context.Context, accountID int64, limit int) ([]api.PlayerRecentMatch, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.PlayerRecentMatch), args.Error(1)
}

func (m *MockStatsAPI) GetPlayerWinLoss(ctx context.Context, accountID int64) (*api.WinLoss, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.WinLoss), args.Error(1)
}

func (m *MockStatsAPI) GetHeroStats(ctx context.Context) ([]api.HeroStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.HeroStats), args.Error(1)
}

func (m *MockStatsAPI) GetProTeams(ctx context.Context) ([]api.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Team), args.Error(1)
}

func (m *MockStatsAPI) GetTeamData(ctx context.Context, teamID int64) (*api.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Team), args.Error(1)
}

func (m *MockStatsAPI) GetTeamPlayers(ctx context.Context, teamID int64) ([]api.TeamPlayer, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TeamPlayer), args.Error(1)
}

func (m *MockStatsAPI) GetTeamMatches(ctx context.Context, teamID int64, limit int) ([]api.TeamMatch, error) {
	args := m.Called(ctx, teamID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TeamMatch), args.Error(1)
}

func (m *MockStatsAPI) GetTeamHeroes(ctx context.Context, teamID int64) ([]api.TeamHero, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TeamHero), args.Error(1)
}
