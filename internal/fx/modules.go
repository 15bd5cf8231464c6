package fx

import (
	"context"
	"database/sql"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/config"
	"dota-dashboard/internal/database"
	"dota-dashboard/internal/favorites"
	"dota-dashboard/internal/logger"
	"dota-dashboard/internal/repository"
	"dota-dashboard/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideStorage(snapshots *repository.FavoriteSnapshots) favorites.Storage {
	return snapshots
}

func ProvideStatsAPI(client *api.OpenDotaClient) api.StatsAPI {
	return client
}

func registerDBClose(lc fx.Lifecycle, db *sql.DB, log zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing database connection")
				return err
			}
			return nil
		},
	})
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// persistence
	fx.Provide(repository.NewFavoriteSnapshots),
	fx.Provide(ProvideStorage),
	fx.Provide(favorites.NewStore),
	// api client
	fx.Provide(api.NewOpenDotaClient),
	fx.Provide(ProvideStatsAPI),
	// svc
	fx.Provide(service.NewAnalyticsService),
	fx.Provide(service.NewPlayersService),
	fx.Provide(service.NewPlayerProfileService),
	fx.Provide(service.NewMatchesService),
	fx.Provide(service.NewMatchDetailService),
	fx.Provide(service.NewTeamsService),
	fx.Provide(service.NewRecommendationsService),
	fx.Invoke(registerDBClose),
)
