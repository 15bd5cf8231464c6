// Package dashboard assembles the esports statistics dashboard: an OpenDota
// client, a derivation layer for win rates, KDA, hero meta and match trends,
// and a persisted favorites store. Construct one with New, use the exposed
// services, then Close it.
package dashboard

import (
	"context"
	"fmt"

	"dota-dashboard/internal/api"
	"dota-dashboard/internal/config"
	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/favorites"
	fxmodules "dota-dashboard/internal/fx"
	"dota-dashboard/internal/logger"
	"dota-dashboard/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Options overrides pieces of the default assembly. Every field is
// optional; zero values fall back to environment-driven configuration.
type Options struct {
	// OpenDotaBaseURL overrides the API endpoint, mainly for tests against
	// a local stub server.
	OpenDotaBaseURL string

	// DBPath overrides where the favorites database lives. ":memory:" gives
	// a throwaway store.
	DBPath string

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string

	// Logger replaces the default logger entirely.
	Logger *zerolog.Logger

	// Storage replaces the SQLite-backed favorites persistence.
	Storage favorites.Storage

	// API replaces the real OpenDota client.
	API api.StatsAPI
}

// Dashboard is the assembled application. Each service owns one view of the
// data; Favorites is the user's persisted selection store.
type Dashboard struct {
	Analytics       *service.AnalyticsService
	Players         *service.PlayersService
	PlayerProfiles  *service.PlayerProfileService
	Matches         *service.MatchesService
	MatchDetails    *service.MatchDetailService
	Teams           *service.TeamsService
	Recommendations *service.RecommendationsService
	Favorites       *favorites.Store

	app *fx.App
}

// New builds and starts the dashboard. The ctx bounds startup, which
// includes opening and migrating the favorites database.
func New(ctx context.Context, opts Options) (*Dashboard, error) {
	d := &Dashboard{}

	fxOpts := []fx.Option{
		fxmodules.Module,
		fx.NopLogger,
		fx.Decorate(func(cfg *config.Config) *config.Config {
			if opts.OpenDotaBaseURL != "" {
				cfg.OpenDotaBaseURL = opts.OpenDotaBaseURL
			}
			if opts.DBPath != "" {
				cfg.DBPath = opts.DBPath
			}
			if opts.LogLevel != "" {
				cfg.LogLevel = opts.LogLevel
			}
			return cfg
		}),
	}

	if opts.Logger != nil {
		fxOpts = append(fxOpts, fx.Decorate(func(zerolog.Logger) zerolog.Logger {
			return *opts.Logger
		}))
	} else if opts.LogLevel != "" {
		fxOpts = append(fxOpts, fx.Decorate(func(zerolog.Logger) zerolog.Logger {
			return logger.SetLevel(logger.ParseLevel(opts.LogLevel))
		}))
	}
	if opts.Storage != nil {
		fxOpts = append(fxOpts, fx.Decorate(func(favorites.Storage) favorites.Storage {
			return opts.Storage
		}))
	}
	if opts.API != nil {
		fxOpts = append(fxOpts, fx.Decorate(func(api.StatsAPI) api.StatsAPI {
			return opts.API
		}))
	}

	fxOpts = append(fxOpts, fx.Populate(
		&d.Analytics,
		&d.Players,
		&d.PlayerProfiles,
		&d.Matches,
		&d.MatchDetails,
		&d.Teams,
		&d.Recommendations,
		&d.Favorites,
	))

	app := fx.New(fxOpts...)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("failed to assemble dashboard: %w", err)
	}
	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start dashboard: %w", err)
	}

	d.app = app
	return d, nil
}

// Close stops the dashboard and closes the favorites database. A ctx without
// a deadline gets the default shutdown timeout.
func (d *Dashboard) Close(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, constants.ShutdownTimeout)
		defer cancel()
	}
	return d.app.Stop(ctx)
}
