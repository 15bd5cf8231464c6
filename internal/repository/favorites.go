package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dota-dashboard/internal/constants"

	"github.com/Masterminds/squirrel"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// FavoriteSnapshots persists the favorites blob as append-only snapshots.
// Load reads the newest row, which makes concurrent writers last-writer-wins
// by construction; older rows are pruned past a retention limit.
type FavoriteSnapshots struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewFavoriteSnapshots(db *sql.DB, logger zerolog.Logger) *FavoriteSnapshots {
	return &FavoriteSnapshots{db: db, logger: logger}
}

func (r *FavoriteSnapshots) Load(ctx context.Context) ([]byte, error) {
	query, args, err := sqlBuilder.
		Select("data").
		From("favorite_snapshots").
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot query: %w", err)
	}

	var data string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Msg("no favorite snapshot yet")
		return nil, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to load favorite snapshot")
		return nil, err
	}
	return []byte(data), nil
}

func (r *FavoriteSnapshots) Save(ctx context.Context, data []byte) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate snapshot id: %w", err)
	}

	query, args, err := sqlBuilder.
		Insert("favorite_snapshots").
		Columns("id", "data", "created_at").
		Values(id, string(data), time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build snapshot insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error().Err(err).Msg("failed to save favorite snapshot")
		return err
	}

	if err := r.prune(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("failed to prune old favorite snapshots")
	}

	r.logger.Debug().Str("snapshot_id", id).Int("bytes", len(data)).Msg("favorite snapshot saved")
	return nil
}

func (r *FavoriteSnapshots) prune(ctx context.Context) error {
	query, args, err := sqlBuilder.
		Delete("favorite_snapshots").
		Where(fmt.Sprintf(
			"id NOT IN (SELECT id FROM favorite_snapshots ORDER BY created_at DESC, id DESC LIMIT %d)",
			constants.SnapshotHistoryLimit,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build prune statement: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
