package testutil

import (
	"database/sql"
	"testing"

	"dota-dashboard/internal/config"
	"dota-dashboard/internal/database"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{DBPath: ":memory:"}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return db
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
