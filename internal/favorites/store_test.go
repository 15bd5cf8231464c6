package favorites_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dota-dashboard/internal/domain"
	"dota-dashboard/internal/favorites"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	inner   favorites.Storage
	saveErr error
}

func (f *failingStorage) Load(ctx context.Context) ([]byte, error) {
	return f.inner.Load(ctx)
}

func (f *failingStorage) Save(ctx context.Context, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.inner.Save(ctx, data)
}

func newTestStore(t *testing.T) (*favorites.Store, *favorites.MemoryStorage) {
	t.Helper()
	storage := favorites.NewMemoryStorage()
	store, err := favorites.NewStore(storage, zerolog.Nop())
	require.NoError(t, err)
	return store, storage
}

func TestStore_AddAndList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, domain.FavoritePlayers, domain.FavoriteEntry{ID: 1, Name: "Miracle-"}))
	require.NoError(t, store.Add(ctx, domain.FavoritePlayers, domain.FavoriteEntry{ID: 2, Name: "Yatoro"}))

	list := store.List(domain.FavoritePlayers)
	require.Len(t, list, 2)
	assert.Equal(t, "Miracle-", list[0].Name, "insertion order preserved")
	assert.Equal(t, "Yatoro", list[1].Name)
	assert.False(t, list[0].Timestamp.IsZero(), "timestamp is stamped when absent")

	assert.True(t, store.IsFavorite(domain.FavoritePlayers, 1))
	assert.False(t, store.IsFavorite(domain.FavoritePlayers, 99))
	assert.False(t, store.IsFavorite(domain.FavoriteTeams, 1), "types are independent")
}

func TestStore_AddIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	entry := domain.FavoriteEntry{ID: 7, Name: "Team Spirit"}
	require.NoError(t, store.Add(ctx, domain.FavoriteTeams, entry))
	require.NoError(t, store.Add(ctx, domain.FavoriteTeams, entry))
	require.NoError(t, store.Add(ctx, domain.FavoriteTeams, entry))

	assert.Len(t, store.List(domain.FavoriteTeams), 1)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, domain.FavoriteHeroes, domain.FavoriteEntry{ID: 14, Name: "Pudge"}))
	require.NoError(t, store.Remove(ctx, domain.FavoriteHeroes, 999))
	require.NoError(t, store.Remove(ctx, domain.FavoriteHeroes, 14))
	require.NoError(t, store.Remove(ctx, domain.FavoriteHeroes, 14))

	assert.Empty(t, store.List(domain.FavoriteHeroes))
}

func TestStore_InvalidType(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.Add(ctx, domain.FavoriteType("bookmarks"), domain.FavoriteEntry{ID: 1})
	assert.Error(t, err)

	err = store.Remove(ctx, domain.FavoriteType("bookmarks"), 1)
	assert.Error(t, err)
}

func TestStore_PersistsWholeListAsOneBlob(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, domain.FavoritePlayers, domain.FavoriteEntry{ID: 1, Name: "Miracle-"}))
	require.NoError(t, store.Add(ctx, domain.FavoriteMatches, domain.FavoriteEntry{ID: 8000000000, Name: "Grand Final"}))

	data, err := storage.Load(ctx)
	require.NoError(t, err)

	var blob map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &blob))
	for _, key := range []string{"players", "teams", "heroes", "matches"} {
		assert.Contains(t, blob, key, "blob always carries all four groups")
	}
}

func TestStore_SurvivesRestart(t *testing.T) {
	storage := favorites.NewMemoryStorage()
	ctx := context.Background()

	first, err := favorites.NewStore(storage, zerolog.Nop())
	require.NoError(t, err)
	stamp := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	require.NoError(t, first.Add(ctx, domain.FavoriteTeams, domain.FavoriteEntry{ID: 7, Name: "Team Spirit", Timestamp: stamp}))

	second, err := favorites.NewStore(storage, zerolog.Nop())
	require.NoError(t, err)

	list := second.List(domain.FavoriteTeams)
	require.Len(t, list, 1)
	assert.Equal(t, "Team Spirit", list[0].Name)
	assert.True(t, stamp.Equal(list[0].Timestamp))
}

func TestStore_RollsBackOnSaveFailure(t *testing.T) {
	storage := &failingStorage{inner: favorites.NewMemoryStorage()}
	store, err := favorites.NewStore(storage, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, domain.FavoritePlayers, domain.FavoriteEntry{ID: 1, Name: "Miracle-"}))

	storage.saveErr = errors.New("disk full")

	err = store.Add(ctx, domain.FavoritePlayers, domain.FavoriteEntry{ID: 2, Name: "Yatoro"})
	require.Error(t, err)
	var storageErr *favorites.StorageError
	assert.ErrorAs(t, err, &storageErr)
	assert.Len(t, store.List(domain.FavoritePlayers), 1, "failed add leaves memory unchanged")

	err = store.Remove(ctx, domain.FavoritePlayers, 1)
	require.Error(t, err)
	assert.True(t, store.IsFavorite(domain.FavoritePlayers, 1), "failed remove leaves memory unchanged")
}

func TestStore_CorruptBlobFailsConstruction(t *testing.T) {
	storage := favorites.NewMemoryStorage()
	require.NoError(t, storage.Save(context.Background(), []byte("{not json")))

	_, err := favorites.NewStore(storage, zerolog.Nop())
	require.Error(t, err)
	var storageErr *favorites.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestStore_AllReturnsDeepCopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, domain.FavoriteHeroes, domain.FavoriteEntry{ID: 14, Name: "Pudge"}))

	all := store.All()
	all.Heroes[0].Name = "mutated"

	assert.Equal(t, "Pudge", store.List(domain.FavoriteHeroes)[0].Name)
}
