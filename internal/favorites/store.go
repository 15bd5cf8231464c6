package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/domain"

	"github.com/rs/zerolog"
)

// Storage is the persistence port: the whole favorites structure moves
// through it as one opaque blob. Implementations are not expected to be
// atomic across independent owners; last writer wins.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// StorageError wraps a failed load or save. The store's in-memory state is
// unchanged when a mutation returns one.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("favorites %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store keeps the user's starred players/teams/heroes/matches. Mutations
// follow read-modify-write over the full list: mutate in memory, serialize
// everything, hand the blob to storage. A failed save rolls the in-memory
// list back.
type Store struct {
	storage Storage
	logger  zerolog.Logger

	mu   sync.Mutex
	list domain.FavoriteList
}

// NewStore loads the persisted list once. A missing or empty blob starts an
// empty list; a corrupt one is an error so the caller can decide.
func NewStore(storage Storage, logger zerolog.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()

	s := &Store{storage: storage, logger: logger}

	data, err := storage.Load(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load favorites")
		return nil, &StorageError{Op: "load", Err: err}
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.list); err != nil {
			logger.Error().Err(err).Msg("failed to decode favorites blob")
			return nil, &StorageError{Op: "load", Err: err}
		}
	}

	logger.Debug().
		Int("players", len(s.list.Players)).
		Int("teams", len(s.list.Teams)).
		Int("heroes", len(s.list.Heroes)).
		Int("matches", len(s.list.Matches)).
		Msg("favorites loaded")

	return s, nil
}

// Add stars an entity. Adding an id already present is a no-op, so repeated
// clicks never duplicate entries. Insertion order is preserved.
func (s *Store) Add(ctx context.Context, typ domain.FavoriteType, entry domain.FavoriteEntry) error {
	if !typ.Valid() {
		return fmt.Errorf("unknown favorite type %q", typ)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.list.Entries(typ)
	for _, existing := range entries {
		if existing.ID == entry.ID {
			return nil
		}
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	s.list.SetEntries(typ, append(entries, entry))
	if err := s.persistLocked(ctx); err != nil {
		s.list.SetEntries(typ, entries)
		return err
	}

	s.logger.Debug().Str("type", string(typ)).Int64("id", entry.ID).Msg("favorite added")
	return nil
}

// Remove unstars an entity; removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, typ domain.FavoriteType, id int64) error {
	if !typ.Valid() {
		return fmt.Errorf("unknown favorite type %q", typ)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.list.Entries(typ)
	kept := make([]domain.FavoriteEntry, 0, len(entries))
	for _, existing := range entries {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}

	s.list.SetEntries(typ, kept)
	if err := s.persistLocked(ctx); err != nil {
		s.list.SetEntries(typ, entries)
		return err
	}

	s.logger.Debug().Str("type", string(typ)).Int64("id", id).Msg("favorite removed")
	return nil
}

func (s *Store) IsFavorite(typ domain.FavoriteType, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.list.Entries(typ) {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// List returns the starred entries of one type in insertion order.
func (s *Store) List(typ domain.FavoriteType) []domain.FavoriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.list.Entries(typ)
	out := make([]domain.FavoriteEntry, len(entries))
	copy(out, entries)
	return out
}

// All returns a copy of the full favorites structure.
func (s *Store) All() domain.FavoriteList {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out domain.FavoriteList
	for _, typ := range []domain.FavoriteType{domain.FavoritePlayers, domain.FavoriteTeams, domain.FavoriteHeroes, domain.FavoriteMatches} {
		entries := s.list.Entries(typ)
		copied := make([]domain.FavoriteEntry, len(entries))
		copy(copied, entries)
		out.SetEntries(typ, copied)
	}
	return out
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.list)
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	if err := s.storage.Save(ctx, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist favorites")
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
