package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrStale marks a view load whose result arrived after a newer load began
// (the triggering view navigated away or re-fetched). Callers drop the
// result instead of applying it to stale state.
var ErrStale = errors.New("view load superseded")

// ViewLoader hands out a generation token per load. A token stays alive
// until the next Begin or a Cancel, so late results can detect that they
// lost the race.
type ViewLoader struct {
	mu  sync.Mutex
	gen string
}

// Begin starts a new load generation, invalidating all previous tokens.
func (l *ViewLoader) Begin() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen = uuid.New().String()
	return l.gen
}

// Alive reports whether token still belongs to the current generation.
func (l *ViewLoader) Alive(token string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen != "" && l.gen == token
}

// Cancel invalidates the current generation without starting a new one,
// e.g. when the owning view is torn down.
func (l *ViewLoader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen = ""
}
