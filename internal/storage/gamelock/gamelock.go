// Package gamelock serializes read-modify-write cycles on a single game id.
// Operations on different game ids proceed independently; two concurrent
// mutations of the same game queue behind one another instead of racing the
// load/save pair and losing an update.
package gamelock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bangtable/bangtable/internal/model"
)

// ErrLockTimeout is returned when a critical section could not be entered
// before the context deadline
var ErrLockTimeout = errors.New("timed out waiting for game lock")

// DefaultAcquireTimeout bounds lock acquisition when the caller's context
// carries no deadline of its own
const DefaultAcquireTimeout = 5 * time.Second

type entry struct {
	sem  chan struct{}
	refs int
}

// Keyed is a set of per-game-id mutexes. The zero value is not usable;
// call New.
type Keyed struct {
	mu      sync.Mutex
	entries map[model.GameID]*entry
}

// New creates a new Keyed lock set
func New() *Keyed {
	return &Keyed{
		entries: make(map[model.GameID]*entry),
	}
}

// Do runs fn while holding the critical section for the given game id.
// Acquisition is bounded: by the context deadline if there is one, by
// DefaultAcquireTimeout otherwise. On expiry Do returns ErrLockTimeout
// without running fn.
func (k *Keyed) Do(ctx context.Context, id model.GameID, fn func() error) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultAcquireTimeout)
		defer cancel()
	}

	e := k.acquireEntry(id)
	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		k.releaseEntry(id)
		return ErrLockTimeout
	}

	defer func() {
		<-e.sem
		k.releaseEntry(id)
	}()
	return fn()
}

// acquireEntry returns the semaphore for id, creating it on first use.
// Entries are reference counted so the map does not grow without bound.
func (k *Keyed) acquireEntry(id model.GameID) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[id]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		k.entries[id] = e
	}
	e.refs++
	return e
}

func (k *Keyed) releaseEntry(id model.GameID) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[id]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, id)
	}
}
