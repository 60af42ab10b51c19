package gamelock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bangtable/bangtable/internal/model"
)

func TestDoRunsFunction(t *testing.T) {
	locks := New()

	ran := false
	err := locks.Do(context.Background(), 1, func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestDoPropagatesError(t *testing.T) {
	locks := New()

	want := errors.New("boom")
	err := locks.Do(context.Background(), 1, func() error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestSameIDSerializes(t *testing.T) {
	locks := New()

	const workers = 20
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locks.Do(context.Background(), 1, func() error {
				v := counter
				time.Sleep(time.Millisecond)
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestDifferentIDsDoNotBlock(t *testing.T) {
	locks := New()

	held := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = locks.Do(context.Background(), 1, func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	// With game 1 held, game 2 must still proceed
	done := make(chan struct{})
	go func() {
		_ = locks.Do(context.Background(), 2, func() error {
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("operation on another game id blocked")
	}
	close(release)
}

func TestDoTimesOutWhenHeld(t *testing.T) {
	locks := New()

	held := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = locks.Do(context.Background(), 1, func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ran := false
	err := locks.Do(ctx, 1, func() error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.False(t, ran)
}

func TestEntriesAreReleased(t *testing.T) {
	locks := New()

	for id := int64(1); id <= 10; id++ {
		require.NoError(t, locks.Do(context.Background(), model.GameID(id), func() error {
			return nil
		}))
	}

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.entries)
}
