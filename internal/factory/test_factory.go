package factory

import (
	"time"

	"github.com/bangtable/bangtable/internal/dependencies/mocks"
	"github.com/bangtable/bangtable/internal/dependencies/random"
	"github.com/bangtable/bangtable/internal/services/auth"
	"github.com/bangtable/bangtable/internal/storage/memory"
	"github.com/bangtable/bangtable/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a fixed clock and
// real randomness
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, random.New(), auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
