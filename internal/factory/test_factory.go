package factory

import (
	"time"

	"github.com/mpfeif/caddiebook/internal/dependencies/mocks"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
	"github.com/mpfeif/caddiebook/internal/services/settlement"
	"github.com/mpfeif/caddiebook/internal/storage/memory"
	"github.com/mpfeif/caddiebook/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(
		store,
		mockClock,
		mockRandom,
		handicap.DefaultPolicy(),
		settlement.DefaultConfig(),
		testutil.NopLogger(),
	)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
