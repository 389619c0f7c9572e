package auditor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mohammedsalick/FestFusion/internal/auditor/mocks"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestAuditor_Tick_ReportsViolations(t *testing.T) {
	checker := mocks.NewMockCapacityChecker(t)
	log := newTestLogger(t)

	a := New(checker, 50*time.Millisecond, log)

	violations := []domain.CapacityViolation{
		{EventID: "e1", Heading: "Tech Expo", MaxRegistrations: 10, Registered: 12},
	}
	checker.EXPECT().OverCapacity(mock.Anything).Return(violations, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(checker.Calls), 1)
}

func TestAuditor_Tick_HandlesError(t *testing.T) {
	checker := mocks.NewMockCapacityChecker(t)
	log := newTestLogger(t)

	a := New(checker, 50*time.Millisecond, log)

	checker.EXPECT().OverCapacity(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(checker.Calls), 1)
}

func TestAuditor_StopsOnContextCancel(t *testing.T) {
	checker := mocks.NewMockCapacityChecker(t)
	log := newTestLogger(t)

	a := New(checker, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("auditor did not stop on context cancel")
	}
}

func TestAuditor_MultipleTicks(t *testing.T) {
	checker := mocks.NewMockCapacityChecker(t)
	log := newTestLogger(t)

	a := New(checker, 30*time.Millisecond, log)

	checker.EXPECT().OverCapacity(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	calls := len(checker.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
