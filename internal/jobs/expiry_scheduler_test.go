package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Handle(ctx context.Context, command commands.ResolveOrderCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Location() *time.Location {
	return c.now.Location()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func failedFor(id kernel.UUID) any {
	return mock.MatchedBy(func(cmd commands.ResolveOrderCommand) bool {
		return cmd.OrderID().IsEqual(id) && cmd.Status() == order.Failed
	})
}

func TestExpiryScheduler_FiresAtDeadline(t *testing.T) {
	now := time.Now()
	resolver := new(MockResolver)
	scheduler := jobs.NewExpiryScheduler(resolver, fixedClock{now: now}, discardLogger())
	orderID := kernel.NewUUID()

	fired := make(chan time.Time, 1)
	resolver.On("Handle", mock.Anything, failedFor(orderID)).
		Run(func(mock.Arguments) { fired <- time.Now() }).
		Return(nil).Once()

	scheduler.ScheduleExpiry(orderID, now.Add(50*time.Millisecond))
	assert.Equal(t, 1, scheduler.Pending())

	select {
	case at := <-fired:
		assert.False(t, at.Before(now.Add(50*time.Millisecond)))
	case <-time.After(2 * time.Second):
		t.Fatal("expiry did not fire")
	}

	require.NoError(t, scheduler.Shutdown(context.Background()))
	assert.Zero(t, scheduler.Pending())
	resolver.AssertExpectations(t)
}

func TestExpiryScheduler_PastDeadlineFiresImmediately(t *testing.T) {
	now := time.Now()
	resolver := new(MockResolver)
	scheduler := jobs.NewExpiryScheduler(resolver, fixedClock{now: now}, discardLogger())
	orderID := kernel.NewUUID()

	fired := make(chan struct{})
	resolver.On("Handle", mock.Anything, failedFor(orderID)).
		Run(func(mock.Arguments) { close(fired) }).
		Return(nil).Once()

	scheduler.ScheduleExpiry(orderID, now.Add(-time.Hour))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("overdue expiry did not fire")
	}
	require.NoError(t, scheduler.Shutdown(context.Background()))
	resolver.AssertExpectations(t)
}

func TestExpiryScheduler_DeduplicatesByOrder(t *testing.T) {
	now := time.Now()
	resolver := new(MockResolver)
	scheduler := jobs.NewExpiryScheduler(resolver, fixedClock{now: now}, discardLogger())
	orderID := kernel.NewUUID()

	scheduler.ScheduleExpiry(orderID, now.Add(time.Hour))
	scheduler.ScheduleExpiry(orderID, now.Add(time.Minute))
	scheduler.ScheduleExpiry(kernel.NewUUID(), now.Add(time.Hour))

	assert.Equal(t, 2, scheduler.Pending())
	require.NoError(t, scheduler.Shutdown(context.Background()))
	resolver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestExpiryScheduler_ResolverErrorIsLogged(t *testing.T) {
	now := time.Now()
	resolver := new(MockResolver)
	scheduler := jobs.NewExpiryScheduler(resolver, fixedClock{now: now}, discardLogger())
	orderID := kernel.NewUUID()

	fired := make(chan struct{})
	resolver.On("Handle", mock.Anything, failedFor(orderID)).
		Run(func(mock.Arguments) { close(fired) }).
		Return(errors.New("store unavailable")).Once()

	scheduler.ScheduleExpiry(orderID, now)
	<-fired

	require.NoError(t, scheduler.Shutdown(context.Background()))
	resolver.AssertExpectations(t)
}

func TestExpiryScheduler_ShutdownStopsPendingTimers(t *testing.T) {
	now := time.Now()
	resolver := new(MockResolver)
	scheduler := jobs.NewExpiryScheduler(resolver, fixedClock{now: now}, discardLogger())

	for range 5 {
		scheduler.ScheduleExpiry(kernel.NewUUID(), now.Add(100*time.Millisecond))
	}
	require.NoError(t, scheduler.Shutdown(context.Background()))
	assert.Zero(t, scheduler.Pending())

	scheduler.ScheduleExpiry(kernel.NewUUID(), now)
	assert.Zero(t, scheduler.Pending(), "Scheduling after shutdown should be ignored")

	time.Sleep(200 * time.Millisecond)
	resolver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestExpiryScheduler_ShutdownWaitsForRunningExpiry(t *testing.T) {
	now := time.Now()
	resolver := new(MockResolver)
	scheduler := jobs.NewExpiryScheduler(resolver, fixedClock{now: now}, discardLogger())
	orderID := kernel.NewUUID()

	started := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	var mu sync.Mutex
	resolver.On("Handle", mock.Anything, failedFor(orderID)).
		Run(func(mock.Arguments) {
			close(started)
			<-release
			mu.Lock()
			finished = true
			mu.Unlock()
		}).
		Return(nil).Once()

	scheduler.ScheduleExpiry(orderID, now)
	<-started

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(release)
	}()
	require.NoError(t, scheduler.Shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, finished)
}

func TestExpiryScheduler_ShutdownTimeoutCancelsExpiry(t *testing.T) {
	now := time.Now()
	resolver := new(MockResolver)
	scheduler := jobs.NewExpiryScheduler(resolver, fixedClock{now: now}, discardLogger())
	orderID := kernel.NewUUID()

	started := make(chan struct{})
	resolver.On("Handle", mock.Anything, failedFor(orderID)).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(context.Canceled).Once()

	scheduler.ScheduleExpiry(orderID, now)
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := scheduler.Shutdown(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
