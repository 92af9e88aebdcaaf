package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
)

// ExpiryScheduler fails active orders at their pickup deadline.
//
// Each order gets one time.AfterFunc timer; scheduling an order that already
// has a pending timer is a no-op. A fired timer resolves the order as failed
// through the regular resolution path, which treats an order that is no
// longer active as already handled.
type ExpiryScheduler struct {
	resolver commands.OrderResolver
	clock    ports.Clock
	logger   *slog.Logger

	// ctx is handed to expirations; cancelled when Shutdown gives up waiting.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timers   map[kernel.UUID]*time.Timer
	inFlight sync.WaitGroup
	closed   bool
}

func NewExpiryScheduler(resolver commands.OrderResolver, clock ports.Clock, logger *slog.Logger) *ExpiryScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &ExpiryScheduler{
		resolver: resolver,
		clock:    clock,
		logger:   logger.With("component", "expiry_scheduler"),
		ctx:      ctx,
		cancel:   cancel,
		timers:   make(map[kernel.UUID]*time.Timer),
	}
}

// ScheduleExpiry arms a timer for orderID. Deadlines in the past fire
// immediately. Calls after Shutdown are ignored.
func (s *ExpiryScheduler) ScheduleExpiry(orderID kernel.UUID, deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, ok := s.timers[orderID]; ok {
		return
	}

	delay := deadline.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}

	s.timers[orderID] = time.AfterFunc(delay, func() {
		s.expire(orderID)
	})
	s.logger.DebugContext(s.ctx, "Expiry scheduled", "order_id", orderID.String(), "deadline", deadline)
}

// Pending returns the number of armed timers.
func (s *ExpiryScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown stops all pending timers and waits for running expirations.
// If ctx ends first, running expirations are cancelled and ctx.Err is returned.
func (s *ExpiryScheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-done
		return ctx.Err()
	}
}

func (s *ExpiryScheduler) expire(orderID kernel.UUID) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.timers, orderID)
	s.inFlight.Add(1)
	s.mu.Unlock()
	defer s.inFlight.Done()

	cmd, err := commands.NewResolveOrderCommand(orderID, order.Failed)
	if err != nil {
		s.logger.ErrorContext(s.ctx, "Invalid expiry", "order_id", orderID.String(), "error", err)
		return
	}

	if err := s.resolver.Handle(s.ctx, cmd); err != nil {
		s.logger.ErrorContext(s.ctx, "Order expiry failed", "order_id", orderID.String(), "error", err)
		return
	}
	s.logger.InfoContext(s.ctx, "Order expired", "order_id", orderID.String())
}
