package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

// Service defaults, used when ServiceConfig fields are zero.
const (
	defaultDispatchTimeout = 5 * time.Second
	defaultMaxInFlight     = 4
)

// errDeliveryFailed marks a Failed outcome inside the circuit breaker so
// repeated transport failures trip it. It never escapes Send.
var errDeliveryFailed = errors.New("notify: delivery failed")

// ServiceConfig tunes the dispatch service.
type ServiceConfig struct {
	// DispatchTimeout bounds each adapter call. A transport that hangs past
	// the deadline yields a Failed outcome instead of a hung caller.
	DispatchTimeout time.Duration

	// MaxInFlight caps concurrent adapter calls. Dispatch blocks on a local
	// daemon socket or OS API, so a burst of requests is funneled rather
	// than fanned out onto the transport.
	MaxInFlight int64
}

// Service wraps a Dispatcher with the process-wide dispatch discipline:
// a bounded wait per call, a cap on in-flight calls, and a circuit breaker
// that fails fast while the notification transport stays unreachable.
//
// Service holds no per-notification state; each Send operates on its own
// finalized Notification value, so it is safe for concurrent use.
type Service struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	sem        *semaphore.Weighted
	breaker    *gobreaker.CircuitBreaker[Outcome]
	timeout    time.Duration
}

// NewService creates a dispatch service around the given dispatcher.
// Zero config fields fall back to the package defaults.
func NewService(dispatcher Dispatcher, logger *slog.Logger, cfg ServiceConfig) *Service {
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = defaultDispatchTimeout
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = defaultMaxInFlight
	}

	breaker := gobreaker.NewCircuitBreaker[Outcome](gobreaker.Settings{
		Name:        "notify-dispatch",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Service{
		dispatcher: dispatcher,
		logger:     logger,
		sem:        semaphore.NewWeighted(cfg.MaxInFlight),
		breaker:    breaker,
		timeout:    cfg.DispatchTimeout,
	}
}

// Dispatcher returns the dispatcher the service was built with.
func (s *Service) Dispatcher() Dispatcher {
	return s.dispatcher
}

// Send finalizes the notification and hands it to the dispatcher. All
// failure is expressed in the returned Outcome; Send never panics and
// never returns an error.
func (s *Service) Send(ctx context.Context, n Notification) Outcome {
	n = n.Finalize()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return s.observe(n, Failedf("dispatch queue full: %v", err))
	}
	defer s.sem.Release(1)

	out, err := s.breaker.Execute(func() (Outcome, error) {
		out := s.deliver(ctx, n)
		if out.Status == StatusFailed {
			// Surface the failure to the breaker; the outcome itself is
			// still what callers see.
			return out, errDeliveryFailed
		}
		return out, nil
	})
	if err != nil && !errors.Is(err, errDeliveryFailed) {
		// Breaker open or half-open probe exhausted: fail fast without
		// touching the transport.
		out = Failedf("notification transport unavailable: %v", err)
	}

	return s.observe(n, out)
}

// deliver invokes the dispatcher from a separate goroutine so the deadline
// holds even for adapters whose transport ignores ctx. The goroutine is
// leaked only for as long as the wedged adapter call itself.
func (s *Service) deliver(ctx context.Context, n Notification) Outcome {
	done := make(chan Outcome, 1)
	go func() {
		done <- s.dispatcher.Deliver(ctx, n)
	}()

	select {
	case out := <-done:
		return out
	case <-ctx.Done():
		return Failedf("dispatch timed out: %v", ctx.Err())
	}
}

// observe logs the outcome and passes it through.
func (s *Service) observe(n Notification, out Outcome) Outcome {
	attrs := []any{
		"backend", s.dispatcher.Name(),
		"summary", n.summary,
		"timeout", n.timeout.String(),
		"status", string(out.Status),
	}

	switch out.Status {
	case StatusFailed:
		s.logger.Warn("notification dispatch failed", append(attrs, "reason", out.Reason)...)
	default:
		s.logger.Info("notification dispatched", attrs...)
	}

	return out
}
