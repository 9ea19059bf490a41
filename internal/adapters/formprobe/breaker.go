package formprobe

import (
	"sync"
	"time"
)

// State is a circuit breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a Breaker.
type BreakerConfig struct {
	// MaxFailures consecutive failed probes open the circuit.
	MaxFailures int

	// OpenFor is how long the circuit stays open before one trial probe.
	OpenFor time.Duration
}

// Breaker stops probing an endpoint that keeps failing. While open,
// readiness reports the endpoint as unavailable without a network call.
//
//   - Closed to Open after MaxFailures consecutive failures
//   - Open to HalfOpen once OpenFor has passed; one probe is let through
//   - HalfOpen to Closed on success, back to Open on failure
type Breaker struct {
	mu          sync.Mutex
	state       State
	failures    int
	trial       bool
	lastFailure time.Time
	cfg         BreakerConfig

	onStateChange func(from, to State)
	now           func() time.Time
}

// NewBreaker creates a closed breaker.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 1
	}

	return &Breaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers a callback run synchronously on each transition.
func (b *Breaker) OnStateChange(fn func(from, to State)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.onStateChange = fn
}

// Allow reports whether a probe may run now.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true
	case StateOpen:
		if b.now().Sub(b.lastFailure) < b.cfg.OpenFor {
			return false
		}

		b.transitionTo(StateHalfOpen)
		b.trial = true

		return true
	case StateHalfOpen:
		if b.trial {
			return false
		}

		b.trial = true

		return true
	default:
		return false
	}
}

// RecordSuccess records a reachable endpoint.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.trial = false

	if b.state == StateHalfOpen {
		b.transitionTo(StateClosed)
	}
}

// RecordFailure records an unreachable endpoint.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailure = b.now()
	b.trial = false

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.MaxFailures {
			b.transitionTo(StateOpen)
		}
	case StateHalfOpen:
		b.transitionTo(StateOpen)
	}
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// transitionTo must be called with the lock held.
func (b *Breaker) transitionTo(to State) {
	if b.state == to {
		return
	}

	from := b.state
	b.state = to
	b.failures = 0

	if b.onStateChange != nil {
		b.onStateChange(from, to)
	}
}
