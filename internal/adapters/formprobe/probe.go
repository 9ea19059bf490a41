// Package formprobe checks that the third-party contact form handler is
// reachable. It is an optional readiness check: the site never submits the
// form itself, browsers post to the handler directly.
package formprobe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/truepath/advocates-site/internal/domain"
	"github.com/truepath/advocates-site/internal/platform/logging"
	"github.com/truepath/advocates-site/internal/ports"
)

const (
	instrumentationName = "github.com/truepath/advocates-site/formprobe"

	// CheckName is the name reported by /-/ready.
	CheckName = "form_endpoint"

	defaultTimeout  = 3 * time.Second
	defaultAttempts = 2
	defaultBackoff  = 200 * time.Millisecond
)

// Config configures a Probe.
type Config struct {
	// URL is the form handler endpoint.
	URL string

	// Timeout bounds each attempt.
	Timeout time.Duration

	// Attempts is the number of tries per check, including the first.
	Attempts int

	// Backoff is the base delay between attempts. Each wait is jittered by
	// up to a quarter either way.
	Backoff time.Duration

	Breaker BreakerConfig

	// Transport overrides the HTTP transport.
	Transport http.RoundTripper

	Logger *slog.Logger
}

// Probe implements ports.HealthChecker for the contact form handler.
type Probe struct {
	url      string
	http     *http.Client
	attempts int
	backoff  time.Duration
	breaker  *Breaker
	logger   *slog.Logger
	tracer   trace.Tracer
	checks   metric.Int64Counter
}

// New creates a probe.
func New(cfg Config) (*Probe, error) {
	if cfg.URL == "" {
		return nil, domain.NewValidationError("url", "form endpoint is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if cfg.Attempts <= 0 {
		cfg.Attempts = defaultAttempts
	}

	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "formprobe.Probe"), slog.String("url", cfg.URL))

	checks, err := otel.Meter(instrumentationName).Int64Counter(
		"form_endpoint.checks",
		metric.WithDescription("Form endpoint reachability checks by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating check counter: %w", err)
	}

	breaker := NewBreaker(cfg.Breaker)
	breaker.OnStateChange(func(from, to State) {
		logger.Warn("form endpoint circuit changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	return &Probe{
		url:      cfg.URL,
		http:     &http.Client{Timeout: cfg.Timeout, Transport: cfg.Transport},
		attempts: cfg.Attempts,
		backoff:  cfg.Backoff,
		breaker:  breaker,
		logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		checks:   checks,
	}, nil
}

// Name implements ports.HealthChecker.
func (p *Probe) Name() string {
	return CheckName
}

// State returns the circuit state.
func (p *Probe) State() State {
	return p.breaker.State()
}

// Check implements ports.HealthChecker. Any response below 500 counts as
// reachable; handlers commonly answer HEAD with 405.
func (p *Probe) Check(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "formprobe.Check", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if !p.breaker.Allow() {
		p.record(ctx, "circuit_open")
		span.SetStatus(codes.Error, "circuit open")

		return domain.NewUnavailableError("form endpoint", "circuit open")
	}

	var lastErr error

	for attempt := 0; attempt < p.attempts; attempt++ {
		if attempt > 0 {
			if err := p.wait(ctx, attempt); err != nil {
				lastErr = err
				break
			}
		}

		lastErr = p.try(ctx)
		if lastErr == nil || !retryable(lastErr) {
			break
		}

		logging.FromContextOr(ctx, p.logger).DebugContext(ctx, "form endpoint probe failed, retrying",
			slog.Int("attempt", attempt+1),
			slog.Any("error", lastErr),
		)
	}

	if lastErr != nil {
		p.breaker.RecordFailure()
		p.record(ctx, "failure")
		span.RecordError(lastErr)
		span.SetStatus(codes.Error, lastErr.Error())

		return domain.NewUnavailableError("form endpoint", lastErr.Error())
	}

	p.breaker.RecordSuccess()
	p.record(ctx, "success")

	return nil
}

func (p *Probe) try(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusInternalServerError {
		return &statusError{code: resp.StatusCode}
	}

	return nil
}

func (p *Probe) wait(ctx context.Context, attempt int) error {
	d := p.backoff << (attempt - 1)
	d += time.Duration(float64(d) * 0.25 * (rand.Float64()*2 - 1)) //nolint:gosec // jitter only

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (p *Probe) record(ctx context.Context, result string) {
	p.checks.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("form endpoint returned %d", e.code)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}

var _ ports.HealthChecker = (*Probe)(nil)
