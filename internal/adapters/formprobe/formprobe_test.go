package formprobe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truepath/advocates-site/internal/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func statusServer(t *testing.T, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newProbe(t *testing.T, url string, breaker BreakerConfig) *Probe {
	t.Helper()

	p, err := New(Config{
		URL:      url,
		Timeout:  time.Second,
		Attempts: 3,
		Backoff:  time.Millisecond,
		Breaker:  breaker,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	return p
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(Config{})
	assert.True(t, domain.IsValidation(err))
}

func TestCheck_Reachable(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusMethodNotAllowed, http.StatusNotFound} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var hits atomic.Int32
			p := newProbe(t, statusServer(t, status, &hits).URL, BreakerConfig{MaxFailures: 2, OpenFor: time.Minute})

			require.NoError(t, p.Check(context.Background()))
			assert.Equal(t, int32(1), hits.Load())
			assert.Equal(t, CheckName, p.Name())
		})
	}
}

func TestCheck_ServerErrorRetriesThenFails(t *testing.T) {
	var hits atomic.Int32
	p := newProbe(t, statusServer(t, http.StatusBadGateway, &hits).URL, BreakerConfig{MaxFailures: 5, OpenFor: time.Minute})

	err := p.Check(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, StateClosed, p.State())
}

func TestCheck_CircuitOpensAndSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	p := newProbe(t, statusServer(t, http.StatusServiceUnavailable, &hits).URL, BreakerConfig{MaxFailures: 2, OpenFor: time.Minute})

	require.Error(t, p.Check(context.Background()))
	require.Error(t, p.Check(context.Background()))
	assert.Equal(t, StateOpen, p.State())

	before := hits.Load()

	err := p.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit open")
	assert.Equal(t, before, hits.Load())
}

func TestCheck_CancelledContext(t *testing.T) {
	var hits atomic.Int32
	p := newProbe(t, statusServer(t, http.StatusOK, &hits).URL, BreakerConfig{MaxFailures: 3})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Check(ctx)
	require.Error(t, err)
	assert.Zero(t, hits.Load())
}

func TestBreaker_Transitions(t *testing.T) {
	now := time.Unix(0, 0)

	var transitions []string

	b := NewBreaker(BreakerConfig{MaxFailures: 2, OpenFor: 10 * time.Second})
	b.now = func() time.Time { return now }
	b.OnStateChange(func(from, to State) {
		transitions = append(transitions, from.String()+">"+to.String())
	})

	require.True(t, b.Allow())
	b.RecordFailure()
	assert.Equal(t, StateClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())

	now = now.Add(10 * time.Second)
	require.True(t, b.Allow(), "trial probe after open period")
	assert.False(t, b.Allow(), "only one trial at a time")

	b.RecordFailure()
	assert.Equal(t, StateOpen, b.State())

	now = now.Add(10 * time.Second)
	require.True(t, b.Allow())
	b.RecordSuccess()
	assert.Equal(t, StateClosed, b.State())

	assert.Equal(t, []string{
		"closed>open",
		"open>half-open",
		"half-open>open",
		"open>half-open",
		"half-open>closed",
	}, transitions)
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	b := NewBreaker(BreakerConfig{MaxFailures: 2, OpenFor: time.Minute})

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	assert.Equal(t, StateClosed, b.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
