package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordSpans installs an in-memory tracer provider for the test.
func recordSpans(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	return exporter
}

func TestNew_Disabled(t *testing.T) {
	for name, cfg := range map[string]*Config{
		"nil config": nil,
		"disabled":   {Enabled: false, ServiceName: "site"},
	} {
		t.Run(name, func(t *testing.T) {
			p, err := New(context.Background(), cfg)
			require.NoError(t, err)

			assert.False(t, p.Enabled())
			assert.NoError(t, p.Shutdown(context.Background()))
		})
	}
}

func TestMiddleware_TracesPagesNotProbes(t *testing.T) {
	exporter := recordSpans(t)

	router := gin.New()
	router.Use(Middleware("truepath-site-test")...)
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	page := httptest.NewRecorder()
	router.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/", nil))

	probe := httptest.NewRecorder()
	router.ServeHTTP(probe, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Len(t, page.Header().Get(HeaderTraceID), 32)
	assert.Empty(t, probe.Header().Get(HeaderTraceID))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, page.Header().Get(HeaderTraceID), spans[0].SpanContext.TraceID().String())
}

func TestStartSpan(t *testing.T) {
	exporter := recordSpans(t)

	_, span := StartSpan(context.Background(), "view.render", attribute.String("page", "home"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "view.render", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("page", "home"))
}

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	assert.NotNil(t, m)
}
