package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/truepath/advocates-site/internal/adapters/http/dto"
	"github.com/truepath/advocates-site/internal/platform/logging"
)

const internalErrorPage = `<!doctype html><html lang="en"><head><meta charset="utf-8">` +
	`<title>Something went wrong</title></head><body><h1>Something went wrong</h1>` +
	`<p><a href="/">Go to the home page</a></p></body></html>`

// Recovery seeds the request context with logger, then catches panics from
// later handlers, logs them with the stack, and answers 500. JSON paths get
// the error envelope; pages get a minimal HTML document. It must be first in
// the chain.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		defer func() {
			r := recover()
			if r == nil {
				return
			}

			traceID := TraceID(c)

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String("trace_id", traceID),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			if !WantsJSON(c) {
				c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(internalErrorPage))
				c.Abort()

				return
			}

			errResp := dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred")
			errResp.TraceID = traceID
			c.AbortWithStatusJSON(http.StatusInternalServerError, errResp)
		}()

		c.Next()
	}
}

// WantsJSON reports whether the request targets a machine endpoint (the
// API or the operational routes) rather than a page.
func WantsJSON(c *gin.Context) bool {
	p := c.Request.URL.Path

	return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/-/")
}

// TraceID returns the OpenTelemetry trace ID of the request, if any.
func TraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}
