package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	g "maragu.dev/gomponents"

	"github.com/truepath/advocates-site/internal/adapters/http/dto"
	"github.com/truepath/advocates-site/internal/adapters/http/middleware"
	"github.com/truepath/advocates-site/internal/domain"
	"github.com/truepath/advocates-site/internal/platform/logging"
	"github.com/truepath/advocates-site/internal/platform/telemetry"
	"github.com/truepath/advocates-site/internal/view"
)

const htmlContentType = "text/html; charset=utf-8"

// PageHandler serves the rendered pages.
type PageHandler struct {
	site       *domain.Site
	opts       view.PageOptions
	thanksPath string
	metrics    *PageMetrics
}

// NewPageHandler creates a page handler. thanksPath is where the contact
// form handler sends visitors back to.
func NewPageHandler(site *domain.Site, opts view.PageOptions, thanksPath string, metrics *PageMetrics) *PageHandler {
	if thanksPath == "" {
		thanksPath = "/thanks"
	}

	return &PageHandler{
		site:       site,
		opts:       opts,
		thanksPath: thanksPath,
		metrics:    metrics,
	}
}

// Home serves the single marketing page.
func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, view.PageHome, view.HomePage(h.site, h.opts))
}

// Thanks serves the acknowledgement page.
func (h *PageHandler) Thanks(c *gin.Context) {
	h.render(c, http.StatusOK, view.PageThanks, view.ThanksPage(h.site, h.opts))
}

// NotFound answers unknown paths: an envelope for API paths, a page
// otherwise.
func (h *PageHandler) NotFound(c *gin.Context) {
	if middleware.WantsJSON(c) {
		dto.RespondWithError(c, domain.NewNotFoundError("route", c.Request.URL.Path))
		return
	}

	h.render(c, http.StatusNotFound, view.PageNotFound, view.NotFoundPage(h.site, h.opts))
}

// RegisterRoutes registers the page routes and the embedded assets.
func (h *PageHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", h.Home)
	engine.HEAD("/", h.Home)
	engine.GET(h.thanksPath, h.Thanks)
	engine.StaticFS(staticPrefix(h.opts), http.FS(view.Static()))
	engine.NoRoute(h.NotFound)
}

func staticPrefix(opts view.PageOptions) string {
	if opts.StaticPrefix != "" {
		return opts.StaticPrefix
	}

	return view.DefaultStaticPrefix
}

// render buffers the document so a failure can still become a 500.
func (h *PageHandler) render(c *gin.Context, status int, page string, node g.Node) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "view.render", attribute.String("page", page))
	defer span.End()

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		span.RecordError(err)
		h.metrics.failed(page)
		logging.FromContext(ctx).Error("page render failed",
			slog.String("page", page),
			slog.Any("error", err),
		)
		c.AbortWithStatus(http.StatusInternalServerError)

		return
	}

	h.metrics.rendered(page)
	c.Data(status, htmlContentType, buf.Bytes())
}
