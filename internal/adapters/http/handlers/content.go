package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truepath/advocates-site/internal/adapters/http/dto"
	"github.com/truepath/advocates-site/internal/domain"
)

// ContentHandler serves the content model as JSON.
type ContentHandler struct {
	site *domain.Site
	meta dto.ContentMeta
}

// NewContentHandler creates a content handler.
func NewContentHandler(site *domain.Site, meta dto.ContentMeta) *ContentHandler {
	return &ContentHandler{site: site, meta: meta}
}

// Get handles GET /api/v1/content. ?section=<id> narrows the response to
// one section.
func (h *ContentHandler) Get(c *gin.Context) {
	if err := c.Request.Context().Err(); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	var q dto.ContentQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	if q.Section != "" {
		h.section(c, q.Section)
		return
	}

	c.JSON(http.StatusOK, dto.ContentResponse{Site: h.site, Meta: h.meta})
}

// Section handles GET /api/v1/content/sections/:id.
func (h *ContentHandler) Section(c *gin.Context) {
	if err := c.Request.Context().Err(); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	h.section(c, c.Param("id"))
}

func (h *ContentHandler) section(c *gin.Context, id string) {
	resp, ok := dto.NewSectionResponse(h.site, id)
	if !ok {
		dto.RespondWithError(c, domain.NewNotFoundError("section", id))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the content routes on the API group.
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.Get)
	rg.GET("/content/sections/:id", h.Section)
}
