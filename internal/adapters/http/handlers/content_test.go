package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truepath/advocates-site/internal/adapters/http/dto"
	"github.com/truepath/advocates-site/internal/content"
)

func newContentRouter() *gin.Engine {
	handler := NewContentHandler(content.New(content.DefaultOptions()), dto.ContentMeta{
		ThanksURL:        "/thanks",
		CopyResetDelayMS: 1600,
	})

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	return router
}

func TestContentHandler_Get(t *testing.T) {
	w := serve(newContentRouter(), http.MethodGet, "/api/v1/content")

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ContentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, content.SiteName, resp.Site.Name)
	assert.Len(t, resp.Site.Services, 9)
	assert.Equal(t, int64(1600), resp.Meta.CopyResetDelayMS)
	assert.Equal(t, "/thanks", resp.Meta.ThanksURL)
}

func TestContentHandler_Sections(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "path section", path: "/api/v1/content/sections/pricing", wantStatus: http.StatusOK, wantBody: `"title":"Simple Pricing"`},
		{name: "query section", path: "/api/v1/content?section=donate", wantStatus: http.StatusOK, wantBody: `"copyValue":"truepathadvocates26@gmail.com"`},
		{name: "unknown path section", path: "/api/v1/content/sections/faq", wantStatus: http.StatusNotFound, wantBody: `"code":"NOT_FOUND"`},
		{name: "invalid query section", path: "/api/v1/content?section=faq", wantStatus: http.StatusBadRequest, wantBody: `"section":"must be one of`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newContentRouter(), http.MethodGet, tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestContentHandler_ExpiredDeadline(t *testing.T) {
	handler := NewContentHandler(content.New(content.DefaultOptions()), dto.ContentMeta{})

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/content", nil).WithContext(ctx)

	handler.Get(c)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"TIMEOUT"`)
}
