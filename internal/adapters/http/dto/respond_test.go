package dto

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/truepath/advocates-site/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.NewNotFoundError("section", "faq"), http.StatusNotFound, ErrorCodeNotFound},
		{"validation", domain.NewValidationError("section", "unknown"), http.StatusBadRequest, ErrorCodeValidation},
		{"unavailable", domain.NewUnavailableError("form endpoint", "down"), http.StatusServiceUnavailable, ErrorCodeUnavailable},
		{"deadline", fmt.Errorf("rendering: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, ErrorCodeTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrorCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMapDomainError_Nil(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestMapDomainError_ValidationDetails(t *testing.T) {
	_, resp := MapDomainError(domain.NewValidationError("section", "unknown section"))

	assert.Equal(t, map[string]string{"section": "unknown section"}, resp.Error.Details)
}

func TestMapDomainError_InternalHidesCause(t *testing.T) {
	_, resp := MapDomainError(errors.New("db password is hunter2"))

	assert.NotContains(t, resp.Error.Message, "hunter2")
}

func TestRespondWithErrorCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)

	RespondWithErrorCode(c, ErrorCodeBadRequest, "bad query")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, c.IsAborted())
	assert.Contains(t, w.Body.String(), `"BAD_REQUEST"`)
}
