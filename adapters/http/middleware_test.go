package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

func newErrorTestRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.GET("/boom", func(c *gin.Context) {
		c.Error(err)
	})
	return router
}

func performRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestErrorMiddlewareStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperror.NewNotFound("profile", "abc"), http.StatusNotFound},
		{"invalid input", apperror.NewInvalidInput("bad payload", nil), http.StatusBadRequest},
		{"conflict", apperror.NewConflict("user", "github_user_name", "octocat"), http.StatusConflict},
		{"upstream", apperror.NewUpstream("fetch failed", nil), http.StatusBadGateway},
		{"internal", apperror.NewInternal("scan failed", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(t, newErrorTestRouter(tc.err), "/boom")

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
			assert.Contains(t, w.Body.String(), `"message"`)
		})
	}
}

func TestErrorMiddlewareUnknownErrorIsGeneric500(t *testing.T) {
	w := performRequest(t, newErrorTestRouter(errors.New("pgx: broken pipe")), "/boom")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "broken pipe")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestErrorMiddlewarePassesThroughCleanRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	w := performRequest(t, router, "/ok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UP")
}
