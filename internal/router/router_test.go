package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paisaflow/backend/internal/config"
	"github.com/paisaflow/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	loader, err := config.NewLoader("")
	require.Nil(t, err)

	r, err := router.Router(loader, t.TempDir())
	require.Nil(t, err)

	return r
}

func TestGetRoot(t *testing.T) {
	r := setupRouter(t)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "/healthz")
	assert.Contains(t, recorder.Body.String(), "/v1")
}

func TestGetVersion(t *testing.T) {
	r := setupRouter(t)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/version", nil)
	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "version")
}

func TestMethodNotAllowed(t *testing.T) {
	r := setupRouter(t)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodDelete, "/version", nil)
	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestMetrics(t *testing.T) {
	r := setupRouter(t)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}
