package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("http_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "http_test"))
	router.GET("/v1/accounts/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.DELETE("/v1/accounts/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, id := range []string{"a", "b", "c"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/accounts/a", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	output := scrape(t, provider)

	assertBizMetricLine(
		t,
		output,
		`http_test_http_requests_total`,
		`method="GET".*path="/v1/accounts/:id".*status_code="200"`,
		`3`,
	)
	assertBizMetricLine(
		t,
		output,
		`http_test_http_requests_total`,
		`method="DELETE".*path="/v1/accounts/:id".*status_code="204"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`http_test_http_requests_total`,
		`path="unknown".*status_code="404"`,
		`1`,
	)
	assert.NotContains(t, output, `path="/v1/accounts/a"`)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/v1/accounts/:id", sanitizePath("/v1/accounts/:id"))
	assert.Equal(t, "unknown", sanitizePath(""))
	assert.Equal(t, "/", sanitizePath("/"))
}
