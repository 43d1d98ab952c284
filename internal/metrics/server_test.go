package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iyhunko/inventory-manager/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewServer(t *testing.T) {
	// given
	ProductsCreated.Inc()
	server := NewServer(&config.Config{MetricsServer: config.Server{Port: "9090"}})

	// when
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	// then
	assert.Equal(t, ":9090", server.Addr)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "products_created_total")
}
