package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clothinghub/internal/catalog"
	"clothinghub/internal/logger"
	"clothinghub/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cat, err := catalog.Load(catalog.Options{Logger: logger.NewNop()})
	require.NoError(t, err)

	srv := NewServer("0", cat, logger.NewNop())

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestListProducts(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/catalog/products")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.Greater(t, payload.Total, 0)
	assert.Len(t, payload.Products, payload.Total)
}

func TestGetProduct(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/catalog/products/nike-nk-501")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var product models.CatalogProduct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&product))

	assert.Equal(t, "nike-nk-501", product.ID)
	assert.Equal(t, "Nike", product.Brand)
}

func TestGetProductNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/catalog/products/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var payload ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "product not found", payload.Error)
}
