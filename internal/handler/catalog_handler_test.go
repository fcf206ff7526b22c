package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facturo/internal/catalog"
	"facturo/internal/handler"
)

func newCatalogHandler() *handler.CatalogHandler {
	return handler.NewCatalogHandler(catalog.Default(), 0.7)
}

func TestCatalogHandler_Match_Exact(t *testing.T) {
	h := newCatalogHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/catalog/match", map[string]interface{}{"phrase": "iPhone"})

	h.Match(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Matched bool                 `json:"matched"`
			Result  *catalog.MatchResult `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Matched)
	require.NotNil(t, resp.Data.Result)
	assert.Equal(t, "Smartphones", resp.Data.Result.Category)
	assert.Equal(t, 1.0, resp.Data.Result.Confidence)
}

func TestCatalogHandler_Match_CustomThreshold(t *testing.T) {
	h := newCatalogHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/catalog/match",
		map[string]interface{}{"phrase": "Samsng Galxy", "threshold": 0.6})

	h.Match(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Matched bool `json:"matched"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Matched)
}

func TestCatalogHandler_Match_NoMatch(t *testing.T) {
	h := newCatalogHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/catalog/match", map[string]interface{}{"phrase": "zzzqqqxxx"})

	h.Match(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Matched bool                 `json:"matched"`
			Result  *catalog.MatchResult `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Matched)
	assert.Nil(t, resp.Data.Result)
}

func TestCatalogHandler_Match_MissingPhrase(t *testing.T) {
	h := newCatalogHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/catalog/match", map[string]interface{}{})

	h.Match(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_AddAndListBrands(t *testing.T) {
	h := newCatalogHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/catalog/brands",
		map[string]string{"category": "Smartphones", "brand": "Fairphone"})

	h.AddBrand(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodGet, "/api/v1/catalog/brands", nil)

	h.ListBrands(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Brands []string `json:"brands"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.Brands, "Fairphone")
	assert.Contains(t, resp.Data.Brands, "Nike")
}
