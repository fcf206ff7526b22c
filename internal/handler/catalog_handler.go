package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"facturo/internal/catalog"
)

// CatalogHandler handles product catalog endpoints.
type CatalogHandler struct {
	catalog   *catalog.Catalog
	threshold float64
}

// NewCatalogHandler creates a new CatalogHandler. threshold is the
// default confidence floor used when a match request omits one.
func NewCatalogHandler(cat *catalog.Catalog, threshold float64) *CatalogHandler {
	if threshold <= 0 {
		threshold = catalog.DefaultThreshold
	}
	return &CatalogHandler{catalog: cat, threshold: threshold}
}

type matchRequest struct {
	Phrase    string  `json:"phrase" binding:"required"`
	Threshold float64 `json:"threshold"`
}

type addBrandRequest struct {
	Category string `json:"category" binding:"required"`
	Brand    string `json:"brand" binding:"required"`
}

// Match handles POST /api/v1/catalog/match
func (h *CatalogHandler) Match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "phrase field is required")
		return
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = h.threshold
	}

	result := h.catalog.Match(req.Phrase, threshold)
	RespondOK(c, gin.H{
		"matched": result != nil,
		"result":  result,
	})
}

// AddBrand handles POST /api/v1/catalog/brands
func (h *CatalogHandler) AddBrand(c *gin.Context) {
	var req addBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "category and brand fields are required")
		return
	}

	h.catalog.AddBrand(req.Category, req.Brand)
	RespondCreated(c, gin.H{"category": req.Category, "brand": req.Brand})
}

// ListBrands handles GET /api/v1/catalog/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	RespondOK(c, gin.H{"brands": h.catalog.AllBrands()})
}
