package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/morerealm/vrlens-api/internal/models"
	"github.com/morerealm/vrlens-api/internal/service"
	"github.com/morerealm/vrlens-api/internal/utils"
)

// AdminCatalogHandler serves the admin panel: full product listing
// (inactive included) and dashboard stats.
type AdminCatalogHandler struct {
	catalog *service.CatalogService
}

// NewAdminCatalogHandler constructs an AdminCatalogHandler.
func NewAdminCatalogHandler(catalog *service.CatalogService) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalog: catalog}
}

// ListProducts handles GET /admin/products.
func (h *AdminCatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListAllProductsForAdmin(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("fetch admin products failed")
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetStats handles GET /admin/stats.
func (h *AdminCatalogHandler) GetStats(c *gin.Context) {
	stats, err := h.catalog.AdminStats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("fetch catalog stats failed")
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
