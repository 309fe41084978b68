package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/morerealm/vrlens-api/internal/models"
	"github.com/morerealm/vrlens-api/internal/service"
	"github.com/morerealm/vrlens-api/internal/utils"
)

// CatalogHandler handles the customer-facing product endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /products. The body is a bare JSON array of
// active products; no products means an empty array, never an error.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListPublicProducts(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("fetch products failed")
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// A wrong-typed basePrice is a price problem to the caller, not a
		// generic body problem.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "basePrice" {
			utils.Error(c, http.StatusBadRequest, service.ErrInvalidPrice.Message)
			return
		}
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), input)
	if err != nil {
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			utils.Error(c, http.StatusBadRequest, ve.Message)
			return
		}
		log.Error().Err(err).Msg("create product failed")
		utils.Error(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /products/:id. Inactive products read as absent.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.catalog.GetPublicProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Str("product_id", id).Msg("fetch product failed")
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, product)
}
