package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morerealm/vrlens-api/internal/models"
	"github.com/morerealm/vrlens-api/internal/repository"
	"github.com/morerealm/vrlens-api/internal/service"
	"github.com/morerealm/vrlens-api/internal/utils"
)

// fakeStore is an in-memory service.ProductStore for handler tests.
type fakeStore struct {
	products  []models.Product
	createErr error
	listErr   error
}

func (f *fakeStore) Create(_ context.Context, params repository.CreateProductParams) (*models.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	now := time.Now()
	p := models.Product{
		ID:          uuid.New().String(),
		Name:        params.Name,
		Description: params.Description,
		BasePrice:   params.BasePrice,
		Images:      params.Images,
		Active:      params.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeStore) ListActive(_ context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Product{}
	for _, p := range f.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Product{}, f.products...), nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, utils.ErrProductNotFound
}

func (f *fakeStore) CountByStatus(_ context.Context) (*models.CatalogStats, error) {
	stats := &models.CatalogStats{}
	for _, p := range f.products {
		stats.Total++
		if p.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogSvc := service.NewCatalogService(store, nil)
	catalog := NewCatalogHandler(catalogSvc)
	admin := NewAdminCatalogHandler(catalogSvc)

	router := gin.New()
	router.GET("/products", catalog.ListProducts)
	router.POST("/products", catalog.CreateProduct)
	router.GET("/products/:id", catalog.GetProduct)
	router.GET("/admin/products", admin.ListProducts)
	router.GET("/admin/stats", admin.GetStats)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProductReturns201(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/products", `{"name":"Lens A","basePrice":49.5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Lens A", product.Name)
	assert.Equal(t, 49.5, product.BasePrice)
	assert.Nil(t, product.Description)
	assert.Empty(t, product.Images)
	assert.True(t, product.Active)
}

func TestCreateProductMissingName(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/products", `{"basePrice":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name and base price are required"}`, w.Body.String())
	assert.Empty(t, store.products)
}

func TestCreateProductMissingPrice(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/products", `{"name":"Lens A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name and base price are required"}`, w.Body.String())
}

func TestCreateProductNegativePrice(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/products", `{"name":"Lens B","basePrice":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Base price must be a valid positive number"}`, w.Body.String())
	assert.Empty(t, store.products)
}

func TestCreateProductNonNumericPrice(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/products", `{"name":"Lens B","basePrice":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Base price must be a valid positive number"}`, w.Body.String())
	assert.Empty(t, store.products)
}

func TestCreateProductMalformedBody(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestCreateProductStoreFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("connection refused")}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/products", `{"name":"Lens A","basePrice":49.5}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to create product"}`, w.Body.String())
}

func TestListProductsEmptyArray(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	w := doJSON(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListProductsReturnsOnlyActive(t *testing.T) {
	store := &fakeStore{
		products: []models.Product{
			{ID: uuid.New().String(), Name: "Active Lens", BasePrice: 89.99, Active: true},
			{ID: uuid.New().String(), Name: "Retired Lens", BasePrice: 49.99, Active: false},
		},
	}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Active Lens", products[0].Name)
}

func TestListProductsStoreFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch products"}`, w.Body.String())
}

func TestGetProductByID(t *testing.T) {
	active := models.Product{ID: uuid.New().String(), Name: "Lens A", BasePrice: 49.5, Active: true}
	inactive := models.Product{ID: uuid.New().String(), Name: "Retired Lens", Active: false}
	store := &fakeStore{products: []models.Product{active, inactive}}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodGet, "/products/"+active.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, active.ID, got.ID)

	// Inactive products must be indistinguishable from absent ones.
	w = doJSON(t, router, http.MethodGet, "/products/"+inactive.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/products/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminListIncludesInactive(t *testing.T) {
	store := &fakeStore{
		products: []models.Product{
			{ID: uuid.New().String(), Name: "Active Lens", Active: true},
			{ID: uuid.New().String(), Name: "Retired Lens", Active: false},
		},
	}
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodGet, "/admin/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	w = doJSON(t, router, http.MethodGet, "/admin/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":2,"active":1,"inactive":1}`, w.Body.String())
}
