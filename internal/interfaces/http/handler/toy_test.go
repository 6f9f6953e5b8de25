package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToyHandler_Create(t *testing.T) {
	s := newTestServer(t)
	id := s.createSupplier(t, "Fun Factory", "contact@funfactory.com", "Plush")

	w, resp := s.do(t, http.MethodPost, "/catalog/toys", gin.H{
		"toy_name":    "Teddy Bear",
		"category":    "plush",
		"price":       24.99,
		"supplier_id": id,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Teddy Bear", data["toy_name"])
	assert.Equal(t, "Plush", data["category"])
	assert.Equal(t, true, data["in_stock"])
}

func TestToyHandler_Create_SpecialtyMismatch(t *testing.T) {
	s := newTestServer(t)
	id := s.createSupplier(t, "Fun Factory", "contact@funfactory.com", "Plush")

	w, resp := s.do(t, http.MethodPost, "/catalog/toys", gin.H{
		"toy_name":    "Robot Kit",
		"category":    "Building",
		"price":       59.99,
		"supplier_id": id,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SPECIALTY_MISMATCH", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Plush")
	assert.Contains(t, resp.Error.Message, "Building")
}

func TestToyHandler_Create_SupplierNotFound(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(t, http.MethodPost, "/catalog/toys", gin.H{
		"toy_name":    "Teddy Bear",
		"category":    "Plush",
		"price":       24.99,
		"supplier_id": 999,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SUPPLIER_NOT_FOUND", resp.Error.Code)
}

func TestToyHandler_GetByID(t *testing.T) {
	s := newTestServer(t)
	supplierID := s.createSupplier(t, "Fun Factory", "contact@funfactory.com", "Plush")
	toyID := s.createToy(t, "Teddy Bear", "Plush", 24.99, true, supplierID)

	w, resp := s.do(t, http.MethodGet, "/catalog/toys/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(toyID), data["id"])
	assert.Equal(t, "Teddy Bear", data["toy_name"])
}

func TestToyHandler_GetByID_NotFound(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(t, http.MethodGet, "/catalog/toys/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestToyHandler_List(t *testing.T) {
	s := newTestServer(t)
	plush := s.createSupplier(t, "Fun Factory", "contact@funfactory.com", "Plush")
	building := s.createSupplier(t, "Brick Works", "sales@brickworks.com", "Building")
	s.createToy(t, "Teddy Bear", "Plush", 25, true, plush)
	s.createToy(t, "Bunny", "Plush", 80, true, plush)
	s.createToy(t, "Castle Set", "Building", 150, true, building)

	t.Run("plain list with meta", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/catalog/toys", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(3), resp.Meta.Total)
	})

	t.Run("price range filter", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/catalog/toys?min_price=50&max_price=200", nil)

		require.Equal(t, http.StatusOK, w.Code)
		items := resp.Data.([]interface{})
		assert.Len(t, items, 2)
	})

	t.Run("category filter", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/catalog/toys?category=plush", nil)

		require.Equal(t, http.StatusOK, w.Code)
		items := resp.Data.([]interface{})
		assert.Len(t, items, 2)
	})

	t.Run("invalid range", func(t *testing.T) {
		w, resp := s.do(t, http.MethodGet, "/catalog/toys?min_price=100&max_price=10", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_RANGE", resp.Error.Code)
	})
}

func TestToyHandler_Update(t *testing.T) {
	s := newTestServer(t)
	supplierID := s.createSupplier(t, "Fun Factory", "contact@funfactory.com", "Plush")
	s.createToy(t, "Teddy Bear", "Plush", 24.99, true, supplierID)

	w, resp := s.do(t, http.MethodPatch, "/catalog/toys/1", gin.H{
		"price":    19.99,
		"in_stock": false,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["in_stock"])
}

func TestToyHandler_Update_CategoryRechecksSpecialty(t *testing.T) {
	s := newTestServer(t)
	supplierID := s.createSupplier(t, "Fun Factory", "contact@funfactory.com", "Plush")
	s.createToy(t, "Teddy Bear", "Plush", 24.99, true, supplierID)

	w, resp := s.do(t, http.MethodPatch, "/catalog/toys/1", gin.H{
		"category": "Dolls",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SPECIALTY_MISMATCH", resp.Error.Code)
}

func TestToyHandler_ApplyCategorySale(t *testing.T) {
	s := newTestServer(t)
	supplierID := s.createSupplier(t, "Fun Factory", "contact@funfactory.com", "Plush")
	s.createToy(t, "Teddy Bear", "Plush", 100, true, supplierID)
	s.createToy(t, "Tiny Bear", "Plush", 12, true, supplierID)

	w, resp := s.do(t, http.MethodPost, "/catalog/toys/category-sale", gin.H{
		"category":            "plush",
		"discount_percentage": 25,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Plush", data["category"])
	assert.Equal(t, float64(2), data["updated_count"])

	// 100 discounts to 75; 12 would drop to 9 and is held at the 10 floor
	_, resp = s.do(t, http.MethodGet, "/catalog/toys/1", nil)
	assert.Equal(t, "75", resp.Data.(map[string]interface{})["price"])
	_, resp = s.do(t, http.MethodGet, "/catalog/toys/2", nil)
	assert.Equal(t, "10", resp.Data.(map[string]interface{})["price"])
}

func TestToyHandler_ApplyCategorySale_InvalidDiscount(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(t, http.MethodPost, "/catalog/toys/category-sale", gin.H{
		"category":            "Plush",
		"discount_percentage": 95,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_DISCOUNT", resp.Error.Code)
}

func TestToyHandler_ApplyCategorySale_EmptyCategory(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(t, http.MethodPost, "/catalog/toys/category-sale", gin.H{
		"category":            "Outdoor",
		"discount_percentage": 20,
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["updated_count"])
}
