package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	catalogapp "github.com/toystore/backend/internal/application/catalog"
	partnerapp "github.com/toystore/backend/internal/application/partner"
	reportapp "github.com/toystore/backend/internal/application/report"
	"github.com/toystore/backend/internal/domain/catalog"
	"github.com/toystore/backend/internal/domain/partner"
	"github.com/toystore/backend/internal/infrastructure/persistence"
	"github.com/toystore/backend/internal/interfaces/http/dto"
	"github.com/toystore/backend/internal/interfaces/http/middleware"
	"github.com/toystore/backend/internal/interfaces/http/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires the full HTTP stack over an in-memory sqlite store
type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	middleware.SetupValidator()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&partner.Supplier{}, &catalog.Toy{}))

	supplierRepo := persistence.NewGormSupplierRepository(db)
	toyRepo := persistence.NewGormToyRepository(db)

	supplierService := partnerapp.NewSupplierService(supplierRepo, toyRepo)
	toyService := catalogapp.NewToyService(toyRepo, supplierRepo)
	reportService := reportapp.NewInventoryReportService(toyRepo, supplierRepo)

	supplierHandler := NewSupplierHandler(supplierService)
	toyHandler := NewToyHandler(toyService)
	reportHandler := NewReportHandler(reportService)

	engine := gin.New()
	r := router.NewRouter(engine)

	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.PATCH("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/toys", toyHandler.Create)
	catalogRoutes.GET("/toys", toyHandler.List)
	catalogRoutes.GET("/toys/:id", toyHandler.GetByID)
	catalogRoutes.PATCH("/toys/:id", toyHandler.Update)
	catalogRoutes.POST("/toys/category-sale", toyHandler.ApplyCategorySale)

	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/critical-inventory", reportHandler.CriticalInventory)

	r.Register(partnerRoutes).Register(catalogRoutes).Register(reportRoutes)
	r.Setup()

	return &testServer{engine: engine, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// createSupplier posts a supplier and returns its ID
func (s *testServer) createSupplier(t *testing.T, name, email, specialty string) int64 {
	t.Helper()

	w, resp := s.do(t, http.MethodPost, "/partner/suppliers", gin.H{
		"name":      name,
		"email":     email,
		"specialty": specialty,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := resp.Data.(map[string]interface{})
	return int64(data["id"].(float64))
}

// createToy posts a toy and returns its ID
func (s *testServer) createToy(t *testing.T, name, category string, price float64, inStock bool, supplierID int64) int64 {
	t.Helper()

	w, resp := s.do(t, http.MethodPost, "/catalog/toys", gin.H{
		"toy_name":    name,
		"category":    category,
		"price":       price,
		"in_stock":    inStock,
		"supplier_id": supplierID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := resp.Data.(map[string]interface{})
	return int64(data["id"].(float64))
}
