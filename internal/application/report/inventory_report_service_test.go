package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/toystore/backend/internal/domain/catalog"
	"github.com/toystore/backend/internal/domain/partner"
	"github.com/toystore/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockToyRepositoryForReport is a mock implementation of ToyRepository
type MockToyRepositoryForReport struct {
	mock.Mock
}

func (m *MockToyRepositoryForReport) FindByID(ctx context.Context, id int64) (*catalog.Toy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Toy), args.Error(1)
}

func (m *MockToyRepositoryForReport) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Toy, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Toy), args.Error(1)
}

func (m *MockToyRepositoryForReport) FindByCategory(ctx context.Context, category string) ([]catalog.Toy, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]catalog.Toy), args.Error(1)
}

func (m *MockToyRepositoryForReport) FindByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal, categories []string) ([]catalog.Toy, error) {
	args := m.Called(ctx, minPrice, maxPrice, categories)
	return args.Get(0).([]catalog.Toy), args.Error(1)
}

func (m *MockToyRepositoryForReport) Save(ctx context.Context, toy *catalog.Toy) error {
	args := m.Called(ctx, toy)
	return args.Error(0)
}

func (m *MockToyRepositoryForReport) SaveAll(ctx context.Context, toys []*catalog.Toy) error {
	args := m.Called(ctx, toys)
	return args.Error(0)
}

func (m *MockToyRepositoryForReport) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockToyRepositoryForReport) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockToyRepositoryForReport) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

// Verify interface compliance
var _ catalog.ToyRepository = (*MockToyRepositoryForReport)(nil)

// MockSupplierRepositoryForReport is a mock implementation of SupplierRepository
type MockSupplierRepositoryForReport struct {
	mock.Mock
}

func (m *MockSupplierRepositoryForReport) FindByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepositoryForReport) FindByName(ctx context.Context, name string) (*partner.Supplier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepositoryForReport) FindByIDs(ctx context.Context, ids []int64) ([]partner.Supplier, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepositoryForReport) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepositoryForReport) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepositoryForReport) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepositoryForReport) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepositoryForReport) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// Verify interface compliance
var _ partner.SupplierRepository = (*MockSupplierRepositoryForReport)(nil)

// =============================================================================
// Test Helper Functions
// =============================================================================

func reportToy(id int64, name string, price float64, inStock bool, supplierID *int64) catalog.Toy {
	var sid int64
	if supplierID != nil {
		sid = *supplierID
	}
	toy, _ := catalog.NewToy(name, "Plush", decimal.NewFromFloat(price), inStock, sid)
	toy.ID = id
	toy.SupplierID = supplierID
	return *toy
}

func int64Ptr(v int64) *int64 { return &v }

// =============================================================================
// CriticalInventory Tests
// =============================================================================

func TestInventoryReportService_CriticalInventory(t *testing.T) {
	mockToyRepo := new(MockToyRepositoryForReport)
	mockSupplierRepo := new(MockSupplierRepositoryForReport)
	service := NewInventoryReportService(mockToyRepo, mockSupplierRepo)

	ctx := context.Background()

	supplier, _ := partner.NewSupplier("Fun Factory", "contact@funfactory.com", "Plush")
	supplier.ID = 1

	toys := []catalog.Toy{
		reportToy(1, "Teddy Bear", 25, true, int64Ptr(1)),       // healthy, excluded
		reportToy(2, "Giant Castle", 350, true, int64Ptr(1)),    // high value
		reportToy(3, "Race Car", 45, false, int64Ptr(1)),        // out of stock
		reportToy(4, "Gold Chess Set", 500, false, nil),         // both, no supplier
		reportToy(5, "Puzzle Cube", 200, true, int64Ptr(1)),     // exactly 200, excluded
	}

	mockToyRepo.On("FindAll", ctx, shared.Filter{OrderBy: "id", OrderDir: "asc"}).Return(toys, nil)
	mockSupplierRepo.On("FindByIDs", ctx, []int64{1}).Return([]partner.Supplier{*supplier}, nil)

	items, err := service.CriticalInventory(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 3)

	// Out-of-stock rows first, ordered by price descending
	assert.Equal(t, int64(4), items[0].ID)
	assert.Equal(t, "Out of stock, High-value item (>200)", items[0].Reason)
	assert.Nil(t, items[0].SupplierName)
	assert.Nil(t, items[0].SupplierEmail)

	assert.Equal(t, int64(3), items[1].ID)
	assert.Equal(t, "Out of stock", items[1].Reason)
	assert.NotNil(t, items[1].SupplierName)
	assert.Equal(t, "Fun Factory", *items[1].SupplierName)
	assert.Equal(t, "contact@funfactory.com", *items[1].SupplierEmail)

	// In-stock high-value rows last
	assert.Equal(t, int64(2), items[2].ID)
	assert.Equal(t, "High-value item (>200)", items[2].Reason)

	mockToyRepo.AssertExpectations(t)
	mockSupplierRepo.AssertExpectations(t)
}

func TestInventoryReportService_CriticalInventory_Empty(t *testing.T) {
	mockToyRepo := new(MockToyRepositoryForReport)
	mockSupplierRepo := new(MockSupplierRepositoryForReport)
	service := NewInventoryReportService(mockToyRepo, mockSupplierRepo)

	ctx := context.Background()

	mockToyRepo.On("FindAll", ctx, shared.Filter{OrderBy: "id", OrderDir: "asc"}).Return([]catalog.Toy{}, nil)

	items, err := service.CriticalInventory(ctx)

	assert.NoError(t, err)
	assert.Empty(t, items)
	mockSupplierRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}
