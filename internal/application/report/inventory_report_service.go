package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/toystore/backend/internal/domain/catalog"
	"github.com/toystore/backend/internal/domain/partner"
	"github.com/toystore/backend/internal/domain/report"
	"github.com/toystore/backend/internal/domain/shared"
)

// CriticalInventoryItem is one row of the critical inventory report
type CriticalInventoryItem struct {
	ID            int64           `json:"id"`
	ToyName       string          `json:"toy_name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	InStock       bool            `json:"in_stock"`
	SupplierName  *string         `json:"supplier_name"`
	SupplierEmail *string         `json:"supplier_email"`
	Reason        string          `json:"reason"`
}

// InventoryReportService produces inventory reports
type InventoryReportService struct {
	toyRepo      catalog.ToyRepository
	supplierRepo partner.SupplierRepository
}

// NewInventoryReportService creates a new InventoryReportService
func NewInventoryReportService(toyRepo catalog.ToyRepository, supplierRepo partner.SupplierRepository) *InventoryReportService {
	return &InventoryReportService{
		toyRepo:      toyRepo,
		supplierRepo: supplierRepo,
	}
}

// CriticalInventory returns every out-of-stock or high-value toy, joined
// with its supplier's contact details, ordered out-of-stock first and then
// by price descending. Results are computed on demand, never cached.
func (s *InventoryReportService) CriticalInventory(ctx context.Context) ([]CriticalInventoryItem, error) {
	filter := shared.Filter{OrderBy: "id", OrderDir: "asc"}
	toys, err := s.toyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	type row struct {
		item       CriticalInventoryItem
		supplierID *int64
	}

	rows := make([]row, 0)
	supplierIDs := make([]int64, 0)
	seen := make(map[int64]bool)

	for i := range toys {
		toy := &toys[i]
		critical, reason := report.Classify(toy.InStock, toy.Price)
		if !critical {
			continue
		}

		rows = append(rows, row{
			item: CriticalInventoryItem{
				ID:       toy.ID,
				ToyName:  toy.ToyName,
				Category: toy.Category,
				Price:    toy.Price,
				InStock:  toy.InStock,
				Reason:   reason,
			},
			supplierID: toy.SupplierID,
		})

		if toy.SupplierID != nil && !seen[*toy.SupplierID] {
			seen[*toy.SupplierID] = true
			supplierIDs = append(supplierIDs, *toy.SupplierID)
		}
	}

	byID := make(map[int64]*partner.Supplier, len(supplierIDs))
	if len(supplierIDs) > 0 {
		suppliers, err := s.supplierRepo.FindByIDs(ctx, supplierIDs)
		if err != nil {
			return nil, err
		}
		for i := range suppliers {
			byID[suppliers[i].ID] = &suppliers[i]
		}
	}

	items := make([]CriticalInventoryItem, 0, len(rows))
	for _, r := range rows {
		if r.supplierID != nil {
			if supplier, ok := byID[*r.supplierID]; ok {
				r.item.SupplierName = &supplier.Name
				r.item.SupplierEmail = &supplier.Email
			}
		}
		items = append(items, r.item)
	}

	// Out-of-stock items first, then by price descending
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].InStock != items[b].InStock {
			return !items[a].InStock
		}
		return items[a].Price.GreaterThan(items[b].Price)
	})

	return items, nil
}
