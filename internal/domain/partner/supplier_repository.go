package partner

import (
	"context"

	"github.com/toystore/backend/internal/domain/shared"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID
	FindByID(ctx context.Context, id int64) (*Supplier, error)

	// FindByName finds a supplier by its exact name
	FindByName(ctx context.Context, name string) (*Supplier, error)

	// FindByIDs finds multiple suppliers by their IDs
	FindByIDs(ctx context.Context, ids []int64) ([]Supplier, error)

	// FindAll finds all suppliers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Delete deletes a supplier. The store blocks deletion while toys still
	// reference the supplier.
	Delete(ctx context.Context, id int64) error

	// Count counts suppliers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks if a supplier with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
