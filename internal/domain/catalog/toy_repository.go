package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/toystore/backend/internal/domain/shared"
)

// ToyRepository defines the interface for toy persistence
type ToyRepository interface {
	// FindByID finds a toy by its ID
	FindByID(ctx context.Context, id int64) (*Toy, error)

	// FindAll finds all toys matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Toy, error)

	// FindByCategory finds all toys with the given (normalized) category
	FindByCategory(ctx context.Context, category string) ([]Toy, error)

	// FindByPriceRange finds toys with price within the inclusive bounds.
	// Nil bounds are open; a non-empty categories slice restricts the result
	// to toys in any of those categories.
	FindByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal, categories []string) ([]Toy, error)

	// Save creates or updates a toy
	Save(ctx context.Context, toy *Toy) error

	// SaveAll persists multiple toys within a single transaction
	SaveAll(ctx context.Context, toys []*Toy) error

	// Delete deletes a toy
	Delete(ctx context.Context, id int64) error

	// Count counts toys matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountBySupplier counts the toys referencing a supplier
	CountBySupplier(ctx context.Context, supplierID int64) (int64, error)
}
