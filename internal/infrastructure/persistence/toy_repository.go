package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/toystore/backend/internal/domain/catalog"
	"github.com/toystore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormToyRepository implements ToyRepository using GORM
type GormToyRepository struct {
	db *gorm.DB
}

// NewGormToyRepository creates a new GormToyRepository
func NewGormToyRepository(db *gorm.DB) *GormToyRepository {
	return &GormToyRepository{db: db}
}

// FindByID finds a toy by its ID
func (r *GormToyRepository) FindByID(ctx context.Context, id int64) (*catalog.Toy, error) {
	var toy catalog.Toy
	if err := r.db.WithContext(ctx).First(&toy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &toy, nil
}

// FindAll finds all toys matching the filter
func (r *GormToyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Toy, error) {
	var toys []catalog.Toy
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Toy{}), filter)

	if err := query.Find(&toys).Error; err != nil {
		return nil, translateError(err)
	}
	return toys, nil
}

// FindByCategory finds all toys with the given category
func (r *GormToyRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Toy, error) {
	var toys []catalog.Toy
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&toys).Error; err != nil {
		return nil, translateError(err)
	}
	return toys, nil
}

// FindByPriceRange finds toys with price within the inclusive bounds,
// optionally restricted to a set of categories
func (r *GormToyRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal, categories []string) ([]catalog.Toy, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Toy{})

	if minPrice != nil {
		query = query.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("price <= ?", *maxPrice)
	}
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}

	var toys []catalog.Toy
	if err := query.Order("id ASC").Find(&toys).Error; err != nil {
		return nil, translateError(err)
	}
	return toys, nil
}

// Save creates or updates a toy
func (r *GormToyRepository) Save(ctx context.Context, toy *catalog.Toy) error {
	return translateError(r.db.WithContext(ctx).Save(toy).Error)
}

// SaveAll persists multiple toys within a single transaction
func (r *GormToyRepository) SaveAll(ctx context.Context, toys []*catalog.Toy) error {
	if len(toys) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, toy := range toys {
			if err := tx.Save(toy).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// Delete deletes a toy
func (r *GormToyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Toy{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts toys matching the filter
func (r *GormToyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.Toy{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// CountBySupplier counts the toys referencing a supplier
func (r *GormToyRepository) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Toy{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// applyFilter applies filter options to the query. A zero PageSize means
// no pagination; callers that need the full set rely on this.
func (r *GormToyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ToySortFields, "id")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormToyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "in_stock":
			query = query.Where("in_stock = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		}
	}
	return query
}

// Ensure GormToyRepository implements ToyRepository
var _ catalog.ToyRepository = (*GormToyRepository)(nil)
