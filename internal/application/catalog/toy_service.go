package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/toystore/backend/internal/domain/catalog"
	"github.com/toystore/backend/internal/domain/partner"
	"github.com/toystore/backend/internal/domain/shared"
)

// ToyService handles toy-related business operations
type ToyService struct {
	toyRepo      catalog.ToyRepository
	supplierRepo partner.SupplierRepository
}

// NewToyService creates a new ToyService
func NewToyService(toyRepo catalog.ToyRepository, supplierRepo partner.SupplierRepository) *ToyService {
	return &ToyService{
		toyRepo:      toyRepo,
		supplierRepo: supplierRepo,
	}
}

// Create creates a new toy. The referenced supplier must exist and its
// specialty must match the toy's category; the store's trigger re-asserts
// the same rule for writes that bypass this service.
func (s *ToyService) Create(ctx context.Context, req CreateToyRequest) (*ToyResponse, error) {
	supplier, err := s.resolveSupplier(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	if err := catalog.ValidateSpecialty(supplier.Specialty, req.Category); err != nil {
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	toy, err := catalog.NewToy(req.ToyName, req.Category, decimal.NewFromFloat(req.Price), inStock, supplier.ID)
	if err != nil {
		return nil, err
	}

	if err := s.toyRepo.Save(ctx, toy); err != nil {
		return nil, err
	}

	response := ToToyResponse(toy)
	return &response, nil
}

// GetByID retrieves a toy by ID
func (s *ToyService) GetByID(ctx context.Context, id int64) (*ToyResponse, error) {
	toy, err := s.toyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToToyResponse(toy)
	return &response, nil
}

// List retrieves toys with pagination, ordered by id
func (s *ToyService) List(ctx context.Context, page, pageSize int) ([]ToyResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if page > 0 {
		domainFilter.Page = page
	}
	if pageSize > 0 {
		domainFilter.PageSize = pageSize
	}

	toys, err := s.toyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.toyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToToyResponses(toys), total, nil
}

// Filter returns toys with price within the inclusive bounds, optionally
// restricted to a set of categories (OR semantics).
func (s *ToyService) Filter(ctx context.Context, filter ToyListFilter) ([]ToyResponse, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, shared.NewDomainError("INVALID_RANGE", "min_price cannot exceed max_price")
	}

	var minPrice, maxPrice *decimal.Decimal
	if filter.MinPrice != nil {
		d := decimal.NewFromFloat(*filter.MinPrice)
		minPrice = &d
	}
	if filter.MaxPrice != nil {
		d := decimal.NewFromFloat(*filter.MaxPrice)
		maxPrice = &d
	}

	categories := make([]string, 0, len(filter.Categories))
	for _, c := range filter.Categories {
		if normalized := catalog.NormalizeCategory(c); normalized != "" {
			categories = append(categories, normalized)
		}
	}

	toys, err := s.toyRepo.FindByPriceRange(ctx, minPrice, maxPrice, categories)
	if err != nil {
		return nil, err
	}

	return ToToyResponses(toys), nil
}

// Update partially updates a toy. When the category or the supplier
// reference changes, the specialty rule is re-checked against the effective
// supplier and effective category.
func (s *ToyService) Update(ctx context.Context, id int64, req UpdateToyRequest) (*ToyResponse, error) {
	toy, err := s.toyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, shared.ErrNoFieldsProvided
	}

	if req.Category != nil || req.SupplierID != nil {
		effectiveSupplierID := toy.SupplierID
		if req.SupplierID != nil {
			effectiveSupplierID = req.SupplierID
		}
		effectiveCategory := toy.Category
		if req.Category != nil {
			effectiveCategory = *req.Category
		}

		if effectiveSupplierID != nil {
			supplier, err := s.resolveSupplier(ctx, *effectiveSupplierID)
			if err != nil {
				return nil, err
			}
			if err := catalog.ValidateSpecialty(supplier.Specialty, effectiveCategory); err != nil {
				return nil, err
			}
		}

		if req.SupplierID != nil {
			toy.AssignSupplier(*req.SupplierID)
		}
		if req.Category != nil {
			toy.SetCategory(*req.Category)
		}
	}

	if req.ToyName != nil {
		if err := toy.Rename(*req.ToyName); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := toy.SetPrice(decimal.NewFromFloat(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.InStock != nil {
		toy.SetStock(*req.InStock)
	}

	if err := s.toyRepo.Save(ctx, toy); err != nil {
		return nil, err
	}

	response := ToToyResponse(toy)
	return &response, nil
}

// ApplyCategorySale discounts every toy in the (normalized) category. The
// batch is persisted within a single transaction so the sale is all or
// nothing.
func (s *ToyService) ApplyCategorySale(ctx context.Context, req CategorySaleRequest) (*CategorySaleResponse, error) {
	if err := catalog.ValidateDiscount(req.DiscountPercentage); err != nil {
		return nil, err
	}

	category := catalog.NormalizeCategory(req.Category)
	toys, err := s.toyRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	updated := make([]*catalog.Toy, 0, len(toys))
	for i := range toys {
		if err := toys[i].ApplyDiscount(req.DiscountPercentage); err != nil {
			return nil, err
		}
		updated = append(updated, &toys[i])
	}

	if len(updated) > 0 {
		if err := s.toyRepo.SaveAll(ctx, updated); err != nil {
			return nil, err
		}
	}

	return &CategorySaleResponse{
		Category:     category,
		UpdatedCount: len(updated),
	}, nil
}

// resolveSupplier loads a supplier, translating a missing record into the
// SUPPLIER_NOT_FOUND failure used by toy operations.
func (s *ToyService) resolveSupplier(ctx context.Context, supplierID int64) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SUPPLIER_NOT_FOUND", fmt.Sprintf(
				"Supplier with id %d does not exist", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}
