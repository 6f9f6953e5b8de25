package partner

import (
	"context"
	"fmt"

	"github.com/toystore/backend/internal/domain/catalog"
	"github.com/toystore/backend/internal/domain/partner"
	"github.com/toystore/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	toyRepo      catalog.ToyRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, toyRepo catalog.ToyRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		toyRepo:      toyRepo,
	}
}

// Create creates a new supplier. The name pre-check is advisory; the store's
// unique constraint is authoritative under concurrent creates, and the
// persistence layer translates that violation back to DUPLICATE_NAME.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_NAME", "Supplier with this name already exists")
	}

	supplier, err := partner.NewSupplier(req.Name, req.Email, req.Specialty)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID, including its dependent toy count
func (s *SupplierService) GetByID(ctx context.Context, id int64) (*SupplierDetailResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	toyCount, err := s.toyRepo.CountBySupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SupplierDetailResponse{
		SupplierResponse: ToSupplierResponse(supplier),
		ToyCount:         toyCount,
	}, nil
}

// List retrieves suppliers with pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Specialty != "" {
		domainFilter.Filters["specialty"] = catalog.NormalizeCategory(filter.Specialty)
	}

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update partially updates a supplier. Changing the specialty is refused
// while dependent toys exist, so the specialty rule can never be broken
// retroactively.
func (s *SupplierService) Update(ctx context.Context, id int64, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, shared.ErrNoFieldsProvided
	}

	if req.Name != nil && *req.Name != supplier.Name {
		exists, err := s.supplierRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("DUPLICATE_NAME", "Supplier with this name already exists")
		}
		if err := supplier.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Email != nil {
		if err := supplier.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if req.Specialty != nil {
		newSpecialty := catalog.NormalizeCategory(*req.Specialty)
		if newSpecialty != supplier.Specialty {
			toyCount, err := s.toyRepo.CountBySupplier(ctx, id)
			if err != nil {
				return nil, err
			}
			if toyCount > 0 {
				return nil, shared.NewDomainError("SPECIALTY_LOCKED", fmt.Sprintf(
					"Cannot change specialty while %d toy(s) reference this supplier", toyCount))
			}
		}
		supplier.SetSpecialty(*req.Specialty)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a supplier. Deletion is blocked while toys reference the
// supplier; the store's ON DELETE RESTRICT constraint backs this check.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}

	toyCount, err := s.toyRepo.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if toyCount > 0 {
		return shared.NewDomainError("HAS_DEPENDENT_TOYS", fmt.Sprintf(
			"Cannot delete supplier: %d toy(s) reference it", toyCount))
	}

	return s.supplierRepo.Delete(ctx, id)
}
