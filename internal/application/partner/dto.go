package partner

import (
	"time"

	"github.com/toystore/backend/internal/domain/partner"
)

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Specialty string `json:"specialty" binding:"required,min=1,max=255"`
}

// UpdateSupplierRequest represents a partial update of a supplier.
// Only non-nil fields are applied.
type UpdateSupplierRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Specialty *string `json:"specialty" binding:"omitempty,min=1,max=255"`
}

// IsEmpty reports whether the update carries no fields
func (r UpdateSupplierRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Specialty == nil
}

// SupplierListFilter represents supplier list query parameters
type SupplierListFilter struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Specialty string `form:"specialty"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierDetailResponse is SupplierResponse plus the dependent toy count
type SupplierDetailResponse struct {
	SupplierResponse
	ToyCount int64 `json:"toy_count"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Specialty: s.Specialty,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain suppliers to response DTOs
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
