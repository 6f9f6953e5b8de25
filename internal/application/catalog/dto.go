package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/toystore/backend/internal/domain/catalog"
)

// CreateToyRequest represents a request to create a new toy
type CreateToyRequest struct {
	ToyName    string   `json:"toy_name" binding:"required,min=1,max=255"`
	Category   string   `json:"category" binding:"required,min=1,max=255"`
	Price      float64  `json:"price" binding:"min=0"`
	InStock    *bool    `json:"in_stock"`
	SupplierID int64    `json:"supplier_id" binding:"required"`
}

// UpdateToyRequest represents a partial update of a toy.
// Only non-nil fields are applied.
type UpdateToyRequest struct {
	ToyName    *string  `json:"toy_name" binding:"omitempty,min=1,max=255"`
	Category   *string  `json:"category" binding:"omitempty,min=1,max=255"`
	Price      *float64 `json:"price" binding:"omitempty,min=0"`
	InStock    *bool    `json:"in_stock"`
	SupplierID *int64   `json:"supplier_id"`
}

// IsEmpty reports whether the update carries no fields
func (r UpdateToyRequest) IsEmpty() bool {
	return r.ToyName == nil && r.Category == nil && r.Price == nil &&
		r.InStock == nil && r.SupplierID == nil
}

// CategorySaleRequest represents a request to discount every toy in a category
type CategorySaleRequest struct {
	Category           string `json:"category" binding:"required,min=1,max=255"`
	DiscountPercentage int    `json:"discount_percentage" binding:"required"`
}

// CategorySaleResponse reports the outcome of a category sale
type CategorySaleResponse struct {
	Category     string `json:"category"`
	UpdatedCount int    `json:"updated_count"`
}

// ToyListFilter represents toy list query parameters. Price bounds are
// inclusive; multiple categories combine with OR semantics.
type ToyListFilter struct {
	Page       int      `form:"page" binding:"omitempty,min=1"`
	PageSize   int      `form:"page_size" binding:"omitempty,min=1,max=100"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	Categories []string `form:"category"`
}

// ToyResponse represents a toy in API responses
type ToyResponse struct {
	ID         int64           `json:"id"`
	ToyName    string          `json:"toy_name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	InStock    bool            `json:"in_stock"`
	SupplierID *int64          `json:"supplier_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToToyResponse converts a domain toy to a response DTO
func ToToyResponse(t *catalog.Toy) ToyResponse {
	return ToyResponse{
		ID:         t.ID,
		ToyName:    t.ToyName,
		Category:   t.Category,
		Price:      t.Price,
		InStock:    t.InStock,
		SupplierID: t.SupplierID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToToyResponses converts a slice of domain toys to response DTOs
func ToToyResponses(toys []catalog.Toy) []ToyResponse {
	responses := make([]ToyResponse, len(toys))
	for i := range toys {
		responses[i] = ToToyResponse(&toys[i])
	}
	return responses
}
