package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/toystore/backend/internal/domain/shared"
)

// saleFloor is the lowest price a category sale may produce. The discount
// result is clamped to this value; it never raises prices outside a sale.
var saleFloor = decimal.NewFromInt(10)

// Toy represents a toy product in the catalog context.
// SupplierID is nullable only for records that predate supplier tracking;
// every new toy must reference an existing supplier (enforced by the
// application service and again by the store).
type Toy struct {
	shared.BaseEntity
	ToyName    string          `gorm:"column:toy_name;type:varchar(255);not null"`
	Category   string          `gorm:"type:varchar(255);not null;index"`
	Price      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	InStock    bool            `gorm:"not null;default:true"`
	SupplierID *int64          `gorm:"index"`
}

// TableName returns the table name for GORM
func (Toy) TableName() string {
	return "toys"
}

// NewToy creates a new toy. The category is normalized before storage; the
// specialty rule against the referenced supplier is checked by the caller.
func NewToy(toyName, category string, price decimal.Decimal, inStock bool, supplierID int64) (*Toy, error) {
	if err := validateToyName(toyName); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Toy{
		BaseEntity: shared.NewBaseEntity(),
		ToyName:    toyName,
		Category:   NormalizeCategory(category),
		Price:      price,
		InStock:    inStock,
		SupplierID: &supplierID,
	}, nil
}

// Rename updates the toy's display name
func (t *Toy) Rename(toyName string) error {
	if err := validateToyName(toyName); err != nil {
		return err
	}
	t.ToyName = toyName
	t.UpdatedAt = time.Now()
	return nil
}

// SetCategory normalizes and sets the toy's category
func (t *Toy) SetCategory(category string) {
	t.Category = NormalizeCategory(category)
	t.UpdatedAt = time.Now()
}

// SetPrice sets the toy's price
func (t *Toy) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	t.Price = price
	t.UpdatedAt = time.Now()
	return nil
}

// SetStock sets the toy's in-stock flag
func (t *Toy) SetStock(inStock bool) {
	t.InStock = inStock
	t.UpdatedAt = time.Now()
}

// AssignSupplier points the toy at a supplier. The specialty rule is checked
// by the caller before assignment.
func (t *Toy) AssignSupplier(supplierID int64) {
	t.SupplierID = &supplierID
	t.UpdatedAt = time.Now()
}

// ApplyDiscount reduces the price by the given percentage, clamping the
// result to the sale floor: price = max(10, price * (1 - pct/100)).
func (t *Toy) ApplyDiscount(percentage int) error {
	if err := ValidateDiscount(percentage); err != nil {
		return err
	}

	factor := decimal.NewFromInt(1).Sub(
		decimal.NewFromInt(int64(percentage)).Div(decimal.NewFromInt(100)),
	)
	discounted := t.Price.Mul(factor)
	if discounted.LessThan(saleFloor) {
		discounted = saleFloor
	}

	t.Price = discounted
	t.UpdatedAt = time.Now()
	return nil
}

// ValidateDiscount checks that a sale percentage is within [1, 90]
func ValidateDiscount(percentage int) error {
	if percentage < 1 || percentage > 90 {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount percentage must be between 1 and 90")
	}
	return nil
}

func validateToyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Toy name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Toy name cannot exceed 255 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
