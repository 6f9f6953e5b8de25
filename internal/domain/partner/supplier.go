package partner

import (
	"regexp"
	"time"

	"github.com/toystore/backend/internal/domain/catalog"
	"github.com/toystore/backend/internal/domain/shared"
)

// Supplier represents a toy supplier in the partner context.
// The specialty is stored in normalized form; the specialty rule guarantees
// that every toy referencing this supplier has a matching category.
type Supplier struct {
	shared.BaseEntity
	Name      string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email     string `gorm:"type:varchar(255);not null"`
	Specialty string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with a normalized specialty
func NewSupplier(name, email, specialty string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Specialty:  catalog.NormalizeCategory(specialty),
	}, nil
}

// Rename updates the supplier's name. Uniqueness across suppliers is
// checked by the application service and enforced by the store.
func (s *Supplier) Rename(name string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	return nil
}

// SetEmail updates the supplier's contact email
func (s *Supplier) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	s.Email = email
	s.UpdatedAt = time.Now()
	return nil
}

// SetSpecialty normalizes and sets the supplier's specialty. Existing toys
// are not re-validated here; the application service refuses specialty
// changes while dependent toys exist.
func (s *Supplier) SetSpecialty(specialty string) {
	s.Specialty = catalog.NormalizeCategory(specialty)
	s.UpdatedAt = time.Now()
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the local-part@domain.tld grammar. The same pattern
// is encoded as a CHECK constraint on the suppliers table.
func ValidateEmail(email string) error {
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validateSupplierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 255 characters")
	}
	return nil
}
