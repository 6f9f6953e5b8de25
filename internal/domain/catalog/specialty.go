package catalog

import (
	"fmt"

	"github.com/toystore/backend/internal/domain/shared"
)

// ValidateSpecialty checks the specialty rule: a supplier may only provide
// toys whose category equals the supplier's declared specialty. Both inputs
// are normalized before comparison, so callers may pass raw or already
// normalized values.
func ValidateSpecialty(supplierSpecialty, toyCategory string) error {
	specialty := NormalizeCategory(supplierSpecialty)
	category := NormalizeCategory(toyCategory)
	if specialty != category {
		return shared.NewDomainError("SPECIALTY_MISMATCH", fmt.Sprintf(
			"Supplier specialty %q does not match toy category %q. A supplier can only provide toys in their specialty category.",
			specialty, category,
		))
	}
	return nil
}
