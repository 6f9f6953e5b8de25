package persistence

import (
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/toystore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Postgres error codes the store is expected to raise. The schema carries
// its own safety net (unique index, RESTRICT foreign key, email check,
// specialty trigger), so violations surface here even for writes that
// bypassed the service-layer checks.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgRaiseException      = "P0001"
)

// translateError maps low-level store errors onto the domain error taxonomy.
// Errors it does not recognize are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewDomainError("DUPLICATE_NAME", "Supplier with this name already exists")
	}
	if errors.Is(err, driver.ErrBadConn) {
		return shared.ErrStoreUnavailable
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pgUniqueViolation:
		return shared.NewDomainError("DUPLICATE_NAME", "Supplier with this name already exists")

	case pgForeignKeyViolation:
		// A blocked supplier delete reports the suppliers table; a toy
		// insert or update with a dangling supplier_id reports toys.
		if pqErr.Table == "suppliers" {
			return shared.NewDomainError("HAS_DEPENDENT_TOYS", "Cannot delete supplier: toys still reference it")
		}
		return shared.NewDomainError("SUPPLIER_NOT_FOUND", "Referenced supplier does not exist")

	case pgCheckViolation:
		if strings.Contains(pqErr.Constraint, "email") {
			return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
		}
		return err

	case pgRaiseException:
		// Raised by the specialty validation trigger
		return shared.NewDomainError("SPECIALTY_MISMATCH", pqErr.Message)
	}

	if pqErr.Code.Class() == "08" { // connection exception
		return shared.ErrStoreUnavailable
	}

	return err
}
