package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrUniquenessConflict is returned when an insert or update would duplicate
	// a unique column (user email, restaurant email, order number).
	ErrUniquenessConflict = errors.New("uniqueness conflict")
	// ErrReferentialViolation is returned when a foreign key points at a missing
	// row, or a parent deletion is blocked by non-cascading children.
	ErrReferentialViolation = errors.New("referential integrity violation")
	// ErrDomainViolation is returned when a value falls outside an enumerated
	// set or fails a declared column constraint.
	ErrDomainViolation = errors.New("domain violation")
	// ErrPrecisionLoss is returned when a decimal value exceeds the declared
	// precision or scale of its column.
	ErrPrecisionLoss = errors.New("precision loss")
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
)

var sentinels = []error{
	ErrUniquenessConflict,
	ErrReferentialViolation,
	ErrDomainViolation,
	ErrPrecisionLoss,
	ErrNotFound,
}

// Code returns the stable machine-readable code for a classified error.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUniquenessConflict):
		return "UNIQUENESS_CONFLICT"
	case errors.Is(err, ErrReferentialViolation):
		return "REFERENTIAL_VIOLATION"
	case errors.Is(err, ErrDomainViolation):
		return "DOMAIN_VIOLATION"
	case errors.Is(err, ErrPrecisionLoss):
		return "PRECISION_LOSS"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// MySQL server error numbers for constraint failures.
const (
	mysqlDupEntry        = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
	mysqlDataTooLong     = 1406
	mysqlCheckViolated   = 3819
)

// Classify maps a backend error onto the store's error taxonomy, wrapping the
// cause. Already-classified errors pass through unchanged; anything
// unrecognized is returned as-is for the caller to treat as internal.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrUniquenessConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrReferentialViolation, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrDomainViolation, err)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDupEntry:
			return fmt.Errorf("%w: %v", ErrUniquenessConflict, err)
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return fmt.Errorf("%w: %v", ErrReferentialViolation, err)
		case mysqlDataTooLong, mysqlCheckViolated:
			return fmt.Errorf("%w: %v", ErrDomainViolation, err)
		}
	}

	// SQLite reports constraint failures only through the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrUniquenessConflict, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrReferentialViolation, err)
	case strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%w: %v", ErrDomainViolation, err)
	}

	return err
}
