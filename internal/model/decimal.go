package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "dishpatch/internal/errors"
)

// checkScale verifies that d fits a decimal(precision, scale) column without
// truncation. Monetary and geocoordinate columns must hold the value exactly,
// so anything that would lose fractional digits or overflow the integer part
// is rejected before it reaches the backend. Trailing zeros carry no value
// and are not counted against the scale.
func checkScale(field string, d decimal.Decimal, precision, scale int32) error {
	if !d.Equal(d.Truncate(scale)) {
		return fmt.Errorf("%w: %s has more than %d fractional digits", errs.ErrPrecisionLoss, field, scale)
	}
	limit := decimal.New(1, precision-scale)
	if d.Abs().GreaterThanOrEqual(limit) {
		return fmt.Errorf("%w: %s exceeds decimal(%d,%d)", errs.ErrPrecisionLoss, field, precision, scale)
	}
	return nil
}

// checkNullScale applies checkScale to an optional column when it is set.
func checkNullScale(field string, d decimal.NullDecimal, precision, scale int32) error {
	if !d.Valid {
		return nil
	}
	return checkScale(field, d.Decimal, precision, scale)
}
