package report

import (
	"github.com/shopspring/decimal"
)

// Reason fragments for critical inventory classification
const (
	ReasonOutOfStock = "Out of stock"
	ReasonHighValue  = "High-value item (>200)"
)

// highValueThreshold is the price above which an item counts as high value.
// The comparison is strict: a price of exactly 200 is not critical.
var highValueThreshold = decimal.NewFromInt(200)

// Classify decides whether a toy belongs in the critical inventory report.
// An item is critical when it is out of stock or priced above 200. The
// returned reason combines both clauses, out-of-stock first, when both
// apply; it is empty when the item is not critical.
func Classify(inStock bool, price decimal.Decimal) (critical bool, reason string) {
	outOfStock := !inStock
	highValue := price.GreaterThan(highValueThreshold)

	switch {
	case outOfStock && highValue:
		return true, ReasonOutOfStock + ", " + ReasonHighValue
	case outOfStock:
		return true, ReasonOutOfStock
	case highValue:
		return true, ReasonHighValue
	default:
		return false, ""
	}
}
