package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		inStock  bool
		price    float64
		critical bool
		reason   string
	}{
		{"out of stock", false, 50, true, "Out of stock"},
		{"exactly at threshold is not critical", true, 200, false, ""},
		{"just above threshold", true, 200.01, true, "High-value item (>200)"},
		{"both conditions", false, 300, true, "Out of stock, High-value item (>200)"},
		{"in stock and cheap", true, 25, false, ""},
		{"out of stock at threshold", false, 200, true, "Out of stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			critical, reason := Classify(tt.inStock, decimal.NewFromFloat(tt.price))
			assert.Equal(t, tt.critical, critical)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
