package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseValue parses a node-reported amount. Both fixed and scientific notation are accepted.
func ParseValue(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse value %q: %w", s, err)
	}
	if v.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative value %q", s)
	}
	return v, nil
}

// FormatValue renders v as fixed-point text without trailing zeros or a trailing point.
func FormatValue(v decimal.Decimal) string {
	return v.String()
}
