package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const workOrderPrefix = "GR-"

// NewWorkOrder returns "GR-" followed by 8 random hex characters.
func NewWorkOrder() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return workOrderPrefix + hex[:8]
}

// LineTotal computes qty*price without float accumulation errors, rounded to cents.
func LineTotal(qty int, price float64) float64 {
	total := decimal.NewFromInt(int64(qty)).Mul(decimal.NewFromFloat(price)).Round(2)
	f, _ := total.Float64()
	return f
}
