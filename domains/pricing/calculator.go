// Package pricing - Final price calculator
package pricing

import (
	"github.com/shopspring/decimal"

	"capability-dispatch/internal/errors"
)

// Calculator computes final prices through an injected Discount.
// It never inspects the concrete discount type.
type Calculator struct {
	discount Discount
}

// NewCalculator creates a calculator bound to one discount provider
func NewCalculator(discount Discount) (*Calculator, error) {
	if discount == nil {
		return nil, errors.Input("calculator requires a discount provider")
	}
	return &Calculator{discount: discount}, nil
}

// FinalPrice returns price minus the provider's discount amount
func (c *Calculator) FinalPrice(price decimal.Decimal) decimal.Decimal {
	return price.Sub(c.discount.Amount(price))
}
