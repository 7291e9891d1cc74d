// Package pricing - Discount capability and providers
// One provider per customer plan. Adding a plan means adding a provider;
// the calculator and the existing providers are never touched.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Discount computes the discount amount for a list price
type Discount interface {
	// Amount returns the discount to subtract from price
	Amount(price decimal.Decimal) decimal.Decimal
}

// RateDiscount discounts a fixed percentage of the price
type RateDiscount struct {
	rate decimal.Decimal
}

// NewRateDiscount creates a discount with a percentage rate (10 = 10%)
func NewRateDiscount(percent int64) RateDiscount {
	return RateDiscount{
		rate: decimal.NewFromInt(percent).Div(decimal.NewFromInt(100)),
	}
}

// Amount returns price * rate
func (d RateDiscount) Amount(price decimal.Decimal) decimal.Decimal {
	return price.Mul(d.rate)
}

// NoDiscount never discounts
type NoDiscount struct{}

// Amount returns zero
func (NoDiscount) Amount(price decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// NewRegularDiscount creates the 5% regular-customer discount
func NewRegularDiscount() RateDiscount {
	return NewRateDiscount(5)
}

// NewPremiumDiscount creates the 10% premium-customer discount
func NewPremiumDiscount() RateDiscount {
	return NewRateDiscount(10)
}

// NewVIPDiscount creates the 20% VIP discount
func NewVIPDiscount() RateDiscount {
	return NewRateDiscount(20)
}

// NewEmployeeDiscount creates the 30% employee discount
func NewEmployeeDiscount() RateDiscount {
	return NewRateDiscount(30)
}

// NewSeasonalDiscount creates the 15% seasonal discount
func NewSeasonalDiscount() RateDiscount {
	return NewRateDiscount(15)
}
