// Package payment - Payment processor capability and providers
package payment

import (
	"github.com/shopspring/decimal"

	"capability-dispatch/internal/errors"
)

// Receipt records a completed payment
type Receipt struct {
	// Method is the processing method that handled the payment
	Method string

	// Amount is the charged amount
	Amount decimal.Decimal
}

// Processor charges an amount through one payment method
type Processor interface {
	// Process charges the amount and returns a receipt
	Process(amount decimal.Decimal) (Receipt, error)
}

// MethodProcessor charges through a named payment method
type MethodProcessor struct {
	method string
}

// NewMethodProcessor creates a processor for a named method
func NewMethodProcessor(method string) (*MethodProcessor, error) {
	if method == "" {
		return nil, errors.Input("processor requires a method name")
	}
	return &MethodProcessor{method: method}, nil
}

// Method returns the payment method name
func (p *MethodProcessor) Method() string {
	return p.method
}

// Process charges the amount. Non-positive amounts are rejected.
func (p *MethodProcessor) Process(amount decimal.Decimal) (Receipt, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Receipt{}, errors.Newf(errors.TypeInput,
			"invalid payment amount %s for method %s", amount.String(), p.method)
	}
	return Receipt{
		Method: p.method,
		Amount: amount,
	}, nil
}

// NewCreditCardProcessor creates the credit card processor
func NewCreditCardProcessor() (*MethodProcessor, error) {
	return NewMethodProcessor("creditcard")
}

// NewPayPalProcessor creates the PayPal processor
func NewPayPalProcessor() (*MethodProcessor, error) {
	return NewMethodProcessor("paypal")
}

// NewPixProcessor creates the Pix processor
func NewPixProcessor() (*MethodProcessor, error) {
	return NewMethodProcessor("pix")
}
