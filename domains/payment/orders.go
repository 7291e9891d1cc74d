// Package payment - Order service
package payment

import (
	"github.com/shopspring/decimal"

	"capability-dispatch/core/dispatch"
	"capability-dispatch/internal/errors"
)

// Order records a placed order
type Order struct {
	// Amount is the order total
	Amount decimal.Decimal

	// Receipt is the payment receipt
	Receipt Receipt
}

// OrderService places orders through an injected processor. The
// processor arrives at construction; the service never instantiates a
// concrete processor itself.
type OrderService struct {
	binding *dispatch.Binding[decimal.Decimal, Receipt]
}

// NewOrderService creates an order service bound to one processor
func NewOrderService(processor Processor) (*OrderService, error) {
	if processor == nil {
		return nil, errors.Input("order service requires a payment processor")
	}

	binding, err := dispatch.Bind(dispatch.HandlerFunc[decimal.Decimal, Receipt](processor.Process))
	if err != nil {
		return nil, err
	}
	return &OrderService{binding: binding}, nil
}

// CreateOrder charges the amount and returns the placed order
func (s *OrderService) CreateOrder(amount decimal.Decimal) (Order, error) {
	receipt, err := s.binding.Invoke(amount)
	if err != nil {
		return Order{}, errors.Wrap(errors.TypeInternal, "payment failed", err)
	}
	return Order{
		Amount:  amount,
		Receipt: receipt,
	}, nil
}
