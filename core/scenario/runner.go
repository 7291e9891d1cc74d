// Package scenario - Scenario execution
package scenario

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"capability-dispatch/core/dispatch"
	"capability-dispatch/core/registry"
	"capability-dispatch/domains/notify"
	"capability-dispatch/domains/payment"
	"capability-dispatch/domains/pricing"
	"capability-dispatch/internal/errors"
	"capability-dispatch/internal/logging"
)

// Runner executes scenarios against a provider registry
type Runner struct {
	reg *registry.Registry
	out io.Writer
}

// NewRunner creates a runner writing results to out
func NewRunner(reg *registry.Registry, out io.Writer) (*Runner, error) {
	if reg == nil {
		return nil, errors.Input("runner requires a registry")
	}
	if out == nil {
		return nil, errors.Input("runner requires an output writer")
	}
	return &Runner{reg: reg, out: out}, nil
}

// Run executes every block of the scenario in file order
func (r *Runner) Run(sc *Scenario) error {
	if sc == nil {
		return errors.Input("nil scenario")
	}

	if sc.Name != "" {
		fmt.Fprintf(r.out, "scenario: %s\n", sc.Name)
	}

	for _, block := range sc.Pricings {
		if err := r.runPricing(block); err != nil {
			return err
		}
	}
	for _, block := range sc.Notifications {
		if err := r.runNotification(block, sc.Policy); err != nil {
			return err
		}
	}
	for _, block := range sc.Payments {
		if err := r.runPayment(block); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runPricing(block PricingBlock) error {
	discount, err := registry.Resolve[pricing.Discount](r.reg, pricing.CapabilityName, block.Plan)
	if err != nil {
		return err
	}

	calc, err := pricing.NewCalculator(discount)
	if err != nil {
		return err
	}

	price := decimal.NewFromFloat(block.Price)
	final := calc.FinalPrice(price)
	logging.Debug("computed final price",
		zap.String("plan", block.Plan),
		zap.String("final", final.String()))

	fmt.Fprintf(r.out, "pricing %s: %s -> %s\n", block.Plan, price.String(), final.String())
	return nil
}

func (r *Runner) runNotification(block NotificationBlock, defaultPolicy string) error {
	name := block.Policy
	if name == "" {
		name = defaultPolicy
	}
	if name == "" {
		name = dispatch.FailFast.String()
	}
	policy, err := dispatch.ParsePolicy(name)
	if err != nil {
		return err
	}

	senders := make([]notify.Sender, 0, len(block.Channels))
	for _, channel := range block.Channels {
		sender, err := registry.Resolve[notify.Sender](r.reg, notify.CapabilityName, channel)
		if err != nil {
			return err
		}
		senders = append(senders, sender)
	}

	service, err := notify.NewService(policy, senders...)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "notification %s: %d channel(s), %s\n", block.Name, service.Channels(), policy)
	return service.Notify(block.Message)
}

func (r *Runner) runPayment(block PaymentBlock) error {
	processor, err := registry.Resolve[payment.Processor](r.reg, payment.CapabilityName, block.Method)
	if err != nil {
		return err
	}

	orders, err := payment.NewOrderService(processor)
	if err != nil {
		return err
	}

	order, err := orders.CreateOrder(decimal.NewFromFloat(block.Amount))
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "payment %s: charged %s\n", order.Receipt.Method, order.Receipt.Amount.String())
	return nil
}
