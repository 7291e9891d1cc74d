// Package scenario provides declarative demo scenarios in HCL.
// A scenario names providers by string, which makes it the one place an
// unknown variant is reachable; the registry rejects it with a typed
// error instead of guessing.
package scenario

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"capability-dispatch/internal/errors"
)

// Scenario is a parsed scenario file
type Scenario struct {
	// Name labels the scenario in output
	Name string `hcl:"name,optional"`

	// Policy is the default fan-out failure policy
	// (fail-fast, best-effort)
	Policy string `hcl:"policy,optional"`

	// Pricings are final-price computations to run
	Pricings []PricingBlock `hcl:"pricing,block"`

	// Notifications are broadcasts to run
	Notifications []NotificationBlock `hcl:"notification,block"`

	// Payments are orders to place
	Payments []PaymentBlock `hcl:"payment,block"`
}

// PricingBlock computes a final price under one discount plan
type PricingBlock struct {
	// Plan is the discount provider name
	Plan string `hcl:"plan,label"`

	// Price is the list price
	Price float64 `hcl:"price"`
}

// NotificationBlock broadcasts one message over ordered channels
type NotificationBlock struct {
	// Name labels the broadcast
	Name string `hcl:"name,label"`

	// Channels are the sender provider names, in invocation order
	Channels []string `hcl:"channels"`

	// Message is delivered verbatim to every channel
	Message string `hcl:"message"`

	// Policy overrides the scenario fan-out policy
	Policy string `hcl:"policy,optional"`
}

// PaymentBlock places one order through a payment method
type PaymentBlock struct {
	// Method is the processor provider name
	Method string `hcl:"method,label"`

	// Amount is the order total
	Amount float64 `hcl:"amount"`
}

// Load parses a scenario file
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeInput, diags, "failed to parse scenario file %s", path)
	}

	var sc Scenario
	if diags := gohcl.DecodeBody(file.Body, nil, &sc); diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeInput, diags, "invalid scenario file %s", path)
	}
	return &sc, nil
}

// Parse parses scenario source. The filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeInput, diags, "failed to parse scenario %s", filename)
	}

	var sc Scenario
	if diags := gohcl.DecodeBody(file.Body, nil, &sc); diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeInput, diags, "invalid scenario %s", filename)
	}
	return &sc, nil
}
