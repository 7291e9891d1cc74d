// Package pricing - Discount provider registration
package pricing

import (
	"capability-dispatch/core/capability"
	"capability-dispatch/core/registry"
)

// CapabilityName identifies the discount capability in a registry
const CapabilityName = "pricing/discount"

// Capability is the discount capability definition
var Capability = capability.Define[Discount](CapabilityName)

// RegisterDefaults installs the standard discount providers
func RegisterDefaults(r *registry.Registry) error {
	providers := []struct {
		name string
		impl Discount
	}{
		{"none", NoDiscount{}},
		{"regular", NewRegularDiscount()},
		{"premium", NewPremiumDiscount()},
		{"vip", NewVIPDiscount()},
		{"employee", NewEmployeeDiscount()},
		{"seasonal", NewSeasonalDiscount()},
	}

	for _, p := range providers {
		if err := r.Register(Capability, p.name, p.impl); err != nil {
			return err
		}
	}
	return nil
}
