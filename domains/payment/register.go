// Package payment - Processor registration
package payment

import (
	"capability-dispatch/core/capability"
	"capability-dispatch/core/registry"
)

// CapabilityName identifies the processor capability in a registry
const CapabilityName = "payment/processor"

// Capability is the processor capability definition
var Capability = capability.Define[Processor](CapabilityName)

// RegisterDefaults installs the standard payment processors
func RegisterDefaults(r *registry.Registry) error {
	for _, method := range []string{"creditcard", "paypal", "pix"} {
		processor, err := NewMethodProcessor(method)
		if err != nil {
			return err
		}
		if err := r.Register(Capability, method, processor); err != nil {
			return err
		}
	}
	return nil
}
