// Package notify - Sender registration
package notify

import (
	"io"

	"capability-dispatch/core/capability"
	"capability-dispatch/core/registry"
)

// CapabilityName identifies the sender capability in a registry
const CapabilityName = "notify/sender"

// Capability is the sender capability definition
var Capability = capability.Define[Sender](CapabilityName)

// RegisterDefaults installs the standard channel senders, all
// delivering to out
func RegisterDefaults(r *registry.Registry, out io.Writer) error {
	for _, channel := range []string{"email", "sms", "push", "whatsapp"} {
		sender, err := NewChannelSender(channel, out)
		if err != nil {
			return err
		}
		if err := r.Register(Capability, channel, sender); err != nil {
			return err
		}
	}
	return nil
}
