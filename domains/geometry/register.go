// Package geometry - Shape registration
package geometry

import (
	"capability-dispatch/core/capability"
	"capability-dispatch/core/registry"
)

// CapabilityName identifies the shape capability in a registry
const CapabilityName = "geometry/shape"

// Capability is the shape capability definition
var Capability = capability.Define[Shape](CapabilityName)

// RegisterDefaults installs the reference shapes
func RegisterDefaults(r *registry.Registry) error {
	shapes := []struct {
		name string
		impl Shape
	}{
		{"rectangle", Rectangle{Width: 5, Height: 4}},
		{"square", Square{Side: 5}},
		{"circle", Circle{Radius: 2}},
	}

	for _, s := range shapes {
		if err := r.Register(Capability, s.name, s.impl); err != nil {
			return err
		}
	}
	return nil
}
