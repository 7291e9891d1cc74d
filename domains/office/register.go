// Package office - Device registration
package office

import (
	"io"

	"capability-dispatch/core/capability"
	"capability-dispatch/core/registry"
)

// Capability names for the segregated device contracts
const (
	PrinterCapabilityName = "office/printer"
	ScannerCapabilityName = "office/scanner"
	FaxCapabilityName     = "office/fax"
	CopierCapabilityName  = "office/copier"
)

// Capability definitions, one per contract
var (
	PrinterCapability = capability.Define[Printer](PrinterCapabilityName)
	ScannerCapability = capability.Define[Scanner](ScannerCapabilityName)
	FaxCapability     = capability.Define[Fax](FaxCapabilityName)
	CopierCapability  = capability.Define[Copier](CopierCapabilityName)
)

// RegisterDefaults installs the standard devices under every
// capability each one actually implements
func RegisterDefaults(r *registry.Registry, out io.Writer) error {
	inkjet := NewInkjetPrinter(out)
	station := NewScanStation(out)
	mfd := NewMultiFunctionDevice(out)

	registrations := []struct {
		def  capability.Definition
		name string
		impl interface{}
	}{
		{PrinterCapability, "inkjet", inkjet},
		{PrinterCapability, "scanstation", station},
		{PrinterCapability, "mfd", mfd},
		{ScannerCapability, "scanstation", station},
		{ScannerCapability, "mfd", mfd},
		{FaxCapability, "mfd", mfd},
		{CopierCapability, "mfd", mfd},
	}

	for _, reg := range registrations {
		if err := r.Register(reg.def, reg.name, reg.impl); err != nil {
			return err
		}
	}
	return nil
}
