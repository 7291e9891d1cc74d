// Package office - Device implementations
package office

import (
	"fmt"
	"io"

	"capability-dispatch/internal/errors"
)

// InkjetPrinter prints and nothing else
type InkjetPrinter struct {
	out io.Writer
}

// NewInkjetPrinter creates a print-only device
func NewInkjetPrinter(out io.Writer) *InkjetPrinter {
	return &InkjetPrinter{out: out}
}

// Print prints the named document
func (p *InkjetPrinter) Print(document string) error {
	return writeAction(p.out, "print", document)
}

// ScanStation prints and scans
type ScanStation struct {
	out io.Writer
}

// NewScanStation creates a print-and-scan device
func NewScanStation(out io.Writer) *ScanStation {
	return &ScanStation{out: out}
}

// Print prints the named document
func (s *ScanStation) Print(document string) error {
	return writeAction(s.out, "print", document)
}

// Scan digitizes a document
func (s *ScanStation) Scan() (string, error) {
	if err := writeAction(s.out, "scan", "scanned.pdf"); err != nil {
		return "", err
	}
	return "scanned.pdf", nil
}

// MultiFunctionDevice prints, scans, faxes, and copies
type MultiFunctionDevice struct {
	out io.Writer
}

// NewMultiFunctionDevice creates a device supporting every capability
func NewMultiFunctionDevice(out io.Writer) *MultiFunctionDevice {
	return &MultiFunctionDevice{out: out}
}

// Print prints the named document
func (d *MultiFunctionDevice) Print(document string) error {
	return writeAction(d.out, "print", document)
}

// Scan digitizes a document
func (d *MultiFunctionDevice) Scan() (string, error) {
	if err := writeAction(d.out, "scan", "scanned.pdf"); err != nil {
		return "", err
	}
	return "scanned.pdf", nil
}

// Send transmits the named document
func (d *MultiFunctionDevice) Send(document string) error {
	return writeAction(d.out, "fax", document)
}

// Copy duplicates the named document
func (d *MultiFunctionDevice) Copy(document string) error {
	return writeAction(d.out, "copy", document)
}

func writeAction(out io.Writer, action, document string) error {
	_, err := fmt.Fprintf(out, "%s: %s\n", action, document)
	if err != nil {
		return errors.Wrapf(errors.TypeInternal, err, "device %s failed", action)
	}
	return nil
}
