// Package office - Copy desk consumer
package office

import (
	"capability-dispatch/internal/errors"
)

// CopyDesk duplicates paper documents by scanning and reprinting. It
// requires exactly the Scanner and Printer capabilities; devices
// lacking either cannot be bound.
type CopyDesk struct {
	scanner Scanner
	printer Printer
}

// NewCopyDesk creates a copy desk over a scanner and a printer. The
// two may be the same device.
func NewCopyDesk(scanner Scanner, printer Printer) (*CopyDesk, error) {
	if scanner == nil || printer == nil {
		return nil, errors.Input("copy desk requires a scanner and a printer")
	}
	return &CopyDesk{scanner: scanner, printer: printer}, nil
}

// Duplicate scans a document and prints the scan
func (d *CopyDesk) Duplicate() error {
	scan, err := d.scanner.Scan()
	if err != nil {
		return err
	}
	return d.printer.Print(scan)
}
