// Package office - Segregated document device capabilities
// One interface per operation. A device exposes only the capabilities
// it implements; a consumer declares only the capabilities it needs, so
// an unsupported operation is unrepresentable rather than a runtime
// failure.
package office

// Printer prints documents
type Printer interface {
	// Print prints the named document
	Print(document string) error
}

// Scanner scans documents
type Scanner interface {
	// Scan digitizes a document and returns the scan name
	Scan() (string, error)
}

// Fax transmits documents
type Fax interface {
	// Send transmits the named document
	Send(document string) error
}

// Copier duplicates documents
type Copier interface {
	// Copy duplicates the named document
	Copy(document string) error
}
