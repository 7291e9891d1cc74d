// Package accounts - User report rendering
package accounts

import (
	"fmt"
	"strings"
)

// ReportWriter renders user reports
type ReportWriter interface {
	// Render returns a textual report for the user
	Render(user User) string
}

// TextReportWriter renders a plain-text report
type TextReportWriter struct{}

// Render returns the user report
func (TextReportWriter) Render(user User) string {
	var b strings.Builder
	fmt.Fprintln(&b, "=== USER REPORT ===")
	fmt.Fprintf(&b, "Name:  %s\n", user.Name)
	fmt.Fprintf(&b, "Email: %s\n", user.Email)
	fmt.Fprintln(&b, "===================")
	return b.String()
}
