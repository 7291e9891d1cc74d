// Package errors_test - Domain error tests
package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"capability-dispatch/internal/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.New(errors.TypeNotFound, "unknown capability")
	if got := err.Error(); got != "[NOT_FOUND] unknown capability" {
		t.Errorf("Error() = %q", got)
	}

	cause := fmt.Errorf("boom")
	wrapped := errors.Wrap(errors.TypeInternal, "delivery failed", cause)
	if got := wrapped.Error(); !strings.Contains(got, "boom") {
		t.Errorf("wrapped Error() = %q, want cause included", got)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("Unwrap chain lost the cause")
	}
}

func TestIsType(t *testing.T) {
	err := errors.UnrecognizedVariant("unknown provider")

	if !errors.IsType(err, errors.TypeUnrecognizedVariant) {
		t.Error("IsType() = false for matching type")
	}
	if errors.IsType(err, errors.TypeNotFound) {
		t.Error("IsType() = true for mismatched type")
	}
	if errors.IsType(fmt.Errorf("plain"), errors.TypeNotFound) {
		t.Error("IsType() = true for non-domain error")
	}
}

func TestWithContext(t *testing.T) {
	err := errors.ContractViolation("missing operations").
		WithContext("capability", "test/counter").
		WithContext("missing_operations", []string{"Count"})

	if err.Context["capability"] != "test/counter" {
		t.Errorf("context = %v", err.Context)
	}
}
