// Package dispatch - Fan-out failure policy
package dispatch

import (
	"capability-dispatch/internal/errors"
)

// Policy selects how a fan-out reacts to a provider failure
type Policy int

const (
	// FailFast propagates the first failure immediately; remaining
	// providers are not invoked
	FailFast Policy = iota

	// BestEffort invokes every provider and surfaces the collected
	// failures as one aggregate error
	BestEffort
)

// String returns the policy's configuration name
func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case BestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy configuration name
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "fail-fast":
		return FailFast, nil
	case "best-effort":
		return BestEffort, nil
	default:
		return FailFast, errors.Newf(errors.TypeInput, "unknown fan-out policy: %q", s)
	}
}
