// Package dispatch - Ordered multi-provider fan-out
package dispatch

import (
	"go.uber.org/multierr"

	"capability-dispatch/internal/errors"
)

// FanOut associates a consumer with an ordered list of providers.
// InvokeAll calls each provider exactly once, first to last; order is
// the binding order and is significant.
type FanOut[Req any] struct {
	providers []Actor[Req]
	policy    Policy
}

// BindAll creates a fan-out over the given providers in order
func BindAll[Req any](policy Policy, providers ...Actor[Req]) (*FanOut[Req], error) {
	for i, p := range providers {
		if p == nil {
			return nil, errors.Newf(errors.TypeInput, "cannot bind nil provider at position %d", i)
		}
	}
	return &FanOut[Req]{
		providers: append([]Actor[Req](nil), providers...),
		policy:    policy,
	}, nil
}

// Len returns the number of bound providers
func (f *FanOut[Req]) Len() int {
	return len(f.providers)
}

// Policy returns the configured failure policy
func (f *FanOut[Req]) Policy() Policy {
	return f.policy
}

// InvokeAll invokes the operation on every bound provider in binding
// order. Under FailFast the first failure stops the fan-out; under
// BestEffort every provider runs and failures are aggregated.
func (f *FanOut[Req]) InvokeAll(req Req) error {
	if f.policy == FailFast {
		for _, p := range f.providers {
			if err := p.Act(req); err != nil {
				return err
			}
		}
		return nil
	}

	var errs error
	for _, p := range f.providers {
		errs = multierr.Append(errs, p.Act(req))
	}
	return errs
}
