// Package dispatch - Single-provider binding
package dispatch

import (
	"capability-dispatch/internal/errors"
)

// Binding associates a consumer with exactly one provider. Immutable
// after construction: swapping providers means constructing a new
// binding, never mutating an existing one.
type Binding[Req, Res any] struct {
	provider Handler[Req, Res]
}

// Bind creates a binding to a single provider
func Bind[Req, Res any](provider Handler[Req, Res]) (*Binding[Req, Res], error) {
	if provider == nil {
		return nil, errors.Input("cannot bind a nil provider")
	}
	return &Binding[Req, Res]{provider: provider}, nil
}

// Invoke delegates to the bound provider and returns its result
// unchanged. Pure pass-through: no transformation, no caching.
func (b *Binding[Req, Res]) Invoke(req Req) (Res, error) {
	return b.provider.Handle(req)
}
