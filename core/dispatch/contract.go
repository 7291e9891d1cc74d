// Package dispatch - Strategy dispatch primitives
// A consumer holds either one provider (Binding) or an ordered list of
// providers (FanOut) and delegates through the contract alone. Dispatch
// is plain interface polymorphism: no type inspection, no tag branching.
package dispatch

// Handler is a capability operation that computes a result from a request
type Handler[Req, Res any] interface {
	Handle(req Req) (Res, error)
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc[Req, Res any] func(req Req) (Res, error)

// Handle invokes the function
func (f HandlerFunc[Req, Res]) Handle(req Req) (Res, error) {
	return f(req)
}

// Actor is a capability operation invoked for its side effect
type Actor[Req any] interface {
	Act(req Req) error
}

// ActorFunc adapts a function to the Actor interface
type ActorFunc[Req any] func(req Req) error

// Act invokes the function
func (f ActorFunc[Req]) Act(req Req) error {
	return f(req)
}
