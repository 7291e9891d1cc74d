// Package notify - Notification broadcast service
package notify

import (
	"capability-dispatch/core/dispatch"
	"capability-dispatch/internal/errors"
)

// Service broadcasts a message to an ordered list of senders. The
// sender list and failure policy are fixed at construction.
type Service struct {
	fanout *dispatch.FanOut[string]
}

// NewService creates a broadcast service over the given senders,
// invoked in the given order
func NewService(policy dispatch.Policy, senders ...Sender) (*Service, error) {
	if len(senders) == 0 {
		return nil, errors.Input("notification service requires at least one sender")
	}

	actors := make([]dispatch.Actor[string], 0, len(senders))
	for i, s := range senders {
		if s == nil {
			return nil, errors.Newf(errors.TypeInput, "nil sender at position %d", i)
		}
		actors = append(actors, dispatch.ActorFunc[string](s.Send))
	}

	fanout, err := dispatch.BindAll(policy, actors...)
	if err != nil {
		return nil, err
	}
	return &Service{fanout: fanout}, nil
}

// Notify delivers the message through every sender in binding order
func (s *Service) Notify(message string) error {
	return s.fanout.InvokeAll(message)
}

// Channels returns the number of bound senders
func (s *Service) Channels() int {
	return s.fanout.Len()
}
