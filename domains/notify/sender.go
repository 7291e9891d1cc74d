// Package notify - Message sender capability and providers
// Senders deliver to an injected writer; no real transport. Adding a
// channel means adding a sender, never editing the service.
package notify

import (
	"fmt"
	"io"

	"capability-dispatch/internal/errors"
)

// Sender delivers one message over one channel
type Sender interface {
	// Send delivers the message verbatim
	Send(message string) error
}

// ChannelSender delivers messages tagged with a channel label
type ChannelSender struct {
	channel string
	out     io.Writer
}

// NewChannelSender creates a sender for a named channel
func NewChannelSender(channel string, out io.Writer) (*ChannelSender, error) {
	if channel == "" {
		return nil, errors.Input("sender requires a channel name")
	}
	if out == nil {
		return nil, errors.Input("sender requires an output writer")
	}
	return &ChannelSender{channel: channel, out: out}, nil
}

// Channel returns the channel label
func (s *ChannelSender) Channel() string {
	return s.channel
}

// Send writes one delivery line carrying the literal message
func (s *ChannelSender) Send(message string) error {
	_, err := fmt.Fprintf(s.out, "[%s] %s\n", s.channel, message)
	if err != nil {
		return errors.Wrapf(errors.TypeInternal, err, "delivery failed on channel %s", s.channel)
	}
	return nil
}

// NewEmailSender creates the email channel sender
func NewEmailSender(out io.Writer) (*ChannelSender, error) {
	return NewChannelSender("email", out)
}

// NewSMSSender creates the SMS channel sender
func NewSMSSender(out io.Writer) (*ChannelSender, error) {
	return NewChannelSender("sms", out)
}

// NewPushSender creates the push-notification channel sender
func NewPushSender(out io.Writer) (*ChannelSender, error) {
	return NewChannelSender("push", out)
}

// NewWhatsAppSender creates the WhatsApp channel sender
func NewWhatsAppSender(out io.Writer) (*ChannelSender, error) {
	return NewChannelSender("whatsapp", out)
}
