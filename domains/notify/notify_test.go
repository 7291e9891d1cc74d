// Package notify_test - Sender and broadcast service tests
package notify_test

import (
	"bytes"
	"fmt"
	"testing"

	"go.uber.org/multierr"

	"capability-dispatch/core/dispatch"
	"capability-dispatch/core/registry"
	"capability-dispatch/domains/notify"
)

// failingSender always fails delivery
type failingSender struct{}

func (failingSender) Send(message string) error {
	return fmt.Errorf("channel down")
}

func TestChannelSenderDeliversLiteralMessage(t *testing.T) {
	var out bytes.Buffer
	sender, err := notify.NewChannelSender("email", &out)
	if err != nil {
		t.Fatalf("NewChannelSender() = %v", err)
	}

	if err := sender.Send("code:123456"); err != nil {
		t.Fatalf("Send() = %v", err)
	}
	if got := out.String(); got != "[email] code:123456\n" {
		t.Errorf("delivery = %q", got)
	}
}

func TestNewChannelSenderRejections(t *testing.T) {
	var out bytes.Buffer

	if _, err := notify.NewChannelSender("", &out); err == nil {
		t.Error("empty channel accepted")
	}
	if _, err := notify.NewChannelSender("email", nil); err == nil {
		t.Error("nil writer accepted")
	}
}

func TestServiceBroadcastsInBindingOrder(t *testing.T) {
	var out bytes.Buffer

	email, err := notify.NewEmailSender(&out)
	if err != nil {
		t.Fatalf("NewEmailSender() = %v", err)
	}
	sms, err := notify.NewSMSSender(&out)
	if err != nil {
		t.Fatalf("NewSMSSender() = %v", err)
	}

	service, err := notify.NewService(dispatch.FailFast, email, sms)
	if err != nil {
		t.Fatalf("NewService() = %v", err)
	}
	if service.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", service.Channels())
	}

	if err := service.Notify("code:123456"); err != nil {
		t.Fatalf("Notify() = %v", err)
	}

	want := "[email] code:123456\n[sms] code:123456\n"
	if got := out.String(); got != want {
		t.Errorf("deliveries = %q, want %q", got, want)
	}
}

func TestServiceFailFast(t *testing.T) {
	var out bytes.Buffer
	sms, err := notify.NewSMSSender(&out)
	if err != nil {
		t.Fatalf("NewSMSSender() = %v", err)
	}

	service, err := notify.NewService(dispatch.FailFast, failingSender{}, sms)
	if err != nil {
		t.Fatalf("NewService() = %v", err)
	}

	if err := service.Notify("x"); err == nil {
		t.Fatal("Notify() = nil, want error")
	}
	if out.Len() != 0 {
		t.Errorf("sms delivered after failure: %q", out.String())
	}
}

func TestServiceBestEffort(t *testing.T) {
	var out bytes.Buffer
	sms, err := notify.NewSMSSender(&out)
	if err != nil {
		t.Fatalf("NewSMSSender() = %v", err)
	}

	service, err := notify.NewService(dispatch.BestEffort, failingSender{}, sms, failingSender{})
	if err != nil {
		t.Fatalf("NewService() = %v", err)
	}

	err = service.Notify("x")
	if err == nil {
		t.Fatal("Notify() = nil, want aggregate error")
	}
	if got := multierr.Errors(err); len(got) != 2 {
		t.Errorf("aggregated %d errors, want 2", len(got))
	}
	if got := out.String(); got != "[sms] x\n" {
		t.Errorf("sms delivery = %q, want it to run despite failures", got)
	}
}

func TestNewServiceRejections(t *testing.T) {
	if _, err := notify.NewService(dispatch.FailFast); err == nil {
		t.Error("empty sender list accepted")
	}
	if _, err := notify.NewService(dispatch.FailFast, nil); err == nil {
		t.Error("nil sender accepted")
	}
}

func TestRegisterDefaults(t *testing.T) {
	var out bytes.Buffer
	reg := registry.New()
	if err := notify.RegisterDefaults(reg, &out); err != nil {
		t.Fatalf("RegisterDefaults() = %v", err)
	}

	want := []string{"email", "sms", "push", "whatsapp"}
	got := reg.Providers(notify.CapabilityName)
	if len(got) != len(want) {
		t.Fatalf("Providers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Providers()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
