// Package dispatch_test - Fan-out tests
package dispatch_test

import (
	"fmt"
	"testing"

	"go.uber.org/multierr"

	"capability-dispatch/core/dispatch"
	"capability-dispatch/internal/errors"
)

// recordingActor appends its label to a shared call log
type recordingActor struct {
	label string
	fail  bool
	calls *[]string
}

func (a recordingActor) Act(msg string) error {
	*a.calls = append(*a.calls, a.label+":"+msg)
	if a.fail {
		return fmt.Errorf("%s failed", a.label)
	}
	return nil
}

func TestBindAllRejectsNilProvider(t *testing.T) {
	var calls []string
	_, err := dispatch.BindAll[string](dispatch.FailFast,
		recordingActor{label: "a", calls: &calls}, nil)
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("BindAll with nil = %v, want INPUT_ERROR", err)
	}
}

func TestInvokeAllCallsEachOnceInOrder(t *testing.T) {
	var calls []string
	f, err := dispatch.BindAll[string](dispatch.FailFast,
		recordingActor{label: "email", calls: &calls},
		recordingActor{label: "sms", calls: &calls},
		recordingActor{label: "push", calls: &calls},
	)
	if err != nil {
		t.Fatalf("BindAll() = %v", err)
	}

	if err := f.InvokeAll("hi"); err != nil {
		t.Fatalf("InvokeAll() = %v", err)
	}

	want := []string{"email:hi", "sms:hi", "push:hi"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, calls[i], want[i])
		}
	}
}

func TestInvokeAllFailFastStopsAtFirstFailure(t *testing.T) {
	var calls []string
	f, err := dispatch.BindAll[string](dispatch.FailFast,
		recordingActor{label: "a", calls: &calls},
		recordingActor{label: "b", fail: true, calls: &calls},
		recordingActor{label: "c", calls: &calls},
	)
	if err != nil {
		t.Fatalf("BindAll() = %v", err)
	}

	if err := f.InvokeAll("x"); err == nil {
		t.Fatal("InvokeAll() = nil, want error")
	}
	if len(calls) != 2 {
		t.Errorf("calls = %v, want a and b only", calls)
	}
}

func TestInvokeAllBestEffortCollectsAllFailures(t *testing.T) {
	var calls []string
	f, err := dispatch.BindAll[string](dispatch.BestEffort,
		recordingActor{label: "a", fail: true, calls: &calls},
		recordingActor{label: "b", calls: &calls},
		recordingActor{label: "c", fail: true, calls: &calls},
	)
	if err != nil {
		t.Fatalf("BindAll() = %v", err)
	}

	err = f.InvokeAll("x")
	if err == nil {
		t.Fatal("InvokeAll() = nil, want aggregate error")
	}
	if got := multierr.Errors(err); len(got) != 2 {
		t.Errorf("aggregated %d errors, want 2: %v", len(got), err)
	}
	if len(calls) != 3 {
		t.Errorf("calls = %v, want all three providers invoked", calls)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    dispatch.Policy
		wantErr bool
	}{
		{input: "fail-fast", want: dispatch.FailFast},
		{input: "best-effort", want: dispatch.BestEffort},
		{input: "retry", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := dispatch.ParsePolicy(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePolicy(%q) = nil error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePolicy(%q) = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
