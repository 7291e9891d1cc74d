// Package registry_test - Provider registry tests
package registry_test

import (
	"testing"

	"capability-dispatch/core/capability"
	"capability-dispatch/core/registry"
	"capability-dispatch/internal/errors"
)

type counter interface {
	Count() int
}

type fixedCounter struct {
	n int
}

func (c fixedCounter) Count() int {
	return c.n
}

var counterCap = capability.Define[counter]("test/counter")

func TestRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(counterCap, "one", fixedCounter{n: 1}); err != nil {
		t.Fatalf("Register() = %v", err)
	}

	impl, err := reg.Lookup("test/counter", "one")
	if err != nil {
		t.Fatalf("Lookup() = %v", err)
	}
	if got := impl.(counter).Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestRegisterRejections(t *testing.T) {
	reg := registry.New()
	if err := reg.Register(counterCap, "one", fixedCounter{n: 1}); err != nil {
		t.Fatalf("Register() = %v", err)
	}

	tests := []struct {
		name     string
		provider string
		impl     interface{}
		wantErr  errors.Type
	}{
		{
			name:     "duplicate provider",
			provider: "one",
			impl:     fixedCounter{n: 2},
			wantErr:  errors.TypeDuplicateProvider,
		},
		{
			name:     "non-conforming provider",
			provider: "broken",
			impl:     struct{}{},
			wantErr:  errors.TypeContractViolation,
		},
		{
			name:     "empty provider name",
			provider: "",
			impl:     fixedCounter{n: 3},
			wantErr:  errors.TypeInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(counterCap, tt.provider, tt.impl)
			if err == nil {
				t.Fatal("Register() = nil, want error")
			}
			if !errors.IsType(err, tt.wantErr) {
				t.Errorf("Register() = %v, want type %s", err, tt.wantErr)
			}
		})
	}
}

func TestLookupFailures(t *testing.T) {
	reg := registry.New()
	if err := reg.Register(counterCap, "one", fixedCounter{n: 1}); err != nil {
		t.Fatalf("Register() = %v", err)
	}

	if _, err := reg.Lookup("test/unknown", "one"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("unknown capability = %v, want NOT_FOUND", err)
	}

	if _, err := reg.Lookup("test/counter", "two"); !errors.IsType(err, errors.TypeUnrecognizedVariant) {
		t.Errorf("unknown provider = %v, want UNRECOGNIZED_VARIANT", err)
	}
}

func TestProvidersPreservesRegistrationOrder(t *testing.T) {
	reg := registry.New()

	names := []string{"third", "first", "second"}
	for i, name := range names {
		if err := reg.Register(counterCap, name, fixedCounter{n: i}); err != nil {
			t.Fatalf("Register(%s) = %v", name, err)
		}
	}

	got := reg.Providers("test/counter")
	if len(got) != len(names) {
		t.Fatalf("Providers() = %v, want %v", got, names)
	}
	for i := range names {
		if got[i] != names[i] {
			t.Errorf("Providers()[%d] = %s, want %s", i, got[i], names[i])
		}
	}
}

func TestResolve(t *testing.T) {
	reg := registry.New()
	if err := reg.Register(counterCap, "one", fixedCounter{n: 1}); err != nil {
		t.Fatalf("Register() = %v", err)
	}

	c, err := registry.Resolve[counter](reg, "test/counter", "one")
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}

	// fixedCounter does not implement fmt.Stringer; asking for it is an
	// operation outside the declared capability.
	type stringer interface {
		String() string
	}
	if _, err := registry.Resolve[stringer](reg, "test/counter", "one"); !errors.IsType(err, errors.TypeUnsupportedOperation) {
		t.Errorf("Resolve to wider interface = %v, want UNSUPPORTED_OPERATION", err)
	}
}

// Adding a provider must not disturb existing registrations.
func TestRegistrationIsAdditive(t *testing.T) {
	reg := registry.New()
	if err := reg.Register(counterCap, "one", fixedCounter{n: 1}); err != nil {
		t.Fatalf("Register() = %v", err)
	}

	before, err := registry.Resolve[counter](reg, "test/counter", "one")
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	wantBefore := before.Count()

	if err := reg.Register(counterCap, "two", fixedCounter{n: 2}); err != nil {
		t.Fatalf("Register() = %v", err)
	}

	after, err := registry.Resolve[counter](reg, "test/counter", "one")
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if after.Count() != wantBefore {
		t.Errorf("existing provider changed after registration: %d != %d", after.Count(), wantBefore)
	}
}
