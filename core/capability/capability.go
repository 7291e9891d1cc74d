// Package capability - Capability contract definitions
// A capability is a named interface contract a provider must satisfy in
// full. No partial implementations: a provider either conforms or is
// rejected at registration time.
package capability

import (
	"reflect"
	"strings"

	"capability-dispatch/internal/errors"
)

// Definition is a named capability backed by a Go interface contract
type Definition struct {
	name     string
	contract reflect.Type
}

// Define declares a capability for the interface type T.
// Panics if T is not an interface type or the name is empty; both are
// package-initialization programming errors, not runtime conditions.
func Define[T any](name string) Definition {
	if name == "" {
		panic("capability: empty capability name")
	}
	contract := reflect.TypeOf((*T)(nil)).Elem()
	if contract.Kind() != reflect.Interface {
		panic("capability: contract type for " + name + " is not an interface")
	}
	return Definition{
		name:     name,
		contract: contract,
	}
}

// Name returns the capability name
func (d Definition) Name() string {
	return d.name
}

// Contract returns the interface type providers must implement
func (d Definition) Contract() reflect.Type {
	return d.contract
}

// Operations returns the names of the contracted operations
func (d Definition) Operations() []string {
	ops := make([]string, 0, d.contract.NumMethod())
	for i := 0; i < d.contract.NumMethod(); i++ {
		ops = append(ops, d.contract.Method(i).Name)
	}
	return ops
}

// Conforms verifies that impl satisfies every contracted operation.
// Returns a CONTRACT_VIOLATION error naming the missing operations
// when it does not.
func (d Definition) Conforms(impl interface{}) error {
	if impl == nil {
		return errors.Newf(errors.TypeInput, "nil provider for capability %s", d.name)
	}

	t := reflect.TypeOf(impl)
	if t.Implements(d.contract) {
		return nil
	}

	missing := d.MissingOperations(impl)
	return errors.ContractViolation(
		"provider " + t.String() + " does not satisfy capability " + d.name +
			" (missing: " + strings.Join(missing, ", ") + ")").
		WithContext("capability", d.name).
		WithContext("missing_operations", missing)
}

// MissingOperations returns the contracted operations impl does not
// implement with a matching signature
func (d Definition) MissingOperations(impl interface{}) []string {
	t := reflect.TypeOf(impl)
	if t == nil {
		return d.Operations()
	}

	var missing []string
	for i := 0; i < d.contract.NumMethod(); i++ {
		want := d.contract.Method(i)
		got, ok := t.MethodByName(want.Name)
		if !ok || !signatureMatches(got.Type, want.Type) {
			missing = append(missing, want.Name)
		}
	}
	return missing
}

// signatureMatches compares a concrete method signature against a
// contract method signature. The concrete signature carries the
// receiver as its first parameter.
func signatureMatches(impl, contract reflect.Type) bool {
	if impl.NumIn()-1 != contract.NumIn() || impl.NumOut() != contract.NumOut() {
		return false
	}
	for i := 0; i < contract.NumIn(); i++ {
		if impl.In(i+1) != contract.In(i) {
			return false
		}
	}
	for i := 0; i < contract.NumOut(); i++ {
		if impl.Out(i) != contract.Out(i) {
			return false
		}
	}
	return true
}
