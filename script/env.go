package script

import (
	"fmt"

	"github.com/dop251/goja"
)

// Env owns an embedded JavaScript engine.
//
// Contract:
// - Concurrency: an Env is confined to a single goroutine. All script
//   invocations, including every format Read and Write, must run on the
//   goroutine that owns the Env.
// - Context: invocations are synchronous and run to completion or
//   throw; there is no cancellation or timeout.
// - Errors: a script throw is returned as a *goja.Exception; use
//   ErrorMessage to extract the thrown value's text.
type Env struct {
	vm *goja.Runtime
}

// NewEnv creates a fresh JavaScript engine. Exported Go methods are
// visible to scripts with a lower-cased first letter (ReadAsText
// becomes readAsText).
func NewEnv() *Env {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.UncapFieldNameMapper())
	return &Env{vm: vm}
}

// Runtime exposes the underlying engine for host bindings.
func (e *Env) Runtime() *goja.Runtime { return e.vm }

// RunScript evaluates src and returns the value of its final
// expression. name is used in stack traces.
func (e *Env) RunScript(name, src string) (goja.Value, error) {
	return e.vm.RunScript(name, src)
}

// Call invokes fn with the given this binding. Arguments are converted
// to script values; a script throw is returned as the error.
func (e *Env) Call(fn goja.Value, this goja.Value, args ...any) (goja.Value, error) {
	callable, ok := goja.AssertFunction(fn)
	if !ok {
		return nil, fmt.Errorf("script: value is not callable")
	}
	values := make([]goja.Value, len(args))
	for i, arg := range args {
		values[i] = e.vm.ToValue(arg)
	}
	return callable(this, values...)
}
