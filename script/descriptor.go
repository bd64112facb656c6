package script

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// ErrInvalidDescriptor is returned when a candidate descriptor does not
// have the required shape. The wrapped message names the violated
// requirement.
var ErrInvalidDescriptor = errors.New("invalid map format object")

// ValidateDescriptor checks that v has the shape required of a map
// format descriptor: a string "name", a string "extension", and at
// least one function of "read" and "write". The shape is checked here
// only; after registration the descriptor is trusted apart from the
// per-call capability checks.
func (e *Env) ValidateDescriptor(v goja.Value) error {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return fmt.Errorf("%w (object expected)", ErrInvalidDescriptor)
	}
	obj := v.ToObject(e.vm)

	if !IsString(obj.Get("name")) {
		return fmt.Errorf("%w (requires string 'name' property)", ErrInvalidDescriptor)
	}
	if !IsString(obj.Get("extension")) {
		return fmt.Errorf("%w (requires string 'extension' property)", ErrInvalidDescriptor)
	}
	if !IsCallable(obj.Get("read")) && !IsCallable(obj.Get("write")) {
		return fmt.Errorf("%w (requires a 'write' and/or 'read' function property)", ErrInvalidDescriptor)
	}
	return nil
}
