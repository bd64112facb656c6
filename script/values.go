package script

import (
	"errors"
	"reflect"

	"github.com/dop251/goja"
)

var stringType = reflect.TypeOf("")

// IsCallable reports whether v can be invoked as a function.
func IsCallable(v goja.Value) bool {
	if v == nil {
		return false
	}
	_, ok := goja.AssertFunction(v)
	return ok
}

// IsString reports whether v is a script string.
func IsString(v goja.Value) bool {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return false
	}
	return v.ExportType() == stringType
}

// Bytes extracts raw binary content from v. It accepts an ArrayBuffer
// or a byte-typed array view; any other value reports ok false.
func Bytes(v goja.Value) ([]byte, bool) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, false
	}
	switch data := v.Export().(type) {
	case goja.ArrayBuffer:
		return data.Bytes(), true
	case []byte:
		return data, true
	}
	return nil, false
}

// ErrorMessage extracts the text of a script-raised error: for a throw
// it returns the thrown value's string form (so `throw new Error("x")`
// reads "Error: x"), for any other error its Error() text.
func ErrorMessage(err error) string {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		if v := ex.Value(); v != nil {
			return v.String()
		}
	}
	return err.Error()
}

// stringOf returns v's string form, or "" for nil, undefined, or null.
func stringOf(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}
