package script

import (
	"os"

	"github.com/dop251/goja"
	"golang.org/x/text/transform"

	"github.com/tilewright/mapformat/savefile"
)

// File is the read-only file accessor handed to a format's read
// callback. Each read opens, reads, and closes the file; no handle is
// retained between calls.
//
// A failed read returns empty content and records the reason; callers
// cannot tell an empty file from a failed open without checking Error.
// The error is set on failure and not cleared by a later success.
type File struct {
	env  *Env
	path string
	err  string
}

// NewFile binds a file accessor to path.
func NewFile(env *Env, path string) *File {
	return &File{env: env, path: path}
}

// Path returns the bound file path.
func (f *File) Path() string { return f.path }

// Error returns the message recorded by the most recent failed read,
// or "".
func (f *File) Error() string { return f.err }

// ReadAsText returns the file's full content decoded in text mode
// (CRLF normalized to LF). On failure it records the error and
// returns "".
func (f *File) ReadAsText() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		f.err = err.Error()
		return ""
	}
	decoded, _, err := transform.Bytes(savefile.TextDecoder(), data)
	if err != nil {
		f.err = err.Error()
		return ""
	}
	return string(decoded)
}

// ReadAsBinary returns the file's exact bytes as an ArrayBuffer. On
// failure it records the error and returns an empty buffer.
func (f *File) ReadAsBinary() goja.ArrayBuffer {
	data, err := os.ReadFile(f.path)
	if err != nil {
		f.err = err.Error()
		data = nil
	}
	return f.env.vm.NewArrayBuffer(data)
}
