package script

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/tilewright/mapformat/format"
	"github.com/tilewright/mapformat/savefile"
	"github.com/tilewright/mapformat/tilemap"
)

// Format adapts a validated script descriptor to format.Format.
//
// The descriptor object remains owned by the script environment; the
// adapter holds a non-owning reference and re-reads its properties on
// every call, so scripts may mutate the descriptor after registration
// and see the change reflected in capabilities, the name filter, and
// file matching.
type Format struct {
	env       *Env
	shortName string
	object    *goja.Object
	lastError string
}

// NewFormat validates descriptor and wraps it in a Format. The short
// name is the format's stable identifier, distinct from the
// descriptor's display name.
func NewFormat(env *Env, shortName string, descriptor goja.Value) (*Format, error) {
	if err := env.ValidateDescriptor(descriptor); err != nil {
		return nil, err
	}
	return &Format{
		env:       env,
		shortName: shortName,
		object:    descriptor.ToObject(env.vm),
	}, nil
}

// ShortName returns the format's stable identifier.
func (f *Format) ShortName() string { return f.shortName }

// Error returns the diagnostic for the most recent failed Read or
// Write, or "" if it succeeded.
func (f *Format) Error() string { return f.lastError }

// Capabilities derives the supported operations from the descriptor's
// current read/write callability.
func (f *Format) Capabilities() format.Capability {
	var caps format.Capability
	if IsCallable(f.object.Get("read")) {
		caps |= format.Read
	}
	if IsCallable(f.object.Get("write")) {
		caps |= format.Write
	}
	return caps
}

// NameFilter composes the file-selection filter from the descriptor's
// current name and extension.
func (f *Format) NameFilter() string {
	name := stringOf(f.object.Get("name"))
	extension := stringOf(f.object.Get("extension"))
	return fmt.Sprintf("%s (*.%s)", name, extension)
}

// SupportsFile reports whether path ends with "." plus the descriptor's
// extension, case-sensitively.
func (f *Format) SupportsFile(path string) bool {
	extension := stringOf(f.object.Get("extension"))
	return strings.HasSuffix(path, "."+extension)
}

// Read invokes the descriptor's read callback with a File bound to
// path and clones the map out of the returned view. It returns nil on
// failure; Error reports the reason.
func (f *Format) Read(path string) *tilemap.Map {
	f.lastError = ""

	file := NewFile(f.env, path)

	result, err := f.env.Call(f.object.Get("read"), f.object, file)
	if err != nil {
		f.lastError = ErrorMessage(err)
		return nil
	}

	if result != nil {
		if view, ok := result.Export().(*MapView); ok {
			return view.Map().Clone()
		}
	}

	f.lastError = "invalid return value for 'read' (map expected)"
	return nil
}

// Write invokes the descriptor's write callback with a read-only view
// of m, the destination path, and the options bitmask, then commits the
// returned content atomically. It reports success; on any failure the
// destination file is left exactly as it was and Error reports the
// reason.
func (f *Format) Write(m *tilemap.Map, path string, options format.WriteOptions) bool {
	f.lastError = ""

	view := NewReadOnlyMapView(f.env, m)

	result, err := f.env.Call(f.object.Get("write"), f.object, view, path, int64(options))
	if err != nil {
		f.lastError = ErrorMessage(err)
		return false
	}

	var (
		text string
		raw  []byte
		mode = savefile.Binary
	)
	if IsString(result) {
		text = result.String()
		mode = savefile.Text
	} else {
		var ok bool
		if raw, ok = Bytes(result); !ok {
			f.lastError = "invalid return value for 'write' (string or ArrayBuffer expected)"
			return false
		}
	}

	out, err := savefile.New(path, mode)
	if err != nil {
		f.lastError = err.Error()
		return false
	}

	if mode == savefile.Text {
		_, err = out.WriteString(text)
	} else {
		_, err = out.Write(raw)
	}
	if err != nil {
		out.Discard()
		f.lastError = err.Error()
		return false
	}

	if err := out.Commit(); err != nil {
		f.lastError = err.Error()
		return false
	}
	return true
}
