package format

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrFormatExists is returned when registering a duplicate format.
var ErrFormatExists = errors.New("format already registered")

// Registry manages the formats known to a host application.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Add registers a format under its short name.
func (r *Registry) Add(f Format) error {
	if f == nil {
		return fmt.Errorf("format is nil")
	}
	name := f.ShortName()
	if name == "" {
		return fmt.Errorf("format short name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formats[name]; exists {
		return fmt.Errorf("%w: %s", ErrFormatExists, name)
	}
	r.formats[name] = f
	return nil
}

// Remove unregisters a format. Removing a format that is not registered
// is a no-op.
func (r *Registry) Remove(f Format) {
	if f == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, exists := r.formats[f.ShortName()]; exists && current == f {
		delete(r.formats, f.ShortName())
	}
}

// Get retrieves a format by short name.
func (r *Registry) Get(shortName string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formats[shortName]
	return f, ok
}

// List returns all registered formats in no particular order.
func (r *Registry) List() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.formats))
	for _, f := range r.formats {
		out = append(out, f)
	}
	return out
}

// Names returns the registered short names sorted for deterministic
// output.
func (r *Registry) Names() []string {
	all := r.List()
	out := make([]string, 0, len(all))
	for _, f := range all {
		out = append(out, f.ShortName())
	}
	sort.Strings(out)
	return out
}

// FindSupporting returns the first format, in short-name order, whose
// extension matches path.
func (r *Registry) FindSupporting(path string) (Format, bool) {
	for _, name := range r.Names() {
		f, ok := r.Get(name)
		if ok && f.SupportsFile(path) {
			return f, true
		}
	}
	return nil, false
}

// ReadCapable returns the formats that currently support reading.
func (r *Registry) ReadCapable() []Format {
	return r.withCapability(Read)
}

// WriteCapable returns the formats that currently support writing.
func (r *Registry) WriteCapable() []Format {
	return r.withCapability(Write)
}

func (r *Registry) withCapability(want Capability) []Format {
	all := r.List()
	out := make([]Format, 0, len(all))
	for _, f := range all {
		if f.Capabilities().Has(want) {
			out = append(out, f)
		}
	}
	return out
}

// NameFilters returns the file-selection filter strings of all
// registered formats, sorted by short name.
func (r *Registry) NameFilters() []string {
	names := r.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if f, ok := r.Get(name); ok {
			out = append(out, f.NameFilter())
		}
	}
	return out
}
