package format

import "github.com/tilewright/mapformat/tilemap"

// Capability describes the operations a format supports.
type Capability uint8

// Capability flags. Both bits may be set.
const (
	// Read indicates the format can load maps from files.
	Read Capability = 1 << iota

	// Write indicates the format can save maps to files.
	Write
)

// Has reports whether all flags in want are set.
func (c Capability) Has(want Capability) bool { return c&want == want }

// String returns a readable flag list, e.g. "read|write".
func (c Capability) String() string {
	switch {
	case c.Has(Read | Write):
		return "read|write"
	case c.Has(Read):
		return "read"
	case c.Has(Write):
		return "write"
	}
	return "none"
}

// WriteOptions is an opaque bitmask forwarded to a format on write. The
// registry and pipelines never interpret its bits; their meaning is a
// contract between the host application and the format implementation.
type WriteOptions uint32

// Format is a pluggable map file format.
//
// Contract:
// - Concurrency: implementations are not required to be safe for
//   concurrent use. Only one format operation may run at a time,
//   system-wide, on the goroutine that owns the format's backing
//   environment.
// - Errors: Read and Write never fail through Go errors. Callers detect
//   failure from the return value (nil map, false) and consult Error
//   for diagnostics. Error is overwritten at the start of each Read or
//   Write and is stale at any other time.
// - Ownership: the map returned by Read is caller-owned. The map passed
//   to Write is read-only for the duration of the call.
type Format interface {
	// ShortName returns the format's stable identifier, distinct from
	// its display name.
	ShortName() string

	// Capabilities returns the operations currently supported.
	Capabilities() Capability

	// NameFilter returns a file-selection filter of the form
	// "<name> (*.<extension>)".
	NameFilter() string

	// SupportsFile reports whether path ends with the format's
	// extension. The match is case-sensitive.
	SupportsFile(path string) bool

	// Read loads a map from path, or returns nil on failure.
	Read(path string) *tilemap.Map

	// Write saves m to path and reports success. On failure the
	// destination file is left exactly as it was.
	Write(m *tilemap.Map, path string, options WriteOptions) bool

	// Error returns the diagnostic for the most recent failed Read or
	// Write, or "" if it succeeded.
	Error() string
}
