// Package format provides the map file format abstraction and registry.
//
// A Format reads and/or writes tile maps for one file extension. Formats
// may be implemented natively in Go or supplied by scripts (see the
// script package); the registry treats both uniformly.
//
// # Capabilities
//
// A format advertises which operations it supports via Capability flags:
//
//	f.Capabilities().Has(format.Read)  // can load maps
//	f.Capabilities().Has(format.Write) // can save maps
//
// Capabilities are derived, not stored: an implementation may answer
// differently between calls when its backing definition changes.
//
// # Registry
//
// The Registry manages the formats known to a host application:
//
//	reg := format.NewRegistry()
//	if err := reg.Add(f); err != nil { ... }
//
//	if f, ok := reg.FindSupporting("level1.custom"); ok {
//	    m := f.Read("level1.custom")
//	}
//
// A format is available exactly between Add and Remove; there is no
// implicit process-wide registry.
package format
