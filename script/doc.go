// Package script bridges JavaScript plugins into the format registry.
//
// A plugin supplies a map format as a plain object — the descriptor —
// and registers it through the host binding installed by Install:
//
//	registerMapFormat("grid", {
//	    name: "Grid",
//	    extension: "grid",
//	    read: function(file) {
//	        var map = new TileMap(2, 2, 16, 16);
//	        var layer = map.addLayer("ground");
//	        // ... parse file.readAsText() into layer ...
//	        return map;
//	    },
//	    write: function(map, path, options) {
//	        return "serialized content"; // or an ArrayBuffer
//	    },
//	});
//
// # Descriptor contract
//
// A descriptor must carry a string "name", a string "extension" (no
// leading dot), and at least one function of "read" and "write". The
// shape is checked once, at registration; the read/write callbacks are
// re-inspected on every capability query, so a script may add or remove
// them after registration.
//
// The read callback receives a File bound to the source path and
// returns a map view (or throws). The write callback receives a
// read-only view of the map being saved, the destination path, and an
// opaque integer options bitmask; it returns the file content as a
// string (text mode) or an ArrayBuffer (binary mode), or throws.
//
// # Execution model
//
// Everything is synchronous and single-threaded: a callback runs to
// completion or throws, on the goroutine that owns the Env. The engine
// is not reentrant; at most one format operation may execute at a time
// across all formats sharing an Env.
//
// # Errors
//
// Script throws and host-detected type errors both surface as the
// adapter's Error string; they never become Go errors on the read or
// write path. Failed writes leave the destination file untouched.
package script
