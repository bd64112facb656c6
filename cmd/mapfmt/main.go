// Command mapfmt converts tile maps between script-defined file formats.
//
// Format plugins are JavaScript files passed with --plugin; each plugin
// registers one or more formats via registerMapFormat. Example:
//
//	mapfmt --plugin grid.js --plugin pack.js convert level.grid level.pack
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
