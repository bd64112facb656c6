package script_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tilewright/mapformat/format"
	"github.com/tilewright/mapformat/script"
	"github.com/tilewright/mapformat/tilemap"
)

// A plugin that stores maps as comma-separated rows of tile IDs.
const gridPlugin = `
registerMapFormat("grid", {
	name: "Text Grid",
	extension: "grid",

	read: function(file) {
		var lines = file.readAsText().trim().split("\n");
		var width = lines[0].split(",").length;
		var map = new TileMap(width, lines.length, 16, 16);
		var layer = map.addLayer("ground");
		for (var y = 0; y < lines.length; y++) {
			var cells = lines[y].split(",");
			for (var x = 0; x < cells.length; x++) {
				layer.setTile(x, y, parseInt(cells[x], 10));
			}
		}
		return map;
	},

	write: function(map, path, options) {
		var layer = map.layerAt(0);
		var rows = [];
		for (var y = 0; y < layer.height(); y++) {
			var row = [];
			for (var x = 0; x < layer.width(); x++) {
				row.push(layer.tileAt(x, y));
			}
			rows.push(row.join(","));
		}
		return rows.join("\n") + "\n";
	},
});
`

func Example() {
	// Create a script environment, install the host bindings, and let
	// the plugin register its format.
	env := script.NewEnv()
	reg := format.NewRegistry()
	if err := script.Install(env, reg); err != nil {
		log.Fatal(err)
	}
	if _, err := env.RunScript("grid-plugin.js", gridPlugin); err != nil {
		log.Fatal(err)
	}

	f, _ := reg.Get("grid")
	fmt.Println(f.NameFilter())
	fmt.Println(f.Capabilities())

	// Round-trip a small map through the plugin.
	dir, err := os.MkdirTemp("", "grid-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "level.grid")

	m := tilemap.NewMap(3, 1, 16, 16)
	layer := tilemap.NewLayer("ground", 3, 1)
	layer.SetTile(0, 0, 1)
	layer.SetTile(2, 0, 9)
	m.AddLayer(layer)

	if !f.Write(m, path, 0) {
		log.Fatal(f.Error())
	}

	loaded := f.Read(path)
	if loaded == nil {
		log.Fatal(f.Error())
	}
	fmt.Println(loaded.LayerAt(0).TileAt(2, 0))
	// Output:
	// Text Grid (*.grid)
	// read|write
	// 9
}
