package script

import (
	"strings"
	"testing"

	"github.com/tilewright/mapformat/tilemap"
)

func TestMapView_ScriptMutation(t *testing.T) {
	env := NewEnv()
	m := tilemap.NewMap(2, 2, 16, 16)
	view := NewMapView(env, m)

	if err := env.Runtime().Set("map", view); err != nil {
		t.Fatal(err)
	}
	mustRun(t, env, `
		var layer = map.addLayer("ground");
		layer.setTile(0, 1, 5);
		layer.setOpacity(0.5);
		map.setProperty("author", "test");
	`)

	if m.LayerCount() != 1 {
		t.Fatalf("LayerCount() = %d, want 1", m.LayerCount())
	}
	layer := m.LayerAt(0)
	if got := layer.TileAt(0, 1); got != 5 {
		t.Errorf("TileAt(0, 1) = %d, want 5", got)
	}
	if layer.Opacity != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", layer.Opacity)
	}
	if m.Properties["author"] != "test" {
		t.Errorf("Properties[author] = %v, want %q", m.Properties["author"], "test")
	}
}

func TestMapView_ReadOnlyRejectsMutation(t *testing.T) {
	env := NewEnv()
	m := tilemap.NewMap(2, 2, 16, 16)
	m.AddLayer(tilemap.NewLayer("ground", 2, 2))
	view := NewReadOnlyMapView(env, m)

	if err := env.Runtime().Set("map", view); err != nil {
		t.Fatal(err)
	}

	mutations := []string{
		`map.setSize(1, 1)`,
		`map.setTileSize(8, 8)`,
		`map.addLayer("extra")`,
		`map.setProperty("k", "v")`,
		`map.layerAt(0).setTile(0, 0, 1)`,
		`map.layerAt(0).setName("renamed")`,
		`map.layerAt(0).setVisible(false)`,
	}
	for _, src := range mutations {
		_, err := env.RunScript("test.js", src)
		if err == nil {
			t.Errorf("%s should throw on a read-only view", src)
			continue
		}
		if !strings.Contains(err.Error(), "read-only") {
			t.Errorf("%s threw %q, want a read-only violation", src, err.Error())
		}
	}

	// Reads are always allowed.
	mustRun(t, env, `
		map.width(); map.height(); map.layerCount();
		map.layerAt(0).tileAt(0, 0); map.layerAt(0).name();
		map.property("k");
	`)

	if m.LayerCount() != 1 || m.Width != 2 {
		t.Error("read-only view leaked a mutation into the map")
	}
}

func TestMapView_LayerAtOutOfRange(t *testing.T) {
	env := NewEnv()
	view := NewMapView(env, tilemap.NewMap(1, 1, 16, 16))

	if err := env.Runtime().Set("map", view); err != nil {
		t.Fatal(err)
	}
	if _, err := env.RunScript("test.js", `map.layerAt(0)`); err == nil {
		t.Error("layerAt(0) should throw on an empty map")
	}
}
