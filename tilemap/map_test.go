package tilemap

import "testing"

func TestNewMap(t *testing.T) {
	m := NewMap(4, 3, 16, 16)

	if m.Orientation != Orthogonal {
		t.Errorf("Orientation = %q, want %q", m.Orientation, Orthogonal)
	}
	if m.Width != 4 || m.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", m.Width, m.Height)
	}
	if m.LayerCount() != 0 {
		t.Errorf("LayerCount() = %d, want 0", m.LayerCount())
	}
}

func TestMap_AddLayer(t *testing.T) {
	m := NewMap(2, 2, 16, 16)

	m.AddLayer(NewLayer("ground", 2, 2))
	m.AddLayer(nil)

	if m.LayerCount() != 1 {
		t.Fatalf("LayerCount() = %d, want 1", m.LayerCount())
	}
	if got := m.LayerAt(0).Name; got != "ground" {
		t.Errorf("LayerAt(0).Name = %q, want %q", got, "ground")
	}
	if m.LayerAt(1) != nil {
		t.Error("LayerAt(1) should be nil")
	}
	if m.LayerAt(-1) != nil {
		t.Error("LayerAt(-1) should be nil")
	}
}

func TestLayer_Tiles(t *testing.T) {
	l := NewLayer("ground", 3, 2)

	l.SetTile(2, 1, 42)
	if got := l.TileAt(2, 1); got != 42 {
		t.Errorf("TileAt(2, 1) = %d, want 42", got)
	}
	if got := l.TileAt(0, 0); got != 0 {
		t.Errorf("TileAt(0, 0) = %d, want 0", got)
	}

	// Out-of-range access is silent.
	l.SetTile(3, 0, 7)
	l.SetTile(-1, 0, 7)
	if got := l.TileAt(3, 0); got != 0 {
		t.Errorf("TileAt(3, 0) = %d, want 0", got)
	}
}

func TestMap_Clone(t *testing.T) {
	m := NewMap(2, 2, 16, 16)
	m.Properties["author"] = "test"
	layer := NewLayer("ground", 2, 2)
	layer.SetTile(0, 0, 7)
	layer.Properties["solid"] = true
	m.AddLayer(layer)

	clone := m.Clone()

	// Mutate the clone; the original must be unaffected.
	clone.Properties["author"] = "other"
	clone.LayerAt(0).SetTile(0, 0, 99)
	clone.LayerAt(0).Properties["solid"] = false
	clone.AddLayer(NewLayer("extra", 2, 2))

	if m.Properties["author"] != "test" {
		t.Error("clone shares map properties with original")
	}
	if got := m.LayerAt(0).TileAt(0, 0); got != 7 {
		t.Errorf("original TileAt(0, 0) = %d after clone mutation, want 7", got)
	}
	if m.LayerAt(0).Properties["solid"] != true {
		t.Error("clone shares layer properties with original")
	}
	if m.LayerCount() != 1 {
		t.Errorf("original LayerCount() = %d after clone mutation, want 1", m.LayerCount())
	}
}
