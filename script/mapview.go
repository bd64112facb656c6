package script

import (
	"github.com/dop251/goja"

	"github.com/tilewright/mapformat/tilemap"
)

// MapView exposes a tile map to scripts. A view is either owned — the
// read path, where the script builds a map the host clones out — or a
// borrowed read-only window over a host map being written. Mutating a
// read-only view throws a TypeError in the script.
type MapView struct {
	env      *Env
	m        *tilemap.Map
	readOnly bool
}

// NewMapView wraps m in an owned, mutable view.
func NewMapView(env *Env, m *tilemap.Map) *MapView {
	return &MapView{env: env, m: m}
}

// NewReadOnlyMapView wraps m in a borrowed, read-only view.
func NewReadOnlyMapView(env *Env, m *tilemap.Map) *MapView {
	return &MapView{env: env, m: m, readOnly: true}
}

// Map returns the underlying map. The map is shared with the view; the
// read pipeline clones it before handing it to callers.
func (v *MapView) Map() *tilemap.Map { return v.m }

func (v *MapView) mutable() {
	if v.readOnly {
		panic(v.env.vm.NewTypeError("map is read-only"))
	}
}

// Width returns the map width in tiles.
func (v *MapView) Width() int { return v.m.Width }

// Height returns the map height in tiles.
func (v *MapView) Height() int { return v.m.Height }

// TileWidth returns the tile width in pixels.
func (v *MapView) TileWidth() int { return v.m.TileWidth }

// TileHeight returns the tile height in pixels.
func (v *MapView) TileHeight() int { return v.m.TileHeight }

// SetSize resizes the map grid.
func (v *MapView) SetSize(width, height int) {
	v.mutable()
	v.m.Width = width
	v.m.Height = height
}

// SetTileSize changes the tile pixel size.
func (v *MapView) SetTileSize(width, height int) {
	v.mutable()
	v.m.TileWidth = width
	v.m.TileHeight = height
}

// LayerCount returns the number of layers.
func (v *MapView) LayerCount() int { return v.m.LayerCount() }

// LayerAt returns a view of the layer at index i; it throws when i is
// out of range.
func (v *MapView) LayerAt(i int) *LayerView {
	layer := v.m.LayerAt(i)
	if layer == nil {
		panic(v.env.vm.NewTypeError("layer index %d out of range", i))
	}
	return &LayerView{env: v.env, layer: layer, readOnly: v.readOnly}
}

// AddLayer appends a new empty layer sized to the map and returns its
// view.
func (v *MapView) AddLayer(name string) *LayerView {
	v.mutable()
	layer := tilemap.NewLayer(name, v.m.Width, v.m.Height)
	v.m.AddLayer(layer)
	return &LayerView{env: v.env, layer: layer}
}

// Property returns a map property, or undefined-equivalent nil.
func (v *MapView) Property(name string) any { return v.m.Properties[name] }

// SetProperty sets a map property.
func (v *MapView) SetProperty(name string, value goja.Value) {
	v.mutable()
	v.m.Properties[name] = value.Export()
}

// LayerView exposes one tile layer to scripts, inheriting the owning
// view's read-only state.
type LayerView struct {
	env      *Env
	layer    *tilemap.Layer
	readOnly bool
}

func (v *LayerView) mutable() {
	if v.readOnly {
		panic(v.env.vm.NewTypeError("map is read-only"))
	}
}

// Name returns the layer name.
func (v *LayerView) Name() string { return v.layer.Name }

// SetName renames the layer.
func (v *LayerView) SetName(name string) {
	v.mutable()
	v.layer.Name = name
}

// Width returns the layer width in tiles.
func (v *LayerView) Width() int { return v.layer.Width() }

// Height returns the layer height in tiles.
func (v *LayerView) Height() int { return v.layer.Height() }

// Visible reports whether the layer is drawn.
func (v *LayerView) Visible() bool { return v.layer.Visible }

// SetVisible shows or hides the layer.
func (v *LayerView) SetVisible(visible bool) {
	v.mutable()
	v.layer.Visible = visible
}

// Opacity returns the layer opacity in [0, 1].
func (v *LayerView) Opacity() float64 { return v.layer.Opacity }

// SetOpacity changes the layer opacity.
func (v *LayerView) SetOpacity(opacity float64) {
	v.mutable()
	v.layer.Opacity = opacity
}

// TileAt returns the global tile ID at (x, y), zero when empty or out
// of range.
func (v *LayerView) TileAt(x, y int) int { return int(v.layer.TileAt(x, y)) }

// SetTile places the global tile ID gid at (x, y).
func (v *LayerView) SetTile(x, y, gid int) {
	v.mutable()
	v.layer.SetTile(x, y, uint32(gid))
}
