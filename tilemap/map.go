package tilemap

// Orientation describes how tiles are projected onto the screen.
type Orientation string

// Supported map orientations.
const (
	Orthogonal Orientation = "orthogonal"
	Isometric  Orientation = "isometric"
	Hexagonal  Orientation = "hexagonal"
)

// Map is a tile map: a fixed-size grid of tiles organized into layers.
//
// Contract:
// - Concurrency: a Map is not safe for concurrent mutation.
// - Ownership: layers added to a map are owned by it; use Clone to detach.
type Map struct {
	// Orientation is the tile projection. Defaults to Orthogonal.
	Orientation Orientation

	// Width and Height are the map size in tiles.
	Width  int
	Height int

	// TileWidth and TileHeight are the tile size in pixels.
	TileWidth  int
	TileHeight int

	// Infinite marks maps whose bounds may grow on demand.
	Infinite bool

	// Properties holds free-form map properties.
	Properties map[string]any

	layers []*Layer
}

// NewMap creates an orthogonal map of the given size in tiles and tile
// size in pixels, with no layers.
func NewMap(width, height, tileWidth, tileHeight int) *Map {
	return &Map{
		Orientation: Orthogonal,
		Width:       width,
		Height:      height,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Properties:  make(map[string]any),
	}
}

// LayerCount returns the number of layers.
func (m *Map) LayerCount() int { return len(m.layers) }

// LayerAt returns the layer at index i, or nil if i is out of range.
func (m *Map) LayerAt(i int) *Layer {
	if i < 0 || i >= len(m.layers) {
		return nil
	}
	return m.layers[i]
}

// Layers returns the layers in draw order. The returned slice is a copy;
// the layers themselves are shared.
func (m *Map) Layers() []*Layer {
	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// AddLayer appends a layer to the map. Nil layers are ignored.
func (m *Map) AddLayer(l *Layer) {
	if l == nil {
		return
	}
	m.layers = append(m.layers, l)
}

// Clone returns a deep copy of the map. The clone shares no layers,
// cells, or property maps with the original. Property values are copied
// by assignment; they are expected to be scalars.
func (m *Map) Clone() *Map {
	clone := &Map{
		Orientation: m.Orientation,
		Width:       m.Width,
		Height:      m.Height,
		TileWidth:   m.TileWidth,
		TileHeight:  m.TileHeight,
		Infinite:    m.Infinite,
		Properties:  cloneProperties(m.Properties),
	}
	clone.layers = make([]*Layer, len(m.layers))
	for i, l := range m.layers {
		clone.layers[i] = l.Clone()
	}
	return clone
}

func cloneProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
