package tilemap

// Layer is a single tile layer. Cells hold global tile IDs in row-major
// order; zero means empty.
type Layer struct {
	// Name identifies the layer for editors and scripts.
	Name string

	// Visible controls whether the layer is drawn. Defaults to true.
	Visible bool

	// Opacity is the layer's rendering opacity in [0, 1].
	Opacity float64

	// Properties holds free-form layer properties.
	Properties map[string]any

	width  int
	height int
	cells  []uint32
}

// NewLayer creates a visible, fully opaque layer of the given size in
// tiles with all cells empty.
func NewLayer(name string, width, height int) *Layer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Layer{
		Name:       name,
		Visible:    true,
		Opacity:    1,
		Properties: make(map[string]any),
		width:      width,
		height:     height,
		cells:      make([]uint32, width*height),
	}
}

// Width returns the layer width in tiles.
func (l *Layer) Width() int { return l.width }

// Height returns the layer height in tiles.
func (l *Layer) Height() int { return l.height }

// TileAt returns the global tile ID at (x, y), or zero when the
// coordinates are out of range.
func (l *Layer) TileAt(x, y int) uint32 {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return 0
	}
	return l.cells[y*l.width+x]
}

// SetTile places the global tile ID gid at (x, y). Out-of-range
// coordinates are ignored.
func (l *Layer) SetTile(x, y int, gid uint32) {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return
	}
	l.cells[y*l.width+x] = gid
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	clone := &Layer{
		Name:       l.Name,
		Visible:    l.Visible,
		Opacity:    l.Opacity,
		Properties: cloneProperties(l.Properties),
		width:      l.width,
		height:     l.height,
		cells:      make([]uint32, len(l.cells)),
	}
	copy(clone.cells, l.cells)
	return clone
}
