package controller

// Geometry describes the window the grid is derived from. The grid is the
// window size divided by the cell size, so resizing the window changes the
// playing field.
type Geometry struct {
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
	MinWidth   int
	MinHeight  int
}

// DefaultGeometry is an 800x600 window of 20x20 cells (a 40x30 grid) that
// cannot shrink below 400x300.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:      800,
		Height:     600,
		CellWidth:  20,
		CellHeight: 20,
		MinWidth:   400,
		MinHeight:  300,
	}
}

// Grid returns the grid dimensions in cells.
func (g Geometry) Grid() (width, height int) {
	return g.Width / g.CellWidth, g.Height / g.CellHeight
}

// Resize returns the geometry for a new window size, clamped to the minimum.
func (g Geometry) Resize(width, height int) Geometry {
	if width < g.MinWidth {
		width = g.MinWidth
	}
	if height < g.MinHeight {
		height = g.MinHeight
	}
	g.Width = width
	g.Height = height
	return g
}

// normalize makes sure the grid can never be empty.
func (g Geometry) normalize() Geometry {
	if g.CellWidth < 1 {
		g.CellWidth = 1
	}
	if g.CellHeight < 1 {
		g.CellHeight = 1
	}
	if g.MinWidth < g.CellWidth {
		g.MinWidth = g.CellWidth
	}
	if g.MinHeight < g.CellHeight {
		g.MinHeight = g.CellHeight
	}
	return g.Resize(g.Width, g.Height)
}
