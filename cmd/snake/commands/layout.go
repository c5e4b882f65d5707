package commands

import (
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
)

// layout maps grid cells onto terminal cells. The HUD takes the top rows and
// the board sits below it inside a one cell border.
type layout struct {
	cellWidth  int
	cellHeight int
	hudRows    int
	minColumns int
	minRows    int
}

func newLayout() layout {
	return layout{
		cellWidth:  config.CellWidth,
		cellHeight: config.CellHeight,
		hudRows:    config.HUDRows,
		minColumns: config.MinColumns,
		minRows:    config.MinRows,
	}
}

// window is the playing area left in a cols x rows terminal.
func (l layout) window(cols, rows int) (width, height int) {
	return cols - 2, rows - l.hudRows - 2
}

func (l layout) geometry(cols, rows int) controller.Geometry {
	w, h := l.window(cols, rows)
	return controller.Geometry{
		Width:      w,
		Height:     h,
		CellWidth:  l.cellWidth,
		CellHeight: l.cellHeight,
		MinWidth:   l.minColumns,
		MinHeight:  l.minRows,
	}
}

func (l layout) resize(cols, rows int) controller.Resize {
	w, h := l.window(cols, rows)
	return controller.Resize{Width: w, Height: h}
}

// cell returns the top left terminal cell of a grid point.
func (l layout) cell(p rules.Point) (x, y int) {
	return 1 + p.X*l.cellWidth, l.hudRows + 1 + p.Y*l.cellHeight
}

// board returns the terminal coordinates of the border box around a grid.
func (l layout) board(gridWidth, gridHeight int) (left, top, right, bottom int) {
	return 0, l.hudRows, 1 + gridWidth*l.cellWidth, l.hudRows + 1 + gridHeight*l.cellHeight
}
