package controller

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultGeometryGrid(t *testing.T) {
	w, h := DefaultGeometry().Grid()
	require.Equal(t, 40, w)
	require.Equal(t, 30, h)
}

func TestGeometryGridFloors(t *testing.T) {
	g := DefaultGeometry().Resize(819, 619)
	w, h := g.Grid()
	require.Equal(t, 40, w)
	require.Equal(t, 30, h)
}

func TestGeometryNormalizeNeverEmpty(t *testing.T) {
	g := Geometry{}.normalize()
	w, h := g.Grid()
	require.True(t, w >= 1)
	require.True(t, h >= 1)

	g = Geometry{CellWidth: 2, CellHeight: 1, MinWidth: 40, MinHeight: 20, Width: 10, Height: 5}.normalize()
	w, h = g.Grid()
	require.Equal(t, 20, w)
	require.Equal(t, 20, h)
}

func TestSessionUsesGeometry(t *testing.T) {
	s := New(WithSeed(3), WithGeometry(Geometry{
		Width:      120,
		Height:     40,
		CellWidth:  2,
		CellHeight: 1,
		MinWidth:   40,
		MinHeight:  20,
	}))
	w, h := s.GridSize()
	require.Equal(t, 60, w)
	require.Equal(t, 40, h)
	require.Equal(t, 15, s.Snapshot().Head().X)
	require.Equal(t, 20, s.Snapshot().Head().Y)
}
