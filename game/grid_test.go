package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexCoordinateRoundTrip(t *testing.T) {
	grids := []Grid{
		{Rows: 1, Cols: 1},
		{Rows: 1, Cols: 3},
		{Rows: 3, Cols: 5},
		{Rows: 4, Cols: 4},
		{Rows: 7, Cols: 2},
	}

	for _, grid := range grids {
		t.Run(fmt.Sprintf("%dx%d", grid.Rows, grid.Cols), func(t *testing.T) {
			for i := 0; i < grid.KeyCount(); i++ {
				x, y := grid.CoordinateOf(i)
				assert.Equal(t, i, grid.IndexOf(x, y))
				assert.True(t, grid.Contains(x, y))
			}
		})
	}
}

func TestCoordinateOf(t *testing.T) {
	grid := Grid{Rows: 3, Cols: 5}

	x, y := grid.CoordinateOf(0)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = grid.CoordinateOf(8)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)

	x, y = grid.CoordinateOf(14)
	assert.Equal(t, 4, x)
	assert.Equal(t, 2, y)
}

func TestContainsEdges(t *testing.T) {
	grid := Grid{Rows: 4, Cols: 4}

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 4, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, grid.Contains(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}
