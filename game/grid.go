package game

// Grid is the key matrix of a deck: Rows×Cols cells, each identified by
// the row-major linear index the hardware uses to number its keys.
type Grid struct {
	Rows int
	Cols int
}

// KeyCount returns the number of cells on the grid.
func (g Grid) KeyCount() int {
	return g.Rows * g.Cols
}

// CoordinateOf converts a linear key index to grid coordinates. Defined
// for any integer index; callers keep indices in range.
func (g Grid) CoordinateOf(index int) (x, y int) {
	return index % g.Cols, index / g.Cols
}

// IndexOf converts grid coordinates to a linear key index. No bounds
// checking; callers validate coordinates first.
func (g Grid) IndexOf(x, y int) int {
	return x + y*g.Cols
}

// Contains reports whether (x, y) lies on the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}
