package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// geometry-only Window, no raylib window behind it
func testWindow(rows, cols int) *Window {
	return &Window{
		rows:       rows,
		cols:       cols,
		colors:     make([]Color, rows*cols),
		brightness: 100,
		heldKey:    -1,
	}
}

func TestWindowKeyAt(t *testing.T) {
	w := testWindow(3, 5)

	tests := []struct {
		name   string
		px, py int
		want   int
	}{
		{"top-left pad corner", keyGap, keyGap, 0},
		{"inside first pad", keyGap + keySize/2, keyGap + keySize/2, 0},
		{"bezel left of the matrix", keyGap - 1, keyGap, -1},
		{"gap between pads", keyGap + keySize, keyGap, -1},
		{"second pad", keyGap + keySize + keyGap, keyGap, 1},
		{"second row", keyGap, keyGap + keySize + keyGap, 5},
		{"below the matrix", keyGap, 3 * (keySize + keyGap), -1},
		{"right of the matrix", 5*(keySize+keyGap) + keyGap, keyGap, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.keyAt(tt.px, tt.py))
		})
	}
}

func TestWindowKeyOriginRoundTrip(t *testing.T) {
	w := testWindow(3, 5)
	for key := 0; key < w.KeyCount(); key++ {
		x, y := w.keyOrigin(key)
		assert.Equal(t, key, w.keyAt(int(x), int(y)))
	}
}

func TestScaleColor(t *testing.T) {
	assert.Equal(t, White, scaleColor(White, 100))
	assert.Equal(t, Color{R: 127, G: 127, B: 127}, scaleColor(White, 50))
	assert.Equal(t, Black, scaleColor(White, 0))
	assert.Equal(t, Black, scaleColor(Black, 100))
}

func TestWindowSetKeyColorBounds(t *testing.T) {
	w := testWindow(2, 2)
	w.SetKeyColor(-1, Red)
	w.SetKeyColor(4, Red)
	w.SetKeyColor(3, Red)

	assert.Equal(t, Red, w.colors[3])
	for key := 0; key < 3; key++ {
		assert.Equal(t, Black, w.colors[key])
	}

	w.Reset()
	assert.Equal(t, Black, w.colors[3])
}
