package deck

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

const (
	keySize = 96 // key pad edge in pixels
	keyGap  = 12 // bezel between pads and around the matrix
)

// Window is a raylib-backed virtual deck: each key is a square pad in a
// desktop window, pressed and released with the left mouse button.
type Window struct {
	rows, cols int
	colors     []Color
	brightness int
	cb         KeyCallback
	serial     string

	// heldKey is the key under the cursor when the button went down,
	// -1 otherwise. The release event goes to the same key even if the
	// cursor drifted off it, like a finger sliding off a hardware key.
	heldKey int
	closed  bool
}

// OpenWindow opens a window showing a rows×cols key matrix.
func OpenWindow(rows, cols int) (*Window, error) {
	w := &Window{
		rows:       rows,
		cols:       cols,
		colors:     make([]Color, rows*cols),
		brightness: 100,
		serial:     uuid.New().String(),
		heldKey:    -1,
	}

	width := int32(cols*(keySize+keyGap) + keyGap)
	height := int32(rows*(keySize+keyGap) + keyGap)
	rl.InitWindow(width, height, "streamsnake")
	rl.SetTargetFPS(60)
	return w, nil
}

func (w *Window) KeyLayout() (rows, cols int) {
	return w.rows, w.cols
}

func (w *Window) KeyCount() int {
	return w.rows * w.cols
}

func (w *Window) SetKeyColor(key int, c Color) {
	if key < 0 || key >= len(w.colors) {
		return
	}
	w.colors[key] = c
}

func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.cb = cb
}

func (w *Window) Reset() {
	for i := range w.colors {
		w.colors[i] = Black
	}
}

func (w *Window) SetBrightness(percent int) {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	w.brightness = percent
}

func (w *Window) Type() string {
	return "Virtual Deck (window)"
}

func (w *Window) SerialNumber() string {
	return w.serial
}

// Pump handles one frame: mouse events become key events, then the key
// matrix is redrawn.
func (w *Window) Pump() bool {
	if w.closed {
		return false
	}
	if rl.WindowShouldClose() {
		w.Close()
		return false
	}

	w.pumpMouse()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	for key, c := range w.colors {
		x, y := w.keyOrigin(key)
		shown := scaleColor(c, w.brightness)
		rl.DrawRectangle(x, y, keySize, keySize, rl.NewColor(shown.R, shown.G, shown.B, 255))
	}
	rl.EndDrawing()
	return true
}

func (w *Window) pumpMouse() {
	if w.cb == nil {
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if key := w.keyAt(int(pos.X), int(pos.Y)); key >= 0 {
			w.heldKey = key
			w.cb(key, true)
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && w.heldKey >= 0 {
		w.cb(w.heldKey, false)
		w.heldKey = -1
	}
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
}

// keyOrigin returns the top-left pixel of a key's pad.
func (w *Window) keyOrigin(key int) (x, y int32) {
	col := key % w.cols
	row := key / w.cols
	x = int32(keyGap + col*(keySize+keyGap))
	y = int32(keyGap + row*(keySize+keyGap))
	return x, y
}

// keyAt maps a window pixel to the key under it, or -1 for the bezel.
func (w *Window) keyAt(px, py int) int {
	col := (px - keyGap) / (keySize + keyGap)
	row := (py - keyGap) / (keySize + keyGap)
	if px < keyGap || py < keyGap || col >= w.cols || row >= w.rows {
		return -1
	}
	// Reject hits in the gap to the right of or below the pad.
	if (px-keyGap)%(keySize+keyGap) >= keySize || (py-keyGap)%(keySize+keyGap) >= keySize {
		return -1
	}
	return row*w.cols + col
}

// scaleColor dims a color to the given brightness percentage.
func scaleColor(c Color, percent int) Color {
	return Color{
		R: uint8(int(c.R) * percent / 100),
		G: uint8(int(c.G) * percent / 100),
		B: uint8(int(c.B) * percent / 100),
	}
}
