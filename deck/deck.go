// Package deck abstracts the Stream Deck style controller the game runs
// on: a rows×cols matrix of keys, each one an addressable pixel. Two
// virtual backends stand in for the hardware, a raylib window and a
// termbox terminal view.
package deck

import "fmt"

// Color is an RGB key color in 8-bit-per-channel form.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255}
	Green = Color{G: 255}
)

// KeyCallback receives key state changes. pressed is true on key-down
// and false on key-up, matching the hardware callback convention.
type KeyCallback func(key int, pressed bool)

// Deck is the device surface the game needs. Implementations deliver
// key events through the registered callback from Pump.
type Deck interface {
	// KeyLayout returns the key matrix dimensions.
	KeyLayout() (rows, cols int)
	// KeyCount returns the number of keys.
	KeyCount() int
	// SetKeyColor stages the color of one key; it is shown on the next
	// Pump. Out-of-range keys are ignored.
	SetKeyColor(key int, c Color)
	// SetKeyCallback registers the receiver for key state changes.
	SetKeyCallback(cb KeyCallback)
	// Pump processes one frame of input events and output. It returns
	// false once the deck has been closed.
	Pump() bool
	// Reset blanks every key.
	Reset()
	// SetBrightness scales the displayed key colors, 0–100.
	SetBrightness(percent int)
	// Type names the device model.
	Type() string
	// SerialNumber identifies the device instance.
	SerialNumber() string
	// Close releases the device. Safe to call more than once.
	Close()
}

// Open creates a virtual deck with the given key layout. display picks
// the backend: "window" or "term".
func Open(display string, rows, cols int) (Deck, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("deck: invalid key layout %dx%d", rows, cols)
	}
	switch display {
	case "window":
		return OpenWindow(rows, cols)
	case "term":
		return OpenTerm(rows, cols)
	}
	return nil, fmt.Errorf("deck: unknown display %q", display)
}
