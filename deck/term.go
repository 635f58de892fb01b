package deck

import (
	"time"

	"github.com/google/uuid"
	"github.com/nsf/termbox-go"
)

const (
	termKeyW = 6 // terminal cells per key, horizontally
	termKeyH = 3 // terminal cells per key, vertically
	termGap  = 1
)

const termFrame = time.Second / 60

// Term is a termbox-backed virtual deck: keys are colored blocks in the
// terminal, pressed and released with the mouse. Esc, q or Ctrl-C close
// the deck.
type Term struct {
	rows, cols int
	colors     []Color
	brightness int
	cb         KeyCallback
	serial     string
	events     chan termbox.Event
	heldKey    int
	closed     bool
}

// OpenTerm takes over the terminal and shows a rows×cols key matrix.
func OpenTerm(rows, cols int) (*Term, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	t := &Term{
		rows:       rows,
		cols:       cols,
		colors:     make([]Color, rows*cols),
		brightness: 100,
		serial:     uuid.New().String(),
		events:     make(chan termbox.Event, 16),
		heldKey:    -1,
	}
	go t.poll()
	return t, nil
}

// poll forwards termbox events to the Pump goroutine until the deck is
// closed. Events arriving faster than Pump drains them are dropped.
func (t *Term) poll() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case t.events <- ev:
		default:
		}
	}
}

func (t *Term) KeyLayout() (rows, cols int) {
	return t.rows, t.cols
}

func (t *Term) KeyCount() int {
	return t.rows * t.cols
}

func (t *Term) SetKeyColor(key int, c Color) {
	if key < 0 || key >= len(t.colors) {
		return
	}
	t.colors[key] = c
}

func (t *Term) SetKeyCallback(cb KeyCallback) {
	t.cb = cb
}

func (t *Term) Reset() {
	for i := range t.colors {
		t.colors[i] = Black
	}
}

func (t *Term) SetBrightness(percent int) {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	t.brightness = percent
}

func (t *Term) Type() string {
	return "Virtual Deck (terminal)"
}

func (t *Term) SerialNumber() string {
	return t.serial
}

// Pump drains pending terminal events, redraws the key matrix and paces
// itself to roughly one frame.
func (t *Term) Pump() bool {
	if t.closed {
		return false
	}

	for {
		select {
		case ev := <-t.events:
			if !t.handle(ev) {
				t.Close()
				return false
			}
			continue
		default:
		}
		break
	}

	t.draw()
	time.Sleep(termFrame)
	return true
}

// handle reacts to one terminal event; false means the user quit.
func (t *Term) handle(ev termbox.Event) bool {
	switch ev.Type {
	case termbox.EventKey:
		if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
			return false
		}
	case termbox.EventMouse:
		t.handleMouse(ev)
	case termbox.EventError:
		return false
	}
	return true
}

func (t *Term) handleMouse(ev termbox.Event) {
	if t.cb == nil {
		return
	}
	switch ev.Key {
	case termbox.MouseLeft:
		if key := t.keyAt(ev.MouseX, ev.MouseY); key >= 0 {
			t.heldKey = key
			t.cb(key, true)
		}
	case termbox.MouseRelease:
		if t.heldKey >= 0 {
			t.cb(t.heldKey, false)
			t.heldKey = -1
		}
	}
}

func (t *Term) draw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for key, c := range t.colors {
		col := key % t.cols
		row := key / t.cols
		x0 := termGap + col*(termKeyW+termGap)
		y0 := termGap + row*(termKeyH+termGap)
		attr := attrFor(scaleColor(c, t.brightness))
		for dy := 0; dy < termKeyH; dy++ {
			for dx := 0; dx < termKeyW; dx++ {
				termbox.SetCell(x0+dx, y0+dy, ' ', termbox.ColorDefault, attr)
			}
		}
	}
	termbox.Flush()
}

func (t *Term) Close() {
	if t.closed {
		return
	}
	t.closed = true
	termbox.Interrupt()
	termbox.Close()
}

// keyAt maps a terminal cell to the key under it, or -1 for the gaps.
func (t *Term) keyAt(cx, cy int) int {
	col := (cx - termGap) / (termKeyW + termGap)
	row := (cy - termGap) / (termKeyH + termGap)
	if cx < termGap || cy < termGap || col >= t.cols || row >= t.rows {
		return -1
	}
	if (cx-termGap)%(termKeyW+termGap) >= termKeyW || (cy-termGap)%(termKeyH+termGap) >= termKeyH {
		return -1
	}
	return row*t.cols + col
}

// attrFor maps a key color onto the nearest of the four states the game
// paints: red fruit, green head, white body, dark empty.
func attrFor(c Color) termbox.Attribute {
	switch {
	case c.R > 128 && c.G > 128 && c.B > 128:
		return termbox.ColorWhite
	case c.R > 128:
		return termbox.ColorRed
	case c.G > 128:
		return termbox.ColorGreen
	case c.B > 128:
		return termbox.ColorBlue
	}
	return termbox.ColorBlack
}
