package game

import (
	"sync"
	"time"

	"github.com/kamstrup/intmap"
	"golang.org/x/exp/rand"
)

// InitialLength is the target body length right after construction. The
// body starts as a single cell and grows into the target as it moves.
const InitialLength = 2

// MinTickDelay is the floor for the tick delay. Eating fruit shortens
// the delay by the configured increment but never below this, so the
// tick rate stays bounded no matter how long the snake gets.
const MinTickDelay = 50 * time.Millisecond

// Config carries the construction parameters for a game session.
type Config struct {
	Rows int
	Cols int

	// Wrap makes the snake re-enter from the opposite edge instead of
	// dying when it leaves the grid.
	Wrap bool

	// TickDelay is the initial time between ticks; SpeedUp is shaved
	// off the delay every time a fruit is eaten.
	TickDelay time.Duration
	SpeedUp   time.Duration

	// StartKey is the linear index of the initial head cell.
	StartKey int

	// Seed for fruit placement; 0 seeds from the clock.
	Seed uint64
}

// Game is the snake state machine over a deck's key grid. It is mutated
// only by Update (one tick) and SetDirection (one input event); both
// take the internal lock so the tick loop and the key callback may run
// from different goroutines.
type Game struct {
	mu sync.Mutex

	grid Grid
	wrap bool

	// segments holds the occupied key indices, head first. occupied
	// mirrors it as a set for O(1) collision checks; every push and
	// pop updates both.
	segments []int
	occupied *intmap.Set[int]

	// length is the target body length; the tail is trimmed to it at
	// the start of every tick.
	length int

	direction     Direction
	nextDirection Direction

	fruit int // key index, or -1 while the board is full
	alive bool

	delay   time.Duration
	speedUp time.Duration

	rng   *rand.Rand
	stats SessionStats
}

// New creates a live game: one body cell at cfg.StartKey, target length
// two, heading right, one fruit placed clear of the snake.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		grid:          Grid{Rows: cfg.Rows, Cols: cfg.Cols},
		wrap:          cfg.Wrap,
		segments:      []int{cfg.StartKey},
		occupied:      intmap.NewSet[int](cfg.Rows * cfg.Cols),
		length:        InitialLength,
		direction:     Right,
		nextDirection: Right,
		alive:         true,
		delay:         cfg.TickDelay,
		speedUp:       cfg.SpeedUp,
		rng:           rand.New(rand.NewSource(seed)),
		stats:         newSessionStats(),
	}
	g.occupied.Add(cfg.StartKey)
	g.fruit = g.placeFruit()
	return g
}

// Update advances the game by one tick and reports whether the snake
// survived it. Once it has returned false the game is over for good and
// every later call returns false without touching the state.
func (g *Game) Update() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.alive {
		return false
	}

	nextX, nextY := g.next()
	nextIndex := g.grid.IndexOf(nextX, nextY)

	// Trim the tail to the target length first, so the cell the tail
	// vacates this tick is free for the head to move into.
	for len(g.segments) >= g.length {
		tail := g.segments[len(g.segments)-1]
		g.segments = g.segments[:len(g.segments)-1]
		g.occupied.Del(tail)
	}

	if g.occupied.Has(nextIndex) {
		g.alive = false
	}
	if !g.grid.Contains(nextX, nextY) {
		g.alive = false
	}

	// The move lands even when fatal: the snake dies in place on the
	// cell it tried to enter.
	g.pushHead(nextIndex)
	g.direction = g.nextDirection

	if !g.alive {
		return false
	}

	g.stats.Ticks++

	if g.fruit >= 0 && nextIndex == g.fruit {
		g.length++
		g.stats.Fruits++
		g.fruit = g.placeFruit()
		g.delay -= g.speedUp
		if g.delay < MinTickDelay {
			g.delay = MinTickDelay
		}
	} else if g.fruit < 0 {
		// The board was full; the trim above may have freed a cell.
		g.fruit = g.placeFruit()
	}

	return true
}

// next computes the coordinate one step ahead of the head along the
// pending direction, wrapping across edges when wrap mode is on. With
// wrap off, out-of-range coordinates pass through for Update to catch.
func (g *Game) next() (x, y int) {
	x, y = g.grid.CoordinateOf(g.segments[0])
	dx, dy := g.nextDirection.Delta()
	x += dx
	y += dy

	if !g.wrap {
		return x, y
	}

	if x < 0 {
		x = g.grid.Cols - 1
	} else if x >= g.grid.Cols {
		x = 0
	}
	if y < 0 {
		y = g.grid.Rows - 1
	} else if y >= g.grid.Rows {
		y = 0
	}
	return x, y
}

func (g *Game) pushHead(index int) {
	g.segments = append(g.segments, 0)
	copy(g.segments[1:], g.segments)
	g.segments[0] = index
	g.occupied.Add(index)
}

// placeFruit picks a uniformly random free cell, or -1 when the snake
// occupies the whole board.
func (g *Game) placeFruit() int {
	free := make([]int, 0, g.grid.KeyCount()-g.occupied.Len())
	for i := 0; i < g.grid.KeyCount(); i++ {
		if !g.occupied.Has(i) {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return -1
	}
	return free[g.rng.Intn(len(free))]
}

// Layout returns the key grid the game runs on.
func (g *Game) Layout() Grid {
	return g.grid
}

// Alive reports whether the snake has survived every tick so far.
func (g *Game) Alive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.alive
}

// Head returns the key index of the snake's head.
func (g *Game) Head() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.segments[0]
}

// Body returns a copy of the occupied key indices, head first.
func (g *Game) Body() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	body := make([]int, len(g.segments))
	copy(body, g.segments)
	return body
}

// Fruit returns the fruit's key index; ok is false while the board is
// full and no fruit is placed.
func (g *Game) Fruit() (index int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fruit, g.fruit >= 0
}

// Delay returns the current time between ticks, for the caller pacing
// Update.
func (g *Game) Delay() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.delay
}

// Score returns the number of fruits eaten this session.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats.Fruits
}

// Stats returns a snapshot of the session statistics.
func (g *Game) Stats() SessionStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}
