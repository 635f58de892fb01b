package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"streamsnake/deck"
	"streamsnake/game"
	"streamsnake/ui"
)

func main() {
	edgewrap := flag.Bool("edgewrap", false, "don't die on hitting the edge")
	tickLength := flag.Float64("tick-length", 1.0, "initial time per step in seconds")
	speedup := flag.Float64("speedup", 0.05, "when eating a fruit, speed up by this many seconds")
	rows := flag.Int("rows", 3, "key rows on the virtual deck")
	cols := flag.Int("cols", 5, "key columns on the virtual deck")
	display := flag.String("display", "window", "virtual deck backend: window or term")
	flag.Parse()

	d, err := deck.Open(*display, *rows, *cols)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer d.Close()

	d.Reset()
	d.SetBrightness(100)
	fmt.Printf("Opened '%s' device (serial number: '%s')\n", d.Type(), d.SerialNumber())

	grid := game.Grid{Rows: *rows, Cols: *cols}
	g := game.New(game.Config{
		Rows:      *rows,
		Cols:      *cols,
		Wrap:      *edgewrap,
		TickDelay: time.Duration(*tickLength * float64(time.Second)),
		SpeedUp:   time.Duration(*speedup * float64(time.Second)),
		StartKey:  grid.IndexOf(grid.Cols/2, grid.Rows/2),
	})

	d.SetKeyCallback(func(key int, pressed bool) {
		// Only act on key-up events.
		if !pressed {
			g.SetDirection(key)
		}
	})

	renderer := ui.NewRenderer(d)
	renderer.Draw(g)

	lastUpdate := time.Now()
	for d.Pump() {
		if time.Since(lastUpdate) < g.Delay() {
			continue
		}
		lastUpdate = time.Now()

		if !g.Update() {
			break
		}
		renderer.Draw(g)
	}

	d.Close()
	fmt.Println(g.Stats().Summary())
	fmt.Println("Done")
}
