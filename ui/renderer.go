// Package ui paints game state onto a deck. It only reads the engine's
// public queries, so it works the same against any Deck backend.
package ui

import (
	"streamsnake/deck"
	"streamsnake/game"
)

// Renderer maps every key of the grid to one of four states: fruit,
// head, body or empty.
type Renderer struct {
	deck deck.Deck
}

func NewRenderer(d deck.Deck) *Renderer {
	return &Renderer{deck: d}
}

// Draw repaints the whole key matrix from the current game state.
func (r *Renderer) Draw(g *game.Game) {
	body := g.Body()
	occupied := make(map[int]bool, len(body))
	for _, key := range body {
		occupied[key] = true
	}
	fruit, hasFruit := g.Fruit()
	head := body[0]

	for key := 0; key < g.Layout().KeyCount(); key++ {
		var c deck.Color
		switch {
		case hasFruit && key == fruit:
			c = deck.Red
		case key == head:
			c = deck.Green
		case occupied[key]:
			c = deck.White
		default:
			c = deck.Black
		}
		r.deck.SetKeyColor(key, c)
	}
}
