package game

// SetDirection maps a pressed key to a new pending direction using
// perpendicular-only steering: moving horizontally, a key strictly
// above the head's row turns up and strictly below turns down; moving
// vertically, a key strictly left of the head's column turns left and
// strictly right turns right. Anything on the current axis is a no-op,
// so a 180° turn into the neck can never be requested. Steering is
// relative to the direction actually applied last tick, not to a turn
// still pending.
func (g *Game) SetDirection(key int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	keyX, keyY := g.grid.CoordinateOf(key)
	headX, headY := g.grid.CoordinateOf(g.segments[0])

	switch g.direction {
	case Right, Left:
		if keyY < headY {
			g.nextDirection = Up
		} else if keyY > headY {
			g.nextDirection = Down
		}
	case Up, Down:
		if keyX < headX {
			g.nextDirection = Left
		} else if keyX > headX {
			g.nextDirection = Right
		}
	}
}
