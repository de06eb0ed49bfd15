package game

// Cell is a single grid square addressed by column (X) and row (Y).
type Cell struct {
	X int
	Y int
}

// InBounds reports whether the cell lies on the playing field.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directionDeltas maps a Direction to its unit step. Indexed by the
// Direction value itself.
var directionDeltas = [...]Cell{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// directions is the canonical enumeration order. Pathfinding expands
// neighbors in this order, which fixes tie-breaking between equally
// short paths; tests depend on it.
var directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) Delta() (dx, dy int) {
	delta := directionDeltas[d]
	return delta.X, delta.Y
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reverse direction, used to reject 180° turns.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// DirectionFromDelta converts a unit step back into a Direction.
// The second return is false for anything that is not a unit step.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	for _, d := range directions {
		ddx, ddy := d.Delta()
		if ddx == dx && ddy == dy {
			return d, true
		}
	}
	return 0, false
}

// Next returns the neighboring cell one step along d.
func (c Cell) Next(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{c.X + dx, c.Y + dy}
}
