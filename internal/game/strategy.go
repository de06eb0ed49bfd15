package game

// Strategy decides the AI snake's direction for the coming tick. The
// round is passed read-only; strategies must not mutate it.
type Strategy interface {
	NextDirection(s *Snake, r *Round) Direction
}

// PathfinderStrategy is the default AI policy: walk the first step of
// the shortest path to the food. The snake's own body and the obstacle
// set are impassable; other snakes are not, since snakes pass through
// each other.
type PathfinderStrategy struct{}

func (PathfinderStrategy) NextDirection(s *Snake, r *Round) Direction {
	blocked := make(map[Cell]bool, len(s.Body)+len(r.Obstacles))
	s.OccupiedCells(blocked)
	for c := range r.Obstacles {
		blocked[c] = true
	}

	path := FindPath(s.Head(), r.Food, blocked)
	if len(path) < 2 {
		// No route to the food. Keep going straight and let the next
		// tick sort it out, even if that means a collision.
		return s.Direction
	}

	dx := path[1].X - path[0].X
	dy := path[1].Y - path[0].Y
	d, ok := DirectionFromDelta(dx, dy)
	if !ok {
		return s.Direction
	}
	return d
}
