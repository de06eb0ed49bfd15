package game

import "time"

// Snake is one snake on the grid. Body is ordered head first and is
// never empty; growth appends at the tail, movement prepends at the
// head. The same type drives the player and the AI opponent.
type Snake struct {
	Body      []Cell
	Direction Direction
	Score     int
	Alive     bool
	IsAI      bool

	// PowerUps maps an active effect to its activation time. Entries
	// are added on pickup and never removed while the round runs.
	PowerUps map[PowerUpKind]time.Time
}

func NewSnake(spawn Cell, isAI bool) *Snake {
	return &Snake{
		Body:      []Cell{spawn},
		Direction: Right,
		Alive:     true,
		IsAI:      isAI,
		PowerUps:  make(map[PowerUpKind]time.Time),
	}
}

func (s *Snake) Head() Cell {
	return s.Body[0]
}

// Move advances the snake one cell along its current direction. The
// tail is dropped unless grow is set, so length is preserved except
// when eating.
func (s *Snake) Move(grow bool) {
	head := s.Head().Next(s.Direction)
	s.Body = append([]Cell{head}, s.Body...)
	if !grow {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow duplicates the tail cell. The primary growth path is
// Move(grow=true); this exists for callers that grow out of band.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Body[len(s.Body)-1])
}

// SetDirection applies a direction-change request. A request for the
// exact opposite of the current direction is ignored; the snake cannot
// fold back through itself in a single tick.
func (s *Snake) SetDirection(d Direction) {
	if d == s.Direction.Opposite() {
		return
	}
	s.Direction = d
}

// CheckCollision reports whether the head has left the grid, run into
// the snake's own body, or hit an obstacle. It inspects state only.
func (s *Snake) CheckCollision(obstacles map[Cell]bool) bool {
	head := s.Head()
	if !head.InBounds() {
		return true
	}
	for _, c := range s.Body[1:] {
		if c == head {
			return true
		}
	}
	return obstacles[head]
}

// HasPowerUp reports whether the effect was picked up this round.
func (s *Snake) HasPowerUp(k PowerUpKind) bool {
	_, ok := s.PowerUps[k]
	return ok
}

// OccupiedCells adds every body cell to the given set.
func (s *Snake) OccupiedCells(into map[Cell]bool) {
	for _, c := range s.Body {
		into[c] = true
	}
}
