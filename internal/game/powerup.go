package game

type PowerUpKind int

const (
	SpeedBoost PowerUpKind = iota
	SlowDown
	DoublePoints
	Invincibility

	powerUpKindCount = 4
)

func (k PowerUpKind) String() string {
	switch k {
	case SpeedBoost:
		return "Speed Boost"
	case SlowDown:
		return "Slow Down"
	case DoublePoints:
		return "Double Points"
	case Invincibility:
		return "Invincibility"
	}
	return "Unknown"
}

// PowerUp is the single collectible that may sit on the grid. At most
// one exists at a time; it vanishes when collected and is never timed
// out while waiting on the board.
type PowerUp struct {
	Cell Cell
	Kind PowerUpKind
}
