package game

import "time"

type Mode int

const (
	ModeClassic Mode = iota + 1
	ModeAIBattle
	ModeObstacle
)

// Key is the identifier used for score persistence.
func (m Mode) Key() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeAIBattle:
		return "ai_battle"
	case ModeObstacle:
		return "obstacle"
	}
	return "unknown"
}

func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeAIBattle:
		return "AI Battle"
	case ModeObstacle:
		return "Obstacle Challenge"
	}
	return "Unknown"
}

type RoundState int

const (
	RoundActive RoundState = iota
	RoundEnded
)

// Round is the full state of one play-through: the player snake, the
// optional AI opponent, food, the optional power-up and the obstacle
// set. It is owned and mutated exclusively by Step; everything else
// reads it through snapshots.
type Round struct {
	Mode  Mode
	Level int
	State RoundState

	Player    *Snake
	AI        *Snake
	Food      Cell
	PowerUp   *PowerUp
	Obstacles map[Cell]bool

	spawner  *Spawner
	strategy Strategy
	now      func() time.Time
}

// NewRound sets up a round for the given mode: player in the center
// facing right, the AI opponent in the upper-left quarter for AI Battle,
// and a level-scaled obstacle field for Obstacle Challenge.
func NewRound(mode Mode, level int, spawner *Spawner, strategy Strategy) *Round {
	r := &Round{
		Mode:      mode,
		Level:     level,
		State:     RoundActive,
		Player:    NewSnake(Cell{GridWidth / 2, GridHeight / 2}, false),
		Obstacles: make(map[Cell]bool),
		spawner:   spawner,
		strategy:  strategy,
		now:       time.Now,
	}

	if mode == ModeAIBattle {
		r.AI = NewSnake(Cell{GridWidth / 4, GridHeight / 4}, true)
	}

	if mode == ModeObstacle {
		reserved := make(map[Cell]bool)
		r.Player.OccupiedCells(reserved)
		r.Obstacles = r.spawner.SpawnObstacles(level, reserved)
	}

	r.Food = r.spawner.SpawnFood(r.occupied())
	return r
}

// occupied collects every cell food must not land on: both snake
// bodies and all obstacles.
func (r *Round) occupied() map[Cell]bool {
	occ := make(map[Cell]bool, len(r.Player.Body)+len(r.Obstacles))
	r.Player.OccupiedCells(occ)
	if r.AI != nil {
		r.AI.OccupiedCells(occ)
	}
	for c := range r.Obstacles {
		occ[c] = true
	}
	return occ
}

// Step advances the simulation one tick. pending is the player's
// direction-change request collected since the last tick, or nil.
//
// Order matters here: eat flags are snapshotted before anyone moves, the
// AI direction is resolved from the pre-move food position, both snakes
// move on directions fixed at the top of the tick, and food is
// respawned at most once even when both heads land on it together.
func (r *Round) Step(pending *Direction) {
	if r.State != RoundActive {
		return
	}

	if pending != nil {
		r.Player.SetDirection(*pending)
	}

	playerEats := r.Player.Head() == r.Food
	aiAlive := r.AI != nil && r.AI.Alive
	aiEats := aiAlive && r.AI.Head() == r.Food

	if aiAlive {
		// The strategy output is applied directly; the AI is allowed to
		// pick any direction, the pathfinder simply never walks back
		// into the neck because the body is blocked.
		r.AI.Direction = r.strategy.NextDirection(r.AI, r)
	}

	r.Player.Move(playerEats)
	if aiAlive {
		r.AI.Move(aiEats)
	}

	if playerEats {
		points := FoodPoints
		if r.Player.HasPowerUp(DoublePoints) {
			points *= 2
		}
		r.Player.Score += points
		r.Food = r.spawner.SpawnFood(r.occupied())

		if r.spawner.rng.Float64() < powerUpAttemptChance {
			if pu := r.spawner.MaybeSpawnPowerUp(r.powerUpExclusions(), r.Food); pu != nil {
				r.PowerUp = pu
			}
		}
	}

	if aiEats {
		r.AI.Score += FoodPoints
		if !playerEats {
			r.Food = r.spawner.SpawnFood(r.occupied())
		}
	}

	if r.PowerUp != nil && r.Player.Head() == r.PowerUp.Cell {
		r.Player.PowerUps[r.PowerUp.Kind] = r.now()
		r.PowerUp = nil
	}

	if r.Player.CheckCollision(r.Obstacles) {
		r.Player.Alive = false
		r.State = RoundEnded
		return
	}

	if aiAlive && r.AI.CheckCollision(r.Obstacles) {
		// AI death does not end the round; the player plays on alone.
		r.AI.Alive = false
	}
}

// powerUpExclusions keeps power-ups off the player's body and the
// obstacles. The AI body is not excluded; only the player can collect,
// so an overlap merely hides the pickup for a few ticks.
func (r *Round) powerUpExclusions() map[Cell]bool {
	occ := make(map[Cell]bool, len(r.Player.Body)+len(r.Obstacles))
	r.Player.OccupiedCells(occ)
	for c := range r.Obstacles {
		occ[c] = true
	}
	return occ
}

// End force-finishes the round, used when the player abandons a game.
func (r *Round) End() {
	r.State = RoundEnded
}
