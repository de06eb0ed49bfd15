package game

import "time"

const (
	GridWidth  = 40
	GridHeight = 30

	// TickDuration gives the target 8 simulation ticks per second.
	TickDuration = 125 * time.Millisecond

	FoodPoints = 10

	// PowerUpDuration is recorded with each pickup. Activation times are
	// kept on the snake but never re-checked, so an effect lasts until
	// the round ends; this mirrors the behavior the game shipped with.
	PowerUpDuration = 5 * time.Second

	// Chance that eating food triggers a power-up spawn attempt, and the
	// chance that the attempt itself succeeds.
	powerUpAttemptChance = 0.2
	powerUpSpawnChance   = 0.3

	baseObstacleCount = 10
	obstaclesPerLevel = 2
)
