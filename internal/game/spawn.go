package game

import "math/rand"

// Spawner places food, power-ups and obstacles on free cells. The
// random source is injected so rounds can be replayed deterministically
// under test; production seeds it from the wall clock.
type Spawner struct {
	rng *rand.Rand
}

func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

func (sp *Spawner) randomCell() Cell {
	return Cell{sp.rng.Intn(GridWidth), sp.rng.Intn(GridHeight)}
}

// SpawnFood rejection-samples until it hits a cell outside occupied.
// The caller must leave at least one free cell; a fully occupied grid
// never returns.
func (sp *Spawner) SpawnFood(occupied map[Cell]bool) Cell {
	for {
		c := sp.randomCell()
		if !occupied[c] {
			return c
		}
	}
}

// MaybeSpawnPowerUp returns a power-up on a free cell with probability
// powerUpSpawnChance, nil otherwise. The food cell is excluded on top
// of the caller's occupied set.
func (sp *Spawner) MaybeSpawnPowerUp(occupied map[Cell]bool, food Cell) *PowerUp {
	if sp.rng.Float64() >= powerUpSpawnChance {
		return nil
	}
	for {
		c := sp.randomCell()
		if occupied[c] || c == food {
			continue
		}
		return &PowerUp{
			Cell: c,
			Kind: PowerUpKind(sp.rng.Intn(powerUpKindCount)),
		}
	}
}

// SpawnObstacles places 10+2×level distinct obstacles in the grid
// interior, keeping the outermost ring clear so the player always has a
// lane along the walls. Reserved cells (snake spawns, food) are skipped.
func (sp *Spawner) SpawnObstacles(level int, reserved map[Cell]bool) map[Cell]bool {
	count := baseObstacleCount + obstaclesPerLevel*level
	obstacles := make(map[Cell]bool, count)

	for len(obstacles) < count {
		c := Cell{
			X: 1 + sp.rng.Intn(GridWidth-2),
			Y: 1 + sp.rng.Intn(GridHeight-2),
		}
		if reserved[c] || obstacles[c] {
			continue
		}
		obstacles[c] = true
	}

	return obstacles
}
