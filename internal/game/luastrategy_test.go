package game

import (
	"os"
	"path/filepath"
	"testing"
)

const downScript = `
function next_direction(head, food, dir)
    return {dx = 0, dy = 1}
end
`

func TestScriptStrategyDirection(t *testing.T) {
	r := NewRound(ModeAIBattle, 1, testSpawner(20), PathfinderStrategy{})
	strategy := NewScriptStrategy(downScript, fixedStrategy{Left})

	if d := strategy.NextDirection(r.AI, r); d != Down {
		t.Errorf("Expected down from script, got %v", d)
	}
}

func TestScriptStrategyFallback(t *testing.T) {
	r := NewRound(ModeAIBattle, 1, testSpawner(21), PathfinderStrategy{})

	cases := []struct {
		name   string
		source string
	}{
		{"broken syntax", `function next_direction( return`},
		{"missing function", `x = 1`},
		{"non-table return", `function next_direction(h, f, d) return 5 end`},
		{"non-unit step", `function next_direction(h, f, d) return {dx = 2, dy = 0} end`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			strategy := NewScriptStrategy(tc.source, fixedStrategy{Up})
			if d := strategy.NextDirection(r.AI, r); d != Up {
				t.Errorf("Expected fallback direction up, got %v", d)
			}
		})
	}
}

func TestScriptStrategyReceivesState(t *testing.T) {
	// Steer by comparing head and food positions.
	const seekScript = `
function next_direction(head, food, dir)
    if food.x > head.x then return {dx = 1, dy = 0} end
    if food.x < head.x then return {dx = -1, dy = 0} end
    if food.y > head.y then return {dx = 0, dy = 1} end
    return {dx = 0, dy = -1}
end
`
	r := NewRound(ModeAIBattle, 1, testSpawner(22), PathfinderStrategy{})
	r.AI.Body = []Cell{{10, 10}}
	r.Food = Cell{20, 10}

	strategy := NewScriptStrategy(seekScript, fixedStrategy{Up})
	if d := strategy.NextDirection(r.AI, r); d != Right {
		t.Errorf("Expected right toward food, got %v", d)
	}

	r.Food = Cell{10, 3}
	if d := strategy.NextDirection(r.AI, r); d != Up {
		t.Errorf("Expected up toward food, got %v", d)
	}
}

func TestLoadScriptStrategy(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.lua")
	if err := os.WriteFile(good, []byte(downScript), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptStrategy(good, PathfinderStrategy{}); err != nil {
		t.Errorf("Expected valid script to load, got %v", err)
	}

	bad := filepath.Join(dir, "bad.lua")
	if err := os.WriteFile(bad, []byte("nonsense("), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptStrategy(bad, PathfinderStrategy{}); err == nil {
		t.Error("Expected error for broken script")
	}

	noFn := filepath.Join(dir, "nofn.lua")
	if err := os.WriteFile(noFn, []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptStrategy(noFn, PathfinderStrategy{}); err == nil {
		t.Error("Expected error when next_direction is missing")
	}

	if _, err := LoadScriptStrategy(filepath.Join(dir, "missing.lua"), PathfinderStrategy{}); err == nil {
		t.Error("Expected error for missing file")
	}
}
