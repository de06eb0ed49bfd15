package game

import (
	"reflect"
	"testing"
)

// referenceDistance is an order-independent BFS used to cross-check
// FindPath's result lengths. Returns -1 when goal is unreachable.
func referenceDistance(start, goal Cell, blocked map[Cell]bool) int {
	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range directions {
			next := cur.Next(d)
			if !next.InBounds() || blocked[next] {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func TestFindPathTrivial(t *testing.T) {
	start := Cell{5, 5}
	path := FindPath(start, start, nil)
	if len(path) != 1 || path[0] != start {
		t.Errorf("Expected single-cell path for start==goal, got %v", path)
	}
}

func TestFindPathStraightLine(t *testing.T) {
	path := FindPath(Cell{2, 7}, Cell{9, 7}, nil)
	if len(path) != 8 {
		t.Fatalf("Expected path of 8 cells, got %d", len(path))
	}
	if path[0] != (Cell{2, 7}) || path[len(path)-1] != (Cell{9, 7}) {
		t.Errorf("Path endpoints wrong: %v", path)
	}
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if _, ok := DirectionFromDelta(dx, dy); !ok {
			t.Errorf("Non-unit step between %v and %v", path[i-1], path[i])
		}
	}
}

func TestFindPathDeterministic(t *testing.T) {
	blocked := map[Cell]bool{
		{3, 3}: true, {3, 4}: true, {3, 5}: true,
		{4, 3}: true, {5, 3}: true,
	}
	first := FindPath(Cell{1, 1}, Cell{8, 8}, blocked)
	for i := 0; i < 5; i++ {
		again := FindPath(Cell{1, 1}, Cell{8, 8}, blocked)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("FindPath is not deterministic: %v vs %v", first, again)
		}
	}
}

func TestFindPathShortestAgainstReference(t *testing.T) {
	cases := []struct {
		name    string
		start   Cell
		goal    Cell
		blocked map[Cell]bool
	}{
		{"open field", Cell{0, 0}, Cell{4, 4}, nil},
		{"wall with gap", Cell{0, 2}, Cell{4, 2}, map[Cell]bool{
			{2, 0}: true, {2, 1}: true, {2, 2}: true, {2, 3}: true,
		}},
		{"detour around block", Cell{1, 1}, Cell{3, 1}, map[Cell]bool{
			{2, 0}: true, {2, 1}: true, {2, 2}: true,
		}},
		{"hug the border", Cell{0, 0}, Cell{0, 4}, map[Cell]bool{
			{0, 2}: true, {1, 2}: true, {2, 2}: true, {3, 2}: true,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := FindPath(tc.start, tc.goal, tc.blocked)
			want := referenceDistance(tc.start, tc.goal, tc.blocked)
			if want < 0 {
				if path != nil {
					t.Fatalf("Expected unreachable, got %v", path)
				}
				return
			}
			if path == nil {
				t.Fatalf("Expected path of length %d, got none", want+1)
			}
			if len(path)-1 != want {
				t.Errorf("Path length %d, shortest distance is %d", len(path)-1, want)
			}
			for _, c := range path[1:] {
				if tc.blocked[c] {
					t.Errorf("Path passes through blocked cell %v", c)
				}
			}
		})
	}
}

func TestFindPathTieBreak(t *testing.T) {
	// Two shortest paths from (0,0) to (1,1): down-then-right and
	// right-then-down. Down is expanded before Right, so the path must
	// go through (0,1).
	path := FindPath(Cell{0, 0}, Cell{1, 1}, nil)
	want := []Cell{{0, 0}, {0, 1}, {1, 1}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("Expected %v, got %v", want, path)
	}

	// Toward the upper-left, Up wins over Left for the same reason.
	path = FindPath(Cell{1, 1}, Cell{0, 0}, nil)
	want = []Cell{{1, 1}, {1, 0}, {0, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("Expected %v, got %v", want, path)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	// Seal the goal inside a box.
	blocked := map[Cell]bool{
		{4, 4}: true, {5, 4}: true, {6, 4}: true,
		{4, 5}: true, {6, 5}: true,
		{4, 6}: true, {5, 6}: true, {6, 6}: true,
	}
	if path := FindPath(Cell{0, 0}, Cell{5, 5}, blocked); path != nil {
		t.Errorf("Expected nil for unreachable goal, got %v", path)
	}
}

func TestFindPathStartInsideBlocked(t *testing.T) {
	// The AI's head is part of its own (blocked) body; the search must
	// still expand from it.
	start := Cell{5, 5}
	blocked := map[Cell]bool{start: true, {4, 5}: true, {3, 5}: true}
	path := FindPath(start, Cell{7, 5}, blocked)
	if len(path) != 3 {
		t.Errorf("Expected path of 3 cells from blocked start, got %v", path)
	}
}
