package game

// FindPath runs a breadth-first search over the 4-connected grid from
// start to goal and returns the shortest path including both endpoints,
// or nil when the goal is unreachable. Cells in blocked and cells off
// the grid are impassable; start itself is always expandable so a snake
// whose own body is blocked can still search from its head.
//
// Neighbors are expanded in the fixed order Up, Down, Left, Right.
// Together with FIFO processing that makes the choice among equally
// short paths deterministic. The search carries no state between calls.
func FindPath(start, goal Cell, blocked map[Cell]bool) []Cell {
	visited := map[Cell]bool{start: true}
	parent := make(map[Cell]Cell)
	queue := []Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			return reconstructPath(start, goal, parent)
		}

		for _, d := range directions {
			next := cur.Next(d)
			if visited[next] || !next.InBounds() || blocked[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	return nil
}

func reconstructPath(start, goal Cell, parent map[Cell]Cell) []Cell {
	path := []Cell{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// Reverse into start-to-goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
