package pathfinding

// BFS explores level by level, ignoring weights. Neighbours are queued top,
// bottom, left, right and marked visited when queued.
func BFS(g *Grid, start, end Coord) Result {
	if start == end {
		return emptyResult()
	}

	w := g.working()
	first := w.At(start)
	first.IsVisited = true
	queue := []*Node{first}

	visited := make([]Node, 0)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		visited = append(visited, *current)

		if current.Coord() == end {
			return Result{Visited: visited, Path: reconstructPath(w, end)}
		}

		for _, n := range w.neighbours(current.Coord(), topBottomLeftRight) {
			if n.IsVisited || n.IsWall() {
				continue
			}
			n.IsVisited = true
			n.Previous = current.Coord()
			queue = append(queue, n)
		}
	}

	return Result{Visited: visited, Path: []Node{}}
}
