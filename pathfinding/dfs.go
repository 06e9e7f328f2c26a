package pathfinding

// DFS walks a stack. Unvisited neighbours are pushed right, bottom, left, top
// and marked on push, so the next pop prefers top, then left, bottom, right.
// visitedNodesInOrder depends on this exact order.
func DFS(g *Grid, start, end Coord) Result {
	if start == end {
		return emptyResult()
	}

	w := g.working()
	first := w.At(start)
	first.IsVisited = true
	stack := []*Node{first}

	visited := make([]Node, 0)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited = append(visited, *current)

		if current.Coord() == end {
			return Result{Visited: visited, Path: reconstructPath(w, end)}
		}

		for _, n := range w.neighbours(current.Coord(), rightBottomLeftTop) {
			if n.IsVisited || n.IsWall() {
				continue
			}
			n.IsVisited = true
			n.Previous = current.Coord()
			stack = append(stack, n)
		}
	}

	return Result{Visited: visited, Path: []Node{}}
}
