package pathfinding

import "sort"

// AStar searches with a Manhattan heuristic. The open list is stable-sorted by
// fScore before every pop, so ties go to the node that was queued first.
func AStar(g *Grid, start, end Coord) Result {
	if start == end {
		return emptyResult()
	}

	w := g.working()

	first := w.At(start)
	first.GScore = 0
	first.HScore = float64(start.Manhattan(end))
	first.FScore = first.HScore

	inOpen := make(map[Coord]bool)
	open := []*Node{first}
	inOpen[start] = true

	visited := make([]Node, 0)
	for len(open) > 0 {
		sort.SliceStable(open, func(i, j int) bool {
			return open[i].FScore < open[j].FScore
		})
		current := open[0]
		open = open[1:]
		delete(inOpen, current.Coord())

		current.IsVisited = true
		visited = append(visited, *current)

		if current.Coord() == end {
			return Result{Visited: visited, Path: reconstructPath(w, end)}
		}

		for _, n := range w.neighbours(current.Coord(), topBottomLeftRight) {
			if n.IsVisited || n.IsWall() {
				continue
			}

			tentative := current.GScore + n.Weight
			if tentative < n.GScore {
				n.Previous = current.Coord()
				n.GScore = tentative
				n.HScore = float64(n.Coord().Manhattan(end))
				n.FScore = n.GScore + n.HScore

				if !inOpen[n.Coord()] {
					open = append(open, n)
					inOpen[n.Coord()] = true
				}
			}
		}
	}

	return Result{Visited: visited, Path: []Node{}}
}
