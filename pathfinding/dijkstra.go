package pathfinding

import (
	"math"
	"sort"
)

// Dijkstra keeps every node in an unvisited list and stable-sorts it by
// distance before each extraction. Reaching a node at infinite distance means
// the rest of the grid is unreachable.
func Dijkstra(g *Grid, start, end Coord) Result {
	if start == end {
		return emptyResult()
	}

	w := g.working()
	w.At(start).Distance = 0

	unvisited := make([]*Node, len(w.nodes))
	for i := range w.nodes {
		unvisited[i] = &w.nodes[i]
	}

	visited := make([]Node, 0)
	for len(unvisited) > 0 {
		sort.SliceStable(unvisited, func(i, j int) bool {
			return unvisited[i].Distance < unvisited[j].Distance
		})
		closest := unvisited[0]
		unvisited = unvisited[1:]

		if closest.IsWall() {
			continue
		}
		if math.IsInf(closest.Distance, 1) {
			return Result{Visited: visited, Path: []Node{}}
		}

		closest.IsVisited = true
		visited = append(visited, *closest)

		if closest.Coord() == end {
			return Result{Visited: visited, Path: reconstructPath(w, end)}
		}

		for _, n := range w.neighbours(closest.Coord(), topBottomLeftRight) {
			if n.IsVisited || n.IsWall() {
				continue
			}
			if d := closest.Distance + n.Weight; d < n.Distance {
				n.Distance = d
				n.Previous = closest.Coord()
			}
		}
	}

	return Result{Visited: visited, Path: []Node{}}
}
