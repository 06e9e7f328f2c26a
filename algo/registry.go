package algo

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/matt-g-everett/algoviz/pathfinding"
	"github.com/matt-g-everett/algoviz/sorting"
)

// ErrUnknownAlgorithm is returned when a name has no registered producer.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrInvalidInput is returned for values a producer cannot sort.
var ErrInvalidInput = errors.New("invalid input")

// SortingAlgorithm names a sorting trace producer.
type SortingAlgorithm string

const (
	QuickSort     SortingAlgorithm = "quicksort"
	MergeSort     SortingAlgorithm = "mergesort"
	BubbleSort    SortingAlgorithm = "bubblesort"
	HeapSort      SortingAlgorithm = "heapsort"
	InsertionSort SortingAlgorithm = "insertionsort"
	SelectionSort SortingAlgorithm = "selectionsort"
)

// PathfindingAlgorithm names a pathfinding trace producer.
type PathfindingAlgorithm string

const (
	AStar    PathfindingAlgorithm = "astar"
	Dijkstra PathfindingAlgorithm = "dijkstra"
	BFS      PathfindingAlgorithm = "bfs"
	DFS      PathfindingAlgorithm = "dfs"
)

type sortingEntry struct {
	produce    sorting.Producer
	complexity string
}

type pathfindingEntry struct {
	produce    pathfinding.Producer
	complexity string
}

var sortingAlgorithms = map[SortingAlgorithm]sortingEntry{
	QuickSort:     {sorting.Quick, "O(n log n)"},
	MergeSort:     {sorting.Merge, "O(n log n)"},
	BubbleSort:    {sorting.Bubble, "O(n²)"},
	HeapSort:      {sorting.Heap, "O(n log n)"},
	InsertionSort: {sorting.Insertion, "O(n²)"},
	SelectionSort: {sorting.Selection, "O(n²)"},
}

var pathfindingAlgorithms = map[PathfindingAlgorithm]pathfindingEntry{
	AStar:    {pathfinding.AStar, "O(E log V)"},
	Dijkstra: {pathfinding.Dijkstra, "O(E + V log V)"},
	BFS:      {pathfinding.BFS, "O(V + E)"},
	DFS:      {pathfinding.DFS, "O(V + E)"},
}

// SortingNames lists the registered sorting algorithms.
func SortingNames() []string {
	names := make([]string, 0, len(sortingAlgorithms))
	for name := range sortingAlgorithms {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// PathfindingNames lists the registered pathfinding algorithms.
func PathfindingNames() []string {
	names := make([]string, 0, len(pathfindingAlgorithms))
	for name := range pathfindingAlgorithms {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// Sort runs the named sorting producer over values.
func Sort(name SortingAlgorithm, values []int) (sorting.Result, Metrics, error) {
	entry, ok := sortingAlgorithms[name]
	if !ok {
		return sorting.Result{}, Metrics{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	for i, v := range values {
		if v < 0 {
			return sorting.Result{}, Metrics{}, fmt.Errorf("%w: value %d at index %d is negative", ErrInvalidInput, v, i)
		}
	}

	began := time.Now()
	res := entry.produce(values)
	elapsed := time.Since(began)

	metrics := Metrics{
		Comparisons:    res.Comparisons,
		Swaps:          res.Swaps,
		TimeElapsed:    elapsed.Seconds(),
		TimeComplexity: entry.complexity,
	}
	return res, metrics, nil
}

// FindPath validates the grid and runs the named pathfinding producer.
func FindPath(name PathfindingAlgorithm, g *pathfinding.Grid, start, end pathfinding.Coord) (pathfinding.Result, Metrics, error) {
	entry, ok := pathfindingAlgorithms[name]
	if !ok {
		return pathfinding.Result{}, Metrics{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	if err := g.Validate(start, end); err != nil {
		return pathfinding.Result{}, Metrics{}, err
	}

	began := time.Now()
	res := entry.produce(g, start, end)
	elapsed := time.Since(began)

	metrics := Metrics{
		NodesVisited:   len(res.Visited),
		PathLength:     len(res.Path),
		TimeElapsed:    elapsed.Seconds(),
		TimeComplexity: entry.complexity,
	}
	return res, metrics, nil
}
