package algo

// Kind groups algorithms by what they visualize.
type Kind string

const (
	KindSorting     Kind = "sorting"
	KindPathfinding Kind = "pathfinding"
)

// Metrics summarises a single run. Sorting runs fill Comparisons and Swaps,
// pathfinding runs fill NodesVisited and PathLength.
type Metrics struct {
	NodesVisited   int     `json:"nodesVisited"`
	PathLength     int     `json:"pathLength"`
	Comparisons    int     `json:"comparisons"`
	Swaps          int     `json:"swaps"`
	TimeElapsed    float64 `json:"timeElapsed"`
	TimeComplexity string  `json:"timeComplexity"`
}
