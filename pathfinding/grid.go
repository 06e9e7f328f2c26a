package pathfinding

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a grid is not ready to search.
var ErrInvalidConfiguration = errors.New("invalid grid configuration")

// Grid is a row-major arena of nodes. Predecessors are stored as coordinates
// so clones never share state with the grid they were copied from.
type Grid struct {
	Rows  int
	Cols  int
	nodes []Node
}

// NewGrid creates a grid of empty, unit-weight nodes.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}

	g := new(Grid)
	g.Rows = rows
	g.Cols = cols
	g.nodes = make([]Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := &g.nodes[r*cols+c]
			n.Row = r
			n.Col = c
			n.Type = TypeEmpty
			n.Weight = 1
			n.resetSearch()
		}
	}
	return g
}

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the node at c. The caller must ensure c is in bounds.
func (g *Grid) At(c Coord) *Node {
	return &g.nodes[c.Row*g.Cols+c.Col]
}

// SetType changes a node's type and its weight to match.
func (g *Grid) SetType(c Coord, t NodeType) {
	n := g.At(c)
	n.Type = t
	n.Weight = WeightFor(t)
}

// Nodes returns a copy of every node in row-major order.
func (g *Grid) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Clone deep-copies the grid.
func (g *Grid) Clone() *Grid {
	c := new(Grid)
	c.Rows = g.Rows
	c.Cols = g.Cols
	c.nodes = g.Nodes()
	return c
}

// working returns a clone with every search field reset.
func (g *Grid) working() *Grid {
	w := g.Clone()
	for i := range w.nodes {
		w.nodes[i].resetSearch()
	}
	return w
}

// Find returns the coordinates of every node of the given type.
func (g *Grid) Find(t NodeType) []Coord {
	var out []Coord
	for _, n := range g.nodes {
		if n.Type == t {
			out = append(out, n.Coord())
		}
	}
	return out
}

// Validate checks that the grid is ready to run a search from start to end:
// both are in bounds and they are the only start and end nodes.
func (g *Grid) Validate(start, end Coord) error {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: empty grid", ErrInvalidConfiguration)
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidConfiguration, start, g.Rows, g.Cols)
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: end %v outside %dx%d grid", ErrInvalidConfiguration, end, g.Rows, g.Cols)
	}

	starts := g.Find(TypeStart)
	if len(starts) != 1 || starts[0] != start {
		return fmt.Errorf("%w: expected a single start node at %v", ErrInvalidConfiguration, start)
	}
	ends := g.Find(TypeEnd)
	if len(ends) != 1 || ends[0] != end {
		return fmt.Errorf("%w: expected a single end node at %v", ErrInvalidConfiguration, end)
	}

	return nil
}

// neighbours returns in-bounds cells adjacent to c in the given order.
func (g *Grid) neighbours(c Coord, order []Coord) []*Node {
	out := make([]*Node, 0, len(order))
	for _, d := range order {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, g.At(n))
		}
	}
	return out
}

var (
	up    = Coord{Row: -1, Col: 0}
	down  = Coord{Row: 1, Col: 0}
	left  = Coord{Row: 0, Col: -1}
	right = Coord{Row: 0, Col: 1}

	// Used by A*, Dijkstra and BFS.
	topBottomLeftRight = []Coord{up, down, left, right}

	// DFS pushes in this order, so pops favour top, then left, bottom, right.
	rightBottomLeftTop = []Coord{right, down, left, up}
)

// reconstructPath walks predecessors back from goal and returns the path in
// start-to-goal order.
func reconstructPath(g *Grid, goal Coord) []Node {
	var reversed []Node
	for c := goal; c != NoCoord; {
		n := g.At(c)
		reversed = append(reversed, *n)
		c = n.Previous
	}

	path := make([]Node, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}
	return path
}

func emptyResult() Result {
	return Result{Visited: []Node{}, Path: []Node{}}
}
