package pathfinding

import (
	"encoding/json"
	"math"
)

// NodeType is the role a cell plays on the grid.
type NodeType string

const (
	TypeEmpty   NodeType = "empty"
	TypeWall    NodeType = "wall"
	TypeWeight  NodeType = "weight"
	TypeStart   NodeType = "start"
	TypeEnd     NodeType = "end"
	TypeVisited NodeType = "visited"
	TypePath    NodeType = "path"
)

// WeightCost is the traversal cost of a weight cell.
const WeightCost = 5.0

// Coord addresses a cell in a Grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoCoord marks a node without a predecessor.
var NoCoord = Coord{Row: -1, Col: -1}

// Manhattan returns the taxicab distance between two cells.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Node is a single cell along with the working fields the searches use.
type Node struct {
	Row       int      `json:"row"`
	Col       int      `json:"col"`
	Type      NodeType `json:"type"`
	Weight    float64  `json:"weight"`
	IsVisited bool     `json:"isVisited"`
	Distance  float64  `json:"distance"`
	FScore    float64  `json:"fScore"`
	GScore    float64  `json:"gScore"`
	HScore    float64  `json:"hScore"`
	Previous  Coord    `json:"previousNode"`
}

// Coord returns the node's position.
func (n Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// IsWall reports whether the node cannot be entered.
func (n Node) IsWall() bool {
	return n.Type == TypeWall
}

// WeightFor returns the traversal cost associated with a node type.
func WeightFor(t NodeType) float64 {
	switch t {
	case TypeWall:
		return math.Inf(1)
	case TypeWeight:
		return WeightCost
	default:
		return 1
	}
}

type nodeJSON struct {
	Row       int      `json:"row"`
	Col       int      `json:"col"`
	Type      NodeType `json:"type"`
	Weight    *float64 `json:"weight"`
	IsVisited bool     `json:"isVisited"`
	Distance  *float64 `json:"distance"`
	FScore    *float64 `json:"fScore"`
	GScore    *float64 `json:"gScore"`
	HScore    *float64 `json:"hScore"`
	Previous  *Coord   `json:"previousNode"`
}

// MarshalJSON encodes infinite scores and missing predecessors as null.
func (n Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		Row:       n.Row,
		Col:       n.Col,
		Type:      n.Type,
		Weight:    finite(n.Weight),
		IsVisited: n.IsVisited,
		Distance:  finite(n.Distance),
		FScore:    finite(n.FScore),
		GScore:    finite(n.GScore),
		HScore:    finite(n.HScore),
	}
	if n.Previous != NoCoord {
		prev := n.Previous
		out.Previous = &prev
	}
	return json.Marshal(out)
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func (n *Node) resetSearch() {
	n.IsVisited = false
	n.Distance = math.Inf(1)
	n.FScore = math.Inf(1)
	n.GScore = math.Inf(1)
	n.HScore = 0
	n.Previous = NoCoord
}

// Result holds the nodes a search expanded, in order, and the path it found.
// Path is empty when start equals end or when the goal is unreachable.
type Result struct {
	Visited []Node `json:"visitedNodesInOrder"`
	Path    []Node `json:"path"`
}

// Producer runs a search over a grid.
type Producer func(g *Grid, start, end Coord) Result
