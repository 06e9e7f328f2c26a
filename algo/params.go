package algo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matt-g-everett/algoviz/pathfinding"
)

// SortingParams describes the input of a sorting run.
type SortingParams struct {
	ArraySize    int              `json:"arraySize"`
	Algorithm    SortingAlgorithm `json:"algorithm"`
	InitialArray []int            `json:"initialArray"`
}

// GridSize is the shape of a pathfinding grid.
type GridSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// WeightedCell is a weight node and its cost.
type WeightedCell struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Weight float64 `json:"weight"`
}

// PathfindingParams describes the input of a pathfinding run.
type PathfindingParams struct {
	GridSize  GridSize             `json:"gridSize"`
	StartNode pathfinding.Coord    `json:"startNode"`
	EndNode   pathfinding.Coord    `json:"endNode"`
	Algorithm PathfindingAlgorithm `json:"algorithm"`
	Walls     []pathfinding.Coord  `json:"walls"`
	Weights   []WeightedCell       `json:"weights"`
}

// Grid builds the grid the params describe.
func (p PathfindingParams) Grid() *pathfinding.Grid {
	g := pathfinding.NewGrid(p.GridSize.Rows, p.GridSize.Cols)
	for _, w := range p.Walls {
		if g.InBounds(w) {
			g.SetType(w, pathfinding.TypeWall)
		}
	}
	for _, w := range p.Weights {
		c := pathfinding.Coord{Row: w.Row, Col: w.Col}
		if g.InBounds(c) {
			g.SetType(c, pathfinding.TypeWeight)
			if w.Weight > 0 {
				g.At(c).Weight = w.Weight
			}
		}
	}
	if g.InBounds(p.StartNode) {
		g.SetType(p.StartNode, pathfinding.TypeStart)
	}
	if g.InBounds(p.EndNode) {
		g.SetType(p.EndNode, pathfinding.TypeEnd)
	}
	return g
}

// Result is the record submitted to the result log after a run.
type Result struct {
	ID            int             `json:"id"`
	RunID         string          `json:"run_id"`
	AlgorithmType Kind            `json:"algorithm_type"`
	AlgorithmName string          `json:"algorithm_name"`
	Params        json.RawMessage `json:"params"`
	Metrics       Metrics         `json:"metrics"`
	CreatedAt     string          `json:"created_at"`
}

// NewResult builds a result record with a fresh run ID.
func NewResult(kind Kind, name string, params any, metrics Metrics) (Result, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return Result{}, err
	}

	return Result{
		RunID:         uuid.NewString(),
		AlgorithmType: kind,
		AlgorithmName: name,
		Params:        raw,
		Metrics:       metrics,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}
