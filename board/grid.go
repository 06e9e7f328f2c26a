package board

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/algoviz/algo"
	"github.com/matt-g-everett/algoviz/pathfinding"
	"github.com/matt-g-everett/algoviz/stream"
	"github.com/matt-g-everett/algoviz/util"
)

// Tool is an editing action applied to a single cell.
type Tool string

const (
	ToolStart  Tool = "start"
	ToolEnd    Tool = "end"
	ToolWall   Tool = "wall"
	ToolWeight Tool = "weight"
	ToolErase  Tool = "erase"
)

// MazeDensity is the default share of cells GenerateMaze turns into walls.
const MazeDensity = 0.3

// Cells visited within this many steps of the newest one are still pulsing.
const pulseLength = 12

var ErrUnknownTool = errors.New("unknown tool")

// Grid is the displayed state of a pathfinding run: the editable layout plus
// the visited and path overlay painted by playback. It is not safe for
// concurrent use.
type Grid struct {
	layout *pathfinding.Grid
	start  pathfinding.Coord
	end    pathfinding.Coord

	overlay   []pathfinding.NodeType
	visitedAt []int
	step      int
}

// NewGrid creates an empty grid with the start a quarter of the way in and
// the end three quarters of the way in.
func NewGrid(rows, cols int) *Grid {
	g := new(Grid)
	g.layout = pathfinding.NewGrid(rows, cols)
	g.start = pathfinding.Coord{Row: rows / 4, Col: cols / 4}
	g.end = pathfinding.Coord{Row: rows * 3 / 4, Col: cols * 3 / 4}
	if g.layout.InBounds(g.start) {
		g.layout.SetType(g.start, pathfinding.TypeStart)
	}
	if g.layout.InBounds(g.end) {
		g.layout.SetType(g.end, pathfinding.TypeEnd)
	}
	g.ClearPath()
	return g
}

func (g *Grid) Rows() int                { return g.layout.Rows }
func (g *Grid) Cols() int                { return g.layout.Cols }
func (g *Grid) Start() pathfinding.Coord { return g.start }
func (g *Grid) End() pathfinding.Coord   { return g.end }

func (g *Grid) index(c pathfinding.Coord) int {
	return c.Row*g.layout.Cols + c.Col
}

// Layout returns a copy of the editable grid, without any playback overlay.
func (g *Grid) Layout() *pathfinding.Grid {
	return g.layout.Clone()
}

// Type returns what the cell at c currently shows.
func (g *Grid) Type(c pathfinding.Coord) pathfinding.NodeType {
	if !g.layout.InBounds(c) {
		return pathfinding.TypeEmpty
	}
	t := g.layout.At(c).Type
	if t == pathfinding.TypeStart || t == pathfinding.TypeEnd {
		return t
	}
	if o := g.overlay[g.index(c)]; o != "" {
		return o
	}
	return t
}

// Paint applies tool to the cell at row, col. Start and end can only be moved
// by their own tools, and placing one removes the previous one. Cells outside
// the grid are ignored.
func (g *Grid) Paint(tool Tool, row, col int) error {
	c := pathfinding.Coord{Row: row, Col: col}
	switch tool {
	case ToolStart, ToolEnd, ToolWall, ToolWeight, ToolErase:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
	if !g.layout.InBounds(c) {
		return nil
	}

	current := g.layout.At(c).Type
	if tool != ToolStart && current == pathfinding.TypeStart {
		return nil
	}
	if tool != ToolEnd && current == pathfinding.TypeEnd {
		return nil
	}

	switch tool {
	case ToolStart:
		g.move(&g.start, c, pathfinding.TypeStart)
	case ToolEnd:
		g.move(&g.end, c, pathfinding.TypeEnd)
	case ToolWall:
		g.layout.SetType(c, pathfinding.TypeWall)
	case ToolWeight:
		g.layout.SetType(c, pathfinding.TypeWeight)
	case ToolErase:
		g.layout.SetType(c, pathfinding.TypeEmpty)
	}
	return nil
}

func (g *Grid) move(marker *pathfinding.Coord, to pathfinding.Coord, t pathfinding.NodeType) {
	if g.layout.InBounds(*marker) && g.layout.At(*marker).Type == t {
		g.layout.SetType(*marker, pathfinding.TypeEmpty)
	}
	g.layout.SetType(to, t)
	*marker = to
}

// Apply paints one playback frame onto the grid. Start and end keep their
// own colours.
func (g *Grid) Apply(frame pathfinding.Frame, index int) {
	c := frame.Node.Coord()
	if !g.layout.InBounds(c) {
		return
	}
	g.step = index

	t := g.layout.At(c).Type
	if t == pathfinding.TypeStart || t == pathfinding.TypeEnd {
		return
	}

	i := g.index(c)
	switch frame.Kind {
	case pathfinding.FramePath:
		g.overlay[i] = pathfinding.TypePath
	default:
		g.overlay[i] = pathfinding.TypeVisited
		g.visitedAt[i] = index
	}
}

// ClearPath removes the playback overlay and keeps walls and weights.
func (g *Grid) ClearPath() {
	n := g.layout.Rows * g.layout.Cols
	g.overlay = make([]pathfinding.NodeType, n)
	g.visitedAt = make([]int, n)
	for i := range g.visitedAt {
		g.visitedAt[i] = -1
	}
	g.step = 0
}

// Clear removes walls, weights and the overlay, keeping start and end.
func (g *Grid) Clear() {
	g.layout = pathfinding.NewGrid(g.layout.Rows, g.layout.Cols)
	if g.layout.InBounds(g.start) {
		g.layout.SetType(g.start, pathfinding.TypeStart)
	}
	if g.layout.InBounds(g.end) {
		g.layout.SetType(g.end, pathfinding.TypeEnd)
	}
	g.ClearPath()
}

// GenerateMaze clears the grid and turns each other cell into a wall with the
// given probability.
func (g *Grid) GenerateMaze(rng *rand.Rand, density float64) {
	g.Clear()
	for r := 0; r < g.layout.Rows; r++ {
		for c := 0; c < g.layout.Cols; c++ {
			coord := pathfinding.Coord{Row: r, Col: c}
			if coord == g.start || coord == g.end {
				continue
			}
			if rng.Float64() < density {
				g.layout.SetType(coord, pathfinding.TypeWall)
			}
		}
	}
}

// Walls lists wall cells in row-major order.
func (g *Grid) Walls() []pathfinding.Coord {
	walls := g.layout.Find(pathfinding.TypeWall)
	if walls == nil {
		return []pathfinding.Coord{}
	}
	return walls
}

// Weights lists weight cells and their costs in row-major order.
func (g *Grid) Weights() []algo.WeightedCell {
	weights := []algo.WeightedCell{}
	for _, c := range g.layout.Find(pathfinding.TypeWeight) {
		weights = append(weights, algo.WeightedCell{Row: c.Row, Col: c.Col, Weight: g.layout.At(c).Weight})
	}
	return weights
}

// Params describes the current layout as the input of a run.
func (g *Grid) Params(name algo.PathfindingAlgorithm) algo.PathfindingParams {
	return algo.PathfindingParams{
		GridSize:  algo.GridSize{Rows: g.layout.Rows, Cols: g.layout.Cols},
		StartNode: g.start,
		EndNode:   g.end,
		Algorithm: name,
		Walls:     g.Walls(),
		Weights:   g.Weights(),
	}
}

func (g *Grid) colour(c pathfinding.Coord) colorful.Color {
	t := g.Type(c)
	if t != pathfinding.TypeVisited {
		return nodeColour(t)
	}

	v := g.visitedAt[g.index(c)]
	heat := stream.Rainbow.GetColor(float64(v)/float64(g.step+1), 0.5, 0.35).Clamped()
	age := g.step - v
	if age >= 0 && age < pulseLength {
		lut := util.GenerateLutMemoized(pulseLength * 2)
		return heat.BlendLab(ColourPulse, lut[pulseLength+age]).Clamped()
	}
	return heat
}

// Render draws one pixel per cell.
func (g *Grid) Render() *stream.Frame {
	f := stream.NewFrame(g.layout.Cols, g.layout.Rows)
	for r := 0; r < g.layout.Rows; r++ {
		for c := 0; c < g.layout.Cols; c++ {
			f.Set(c, r, g.colour(pathfinding.Coord{Row: r, Col: c}))
		}
	}
	return f
}

// View draws the grid for a terminal, two columns per cell.
func (g *Grid) View() string {
	var b strings.Builder
	for r := 0; r < g.layout.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.layout.Cols; c++ {
			style := lipgloss.NewStyle().Background(terminalColour(g.colour(pathfinding.Coord{Row: r, Col: c})))
			b.WriteString(style.Render("  "))
		}
	}
	return b.String()
}
