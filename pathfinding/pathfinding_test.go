package pathfinding

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var producers = map[string]Producer{
	"astar":    AStar,
	"dijkstra": Dijkstra,
	"bfs":      BFS,
	"dfs":      DFS,
}

func at(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func newTestGrid(rows, cols int, start, end Coord, walls ...Coord) *Grid {
	g := NewGrid(rows, cols)
	g.SetType(start, TypeStart)
	g.SetType(end, TypeEnd)
	for _, w := range walls {
		g.SetType(w, TypeWall)
	}
	return g
}

func coords(nodes []Node) []Coord {
	out := make([]Coord, len(nodes))
	for i, n := range nodes {
		out[i] = n.Coord()
	}
	return out
}

func assertValidPath(t *testing.T, name string, g *Grid, res Result, start, end Coord) {
	t.Helper()
	require.NotEmpty(t, res.Path, name)
	assert.Equal(t, start, res.Path[0].Coord(), name)
	assert.Equal(t, end, res.Path[len(res.Path)-1].Coord(), name)

	for i, n := range res.Path {
		assert.NotEqual(t, TypeWall, g.At(n.Coord()).Type, "%s: wall on path at %v", name, n.Coord())
		if i > 0 {
			assert.Equal(t, 1, res.Path[i-1].Coord().Manhattan(n.Coord()), "%s: step %d", name, i)
		}
	}
}

func TestBFSOpenGrid(t *testing.T) {
	g := newTestGrid(5, 5, at(0, 0), at(4, 4))
	res := BFS(g, at(0, 0), at(4, 4))

	assert.Len(t, res.Path, 9)
	assertValidPath(t, "bfs", g, res, at(0, 0), at(4, 4))
}

func TestPathsAreValid(t *testing.T) {
	start, end := at(1, 1), at(6, 6)
	g := newTestGrid(8, 8, start, end,
		at(0, 3), at(1, 3), at(2, 3), at(3, 3), at(4, 3),
		at(3, 5), at(4, 5), at(5, 5), at(6, 5), at(7, 5))
	g.SetType(at(6, 2), TypeWeight)
	g.SetType(at(2, 6), TypeWeight)

	for name, produce := range producers {
		res := produce(g, start, end)
		assertValidPath(t, name, g, res, start, end)
		assert.NotEmpty(t, res.Visited, name)
		assert.Equal(t, start, res.Visited[0].Coord(), name)
		assert.Equal(t, end, res.Visited[len(res.Visited)-1].Coord(), name)
	}
}

func TestOptimalSearchesAgreeOnUnweightedGrid(t *testing.T) {
	start, end := at(0, 0), at(9, 9)
	g := newTestGrid(10, 10, start, end)

	astar := AStar(g, start, end)
	dijkstra := Dijkstra(g, start, end)
	bfs := BFS(g, start, end)

	assert.Len(t, astar.Path, 19)
	assert.Equal(t, len(astar.Path), len(dijkstra.Path))
	assert.Equal(t, len(astar.Path), len(bfs.Path))
}

func TestWeightedDetour(t *testing.T) {
	start, end := at(0, 0), at(0, 2)
	g := newTestGrid(3, 3, start, end)
	g.SetType(at(0, 1), TypeWeight)

	want := []Coord{at(0, 0), at(1, 0), at(1, 1), at(1, 2), at(0, 2)}
	assert.Equal(t, want, coords(Dijkstra(g, start, end).Path))
	assert.Equal(t, want, coords(AStar(g, start, end).Path))

	// BFS ignores weights and goes straight through
	assert.Equal(t, []Coord{at(0, 0), at(0, 1), at(0, 2)}, coords(BFS(g, start, end).Path))
}

func TestNoPath(t *testing.T) {
	start, end := at(0, 0), at(2, 2)
	g := newTestGrid(3, 3, start, end, at(0, 1), at(1, 0))

	for name, produce := range producers {
		res := produce(g, start, end)
		assert.NotNil(t, res.Path, name)
		assert.Empty(t, res.Path, name)
		assert.Equal(t, []Coord{start}, coords(res.Visited), name)
	}
}

func TestStartEqualsEnd(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetType(at(1, 1), TypeStart)

	for name, produce := range producers {
		res := produce(g, at(1, 1), at(1, 1))
		assert.Empty(t, res.Visited, name)
		assert.Empty(t, res.Path, name)
		assert.Empty(t, res.Frames(), name)
	}
}

func TestCallerGridIsNotMutated(t *testing.T) {
	start, end := at(0, 0), at(4, 4)
	g := newTestGrid(5, 5, start, end, at(2, 2))
	before := g.Nodes()

	for name, produce := range producers {
		produce(g, start, end)
		assert.Equal(t, before, g.Nodes(), name)
	}
}

func TestDFSVisitOrder(t *testing.T) {
	start, end := at(0, 0), at(2, 2)
	g := newTestGrid(3, 3, start, end)

	res := DFS(g, start, end)
	want := []Coord{at(0, 0), at(1, 0), at(2, 0), at(2, 1), at(2, 2)}
	assert.Equal(t, want, coords(res.Visited))
	assert.Equal(t, want, coords(res.Path))
}

func TestDeterministic(t *testing.T) {
	start, end := at(0, 0), at(6, 7)
	g := newTestGrid(8, 8, start, end, at(3, 0), at(3, 1), at(3, 2), at(3, 3))

	for name, produce := range producers {
		assert.Equal(t, coords(produce(g, start, end).Visited), coords(produce(g, start, end).Visited), name)
	}
}

func TestFramesOrder(t *testing.T) {
	start, end := at(0, 0), at(4, 4)
	g := newTestGrid(5, 5, start, end)
	res := BFS(g, start, end)

	frames := res.Frames()
	require.Len(t, frames, len(res.Visited)+len(res.Path))
	for i, f := range frames {
		if i < len(res.Visited) {
			assert.Equal(t, FrameVisit, f.Kind)
			assert.Equal(t, res.Visited[i].Coord(), f.Node.Coord())
		} else {
			assert.Equal(t, FramePath, f.Kind)
			assert.Equal(t, res.Path[i-len(res.Visited)].Coord(), f.Node.Coord())
		}
	}
}

func TestValidate(t *testing.T) {
	g := newTestGrid(4, 4, at(0, 0), at(3, 3))
	require.NoError(t, g.Validate(at(0, 0), at(3, 3)))

	cases := map[string]struct {
		grid       *Grid
		start, end Coord
	}{
		"start outside": {g, at(-1, 0), at(3, 3)},
		"end outside":   {g, at(0, 0), at(4, 0)},
		"wrong start":   {g, at(1, 1), at(3, 3)},
		"missing end":   {func() *Grid { c := NewGrid(2, 2); c.SetType(at(0, 0), TypeStart); return c }(), at(0, 0), at(1, 1)},
		"empty grid":    {NewGrid(0, 0), at(0, 0), at(0, 0)},
	}
	for name, tc := range cases {
		err := tc.grid.Validate(tc.start, tc.end)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), name)
	}
}

func TestNodeJSON(t *testing.T) {
	g := newTestGrid(2, 2, at(0, 0), at(1, 1), at(0, 1))

	b, err := json.Marshal(g.At(at(0, 1)))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "wall", decoded["type"])
	assert.Nil(t, decoded["weight"])
	assert.Nil(t, decoded["distance"])
	assert.Nil(t, decoded["previousNode"])

	res := BFS(g, at(0, 0), at(1, 1))
	b, err = json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"previousNode":{"row":1,"col":0}`)
}
