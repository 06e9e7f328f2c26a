package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/algoviz/algo"
	"github.com/matt-g-everett/algoviz/pathfinding"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func coord(r, c int) pathfinding.Coord {
	return pathfinding.Coord{Row: r, Col: c}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestSaveAndListResults(t *testing.T) {
	h := NewApi(NewMemStore(), "").Handler()

	w := do(t, h, http.MethodPost, "/api/algorithm-results", algo.Result{
		AlgorithmType: algo.KindSorting,
		AlgorithmName: "bubblesort",
		Params:        json.RawMessage(`{"arraySize":4}`),
		Metrics:       algo.Metrics{Comparisons: 6, Swaps: 4},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	saved := decode[algo.Result](t, w)
	assert.Equal(t, 1, saved.ID)
	assert.NotEmpty(t, saved.CreatedAt)

	w = do(t, h, http.MethodPost, "/api/algorithm-results", algo.Result{
		AlgorithmType: algo.KindPathfinding,
		AlgorithmName: "astar",
		Params:        json.RawMessage(`{}`),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodGet, "/api/algorithm-results", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]algo.Result](t, w)
	require.Len(t, all, 2)
	assert.Equal(t, 6, all[0].Metrics.Comparisons)
	assert.Equal(t, 2, all[1].ID)

	w = do(t, h, http.MethodGet, "/api/algorithm-results/pathfinding", nil)
	require.Equal(t, http.StatusOK, w.Code)
	paths := decode[[]algo.Result](t, w)
	require.Len(t, paths, 1)
	assert.Equal(t, "astar", paths[0].AlgorithmName)

	w = do(t, h, http.MethodGet, "/api/algorithm-results/unknown", nil)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSaveResultValidates(t *testing.T) {
	h := NewApi(NewMemStore(), "").Handler()

	w := do(t, h, http.MethodPost, "/api/algorithm-results", algo.Result{AlgorithmType: "cooking", AlgorithmName: "x", Params: json.RawMessage(`{}`)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/api/algorithm-results", algo.Result{AlgorithmType: algo.KindSorting, Params: json.RawMessage(`{}`)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, _ := http.NewRequest(http.MethodPost, "/api/algorithm-results", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteSorting(t *testing.T) {
	store := NewMemStore()
	h := NewApi(store, "").Handler()

	w := do(t, h, http.MethodPost, "/api/execute/sorting", algo.SortingParams{
		Algorithm:    algo.BubbleSort,
		InitialArray: []int{5, 3, 8, 1},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[SortingResponse](t, w)
	assert.Equal(t, 6, resp.Metrics.Comparisons)
	assert.Equal(t, 4, resp.Metrics.Swaps)
	assert.Equal(t, "O(n²)", resp.Metrics.TimeComplexity)
	assert.Equal(t, []int{1, 3, 5, 8}, resp.Result.Frames[len(resp.Result.Frames)-1].Values())
	assert.Equal(t, 1, resp.Record.ID)
	assert.NotEmpty(t, resp.Record.RunID)
	assert.Len(t, store.ListByType(algo.KindSorting), 1)
}

func TestExecuteSortingGeneratesArray(t *testing.T) {
	h := NewApi(NewMemStore(), "").Handler()

	w := do(t, h, http.MethodPost, "/api/execute/sorting", algo.SortingParams{Algorithm: algo.QuickSort, ArraySize: 12})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[SortingResponse](t, w)
	assert.Len(t, resp.Result.Frames[0].Elements, 12)

	var params algo.SortingParams
	require.NoError(t, json.Unmarshal(resp.Record.Params, &params))
	assert.Len(t, params.InitialArray, 12)
}

func TestExecuteSortingRejects(t *testing.T) {
	h := NewApi(NewMemStore(), "").Handler()

	w := do(t, h, http.MethodPost, "/api/execute/sorting", algo.SortingParams{Algorithm: "bogosort", InitialArray: []int{1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/api/execute/sorting", algo.SortingParams{Algorithm: algo.HeapSort, InitialArray: []int{-1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/api/execute/sorting", algo.SortingParams{Algorithm: algo.HeapSort, InitialArray: make([]int, MaxArraySize+1)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/api/execute/sorting", algo.SortingParams{Algorithm: algo.HeapSort, ArraySize: MaxArraySize + 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rejected before any values are generated
	w = do(t, h, http.MethodPost, "/api/execute/sorting", algo.SortingParams{Algorithm: algo.BubbleSort, ArraySize: 1 << 40})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Error, "at most")
}

func TestExecutePathfinding(t *testing.T) {
	h := NewApi(NewMemStore(), "").Handler()

	w := do(t, h, http.MethodPost, "/api/execute/pathfinding", algo.PathfindingParams{
		GridSize:  algo.GridSize{Rows: 5, Cols: 5},
		Algorithm: algo.BFS,
		StartNode: coord(0, 0),
		EndNode:   coord(4, 4),
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[PathfindingResponse](t, w)
	assert.Equal(t, 9, resp.Metrics.PathLength)
	assert.Len(t, resp.Result.Path, 9)
	assert.Equal(t, algo.KindPathfinding, resp.Record.AlgorithmType)
}

func TestExecutePathfindingRejects(t *testing.T) {
	h := NewApi(NewMemStore(), "").Handler()

	w := do(t, h, http.MethodPost, "/api/execute/pathfinding", algo.PathfindingParams{
		GridSize:  algo.GridSize{Rows: 5, Cols: 5},
		Algorithm: algo.AStar,
		StartNode: coord(0, 0),
		EndNode:   coord(9, 9),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/api/execute/pathfinding", algo.PathfindingParams{
		GridSize:  algo.GridSize{Rows: MaxGridSide + 1, Cols: 2},
		Algorithm: algo.AStar,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := NewApi(NewMemStore(), "").Handler()
	do(t, h, http.MethodPost, "/api/algorithm-results", algo.Result{AlgorithmType: algo.KindSorting, AlgorithmName: "heapsort", Params: json.RawMessage(`{}`)})

	w := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "algoviz_results_saved_total")
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>algoviz</h1>"), 0o600))
	h := NewApi(NewMemStore(), dir).Handler()

	w := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "algoviz")
}

func TestClientLogResult(t *testing.T) {
	srv := httptest.NewServer(NewApi(NewMemStore(), "").Handler())
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	rec, err := algo.NewResult(algo.KindSorting, "mergesort", algo.SortingParams{ArraySize: 2}, algo.Metrics{Swaps: 2})
	require.NoError(t, err)

	saved, err := c.LogResult(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
	assert.Equal(t, rec.RunID, saved.RunID)

	rec.AlgorithmType = "cooking"
	_, err = c.LogResult(context.Background(), rec)
	assert.ErrorContains(t, err, "400")
}
