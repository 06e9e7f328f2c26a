package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/algoviz/algo"
	"github.com/matt-g-everett/algoviz/api"
	"github.com/matt-g-everett/algoviz/board"
	"github.com/matt-g-everett/algoviz/stream"
)

// Sort flags
var (
	sortAlgorithm string
	arraySize     int
	arrayValues   []int
)

// Path flags
var (
	pathAlgorithm string
	gridRows      int
	gridCols      int
	maze          bool
	mazeDensity   float64
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Animate a sorting algorithm",
	Long: `Sort an array and play back every comparison and swap.

Examples:
  algoviz sort --algorithm heapsort --size 60
  algoviz sort --algorithm bubblesort --values 5,3,8,1 --terminal --speed 20`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Animate a pathfinding algorithm",
	Long: `Search a grid from start to end and play back every visited cell, then
the path that was found.

Examples:
  algoviz path --algorithm dijkstra --maze
  algoviz path --algorithm dfs --rows 10 --cols 30 --terminal`,
	Args: cobra.NoArgs,
	RunE: runPath,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the result log API",
	Long: `Serve the algorithm result log and execute endpoints over HTTP. While
serving, a configured display shows an idle animation.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available algorithms",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sorting:     %s\n", strings.Join(algo.SortingNames(), ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "pathfinding: %s\n", strings.Join(algo.PathfindingNames(), ", "))
	},
}

func init() {
	sortCmd.Flags().StringVarP(&sortAlgorithm, "algorithm", "a", string(algo.QuickSort), "sorting algorithm")
	sortCmd.Flags().IntVarP(&arraySize, "size", "n", 40, "number of random values")
	sortCmd.Flags().IntSliceVar(&arrayValues, "values", nil, "values to sort instead of random ones")

	pathCmd.Flags().StringVarP(&pathAlgorithm, "algorithm", "a", string(algo.AStar), "pathfinding algorithm")
	pathCmd.Flags().IntVar(&gridRows, "rows", 20, "grid rows")
	pathCmd.Flags().IntVar(&gridCols, "cols", 20, "grid columns")
	pathCmd.Flags().BoolVar(&maze, "maze", false, "fill the grid with random walls")
	pathCmd.Flags().Float64Var(&mazeDensity, "density", board.MazeDensity, "share of cells that become walls with --maze")
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newRand() *rand.Rand {
	seed := seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newCommandApp(cmd *cobra.Command) *app {
	a := newApp(config)
	a.out = cmd.OutOrStdout()
	a.terminal = terminal
	a.verbose = verbose
	return a
}

func runSort(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a := newCommandApp(cmd)
	defer a.close()

	array := board.NewArray(arrayValues)
	if arrayValues == nil {
		array.Randomize(newRand(), arraySize)
	}
	return sortArray(ctx, a, algo.SortingAlgorithm(sortAlgorithm), array)
}

func sortArray(ctx context.Context, a *app, name algo.SortingAlgorithm, array *board.Array) error {
	params := algo.SortingParams{
		ArraySize:    len(array.Values()),
		Algorithm:    name,
		InitialArray: array.Values(),
	}

	res, metrics, err := algo.Sort(name, params.InitialArray)
	if err != nil {
		return err
	}

	draw := func() *stream.Frame {
		return array.Render(a.Config.Display.Width, a.Config.Display.Height)
	}
	if err := playback(ctx, a, algo.KindSorting, res.Frames, array, draw, metrics); err != nil {
		return err
	}

	a.logResult(algo.KindSorting, string(name), params, metrics)
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a := newCommandApp(cmd)
	defer a.close()

	grid := board.NewGrid(gridRows, gridCols)
	if maze {
		grid.GenerateMaze(newRand(), mazeDensity)
	}
	return findPath(ctx, a, algo.PathfindingAlgorithm(pathAlgorithm), grid)
}

func findPath(ctx context.Context, a *app, name algo.PathfindingAlgorithm, grid *board.Grid) error {
	params := grid.Params(name)

	res, metrics, err := algo.FindPath(name, grid.Layout(), grid.Start(), grid.End())
	if err != nil {
		return err
	}

	if err := playback(ctx, a, algo.KindPathfinding, res.Frames(), grid, grid.Render, metrics); err != nil {
		return err
	}
	if len(res.Path) == 0 {
		fmt.Fprintln(a.out, "No path found")
	}

	a.logResult(algo.KindPathfinding, string(name), params, metrics)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a := newCommandApp(cmd)
	defer a.close()

	if err := a.connect(nil); err != nil {
		return err
	}
	if !a.Streamer.Headless() {
		w, h := a.Config.Display.Width, a.Config.Display.Height
		idle := stream.NewController(30*time.Second, 5*time.Second,
			stream.NewGradientTrail(w, h, stream.Rainbow, 60, 8),
			stream.NewTwinkle(w, h, w*h/8, board.ColourPulse, board.ColourEmpty, newRand()),
		)
		go a.Streamer.Run(ctx, idle, 33*time.Millisecond)
	}

	server := api.NewApi(api.NewMemStore(), a.Config.Api.Static)
	return server.Serve(ctx, a.Config.Api.Addr)
}
