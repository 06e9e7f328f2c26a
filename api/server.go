package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matt-g-everett/algoviz/algo"
	"github.com/matt-g-everett/algoviz/pathfinding"
	"github.com/matt-g-everett/algoviz/sorting"
	"github.com/matt-g-everett/algoviz/util"
)

const (
	MaxArraySize = 500
	MaxGridSide  = 100

	defaultArraySize = 40
)

var errTooLarge = errors.New("input too large")

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SortingResponse is returned by the sorting execute endpoint.
type SortingResponse struct {
	Result  sorting.Result `json:"result"`
	Metrics algo.Metrics   `json:"metrics"`
	Record  algo.Result    `json:"record"`
}

// PathfindingResponse is returned by the pathfinding execute endpoint.
type PathfindingResponse struct {
	Result  pathfinding.Result `json:"result"`
	Metrics algo.Metrics       `json:"metrics"`
	Record  algo.Result        `json:"record"`
}

type Api struct {
	store  Store
	static string
	rngMu  sync.Mutex
	rng    *rand.Rand
	router *gin.Engine
}

// NewApi creates the result log API. Files under static are served for any
// path no route matches; an empty static disables that.
func NewApi(store Store, static string) *Api {
	a := new(Api)
	a.store = store
	a.static = static
	a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	a.router = a.routes()
	return a
}

func (a *Api) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	results := r.Group("/api/algorithm-results")
	results.GET("", a.listResults)
	results.GET("/:type", a.listResultsByType)
	results.POST("", a.saveResult)

	execute := r.Group("/api/execute")
	execute.POST("/sorting", a.executeSorting)
	execute.POST("/pathfinding", a.executePathfinding)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if a.static != "" {
		fs := http.FileServer(http.Dir(a.static))
		r.NoRoute(gin.WrapH(fs))
	}

	return r
}

// Handler returns the API's HTTP handler.
func (a *Api) Handler() http.Handler {
	return a.router
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.router}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s...", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *Api) listResults(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.List())
}

func (a *Api) listResultsByType(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.ListByType(algo.Kind(c.Param("type"))))
}

func (a *Api) saveResult(c *gin.Context) {
	var r algo.Result
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if r.AlgorithmType != algo.KindSorting && r.AlgorithmType != algo.KindPathfinding {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown algorithm type %q", r.AlgorithmType)})
		return
	}
	if r.AlgorithmName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "algorithm_name is required"})
		return
	}

	c.JSON(http.StatusCreated, a.store.Save(r))
}

func (a *Api) executeSorting(c *gin.Context) {
	var p algo.SortingParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if p.ArraySize > MaxArraySize || len(p.InitialArray) > MaxArraySize {
		a.fail(c, fmt.Errorf("%w: %d values, at most %d", errTooLarge, max(p.ArraySize, len(p.InitialArray)), MaxArraySize))
		return
	}

	if p.InitialArray == nil {
		size := p.ArraySize
		if size <= 0 {
			size = defaultArraySize
		}
		a.rngMu.Lock()
		p.InitialArray = util.RandomValues(a.rng, size, 10, 99)
		a.rngMu.Unlock()
	}
	p.ArraySize = len(p.InitialArray)

	res, metrics, err := algo.Sort(p.Algorithm, p.InitialArray)
	if err != nil {
		a.fail(c, err)
		return
	}

	record, err := algo.NewResult(algo.KindSorting, string(p.Algorithm), p, metrics)
	if err != nil {
		a.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SortingResponse{Result: res, Metrics: metrics, Record: a.store.Save(record)})
}

func (a *Api) executePathfinding(c *gin.Context) {
	var p algo.PathfindingParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if p.GridSize.Rows > MaxGridSide || p.GridSize.Cols > MaxGridSide {
		a.fail(c, fmt.Errorf("%w: grid %dx%d, at most %dx%d", errTooLarge, p.GridSize.Rows, p.GridSize.Cols, MaxGridSide, MaxGridSide))
		return
	}

	res, metrics, err := algo.FindPath(p.Algorithm, p.Grid(), p.StartNode, p.EndNode)
	if err != nil {
		a.fail(c, err)
		return
	}

	record, err := algo.NewResult(algo.KindPathfinding, string(p.Algorithm), p, metrics)
	if err != nil {
		a.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PathfindingResponse{Result: res, Metrics: metrics, Record: a.store.Save(record)})
}

func (a *Api) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, algo.ErrUnknownAlgorithm),
		errors.Is(err, algo.ErrInvalidInput),
		errors.Is(err, pathfinding.ErrInvalidConfiguration),
		errors.Is(err, errTooLarge):
		status = http.StatusBadRequest
	default:
		log.Printf("Request failed: %v", err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
