package api

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matt-g-everett/algoviz/algo"
)

var resultsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "algoviz_results_saved_total",
	Help: "Algorithm results saved to the result log, by algorithm type",
}, []string{"type"})

// Store keeps algorithm result records.
type Store interface {
	Save(r algo.Result) algo.Result
	List() []algo.Result
	ListByType(kind algo.Kind) []algo.Result
}

// MemStore is a Store that lives for the life of the process.
type MemStore struct {
	mu      sync.Mutex
	nextID  int
	results []algo.Result
}

func NewMemStore() *MemStore {
	s := new(MemStore)
	s.nextID = 1
	return s
}

// Save assigns the next id and a creation time, then stores r.
func (s *MemStore) Save(r algo.Result) algo.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID
	s.nextID++
	r.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.results = append(s.results, r)

	resultsSaved.WithLabelValues(string(r.AlgorithmType)).Inc()
	return r
}

// List returns every result in the order saved.
func (s *MemStore) List() []algo.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]algo.Result, len(s.results))
	copy(out, s.results)
	return out
}

// ListByType returns the results of one algorithm type in the order saved.
func (s *MemStore) ListByType(kind algo.Kind) []algo.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []algo.Result{}
	for _, r := range s.results {
		if r.AlgorithmType == kind {
			out = append(out, r)
		}
	}
	return out
}
