package sorting

// State is the presentational tag carried by an Element.
type State string

const (
	StateDefault    State = "default"
	StateComparing  State = "comparing"
	StateSorted     State = "sorted"
	StateOutOfPlace State = "outOfPlace"
)

// Element is a single bar in the array being sorted.
type Element struct {
	Value int   `json:"value"`
	State State `json:"state"`
}

// Frame is an immutable snapshot of the array at one step.
type Frame struct {
	Elements []Element `json:"array"`
	Indices  []int     `json:"indices,omitempty"`
}

// Values returns the element values in order.
func (f Frame) Values() []int {
	values := make([]int, len(f.Elements))
	for i, e := range f.Elements {
		values[i] = e.Value
	}
	return values
}

// Result is the full trace of a sorting run.
type Result struct {
	Frames      []Frame `json:"states"`
	Comparisons int     `json:"comparisons"`
	Swaps       int     `json:"swaps"`
}

// Producer computes the trace for an input array.
type Producer func(values []int) Result
