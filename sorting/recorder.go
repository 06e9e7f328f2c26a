package sorting

// recorder mutates a working copy of the array and snapshots it into frames.
// Positions passed to fix are final: later marks never change their state.
type recorder struct {
	elems       []Element
	fixed       []bool
	frames      []Frame
	comparisons int
	swaps       int
}

func newRecorder(values []int) *recorder {
	r := new(recorder)
	r.elems = make([]Element, len(values))
	for i, v := range values {
		r.elems[i] = Element{Value: v, State: StateDefault}
	}
	r.fixed = make([]bool, len(values))
	r.emit()
	return r
}

func (r *recorder) value(i int) int {
	return r.elems[i].Value
}

// emit appends a deep copy of the current array.
func (r *recorder) emit(indices ...int) {
	snapshot := make([]Element, len(r.elems))
	copy(snapshot, r.elems)

	var highlighted []int
	if len(indices) > 0 {
		highlighted = make([]int, len(indices))
		copy(highlighted, indices)
	}

	r.frames = append(r.frames, Frame{Elements: snapshot, Indices: highlighted})
}

func (r *recorder) mark(state State, indices ...int) {
	for _, i := range indices {
		if !r.fixed[i] {
			r.elems[i].State = state
		}
	}
}

func (r *recorder) markRange(state State, lo, hi int) {
	for i := lo; i <= hi; i++ {
		r.mark(state, i)
	}
}

func (r *recorder) fix(indices ...int) {
	for _, i := range indices {
		r.elems[i].State = StateSorted
		r.fixed[i] = true
	}
}

func (r *recorder) swap(i, j int) {
	r.elems[i], r.elems[j] = r.elems[j], r.elems[i]
	r.swaps++
}

func (r *recorder) finish() Result {
	for i := range r.elems {
		r.fix(i)
	}
	r.emit()

	return Result{
		Frames:      r.frames,
		Comparisons: r.comparisons,
		Swaps:       r.swaps,
	}
}
