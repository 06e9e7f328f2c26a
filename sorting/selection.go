package sorting

// Selection repeatedly moves the smallest remaining element to the front.
func Selection(values []int) Result {
	r := newRecorder(values)
	n := len(values)

	for i := 0; i < n-1; i++ {
		smallest := i
		r.mark(StateComparing, smallest)

		for j := i + 1; j < n; j++ {
			r.mark(StateComparing, j)
			r.emit(smallest, j)
			r.comparisons++

			if r.value(j) < r.value(smallest) {
				r.mark(StateDefault, smallest)
				smallest = j
			} else {
				r.mark(StateDefault, j)
			}
		}

		if smallest != i {
			r.mark(StateOutOfPlace, i, smallest)
			r.emit(i, smallest)

			r.swap(i, smallest)

			r.mark(StateDefault, i, smallest)
			r.emit(i, smallest)
		}

		r.mark(StateDefault, smallest)
		r.fix(i)
		r.emit()
	}

	return r.finish()
}
