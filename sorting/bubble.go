package sorting

// Bubble sorts adjacent pairs and stops after the first pass with no swaps.
func Bubble(values []int) Result {
	r := newRecorder(values)
	n := len(values)

	for i := 0; i < n; i++ {
		swapped := false

		// The last i elements are already in place
		for j := 0; j < n-i-1; j++ {
			r.mark(StateComparing, j, j+1)
			r.emit(j, j+1)
			r.comparisons++

			if r.value(j) > r.value(j+1) {
				r.mark(StateOutOfPlace, j, j+1)
				r.emit(j, j+1)

				r.swap(j, j+1)
				swapped = true

				r.mark(StateDefault, j, j+1)
				r.emit(j, j+1)
			} else {
				r.mark(StateDefault, j, j+1)
			}
		}

		r.fix(n - i - 1)
		r.emit()

		if !swapped {
			break
		}
	}

	return r.finish()
}
