package sorting

// Insertion grows a sorted prefix, walking each new element left by adjacent
// shifts. Every shift counts as a swap.
func Insertion(values []int) Result {
	r := newRecorder(values)
	n := len(values)
	if n == 0 {
		return r.finish()
	}

	r.mark(StateSorted, 0)
	r.emit()

	for i := 1; i < n; i++ {
		r.mark(StateComparing, i)
		r.emit(i)

		for j := i; j > 0; j-- {
			r.mark(StateComparing, j-1, j)
			r.emit(j-1, j)
			r.comparisons++

			if r.value(j-1) <= r.value(j) {
				break
			}

			r.mark(StateOutOfPlace, j-1, j)
			r.emit(j-1, j)

			r.swap(j-1, j)

			r.mark(StateSorted, j)
			r.mark(StateDefault, j-1)
			r.emit(j-1, j)
		}

		r.markRange(StateSorted, 0, i)
		r.emit()
	}

	return r.finish()
}
