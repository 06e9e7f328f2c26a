package sorting

// Heap builds a max-heap bottom-up and then extracts the maximum n-1 times.
func Heap(values []int) Result {
	r := newRecorder(values)
	n := len(values)

	for i := n/2 - 1; i >= 0; i-- {
		heapify(r, n, i)
	}

	for end := n - 1; end > 0; end-- {
		r.mark(StateComparing, 0, end)
		r.emit(0, end)

		r.mark(StateOutOfPlace, 0, end)
		r.emit(0, end)

		r.swap(0, end)

		r.mark(StateDefault, 0)
		r.fix(end)
		r.emit(0, end)

		heapify(r, end, 0)
	}

	if n > 0 {
		r.fix(0)
		r.emit()
	}

	return r.finish()
}

// heapify sifts the value at i down through a heap of the given size.
func heapify(r *recorder, size, i int) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < size {
		r.mark(StateComparing, left, largest)
		r.emit(left, largest)
		r.comparisons++

		if r.value(left) > r.value(largest) {
			largest = left
		}
		r.mark(StateDefault, i, left)
	}

	if right < size {
		r.mark(StateComparing, right, largest)
		r.emit(right, largest)
		r.comparisons++

		if r.value(right) > r.value(largest) {
			largest = right
		}
		r.mark(StateDefault, i, left, right)
	}

	if largest == i {
		return
	}

	r.mark(StateOutOfPlace, i, largest)
	r.emit(i, largest)

	r.swap(i, largest)

	r.mark(StateDefault, i, largest)
	r.emit(i, largest)

	heapify(r, size, largest)
}
