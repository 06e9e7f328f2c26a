package sorting

// Quick sorts with the Lomuto partition scheme, pivoting on the last element
// and recursing into the left partition before the right.
func Quick(values []int) Result {
	r := newRecorder(values)
	quickSort(r, 0, len(values)-1)
	return r.finish()
}

func quickSort(r *recorder, low, high int) {
	if low > high {
		return
	}
	if low == high {
		r.fix(low)
		r.emit(low)
		return
	}

	p := partition(r, low, high)
	quickSort(r, low, p-1)
	quickSort(r, p+1, high)
}

func partition(r *recorder, low, high int) int {
	pivot := r.value(high)
	r.mark(StateComparing, high)
	r.emit(high)

	i := low - 1
	for j := low; j < high; j++ {
		r.mark(StateComparing, j)
		r.emit(j, high)
		r.comparisons++

		if r.value(j) < pivot {
			i++
			if i != j {
				r.mark(StateOutOfPlace, i, j)
				r.emit(i, j)

				r.swap(i, j)

				r.mark(StateDefault, i, j)
				r.emit(i, j)
				continue
			}
		}

		r.mark(StateDefault, j)
	}

	p := i + 1
	if p != high {
		r.mark(StateOutOfPlace, p, high)
		r.emit(p, high)

		r.swap(p, high)

		r.mark(StateDefault, high)
	}

	r.fix(p)
	r.emit(p)

	return p
}
