package sorting

// Merge is a stable top-down merge sort. Every write back into the array is
// counted as a swap.
func Merge(values []int) Result {
	r := newRecorder(values)
	scratch := make([]int, len(values))
	mergeSort(r, scratch, 0, len(values)-1)
	return r.finish()
}

func mergeSort(r *recorder, scratch []int, left, right int) {
	if left >= right {
		return
	}

	mid := (left + right) / 2
	mergeSort(r, scratch, left, mid)
	mergeSort(r, scratch, mid+1, right)
	merge(r, scratch, left, mid, right)
}

func merge(r *recorder, scratch []int, left, mid, right int) {
	for i := left; i <= right; i++ {
		scratch[i] = r.value(i)
	}
	r.markRange(StateComparing, left, right)
	r.emit()

	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		// Writes at k overwrite the left run, so scratch[i] is only still in
		// the array while i == k. scratch[j] always sits at j.
		if i == k {
			r.emit(i, j)
		} else {
			r.emit(j)
		}
		r.comparisons++

		// Ties take the left run to keep the sort stable
		if scratch[i] <= scratch[j] {
			write(r, k, scratch[i])
			i++
		} else {
			write(r, k, scratch[j])
			j++
		}
		k++
	}

	for ; i <= mid; i, k = i+1, k+1 {
		write(r, k, scratch[i])
	}
	for ; j <= right; j, k = j+1, k+1 {
		write(r, k, scratch[j])
	}

	r.markRange(StateSorted, left, right)
	r.emit()
}

func write(r *recorder, k, value int) {
	r.mark(StateOutOfPlace, k)
	r.emit(k)

	r.elems[k].Value = value
	r.swaps++

	r.mark(StateDefault, k)
	r.emit(k)
}
