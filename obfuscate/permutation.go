package obfuscate

// The permutation order covers as many positions as the key has characters.
// Sequences of any other length are permuted block by block: every full block of
// len(order) positions uses the whole order, a shorter block (including a sequence
// shorter than the key) uses the order truncated to the indices which exist in that block,
// keeping their relative order.

// permute moves the value at block position order[j] to block position j
func permute[T any](seq []T, order []int) []T {
	out := make([]T, len(seq))
	forEachBlock(len(seq), order, func(start int, block []int) {
		for j, src := range block {
			out[start+j] = seq[start+src]
		}
	})
	return out
}

// unpermute reverses permute for the same order
func unpermute[T any](seq []T, order []int) []T {
	out := make([]T, len(seq))
	forEachBlock(len(seq), order, func(start int, block []int) {
		for j, dst := range block {
			out[start+dst] = seq[start+j]
		}
	})
	return out
}

func forEachBlock(n int, order []int, fn func(start int, block []int)) {
	size := len(order)
	if size == 0 {
		return
	}
	for start := 0; start < n; start += size {
		if n-start >= size {
			fn(start, order)
			continue
		}
		fn(start, truncateOrder(order, n-start))
	}
}

// truncateOrder keeps the indices lower than n
func truncateOrder(order []int, n int) []int {
	truncated := make([]int, 0, n)
	for _, i := range order {
		if i < n {
			truncated = append(truncated, i)
		}
	}
	return truncated
}
