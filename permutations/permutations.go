// Package permutations generates permutations in lexicographic order with
// Knuth's Algorithm L (TAOCP 7.2.1.2), reporting the number of swaps each
// step performs so callers can track the permutation's sign.
//
// Complexity:
//
//   - Next: O(n) worst case, O(1) amortized per permutation
//   - All:  O(n·n!) total
package permutations

import (
	"cmp"
	"iter"
	"slices"
)

// Next rearranges values into the next lexicographic permutation in place
// and returns the number of pairwise swaps performed. It returns 0, leaving
// values unchanged, when values is already the last permutation (strictly
// decreasing) or has fewer than two entries.
func Next(values []int) int { return NextOf(values) }

// NextOf is Next for any ordered key type. Keys should be distinct; with
// repeated keys it still steps through the distinct arrangements.
func NextOf[T cmp.Ordered](values []T) int {
	n := len(values)
	if n < 2 {
		return 0
	}
	// L2: find the largest j with a[j] < a[j+1]
	j := n - 2
	for j >= 0 && values[j] >= values[j+1] {
		j--
	}
	if j < 0 {
		return 0
	}
	// L3: find the largest l with a[j] < a[l], swap
	l := n - 1
	for values[j] >= values[l] {
		l--
	}
	values[j], values[l] = values[l], values[j]
	swaps := 1
	// L4: reverse a[j+1..n-1]
	for lo, hi := j+1, n-1; lo < hi; lo, hi = lo+1, hi-1 {
		values[lo], values[hi] = values[hi], values[lo]
		swaps++
	}
	return swaps
}

// All yields every permutation of 0..n-1 in lexicographic order together
// with its sign (+1 even, -1 odd). The yielded slice is reused between
// iterations; clone it to keep it.
func All(n int) iter.Seq2[[]int, int] {
	return func(yield func([]int, int) bool) {
		if n < 0 {
			return
		}
		perm := Identity(n)
		sgn := 1
		for {
			if !yield(perm, sgn) {
				return
			}
			swaps := Next(perm)
			if swaps == 0 {
				return
			}
			if swaps%2 == 1 {
				sgn = -sgn
			}
		}
	}
}

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Sign returns the sign of perm, a permutation of 0..n-1, by counting cycles.
func Sign(perm []int) int {
	seen := make([]bool, len(perm))
	sgn := 1
	for i := range perm {
		if seen[i] {
			continue
		}
		length := 0
		for k := i; !seen[k]; k = perm[k] {
			seen[k] = true
			length++
		}
		if length%2 == 0 {
			sgn = -sgn
		}
	}
	return sgn
}

// Collect returns clones of every permutation of 0..n-1 in order.
func Collect(n int) [][]int {
	var out [][]int
	for p := range All(n) {
		out = append(out, slices.Clone(p))
	}
	return out
}
