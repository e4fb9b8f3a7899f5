// SPDX-License-Identifier: MIT

package substance

import "iter"

// product yields every combination of one value per slot, in mixed-radix
// order: the first slot changes slowest, each slot walks its values in the
// given order. The yielded slice is reused between iterations.
// An empty slot makes the product empty; zero slots yield one empty tuple.
func product(slots [][]int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, s := range slots {
			if len(s) == 0 {
				return
			}
		}
		cursor := make([]int, len(slots))
		tuple := make([]int, len(slots))
		for {
			for i, c := range cursor {
				tuple[i] = slots[i][c]
			}
			if !yield(tuple) {
				return
			}
			i := len(cursor) - 1
			for ; i >= 0; i-- {
				cursor[i]++
				if cursor[i] < len(slots[i]) {
					break
				}
				cursor[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// gcd returns the greatest common divisor of a and b (a, b ≥ 0).
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
