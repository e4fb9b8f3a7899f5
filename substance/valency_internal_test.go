// SPDX-License-Identifier: MIT

package substance

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestProduct_Order walks the mixed-radix order, first slot slowest.
func TestProduct_Order(t *testing.T) {
	var got [][]int
	for tuple := range product([][]int{{1, 2}, {2, 4, 6}}) {
		got = append(got, slices.Clone(tuple))
	}
	assert.Equal(t, [][]int{
		{1, 2}, {1, 4}, {1, 6},
		{2, 2}, {2, 4}, {2, 6},
	}, got)
}

// TestProduct_Edges covers empty inputs and early stop.
func TestProduct_Edges(t *testing.T) {
	n := 0
	for range product([][]int{{1}, {}}) {
		n++
	}
	assert.Zero(t, n, "empty slot")

	n = 0
	for tuple := range product(nil) {
		assert.Empty(t, tuple)
		n++
	}
	assert.Equal(t, 1, n, "no slots")

	n = 0
	for range product([][]int{{1, 2, 3}, {1, 2, 3}}) {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
}

// TestGCD covers the reduction helper.
func TestGCD(t *testing.T) {
	assert.Equal(t, 3, gcd(0, 3))
	assert.Equal(t, 3, gcd(12, 3))
	assert.Equal(t, 1, gcd(2, 7))
	assert.Equal(t, 6, gcd(12, 18))
}
