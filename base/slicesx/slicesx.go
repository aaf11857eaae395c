// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

// Search returns the index of the item in the given slice that matches the target
// according to the given match function, using the given optional starting index
// to optimize the search by searching bidirectionally outward from given index.
// This is much faster when you have some idea about where the item might be.
// If no start index is given, it starts in the middle, which is a good default.
// It returns -1 if no item matching the match function is found.
func Search[E any](slice []E, match func(e E) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	si := -1
	if len(startIndex) > 0 {
		si = startIndex[0]
	}
	if si < 0 {
		si = n / 2
	}
	if si >= n {
		si = n - 1
	}
	up, down := si, si-1
	for up < n || down >= 0 {
		if up < n {
			if match(slice[up]) {
				return up
			}
			up++
		}
		if down >= 0 {
			if match(slice[down]) {
				return down
			}
			down--
		}
	}
	return -1
}

// Cycle returns the element of the given slice that is delta positions
// away from index i, wrapping around at both ends. It returns the zero
// value and false for an empty slice.
func Cycle[E any](slice []E, i, delta int) (E, bool) {
	n := len(slice)
	if n == 0 {
		var zv E
		return zv, false
	}
	j := ((i+delta)%n + n) % n
	return slice[j], true
}
