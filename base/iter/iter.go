// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package iter provides common iterators.
package iter

import "golang.org/x/exp/constraints"

// Stride iterates over n positions starting at first and separated by step.
// It yields the logical index of each position together with the position.
func Stride[T constraints.Integer](first, step, n T) func(yield func(T, T) bool) {
	return func(yield func(T, T) bool) {
		pos := first
		for i := T(0); i < n; i++ {
			if !yield(i, pos) {
				return
			}
			pos += step
		}
	}
}

// CeilDiv returns the quotient of a by b rounded towards positive infinity.
func CeilDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
