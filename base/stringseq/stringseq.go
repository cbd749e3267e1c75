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

// Package stringseq joins iterator sequences into strings.
package stringseq

import (
	"fmt"
	"iter"
	"strings"
)

// AppendFunc appends the elements of a sequence, converted to strings by f,
// to a string builder. The separator sep is placed between elements.
func AppendFunc[T any](b *strings.Builder, seq iter.Seq[T], f func(T) string, sep string) {
	n := 0
	for item := range seq {
		if n > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f(item))
		n++
	}
}

// Join concatenates the elements of a sequence of strings.
// The separator sep is placed between elements in the resulting string.
func Join(seq iter.Seq[string], sep string) string {
	return JoinFunc(seq, func(s string) string { return s }, sep)
}

// JoinStringer concatenates the stringified elements of a sequence.
func JoinStringer[T fmt.Stringer](seq iter.Seq[T], sep string) string {
	return JoinFunc(seq, func(x T) string { return x.String() }, sep)
}

// JoinFunc concatenates the elements of a sequence converted to strings by f.
func JoinFunc[T any](seq iter.Seq[T], f func(T) string, sep string) string {
	var b strings.Builder
	AppendFunc(&b, seq, f, sep)
	return b.String()
}
