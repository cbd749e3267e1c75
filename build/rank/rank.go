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

// Package rank computes the number of nested axes of containers.
//
// A type is indexable when it is a slice or an array (or a pointer to one of them).
// Its rank is 1 plus the rank of its element type. Everything else, including
// strings, is a scalar of rank 0. Containers that are not Go slices or arrays
// report their rank by implementing Ranker, or are probed through their first
// element.
package rank

import (
	"reflect"

	gxsync "github.com/gx-org/pyslice/base/sync"
)

type (
	// Ranker is implemented by containers annotating their own rank.
	Ranker interface {
		Rank() int
	}

	sequence interface {
		Len() int
		Index(int) any
	}
)

var typeRanks gxsync.Map[reflect.Type, int]

func isSequenceKind(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

// seqType returns the slice or array type of t, dereferencing pointers.
func seqType(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, isSequenceKind(t.Kind())
}

// OfType returns the rank of a type.
// The rank of interface types is unknown statically and counts as 0.
func OfType(t reflect.Type) int {
	if t == nil {
		return 0
	}
	if r, ok := typeRanks.Load(t); ok {
		return r
	}
	r := 0
	if st, ok := seqType(t); ok {
		r = 1 + OfType(st.Elem())
	}
	typeRanks.Store(t, r)
	return r
}

// LeafType returns the type of the scalars stored in a container type.
func LeafType(t reflect.Type) reflect.Type {
	for {
		st, ok := seqType(t)
		if !ok {
			return t
		}
		t = st.Elem()
	}
}

// hasDynamicLeaf returns true if the scalars of a type are stored in interfaces,
// in which case the rank depends on the values.
func hasDynamicLeaf(t reflect.Type) bool {
	return LeafType(t).Kind() == reflect.Interface
}

// OfValue returns the rank of a reflected value.
func OfValue(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return 0
		}
		return OfValue(v.Elem())
	case reflect.Slice, reflect.Array:
		if !hasDynamicLeaf(v.Type()) || v.Len() == 0 {
			return OfType(v.Type())
		}
		return 1 + OfValue(v.Index(0))
	}
	return 0
}

// Of returns the rank of a value.
func Of(x any) int {
	switch xT := x.(type) {
	case nil:
		return 0
	case Ranker:
		return xT.Rank()
	case sequence:
		if xT.Len() == 0 {
			return 1
		}
		return 1 + Of(xT.Index(0))
	}
	return OfValue(reflect.ValueOf(x))
}
