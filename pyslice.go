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

// Package pyslice addresses nested Go containers with Python slice expressions.
//
// An expression such as "1, :, ::-1" or "..., 2:8:2" selects a rectangular
// region of a container of any rank without copying it:
//
//	v := pyslice.MustIndex(&grid, "::2, 1")
//	err := v.Set(0)
//
// Views alias the container: assignments write through to it. Use Copy to
// obtain independent storage.
package pyslice

import (
	"github.com/gx-org/pyslice/api/options"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/interp/materialise"
	"github.com/gx-org/pyslice/interp/view"
)

var (
	// ErrCompile is returned when an expression cannot be parsed or addresses
	// more axes than its container has.
	ErrCompile = expr.ErrCompile

	// ErrOutOfRange is returned when bounds checking is enabled and an index falls outside its axis.
	ErrOutOfRange = view.ErrOutOfRange

	// ErrRankMismatch is returned when assigning a value of a higher rank than the view.
	ErrRankMismatch = view.ErrRankMismatch

	// ErrSizeMismatch is returned when assigning a sequence of a different
	// length to a view that cannot be resized.
	ErrSizeMismatch = view.ErrSizeMismatch
)

// Index applies an expression to a container.
// Expressions are compiled once and reused across calls.
func Index(c any, src string, opts ...options.ViewOption) (*view.View, error) {
	e, err := expr.Cached(src)
	if err != nil {
		return nil, err
	}
	return view.New(c, e, opts...)
}

// MustIndex is like Index but panics on error.
func MustIndex(c any, src string, opts ...options.ViewOption) *view.View {
	v, err := Index(c, src, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Copy returns the elements of a container addressed by an expression
// in new nested Go slices.
func Copy(c any, src string, opts ...options.ViewOption) (any, error) {
	v, err := Index(c, src, opts...)
	if err != nil {
		return nil, err
	}
	return materialise.Copy(v)
}
