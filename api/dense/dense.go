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

// Package dense implements row-major multi-dimensional arrays
// addressable by views.
package dense

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/pyslice/api/container"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/fmt/fmtarray"
	"github.com/gx-org/pyslice/interp/view"
)

// Array is a multi-dimensional array stored in a flat buffer.
// The length of its axes never changes.
type Array[T dtype.GoDataType] struct {
	shape  shape.Shape
	values []T
}

var _ container.Mutable = (*Array[int32])(nil)

// New returns a new array of zeros.
func New[T dtype.GoDataType](axes ...int) *Array[T] {
	a := &Array[T]{shape: shape.Shape{
		DType:       dtype.Generic[T](),
		AxisLengths: axes,
	}}
	a.values = make([]T, a.shape.Size())
	return a
}

// FromFlat returns an array using a flat buffer as storage.
// The length of the buffer must match the product of the axis lengths.
func FromFlat[T dtype.GoDataType](values []T, axes ...int) (*Array[T], error) {
	sh := shape.Shape{
		DType:       dtype.Generic[T](),
		AxisLengths: axes,
	}
	if len(values) != sh.Size() {
		return nil, errors.Errorf("len(values)=%d does not match axes %v=%d", len(values), axes, sh.Size())
	}
	return &Array[T]{shape: sh, values: values}, nil
}

// Shape of the array.
func (a *Array[T]) Shape() *shape.Shape {
	return &a.shape
}

// Flat values of the array.
func (a *Array[T]) Flat() []T {
	return a.values
}

// Rank returns the number of axes of the array.
func (a *Array[T]) Rank() int {
	return len(a.shape.AxisLengths)
}

// Len returns the length of the first axis, 0 for atomic arrays.
func (a *Array[T]) Len() int {
	if a.shape.IsAtomic() {
		return 0
	}
	return a.shape.AxisLengths[0]
}

func (a *Array[T]) stride() int {
	sub := shape.Shape{AxisLengths: a.shape.AxisLengths[1:]}
	return sub.Size()
}

// Index returns the element at position i of the first axis:
// a sub-array sharing the storage of a, or a scalar for arrays of rank 1.
func (a *Array[T]) Index(i int) any {
	if a.Rank() == 1 {
		return a.values[i]
	}
	stride := a.stride()
	return &Array[T]{
		shape: shape.Shape{
			DType:       a.shape.DType,
			AxisLengths: a.shape.AxisLengths[1:],
		},
		values: a.values[i*stride : (i+1)*stride],
	}
}

// SetIndex sets the scalar at position i of an array of rank 1.
func (a *Array[T]) SetIndex(i int, x any) error {
	if a.Rank() != 1 {
		return errors.Errorf("cannot set element %d of a %s array: only scalars of arrays of rank 1 can be set", i, a.shape.String())
	}
	val, err := container.Convert(x, a.ElemType())
	if err != nil {
		return err
	}
	a.values[i] = val.Interface().(T)
	return nil
}

// ElemType returns the Go type of the scalars.
func (a *Array[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

var (
	all   = expr.MustCompile("...")
	first = expr.MustCompile("0")
)

// String representation of the array.
func (a *Array[T]) String() string {
	if a.shape.IsAtomic() {
		// View the scalar through an array of rank 1.
		a = &Array[T]{shape: shape.Shape{DType: a.shape.DType, AxisLengths: []int{1}}, values: a.values}
		v, err := view.New(a, first)
		if err != nil {
			return err.Error()
		}
		return fmtarray.Sprint(v)
	}
	v, err := view.New(a, all)
	if err != nil {
		return err.Error()
	}
	return fmtarray.Sprint(v)
}
