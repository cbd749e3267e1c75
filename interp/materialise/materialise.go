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

// Package materialise copies the elements addressed by views into new storage.
package materialise

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/pyslice/api/container"
	"github.com/gx-org/pyslice/api/dense"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/interp/view"
)

var anyType = reflect.TypeFor[any]()

// Copy returns new nested Go slices holding the elements of a view.
// The type of the result is []...[]T where T is the scalar type of the
// container, or any if the container does not report it.
// The result shares no storage with the container.
// A view of rank 0 returns its scalar.
func Copy(v *view.View) (any, error) {
	if v.Rank() == 0 {
		return v.Value()
	}
	leaf := v.LeafType()
	if leaf == nil {
		leaf = anyType
	}
	t := leaf
	for range v.Rank() {
		t = reflect.SliceOf(t)
	}
	out, err := copyRec(v, t)
	if err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

func copyRec(v *view.View, t reflect.Type) (reflect.Value, error) {
	out := reflect.MakeSlice(t, v.Len(), v.Len())
	i := 0
	for el, err := range v.All() {
		if err != nil {
			return reflect.Value{}, err
		}
		var val reflect.Value
		if sub, ok := el.(*view.View); ok {
			val, err = copyRec(sub, t.Elem())
		} else {
			val, err = container.Convert(el, t.Elem())
		}
		if err != nil {
			return reflect.Value{}, errors.WithMessagef(err, "element %d", i)
		}
		out.Index(i).Set(val)
		i++
	}
	return out, nil
}

var all = expr.MustCompile("...")

// ToArray copies the elements of a view into a new dense array.
// All the elements of an axis of the view must have the same length.
func ToArray[T dtype.GoDataType](v *view.View) (*dense.Array[T], error) {
	shape, err := v.Shape()
	if err != nil {
		return nil, err
	}
	a := dense.New[T](shape...)
	if v.Rank() == 0 {
		val, err := v.Value()
		if err != nil {
			return nil, err
		}
		cv, err := container.Convert(val, reflect.TypeFor[T]())
		if err != nil {
			return nil, err
		}
		a.Flat()[0] = cv.Interface().(T)
		return a, nil
	}
	dst, err := view.New(a, all)
	if err != nil {
		return nil, err
	}
	if err := dst.Set(v); err != nil {
		return nil, errors.WithMessagef(err, "cannot copy %s into a %s array", v.Expr(), a.Shape().String())
	}
	return a, nil
}
