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

package container

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/gx-org/pyslice/build/rank"
)

type (
	// value adapts a reflected Go slice or array.
	value struct {
		v reflect.Value
	}

	// resizable adapts a settable Go slice.
	resizable struct {
		value
	}
)

var (
	_ Mutable   = (*value)(nil)
	_ Extensible = (*resizable)(nil)
)

func isSequenceKind(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func valueOf(v reflect.Value) Sequence {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !isSequenceKind(v.Kind()) {
		return nil
	}
	if v.Kind() == reflect.Slice && v.CanSet() {
		return &resizable{value: value{v: v}}
	}
	return &value{v: v}
}

// Len returns the length of the slice or array.
func (s *value) Len() int {
	return s.v.Len()
}

// Index returns the element at position i.
func (s *value) Index(i int) any {
	el := s.v.Index(i)
	if el.Kind() == reflect.Interface {
		if el.IsNil() {
			return nil
		}
		el = el.Elem()
	}
	if el.Kind() == reflect.Pointer && !el.IsNil() && isSequenceKind(el.Elem().Kind()) {
		el = el.Elem()
	}
	if seq := valueOf(el); seq != nil {
		return seq
	}
	return el.Interface()
}

// SetIndex replaces the element at position i.
func (s *value) SetIndex(i int, x any) error {
	dst := s.v.Index(i)
	if !dst.CanSet() {
		return errors.Errorf("cannot set element %d of a %s: the container is read-only", i, s.v.Type())
	}
	val, err := Convert(x, dst.Type())
	if err != nil {
		return err
	}
	dst.Set(val)
	return nil
}

// Rank returns the rank of the slice or array.
func (s *value) Rank() int {
	return rank.OfValue(s.v)
}

// ElemType returns the type of the scalars.
func (s *value) ElemType() reflect.Type {
	return rank.LeafType(s.v.Type())
}

// Interface returns the adapted Go value.
func (s *value) Interface() any {
	return s.v.Interface()
}

// Resize changes the length of the slice.
// New nested elements are allocated with the shape of the first element.
func (s *resizable) Resize(n int) error {
	if n < 0 {
		return errors.Errorf("cannot resize a %s to a negative length %d", s.v.Type(), n)
	}
	cur := s.v.Len()
	if n <= cur {
		s.v.Set(s.v.Slice(0, n))
		return nil
	}
	grown := reflect.MakeSlice(s.v.Type(), n, n)
	reflect.Copy(grown, s.v)
	if cur > 0 {
		for i := cur; i < n; i++ {
			grown.Index(i).Set(zeroLike(grown.Index(0)))
		}
	}
	s.v.Set(grown)
	return nil
}

// NewElem returns a new element shaped like the elements appended by Resize.
// Nested sequences are returned as mutable sequences.
func (s *resizable) NewElem() any {
	el := reflect.New(s.v.Type().Elem()).Elem()
	if s.v.Len() > 0 {
		el.Set(zeroLike(s.v.Index(0)))
	}
	if seq := valueOf(el); seq != nil {
		return seq
	}
	return el.Interface()
}

// zeroLike returns a zero value with the same nested lengths as v.
func zeroLike(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		zero := reflect.New(v.Type()).Elem()
		if !v.IsNil() {
			zero.Set(zeroLike(v.Elem()))
		}
		return zero
	case reflect.Slice:
		zero := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			zero.Index(i).Set(zeroLike(v.Index(i)))
		}
		return zero
	case reflect.Array:
		zero := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			zero.Index(i).Set(zeroLike(v.Index(i)))
		}
		return zero
	}
	return reflect.Zero(v.Type())
}
