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

// Package container defines the capabilities a container must provide to be
// addressed by slice expressions, and adapts Go slices and arrays to them.
package container

import (
	"reflect"

	"github.com/pkg/errors"
)

type (
	// Sequence is a read-only integer-indexed container reporting its length.
	// Index returns either a nested container (a Sequence, a Go slice or array)
	// or a scalar.
	Sequence interface {
		Len() int
		Index(i int) any
	}

	// Mutable is a sequence whose elements can be replaced.
	Mutable interface {
		Sequence
		SetIndex(i int, x any) error
	}

	// Resizable is a mutable sequence whose length can change.
	Resizable interface {
		Mutable
		Resize(n int) error
	}

	// Extensible is a resizable sequence able to build the element it appends
	// when growing, detached from the sequence.
	Extensible interface {
		Resizable
		NewElem() any
	}

	// Typed is implemented by containers reporting the type of their scalars.
	Typed interface {
		ElemType() reflect.Type
	}
)

// Of returns the sequence of a value.
// Go slices, arrays and pointers to them are adapted with reflection.
// Pointers to slices are resizable. Arrays are mutable only when passed by pointer.
func Of(x any) (Sequence, error) {
	if seq, ok := x.(Sequence); ok {
		return seq, nil
	}
	v := reflect.ValueOf(x)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	seq := valueOf(v)
	if seq == nil {
		return nil, errors.Errorf("%T is not a sequence", x)
	}
	return seq, nil
}

// IsSequence returns true if a value can be adapted to a sequence.
func IsSequence(x any) bool {
	if _, ok := x.(Sequence); ok {
		return true
	}
	v := reflect.ValueOf(x)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

// Convert converts a scalar to a target type.
// Numeric kinds convert to each other. A nil value converts to the zero value.
func Convert(x any, t reflect.Type) (reflect.Value, error) {
	if x == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(x)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, errors.Errorf("cannot use a value of type %T as %s", x, t.String())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// EqualScalars returns true if two scalars are equal.
// Numbers of different types are equal if they hold the same value.
func EqualScalars(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() && isNumeric(va.Kind()) && isNumeric(vb.Kind()) {
		return equalNumbers(va, vb)
	}
	if !va.Type().Comparable() || !vb.Type().Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func equalNumbers(a, b reflect.Value) bool {
	switch {
	case isFloat(a.Kind()) || isFloat(b.Kind()):
		return a.Convert(float64Type).Float() == b.Convert(float64Type).Float()
	case isUnsigned(a.Kind()) && isUnsigned(b.Kind()):
		return a.Uint() == b.Uint()
	case isUnsigned(a.Kind()):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	case isUnsigned(b.Kind()):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	}
	return a.Int() == b.Int()
}

var float64Type = reflect.TypeFor[float64]()

// ElemType returns the type of the scalars of a sequence, nil if unknown.
func ElemType(seq Sequence) reflect.Type {
	typed, ok := seq.(Typed)
	if !ok {
		return nil
	}
	return typed.ElemType()
}
