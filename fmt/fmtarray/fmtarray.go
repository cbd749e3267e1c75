// Copyright 2024 Google LLC
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

// Package fmtarray formats views into string.
package fmtarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gx-org/pyslice/base/stringseq"
	"github.com/gx-org/pyslice/interp/view"
)

type builder struct {
	w           *strings.Builder
	open, close string
	err         error
}

func newBuilder(open, close string) *builder {
	return &builder{
		w:     &strings.Builder{},
		open:  open,
		close: close,
	}
}

func toValue(x any) string {
	var fmtstr string
	switch x.(type) {
	case float32:
		fmtstr = "%.6f"
	case float64:
		fmtstr = "%.10f"
	default:
		return fmt.Sprint(x)
	}

	result := fmt.Sprintf(fmtstr, x)
	if strings.ContainsRune(result, '.') {
		// Remove any number of trailing zeroes after the decimal point, and remove
		// the point itself if there are no digits after it.
		result = strings.TrimRight(result, "0")
		result = strings.TrimSuffix(result, ".")
	}
	return result
}

func (b *builder) printScalar(v *view.View) {
	val, err := v.Value()
	if err != nil {
		b.err = err
		return
	}
	b.w.WriteString(toValue(val))
}

// values returns the scalars of a view of rank 1.
// Iteration stops at the first error, recorded in the builder.
func (b *builder) values(v *view.View) iter.Seq[any] {
	return func(yield func(any) bool) {
		for el, err := range v.All() {
			if err != nil {
				b.err = err
				return
			}
			if !yield(el) {
				return
			}
		}
	}
}

func (b *builder) printVector(v *view.View) {
	b.w.WriteString(b.open)
	stringseq.AppendFunc(b.w, b.values(v), toValue, ", ")
	b.w.WriteString(b.close)
}

const tab = "\t"

func (b *builder) printRec(indent string, v *view.View) {
	if v.Rank() == 1 {
		b.printVector(v)
		return
	}
	b.w.WriteString(b.open + "\n")
	for el, err := range v.All() {
		if err != nil {
			b.err = err
			return
		}
		b.w.WriteString(indent + tab)
		b.printRec(indent+tab, el.(*view.View))
		if b.err != nil {
			return
		}
		b.w.WriteString(",\n")
	}
	b.w.WriteString(indent + b.close)
}

func (b *builder) printType(v *view.View) {
	shape, err := v.Shape()
	if err != nil {
		b.err = err
		return
	}
	for _, size := range shape {
		fmt.Fprintf(b.w, "[%d]", size)
	}
	leaf := "any"
	if t := v.LeafType(); t != nil {
		leaf = t.String()
	}
	b.w.WriteString(leaf)
}

func (b *builder) sDataPrint(v *view.View) {
	if v.Rank() == 0 {
		b.printScalar(v)
		return
	}
	b.printRec("", v)
}

func (b *builder) String() string {
	if b.err != nil {
		return b.err.Error()
	}
	return b.w.String()
}

// SDataPrint returns a string representation of the content of a view without the type.
// Axes are delimited by brackets.
func SDataPrint(v *view.View) string {
	b := newBuilder("[", "]")
	b.sDataPrint(v)
	return b.String()
}

// Sprint returns a string representation of a view as a Go composite literal.
func Sprint(v *view.View) string {
	b := newBuilder("{", "}")
	b.printType(v)
	if v.Rank() == 0 {
		b.w.WriteString("(")
		b.printScalar(v)
		b.w.WriteString(")")
		return b.String()
	}
	b.sDataPrint(v)
	return b.String()
}
