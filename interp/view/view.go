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

// Package view binds compiled slice expressions to containers.
//
// A View aliases the container it was created from: reading through a view
// reads the container and assigning through a view writes into the container.
// The container must outlive the view and must not be resized by another
// party while the view is in use. Views perform no locking.
package view

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/gx-org/pyslice/api/container"
	"github.com/gx-org/pyslice/api/options"
	gxiter "github.com/gx-org/pyslice/base/iter"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/build/rank"
)

// View of a container through a slice expression.
//
// A view of rank n>0 has a slice axis as its head: its positions are
// first, first+step, ..., first+(size-1)*step along the underlying axis.
// Index axes are resolved as soon as they are reached and never appear
// as the head of a view. A view of rank 0 is a single scalar slot.
type View struct {
	cfg *settings
	e   *expr.Expr
	// crank is the rank of the container the expression has been applied to.
	crank int
	// level of the head axis in the container.
	level int
	// rank of the view, that is its number of slice axes.
	rank int

	// seq is the sequence addressed by the head axis.
	// For rank 0 views, seq owns the slot at position first.
	seq   container.Sequence
	first int
	step  int
	size  int
}

var _ rank.Ranker = (*View)(nil)

// New applies an expression to a container.
// The container is either a Go slice or array (passed by pointer to be
// mutable or resizable), or implements container.Sequence.
func New(c any, e *expr.Expr, opts ...options.ViewOption) (*View, error) {
	cfg, err := processOptions(opts)
	if err != nil {
		return nil, err
	}
	seq, err := container.Of(c)
	if err != nil {
		return nil, err
	}
	crank := rank.Of(seq)
	if crank == 0 {
		return nil, errors.Errorf("cannot apply %q to %T: no axis to index", e.Source(), c)
	}
	if err := e.Check(crank); err != nil {
		return nil, err
	}
	return bind(cfg, e, crank, 0, seq)
}

// logicalRank counts the slice axes from a level to the last axis of the container.
func logicalRank(e *expr.Expr, level, crank int) int {
	r := 0
	for l := level; l < crank; l++ {
		if e.AxisAt(l, crank).Kind != expr.IndexKind {
			r++
		}
	}
	return r
}

func sequenceAt(seq container.Sequence, pos int) (container.Sequence, error) {
	el := seq.Index(pos)
	sub, err := container.Of(el)
	if err != nil {
		return nil, errors.Wrapf(err, "element %d", pos)
	}
	return sub, nil
}

// bind builds the view whose head is the axis at a given level,
// resolving index axes until a slice axis or a scalar is reached.
func bind(cfg *settings, e *expr.Expr, crank, level int, seq container.Sequence) (*View, error) {
	for {
		ax := e.AxisAt(level, crank)
		length := seq.Len()
		if ax.Kind != expr.IndexKind {
			first, step, size := ax.Indices(length)
			return &View{
				cfg:   cfg,
				e:     e,
				crank: crank,
				level: level,
				rank:  logicalRank(e, level, crank),
				seq:   seq,
				first: first,
				step:  step,
				size:  size,
			}, nil
		}
		pos, err := cfg.position(ax.Start, length)
		if err != nil {
			return nil, err
		}
		if level == crank-1 {
			return &View{cfg: cfg, e: e, crank: crank, level: level, seq: seq, first: pos, step: 1}, nil
		}
		if seq, err = sequenceAt(seq, pos); err != nil {
			return nil, err
		}
		level++
	}
}

// Rank returns the number of axes of the view.
func (v *View) Rank() int {
	return v.rank
}

// Len returns the number of positions along the first axis of the view.
// Views of rank 0 have no axis and a length of 0.
func (v *View) Len() int {
	if v.rank == 0 {
		return 0
	}
	return v.size
}

// Expr returns the expression from which the view has been built.
func (v *View) Expr() *expr.Expr {
	return v.e
}

// Shape returns the length of every axis of the view.
// Inner axis lengths are read from the first element of each axis.
func (v *View) Shape() ([]int, error) {
	shape := make([]int, 0, v.rank)
	for cur := v; cur.rank > 0; {
		shape = append(shape, cur.size)
		if cur.rank == 1 {
			break
		}
		if cur.size == 0 {
			for range cur.rank - 1 {
				shape = append(shape, 0)
			}
			break
		}
		var err error
		if cur, err = cur.Sub(0); err != nil {
			return nil, err
		}
	}
	return shape, nil
}

// LeafType returns the type of the scalars of the view, nil if the
// container does not report it.
func (v *View) LeafType() reflect.Type {
	return container.ElemType(v.seq)
}

// position returns the underlying position of a logical position.
func (v *View) position(i int) (int, error) {
	if v.cfg.boundsCheck && (i < 0 || i >= v.size) {
		return 0, errors.Wrapf(ErrOutOfRange, "invalid argument: index %d out of bounds [0:%d]", i, v.size)
	}
	pos := v.first + i*v.step
	if v.cfg.boundsCheck && (pos < 0 || pos >= v.seq.Len()) {
		return 0, errors.Wrapf(ErrOutOfRange, "invalid argument: position %d out of bounds [0:%d]", pos, v.seq.Len())
	}
	return pos, nil
}

// Sub returns the element at logical position i of the first axis as a view.
// The returned view has a rank of 0 when the element is a scalar.
func (v *View) Sub(i int) (*View, error) {
	if v.rank == 0 {
		return nil, errors.Errorf("cannot index a view of rank 0")
	}
	pos, err := v.position(i)
	if err != nil {
		return nil, err
	}
	if v.level == v.crank-1 {
		return &View{cfg: v.cfg, e: v.e, crank: v.crank, level: v.level, seq: v.seq, first: pos, step: 1}, nil
	}
	seq, err := sequenceAt(v.seq, pos)
	if err != nil {
		return nil, err
	}
	return bind(v.cfg, v.e, v.crank, v.level+1, seq)
}

// At returns the element at logical position i of the first axis:
// a *View if the element has axes left, its scalar value otherwise.
func (v *View) At(i int) (any, error) {
	sub, err := v.Sub(i)
	if err != nil {
		return nil, err
	}
	if sub.rank > 0 {
		return sub, nil
	}
	return sub.Value()
}

// Value returns the scalar of a view of rank 0.
// It returns an error if the slot holds a sequence, which happens when the
// elements of a container do not all have the same rank.
func (v *View) Value() (any, error) {
	if v.rank > 0 {
		return nil, errors.Errorf("cannot read a view of rank %d as a scalar", v.rank)
	}
	val := v.seq.Index(v.first)
	if _, ok := val.(container.Sequence); ok {
		return nil, errors.Errorf("element %d has more axes than the rank %d of the container", v.first, v.crank)
	}
	return val, nil
}

// All iterates over the elements of the first axis in logical order.
// Elements are either *View or scalars, as returned by At.
// Iteration stops after the first error.
func (v *View) All() func(yield func(any, error) bool) {
	return func(yield func(any, error) bool) {
		for i := range v.Len() {
			el, err := v.At(i)
			if !yield(el, err) || err != nil {
				return
			}
		}
	}
}

// Positions iterates over the logical positions of the first axis and
// their positions in the underlying container.
func (v *View) Positions() func(yield func(int, int) bool) {
	return gxiter.Stride(v.first, v.step, v.Len())
}
