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

package view

import (
	"github.com/pkg/errors"
	"github.com/gx-org/pyslice/api/container"
	"github.com/gx-org/pyslice/build/rank"
)

// indexer reads the elements of a source with errors.
type indexer interface {
	Len() int
	At(int) (any, error)
}

type seqIndexer struct {
	container.Sequence
}

func (s seqIndexer) At(i int) (any, error) {
	return s.Index(i), nil
}

func indexerOf(src any) (indexer, error) {
	if v, ok := src.(*View); ok {
		return v, nil
	}
	seq, err := container.Of(src)
	if err != nil {
		return nil, err
	}
	return seqIndexer{Sequence: seq}, nil
}

func scalarOf(src any) (any, error) {
	if v, ok := src.(*View); ok {
		return v.Value()
	}
	return src, nil
}

// canResize returns true if the view covers a whole resizable axis in its natural order.
func (v *View) canResize() (container.Resizable, bool) {
	if !v.cfg.resize || v.first != 0 || v.step != 1 || v.size != v.seq.Len() {
		return nil, false
	}
	rs, ok := v.seq.(container.Resizable)
	return rs, ok
}

// Set assigns a value to every position of the view.
//
// The value is a scalar, a Go slice or array, a container.Sequence or
// another *View. A value of the same rank as the view is copied element by
// element; when its length differs, the addressed axis is resized if the view
// covers a whole resizable axis, otherwise ErrSizeMismatch is returned.
// A value of a lower rank is broadcast to every position of the view.
// A value of a higher rank returns ErrRankMismatch.
//
// The assignment is validated before any position is written: rank, size and
// bounds errors leave the container unchanged. Errors returned by the
// container itself while writing may leave some positions written.
//
// Elements are copied in logical order. Assigning a view to an overlapping
// view of the same container reads positions that may already have been
// written.
func (v *View) Set(src any) error {
	srcRank := rank.Of(src)
	if err := v.check(src, srcRank); err != nil {
		return err
	}
	return v.assign(src, srcRank)
}

func (v *View) checkRank(srcRank int) error {
	if srcRank > v.rank {
		return errors.Wrapf(ErrRankMismatch, "cannot assign a value of rank %d to a view of rank %d", srcRank, v.rank)
	}
	return nil
}

func (v *View) checkSize(n int) error {
	if n == v.size {
		return nil
	}
	if _, ok := v.canResize(); ok {
		return nil
	}
	return errors.Wrapf(ErrSizeMismatch, "cannot assign %d elements to a view of %d elements", n, v.size)
}

// grownSub returns a view of an element appended by resizing the head axis.
// The element is detached from the container.
func (v *View) grownSub() (*View, error) {
	if v.level == v.crank-1 {
		// Scalars only require the sequence to be mutable.
		return &View{cfg: v.cfg, e: v.e, crank: v.crank, level: v.level, seq: v.seq, step: 1}, nil
	}
	ext, ok := v.seq.(container.Extensible)
	if !ok {
		if v.size > 0 {
			// Appended elements are assumed to be shaped like the first one.
			return v.Sub(0)
		}
		return nil, errors.Errorf("cannot check the elements appended to an empty %T", v.seq)
	}
	seq, err := container.Of(ext.NewElem())
	if err != nil {
		return nil, err
	}
	return bind(v.cfg, v.e, v.crank, v.level+1, seq)
}

// check validates an assignment without writing anything.
func (v *View) check(src any, srcRank int) error {
	if err := v.checkRank(srcRank); err != nil {
		return err
	}
	if v.rank == 0 {
		if _, ok := v.seq.(container.Mutable); !ok {
			return errors.Errorf("cannot assign to a read-only %T", v.seq)
		}
		return nil
	}
	if srcRank < v.rank {
		// Broadcasting only needs to check the positions when index axes
		// or inner axes are left to resolve.
		if v.level == v.crank-1 {
			if _, ok := v.seq.(container.Mutable); !ok {
				return errors.Errorf("cannot assign to a read-only %T", v.seq)
			}
			return nil
		}
		for i := range v.size {
			sub, err := v.Sub(i)
			if err != nil {
				return err
			}
			if err := sub.check(src, srcRank); err != nil {
				return err
			}
		}
		return nil
	}
	s, err := indexerOf(src)
	if err != nil {
		return err
	}
	n := s.Len()
	if err := v.checkSize(n); err != nil {
		return err
	}
	for i := range n {
		var sub *View
		if i < v.size {
			sub, err = v.Sub(i)
		} else {
			sub, err = v.grownSub()
		}
		if err != nil {
			return err
		}
		el, err := s.At(i)
		if err != nil {
			return err
		}
		if err := sub.check(el, rank.Of(el)); err != nil {
			return errors.WithMessagef(err, "element %d", i)
		}
	}
	return nil
}

func (v *View) assign(src any, srcRank int) error {
	if v.rank == 0 {
		val, err := scalarOf(src)
		if err != nil {
			return err
		}
		mut, ok := v.seq.(container.Mutable)
		if !ok {
			return errors.Errorf("cannot assign to a read-only %T", v.seq)
		}
		return mut.SetIndex(v.first, val)
	}
	if srcRank < v.rank {
		for i := range v.size {
			sub, err := v.Sub(i)
			if err != nil {
				return err
			}
			if err := sub.assign(src, srcRank); err != nil {
				return err
			}
		}
		return nil
	}
	s, err := indexerOf(src)
	if err != nil {
		return err
	}
	if n := s.Len(); n != v.size {
		rs, ok := v.canResize()
		if !ok {
			return errors.Wrapf(ErrSizeMismatch, "cannot assign %d elements to a view of %d elements", n, v.size)
		}
		if err := rs.Resize(n); err != nil {
			return err
		}
		v.size = n
	}
	for i := range v.size {
		sub, err := v.Sub(i)
		if err != nil {
			return err
		}
		el, err := s.At(i)
		if err != nil {
			return err
		}
		if err := sub.assign(el, rank.Of(el)); err != nil {
			return err
		}
	}
	return nil
}
