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
	"github.com/gx-org/pyslice/api/container"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/build/rank"
)

var all = expr.MustCompile("...")

// Equal returns true if a view and a value have the same rank, the same
// lengths along every axis and equal scalars. The value is a scalar, a
// Go slice or array, a container.Sequence or another *View.
// No broadcasting is performed: different shapes are not equal.
func (v *View) Equal(other any) bool {
	ov, ok := other.(*View)
	if !ok {
		if rank.Of(other) == 0 {
			if v.rank > 0 {
				return false
			}
			val, err := v.Value()
			return err == nil && container.EqualScalars(val, other)
		}
		var err error
		if ov, err = New(other, all); err != nil {
			return false
		}
		ov.cfg = v.cfg
	}
	return equal(v, ov)
}

func equal(a, b *View) bool {
	if a.rank != b.rank {
		return false
	}
	if a.rank == 0 {
		av, err := a.Value()
		if err != nil {
			return false
		}
		bv, err := b.Value()
		if err != nil {
			return false
		}
		return container.EqualScalars(av, bv)
	}
	if a.size != b.size {
		return false
	}
	for i := range a.size {
		as, err := a.Sub(i)
		if err != nil {
			return false
		}
		bs, err := b.Sub(i)
		if err != nil {
			return false
		}
		if !equal(as, bs) {
			return false
		}
	}
	return true
}
