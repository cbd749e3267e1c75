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

// Package expr compiles slice expressions such as "1, :, 2:8:2" or "..., ::-1"
// into immutable axis descriptors.
//
// The grammar is:
//
//	expr     := axis (',' axis)*
//	axis     := ellipsis | index | slice
//	ellipsis := '...'
//	index    := ['-'] digit+
//	slice    := [index] ':' [index] [ ':' [index] ]
//
// Whitespace is ignored.
package expr

import (
	"fmt"
	"slices"

	"github.com/gx-org/pyslice/base/iter"
	"github.com/gx-org/pyslice/base/stringseq"
)

// Kind of an axis.
type Kind int

const (
	// IndexKind fixes an axis at a single position. The axis disappears from the view.
	IndexKind Kind = iota
	// SliceKind selects a range of positions along an axis.
	SliceKind
	// EllipsisKind expands to full-range slices over every axis not covered by the expression.
	EllipsisKind
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case IndexKind:
		return "index"
	case SliceKind:
		return "slice"
	case EllipsisKind:
		return "ellipsis"
	}
	return "invalid"
}

// Axis describes how one axis of a container is addressed.
type Axis struct {
	Kind Kind
	// Start is the first position of a slice or the position of an index.
	// Negative values count from the end of the axis.
	Start int
	// Stop is the position before which a slice stops.
	// Negative values count from the end of the axis.
	Stop int
	// Step between two positions of a slice. Never zero.
	Step int
	// HasStart and HasStop are false when the bound is left to its default.
	HasStart, HasStop bool
	// Col is the column of the axis in the expression source.
	Col int
}

// full is a full-range slice.
var full = Axis{Kind: SliceKind, Step: 1, Col: -1}

// Indices resolves a slice axis against the length of the axis.
// It returns the first position, the step and the number of positions.
// Negative bounds are resolved as length+bound and then clamped to the
// axis, so that the positions of a slice always lie in [0, length).
// An index axis resolves to a single position without any clamping.
func (a Axis) Indices(length int) (first, step, size int) {
	if a.Kind == IndexKind {
		first = a.Start
		if first < 0 {
			first += length
		}
		return first, 1, 1
	}
	step = a.Step
	if step == 0 {
		step = 1
	}
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	first = upper
	if step > 0 {
		first = lower
	}
	if a.HasStart {
		first = clamp(a.Start, length, lower, upper)
	}
	stop := lower
	if step > 0 {
		stop = upper
	}
	if a.HasStop {
		stop = clamp(a.Stop, length, lower, upper)
	}
	size = max(0, iter.CeilDiv(stop-first, step))
	return first, step, size
}

func clamp(x, length, lower, upper int) int {
	if x < 0 {
		x += length
	}
	return min(max(x, lower), upper)
}

func formatBound(ok bool, x int) string {
	if !ok {
		return ""
	}
	return fmt.Sprint(x)
}

// String returns the canonical source of the axis.
func (a Axis) String() string {
	switch a.Kind {
	case IndexKind:
		return fmt.Sprint(a.Start)
	case EllipsisKind:
		return "..."
	}
	s := formatBound(a.HasStart, a.Start) + ":" + formatBound(a.HasStop, a.Stop)
	if a.Step != 1 {
		s += ":" + fmt.Sprint(a.Step)
	}
	return s
}

// Expr is a compiled slice expression.
// An expression is immutable and can be applied to any number of containers.
type Expr struct {
	src      string
	axes     []Axis
	ellipsis int
}

// Source returns the text from which the expression has been compiled.
func (e *Expr) Source() string {
	return e.src
}

// NumAxes returns the number of axes written in the expression, including the ellipsis.
func (e *Expr) NumAxes() int {
	return len(e.axes)
}

// Axes returns a copy of the axes written in the expression.
func (e *Expr) Axes() []Axis {
	return append([]Axis{}, e.axes...)
}

// HasEllipsis returns true if the expression contains an ellipsis.
func (e *Expr) HasEllipsis() bool {
	return e.ellipsis >= 0
}

// numExplicit returns the number of container axes the expression addresses explicitly.
func (e *Expr) numExplicit() int {
	if e.HasEllipsis() {
		return len(e.axes) - 1
	}
	return len(e.axes)
}

// Check returns an error if the expression addresses more axes than a
// container of the given rank has.
func (e *Expr) Check(rank int) error {
	if n := e.numExplicit(); n > rank {
		return compileErrorf(e.src, -1, "too many indices: %d axes addressed but the container has rank %d", n, rank)
	}
	return nil
}

// AxisAt returns the axis addressing a given level of a container of a given rank.
// The ellipsis, and any level left unaddressed at the end of the expression,
// resolve to full-range slices.
func (e *Expr) AxisAt(level, rank int) Axis {
	prefix := len(e.axes)
	if e.HasEllipsis() {
		prefix = e.ellipsis
	}
	if level < prefix {
		return e.axes[level]
	}
	if !e.HasEllipsis() {
		return full
	}
	suffix := e.axes[e.ellipsis+1:]
	start := rank - len(suffix)
	if level >= start {
		return suffix[level-start]
	}
	return full
}

// String returns the canonical source of the expression.
func (e *Expr) String() string {
	return stringseq.JoinStringer(slices.Values(e.axes), ", ")
}
