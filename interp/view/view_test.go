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

package view_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/pyslice/api/options"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/interp/view"
)

func newView(t *testing.T, c any, src string, opts ...options.ViewOption) *view.View {
	t.Helper()
	v, err := view.New(c, expr.MustCompile(src), opts...)
	if err != nil {
		t.Fatalf("cannot apply %q to %T: %+v", src, c, err)
	}
	return v
}

func arange(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestRead(t *testing.T) {
	tests := []struct {
		c    any
		src  string
		want any
	}{
		{c: arange(10), src: "...", want: arange(10)},
		{c: arange(10), src: ":", want: arange(10)},
		{c: arange(10), src: "::-1", want: []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{c: arange(10), src: "2:5:2", want: []int{2, 4}},
		{c: arange(10), src: "-4:-1:2", want: []int{6, 8}},
		{c: arange(10), src: "::-3", want: []int{9, 6, 3, 0}},
		{c: arange(10), src: ":-3:-3", want: []int{9}},
		{c: arange(10), src: "-4::-4", want: []int{6, 2}},
		{c: arange(10), src: "-4:-1:-1", want: []int{}},
		{c: arange(10), src: "3:100", want: []int{3, 4, 5, 6, 7, 8, 9}},
		{c: arange(10), src: "-100:2", want: []int{0, 1}},
		{
			c:    [][]int{{1, 2, 3}, {4, 5, 6}},
			src:  ":, 1",
			want: []int{2, 5},
		},
		{
			c:    [][]int{{1, 2, 3}, {4, 5, 6}},
			src:  "-1",
			want: []int{4, 5, 6},
		},
		{
			c:    [][]int{{1, 2, 3}, {4, 5, 6}},
			src:  "::-1, ::2",
			want: [][]int{{4, 6}, {1, 3}},
		},
		{
			c:    [][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}},
			src:  "..., 0",
			want: [][]int{{1, 3}, {5, 7}},
		},
		{
			c:    [][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}},
			src:  "1, ...",
			want: [][]int{{5, 6}, {7, 8}},
		},
		{
			c:    [][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}},
			src:  "1, ..., 1",
			want: []int{6, 8},
		},
		{
			c:    []any{[]any{1, 2}, []any{3, 4}},
			src:  ":, -1",
			want: []int{2, 4},
		},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			v := newView(t, test.c, test.src)
			if !v.Equal(test.want) {
				t.Errorf("%q applied to %v: got a view not equal to %v", test.src, test.c, test.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	var a [3][3][3]int
	tests := []struct {
		src  string
		want int
	}{
		{src: "...", want: 3},
		{src: "1, :, 2", want: 1},
		{src: "..., 1", want: 2},
		{src: "1, ...", want: 2},
		{src: "1", want: 2},
		{src: "1, 2, 0", want: 0},
		{src: "::2, 0", want: 2},
	}
	for _, test := range tests {
		v := newView(t, &a, test.src)
		if got := v.Rank(); got != test.want {
			t.Errorf("%q: got rank %d but want %d", test.src, got, test.want)
		}
	}
}

func TestShape(t *testing.T) {
	c := [][]int{{1, 2, 3}, {4, 5, 6}}
	tests := []struct {
		src  string
		want []int
	}{
		{src: "...", want: []int{2, 3}},
		{src: "..., 1:", want: []int{2, 2}},
		{src: "1", want: []int{3}},
		{src: "5:, :", want: []int{0, 0}},
		{src: "1, 2", want: []int{}},
	}
	for _, test := range tests {
		got, err := newView(t, c, test.src).Shape()
		if err != nil {
			t.Errorf("%q: %+v", test.src, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: unexpected shape: %s", test.src, diff)
		}
	}
}

func TestValue(t *testing.T) {
	v := newView(t, [][]int{{1, 2, 3}, {4, 5, 6}}, "1, -1")
	got, err := v.Value()
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("got %v but want 6", got)
	}
	if !v.Equal(6) {
		t.Errorf("view %q not equal to 6", v.Expr())
	}
	if _, err := newView(t, arange(3), ":").Value(); err == nil {
		t.Errorf("reading a view of rank 1 as a scalar: expected an error")
	}
}

func TestLeafType(t *testing.T) {
	v := newView(t, [][]float32{{1}}, "0")
	if got := v.LeafType().String(); got != "float32" {
		t.Errorf("got leaf type %s but want float32", got)
	}
}

func TestAll(t *testing.T) {
	var got []any
	for el, err := range newView(t, arange(6), "::2").All() {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, el)
	}
	if diff := cmp.Diff([]any{0, 2, 4}, got); diff != "" {
		t.Errorf("unexpected elements: %s", diff)
	}
	v := newView(t, [][]int{{1, 2}, {3, 4}}, "::-1")
	rows := 0
	for el, err := range v.All() {
		if err != nil {
			t.Fatal(err)
		}
		row, ok := el.(*view.View)
		if !ok {
			t.Fatalf("got %T but want *view.View", el)
		}
		if want := [][]int{{3, 4}, {1, 2}}[rows]; !row.Equal(want) {
			t.Errorf("row %d not equal to %v", rows, want)
		}
		rows++
	}
	if rows != 2 {
		t.Errorf("got %d rows but want 2", rows)
	}
}

func TestPositions(t *testing.T) {
	type pos struct{ I, Pos int }
	var got []pos
	for i, p := range newView(t, arange(5), "::-2").Positions() {
		got = append(got, pos{i, p})
	}
	want := []pos{{0, 4}, {1, 2}, {2, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected positions: %s", diff)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := view.New(5, expr.MustCompile("0")); err == nil {
		t.Errorf("applying an expression to a scalar: expected an error")
	}
	_, err := view.New(arange(3), expr.MustCompile("1, 2"))
	if !errors.Is(err, expr.ErrCompile) {
		t.Errorf("too many indices: got error %v but want %v", err, expr.ErrCompile)
	}
}

func TestBoundsCheck(t *testing.T) {
	check := options.BoundsCheck{Enabled: true}
	for _, src := range []string{"5", "-3", "0, 7"} {
		c := [][]int{{1, 2}, {3, 4}}
		_, err := view.New(c, expr.MustCompile(src), check)
		if !errors.Is(err, view.ErrOutOfRange) {
			t.Errorf("%q: got error %v but want %v", src, err, view.ErrOutOfRange)
		}
	}
	v := newView(t, arange(3), ":", check)
	if _, err := v.At(3); !errors.Is(err, view.ErrOutOfRange) {
		t.Errorf("At(3): got error %v but want %v", err, view.ErrOutOfRange)
	}
	if _, err := v.At(-1); !errors.Is(err, view.ErrOutOfRange) {
		t.Errorf("At(-1): got error %v but want %v", err, view.ErrOutOfRange)
	}
}

func TestSetScalar(t *testing.T) {
	c := []int{0, 1, 2, 3, 4}
	if err := newView(t, c, "1:3").Set(0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 0, 0, 3, 4}, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
	if err := newView(t, c, "-1").Set(int8(9)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 0, 0, 3, 9}, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
}

func TestSetIndexNested(t *testing.T) {
	strs := [][]rune{[]rune("abc"), []rune("de")}
	if err := newView(t, strs, "0").Set('h'); err != nil {
		t.Fatal(err)
	}
	if got := string(strs[0]); got != "hhh" {
		t.Errorf("got %q but want %q", got, "hhh")
	}
	if got := string(strs[1]); got != "de" {
		t.Errorf("got %q but want %q", got, "de")
	}
}

func TestSetSequence(t *testing.T) {
	c := arange(10)
	if err := newView(t, c, "::-3").Set([]int{-1, -2, -3, -4}); err != nil {
		t.Fatal(err)
	}
	want := []int{-4, 1, 2, -3, 4, 5, -2, 7, 8, -1}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
}

func TestSetSizeMismatchIsAtomic(t *testing.T) {
	var a [3][3][3]int
	a[1][0][1] = 7
	want := a
	err := newView(t, &a, "1, :, 1").Set([]int{1, 2, 3, 4, 5, 6})
	if !errors.Is(err, view.ErrSizeMismatch) {
		t.Fatalf("got error %v but want %v", err, view.ErrSizeMismatch)
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("container modified by a failed assignment: %s", diff)
	}
}

func TestSetGrowEmptyIsAtomic(t *testing.T) {
	c := [][3]int{}
	err := newView(t, &c, ":").Set([][]int{{1, 2, 3, 4}})
	if !errors.Is(err, view.ErrSizeMismatch) {
		t.Fatalf("got error %v but want %v", err, view.ErrSizeMismatch)
	}
	if len(c) != 0 {
		t.Errorf("container grown by a failed assignment: %v", c)
	}
	nested := [][][2]int{{}, {}}
	err = newView(t, &nested, "...").Set([][][]int{{{1, 2}}, {{1, 2, 3}}})
	if !errors.Is(err, view.ErrSizeMismatch) {
		t.Fatalf("got error %v but want %v", err, view.ErrSizeMismatch)
	}
	if diff := cmp.Diff([][][2]int{{}, {}}, nested); diff != "" {
		t.Errorf("container modified by a failed assignment: %s", diff)
	}
}

func TestSetGrowEmpty(t *testing.T) {
	c := [][]int{}
	if err := newView(t, &c, ":").Set([][]int{{1, 2}, {3}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{1, 2}, {3}}, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
	rows := [][3]int{}
	if err := newView(t, &rows, ":").Set([][]int{{1, 2, 3}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][3]int{{1, 2, 3}}, rows); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
}

func TestValueOfRaggedElement(t *testing.T) {
	v := newView(t, []any{1, []any{2, 3}}, "1")
	if _, err := v.Value(); err == nil {
		t.Errorf("reading a nested sequence as a scalar: expected an error")
	}
	if v.Equal([]any{2, 3}) {
		t.Errorf("a slot holding a sequence is equal to a sequence")
	}
}

func TestSetBoundsErrorIsAtomic(t *testing.T) {
	c := [][]int{{1, 2}, {3}}
	err := newView(t, c, ":, 1", options.BoundsCheck{Enabled: true}).Set(0)
	if !errors.Is(err, view.ErrOutOfRange) {
		t.Fatalf("got error %v but want %v", err, view.ErrOutOfRange)
	}
	if diff := cmp.Diff([][]int{{1, 2}, {3}}, c); diff != "" {
		t.Errorf("container modified by a failed assignment: %s", diff)
	}
}

func TestSetRankMismatch(t *testing.T) {
	c := arange(5)
	err := newView(t, c, "1:3").Set([][]int{{1}, {2}})
	if !errors.Is(err, view.ErrRankMismatch) {
		t.Errorf("got error %v but want %v", err, view.ErrRankMismatch)
	}
	err = newView(t, c, "1").Set([]int{1})
	if !errors.Is(err, view.ErrRankMismatch) {
		t.Errorf("got error %v but want %v", err, view.ErrRankMismatch)
	}
}

func TestSetResize(t *testing.T) {
	c := []int{1, 2}
	if err := newView(t, &c, ":").Set([]int{7, 8, 9}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{7, 8, 9}, c); diff != "" {
		t.Errorf("unexpected container after growing: %s", diff)
	}
	if err := newView(t, &c, "...").Set([]int{5}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{5}, c); diff != "" {
		t.Errorf("unexpected container after shrinking: %s", diff)
	}
}

func TestSetResizeNested(t *testing.T) {
	c := [][]int{{1, 2}}
	if err := newView(t, &c, ":").Set([][]int{{3, 4}, {5, 6}, {7, 8}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{3, 4}, {5, 6}, {7, 8}}, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
	if err := newView(t, &c, "0").Set([]int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{1, 2, 3}, {5, 6}, {7, 8}}, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
}

func TestSetNoResize(t *testing.T) {
	tests := []struct {
		src  string
		opts []options.ViewOption
	}{
		{src: "1:"},
		{src: "::-1"},
		{src: ":", opts: []options.ViewOption{options.Resize{Allowed: false}}},
	}
	for _, test := range tests {
		c := []int{1, 2, 3}
		err := newView(t, &c, test.src, test.opts...).Set([]int{1, 2, 3, 4})
		if !errors.Is(err, view.ErrSizeMismatch) {
			t.Errorf("%q: got error %v but want %v", test.src, err, view.ErrSizeMismatch)
		}
		if diff := cmp.Diff([]int{1, 2, 3}, c); diff != "" {
			t.Errorf("%q: container modified by a failed assignment: %s", test.src, diff)
		}
	}
	// A slice passed by value cannot be resized.
	c := []int{1, 2, 3}
	if err := newView(t, c, ":").Set([]int{1}); !errors.Is(err, view.ErrSizeMismatch) {
		t.Errorf("got error %v but want %v", err, view.ErrSizeMismatch)
	}
}

func TestSetBroadcast(t *testing.T) {
	var a [3][3][3]int
	if err := newView(t, &a, ":, :, :").Set([]int{69, 420, 1337}); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		for j := range a[i] {
			if diff := cmp.Diff([3]int{69, 420, 1337}, a[i][j]); diff != "" {
				t.Errorf("row [%d][%d]: %s", i, j, diff)
			}
		}
	}
}

func TestSetBroadcastColumn(t *testing.T) {
	var a [10][3]int
	if err := newView(t, &a, "4:,:1").Set([]int{100}); err != nil {
		t.Fatal(err)
	}
	for i, row := range a {
		want := [3]int{}
		if i >= 4 {
			want[0] = 100
		}
		if diff := cmp.Diff(want, row); diff != "" {
			t.Errorf("row %d: %s", i, diff)
		}
	}
}

func TestSetFromView(t *testing.T) {
	c := []int{1, 2, 3, 4, 5}
	src := newView(t, c, "1:3")
	if err := newView(t, c, "0:2").Set(src); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2, 3, 3, 4, 5}, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
}

func TestSetFromScalarView(t *testing.T) {
	c := [][]int{{1, 2}, {3, 4}}
	if err := newView(t, c, ":, 0").Set(newView(t, c, "1, 1")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{4, 2}, {4, 4}}, c); diff != "" {
		t.Errorf("unexpected container: %s", diff)
	}
}

func TestSetReadOnly(t *testing.T) {
	a := [3]int{1, 2, 3}
	if err := newView(t, a, "0").Set(5); err == nil {
		t.Errorf("assigning to an array passed by value: expected an error")
	}
}

func TestEqual(t *testing.T) {
	c := [][]int{{1, 2, 3}, {4, 5, 6}}
	v := newView(t, c, "...")
	tests := []struct {
		other any
		want  bool
	}{
		{other: [][]int{{1, 2, 3}, {4, 5, 6}}, want: true},
		{other: [][]float64{{1, 2, 3}, {4, 5, 6}}, want: true},
		{other: [2][3]int{{1, 2, 3}, {4, 5, 6}}, want: true},
		{other: newView(t, c, ":"), want: true},
		{other: [][]int{{1, 2, 3}}, want: false},
		{other: [][]int{{1, 2, 3}, {4, 5, 7}}, want: false},
		{other: []int{1, 2, 3}, want: false},
		{other: 1, want: false},
	}
	for i, test := range tests {
		if got := v.Equal(test.other); got != test.want {
			t.Errorf("test %d: Equal(%v) = %t but want %t", i, test.other, got, test.want)
		}
	}
}
