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

package dense_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/pyslice/api/dense"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/interp/view"
)

func TestFromFlat(t *testing.T) {
	if _, err := dense.FromFlat([]int32{1, 2, 3}, 2, 2); err == nil {
		t.Errorf("expected an error for a buffer too small")
	}
	a, err := dense.FromFlat([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if a.Rank() != 2 || a.Len() != 2 {
		t.Errorf("got rank %d and length %d but want rank 2 and length 2", a.Rank(), a.Len())
	}
	row, ok := a.Index(1).(*dense.Array[float32])
	if !ok {
		t.Fatalf("got %T but want a sub-array", a.Index(1))
	}
	if diff := cmp.Diff([]float32{4, 5, 6}, row.Flat()); diff != "" {
		t.Errorf("unexpected row: %s", diff)
	}
	if err := row.SetIndex(0, 40); err != nil {
		t.Fatal(err)
	}
	if got := a.Flat()[3]; got != 40 {
		t.Errorf("sub-array does not share storage: got %v but want 40", got)
	}
	if err := a.SetIndex(0, 1); err == nil {
		t.Errorf("setting a row of a matrix: expected an error")
	}
}

func TestString(t *testing.T) {
	a := dense.New[int64](2, 2)
	copy(a.Flat(), []int64{1, 2, 3, 4})
	want := strings.TrimSpace(`
[2][2]int64{
	{1, 2},
	{3, 4},
}
`)
	if got := a.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	atom := dense.New[int32]()
	atom.Flat()[0] = 7
	if got, want := atom.String(), "int32(7)"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}

func TestView(t *testing.T) {
	a := dense.New[int32](3, 4)
	v, err := view.New(a, expr.MustCompile("::2, 1::2"))
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Set([]int{1, 2}); err != nil {
		t.Fatal(err)
	}
	want := []int32{
		0, 1, 0, 2,
		0, 0, 0, 0,
		0, 1, 0, 2,
	}
	if diff := cmp.Diff(want, a.Flat()); diff != "" {
		t.Errorf("unexpected values: %s", diff)
	}
	// Dense arrays are never resized.
	row, err := view.New(a, expr.MustCompile("0"))
	if err != nil {
		t.Fatal(err)
	}
	if err := row.Set([]int{1}); !errors.Is(err, view.ErrSizeMismatch) {
		t.Errorf("got error %v but want %v", err, view.ErrSizeMismatch)
	}
}
