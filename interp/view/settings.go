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
	"github.com/gx-org/pyslice/api/options"
)

var (
	// ErrOutOfRange is returned when a resolved position falls outside its axis.
	// It is only reported when bounds checking is enabled.
	ErrOutOfRange = errors.New("index out of range")

	// ErrRankMismatch is returned when a value of a higher rank is assigned to a view.
	ErrRankMismatch = errors.New("rank mismatch")

	// ErrSizeMismatch is returned when a sequence is assigned to a view of a
	// different size that cannot be resized.
	ErrSizeMismatch = errors.New("size mismatch")
)

// settings of a view, shared by all the views derived from it.
type settings struct {
	boundsCheck bool
	resize      bool
}

func processOptions(opts []options.ViewOption) (*settings, error) {
	s := &settings{resize: true}
	for _, opt := range opts {
		switch optT := opt.(type) {
		case options.BoundsCheck:
			s.boundsCheck = optT.Enabled
		case options.Resize:
			s.resize = optT.Allowed
		default:
			return nil, errors.Errorf("option of type %T not supported", optT)
		}
	}
	return s, nil
}

// position resolves a possibly negative index against the length of an axis.
func (s *settings) position(index, length int) (int, error) {
	pos := index
	if pos < 0 {
		pos += length
	}
	if s.boundsCheck && (pos < 0 || pos >= length) {
		return 0, errors.Wrapf(ErrOutOfRange, "invalid argument: index %d out of bounds [0:%d]", index, length)
	}
	return pos, nil
}
