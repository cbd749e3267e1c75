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

// Package options specifies options for views.
package options

type (
	// ViewOption is an option changing how a view resolves and assigns positions.
	ViewOption interface {
		viewOption()
	}

	// BoundsCheck enables or disables bounds checking.
	//
	// When enabled, every resolved position is checked against the length of
	// its axis and out-of-range positions are reported as errors.
	// When disabled, which is the default, no check is performed and accessing
	// an out-of-range position is undefined: it may panic or silently address
	// another element.
	BoundsCheck struct {
		Enabled bool
	}

	// Resize allows or forbids assignments to resize the addressed container.
	// Resizing is allowed by default. It only ever happens for a slice covering
	// a whole resizable axis in its natural order.
	Resize struct {
		Allowed bool
	}
)

func (BoundsCheck) viewOption() {}

func (Resize) viewOption() {}
