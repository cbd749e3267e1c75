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

package fmterr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
)

type (
	// ErrorWithPos is an error attached to a column of a slice expression.
	ErrorWithPos interface {
		error
		Src() string
		Col() int
		Err() error
	}

	errorWithPos struct {
		src string
		col int
		err error
	}
)

// Position adds position information to an error.
// A negative column refers to the expression as a whole.
func Position(src string, col int, err error) ErrorWithPos {
	return errorWithPos{src: src, col: col, err: err}
}

// Errorf returns a formatted compiler error for the user.
func Errorf(src string, col int, format string, a ...any) error {
	return Position(src, col, errors.Errorf(format, a...))
}

// Error returns a string description of the error.
func (err errorWithPos) Error() (s string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s = fmt.Sprintf("recovered from panic when building error message: %T:\n%v", err.err, string(debug.Stack()))
	}()
	if err.col < 0 {
		return fmt.Sprintf("%q: %s", err.src, err.err.Error())
	}
	return PosString(err.src, err.col) + " " + err.err.Error()
}

// Unwrap the error.
func (err errorWithPos) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
// The verbose form (%+v) adds a caret under the faulty column.
func (err errorWithPos) Format(s fmt.State, verb rune) {
	if (verb == 'v' || verb == 'w') && s.Flag('+') && err.col >= 0 {
		fmt.Fprintf(s, "%s\n%s\n%s", err.Error(), err.src, Caret(err.col))
		return
	}
	format(err, s, verb)
}

func (err errorWithPos) Src() string {
	return err.src
}

func (err errorWithPos) Col() int {
	return err.col
}

func (err errorWithPos) Err() error {
	return err.err
}

// PosString returns a position as a string that can be used for an error.
func PosString(src string, col int) string {
	return fmt.Sprintf("%q:%d:", src, col+1)
}

// Caret returns a line pointing at a column.
func Caret(col int) string {
	return strings.Repeat(" ", col) + "^"
}
