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
	"strings"

	"go.uber.org/multierr"
)

type (
	contextError struct {
		f      func(error) error
		errors Errors
	}

	// Errors is a set of errors.
	Errors struct {
		stack []contextError
		err   error
	}

	// Appender appends errors to a set within the context of an expression source.
	Appender struct {
		errors *Errors
		src    Source
	}
)

// NewAppender returns a new appender to collect errors.
func (errs *Errors) NewAppender(src Source) *Appender {
	return &Appender{errors: errs, src: src}
}

// Push a new context in the error stack.
func (errs *Errors) Push(f func(error) error) {
	errs.stack = append(errs.stack, contextError{f: f})
}

// Pop removes the last error context in the stack.
func (errs *Errors) Pop() {
	last := errs.stack[len(errs.stack)-1]
	errs.stack = errs.stack[:len(errs.stack)-1]
	if last.errors.Empty() {
		return
	}
	errs.Append(last.f(last.errors.err))
}

// Append an error to the list of errors.
func (errs *Errors) Append(err error) bool {
	if len(errs.stack) == 0 {
		errs.err = multierr.Append(errs.err, err)
	} else {
		errs.stack[len(errs.stack)-1].errors.Append(err)
	}
	return false
}

// Empty returns true if no error has been declared.
func (errs *Errors) Empty() bool {
	if errs.err != nil {
		return false
	}
	for _, st := range errs.stack {
		if !st.errors.Empty() {
			return false
		}
	}
	return true
}

// Error returns the current set of errors as a string.
func (errs *Errors) Error() string {
	var ss []string
	for _, err := range errs.Errors() {
		ss = append(ss, err.Error())
	}
	return strings.Join(ss, "\n")
}

// Errors returns the list of all collected errors.
func (errs *Errors) Errors() []error {
	all := multierr.Errors(errs.err)
	for _, st := range errs.stack {
		if st.errors.Empty() {
			continue
		}
		all = append(all, st.f(st.errors.err))
	}
	return all
}

// Unwrap returns the collected errors so that errors.Is and errors.As
// inspect every one of them.
func (errs *Errors) Unwrap() []error {
	return errs.Errors()
}

// ToError returns the errors as an error interface.
func (errs *Errors) ToError() error {
	if errs == nil || errs.Empty() {
		return nil
	}
	return errs
}

// Format writes the error into the state of the formatter.
func (errs *Errors) Format(s fmt.State, verb rune) {
	flag := ""
	if s.Flag('+') {
		flag = "+"
	}
	for i, e := range errs.Errors() {
		if i > 0 {
			fmt.Fprint(s, "\n")
		}
		format := fmt.Sprintf("%%%s%s", flag, string(verb))
		fmt.Fprintf(s, format, e)
	}
}

// String representation of the error.
func (errs *Errors) String() string {
	return errs.Error()
}

// Append an error to the list of errors.
func (app *Appender) Append(err error) bool {
	return app.errors.Append(err)
}

// Appendf appends an error at a column of the expression.
func (app *Appender) Appendf(col int, format string, a ...any) bool {
	return app.Append(app.src.Errorf(col, format, a...))
}

// Pos returns an appender to a specific column.
func (app *Appender) Pos(col int) *PosAppender {
	return &PosAppender{app: app, pos: app.src.Pos(col)}
}

// Empty returns true if no errors has been appended.
func (app *Appender) Empty() bool {
	return app.errors.Empty()
}

// PosAppender is an error appender for a given column.
type PosAppender struct {
	app *Appender
	pos Pos
}

// Appendf appends an error at a position.
func (app *PosAppender) Appendf(format string, a ...any) {
	app.app.Append(app.pos.Errorf(format, a...))
}
