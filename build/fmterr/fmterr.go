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

// Package fmterr provides helpers to accumulate errors while compiling
// slice expressions and to format errors given a column in the expression.
package fmterr

// Source builds errors formatted for a given expression source.
type Source struct {
	Text string
}

// Errorf returns a formatted compiler error for the user.
func (s Source) Errorf(col int, format string, a ...any) error {
	return Errorf(s.Text, col, format, a...)
}

// Pos returns a formatter with a source and a column as a context.
func (s Source) Pos(col int) Pos {
	return Pos{Source: s, Col: col}
}

// Pos builds errors for a column in an expression source.
type Pos struct {
	Source
	Col int
}

// Errorf returns a formatted compiler error for the user.
func (p Pos) Errorf(format string, a ...any) error {
	return p.Source.Errorf(p.Col, format, a...)
}
