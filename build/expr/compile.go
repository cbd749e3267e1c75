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

package expr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	gxsync "github.com/gx-org/pyslice/base/sync"
	"github.com/gx-org/pyslice/build/fmterr"
)

// ErrCompile is returned, possibly wrapped, for any malformed expression.
var ErrCompile = errors.New("invalid slice expression")

type compileError struct {
	err error
}

func (err compileError) Error() string {
	return err.err.Error()
}

func (err compileError) Unwrap() []error {
	return []error{ErrCompile, err.err}
}

func compileErrorf(src string, col int, format string, a ...any) error {
	return compileError{err: fmterr.Errorf(src, col, format, a...)}
}

// token is an axis of the expression stripped of its whitespaces.
type token struct {
	text string
	col  int
}

// tokenize splits an expression on commas and removes whitespaces.
func tokenize(src string) []token {
	var toks []token
	var cur strings.Builder
	col := -1
	flush := func(end int) {
		if col < 0 {
			col = end
		}
		toks = append(toks, token{text: cur.String(), col: col})
		cur.Reset()
		col = -1
	}
	for i, r := range src {
		switch {
		case r == ',':
			flush(i)
		case unicode.IsSpace(r):
		default:
			if col < 0 {
				col = i
			}
			cur.WriteRune(r)
		}
	}
	flush(len(src))
	return toks
}

func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseNumber(pos *fmterr.PosAppender, field string) (int, bool) {
	if !isNumber(field) {
		pos.Appendf("%q is not an integer", field)
		return 0, false
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		pos.Appendf("%q is out of range", field)
		return 0, false
	}
	return n, true
}

type compiler struct {
	app *fmterr.Appender
}

func (c *compiler) index(tok token) (Axis, bool) {
	n, ok := parseNumber(c.app.Pos(tok.col), tok.text)
	return Axis{Kind: IndexKind, Start: n, Step: 1, Col: tok.col}, ok
}

func (c *compiler) slice(tok token) (Axis, bool) {
	fields := strings.Split(tok.text, ":")
	ax := Axis{Kind: SliceKind, Step: 1, Col: tok.col}
	if len(fields) > 3 {
		c.app.Appendf(tok.col, "too many colons in %q: a slice has at most two", tok.text)
		return ax, false
	}
	ok := true
	bound := func(field string, val *int, set *bool) {
		if field == "" {
			return
		}
		n, fieldOk := parseNumber(c.app.Pos(tok.col), field)
		ok = ok && fieldOk
		*val, *set = n, fieldOk
	}
	bound(fields[0], &ax.Start, &ax.HasStart)
	bound(fields[1], &ax.Stop, &ax.HasStop)
	if len(fields) == 3 && fields[2] != "" {
		var hasStep bool
		bound(fields[2], &ax.Step, &hasStep)
		if hasStep && ax.Step == 0 {
			c.app.Appendf(tok.col, "slice step cannot be zero")
			ax.Step = 1
			ok = false
		}
	}
	return ax, ok
}

func (c *compiler) axis(tok token) (Axis, bool) {
	switch {
	case tok.text == "":
		c.app.Appendf(tok.col, "missing axis")
		return Axis{}, false
	case tok.text == "...":
		return Axis{Kind: EllipsisKind, Step: 1, Col: tok.col}, true
	case strings.Contains(tok.text, ":"):
		return c.slice(tok)
	}
	return c.index(tok)
}

// Compile parses a slice expression.
// All the malformed axes of the expression are reported in the returned error.
func Compile(src string) (*Expr, error) {
	errs := &fmterr.Errors{}
	c := &compiler{app: errs.NewAppender(fmterr.Source{Text: src})}
	toks := tokenize(src)
	if len(toks) == 1 && toks[0].text == "" {
		return nil, compileErrorf(src, -1, "empty expression")
	}
	e := &Expr{src: src, ellipsis: -1}
	for i, tok := range toks {
		errs.Push(fmterr.PrefixWith("axis %d: ", i))
		ax, ok := c.axis(tok)
		if ok && ax.Kind == EllipsisKind {
			if e.HasEllipsis() {
				c.app.Appendf(tok.col, "an expression can only have one ellipsis")
			}
			e.ellipsis = i
		}
		errs.Pop()
		e.axes = append(e.axes, ax)
	}
	if err := errs.ToError(); err != nil {
		return nil, compileError{err: err}
	}
	return e, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
// It simplifies the initialization of package variables holding expressions.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

var cache gxsync.Map[string, *Expr]

// Cached returns the compiled expression of a source, compiling it only
// the first time the source is seen.
// Sources failing to compile are not cached.
func Cached(src string) (*Expr, error) {
	if e, ok := cache.Load(src); ok {
		return e, nil
	}
	e, err := Compile(src)
	if err != nil {
		return nil, err
	}
	e, _ = cache.LoadOrStore(src, e)
	return e, nil
}
