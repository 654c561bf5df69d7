// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package glsl implements the small subset of GLSL that the mock GL needs to
// reflect shader inputs: a restricted preprocessor followed by a declaration
// scanner.
package glsl

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/google/ion/core/fault"
)

const (
	// ErrUnmatchedElse is returned for an #else with no open #ifdef.
	ErrUnmatchedElse = fault.Const("#else without matching #ifdef")
	// ErrUnmatchedEndif is returned for an #endif with no open #ifdef.
	ErrUnmatchedEndif = fault.Const("#endif without matching #ifdef")
)

// Result is the output of the preprocessor.
type Result struct {
	// Lines holds the active source lines with directives and comments
	// removed.
	Lines []string
	// Defines maps each macro defined in an active region to its value.
	Defines map[string]string
	// Warnings lists the unsupported directives that were encountered.
	Warnings []string
}

// Text returns the active lines joined by newlines.
func (r Result) Text() string { return strings.Join(r.Lines, "\n") }

// Defined returns true if name was defined in an active region.
func (r Result) Defined(name string) bool {
	_, ok := r.Defines[name]
	return ok
}

type block struct {
	parent bool
	cond   bool
}

func (b block) active() bool { return b.parent && b.cond }

// Preprocess evaluates #define, #ifdef, #ifndef, #else and #endif. Every
// #else flips the enclosing block, so a second #else switches it back.
// #if, #elif and #undef are not supported: they add a warning to the result
// and #if opens an always active block so that nesting stays balanced.
// Blocks still open at the end of the source are closed implicitly.
func Preprocess(source string) (Result, error) {
	res := Result{Defines: map[string]string{}}
	stack := []block{}
	active := func() bool {
		if len(stack) == 0 {
			return true
		}
		return stack[len(stack)-1].active()
	}

	for i, line := range strings.Split(stripComments(source), "\n") {
		n := i + 1
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			if line != "" && active() {
				res.Lines = append(res.Lines, line)
			}
			continue
		}
		fields := strings.Fields(strings.TrimSpace(line[1:]))
		if len(fields) == 0 {
			continue
		}
		directive, args := fields[0], fields[1:]
		switch directive {
		case "define":
			if active() && len(args) > 0 {
				res.Defines[args[0]] = strings.Join(args[1:], " ")
			}
		case "ifdef", "ifndef":
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			_, defined := res.Defines[name]
			stack = append(stack, block{parent: active(), cond: defined == (directive == "ifdef")})
		case "else":
			if len(stack) == 0 {
				return Result{}, errors.Wrapf(ErrUnmatchedElse, "line %d", n)
			}
			stack[len(stack)-1].cond = !stack[len(stack)-1].cond
		case "endif":
			if len(stack) == 0 {
				return Result{}, errors.Wrapf(ErrUnmatchedEndif, "line %d", n)
			}
			stack = stack[:len(stack)-1]
		case "if":
			res.Warnings = append(res.Warnings, unsupported(n, directive))
			stack = append(stack, block{parent: active(), cond: true})
		case "elif", "undef":
			res.Warnings = append(res.Warnings, unsupported(n, directive))
		}
	}
	return res, nil
}

func unsupported(line int, directive string) string {
	return fmt.Sprintf("line %d: the shader preprocessor does not support #%s", line, directive)
}

// stripComments replaces comments with spaces, keeping line breaks so that
// line numbers are preserved.
func stripComments(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "//"):
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				out.WriteByte('\n')
			}
		case strings.HasPrefix(s[i:], "/*"):
			i += 2
			for i < len(s) && !strings.HasPrefix(s[i:], "*/") {
				if s[i] == '\n' {
					out.WriteByte('\n')
				}
				i++
			}
			i++
			out.WriteByte(' ')
		default:
			out.WriteByte(s[i])
		}
	}
	return out.String()
}
