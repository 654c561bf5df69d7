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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	gl "github.com/google/ion/gfx/glenum"
)

var (
	bitsFlag = &cli.BoolFlag{
		Name:    "bits",
		Aliases: []string{"b"},
		Usage:   "Also expand numbers as or'ed bitfields",
	}
	enumsCommand = &cli.Command{
		Name:      "enums",
		Usage:     "Looks up GL enums by name, decimal value or hex value",
		ArgsUsage: "<name|value>...",
		Flags:     []cli.Flag{bitsFlag},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("need at least one enum name or value")
			}
			return lookupEnums(c.App.Writer, c.Args().Slice(), c.Bool(bitsFlag.Name))
		},
	}
)

var bitfields = []struct {
	name  string
	field gl.Bitfield
}{
	{"clear", gl.ClearBits},
	{"map", gl.MapBits},
	{"profile", gl.ProfileBits},
	{"sync", gl.SyncBits},
}

var (
	nameColor  = color.New(color.FgCyan).SprintFunc()
	valueColor = color.New(color.FgYellow).SprintfFunc()
)

// parseValue parses a decimal or 0x prefixed hexadecimal enum value.
func parseValue(s string) (gl.Enum, bool) {
	s = strings.ToLower(s)
	base := 10
	if strings.HasPrefix(s, "0x") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false
	}
	return gl.Enum(v), true
}

// lookupEnums prints the names of every numeric argument and the value of
// every named one. Arguments that match nothing are an error, reported
// after all the others are printed.
func lookupEnums(w io.Writer, args []string, bits bool) error {
	missing := []string{}
	for _, arg := range args {
		if e, ok := parseValue(arg); ok {
			names := gl.ByValue(e)
			if len(names) > 0 {
				fmt.Fprintf(w, "%s: %s\n", valueColor("0x%04X", uint32(e)), nameColor(strings.Join(names, ", ")))
			}
			found := len(names) > 0
			if bits {
				for _, b := range bitfields {
					if e != 0 && b.field.Valid(uint32(e)) {
						fmt.Fprintf(w, "%s: %s bits %s\n", valueColor("0x%04X", uint32(e)), b.name, nameColor(b.field.Format(uint32(e))))
						found = true
					}
				}
			}
			if !found {
				missing = append(missing, arg)
			}
			continue
		}
		if e, ok := gl.Lookup(strings.ToUpper(arg)); ok {
			fmt.Fprintf(w, "%s: %s\n", nameColor(arg), valueColor("0x%04X (%d)", uint32(e), uint32(e)))
			continue
		}
		missing = append(missing, arg)
	}
	if len(missing) > 0 {
		return errors.Errorf("no enum matches %s", strings.Join(missing, ", "))
	}
	return nil
}
