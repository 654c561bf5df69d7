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
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/mockgl"
)

var capsCommand = &cli.Command{
	Name:      "caps",
	Usage:     "Prints mock GL capabilities as TOML, or queries state by name",
	ArgsUsage: "[GL_STATE_NAME...]",
	Description: "Without arguments the capabilities are printed in the form the " +
		"--caps flag reads. With arguments each named state is queried from a " +
		"fresh mock GL context using those capabilities.",
	Flags: []cli.Flag{capsFlag},
	Action: func(c *cli.Context) error {
		ctx, done, err := logContext(c)
		if err != nil {
			return err
		}
		defer done()
		caps, err := capabilities(c)
		if err != nil {
			return err
		}
		if c.NArg() == 0 {
			data, err := caps.TOML()
			if err != nil {
				return errors.Wrap(err, "Encoding capabilities")
			}
			_, err = c.App.Writer.Write(data)
			return err
		}
		return queryState(ctx, c.App.Writer, caps, c.Args().Slice())
	},
}

// queryState prints the values of the named state of a new context.
func queryState(ctx context.Context, w io.Writer, caps mockgl.Capabilities, names []string) error {
	m := mockgl.New(ctx, mockgl.NewVisual(1, 1, caps))
	for _, name := range names {
		e, ok := gl.Lookup(strings.ToUpper(name))
		if !ok {
			return errors.Errorf("unknown GL enum %q", name)
		}
		// Entries the query does not write keep the sentinel.
		data := make([]int64, 16)
		for i := range data {
			data[i] = math.MinInt64
		}
		m.GetInteger64v(e, data)
		if err := m.GetError(); err != gl.NO_ERROR {
			return errors.Errorf("%v cannot be queried: %s", e, gl.ErrorString(err))
		}
		values := []string{}
		for _, v := range data {
			if v == math.MinInt64 {
				break
			}
			values = append(values, strconv.FormatInt(v, 10))
		}
		fmt.Fprintf(w, "%s = %s\n", nameColor(e), valueColor("%s", strings.Join(values, " ")))
	}
	return nil
}
