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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	"github.com/google/ion/analytics/discrepancy"
	"github.com/google/ion/core/fault"
)

var (
	relativeFlag = &cli.BoolFlag{
		Name:  "relative",
		Usage: "Report the discrepancy of the normalized samples instead of the absolute one",
	}
	discrepancyCommand = &cli.Command{
		Name:      "discrepancy",
		Usage:     "Measures how unevenly spaced a sequence of frame timestamps is",
		ArgsUsage: "[timestamp...]",
		Description: "Timestamps are read from the arguments, or one per line from " +
			"standard input when there are none. Blank lines and lines starting " +
			"with # are skipped.",
		Flags: []cli.Flag{relativeFlag},
		Action: func(c *cli.Context) error {
			var timestamps []float64
			var err error
			if c.NArg() > 0 {
				timestamps, err = parseTimestamps(c.Args().Slice())
			} else {
				timestamps, err = readTimestamps(os.Stdin)
			}
			if err != nil {
				return err
			}
			d, err := measure(timestamps, c.Bool(relativeFlag.Name))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, d)
			return nil
		},
	}
)

func parseTimestamps(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parsing timestamp %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func readTimestamps(r io.Reader) ([]float64, error) {
	fields := []string{}
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = append(fields, line)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "Reading timestamps")
	}
	return parseTimestamps(fields)
}

// measure returns the discrepancy of the timestamps, in their unit or, with
// relative, normalized to [0, 1]. Timestamps that span no time are an error.
func measure(timestamps []float64, relative bool) (result discrepancy.Interval, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(fault.From(r), "Measuring %d timestamps", len(timestamps))
		}
	}()
	if len(timestamps) < 2 || !relative {
		return discrepancy.AbsoluteTimestamp(timestamps), nil
	}
	m := discrepancy.NewSampleMapping(slices.Min(timestamps), slices.Max(timestamps), len(timestamps))
	return discrepancy.Discrepancy(discrepancy.NormalizeSamples(timestamps, m)), nil
}
