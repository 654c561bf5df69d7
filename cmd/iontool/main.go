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

// The iontool command inspects the pieces of the mock GL stack: it looks up
// GL enums, reflects shader inputs, measures frame time discrepancy and
// prints platform capabilities.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/google/ion/core/log"
	"github.com/google/ion/gfx/mockgl"
)

var (
	logStyleFlag = &cli.StringFlag{
		Name:  "log-style",
		Usage: "Style of log messages, one of Raw, Brief, Normal or Detailed",
		Value: log.Brief.Name,
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Show debug messages",
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Also write detailed log messages to this file",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
	capsFlag = &cli.StringFlag{
		Name:  "caps",
		Usage: "TOML file of platform capabilities to use instead of the defaults",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "iontool",
		Usage: "Inspects GL enums, shaders, frame timings and mock GL capabilities",
		Flags: []cli.Flag{logStyleFlag, verboseFlag, logFileFlag, noColorFlag},
		Before: func(c *cli.Context) error {
			if c.Bool(noColorFlag.Name) {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			enumsCommand,
			shadersCommand,
			discrepancyCommand,
			capsCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}
}

// logContext returns the context the commands log to, and the function that
// flushes the log once the command is done. Messages go to stdout in the
// selected style and, with --log-file, to the file in the Detailed style.
// The handlers sit behind a channel as the shaders command logs from
// several goroutines.
func logContext(c *cli.Context) (context.Context, func(), error) {
	name := c.String(logStyleFlag.Name)
	style, ok := log.FindStyle(name)
	if !ok {
		return nil, nil, errors.Errorf("Unknown log style %q, expected one of %v", name, log.Styles())
	}
	handlers := []log.Handler{style.Handler(log.Std())}
	var file *os.File
	if path := c.String(logFileFlag.Name); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Creating log file")
		}
		file = f
		handlers = append(handlers, log.Detailed.Handler(log.To(f)))
	}
	handler := log.Channel(log.Broadcast(handlers...), 64)
	ctx := log.PutHandler(c.Context, handler)
	severity := log.Info
	if c.Bool(verboseFlag.Name) {
		severity = log.Debug
	}
	done := func() {
		handler.Close()
		if file != nil {
			file.Close()
		}
	}
	return log.PutFilter(ctx, log.SeverityFilter(severity)), done, nil
}

// capabilities returns the capabilities named by the caps flag, or the
// defaults.
func capabilities(c *cli.Context) (mockgl.Capabilities, error) {
	path := c.String(capsFlag.Name)
	if path == "" {
		return mockgl.DefaultCapabilities(), nil
	}
	return mockgl.LoadCapabilities(path)
}
