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
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/google/ion/core/fault"
	"github.com/google/ion/core/log"
	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/glsl"
	"github.com/google/ion/gfx/mockgl"
	"github.com/google/ion/gfx/shaderinput"
)

var (
	jobsFlag = &cli.IntFlag{
		Name:  "jobs",
		Usage: "Number of shaders compiled at once",
		Value: runtime.NumCPU(),
	}
	shadersCommand = &cli.Command{
		Name:      "shaders",
		Usage:     "Compiles shaders with the mock GL and lists their inputs",
		ArgsUsage: "<shader file>...",
		Description: "The stage of each shader is taken from its extension: " +
			".vert, .frag, .geom or .comp.",
		Flags: []cli.Flag{jobsFlag, capsFlag},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("need at least one shader file")
			}
			ctx, done, err := logContext(c)
			if err != nil {
				return err
			}
			defer done()
			caps, err := capabilities(c)
			if err != nil {
				return err
			}
			reports, err := reflectShaders(ctx, caps, c.Args().Slice(), c.Int(jobsFlag.Name))
			if err != nil {
				return err
			}
			for _, r := range reports {
				r.print(c.App.Writer)
			}
			return nil
		},
	}
)

var stages = map[string]gl.Enum{
	".vert": gl.VERTEX_SHADER,
	".frag": gl.FRAGMENT_SHADER,
	".geom": gl.GEOMETRY_SHADER,
	".comp": gl.COMPUTE_SHADER,
}

// The registry types of the GL types of attributes and uniforms. Types
// missing from these tables have no registry equivalent.
var (
	attributeTypes = map[gl.Enum]shaderinput.ValueType{
		gl.FLOAT:      shaderinput.FloatAttribute,
		gl.FLOAT_VEC2: shaderinput.FloatVector2Attribute,
		gl.FLOAT_VEC3: shaderinput.FloatVector3Attribute,
		gl.FLOAT_VEC4: shaderinput.FloatVector4Attribute,
		gl.FLOAT_MAT2: shaderinput.FloatMatrix2x2Attribute,
		gl.FLOAT_MAT3: shaderinput.FloatMatrix3x3Attribute,
		gl.FLOAT_MAT4: shaderinput.FloatMatrix4x4Attribute,
	}
	uniformTypes = map[gl.Enum]shaderinput.ValueType{
		gl.INT:               shaderinput.IntUniform,
		gl.BOOL:              shaderinput.IntUniform,
		gl.UNSIGNED_INT:      shaderinput.UnsignedIntUniform,
		gl.FLOAT:             shaderinput.FloatUniform,
		gl.INT_VEC2:          shaderinput.IntVector2Uniform,
		gl.INT_VEC3:          shaderinput.IntVector3Uniform,
		gl.INT_VEC4:          shaderinput.IntVector4Uniform,
		gl.UNSIGNED_INT_VEC2: shaderinput.UnsignedIntVector2Uniform,
		gl.UNSIGNED_INT_VEC3: shaderinput.UnsignedIntVector3Uniform,
		gl.UNSIGNED_INT_VEC4: shaderinput.UnsignedIntVector4Uniform,
		gl.FLOAT_VEC2:        shaderinput.FloatVector2Uniform,
		gl.FLOAT_VEC3:        shaderinput.FloatVector3Uniform,
		gl.FLOAT_VEC4:        shaderinput.FloatVector4Uniform,
		gl.FLOAT_MAT2:        shaderinput.Matrix2x2Uniform,
		gl.FLOAT_MAT3:        shaderinput.Matrix3x3Uniform,
		gl.FLOAT_MAT4:        shaderinput.Matrix4x4Uniform,
		gl.SAMPLER_2D:        shaderinput.TextureUniform,
		gl.SAMPLER_CUBE:      shaderinput.CubeMapTextureUniform,
	}
)

// shaderReport is what reflecting one shader file found.
type shaderReport struct {
	path     string
	stage    gl.Enum
	compiled bool
	infoLog  string
	registry *shaderinput.Registry
	// untyped lists the inputs whose type has no registry equivalent.
	untyped []glsl.Declaration
}

// reflectShaders compiles every file in its own mock GL visual, at most
// jobs at a time. Reports are returned in the order of paths. A file that
// cannot be read does not stop the others; all such errors are returned
// together.
func reflectShaders(ctx context.Context, caps mockgl.Capabilities, paths []string, jobs int) ([]*shaderReport, error) {
	reports := make([]*shaderReport, len(paths))
	errs := make([]error, len(paths))
	g := errgroup.Group{}
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			reports[i], errs[i] = reflectShader(ctx, caps, path)
			return nil
		})
	}
	g.Wait()
	failed := fault.List{}
	for _, err := range errs {
		failed.Collect(err)
	}
	if err := failed.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func reflectShader(ctx context.Context, caps mockgl.Capabilities, path string) (*shaderReport, error) {
	ctx = log.Enter(ctx, filepath.Base(path))
	stage, ok := stages[filepath.Ext(path)]
	if !ok {
		return nil, errors.Errorf("%s: unknown shader extension %q", path, filepath.Ext(path))
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Reading shader")
	}

	m := mockgl.New(ctx, mockgl.NewVisual(1, 1, caps))
	s := m.CreateShader(stage)
	m.ShaderSource(s, 1, []string{string(source)})
	m.CompileShader(s)
	r := &shaderReport{
		path:     path,
		stage:    stage,
		compiled: m.GetShaderiv(s, gl.COMPILE_STATUS) != 0,
		infoLog:  m.GetShaderInfoLog(s, m.GetShaderiv(s, gl.INFO_LOG_LENGTH)),
		registry: shaderinput.NewRegistry(),
	}
	if !r.compiled {
		log.W(ctx, "Compilation failed: %s", r.infoLog)
		return r, nil
	}

	parsed, err := glsl.Parse(ctx, stage, string(source))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	for _, d := range parsed.Declarations {
		var types map[gl.Enum]shaderinput.ValueType
		switch d.Storage {
		case glsl.Attribute:
			types = attributeTypes
		case glsl.Uniform:
			types = uniformTypes
		default:
			continue
		}
		t, ok := types[d.Type]
		if !ok {
			r.untyped = append(r.untyped, d)
			continue
		}
		doc := filepath.Base(path)
		if d.IsArray() {
			doc = fmt.Sprintf("%s, %d elements", doc, d.Size)
		}
		r.registry.Add(ctx, shaderinput.Spec{Name: d.Name, Type: t, Doc: doc})
	}
	log.D(ctx, "%d attributes, %d uniforms after %d GL calls",
		len(r.registry.Attributes()), len(r.registry.Uniforms()), m.CallCount())
	return r, nil
}

func (r *shaderReport) print(w io.Writer) {
	status := color.GreenString("compiled")
	if !r.compiled {
		status = color.RedString("failed")
	}
	fmt.Fprintf(w, "%s (%v): %s\n", color.New(color.Bold).Sprint(r.path), r.stage, status)
	if !r.compiled {
		fmt.Fprintf(w, "  %s\n", r.infoLog)
		return
	}
	for _, s := range append(r.registry.Attributes(), r.registry.Uniforms()...) {
		fmt.Fprintf(w, "  %v %s\n", *s, color.HiBlackString("(%s)", s.Doc))
	}
	for _, d := range r.untyped {
		fmt.Fprintf(w, "  %v %v %s %s\n", d.Storage, d.Type, d.Name, color.YellowString("(no registry type)"))
	}
}
