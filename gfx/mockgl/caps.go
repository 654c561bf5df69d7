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

package mockgl

import (
	"bytes"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/pkg/errors"

	gl "github.com/google/ion/gfx/glenum"
)

// Capabilities are the implementation limits reported by a Visual.
// Changing a field changes what the matching GetIntegerv query returns and
// what the validating entry points accept.
type Capabilities struct {
	AliasedLineWidthRange []float32
	AliasedPointSizeRange []float32

	ImplementationColorReadFormat gl.Enum
	ImplementationColorReadType   gl.Enum
	CompressedTextureFormats      []gl.Enum
	ShaderBinaryFormats           []int32

	Max3DTextureSize                          int32
	MaxArrayTextureLayers                     int32
	MaxColorAttachments                       int32
	MaxCombinedTextureImageUnits              int32
	MaxCubeMapTextureSize                     int32
	MaxDebugGroupStackDepth                   int32
	MaxDebugLoggedMessages                    int32
	MaxDebugMessageLength                     int32
	MaxDrawBuffers                            int32
	MaxFragmentUniformComponents              int32
	MaxFragmentUniformVectors                 int32
	MaxLabelLength                            int32
	MaxRenderbufferSize                       int32
	MaxSampleMaskWords                        int32
	MaxSamples                                int32
	MaxServerWaitTimeout                      int64
	MaxTextureImageUnits                      int32
	MaxTextureMaxAnisotropy                   float32
	MaxTextureSize                            int32
	MaxTransformFeedbackInterleavedComponents int32
	MaxTransformFeedbackSeparateAttribs       int32
	MaxTransformFeedbackSeparateComponents    int32
	MaxVaryingVectors                         int32
	MaxVertexAttribs                          int32
	MaxVertexTextureImageUnits                int32
	MaxVertexUniformComponents                int32
	MaxVertexUniformVectors                   int32
	MaxViewportDims                           []int32
}

// DefaultCapabilities returns the limits of the stock mock implementation.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		AliasedLineWidthRange:         []float32{1, 256},
		AliasedPointSizeRange:         []float32{1, 8192},
		ImplementationColorReadFormat: gl.UNSIGNED_BYTE,
		ImplementationColorReadType:   gl.RGB,
		CompressedTextureFormats: []gl.Enum{
			gl.COMPRESSED_RGB_S3TC_DXT1_EXT,
			gl.COMPRESSED_RGB_PVRTC_2BPPV1_IMG,
			gl.COMPRESSED_RGB_PVRTC_4BPPV1_IMG,
			gl.COMPRESSED_RGBA_PVRTC_2BPPV1_IMG,
			gl.COMPRESSED_RGBA_PVRTC_4BPPV1_IMG,
			gl.COMPRESSED_RGBA_S3TC_DXT5_EXT,
			gl.ETC1_RGB8_OES,
		},
		ShaderBinaryFormats: []int32{0xbadf00d},

		Max3DTextureSize:                          4096,
		MaxArrayTextureLayers:                     4096,
		MaxColorAttachments:                       4,
		MaxCombinedTextureImageUnits:              32,
		MaxCubeMapTextureSize:                     8192,
		MaxDebugGroupStackDepth:                   16,
		MaxDebugLoggedMessages:                    16,
		MaxDebugMessageLength:                     1024,
		MaxDrawBuffers:                            4,
		MaxFragmentUniformComponents:              256,
		MaxFragmentUniformVectors:                 512,
		MaxLabelLength:                            1024,
		MaxRenderbufferSize:                       4096,
		MaxSampleMaskWords:                        16,
		MaxSamples:                                16,
		MaxServerWaitTimeout:                      0,
		MaxTextureImageUnits:                      32,
		MaxTextureMaxAnisotropy:                   16,
		MaxTextureSize:                            8192,
		MaxTransformFeedbackInterleavedComponents: 64,
		MaxTransformFeedbackSeparateAttribs:       4,
		MaxTransformFeedbackSeparateComponents:    4,
		MaxVaryingVectors:                         15,
		MaxVertexAttribs:                          32,
		MaxVertexTextureImageUnits:                32,
		MaxVertexUniformComponents:                512,
		MaxVertexUniformVectors:                   1024,
		MaxViewportDims:                           []int32{8192, 8192},
	}
}

// tomlSettings makes TOML keys match the Go field names and rejects keys
// that do not name a field.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// ParseCapabilities decodes TOML data over the default capabilities.
// Keys absent from data keep their default value.
func ParseCapabilities(data []byte) (Capabilities, error) {
	caps := DefaultCapabilities()
	if err := tomlSettings.NewDecoder(bytes.NewReader(data)).Decode(&caps); err != nil {
		return Capabilities{}, errors.Wrap(err, "Decoding capabilities")
	}
	return caps, nil
}

// LoadCapabilities reads a TOML capabilities file.
func LoadCapabilities(path string) (Capabilities, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Capabilities{}, errors.Wrapf(err, "Reading capabilities %s", path)
	}
	caps, err := ParseCapabilities(data)
	if err != nil {
		if _, ok := errors.Cause(err).(*toml.LineError); ok {
			return Capabilities{}, errors.Wrap(err, path)
		}
		return Capabilities{}, err
	}
	return caps, nil
}

// TOML encodes the capabilities in the form LoadCapabilities reads.
func (c Capabilities) TOML() ([]byte, error) {
	return tomlSettings.Marshal(&c)
}
