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

package glenum

// Enum is a GL enumerant. The constant values match the Khronos GL, GLES and
// extension headers bit for bit.
type Enum uint32

// Errors
const (
	NO_ERROR                      Enum = 0x0000
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
)

// Booleans
const (
	FALSE Enum = 0x0000
	TRUE  Enum = 0x0001
	NONE  Enum = 0x0000
	ZERO  Enum = 0x0000
	ONE   Enum = 0x0001
)

// Primitives
const (
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006
)

// Clear bits
const (
	DEPTH_BUFFER_BIT   Enum = 0x0100
	STENCIL_BUFFER_BIT Enum = 0x0400
	COLOR_BUFFER_BIT   Enum = 0x4000
)

// Map bits
const (
	MAP_READ_BIT              Enum = 0x0001
	MAP_WRITE_BIT             Enum = 0x0002
	MAP_INVALIDATE_RANGE_BIT  Enum = 0x0004
	MAP_INVALIDATE_BUFFER_BIT Enum = 0x0008
	MAP_FLUSH_EXPLICIT_BIT    Enum = 0x0010
	MAP_UNSYNCHRONIZED_BIT    Enum = 0x0020
)

// Sync
const (
	SYNC_FLUSH_COMMANDS_BIT Enum = 0x0001
)

// Profile bits
const (
	CONTEXT_CORE_PROFILE_BIT          Enum = 0x0001
	CONTEXT_COMPATIBILITY_PROFILE_BIT Enum = 0x0002
)

// Blending
const (
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308
	FUNC_ADD                 Enum = 0x8006
	BLEND_EQUATION           Enum = 0x8009
	BLEND_EQUATION_RGB       Enum = 0x8009
	BLEND_EQUATION_ALPHA     Enum = 0x883D
	FUNC_SUBTRACT            Enum = 0x800A
	FUNC_REVERSE_SUBTRACT    Enum = 0x800B
	MIN                      Enum = 0x8007
	MAX                      Enum = 0x8008
	BLEND_DST_RGB            Enum = 0x80C8
	BLEND_SRC_RGB            Enum = 0x80C9
	BLEND_DST_ALPHA          Enum = 0x80CA
	BLEND_SRC_ALPHA          Enum = 0x80CB
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002
	CONSTANT_ALPHA           Enum = 0x8003
	ONE_MINUS_CONSTANT_ALPHA Enum = 0x8004
	BLEND_COLOR              Enum = 0x8005
)

// Buffers
const (
	ARRAY_BUFFER                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER         Enum = 0x8893
	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
	COPY_READ_BUFFER             Enum = 0x8F36
	COPY_WRITE_BUFFER            Enum = 0x8F37
	PIXEL_PACK_BUFFER            Enum = 0x88EB
	PIXEL_UNPACK_BUFFER          Enum = 0x88EC
	TRANSFORM_FEEDBACK_BUFFER    Enum = 0x8C8E
	UNIFORM_BUFFER               Enum = 0x8A11
	STREAM_DRAW                  Enum = 0x88E0
	STREAM_READ                  Enum = 0x88E1
	STREAM_COPY                  Enum = 0x88E2
	STATIC_DRAW                  Enum = 0x88E4
	STATIC_READ                  Enum = 0x88E5
	STATIC_COPY                  Enum = 0x88E6
	DYNAMIC_DRAW                 Enum = 0x88E8
	DYNAMIC_READ                 Enum = 0x88E9
	DYNAMIC_COPY                 Enum = 0x88EA
	BUFFER_SIZE                  Enum = 0x8764
	BUFFER_USAGE                 Enum = 0x8765
	BUFFER_ACCESS                Enum = 0x88BB
	BUFFER_MAPPED                Enum = 0x88BC
	BUFFER_MAP_POINTER           Enum = 0x88BD
	BUFFER_ACCESS_FLAGS          Enum = 0x911F
	BUFFER_MAP_LENGTH            Enum = 0x9120
	BUFFER_MAP_OFFSET            Enum = 0x9121
	READ_ONLY                    Enum = 0x88B8
	WRITE_ONLY                   Enum = 0x88B9
	READ_WRITE                   Enum = 0x88BA
	CURRENT_VERTEX_ATTRIB        Enum = 0x8626
)

// Faces
const (
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
)

// Capabilities
const (
	TEXTURE_2D                    Enum = 0x0DE1
	CULL_FACE                     Enum = 0x0B44
	BLEND                         Enum = 0x0BE2
	DITHER                        Enum = 0x0BD0
	STENCIL_TEST                  Enum = 0x0B90
	DEPTH_TEST                    Enum = 0x0B71
	SCISSOR_TEST                  Enum = 0x0C11
	POLYGON_OFFSET_FILL           Enum = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE      Enum = 0x809E
	SAMPLE_COVERAGE               Enum = 0x80A0
	MULTISAMPLE                   Enum = 0x809D
	POINT_SPRITE                  Enum = 0x8861
	PROGRAM_POINT_SIZE            Enum = 0x8642
	RASTERIZER_DISCARD            Enum = 0x8C89
	PRIMITIVE_RESTART_FIXED_INDEX Enum = 0x8D69
	DEBUG_OUTPUT                  Enum = 0x92E0
	DEBUG_OUTPUT_SYNCHRONOUS      Enum = 0x8242
	SAMPLE_SHADING                Enum = 0x8C36
	MIN_SAMPLE_SHADING_VALUE      Enum = 0x8C37
	SAMPLE_MASK                   Enum = 0x8E51
	CLIP_DISTANCE0                Enum = 0x3000
	CLIP_DISTANCE1                Enum = 0x3001
	CLIP_DISTANCE2                Enum = 0x3002
	CLIP_DISTANCE3                Enum = 0x3003
	CLIP_DISTANCE4                Enum = 0x3004
	CLIP_DISTANCE5                Enum = 0x3005
	CLIP_DISTANCE6                Enum = 0x3006
	CLIP_DISTANCE7                Enum = 0x3007
)

// Front face
const (
	CW  Enum = 0x0900
	CCW Enum = 0x0901
)

// Get pnames
const (
	LINE_WIDTH                                    Enum = 0x0B21
	ALIASED_POINT_SIZE_RANGE                      Enum = 0x846D
	ALIASED_LINE_WIDTH_RANGE                      Enum = 0x846E
	CULL_FACE_MODE                                Enum = 0x0B45
	FRONT_FACE                                    Enum = 0x0B46
	DEPTH_RANGE                                   Enum = 0x0B70
	DEPTH_WRITEMASK                               Enum = 0x0B72
	DEPTH_CLEAR_VALUE                             Enum = 0x0B73
	DEPTH_FUNC                                    Enum = 0x0B74
	STENCIL_CLEAR_VALUE                           Enum = 0x0B91
	STENCIL_FUNC                                  Enum = 0x0B92
	STENCIL_FAIL                                  Enum = 0x0B94
	STENCIL_PASS_DEPTH_FAIL                       Enum = 0x0B95
	STENCIL_PASS_DEPTH_PASS                       Enum = 0x0B96
	STENCIL_REF                                   Enum = 0x0B97
	STENCIL_VALUE_MASK                            Enum = 0x0B93
	STENCIL_WRITEMASK                             Enum = 0x0B98
	STENCIL_BACK_FUNC                             Enum = 0x8800
	STENCIL_BACK_FAIL                             Enum = 0x8801
	STENCIL_BACK_PASS_DEPTH_FAIL                  Enum = 0x8802
	STENCIL_BACK_PASS_DEPTH_PASS                  Enum = 0x8803
	STENCIL_BACK_REF                              Enum = 0x8CA3
	STENCIL_BACK_VALUE_MASK                       Enum = 0x8CA4
	STENCIL_BACK_WRITEMASK                        Enum = 0x8CA5
	VIEWPORT                                      Enum = 0x0BA2
	SCISSOR_BOX                                   Enum = 0x0C10
	COLOR_CLEAR_VALUE                             Enum = 0x0C22
	COLOR_WRITEMASK                               Enum = 0x0C23
	UNPACK_ALIGNMENT                              Enum = 0x0CF5
	PACK_ALIGNMENT                                Enum = 0x0D05
	MAX_TEXTURE_SIZE                              Enum = 0x0D33
	MAX_VIEWPORT_DIMS                             Enum = 0x0D3A
	SUBPIXEL_BITS                                 Enum = 0x0D50
	RED_BITS                                      Enum = 0x0D52
	GREEN_BITS                                    Enum = 0x0D53
	BLUE_BITS                                     Enum = 0x0D54
	ALPHA_BITS                                    Enum = 0x0D55
	DEPTH_BITS                                    Enum = 0x0D56
	STENCIL_BITS                                  Enum = 0x0D57
	POINT_SIZE                                    Enum = 0x0B11
	POLYGON_OFFSET_UNITS                          Enum = 0x2A00
	POLYGON_OFFSET_FACTOR                         Enum = 0x8038
	TEXTURE_BINDING_2D                            Enum = 0x8069
	TEXTURE_BINDING_3D                            Enum = 0x806A
	TEXTURE_BINDING_CUBE_MAP                      Enum = 0x8514
	TEXTURE_BINDING_1D_ARRAY                      Enum = 0x8C1C
	TEXTURE_BINDING_2D_ARRAY                      Enum = 0x8C1D
	TEXTURE_BINDING_CUBE_MAP_ARRAY                Enum = 0x900A
	TEXTURE_BINDING_EXTERNAL_OES                  Enum = 0x8D67
	TEXTURE_BINDING_2D_MULTISAMPLE                Enum = 0x9104
	TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY          Enum = 0x9105
	SAMPLE_BUFFERS                                Enum = 0x80A8
	SAMPLES                                       Enum = 0x80A9
	SAMPLE_COVERAGE_VALUE                         Enum = 0x80AA
	SAMPLE_COVERAGE_INVERT                        Enum = 0x80AB
	SAMPLE_POSITION                               Enum = 0x8E50
	SAMPLE_MASK_VALUE                             Enum = 0x8E52
	MAX_SAMPLE_MASK_WORDS                         Enum = 0x8E59
	NUM_COMPRESSED_TEXTURE_FORMATS                Enum = 0x86A2
	COMPRESSED_TEXTURE_FORMATS                    Enum = 0x86A3
	GENERATE_MIPMAP_HINT                          Enum = 0x8192
	FRAGMENT_SHADER_DERIVATIVE_HINT               Enum = 0x8B8B
	DONT_CARE                                     Enum = 0x1100
	FASTEST                                       Enum = 0x1101
	NICEST                                        Enum = 0x1102
	ACTIVE_TEXTURE                                Enum = 0x84E0
	CURRENT_PROGRAM                               Enum = 0x8B8D
	IMPLEMENTATION_COLOR_READ_TYPE                Enum = 0x8B9A
	IMPLEMENTATION_COLOR_READ_FORMAT              Enum = 0x8B9B
	SHADER_COMPILER                               Enum = 0x8DFA
	SHADER_BINARY_FORMATS                         Enum = 0x8DF8
	NUM_SHADER_BINARY_FORMATS                     Enum = 0x8DF9
	MAX_VERTEX_ATTRIBS                            Enum = 0x8869
	MAX_VERTEX_UNIFORM_VECTORS                    Enum = 0x8DFB
	MAX_VARYING_VECTORS                           Enum = 0x8DFC
	MAX_COMBINED_TEXTURE_IMAGE_UNITS              Enum = 0x8B4D
	MAX_VERTEX_TEXTURE_IMAGE_UNITS                Enum = 0x8B4C
	MAX_TEXTURE_IMAGE_UNITS                       Enum = 0x8872
	MAX_FRAGMENT_UNIFORM_VECTORS                  Enum = 0x8DFD
	MAX_RENDERBUFFER_SIZE                         Enum = 0x84E8
	MAX_CUBE_MAP_TEXTURE_SIZE                     Enum = 0x851C
	MAX_3D_TEXTURE_SIZE                           Enum = 0x8073
	MAX_ARRAY_TEXTURE_LAYERS                      Enum = 0x88FF
	MAX_COLOR_ATTACHMENTS                         Enum = 0x8CDF
	MAX_DRAW_BUFFERS                              Enum = 0x8824
	MAX_SAMPLES                                   Enum = 0x8D57
	MAX_VERTEX_UNIFORM_COMPONENTS                 Enum = 0x8B4A
	MAX_FRAGMENT_UNIFORM_COMPONENTS               Enum = 0x8B49
	MAX_TEXTURE_MAX_ANISOTROPY_EXT                Enum = 0x84FF
	MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS       Enum = 0x8C8B
	MAX_TRANSFORM_FEEDBACK_INTERLEAVED_COMPONENTS Enum = 0x8C8A
	MAX_TRANSFORM_FEEDBACK_SEPARATE_COMPONENTS    Enum = 0x8C80
	MAX_DEBUG_MESSAGE_LENGTH                      Enum = 0x9143
	MAX_DEBUG_LOGGED_MESSAGES                     Enum = 0x9144
	MAX_DEBUG_GROUP_STACK_DEPTH                   Enum = 0x826C
	MAX_LABEL_LENGTH                              Enum = 0x82E8
	MAX_SERVER_WAIT_TIMEOUT                       Enum = 0x9111
	NUM_EXTENSIONS                                Enum = 0x821D
	MAJOR_VERSION                                 Enum = 0x821B
	MINOR_VERSION                                 Enum = 0x821C
	CONTEXT_PROFILE_MASK                          Enum = 0x9126
	CONTEXT_FLAGS                                 Enum = 0x821E
	VERTEX_ARRAY_BINDING                          Enum = 0x85B5
	DRAW_BUFFER                                   Enum = 0x0C01
	READ_BUFFER                                   Enum = 0x0C02
	DRAW_BUFFER0                                  Enum = 0x8825
	FRAMEBUFFER_BINDING                           Enum = 0x8CA6
	DRAW_FRAMEBUFFER_BINDING                      Enum = 0x8CA6
	READ_FRAMEBUFFER_BINDING                      Enum = 0x8CAA
	RENDERBUFFER_BINDING                          Enum = 0x8CA7
	SAMPLER_BINDING                               Enum = 0x8919
	TRANSFORM_FEEDBACK_BINDING                    Enum = 0x8E25
	TRANSFORM_FEEDBACK_BUFFER_BINDING             Enum = 0x8C8F
	TRANSFORM_FEEDBACK_ACTIVE                     Enum = 0x8E24
	TRANSFORM_FEEDBACK_PAUSED                     Enum = 0x8E23
	COPY_READ_BUFFER_BINDING                      Enum = 0x8F36
	COPY_WRITE_BUFFER_BINDING                     Enum = 0x8F37
	PIXEL_PACK_BUFFER_BINDING                     Enum = 0x88ED
	PIXEL_UNPACK_BUFFER_BINDING                   Enum = 0x88EF
	UNIFORM_BUFFER_BINDING                        Enum = 0x8A28
)

// Funcs
const (
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207
)

// Stencil ops
const (
	KEEP      Enum = 0x1E00
	REPLACE   Enum = 0x1E01
	INCR      Enum = 0x1E02
	DECR      Enum = 0x1E03
	INVERT    Enum = 0x150A
	INCR_WRAP Enum = 0x8507
	DECR_WRAP Enum = 0x8508
)

// Strings
const (
	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	VERSION                  Enum = 0x1F02
	EXTENSIONS               Enum = 0x1F03
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C
)

// Types
const (
	BYTE                           Enum = 0x1400
	UNSIGNED_BYTE                  Enum = 0x1401
	SHORT                          Enum = 0x1402
	UNSIGNED_SHORT                 Enum = 0x1403
	INT                            Enum = 0x1404
	UNSIGNED_INT                   Enum = 0x1405
	FLOAT                          Enum = 0x1406
	HALF_FLOAT                     Enum = 0x140B
	FIXED                          Enum = 0x140C
	HALF_FLOAT_OES                 Enum = 0x8D61
	UNSIGNED_SHORT_4_4_4_4         Enum = 0x8033
	UNSIGNED_SHORT_5_5_5_1         Enum = 0x8034
	UNSIGNED_SHORT_5_6_5           Enum = 0x8363
	UNSIGNED_INT_2_10_10_10_REV    Enum = 0x8368
	UNSIGNED_INT_24_8              Enum = 0x84FA
	UNSIGNED_INT_10F_11F_11F_REV   Enum = 0x8C3B
	UNSIGNED_INT_5_9_9_9_REV       Enum = 0x8C3E
	FLOAT_32_UNSIGNED_INT_24_8_REV Enum = 0x8DAD
)

// Formats
const (
	DEPTH_COMPONENT    Enum = 0x1902
	RED                Enum = 0x1903
	GREEN              Enum = 0x1904
	BLUE               Enum = 0x1905
	ALPHA              Enum = 0x1906
	RGB                Enum = 0x1907
	RGBA               Enum = 0x1908
	LUMINANCE          Enum = 0x1909
	LUMINANCE_ALPHA    Enum = 0x190A
	RG                 Enum = 0x8227
	RED_INTEGER        Enum = 0x8D94
	RG_INTEGER         Enum = 0x8228
	RGB_INTEGER        Enum = 0x8D98
	RGBA_INTEGER       Enum = 0x8D99
	DEPTH_STENCIL      Enum = 0x84F9
	STENCIL_INDEX      Enum = 0x1901
	R8                 Enum = 0x8229
	RG8                Enum = 0x822B
	RGB8               Enum = 0x8051
	RGBA8              Enum = 0x8058
	RGBA4              Enum = 0x8056
	RGB5_A1            Enum = 0x8057
	RGB565             Enum = 0x8D62
	R16F               Enum = 0x822D
	RG16F              Enum = 0x822F
	RGB16F             Enum = 0x881B
	RGBA16F            Enum = 0x881A
	R32F               Enum = 0x822E
	RG32F              Enum = 0x8230
	RGB32F             Enum = 0x8815
	RGBA32F            Enum = 0x8814
	R8I                Enum = 0x8231
	R8UI               Enum = 0x8232
	R16I               Enum = 0x8233
	R16UI              Enum = 0x8234
	R32I               Enum = 0x8235
	R32UI              Enum = 0x8236
	RG8I               Enum = 0x8237
	RG8UI              Enum = 0x8238
	RGB10_A2           Enum = 0x8059
	R11F_G11F_B10F     Enum = 0x8C3A
	RGB9_E5            Enum = 0x8C3D
	SRGB8              Enum = 0x8C41
	SRGB8_ALPHA8       Enum = 0x8C43
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH_COMPONENT24  Enum = 0x81A6
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH24_STENCIL8   Enum = 0x88F0
	DEPTH32F_STENCIL8  Enum = 0x8CAD
	STENCIL_INDEX8     Enum = 0x8D48
)

// Compressed
const (
	COMPRESSED_RGB_S3TC_DXT1_EXT     Enum = 0x83F0
	COMPRESSED_RGBA_S3TC_DXT1_EXT    Enum = 0x83F1
	COMPRESSED_RGBA_S3TC_DXT5_EXT    Enum = 0x83F3
	COMPRESSED_RGB_PVRTC_4BPPV1_IMG  Enum = 0x8C00
	COMPRESSED_RGB_PVRTC_2BPPV1_IMG  Enum = 0x8C01
	COMPRESSED_RGBA_PVRTC_4BPPV1_IMG Enum = 0x8C02
	COMPRESSED_RGBA_PVRTC_2BPPV1_IMG Enum = 0x8C03
	ETC1_RGB8_OES                    Enum = 0x8D64
	COMPRESSED_RGB8_ETC2             Enum = 0x9274
	COMPRESSED_RGBA8_ETC2_EAC        Enum = 0x9278
)

// Shaders
const (
	FRAGMENT_SHADER                       Enum = 0x8B30
	VERTEX_SHADER                         Enum = 0x8B31
	GEOMETRY_SHADER                       Enum = 0x8DD9
	COMPUTE_SHADER                        Enum = 0x91B9
	SHADER_TYPE                           Enum = 0x8B4F
	DELETE_STATUS                         Enum = 0x8B80
	COMPILE_STATUS                        Enum = 0x8B81
	LINK_STATUS                           Enum = 0x8B82
	VALIDATE_STATUS                       Enum = 0x8B83
	INFO_LOG_LENGTH                       Enum = 0x8B84
	ATTACHED_SHADERS                      Enum = 0x8B85
	ACTIVE_UNIFORMS                       Enum = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH             Enum = 0x8B87
	SHADER_SOURCE_LENGTH                  Enum = 0x8B88
	ACTIVE_ATTRIBUTES                     Enum = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH           Enum = 0x8B8A
	TRANSFORM_FEEDBACK_VARYINGS           Enum = 0x8C83
	TRANSFORM_FEEDBACK_VARYING_MAX_LENGTH Enum = 0x8C76
	TRANSFORM_FEEDBACK_BUFFER_MODE        Enum = 0x8C7F
	INTERLEAVED_ATTRIBS                   Enum = 0x8C8C
	SEPARATE_ATTRIBS                      Enum = 0x8C8D
	LOW_FLOAT                             Enum = 0x8DF0
	MEDIUM_FLOAT                          Enum = 0x8DF1
	HIGH_FLOAT                            Enum = 0x8DF2
	LOW_INT                               Enum = 0x8DF3
	MEDIUM_INT                            Enum = 0x8DF4
	HIGH_INT                              Enum = 0x8DF5
)

// Uniform types
const (
	FLOAT_VEC2                          Enum = 0x8B50
	FLOAT_VEC3                          Enum = 0x8B51
	FLOAT_VEC4                          Enum = 0x8B52
	INT_VEC2                            Enum = 0x8B53
	INT_VEC3                            Enum = 0x8B54
	INT_VEC4                            Enum = 0x8B55
	BOOL                                Enum = 0x8B56
	FLOAT_MAT2                          Enum = 0x8B5A
	FLOAT_MAT3                          Enum = 0x8B5B
	FLOAT_MAT4                          Enum = 0x8B5C
	SAMPLER_1D                          Enum = 0x8B5D
	SAMPLER_2D                          Enum = 0x8B5E
	SAMPLER_3D                          Enum = 0x8B5F
	SAMPLER_CUBE                        Enum = 0x8B60
	SAMPLER_1D_SHADOW                   Enum = 0x8B61
	SAMPLER_2D_SHADOW                   Enum = 0x8B62
	SAMPLER_1D_ARRAY                    Enum = 0x8DC0
	SAMPLER_2D_ARRAY                    Enum = 0x8DC1
	SAMPLER_1D_ARRAY_SHADOW             Enum = 0x8DC3
	SAMPLER_2D_ARRAY_SHADOW             Enum = 0x8DC4
	SAMPLER_CUBE_SHADOW                 Enum = 0x8DC5
	SAMPLER_CUBE_MAP_ARRAY              Enum = 0x900C
	SAMPLER_CUBE_MAP_ARRAY_SHADOW       Enum = 0x900D
	SAMPLER_EXTERNAL_OES                Enum = 0x8D66
	SAMPLER_2D_MULTISAMPLE              Enum = 0x9108
	UNSIGNED_INT_VEC2                   Enum = 0x8DC6
	UNSIGNED_INT_VEC3                   Enum = 0x8DC7
	UNSIGNED_INT_VEC4                   Enum = 0x8DC8
	INT_SAMPLER_1D                      Enum = 0x8DC9
	INT_SAMPLER_2D                      Enum = 0x8DCA
	INT_SAMPLER_3D                      Enum = 0x8DCB
	INT_SAMPLER_CUBE                    Enum = 0x8DCC
	INT_SAMPLER_1D_ARRAY                Enum = 0x8DCE
	INT_SAMPLER_2D_ARRAY                Enum = 0x8DCF
	INT_SAMPLER_CUBE_MAP_ARRAY          Enum = 0x900E
	UNSIGNED_INT_SAMPLER_1D             Enum = 0x8DD1
	UNSIGNED_INT_SAMPLER_2D             Enum = 0x8DD2
	UNSIGNED_INT_SAMPLER_3D             Enum = 0x8DD3
	UNSIGNED_INT_SAMPLER_CUBE           Enum = 0x8DD4
	UNSIGNED_INT_SAMPLER_1D_ARRAY       Enum = 0x8DD6
	UNSIGNED_INT_SAMPLER_2D_ARRAY       Enum = 0x8DD7
	UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY Enum = 0x900F
)

// Textures
const (
	TEXTURE                      Enum = 0x1702
	TEXTURE_1D                   Enum = 0x0DE0
	TEXTURE_3D                   Enum = 0x806F
	TEXTURE_CUBE_MAP             Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X  Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X  Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y  Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y  Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z  Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z  Enum = 0x851A
	TEXTURE_1D_ARRAY             Enum = 0x8C18
	TEXTURE_2D_ARRAY             Enum = 0x8C1A
	TEXTURE_CUBE_MAP_ARRAY       Enum = 0x9009
	TEXTURE_EXTERNAL_OES         Enum = 0x8D65
	TEXTURE_2D_MULTISAMPLE       Enum = 0x9100
	TEXTURE_2D_MULTISAMPLE_ARRAY Enum = 0x9102
	TEXTURE0                     Enum = 0x84C0
	TEXTURE1                     Enum = 0x84C1
	TEXTURE2                     Enum = 0x84C2
	TEXTURE3                     Enum = 0x84C3
	TEXTURE4                     Enum = 0x84C4
	TEXTURE5                     Enum = 0x84C5
	TEXTURE6                     Enum = 0x84C6
	TEXTURE7                     Enum = 0x84C7
	TEXTURE_MAG_FILTER           Enum = 0x2800
	TEXTURE_MIN_FILTER           Enum = 0x2801
	TEXTURE_WRAP_S               Enum = 0x2802
	TEXTURE_WRAP_T               Enum = 0x2803
	TEXTURE_WRAP_R               Enum = 0x8072
	TEXTURE_MIN_LOD              Enum = 0x813A
	TEXTURE_MAX_LOD              Enum = 0x813B
	TEXTURE_BASE_LEVEL           Enum = 0x813C
	TEXTURE_MAX_LEVEL            Enum = 0x813D
	TEXTURE_COMPARE_MODE         Enum = 0x884C
	TEXTURE_COMPARE_FUNC         Enum = 0x884D
	TEXTURE_MAX_ANISOTROPY_EXT   Enum = 0x84FE
	TEXTURE_SWIZZLE_R            Enum = 0x8E42
	TEXTURE_SWIZZLE_G            Enum = 0x8E43
	TEXTURE_SWIZZLE_B            Enum = 0x8E44
	TEXTURE_SWIZZLE_A            Enum = 0x8E45
	TEXTURE_IMMUTABLE_FORMAT     Enum = 0x912F
	TEXTURE_IMMUTABLE_LEVELS     Enum = 0x82DF
	TEXTURE_SAMPLES              Enum = 0x9106
	COMPARE_REF_TO_TEXTURE       Enum = 0x884E
	NEAREST                      Enum = 0x2600
	LINEAR                       Enum = 0x2601
	NEAREST_MIPMAP_NEAREST       Enum = 0x2700
	LINEAR_MIPMAP_NEAREST        Enum = 0x2701
	NEAREST_MIPMAP_LINEAR        Enum = 0x2702
	LINEAR_MIPMAP_LINEAR         Enum = 0x2703
	REPEAT                       Enum = 0x2901
	CLAMP_TO_EDGE                Enum = 0x812F
	MIRRORED_REPEAT              Enum = 0x8370
	CLAMP_TO_BORDER              Enum = 0x812D
)

// Framebuffers
const (
	FRAMEBUFFER                                  Enum = 0x8D40
	RENDERBUFFER                                 Enum = 0x8D41
	READ_FRAMEBUFFER                             Enum = 0x8CA8
	DRAW_FRAMEBUFFER                             Enum = 0x8CA9
	RENDERBUFFER_SAMPLES                         Enum = 0x8CAB
	RENDERBUFFER_WIDTH                           Enum = 0x8D42
	RENDERBUFFER_HEIGHT                          Enum = 0x8D43
	RENDERBUFFER_INTERNAL_FORMAT                 Enum = 0x8D44
	RENDERBUFFER_RED_SIZE                        Enum = 0x8D50
	RENDERBUFFER_GREEN_SIZE                      Enum = 0x8D51
	RENDERBUFFER_BLUE_SIZE                       Enum = 0x8D52
	RENDERBUFFER_ALPHA_SIZE                      Enum = 0x8D53
	RENDERBUFFER_DEPTH_SIZE                      Enum = 0x8D54
	RENDERBUFFER_STENCIL_SIZE                    Enum = 0x8D55
	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE           Enum = 0x8CD0
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME           Enum = 0x8CD1
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL         Enum = 0x8CD2
	FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE Enum = 0x8CD3
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER         Enum = 0x8CD4
	COLOR_ATTACHMENT0                            Enum = 0x8CE0
	COLOR_ATTACHMENT1                            Enum = 0x8CE1
	COLOR_ATTACHMENT2                            Enum = 0x8CE2
	COLOR_ATTACHMENT3                            Enum = 0x8CE3
	DEPTH_ATTACHMENT                             Enum = 0x8D00
	STENCIL_ATTACHMENT                           Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT                     Enum = 0x821A
	FRAMEBUFFER_COMPLETE                         Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT            Enum = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT    Enum = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS            Enum = 0x8CD9
	FRAMEBUFFER_UNSUPPORTED                      Enum = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE           Enum = 0x8D56
	COLOR                                        Enum = 0x1800
	DEPTH                                        Enum = 0x1801
	STENCIL                                      Enum = 0x1802
)

// Queries
const (
	QUERY_COUNTER_BITS_EXT     Enum = 0x8864
	CURRENT_QUERY_EXT          Enum = 0x8865
	QUERY_RESULT_EXT           Enum = 0x8866
	QUERY_RESULT_AVAILABLE_EXT Enum = 0x8867
	TIME_ELAPSED_EXT           Enum = 0x88BF
	TIMESTAMP_EXT              Enum = 0x8E28
	GPU_DISJOINT_EXT           Enum = 0x8FBB
	ANY_SAMPLES_PASSED         Enum = 0x8C2F
)

// Sync
const (
	SYNC_FENCE                 Enum = 0x9116
	SYNC_GPU_COMMANDS_COMPLETE Enum = 0x9117
	UNSIGNALED                 Enum = 0x9118
	SIGNALED                   Enum = 0x9119
	ALREADY_SIGNALED           Enum = 0x911A
	TIMEOUT_EXPIRED            Enum = 0x911B
	CONDITION_SATISFIED        Enum = 0x911C
	WAIT_FAILED                Enum = 0x911D
	OBJECT_TYPE                Enum = 0x9112
	SYNC_CONDITION             Enum = 0x9113
	SYNC_STATUS                Enum = 0x9114
	SYNC_FLAGS                 Enum = 0x9115
)

// Transform feedback
const (
	TRANSFORM_FEEDBACK Enum = 0x8E22
)

// Debug
const (
	DEBUG_CALLBACK_FUNCTION          Enum = 0x8244
	DEBUG_CALLBACK_USER_PARAM        Enum = 0x8245
	DEBUG_SOURCE_API                 Enum = 0x8246
	DEBUG_SOURCE_WINDOW_SYSTEM       Enum = 0x8247
	DEBUG_SOURCE_SHADER_COMPILER     Enum = 0x8248
	DEBUG_SOURCE_THIRD_PARTY         Enum = 0x8249
	DEBUG_SOURCE_APPLICATION         Enum = 0x824A
	DEBUG_SOURCE_OTHER               Enum = 0x824B
	DEBUG_TYPE_ERROR                 Enum = 0x824C
	DEBUG_TYPE_DEPRECATED_BEHAVIOR   Enum = 0x824D
	DEBUG_TYPE_UNDEFINED_BEHAVIOR    Enum = 0x824E
	DEBUG_TYPE_PORTABILITY           Enum = 0x824F
	DEBUG_TYPE_PERFORMANCE           Enum = 0x8250
	DEBUG_TYPE_OTHER                 Enum = 0x8251
	DEBUG_TYPE_MARKER                Enum = 0x8268
	DEBUG_TYPE_PUSH_GROUP            Enum = 0x8269
	DEBUG_TYPE_POP_GROUP             Enum = 0x826A
	DEBUG_LOGGED_MESSAGES            Enum = 0x9145
	DEBUG_NEXT_LOGGED_MESSAGE_LENGTH Enum = 0x8243
	DEBUG_SEVERITY_HIGH              Enum = 0x9146
	DEBUG_SEVERITY_MEDIUM            Enum = 0x9147
	DEBUG_SEVERITY_LOW               Enum = 0x9148
	DEBUG_SEVERITY_NOTIFICATION      Enum = 0x826B
)

// Object labels
const (
	BUFFER_OBJECT       Enum = 0x9151
	SHADER_OBJECT       Enum = 0x8B48
	PROGRAM_OBJECT      Enum = 0x8B40
	QUERY_OBJECT        Enum = 0x9153
	VERTEX_ARRAY_OBJECT Enum = 0x9154
	SAMPLER             Enum = 0x82E6
)

// Vertex attribs
const (
	VERTEX_ATTRIB_ARRAY_ENABLED        Enum = 0x8622
	VERTEX_ATTRIB_ARRAY_SIZE           Enum = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE         Enum = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE           Enum = 0x8625
	VERTEX_ATTRIB_ARRAY_NORMALIZED     Enum = 0x886A
	VERTEX_ATTRIB_ARRAY_POINTER        Enum = 0x8645
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING Enum = 0x889F
	VERTEX_ATTRIB_ARRAY_DIVISOR        Enum = 0x88FE
	VERTEX_ATTRIB_ARRAY_INTEGER        Enum = 0x88FD
)

// table lists every name in declaration order. The first name listed for a
// value is the one String returns.
var table = []struct {
	name  string
	value Enum
}{
	{"GL_NONE", NONE},
	{"GL_NO_ERROR", NO_ERROR},
	{"GL_INVALID_ENUM", INVALID_ENUM},
	{"GL_INVALID_VALUE", INVALID_VALUE},
	{"GL_INVALID_OPERATION", INVALID_OPERATION},
	{"GL_OUT_OF_MEMORY", OUT_OF_MEMORY},
	{"GL_INVALID_FRAMEBUFFER_OPERATION", INVALID_FRAMEBUFFER_OPERATION},
	{"GL_FALSE", FALSE},
	{"GL_TRUE", TRUE},
	{"GL_ZERO", ZERO},
	{"GL_ONE", ONE},
	{"GL_POINTS", POINTS},
	{"GL_LINES", LINES},
	{"GL_LINE_LOOP", LINE_LOOP},
	{"GL_LINE_STRIP", LINE_STRIP},
	{"GL_TRIANGLES", TRIANGLES},
	{"GL_TRIANGLE_STRIP", TRIANGLE_STRIP},
	{"GL_TRIANGLE_FAN", TRIANGLE_FAN},
	{"GL_DEPTH_BUFFER_BIT", DEPTH_BUFFER_BIT},
	{"GL_STENCIL_BUFFER_BIT", STENCIL_BUFFER_BIT},
	{"GL_COLOR_BUFFER_BIT", COLOR_BUFFER_BIT},
	{"GL_MAP_READ_BIT", MAP_READ_BIT},
	{"GL_MAP_WRITE_BIT", MAP_WRITE_BIT},
	{"GL_MAP_INVALIDATE_RANGE_BIT", MAP_INVALIDATE_RANGE_BIT},
	{"GL_MAP_INVALIDATE_BUFFER_BIT", MAP_INVALIDATE_BUFFER_BIT},
	{"GL_MAP_FLUSH_EXPLICIT_BIT", MAP_FLUSH_EXPLICIT_BIT},
	{"GL_MAP_UNSYNCHRONIZED_BIT", MAP_UNSYNCHRONIZED_BIT},
	{"GL_SYNC_FLUSH_COMMANDS_BIT", SYNC_FLUSH_COMMANDS_BIT},
	{"GL_CONTEXT_CORE_PROFILE_BIT", CONTEXT_CORE_PROFILE_BIT},
	{"GL_CONTEXT_COMPATIBILITY_PROFILE_BIT", CONTEXT_COMPATIBILITY_PROFILE_BIT},
	{"GL_SRC_COLOR", SRC_COLOR},
	{"GL_ONE_MINUS_SRC_COLOR", ONE_MINUS_SRC_COLOR},
	{"GL_SRC_ALPHA", SRC_ALPHA},
	{"GL_ONE_MINUS_SRC_ALPHA", ONE_MINUS_SRC_ALPHA},
	{"GL_DST_ALPHA", DST_ALPHA},
	{"GL_ONE_MINUS_DST_ALPHA", ONE_MINUS_DST_ALPHA},
	{"GL_DST_COLOR", DST_COLOR},
	{"GL_ONE_MINUS_DST_COLOR", ONE_MINUS_DST_COLOR},
	{"GL_SRC_ALPHA_SATURATE", SRC_ALPHA_SATURATE},
	{"GL_FUNC_ADD", FUNC_ADD},
	{"GL_BLEND_EQUATION", BLEND_EQUATION},
	{"GL_BLEND_EQUATION_RGB", BLEND_EQUATION_RGB},
	{"GL_BLEND_EQUATION_ALPHA", BLEND_EQUATION_ALPHA},
	{"GL_FUNC_SUBTRACT", FUNC_SUBTRACT},
	{"GL_FUNC_REVERSE_SUBTRACT", FUNC_REVERSE_SUBTRACT},
	{"GL_MIN", MIN},
	{"GL_MAX", MAX},
	{"GL_BLEND_DST_RGB", BLEND_DST_RGB},
	{"GL_BLEND_SRC_RGB", BLEND_SRC_RGB},
	{"GL_BLEND_DST_ALPHA", BLEND_DST_ALPHA},
	{"GL_BLEND_SRC_ALPHA", BLEND_SRC_ALPHA},
	{"GL_CONSTANT_COLOR", CONSTANT_COLOR},
	{"GL_ONE_MINUS_CONSTANT_COLOR", ONE_MINUS_CONSTANT_COLOR},
	{"GL_CONSTANT_ALPHA", CONSTANT_ALPHA},
	{"GL_ONE_MINUS_CONSTANT_ALPHA", ONE_MINUS_CONSTANT_ALPHA},
	{"GL_BLEND_COLOR", BLEND_COLOR},
	{"GL_ARRAY_BUFFER", ARRAY_BUFFER},
	{"GL_ELEMENT_ARRAY_BUFFER", ELEMENT_ARRAY_BUFFER},
	{"GL_ARRAY_BUFFER_BINDING", ARRAY_BUFFER_BINDING},
	{"GL_ELEMENT_ARRAY_BUFFER_BINDING", ELEMENT_ARRAY_BUFFER_BINDING},
	{"GL_COPY_READ_BUFFER", COPY_READ_BUFFER},
	{"GL_COPY_WRITE_BUFFER", COPY_WRITE_BUFFER},
	{"GL_PIXEL_PACK_BUFFER", PIXEL_PACK_BUFFER},
	{"GL_PIXEL_UNPACK_BUFFER", PIXEL_UNPACK_BUFFER},
	{"GL_TRANSFORM_FEEDBACK_BUFFER", TRANSFORM_FEEDBACK_BUFFER},
	{"GL_UNIFORM_BUFFER", UNIFORM_BUFFER},
	{"GL_STREAM_DRAW", STREAM_DRAW},
	{"GL_STREAM_READ", STREAM_READ},
	{"GL_STREAM_COPY", STREAM_COPY},
	{"GL_STATIC_DRAW", STATIC_DRAW},
	{"GL_STATIC_READ", STATIC_READ},
	{"GL_STATIC_COPY", STATIC_COPY},
	{"GL_DYNAMIC_DRAW", DYNAMIC_DRAW},
	{"GL_DYNAMIC_READ", DYNAMIC_READ},
	{"GL_DYNAMIC_COPY", DYNAMIC_COPY},
	{"GL_BUFFER_SIZE", BUFFER_SIZE},
	{"GL_BUFFER_USAGE", BUFFER_USAGE},
	{"GL_BUFFER_ACCESS", BUFFER_ACCESS},
	{"GL_BUFFER_MAPPED", BUFFER_MAPPED},
	{"GL_BUFFER_MAP_POINTER", BUFFER_MAP_POINTER},
	{"GL_BUFFER_ACCESS_FLAGS", BUFFER_ACCESS_FLAGS},
	{"GL_BUFFER_MAP_LENGTH", BUFFER_MAP_LENGTH},
	{"GL_BUFFER_MAP_OFFSET", BUFFER_MAP_OFFSET},
	{"GL_READ_ONLY", READ_ONLY},
	{"GL_WRITE_ONLY", WRITE_ONLY},
	{"GL_READ_WRITE", READ_WRITE},
	{"GL_CURRENT_VERTEX_ATTRIB", CURRENT_VERTEX_ATTRIB},
	{"GL_FRONT", FRONT},
	{"GL_BACK", BACK},
	{"GL_FRONT_AND_BACK", FRONT_AND_BACK},
	{"GL_TEXTURE_2D", TEXTURE_2D},
	{"GL_CULL_FACE", CULL_FACE},
	{"GL_BLEND", BLEND},
	{"GL_DITHER", DITHER},
	{"GL_STENCIL_TEST", STENCIL_TEST},
	{"GL_DEPTH_TEST", DEPTH_TEST},
	{"GL_SCISSOR_TEST", SCISSOR_TEST},
	{"GL_POLYGON_OFFSET_FILL", POLYGON_OFFSET_FILL},
	{"GL_SAMPLE_ALPHA_TO_COVERAGE", SAMPLE_ALPHA_TO_COVERAGE},
	{"GL_SAMPLE_COVERAGE", SAMPLE_COVERAGE},
	{"GL_MULTISAMPLE", MULTISAMPLE},
	{"GL_POINT_SPRITE", POINT_SPRITE},
	{"GL_PROGRAM_POINT_SIZE", PROGRAM_POINT_SIZE},
	{"GL_RASTERIZER_DISCARD", RASTERIZER_DISCARD},
	{"GL_PRIMITIVE_RESTART_FIXED_INDEX", PRIMITIVE_RESTART_FIXED_INDEX},
	{"GL_DEBUG_OUTPUT", DEBUG_OUTPUT},
	{"GL_DEBUG_OUTPUT_SYNCHRONOUS", DEBUG_OUTPUT_SYNCHRONOUS},
	{"GL_SAMPLE_SHADING", SAMPLE_SHADING},
	{"GL_MIN_SAMPLE_SHADING_VALUE", MIN_SAMPLE_SHADING_VALUE},
	{"GL_SAMPLE_MASK", SAMPLE_MASK},
	{"GL_CLIP_DISTANCE0", CLIP_DISTANCE0},
	{"GL_CLIP_DISTANCE1", CLIP_DISTANCE1},
	{"GL_CLIP_DISTANCE2", CLIP_DISTANCE2},
	{"GL_CLIP_DISTANCE3", CLIP_DISTANCE3},
	{"GL_CLIP_DISTANCE4", CLIP_DISTANCE4},
	{"GL_CLIP_DISTANCE5", CLIP_DISTANCE5},
	{"GL_CLIP_DISTANCE6", CLIP_DISTANCE6},
	{"GL_CLIP_DISTANCE7", CLIP_DISTANCE7},
	{"GL_CW", CW},
	{"GL_CCW", CCW},
	{"GL_LINE_WIDTH", LINE_WIDTH},
	{"GL_ALIASED_POINT_SIZE_RANGE", ALIASED_POINT_SIZE_RANGE},
	{"GL_ALIASED_LINE_WIDTH_RANGE", ALIASED_LINE_WIDTH_RANGE},
	{"GL_CULL_FACE_MODE", CULL_FACE_MODE},
	{"GL_FRONT_FACE", FRONT_FACE},
	{"GL_DEPTH_RANGE", DEPTH_RANGE},
	{"GL_DEPTH_WRITEMASK", DEPTH_WRITEMASK},
	{"GL_DEPTH_CLEAR_VALUE", DEPTH_CLEAR_VALUE},
	{"GL_DEPTH_FUNC", DEPTH_FUNC},
	{"GL_STENCIL_CLEAR_VALUE", STENCIL_CLEAR_VALUE},
	{"GL_STENCIL_FUNC", STENCIL_FUNC},
	{"GL_STENCIL_FAIL", STENCIL_FAIL},
	{"GL_STENCIL_PASS_DEPTH_FAIL", STENCIL_PASS_DEPTH_FAIL},
	{"GL_STENCIL_PASS_DEPTH_PASS", STENCIL_PASS_DEPTH_PASS},
	{"GL_STENCIL_REF", STENCIL_REF},
	{"GL_STENCIL_VALUE_MASK", STENCIL_VALUE_MASK},
	{"GL_STENCIL_WRITEMASK", STENCIL_WRITEMASK},
	{"GL_STENCIL_BACK_FUNC", STENCIL_BACK_FUNC},
	{"GL_STENCIL_BACK_FAIL", STENCIL_BACK_FAIL},
	{"GL_STENCIL_BACK_PASS_DEPTH_FAIL", STENCIL_BACK_PASS_DEPTH_FAIL},
	{"GL_STENCIL_BACK_PASS_DEPTH_PASS", STENCIL_BACK_PASS_DEPTH_PASS},
	{"GL_STENCIL_BACK_REF", STENCIL_BACK_REF},
	{"GL_STENCIL_BACK_VALUE_MASK", STENCIL_BACK_VALUE_MASK},
	{"GL_STENCIL_BACK_WRITEMASK", STENCIL_BACK_WRITEMASK},
	{"GL_VIEWPORT", VIEWPORT},
	{"GL_SCISSOR_BOX", SCISSOR_BOX},
	{"GL_COLOR_CLEAR_VALUE", COLOR_CLEAR_VALUE},
	{"GL_COLOR_WRITEMASK", COLOR_WRITEMASK},
	{"GL_UNPACK_ALIGNMENT", UNPACK_ALIGNMENT},
	{"GL_PACK_ALIGNMENT", PACK_ALIGNMENT},
	{"GL_MAX_TEXTURE_SIZE", MAX_TEXTURE_SIZE},
	{"GL_MAX_VIEWPORT_DIMS", MAX_VIEWPORT_DIMS},
	{"GL_SUBPIXEL_BITS", SUBPIXEL_BITS},
	{"GL_RED_BITS", RED_BITS},
	{"GL_GREEN_BITS", GREEN_BITS},
	{"GL_BLUE_BITS", BLUE_BITS},
	{"GL_ALPHA_BITS", ALPHA_BITS},
	{"GL_DEPTH_BITS", DEPTH_BITS},
	{"GL_STENCIL_BITS", STENCIL_BITS},
	{"GL_POINT_SIZE", POINT_SIZE},
	{"GL_POLYGON_OFFSET_UNITS", POLYGON_OFFSET_UNITS},
	{"GL_POLYGON_OFFSET_FACTOR", POLYGON_OFFSET_FACTOR},
	{"GL_TEXTURE_BINDING_2D", TEXTURE_BINDING_2D},
	{"GL_TEXTURE_BINDING_3D", TEXTURE_BINDING_3D},
	{"GL_TEXTURE_BINDING_CUBE_MAP", TEXTURE_BINDING_CUBE_MAP},
	{"GL_TEXTURE_BINDING_1D_ARRAY", TEXTURE_BINDING_1D_ARRAY},
	{"GL_TEXTURE_BINDING_2D_ARRAY", TEXTURE_BINDING_2D_ARRAY},
	{"GL_TEXTURE_BINDING_CUBE_MAP_ARRAY", TEXTURE_BINDING_CUBE_MAP_ARRAY},
	{"GL_TEXTURE_BINDING_EXTERNAL_OES", TEXTURE_BINDING_EXTERNAL_OES},
	{"GL_TEXTURE_BINDING_2D_MULTISAMPLE", TEXTURE_BINDING_2D_MULTISAMPLE},
	{"GL_TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY", TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY},
	{"GL_SAMPLE_BUFFERS", SAMPLE_BUFFERS},
	{"GL_SAMPLES", SAMPLES},
	{"GL_SAMPLE_COVERAGE_VALUE", SAMPLE_COVERAGE_VALUE},
	{"GL_SAMPLE_COVERAGE_INVERT", SAMPLE_COVERAGE_INVERT},
	{"GL_SAMPLE_POSITION", SAMPLE_POSITION},
	{"GL_SAMPLE_MASK_VALUE", SAMPLE_MASK_VALUE},
	{"GL_MAX_SAMPLE_MASK_WORDS", MAX_SAMPLE_MASK_WORDS},
	{"GL_NUM_COMPRESSED_TEXTURE_FORMATS", NUM_COMPRESSED_TEXTURE_FORMATS},
	{"GL_COMPRESSED_TEXTURE_FORMATS", COMPRESSED_TEXTURE_FORMATS},
	{"GL_GENERATE_MIPMAP_HINT", GENERATE_MIPMAP_HINT},
	{"GL_FRAGMENT_SHADER_DERIVATIVE_HINT", FRAGMENT_SHADER_DERIVATIVE_HINT},
	{"GL_DONT_CARE", DONT_CARE},
	{"GL_FASTEST", FASTEST},
	{"GL_NICEST", NICEST},
	{"GL_ACTIVE_TEXTURE", ACTIVE_TEXTURE},
	{"GL_CURRENT_PROGRAM", CURRENT_PROGRAM},
	{"GL_IMPLEMENTATION_COLOR_READ_TYPE", IMPLEMENTATION_COLOR_READ_TYPE},
	{"GL_IMPLEMENTATION_COLOR_READ_FORMAT", IMPLEMENTATION_COLOR_READ_FORMAT},
	{"GL_SHADER_COMPILER", SHADER_COMPILER},
	{"GL_SHADER_BINARY_FORMATS", SHADER_BINARY_FORMATS},
	{"GL_NUM_SHADER_BINARY_FORMATS", NUM_SHADER_BINARY_FORMATS},
	{"GL_MAX_VERTEX_ATTRIBS", MAX_VERTEX_ATTRIBS},
	{"GL_MAX_VERTEX_UNIFORM_VECTORS", MAX_VERTEX_UNIFORM_VECTORS},
	{"GL_MAX_VARYING_VECTORS", MAX_VARYING_VECTORS},
	{"GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS", MAX_COMBINED_TEXTURE_IMAGE_UNITS},
	{"GL_MAX_VERTEX_TEXTURE_IMAGE_UNITS", MAX_VERTEX_TEXTURE_IMAGE_UNITS},
	{"GL_MAX_TEXTURE_IMAGE_UNITS", MAX_TEXTURE_IMAGE_UNITS},
	{"GL_MAX_FRAGMENT_UNIFORM_VECTORS", MAX_FRAGMENT_UNIFORM_VECTORS},
	{"GL_MAX_RENDERBUFFER_SIZE", MAX_RENDERBUFFER_SIZE},
	{"GL_MAX_CUBE_MAP_TEXTURE_SIZE", MAX_CUBE_MAP_TEXTURE_SIZE},
	{"GL_MAX_3D_TEXTURE_SIZE", MAX_3D_TEXTURE_SIZE},
	{"GL_MAX_ARRAY_TEXTURE_LAYERS", MAX_ARRAY_TEXTURE_LAYERS},
	{"GL_MAX_COLOR_ATTACHMENTS", MAX_COLOR_ATTACHMENTS},
	{"GL_MAX_DRAW_BUFFERS", MAX_DRAW_BUFFERS},
	{"GL_MAX_SAMPLES", MAX_SAMPLES},
	{"GL_MAX_VERTEX_UNIFORM_COMPONENTS", MAX_VERTEX_UNIFORM_COMPONENTS},
	{"GL_MAX_FRAGMENT_UNIFORM_COMPONENTS", MAX_FRAGMENT_UNIFORM_COMPONENTS},
	{"GL_MAX_TEXTURE_MAX_ANISOTROPY_EXT", MAX_TEXTURE_MAX_ANISOTROPY_EXT},
	{"GL_MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS", MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS},
	{"GL_MAX_TRANSFORM_FEEDBACK_INTERLEAVED_COMPONENTS", MAX_TRANSFORM_FEEDBACK_INTERLEAVED_COMPONENTS},
	{"GL_MAX_TRANSFORM_FEEDBACK_SEPARATE_COMPONENTS", MAX_TRANSFORM_FEEDBACK_SEPARATE_COMPONENTS},
	{"GL_MAX_DEBUG_MESSAGE_LENGTH", MAX_DEBUG_MESSAGE_LENGTH},
	{"GL_MAX_DEBUG_LOGGED_MESSAGES", MAX_DEBUG_LOGGED_MESSAGES},
	{"GL_MAX_DEBUG_GROUP_STACK_DEPTH", MAX_DEBUG_GROUP_STACK_DEPTH},
	{"GL_MAX_LABEL_LENGTH", MAX_LABEL_LENGTH},
	{"GL_MAX_SERVER_WAIT_TIMEOUT", MAX_SERVER_WAIT_TIMEOUT},
	{"GL_NUM_EXTENSIONS", NUM_EXTENSIONS},
	{"GL_MAJOR_VERSION", MAJOR_VERSION},
	{"GL_MINOR_VERSION", MINOR_VERSION},
	{"GL_CONTEXT_PROFILE_MASK", CONTEXT_PROFILE_MASK},
	{"GL_CONTEXT_FLAGS", CONTEXT_FLAGS},
	{"GL_VERTEX_ARRAY_BINDING", VERTEX_ARRAY_BINDING},
	{"GL_DRAW_BUFFER", DRAW_BUFFER},
	{"GL_READ_BUFFER", READ_BUFFER},
	{"GL_DRAW_BUFFER0", DRAW_BUFFER0},
	{"GL_FRAMEBUFFER_BINDING", FRAMEBUFFER_BINDING},
	{"GL_DRAW_FRAMEBUFFER_BINDING", DRAW_FRAMEBUFFER_BINDING},
	{"GL_READ_FRAMEBUFFER_BINDING", READ_FRAMEBUFFER_BINDING},
	{"GL_RENDERBUFFER_BINDING", RENDERBUFFER_BINDING},
	{"GL_SAMPLER_BINDING", SAMPLER_BINDING},
	{"GL_TRANSFORM_FEEDBACK_BINDING", TRANSFORM_FEEDBACK_BINDING},
	{"GL_TRANSFORM_FEEDBACK_BUFFER_BINDING", TRANSFORM_FEEDBACK_BUFFER_BINDING},
	{"GL_TRANSFORM_FEEDBACK_ACTIVE", TRANSFORM_FEEDBACK_ACTIVE},
	{"GL_TRANSFORM_FEEDBACK_PAUSED", TRANSFORM_FEEDBACK_PAUSED},
	{"GL_COPY_READ_BUFFER_BINDING", COPY_READ_BUFFER_BINDING},
	{"GL_COPY_WRITE_BUFFER_BINDING", COPY_WRITE_BUFFER_BINDING},
	{"GL_PIXEL_PACK_BUFFER_BINDING", PIXEL_PACK_BUFFER_BINDING},
	{"GL_PIXEL_UNPACK_BUFFER_BINDING", PIXEL_UNPACK_BUFFER_BINDING},
	{"GL_UNIFORM_BUFFER_BINDING", UNIFORM_BUFFER_BINDING},
	{"GL_NEVER", NEVER},
	{"GL_LESS", LESS},
	{"GL_EQUAL", EQUAL},
	{"GL_LEQUAL", LEQUAL},
	{"GL_GREATER", GREATER},
	{"GL_NOTEQUAL", NOTEQUAL},
	{"GL_GEQUAL", GEQUAL},
	{"GL_ALWAYS", ALWAYS},
	{"GL_KEEP", KEEP},
	{"GL_REPLACE", REPLACE},
	{"GL_INCR", INCR},
	{"GL_DECR", DECR},
	{"GL_INVERT", INVERT},
	{"GL_INCR_WRAP", INCR_WRAP},
	{"GL_DECR_WRAP", DECR_WRAP},
	{"GL_VENDOR", VENDOR},
	{"GL_RENDERER", RENDERER},
	{"GL_VERSION", VERSION},
	{"GL_EXTENSIONS", EXTENSIONS},
	{"GL_SHADING_LANGUAGE_VERSION", SHADING_LANGUAGE_VERSION},
	{"GL_BYTE", BYTE},
	{"GL_UNSIGNED_BYTE", UNSIGNED_BYTE},
	{"GL_SHORT", SHORT},
	{"GL_UNSIGNED_SHORT", UNSIGNED_SHORT},
	{"GL_INT", INT},
	{"GL_UNSIGNED_INT", UNSIGNED_INT},
	{"GL_FLOAT", FLOAT},
	{"GL_HALF_FLOAT", HALF_FLOAT},
	{"GL_FIXED", FIXED},
	{"GL_HALF_FLOAT_OES", HALF_FLOAT_OES},
	{"GL_UNSIGNED_SHORT_4_4_4_4", UNSIGNED_SHORT_4_4_4_4},
	{"GL_UNSIGNED_SHORT_5_5_5_1", UNSIGNED_SHORT_5_5_5_1},
	{"GL_UNSIGNED_SHORT_5_6_5", UNSIGNED_SHORT_5_6_5},
	{"GL_UNSIGNED_INT_2_10_10_10_REV", UNSIGNED_INT_2_10_10_10_REV},
	{"GL_UNSIGNED_INT_24_8", UNSIGNED_INT_24_8},
	{"GL_UNSIGNED_INT_10F_11F_11F_REV", UNSIGNED_INT_10F_11F_11F_REV},
	{"GL_UNSIGNED_INT_5_9_9_9_REV", UNSIGNED_INT_5_9_9_9_REV},
	{"GL_FLOAT_32_UNSIGNED_INT_24_8_REV", FLOAT_32_UNSIGNED_INT_24_8_REV},
	{"GL_DEPTH_COMPONENT", DEPTH_COMPONENT},
	{"GL_RED", RED},
	{"GL_GREEN", GREEN},
	{"GL_BLUE", BLUE},
	{"GL_ALPHA", ALPHA},
	{"GL_RGB", RGB},
	{"GL_RGBA", RGBA},
	{"GL_LUMINANCE", LUMINANCE},
	{"GL_LUMINANCE_ALPHA", LUMINANCE_ALPHA},
	{"GL_RG", RG},
	{"GL_RED_INTEGER", RED_INTEGER},
	{"GL_RG_INTEGER", RG_INTEGER},
	{"GL_RGB_INTEGER", RGB_INTEGER},
	{"GL_RGBA_INTEGER", RGBA_INTEGER},
	{"GL_DEPTH_STENCIL", DEPTH_STENCIL},
	{"GL_STENCIL_INDEX", STENCIL_INDEX},
	{"GL_R8", R8},
	{"GL_RG8", RG8},
	{"GL_RGB8", RGB8},
	{"GL_RGBA8", RGBA8},
	{"GL_RGBA4", RGBA4},
	{"GL_RGB5_A1", RGB5_A1},
	{"GL_RGB565", RGB565},
	{"GL_R16F", R16F},
	{"GL_RG16F", RG16F},
	{"GL_RGB16F", RGB16F},
	{"GL_RGBA16F", RGBA16F},
	{"GL_R32F", R32F},
	{"GL_RG32F", RG32F},
	{"GL_RGB32F", RGB32F},
	{"GL_RGBA32F", RGBA32F},
	{"GL_R8I", R8I},
	{"GL_R8UI", R8UI},
	{"GL_R16I", R16I},
	{"GL_R16UI", R16UI},
	{"GL_R32I", R32I},
	{"GL_R32UI", R32UI},
	{"GL_RG8I", RG8I},
	{"GL_RG8UI", RG8UI},
	{"GL_RGB10_A2", RGB10_A2},
	{"GL_R11F_G11F_B10F", R11F_G11F_B10F},
	{"GL_RGB9_E5", RGB9_E5},
	{"GL_SRGB8", SRGB8},
	{"GL_SRGB8_ALPHA8", SRGB8_ALPHA8},
	{"GL_DEPTH_COMPONENT16", DEPTH_COMPONENT16},
	{"GL_DEPTH_COMPONENT24", DEPTH_COMPONENT24},
	{"GL_DEPTH_COMPONENT32F", DEPTH_COMPONENT32F},
	{"GL_DEPTH24_STENCIL8", DEPTH24_STENCIL8},
	{"GL_DEPTH32F_STENCIL8", DEPTH32F_STENCIL8},
	{"GL_STENCIL_INDEX8", STENCIL_INDEX8},
	{"GL_COMPRESSED_RGB_S3TC_DXT1_EXT", COMPRESSED_RGB_S3TC_DXT1_EXT},
	{"GL_COMPRESSED_RGBA_S3TC_DXT1_EXT", COMPRESSED_RGBA_S3TC_DXT1_EXT},
	{"GL_COMPRESSED_RGBA_S3TC_DXT5_EXT", COMPRESSED_RGBA_S3TC_DXT5_EXT},
	{"GL_COMPRESSED_RGB_PVRTC_4BPPV1_IMG", COMPRESSED_RGB_PVRTC_4BPPV1_IMG},
	{"GL_COMPRESSED_RGB_PVRTC_2BPPV1_IMG", COMPRESSED_RGB_PVRTC_2BPPV1_IMG},
	{"GL_COMPRESSED_RGBA_PVRTC_4BPPV1_IMG", COMPRESSED_RGBA_PVRTC_4BPPV1_IMG},
	{"GL_COMPRESSED_RGBA_PVRTC_2BPPV1_IMG", COMPRESSED_RGBA_PVRTC_2BPPV1_IMG},
	{"GL_ETC1_RGB8_OES", ETC1_RGB8_OES},
	{"GL_COMPRESSED_RGB8_ETC2", COMPRESSED_RGB8_ETC2},
	{"GL_COMPRESSED_RGBA8_ETC2_EAC", COMPRESSED_RGBA8_ETC2_EAC},
	{"GL_FRAGMENT_SHADER", FRAGMENT_SHADER},
	{"GL_VERTEX_SHADER", VERTEX_SHADER},
	{"GL_GEOMETRY_SHADER", GEOMETRY_SHADER},
	{"GL_COMPUTE_SHADER", COMPUTE_SHADER},
	{"GL_SHADER_TYPE", SHADER_TYPE},
	{"GL_DELETE_STATUS", DELETE_STATUS},
	{"GL_COMPILE_STATUS", COMPILE_STATUS},
	{"GL_LINK_STATUS", LINK_STATUS},
	{"GL_VALIDATE_STATUS", VALIDATE_STATUS},
	{"GL_INFO_LOG_LENGTH", INFO_LOG_LENGTH},
	{"GL_ATTACHED_SHADERS", ATTACHED_SHADERS},
	{"GL_ACTIVE_UNIFORMS", ACTIVE_UNIFORMS},
	{"GL_ACTIVE_UNIFORM_MAX_LENGTH", ACTIVE_UNIFORM_MAX_LENGTH},
	{"GL_SHADER_SOURCE_LENGTH", SHADER_SOURCE_LENGTH},
	{"GL_ACTIVE_ATTRIBUTES", ACTIVE_ATTRIBUTES},
	{"GL_ACTIVE_ATTRIBUTE_MAX_LENGTH", ACTIVE_ATTRIBUTE_MAX_LENGTH},
	{"GL_TRANSFORM_FEEDBACK_VARYINGS", TRANSFORM_FEEDBACK_VARYINGS},
	{"GL_TRANSFORM_FEEDBACK_VARYING_MAX_LENGTH", TRANSFORM_FEEDBACK_VARYING_MAX_LENGTH},
	{"GL_TRANSFORM_FEEDBACK_BUFFER_MODE", TRANSFORM_FEEDBACK_BUFFER_MODE},
	{"GL_INTERLEAVED_ATTRIBS", INTERLEAVED_ATTRIBS},
	{"GL_SEPARATE_ATTRIBS", SEPARATE_ATTRIBS},
	{"GL_LOW_FLOAT", LOW_FLOAT},
	{"GL_MEDIUM_FLOAT", MEDIUM_FLOAT},
	{"GL_HIGH_FLOAT", HIGH_FLOAT},
	{"GL_LOW_INT", LOW_INT},
	{"GL_MEDIUM_INT", MEDIUM_INT},
	{"GL_HIGH_INT", HIGH_INT},
	{"GL_FLOAT_VEC2", FLOAT_VEC2},
	{"GL_FLOAT_VEC3", FLOAT_VEC3},
	{"GL_FLOAT_VEC4", FLOAT_VEC4},
	{"GL_INT_VEC2", INT_VEC2},
	{"GL_INT_VEC3", INT_VEC3},
	{"GL_INT_VEC4", INT_VEC4},
	{"GL_BOOL", BOOL},
	{"GL_FLOAT_MAT2", FLOAT_MAT2},
	{"GL_FLOAT_MAT3", FLOAT_MAT3},
	{"GL_FLOAT_MAT4", FLOAT_MAT4},
	{"GL_SAMPLER_1D", SAMPLER_1D},
	{"GL_SAMPLER_2D", SAMPLER_2D},
	{"GL_SAMPLER_3D", SAMPLER_3D},
	{"GL_SAMPLER_CUBE", SAMPLER_CUBE},
	{"GL_SAMPLER_1D_SHADOW", SAMPLER_1D_SHADOW},
	{"GL_SAMPLER_2D_SHADOW", SAMPLER_2D_SHADOW},
	{"GL_SAMPLER_1D_ARRAY", SAMPLER_1D_ARRAY},
	{"GL_SAMPLER_2D_ARRAY", SAMPLER_2D_ARRAY},
	{"GL_SAMPLER_1D_ARRAY_SHADOW", SAMPLER_1D_ARRAY_SHADOW},
	{"GL_SAMPLER_2D_ARRAY_SHADOW", SAMPLER_2D_ARRAY_SHADOW},
	{"GL_SAMPLER_CUBE_SHADOW", SAMPLER_CUBE_SHADOW},
	{"GL_SAMPLER_CUBE_MAP_ARRAY", SAMPLER_CUBE_MAP_ARRAY},
	{"GL_SAMPLER_CUBE_MAP_ARRAY_SHADOW", SAMPLER_CUBE_MAP_ARRAY_SHADOW},
	{"GL_SAMPLER_EXTERNAL_OES", SAMPLER_EXTERNAL_OES},
	{"GL_SAMPLER_2D_MULTISAMPLE", SAMPLER_2D_MULTISAMPLE},
	{"GL_UNSIGNED_INT_VEC2", UNSIGNED_INT_VEC2},
	{"GL_UNSIGNED_INT_VEC3", UNSIGNED_INT_VEC3},
	{"GL_UNSIGNED_INT_VEC4", UNSIGNED_INT_VEC4},
	{"GL_INT_SAMPLER_1D", INT_SAMPLER_1D},
	{"GL_INT_SAMPLER_2D", INT_SAMPLER_2D},
	{"GL_INT_SAMPLER_3D", INT_SAMPLER_3D},
	{"GL_INT_SAMPLER_CUBE", INT_SAMPLER_CUBE},
	{"GL_INT_SAMPLER_1D_ARRAY", INT_SAMPLER_1D_ARRAY},
	{"GL_INT_SAMPLER_2D_ARRAY", INT_SAMPLER_2D_ARRAY},
	{"GL_INT_SAMPLER_CUBE_MAP_ARRAY", INT_SAMPLER_CUBE_MAP_ARRAY},
	{"GL_UNSIGNED_INT_SAMPLER_1D", UNSIGNED_INT_SAMPLER_1D},
	{"GL_UNSIGNED_INT_SAMPLER_2D", UNSIGNED_INT_SAMPLER_2D},
	{"GL_UNSIGNED_INT_SAMPLER_3D", UNSIGNED_INT_SAMPLER_3D},
	{"GL_UNSIGNED_INT_SAMPLER_CUBE", UNSIGNED_INT_SAMPLER_CUBE},
	{"GL_UNSIGNED_INT_SAMPLER_1D_ARRAY", UNSIGNED_INT_SAMPLER_1D_ARRAY},
	{"GL_UNSIGNED_INT_SAMPLER_2D_ARRAY", UNSIGNED_INT_SAMPLER_2D_ARRAY},
	{"GL_UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY", UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY},
	{"GL_TEXTURE", TEXTURE},
	{"GL_TEXTURE_1D", TEXTURE_1D},
	{"GL_TEXTURE_3D", TEXTURE_3D},
	{"GL_TEXTURE_CUBE_MAP", TEXTURE_CUBE_MAP},
	{"GL_TEXTURE_CUBE_MAP_POSITIVE_X", TEXTURE_CUBE_MAP_POSITIVE_X},
	{"GL_TEXTURE_CUBE_MAP_NEGATIVE_X", TEXTURE_CUBE_MAP_NEGATIVE_X},
	{"GL_TEXTURE_CUBE_MAP_POSITIVE_Y", TEXTURE_CUBE_MAP_POSITIVE_Y},
	{"GL_TEXTURE_CUBE_MAP_NEGATIVE_Y", TEXTURE_CUBE_MAP_NEGATIVE_Y},
	{"GL_TEXTURE_CUBE_MAP_POSITIVE_Z", TEXTURE_CUBE_MAP_POSITIVE_Z},
	{"GL_TEXTURE_CUBE_MAP_NEGATIVE_Z", TEXTURE_CUBE_MAP_NEGATIVE_Z},
	{"GL_TEXTURE_1D_ARRAY", TEXTURE_1D_ARRAY},
	{"GL_TEXTURE_2D_ARRAY", TEXTURE_2D_ARRAY},
	{"GL_TEXTURE_CUBE_MAP_ARRAY", TEXTURE_CUBE_MAP_ARRAY},
	{"GL_TEXTURE_EXTERNAL_OES", TEXTURE_EXTERNAL_OES},
	{"GL_TEXTURE_2D_MULTISAMPLE", TEXTURE_2D_MULTISAMPLE},
	{"GL_TEXTURE_2D_MULTISAMPLE_ARRAY", TEXTURE_2D_MULTISAMPLE_ARRAY},
	{"GL_TEXTURE0", TEXTURE0},
	{"GL_TEXTURE1", TEXTURE1},
	{"GL_TEXTURE2", TEXTURE2},
	{"GL_TEXTURE3", TEXTURE3},
	{"GL_TEXTURE4", TEXTURE4},
	{"GL_TEXTURE5", TEXTURE5},
	{"GL_TEXTURE6", TEXTURE6},
	{"GL_TEXTURE7", TEXTURE7},
	{"GL_TEXTURE_MAG_FILTER", TEXTURE_MAG_FILTER},
	{"GL_TEXTURE_MIN_FILTER", TEXTURE_MIN_FILTER},
	{"GL_TEXTURE_WRAP_S", TEXTURE_WRAP_S},
	{"GL_TEXTURE_WRAP_T", TEXTURE_WRAP_T},
	{"GL_TEXTURE_WRAP_R", TEXTURE_WRAP_R},
	{"GL_TEXTURE_MIN_LOD", TEXTURE_MIN_LOD},
	{"GL_TEXTURE_MAX_LOD", TEXTURE_MAX_LOD},
	{"GL_TEXTURE_BASE_LEVEL", TEXTURE_BASE_LEVEL},
	{"GL_TEXTURE_MAX_LEVEL", TEXTURE_MAX_LEVEL},
	{"GL_TEXTURE_COMPARE_MODE", TEXTURE_COMPARE_MODE},
	{"GL_TEXTURE_COMPARE_FUNC", TEXTURE_COMPARE_FUNC},
	{"GL_TEXTURE_MAX_ANISOTROPY_EXT", TEXTURE_MAX_ANISOTROPY_EXT},
	{"GL_TEXTURE_SWIZZLE_R", TEXTURE_SWIZZLE_R},
	{"GL_TEXTURE_SWIZZLE_G", TEXTURE_SWIZZLE_G},
	{"GL_TEXTURE_SWIZZLE_B", TEXTURE_SWIZZLE_B},
	{"GL_TEXTURE_SWIZZLE_A", TEXTURE_SWIZZLE_A},
	{"GL_TEXTURE_IMMUTABLE_FORMAT", TEXTURE_IMMUTABLE_FORMAT},
	{"GL_TEXTURE_IMMUTABLE_LEVELS", TEXTURE_IMMUTABLE_LEVELS},
	{"GL_TEXTURE_SAMPLES", TEXTURE_SAMPLES},
	{"GL_COMPARE_REF_TO_TEXTURE", COMPARE_REF_TO_TEXTURE},
	{"GL_NEAREST", NEAREST},
	{"GL_LINEAR", LINEAR},
	{"GL_NEAREST_MIPMAP_NEAREST", NEAREST_MIPMAP_NEAREST},
	{"GL_LINEAR_MIPMAP_NEAREST", LINEAR_MIPMAP_NEAREST},
	{"GL_NEAREST_MIPMAP_LINEAR", NEAREST_MIPMAP_LINEAR},
	{"GL_LINEAR_MIPMAP_LINEAR", LINEAR_MIPMAP_LINEAR},
	{"GL_REPEAT", REPEAT},
	{"GL_CLAMP_TO_EDGE", CLAMP_TO_EDGE},
	{"GL_MIRRORED_REPEAT", MIRRORED_REPEAT},
	{"GL_CLAMP_TO_BORDER", CLAMP_TO_BORDER},
	{"GL_FRAMEBUFFER", FRAMEBUFFER},
	{"GL_RENDERBUFFER", RENDERBUFFER},
	{"GL_READ_FRAMEBUFFER", READ_FRAMEBUFFER},
	{"GL_DRAW_FRAMEBUFFER", DRAW_FRAMEBUFFER},
	{"GL_RENDERBUFFER_SAMPLES", RENDERBUFFER_SAMPLES},
	{"GL_RENDERBUFFER_WIDTH", RENDERBUFFER_WIDTH},
	{"GL_RENDERBUFFER_HEIGHT", RENDERBUFFER_HEIGHT},
	{"GL_RENDERBUFFER_INTERNAL_FORMAT", RENDERBUFFER_INTERNAL_FORMAT},
	{"GL_RENDERBUFFER_RED_SIZE", RENDERBUFFER_RED_SIZE},
	{"GL_RENDERBUFFER_GREEN_SIZE", RENDERBUFFER_GREEN_SIZE},
	{"GL_RENDERBUFFER_BLUE_SIZE", RENDERBUFFER_BLUE_SIZE},
	{"GL_RENDERBUFFER_ALPHA_SIZE", RENDERBUFFER_ALPHA_SIZE},
	{"GL_RENDERBUFFER_DEPTH_SIZE", RENDERBUFFER_DEPTH_SIZE},
	{"GL_RENDERBUFFER_STENCIL_SIZE", RENDERBUFFER_STENCIL_SIZE},
	{"GL_FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE", FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE},
	{"GL_FRAMEBUFFER_ATTACHMENT_OBJECT_NAME", FRAMEBUFFER_ATTACHMENT_OBJECT_NAME},
	{"GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL", FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL},
	{"GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE", FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE},
	{"GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER", FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER},
	{"GL_COLOR_ATTACHMENT0", COLOR_ATTACHMENT0},
	{"GL_COLOR_ATTACHMENT1", COLOR_ATTACHMENT1},
	{"GL_COLOR_ATTACHMENT2", COLOR_ATTACHMENT2},
	{"GL_COLOR_ATTACHMENT3", COLOR_ATTACHMENT3},
	{"GL_DEPTH_ATTACHMENT", DEPTH_ATTACHMENT},
	{"GL_STENCIL_ATTACHMENT", STENCIL_ATTACHMENT},
	{"GL_DEPTH_STENCIL_ATTACHMENT", DEPTH_STENCIL_ATTACHMENT},
	{"GL_FRAMEBUFFER_COMPLETE", FRAMEBUFFER_COMPLETE},
	{"GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT", FRAMEBUFFER_INCOMPLETE_ATTACHMENT},
	{"GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT", FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT},
	{"GL_FRAMEBUFFER_INCOMPLETE_DIMENSIONS", FRAMEBUFFER_INCOMPLETE_DIMENSIONS},
	{"GL_FRAMEBUFFER_UNSUPPORTED", FRAMEBUFFER_UNSUPPORTED},
	{"GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE", FRAMEBUFFER_INCOMPLETE_MULTISAMPLE},
	{"GL_COLOR", COLOR},
	{"GL_DEPTH", DEPTH},
	{"GL_STENCIL", STENCIL},
	{"GL_QUERY_COUNTER_BITS_EXT", QUERY_COUNTER_BITS_EXT},
	{"GL_CURRENT_QUERY_EXT", CURRENT_QUERY_EXT},
	{"GL_QUERY_RESULT_EXT", QUERY_RESULT_EXT},
	{"GL_QUERY_RESULT_AVAILABLE_EXT", QUERY_RESULT_AVAILABLE_EXT},
	{"GL_TIME_ELAPSED_EXT", TIME_ELAPSED_EXT},
	{"GL_TIMESTAMP_EXT", TIMESTAMP_EXT},
	{"GL_GPU_DISJOINT_EXT", GPU_DISJOINT_EXT},
	{"GL_ANY_SAMPLES_PASSED", ANY_SAMPLES_PASSED},
	{"GL_SYNC_FENCE", SYNC_FENCE},
	{"GL_SYNC_GPU_COMMANDS_COMPLETE", SYNC_GPU_COMMANDS_COMPLETE},
	{"GL_UNSIGNALED", UNSIGNALED},
	{"GL_SIGNALED", SIGNALED},
	{"GL_ALREADY_SIGNALED", ALREADY_SIGNALED},
	{"GL_TIMEOUT_EXPIRED", TIMEOUT_EXPIRED},
	{"GL_CONDITION_SATISFIED", CONDITION_SATISFIED},
	{"GL_WAIT_FAILED", WAIT_FAILED},
	{"GL_OBJECT_TYPE", OBJECT_TYPE},
	{"GL_SYNC_CONDITION", SYNC_CONDITION},
	{"GL_SYNC_STATUS", SYNC_STATUS},
	{"GL_SYNC_FLAGS", SYNC_FLAGS},
	{"GL_TRANSFORM_FEEDBACK", TRANSFORM_FEEDBACK},
	{"GL_DEBUG_CALLBACK_FUNCTION", DEBUG_CALLBACK_FUNCTION},
	{"GL_DEBUG_CALLBACK_USER_PARAM", DEBUG_CALLBACK_USER_PARAM},
	{"GL_DEBUG_SOURCE_API", DEBUG_SOURCE_API},
	{"GL_DEBUG_SOURCE_WINDOW_SYSTEM", DEBUG_SOURCE_WINDOW_SYSTEM},
	{"GL_DEBUG_SOURCE_SHADER_COMPILER", DEBUG_SOURCE_SHADER_COMPILER},
	{"GL_DEBUG_SOURCE_THIRD_PARTY", DEBUG_SOURCE_THIRD_PARTY},
	{"GL_DEBUG_SOURCE_APPLICATION", DEBUG_SOURCE_APPLICATION},
	{"GL_DEBUG_SOURCE_OTHER", DEBUG_SOURCE_OTHER},
	{"GL_DEBUG_TYPE_ERROR", DEBUG_TYPE_ERROR},
	{"GL_DEBUG_TYPE_DEPRECATED_BEHAVIOR", DEBUG_TYPE_DEPRECATED_BEHAVIOR},
	{"GL_DEBUG_TYPE_UNDEFINED_BEHAVIOR", DEBUG_TYPE_UNDEFINED_BEHAVIOR},
	{"GL_DEBUG_TYPE_PORTABILITY", DEBUG_TYPE_PORTABILITY},
	{"GL_DEBUG_TYPE_PERFORMANCE", DEBUG_TYPE_PERFORMANCE},
	{"GL_DEBUG_TYPE_OTHER", DEBUG_TYPE_OTHER},
	{"GL_DEBUG_TYPE_MARKER", DEBUG_TYPE_MARKER},
	{"GL_DEBUG_TYPE_PUSH_GROUP", DEBUG_TYPE_PUSH_GROUP},
	{"GL_DEBUG_TYPE_POP_GROUP", DEBUG_TYPE_POP_GROUP},
	{"GL_DEBUG_LOGGED_MESSAGES", DEBUG_LOGGED_MESSAGES},
	{"GL_DEBUG_NEXT_LOGGED_MESSAGE_LENGTH", DEBUG_NEXT_LOGGED_MESSAGE_LENGTH},
	{"GL_DEBUG_SEVERITY_HIGH", DEBUG_SEVERITY_HIGH},
	{"GL_DEBUG_SEVERITY_MEDIUM", DEBUG_SEVERITY_MEDIUM},
	{"GL_DEBUG_SEVERITY_LOW", DEBUG_SEVERITY_LOW},
	{"GL_DEBUG_SEVERITY_NOTIFICATION", DEBUG_SEVERITY_NOTIFICATION},
	{"GL_BUFFER_OBJECT", BUFFER_OBJECT},
	{"GL_SHADER_OBJECT", SHADER_OBJECT},
	{"GL_PROGRAM_OBJECT", PROGRAM_OBJECT},
	{"GL_QUERY_OBJECT", QUERY_OBJECT},
	{"GL_VERTEX_ARRAY_OBJECT", VERTEX_ARRAY_OBJECT},
	{"GL_SAMPLER", SAMPLER},
	{"GL_VERTEX_ATTRIB_ARRAY_ENABLED", VERTEX_ATTRIB_ARRAY_ENABLED},
	{"GL_VERTEX_ATTRIB_ARRAY_SIZE", VERTEX_ATTRIB_ARRAY_SIZE},
	{"GL_VERTEX_ATTRIB_ARRAY_STRIDE", VERTEX_ATTRIB_ARRAY_STRIDE},
	{"GL_VERTEX_ATTRIB_ARRAY_TYPE", VERTEX_ATTRIB_ARRAY_TYPE},
	{"GL_VERTEX_ATTRIB_ARRAY_NORMALIZED", VERTEX_ATTRIB_ARRAY_NORMALIZED},
	{"GL_VERTEX_ATTRIB_ARRAY_POINTER", VERTEX_ATTRIB_ARRAY_POINTER},
	{"GL_VERTEX_ATTRIB_ARRAY_BUFFER_BINDING", VERTEX_ATTRIB_ARRAY_BUFFER_BINDING},
	{"GL_VERTEX_ATTRIB_ARRAY_DIVISOR", VERTEX_ATTRIB_ARRAY_DIVISOR},
	{"GL_VERTEX_ATTRIB_ARRAY_INTEGER", VERTEX_ATTRIB_ARRAY_INTEGER},
}
