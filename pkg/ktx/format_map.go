package ktx

import "github.com/larkspur-oss/imgio/pkg/gpuformat"

// OpenGL enums used by the format mapping table. Only the subset needed
// by the catalogue's uncompressed formats is reproduced here.
const (
	glUnsignedByte  = 0x1401
	glUnsignedShort = 0x1403
	glHalfFloat     = 0x140B
	glFloat         = 0x1406

	glRed  = 0x1903
	glRG   = 0x8227
	glRGB  = 0x1907
	glRGBA = 0x1908
	glBGR  = 0x80E0
	glBGRA = 0x80E1

	glR8      = 0x8229
	glRG8     = 0x822B
	glRGB8    = 0x8051
	glRGBA8   = 0x8058
	glR16     = 0x822A
	glRG16    = 0x822C
	glRGB16   = 0x8054
	glRGBA16  = 0x805B
	glSRGB8   = 0x8C41
	glSRGB8A8 = 0x8C43

	glR16F    = 0x822D
	glRG16F   = 0x822F
	glRGB16F  = 0x881B
	glRGBA16F = 0x881A
	glR32F    = 0x822E
	glRG32F   = 0x8230
	glRGB32F  = 0x8815
	glRGBA32F = 0x8814
)

// glEntry is the (type, format, internalFormat, baseInternalFormat)
// tuple a catalogue format maps to and from.
type glEntry struct {
	glType               uint32
	glTypeSize           uint32
	glFormat             uint32
	glInternalFormat     uint32
	glBaseInternalFormat uint32
}

// formatMap lists every gpuformat.Format this engine can round-trip
// through a KTX file's OpenGL format triple. Formats outside this table
// fail reads with an unmapped-format error and writes with
// unsupported-format, per spec.md 4.6.
var formatMap = map[gpuformat.Format]glEntry{
	gpuformat.R8Unorm:     {glUnsignedByte, 1, glRed, glR8, glRed},
	gpuformat.R8G8Unorm:   {glUnsignedByte, 1, glRG, glRG8, glRG},
	gpuformat.R8G8B8Unorm: {glUnsignedByte, 1, glRGB, glRGB8, glRGB},
	gpuformat.B8G8R8Unorm: {glUnsignedByte, 1, glBGR, glRGB8, glRGB},

	gpuformat.R8G8B8A8Unorm: {glUnsignedByte, 1, glRGBA, glRGBA8, glRGBA},
	gpuformat.B8G8R8A8Unorm: {glUnsignedByte, 1, glBGRA, glRGBA8, glRGBA},

	gpuformat.R8G8B8Srgb:   {glUnsignedByte, 1, glRGB, glSRGB8, glRGB},
	gpuformat.R8G8B8A8Srgb: {glUnsignedByte, 1, glRGBA, glSRGB8A8, glRGBA},

	gpuformat.R16Unorm:          {glUnsignedShort, 2, glRed, glR16, glRed},
	gpuformat.R16G16Unorm:       {glUnsignedShort, 2, glRG, glRG16, glRG},
	gpuformat.R16G16B16Unorm:    {glUnsignedShort, 2, glRGB, glRGB16, glRGB},
	gpuformat.R16G16B16A16Unorm: {glUnsignedShort, 2, glRGBA, glRGBA16, glRGBA},

	gpuformat.R16Sfloat:          {glHalfFloat, 2, glRed, glR16F, glRed},
	gpuformat.R16G16Sfloat:       {glHalfFloat, 2, glRG, glRG16F, glRG},
	gpuformat.R16G16B16Sfloat:    {glHalfFloat, 2, glRGB, glRGB16F, glRGB},
	gpuformat.R16G16B16A16Sfloat: {glHalfFloat, 2, glRGBA, glRGBA16F, glRGBA},

	gpuformat.R32Sfloat:          {glFloat, 4, glRed, glR32F, glRed},
	gpuformat.R32G32Sfloat:       {glFloat, 4, glRG, glRG32F, glRG},
	gpuformat.R32G32B32Sfloat:    {glFloat, 4, glRGB, glRGB32F, glRGB},
	gpuformat.R32G32B32A32Sfloat: {glFloat, 4, glRGBA, glRGBA32F, glRGBA},
}

// glKey identifies a format by its (glInternalFormat, glFormat) pair; the
// internal format alone does not tell RGB from BGR channel order.
type glKey struct{ internalFormat, format uint32 }

var reverseFormatMap = buildReverseMap()

func buildReverseMap() map[glKey]gpuformat.Format {
	m := make(map[glKey]gpuformat.Format, len(formatMap))
	for f, e := range formatMap {
		m[glKey{e.glInternalFormat, e.glFormat}] = f
	}
	return m
}

func lookupByInternalFormat(glInternalFormat, glFormat uint32) (gpuformat.Format, bool) {
	f, ok := reverseFormatMap[glKey{glInternalFormat, glFormat}]
	return f, ok
}
