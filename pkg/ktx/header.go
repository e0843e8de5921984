// Package ktx reads and writes the legacy KTX container: a 12-byte
// identifier, a 13-field little-endian header, opaque key/value
// metadata, and per-mip image data with 4-byte alignment and a
// cubemap-specific imageSize quirk.
package ktx

import (
	"encoding/binary"
	"fmt"
)

// Identifier is the 12-byte magic every KTX file begins with.
var Identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// nativeEndianness is the only accepted value of the header's
// endianness field; anything else indicates a byte-swapped file this
// reader does not support.
const nativeEndianness = 0x04030201

const headerFieldCount = 13
const headerSize = headerFieldCount * 4

// Header is the fixed-size KTX header following the identifier.
type Header struct {
	Endianness           uint32
	GLType               uint32
	GLTypeSize           uint32
	GLFormat             uint32
	GLInternalFormat     uint32
	GLBaseInternalFormat uint32
	PixelWidth           uint32
	PixelHeight          uint32
	PixelDepth           uint32
	NumberArrayElements  uint32
	NumberFaces          uint32
	NumberMipmapLevels   uint32
	BytesKeyValueData    uint32
}

func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, fmt.Errorf("ktx: short header, want %d bytes got %d", headerSize, len(buf))
	}
	fields := make([]uint32, headerFieldCount)
	for i := range fields {
		fields[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
	h := Header{
		Endianness:           fields[0],
		GLType:               fields[1],
		GLTypeSize:           fields[2],
		GLFormat:             fields[3],
		GLInternalFormat:     fields[4],
		GLBaseInternalFormat: fields[5],
		PixelWidth:           fields[6],
		PixelHeight:          fields[7],
		PixelDepth:           fields[8],
		NumberArrayElements:  fields[9],
		NumberFaces:          fields[10],
		NumberMipmapLevels:   fields[11],
		BytesKeyValueData:    fields[12],
	}
	if h.Endianness != nativeEndianness {
		return Header{}, fmt.Errorf("ktx: unsupported endianness 0x%08x", h.Endianness)
	}
	return h, nil
}

func (h Header) encode() []byte {
	buf := make([]byte, headerSize)
	fields := []uint32{
		h.Endianness, h.GLType, h.GLTypeSize, h.GLFormat, h.GLInternalFormat,
		h.GLBaseInternalFormat, h.PixelWidth, h.PixelHeight, h.PixelDepth,
		h.NumberArrayElements, h.NumberFaces, h.NumberMipmapLevels, h.BytesKeyValueData,
	}
	for i, v := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], v)
	}
	return buf
}

func max1(v uint32) uint32 {
	if v < 1 {
		return 1
	}
	return v
}

func alignUp4(v uint32) uint32 {
	return (v + 3) &^ 3
}
