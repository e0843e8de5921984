// Package ktx2 reads and writes the modern KTX2 container: a fixed
// header, a level index ordered smallest-mip-first, optional DFD/KVD/SGD
// metadata blocks, and per-level image data with optional zlib or zstd
// supercompression.
package ktx2

import (
	"encoding/binary"
	"fmt"
)

// Identifier is the 12-byte magic every KTX2 file begins with.
var Identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

const fixedHeaderSize = 13*4 + 2*8 // 68 bytes
const levelIndexEntrySize = 3 * 8  // 24 bytes

// Header is the fixed-size portion of a KTX2 file following the
// identifier.
type Header struct {
	VkFormat               uint32
	TypeSize               uint32
	PixelWidth             uint32
	PixelHeight            uint32
	PixelDepth             uint32
	LayerCount             uint32
	FaceCount              uint32
	LevelCount             uint32
	SupercompressionScheme uint32
	DfdByteOffset          uint32
	DfdByteLength          uint32
	KvdByteOffset          uint32
	KvdByteLength          uint32
	SgdByteOffset          uint64
	SgdByteLength          uint64
}

func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < fixedHeaderSize {
		return Header{}, fmt.Errorf("ktx2: short header, want %d bytes got %d", fixedHeaderSize, len(buf))
	}
	u32 := func(off int) uint32 { return binary.LittleEndian.Uint32(buf[off : off+4]) }
	u64 := func(off int) uint64 { return binary.LittleEndian.Uint64(buf[off : off+8]) }

	return Header{
		VkFormat:               u32(0),
		TypeSize:               u32(4),
		PixelWidth:             u32(8),
		PixelHeight:            u32(12),
		PixelDepth:             u32(16),
		LayerCount:             u32(20),
		FaceCount:              u32(24),
		LevelCount:             u32(28),
		SupercompressionScheme: u32(32),
		DfdByteOffset:          u32(36),
		DfdByteLength:          u32(40),
		KvdByteOffset:          u32(44),
		KvdByteLength:          u32(48),
		SgdByteOffset:          u64(52),
		SgdByteLength:          u64(60),
	}, nil
}

func (h Header) encode() []byte {
	buf := make([]byte, fixedHeaderSize)
	put32 := func(off int, v uint32) { binary.LittleEndian.PutUint32(buf[off:off+4], v) }
	put64 := func(off int, v uint64) { binary.LittleEndian.PutUint64(buf[off:off+8], v) }

	put32(0, h.VkFormat)
	put32(4, h.TypeSize)
	put32(8, h.PixelWidth)
	put32(12, h.PixelHeight)
	put32(16, h.PixelDepth)
	put32(20, h.LayerCount)
	put32(24, h.FaceCount)
	put32(28, h.LevelCount)
	put32(32, h.SupercompressionScheme)
	put32(36, h.DfdByteOffset)
	put32(40, h.DfdByteLength)
	put32(44, h.KvdByteOffset)
	put32(48, h.KvdByteLength)
	put64(52, h.SgdByteOffset)
	put64(60, h.SgdByteLength)
	return buf
}

// Level is one entry of the level index: the byte range of a mip's
// data within the stream, and its inflated length when
// supercompressed.
type Level struct {
	ByteOffset             uint64
	ByteLength             uint64
	UncompressedByteLength uint64
}

func decodeLevel(buf []byte) Level {
	return Level{
		ByteOffset:             binary.LittleEndian.Uint64(buf[0:8]),
		ByteLength:             binary.LittleEndian.Uint64(buf[8:16]),
		UncompressedByteLength: binary.LittleEndian.Uint64(buf[16:24]),
	}
}

func (l Level) encode() []byte {
	buf := make([]byte, levelIndexEntrySize)
	binary.LittleEndian.PutUint64(buf[0:8], l.ByteOffset)
	binary.LittleEndian.PutUint64(buf[8:16], l.ByteLength)
	binary.LittleEndian.PutUint64(buf[16:24], l.UncompressedByteLength)
	return buf
}

func max1(v uint32) uint32 {
	if v < 1 {
		return 1
	}
	return v
}

func alignUp(v, to uint64) uint64 {
	if to <= 1 {
		return v
	}
	return (v + to - 1) / to * to
}
