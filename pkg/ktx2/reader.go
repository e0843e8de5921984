package ktx2

import (
	"fmt"

	"github.com/larkspur-oss/imgio/internal/supercompress"
	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// Reader is a random-access provider.Provider over a KTX2 stream.
// Uncompressed levels are read directly by seek-and-slice; zlib- or
// zstd-supercompressed levels are inflated once per mip and memoized.
type Reader struct {
	r              stream.Reader
	header         Header
	format         gpuformat.Format
	size           layout.Size
	mipCount       uint32
	faces          uint32
	layerCount     uint32
	initialOffset  uint64
	levels         []Level
	scheme         supercompress.Scheme
	inflated       map[uint32][]byte
	scratch        []byte
}

// Open parses a KTX2 stream's identifier, fixed header, and level
// index. DFD/KVD/SGD blocks are skipped; this engine does not interpret
// them.
func Open(r stream.Reader) (*Reader, error) {
	initialOffset, err := r.Address()
	if err != nil {
		return nil, fmt.Errorf("ktx2: address before identifier: %w", err)
	}

	var ident [12]byte
	if err := r.Read(ident[:]); err != nil {
		return nil, fmt.Errorf("ktx2: read identifier: %w", err)
	}
	if ident != Identifier {
		return nil, fmt.Errorf("ktx2: bad identifier")
	}

	hbuf := make([]byte, fixedHeaderSize)
	if err := r.Read(hbuf); err != nil {
		return nil, fmt.Errorf("ktx2: read header: %w", err)
	}
	h, err := decodeHeader(hbuf)
	if err != nil {
		return nil, err
	}

	if h.VkFormat == 0 {
		return nil, fmt.Errorf("ktx2: undefined vkFormat")
	}
	format, ok := reverseVkFormatMap[h.VkFormat]
	if !ok {
		return nil, fmt.Errorf("ktx2: unmapped vkFormat %d", h.VkFormat)
	}

	scheme := supercompress.Scheme(h.SupercompressionScheme)
	if scheme != supercompress.None && scheme != supercompress.Zlib && scheme != supercompress.Zstd {
		return nil, fmt.Errorf("ktx2: unsupported supercompression scheme %v", scheme)
	}

	levelCount := max1(h.LevelCount)
	levels := make([]Level, levelCount)
	entryBuf := make([]byte, levelIndexEntrySize)
	for i := range levels {
		if err := r.Read(entryBuf); err != nil {
			return nil, fmt.Errorf("ktx2: read level index entry %d: %w", i, err)
		}
		levels[i] = decodeLevel(entryBuf)
	}

	size := layout.Size{X: max1(h.PixelWidth), Y: max1(h.PixelHeight), Z: max1(h.PixelDepth)}
	layerCount := max1(h.LayerCount)
	faces := max1(h.FaceCount)

	return &Reader{
		r:             r,
		header:        h,
		format:        format,
		size:          size,
		mipCount:      levelCount,
		faces:         faces,
		layerCount:    layerCount * faces,
		initialOffset: initialOffset,
		levels:        levels,
		scheme:        scheme,
		inflated:      make(map[uint32][]byte),
	}, nil
}

func (k *Reader) Size() layout.Size        { return k.size }
func (k *Reader) Format() gpuformat.Format { return k.format }
func (k *Reader) MipCount() uint32         { return k.mipCount }
func (k *Reader) LayerCount() uint32       { return k.layerCount }
func (k *Reader) Cubemap() bool            { return k.faces == 6 }

// levelIndexForMip maps a mip level to its position in the on-disk
// level index, which is ordered smallest-mip-first (mip 0, the base
// level, is the last entry).
func (k *Reader) levelIndexForMip(mip uint32) uint32 {
	return k.mipCount - 1 - mip
}

func (k *Reader) faceSize(mip uint32) (uint64, error) {
	return layout.SizeBytes(k.size, mip, k.format)
}

func (k *Reader) checkRange(mip, layer uint32) error {
	if mip >= k.mipCount {
		return fmt.Errorf("%w: mip %d >= mipCount %d", provider.ErrSubresource, mip, k.mipCount)
	}
	if layer >= k.layerCount {
		return fmt.Errorf("%w: layer %d >= layerCount %d", provider.ErrSubresource, layer, k.layerCount)
	}
	return nil
}

func (k *Reader) Read(mip, layer uint32, buf []byte) (int, error) {
	if err := k.checkRange(mip, layer); err != nil {
		return 0, err
	}

	fSize, err := k.faceSize(mip)
	if err != nil {
		return 0, err
	}
	if uint64(len(buf)) < fSize {
		return 0, fmt.Errorf("ktx2: buffer too short, want %d got %d", fSize, len(buf))
	}

	level := k.levels[k.levelIndexForMip(mip)]

	if k.scheme == supercompress.None {
		off := k.initialOffset + level.ByteOffset + fSize*uint64(layer)
		if err := k.r.Seek(int64(off), stream.SeekSet); err != nil {
			return 0, fmt.Errorf("ktx2: seek subresource (%d,%d): %w", mip, layer, err)
		}
		if err := k.r.Read(buf[:fSize]); err != nil {
			return 0, fmt.Errorf("ktx2: read subresource (%d,%d): %w", mip, layer, err)
		}
		return int(fSize), nil
	}

	data, err := k.inflateLevel(mip, level)
	if err != nil {
		return 0, err
	}
	lo := fSize * uint64(layer)
	hi := lo + fSize
	if hi > uint64(len(data)) {
		return 0, fmt.Errorf("ktx2: inflated level %d too short for layer %d", mip, layer)
	}
	return copy(buf, data[lo:hi]), nil
}

func (k *Reader) inflateLevel(mip uint32, level Level) ([]byte, error) {
	if data, ok := k.inflated[mip]; ok {
		return data, nil
	}

	compressed := make([]byte, level.ByteLength)
	if err := k.r.Seek(int64(k.initialOffset+level.ByteOffset), stream.SeekSet); err != nil {
		return nil, fmt.Errorf("ktx2: seek level %d: %w", mip, err)
	}
	if err := k.r.Read(compressed); err != nil {
		return nil, fmt.Errorf("ktx2: read compressed level %d: %w", mip, err)
	}

	data, err := supercompress.Decompress(k.scheme, compressed, int(level.UncompressedByteLength))
	if err != nil {
		return nil, fmt.Errorf("ktx2: inflate level %d: %w", mip, err)
	}
	k.inflated[mip] = data
	return data, nil
}

// BorrowRead reuses an internal scratch buffer for uncompressed reads;
// for supercompressed levels it returns a slice directly into the
// memoized inflated buffer, valid for the Reader's lifetime.
func (k *Reader) BorrowRead(mip, layer uint32) ([]byte, error) {
	if err := k.checkRange(mip, layer); err != nil {
		return nil, err
	}

	if k.scheme != supercompress.None {
		fSize, err := k.faceSize(mip)
		if err != nil {
			return nil, err
		}
		level := k.levels[k.levelIndexForMip(mip)]
		data, err := k.inflateLevel(mip, level)
		if err != nil {
			return nil, err
		}
		lo := fSize * uint64(layer)
		return data[lo : lo+fSize], nil
	}

	fSize, err := k.faceSize(mip)
	if err != nil {
		return nil, err
	}
	if uint64(cap(k.scratch)) < fSize {
		k.scratch = make([]byte, fSize)
	}
	k.scratch = k.scratch[:fSize]
	if _, err := k.Read(mip, layer, k.scratch); err != nil {
		return nil, err
	}
	return k.scratch, nil
}

// Close releases nothing the Reader did not borrow; the caller retains
// ownership of the underlying stream.
func (k *Reader) Close() error { return nil }
