package ktx

import (
	"fmt"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// Reader is a random-access provider.Provider over a KTX stream. It
// computes each subresource's byte offset on demand by walking earlier
// mip levels; it never holds the whole file in memory.
type Reader struct {
	r          stream.Reader
	header     Header
	format     gpuformat.Format
	size       layout.Size
	mipCount   uint32
	layerCount uint32
	cubemap    bool
	dataStart  uint64
	scratch    []byte
}

// Open parses a KTX stream: identifier, header, and key/value metadata,
// then leaves the cursor at the start of the per-mip data.
func Open(r stream.Reader) (*Reader, error) {
	var ident [12]byte
	if err := r.Read(ident[:]); err != nil {
		return nil, fmt.Errorf("ktx: read identifier: %w", err)
	}
	if ident != Identifier {
		return nil, fmt.Errorf("ktx: bad identifier")
	}

	hbuf := make([]byte, headerSize)
	if err := r.Read(hbuf); err != nil {
		return nil, fmt.Errorf("ktx: read header: %w", err)
	}
	h, err := decodeHeader(hbuf)
	if err != nil {
		return nil, err
	}

	format, ok := lookupByInternalFormat(h.GLInternalFormat, h.GLFormat)
	if !ok {
		return nil, fmt.Errorf("ktx: unmapped glInternalFormat 0x%08x", h.GLInternalFormat)
	}

	if err := r.Seek(int64(h.BytesKeyValueData), stream.SeekCurrent); err != nil {
		return nil, fmt.Errorf("ktx: skip key/value data: %w", err)
	}
	dataStart, err := r.Address()
	if err != nil {
		return nil, fmt.Errorf("ktx: address after key/value data: %w", err)
	}

	size := layout.Size{X: max1(h.PixelWidth), Y: max1(h.PixelHeight), Z: max1(h.PixelDepth)}
	numArray := max1(h.NumberArrayElements)
	numFaces := max1(h.NumberFaces)

	if size.Z > 1 && (h.NumberArrayElements > 0 || numFaces > 1) {
		return nil, fmt.Errorf("ktx: cannot represent a 3-D image combined with array layers or cube faces")
	}

	mipCount := h.NumberMipmapLevels
	if mipCount == 0 {
		mipCount = 1
	}

	return &Reader{
		r:          r,
		header:     h,
		format:     format,
		size:       size,
		mipCount:   mipCount,
		layerCount: numArray * numFaces,
		cubemap:    numFaces == 6,
		dataStart:  dataStart,
	}, nil
}

func (k *Reader) Size() layout.Size        { return k.size }
func (k *Reader) Format() gpuformat.Format { return k.format }
func (k *Reader) MipCount() uint32         { return k.mipCount }
func (k *Reader) LayerCount() uint32       { return k.layerCount }
func (k *Reader) Cubemap() bool            { return k.cubemap }

// subresourceSize is the byte length of one face/array-element at mip,
// excluding the 4-byte imageSize prefix and any padding.
func (k *Reader) subresourceSize(mip uint32) (uint64, error) {
	return layout.SizeBytes(k.size, mip, k.format)
}

// offset computes the byte offset of (mip, layer) by walking earlier
// mip levels, each contributing a 4-byte imageSize prefix plus its
// layerCount faces, individually padded to 4 bytes. This intentionally
// recomputes sizes from the catalogue rather than trusting the on-disk
// imageSize field, which for a non-array cubemap names only one face's
// size even though all six are stored.
func (k *Reader) offset(mip, layer uint32) (uint64, error) {
	offset := k.dataStart
	for i := uint32(0); i < mip; i++ {
		faceSize, err := k.subresourceSize(i)
		if err != nil {
			return 0, err
		}
		aligned := uint64(alignUp4(uint32(faceSize)))
		offset += 4 + aligned*uint64(k.layerCount)
	}

	faceSize, err := k.subresourceSize(mip)
	if err != nil {
		return 0, err
	}
	aligned := uint64(alignUp4(uint32(faceSize)))
	offset += 4 // this mip's imageSize prefix
	offset += uint64(layer) * aligned
	return offset, nil
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
	off, err := k.offset(mip, layer)
	if err != nil {
		return 0, err
	}
	sz, err := k.subresourceSize(mip)
	if err != nil {
		return 0, err
	}
	if uint64(len(buf)) < sz {
		return 0, fmt.Errorf("ktx: buffer too short, want %d got %d", sz, len(buf))
	}

	if err := k.r.Seek(int64(off), stream.SeekSet); err != nil {
		return 0, fmt.Errorf("ktx: seek subresource (%d,%d): %w", mip, layer, err)
	}
	if err := k.r.Read(buf[:sz]); err != nil {
		return 0, fmt.Errorf("ktx: read subresource (%d,%d): %w", mip, layer, err)
	}
	return int(sz), nil
}

// BorrowRead reuses an internal scratch buffer, since a file-backed
// stream has no span to lend directly; the result is only valid until
// the next call on this Reader.
func (k *Reader) BorrowRead(mip, layer uint32) ([]byte, error) {
	sz, err := k.subresourceSize(mip)
	if err != nil {
		return nil, err
	}
	if uint64(cap(k.scratch)) < sz {
		k.scratch = make([]byte, sz)
	}
	k.scratch = k.scratch[:sz]
	if _, err := k.Read(mip, layer, k.scratch); err != nil {
		return nil, err
	}
	return k.scratch, nil
}

// Close releases nothing the Reader did not borrow; the caller retains
// ownership of the underlying stream.
func (k *Reader) Close() error { return nil }
