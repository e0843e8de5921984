package ktx2

import (
	"fmt"

	"github.com/larkspur-oss/imgio/internal/supercompress"
	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// WriteOptions configures Write's supercompression scheme and level.
type WriteOptions struct {
	Scheme supercompress.Scheme
	// Level is passed through to the chosen scheme's compressor; ignored
	// when Scheme is None.
	Level int
}

// Write serializes p as a KTX2 file to w: identifier, header, a
// placeholder level index, then per-mip data (written base level
// first), before seeking back to patch the level index with real
// offsets and lengths.
func Write(w stream.Writer, p provider.Provider, opts WriteOptions) error {
	vkFormat, ok := vkFormatMap[p.Format()]
	if !ok {
		return fmt.Errorf("ktx2: format %v has no vkFormat mapping", p.Format())
	}
	ts, err := typeSize(p.Format())
	if err != nil {
		return err
	}

	initialOffset, err := w.Address()
	if err != nil {
		return fmt.Errorf("ktx2: address before identifier: %w", err)
	}

	size := p.Size()
	faces := uint32(1)
	if p.Cubemap() {
		faces = 6
	}
	layerCount := p.LayerCount() / faces
	mipCount := p.MipCount()

	h := Header{
		VkFormat:               vkFormat,
		TypeSize:               ts,
		PixelWidth:             size.X,
		PixelHeight:            pixelHeightField(size),
		PixelDepth:             pixelDepthField(size),
		LayerCount:             layerCountField(layerCount),
		FaceCount:              faces,
		LevelCount:             mipCount,
		SupercompressionScheme: uint32(opts.Scheme),
	}

	if err := stream.WriteFull(w, Identifier[:]); err != nil {
		return fmt.Errorf("ktx2: write identifier: %w", err)
	}
	if err := stream.WriteFull(w, h.encode()); err != nil {
		return fmt.Errorf("ktx2: write header: %w", err)
	}

	levelIndexOffset, err := w.Address()
	if err != nil {
		return err
	}
	placeholder := make([]byte, int(mipCount)*levelIndexEntrySize)
	if err := stream.WriteFull(w, placeholder); err != nil {
		return fmt.Errorf("ktx2: write placeholder level index: %w", err)
	}

	levels := make([]Level, mipCount)
	for mip := uint32(0); mip < mipCount; mip++ {
		faceSize, err := layout.SizeBytes(size, mip, p.Format())
		if err != nil {
			return err
		}

		elemSize, err := gpuformat.ElementSize(p.Format())
		if err != nil {
			return err
		}
		align := uint64(elemSize)
		if align < 4 {
			align = 4
		}
		if err := padTo(w, initialOffset, align); err != nil {
			return fmt.Errorf("ktx2: pad mip %d: %w", mip, err)
		}

		absOffset, err := w.Address()
		if err != nil {
			return err
		}

		uncompressed := make([]byte, faceSize*uint64(p.LayerCount()))
		for layer := uint32(0); layer < p.LayerCount(); layer++ {
			lo := faceSize * uint64(layer)
			if _, err := p.Read(mip, layer, uncompressed[lo:lo+faceSize]); err != nil {
				return fmt.Errorf("ktx2: read subresource (%d,%d): %w", mip, layer, err)
			}
		}

		var out []byte
		if opts.Scheme == supercompress.None {
			out = uncompressed
		} else {
			out, err = supercompress.Compress(opts.Scheme, uncompressed, opts.Level)
			if err != nil {
				return fmt.Errorf("ktx2: compress mip %d: %w", mip, err)
			}
		}

		if err := stream.WriteFull(w, out); err != nil {
			return fmt.Errorf("ktx2: write mip %d: %w", mip, err)
		}

		levels[mip] = Level{
			ByteOffset:             absOffset - initialOffset,
			ByteLength:             uint64(len(out)),
			UncompressedByteLength: uint64(len(uncompressed)),
		}
	}

	endOffset, err := w.Address()
	if err != nil {
		return err
	}

	if err := w.Seek(int64(levelIndexOffset), stream.SeekSet); err != nil {
		return fmt.Errorf("ktx2: seek back to level index: %w", err)
	}
	// The on-disk index is ordered smallest-mip-first; position p holds
	// the entry for mip (mipCount-1-p).
	for pos := uint32(0); pos < mipCount; pos++ {
		mip := mipCount - 1 - pos
		if err := stream.WriteFull(w, levels[mip].encode()); err != nil {
			return fmt.Errorf("ktx2: patch level index entry %d: %w", pos, err)
		}
	}

	if err := w.Seek(int64(endOffset), stream.SeekSet); err != nil {
		return fmt.Errorf("ktx2: seek to end: %w", err)
	}
	return nil
}

func padTo(w stream.Writer, base uint64, align uint64) error {
	addr, err := w.Address()
	if err != nil {
		return err
	}
	rel := addr - base
	target := alignUp(rel, align)
	if target == rel {
		return nil
	}
	return stream.WriteFull(w, make([]byte, target-rel))
}

func pixelHeightField(size layout.Size) uint32 {
	return size.Y
}

func pixelDepthField(size layout.Size) uint32 {
	if size.Z <= 1 {
		return 0
	}
	return size.Z
}

func layerCountField(layerCount uint32) uint32 {
	if layerCount <= 1 {
		return 0
	}
	return layerCount
}
