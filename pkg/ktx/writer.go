package ktx

import (
	"fmt"

	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

var zeroPad [4]byte

// Write serializes p as a KTX file to w: identifier, header, an empty
// key/value block, then per-mip data with each face padded to 4 bytes.
func Write(w stream.Writer, p provider.Provider) error {
	entry, ok := formatMap[p.Format()]
	if !ok {
		return fmt.Errorf("ktx: format %v has no OpenGL mapping", p.Format())
	}

	size := p.Size()
	h := Header{
		Endianness:           nativeEndianness,
		GLType:               entry.glType,
		GLTypeSize:           entry.glTypeSize,
		GLFormat:             entry.glFormat,
		GLInternalFormat:     entry.glInternalFormat,
		GLBaseInternalFormat: entry.glBaseInternalFormat,
		PixelWidth:           size.X,
		PixelHeight:          size.Y,
		PixelDepth:           pixelDepthField(size),
		NumberArrayElements:  0,
		NumberFaces:          facesField(p),
		NumberMipmapLevels:   p.MipCount(),
		BytesKeyValueData:    0,
	}
	if p.LayerCount() > facesField(p) {
		h.NumberArrayElements = p.LayerCount() / facesField(p)
	}

	if err := stream.WriteFull(w, Identifier[:]); err != nil {
		return fmt.Errorf("ktx: write identifier: %w", err)
	}
	if err := stream.WriteFull(w, h.encode()); err != nil {
		return fmt.Errorf("ktx: write header: %w", err)
	}

	for mip := uint32(0); mip < p.MipCount(); mip++ {
		sz, err := layout.SizeBytes(size, mip, p.Format())
		if err != nil {
			return err
		}

		imageSize := uint32(sz) * p.LayerCount()
		if h.NumberArrayElements == 0 && h.NumberFaces == 6 {
			// Non-array cubemap quirk: the declared imageSize names one
			// face, even though all six faces are stored.
			imageSize = uint32(sz)
		}

		if err := writeUint32(w, imageSize); err != nil {
			return fmt.Errorf("ktx: write imageSize for mip %d: %w", mip, err)
		}

		buf := make([]byte, sz)
		for layer := uint32(0); layer < p.LayerCount(); layer++ {
			if _, err := p.Read(mip, layer, buf); err != nil {
				return fmt.Errorf("ktx: read subresource (%d,%d): %w", mip, layer, err)
			}
			if err := stream.WriteFull(w, buf); err != nil {
				return fmt.Errorf("ktx: write subresource (%d,%d): %w", mip, layer, err)
			}
			if pad := 4 - int(sz%4); pad != 4 {
				if err := stream.WriteFull(w, zeroPad[:pad]); err != nil {
					return fmt.Errorf("ktx: pad subresource (%d,%d): %w", mip, layer, err)
				}
			}
		}
	}

	return nil
}

func pixelDepthField(size layout.Size) uint32 {
	if size.Z <= 1 {
		return 0
	}
	return size.Z
}

func facesField(p provider.Provider) uint32 {
	if p.Cubemap() {
		return 6
	}
	return 1
}

func writeUint32(w stream.Writer, v uint32) error {
	var buf [4]byte
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	return stream.WriteFull(w, buf[:])
}
