package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// WritePNG encodes subresource (0,0) of p to PNG and writes it to w.
// Only the formats the reference writer itself supported are legal
// here: gray8, gray16, rgb8, rgba8, rgb16, rgba16 (srgb and unorm
// variants alike, since PNG carries no gamma tag this package writes).
// Anything else is ErrUnsupportedFormat.
func WritePNG(w stream.Writer, p provider.Provider) error {
	if p.MipCount() == 0 || p.LayerCount() == 0 {
		return ErrEmpty
	}
	size := p.Size()
	if size.X == 0 || size.Y == 0 {
		return ErrEmpty
	}
	n, err := provider.SubresourceSize(p, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCantWrite, err)
	}
	buf := make([]byte, n)
	if _, err := p.Read(0, 0, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrReadError, err)
	}

	img, err := pngImageFromPixels(p.Format(), int(size.X), int(size.Y), buf)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	out.Grow(len(buf))
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&out, img); err != nil {
		return fmt.Errorf("%w: png encode: %v", ErrCantWrite, err)
	}
	if err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrCantWrite, err)
	}
	return nil
}

func pngImageFromPixels(format gpuformat.Format, w, h int, buf []byte) (image.Image, error) {
	switch format {
	case gpuformat.R8Unorm, gpuformat.R8Srgb:
		img := image.NewGray(image.Rect(0, 0, w, h))
		copy(img.Pix, buf[:w*h])
		return img, nil

	case gpuformat.R16Unorm:
		img := image.NewGray16(image.Rect(0, 0, w, h))
		swapLE16ToBE(img.Pix, buf, w*h)
		return img, nil

	case gpuformat.R8G8B8Unorm, gpuformat.R8G8B8Srgb:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			img.Pix[i*4] = buf[i*3]
			img.Pix[i*4+1] = buf[i*3+1]
			img.Pix[i*4+2] = buf[i*3+2]
			img.Pix[i*4+3] = 0xFF
		}
		return img, nil

	case gpuformat.R8G8B8A8Unorm, gpuformat.R8G8B8A8Srgb:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		copy(img.Pix, buf[:w*h*4])
		return img, nil

	case gpuformat.R16G16B16Unorm:
		img := image.NewNRGBA64(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			swapLE16ToBE(img.Pix[i*8:i*8+6], buf[i*6:i*6+6], 3)
			img.Pix[i*8+6] = 0xFF
			img.Pix[i*8+7] = 0xFF
		}
		return img, nil

	case gpuformat.R16G16B16A16Unorm:
		img := image.NewNRGBA64(image.Rect(0, 0, w, h))
		swapLE16ToBE(img.Pix, buf, w*h*4)
		return img, nil

	default:
		return nil, fmt.Errorf("%w: png write does not support %v", ErrUnsupportedFormat, format)
	}
}

// swapLE16ToBE copies n little-endian uint16 samples from src to dst,
// converting to the big-endian layout Go's image package requires for
// 16-bit pixel data.
func swapLE16ToBE(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		dst[i*2] = src[i*2+1]
		dst[i*2+1] = src[i*2]
	}
}
