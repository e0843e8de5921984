package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// pngSignature is the 8-byte magic every PNG stream begins with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// OpenPNG decodes a PNG stream and wraps it as a single-subresource
// provider. Color type and bit depth pick the catalogue format per a
// fixed promotion table: palette and RGB-without-alpha are promoted to
// straight RGBA by Go's own png decoder's underlying color model, 8- and
// 16-bit gray stay single-channel (gray with alpha arrives from the
// decoder as RGBA and is stored as RGBA), everything 8-bit is tagged
// sRGB to match the teacher's forced-sRGB convention for color data.
func OpenPNG(r stream.Reader) (provider.Provider, error) {
	var sig [8]byte
	if err := r.Read(sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	if !bytes.Equal(sig[:], pngSignature) {
		return nil, ErrInvalidType
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}

	img, err := png.Decode(asIOReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: png decode: %v", ErrInternal, err)
	}

	format, data, err := pngFormatAndPixels(img)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}
	return provider.WrapSingle(size, format, data)
}

func pngFormatAndPixels(img image.Image) (gpuformat.Format, []byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch im := img.(type) {
	case *image.Gray:
		out := make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(out[y*w:(y+1)*w], im.Pix[y*im.Stride:y*im.Stride+w])
		}
		return gpuformat.R8Srgb, out, nil

	case *image.Gray16:
		out := make([]byte, w*h*2)
		for y := 0; y < h; y++ {
			row := im.Pix[y*im.Stride : y*im.Stride+w*2]
			for x := 0; x < w; x++ {
				out[(y*w+x)*2] = row[x*2+1]
				out[(y*w+x)*2+1] = row[x*2]
			}
		}
		return gpuformat.R16Unorm, out, nil

	case *image.NRGBA64:
		out := make([]byte, w*h*8)
		for y := 0; y < h; y++ {
			row := im.Pix[y*im.Stride : y*im.Stride+w*8]
			for x := 0; x < w; x++ {
				for c := 0; c < 4; c++ {
					out[(y*w+x)*8+c*2] = row[x*8+c*2+1]
					out[(y*w+x)*8+c*2+1] = row[x*8+c*2]
				}
			}
		}
		return gpuformat.R16G16B16A16Unorm, out, nil

	case *image.NRGBA:
		out := make([]byte, w*h*4)
		for y := 0; y < h; y++ {
			copy(out[y*w*4:(y+1)*w*4], im.Pix[y*im.Stride:y*im.Stride+w*4])
		}
		return gpuformat.R8G8B8A8Srgb, out, nil

	case *image.Paletted:
		out := make([]byte, w*h*4)
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, a := im.At(x, y).RGBA()
				out[i] = byte(r >> 8)
				out[i+1] = byte(g >> 8)
				out[i+2] = byte(bl >> 8)
				out[i+3] = byte(a >> 8)
				i += 4
			}
		}
		return gpuformat.R8G8B8A8Srgb, out, nil

	default:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
			}
		}
		return gpuformat.R8G8B8A8Srgb, dst.Pix, nil
	}
}
