package codec

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/larkspur-oss/imgio/pkg/stream"
)

// ioReader adapts a stream.Reader to io.Reader for handoff to
// decoders built against the standard library's image.Image pipeline.
type ioReader struct {
	r stream.Reader
}

func asIOReader(r stream.Reader) io.Reader { return &ioReader{r: r} }

func (a *ioReader) Read(p []byte) (int, error) {
	n, err := a.r.ReadPartial(p)
	if err != nil {
		return int(n), err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return int(n), nil
}

// readAll reads the whole of r into memory from offset 0, whatever the
// cursor position was on entry; the cursor is left at the end.
func readAll(r stream.Reader) ([]byte, error) {
	if err := r.Seek(0, stream.SeekEnd); err != nil {
		return nil, fmt.Errorf("%w: seek end: %v", ErrCantOpen, err)
	}
	end, err := r.Address()
	if err != nil {
		return nil, fmt.Errorf("%w: address: %v", ErrCantOpen, err)
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: seek start: %v", ErrCantOpen, err)
	}
	buf := make([]byte, end)
	if err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedEnd, err)
	}
	return buf, nil
}

// toStraightRGBA converts an arbitrary image.Image to a tightly packed
// 8-bit straight-alpha RGBA buffer, row-major, no stride padding.
func toStraightRGBA(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == w*4 && b.Min.X == 0 && b.Min.Y == 0 {
		return append([]byte(nil), nrgba.Pix...)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix
}

// toFloatRGBA converts an arbitrary image.Image to a tightly packed
// 32-bit-per-channel float RGBA buffer, by normalizing each color's
// 16-bit RGBA() components to [0,1]. This loses precision for true HDR
// sources whose concrete type exposes wider channels only through a
// non-standard accessor, a limitation of relying on the image.Image
// interface alone.
func toFloatRGBA(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h*16)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			putF32(out[i:], float32(r)/65535)
			putF32(out[i+4:], float32(g)/65535)
			putF32(out[i+8:], float32(bl)/65535)
			putF32(out[i+12:], float32(a)/65535)
			i += 16
		}
	}
	return out
}

func putF32(buf []byte, v float32) {
	bits := math.Float32bits(v)
	buf[0] = byte(bits)
	buf[1] = byte(bits >> 8)
	buf[2] = byte(bits >> 16)
	buf[3] = byte(bits >> 24)
}
