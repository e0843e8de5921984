package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

func encodeTestPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestOpenPNGRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.NRGBA{R: byte(x * 10), G: byte(y * 10), B: 200, A: 255})
		}
	}
	raw := encodeTestPNG(t, src)

	r := stream.NewMemoryReader(raw)
	p, err := OpenPNG(r)
	if err != nil {
		t.Fatalf("OpenPNG: %v", err)
	}
	defer p.Close()

	if p.Format() != gpuformat.R8G8B8A8Srgb {
		t.Fatalf("format = %v, want R8G8B8A8Srgb", p.Format())
	}
	size := p.Size()
	if size.X != 3 || size.Y != 2 {
		t.Fatalf("size = %v, want 3x2", size)
	}
}

func TestOpenPNGGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 16)
	}
	raw := encodeTestPNG(t, src)

	r := stream.NewMemoryReader(raw)
	p, err := OpenPNG(r)
	if err != nil {
		t.Fatalf("OpenPNG: %v", err)
	}
	defer p.Close()

	if p.Format() != gpuformat.R8Srgb {
		t.Fatalf("format = %v, want R8Srgb", p.Format())
	}
}

func TestOpenPNGInvalidSignature(t *testing.T) {
	r := stream.NewMemoryReader([]byte("not a png at all, just junk bytes"))
	if _, err := OpenPNG(r); err == nil {
		t.Fatal("expected error for invalid signature")
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 5)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}
	raw := encodeTestPNG(t, src)

	p, err := OpenPNG(stream.NewMemoryReader(raw))
	if err != nil {
		t.Fatalf("OpenPNG: %v", err)
	}
	defer p.Close()

	w := stream.NewMemoryWriter()
	if err := WritePNG(w, p); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	p2, err := OpenPNG(stream.NewMemoryReader(w.Bytes()))
	if err != nil {
		t.Fatalf("OpenPNG (round trip): %v", err)
	}
	defer p2.Close()

	if p2.Format() != p.Format() {
		t.Fatalf("round-tripped format %v, want %v", p2.Format(), p.Format())
	}
	if p2.Size() != p.Size() {
		t.Fatalf("round-tripped size %v, want %v", p2.Size(), p.Size())
	}

	a, err := p.BorrowRead(0, 0)
	if err != nil {
		t.Fatalf("BorrowRead: %v", err)
	}
	b, err := p2.BorrowRead(0, 0)
	if err != nil {
		t.Fatalf("BorrowRead (round trip): %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("round-tripped pixel data mismatch: %v vs %v", a, b)
	}
}
