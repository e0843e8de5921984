package texel

import (
	"bytes"
	"math"
	"testing"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
)

func roundTrip(t *testing.T, f gpuformat.Format, c Color, tol float64) Color {
	t.Helper()
	sz, err := gpuformat.ElementSize(f)
	if err != nil {
		t.Fatalf("ElementSize(%v): %v", f, err)
	}
	buf := make([]byte, sz)
	if err := Write(f, buf, c); err != nil {
		t.Fatalf("Write(%v): %v", f, err)
	}
	got, err := Read(f, buf)
	if err != nil {
		t.Fatalf("Read(%v): %v", f, err)
	}
	return got
}

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestUnormRoundTrip(t *testing.T) {
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 0.8}
	got := roundTrip(t, gpuformat.R8G8B8A8Unorm, c, 1.0/255)
	if !within(got.R, c.R, 1.0/255) || !within(got.A, c.A, 1.0/255) {
		t.Errorf("R8G8B8A8Unorm round trip = %+v, want near %+v", got, c)
	}
}

func TestSnormRoundTrip(t *testing.T) {
	c := Color{R: -0.5, G: 0.5, B: -1, A: 1}
	got := roundTrip(t, gpuformat.R8G8B8A8Snorm, c, 1.0/127)
	if !within(got.R, c.R, 1.0/127) || !within(got.B, -1, 1.0/127) {
		t.Errorf("R8G8B8A8Snorm round trip = %+v, want near %+v", got, c)
	}
}

func TestBGRASwizzle(t *testing.T) {
	c := Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	buf := make([]byte, 4)
	if err := Write(gpuformat.B8G8R8A8Unorm, buf, c); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Wire order is B,G,R,A.
	want := []byte{
		byte(math.Round(0.3 * 255)),
		byte(math.Round(0.2 * 255)),
		byte(math.Round(0.1 * 255)),
		byte(math.Round(0.4 * 255)),
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}

	got, err := Read(gpuformat.B8G8R8A8Unorm, buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !within(got.R, c.R, 1.0/255) || !within(got.B, c.B, 1.0/255) {
		t.Errorf("B8G8R8A8Unorm round trip = %+v, want near %+v", got, c)
	}
}

func TestPackedA2B10G10R10(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0.5, A: 1}
	got := roundTrip(t, gpuformat.A2B10G10R10UnormPack32, c, 1.0/1023)
	if !within(got.R, c.R, 1.0/1023) {
		t.Errorf("A2B10G10R10 round trip R = %v, want %v", got.R, c.R)
	}
}

func TestSfloat16RoundTrip(t *testing.T) {
	c := Color{R: 1.5, G: -2.25, B: 0, A: 1}
	got := roundTrip(t, gpuformat.R16G16B16A16Sfloat, c, 1e-3)
	if !within(got.R, c.R, 1e-3) || !within(got.G, c.G, 1e-3) {
		t.Errorf("sfloat16 round trip = %+v, want %+v", got, c)
	}
}

func TestSRGBTransferRoundTrip(t *testing.T) {
	c := Color{R: 0.22, G: 0.5, B: 0.8, A: 0.5}
	got := roundTrip(t, gpuformat.R8G8B8A8Srgb, c, 0.01)
	if !within(got.R, c.R, 0.01) || !within(got.A, c.A, 1.0/255) {
		t.Errorf("srgb round trip = %+v, want near %+v", got, c)
	}
}

func TestSRGBTransferMonotone(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 10; i++ {
		v := float64(i) / 10
		enc := LinearToSRGB(v)
		if enc <= prev {
			t.Fatalf("LinearToSRGB not monotone at %v", v)
		}
		prev = enc
		if got := SRGBToLinear(enc); !within(got, v, 1e-9) {
			t.Errorf("SRGBToLinear(LinearToSRGB(%v)) = %v", v, got)
		}
	}
}

func TestSharedExponentRoundTrip(t *testing.T) {
	c := Color{R: 1.0, G: 2.5, B: 0.0, A: 1}
	got := roundTrip(t, gpuformat.E5B9G9R9UfloatPack32, c, 0.01)
	if !within(got.R, c.R, 0.01) || !within(got.G, c.G, 0.01) || got.B != 0 {
		t.Errorf("shared exponent round trip = %+v, want near %+v", got, c)
	}
}

func TestDepthStencilD24S8(t *testing.T) {
	c := Color{R: 0.75, G: 128}

	buf := make([]byte, 4)
	if err := Write(gpuformat.D24UnormS8Uint, buf, c); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// 0.75 * (2^24-1) rounds to 12582911 (0xBFFFFF); the 24-bit depth
	// field is big-endian (MSB first), stencil is the final byte.
	want := []byte{0xbf, 0xff, 0xff, 128}
	if !bytes.Equal(buf, want) {
		t.Errorf("wire bytes = %#v, want %#v", buf, want)
	}

	got, err := Read(gpuformat.D24UnormS8Uint, buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !within(got.R, c.R, 1e-6) {
		t.Errorf("depth = %v, want %v", got.R, c.R)
	}
	if got.G != 128 {
		t.Errorf("stencil = %v, want 128", got.G)
	}
}

func TestUnsupportedFormatErrors(t *testing.T) {
	buf := make([]byte, 8)
	if _, err := Read(gpuformat.Bc1RgbUnormBlock, buf); err == nil {
		t.Error("expected error reading a block-compressed format")
	}
	if err := Write(gpuformat.Bc1RgbUnormBlock, buf, Color{}); err == nil {
		t.Error("expected error writing a block-compressed format")
	}
}

func TestConvert(t *testing.T) {
	src := make([]byte, 4)
	if err := Write(gpuformat.R8G8B8A8Unorm, src, Color{R: 1, G: 0, B: 0.5, A: 1}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	dst := make([]byte, 4)
	if err := Convert(gpuformat.R8G8B8A8Unorm, src, gpuformat.B8G8R8A8Unorm, dst); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	got, err := Read(gpuformat.B8G8R8A8Unorm, dst)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !within(got.R, 1, 1.0/255) || !within(got.B, 0.5, 1.0/255) {
		t.Errorf("converted color = %+v", got)
	}
}
