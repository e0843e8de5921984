package gpuformat

import "testing"

func TestElementSize(t *testing.T) {
	cases := []struct {
		f    Format
		want uint32
	}{
		{R8G8B8A8Unorm, 4},
		{R8G8B8Unorm, 3},
		{R16G16B16A16Sfloat, 8},
		{R32G32B32A32Sfloat, 16},
		{A2B10G10R10UnormPack32, 4},
		{R4G4UnormPack8, 1},
		{R5G6B5UnormPack16, 2},
		{D16UnormS8Uint, 3},
		{D24UnormS8Uint, 4},
		{D32SfloatS8Uint, 5},
		{S8Uint, 1},
		{E5B9G9R9UfloatPack32, 4},
	}

	for _, c := range cases {
		got, err := ElementSize(c.f)
		if err != nil {
			t.Fatalf("ElementSize(%v): %v", c.f, err)
		}
		if got != c.want {
			t.Errorf("ElementSize(%v) = %d, want %d", c.f, got, c.want)
		}
	}
}

func TestElementSizeAspect(t *testing.T) {
	depth, err := ElementSizeAspect(D24UnormS8Uint, AspectDepth)
	if err != nil {
		t.Fatalf("ElementSizeAspect depth: %v", err)
	}
	if depth != 3 {
		t.Errorf("depth aspect size = %d, want 3", depth)
	}

	stencil, err := ElementSizeAspect(D24UnormS8Uint, AspectStencil)
	if err != nil {
		t.Fatalf("ElementSizeAspect stencil: %v", err)
	}
	if stencil != 1 {
		t.Errorf("stencil aspect size = %d, want 1", stencil)
	}
}

func TestBlockSize(t *testing.T) {
	if bs := BlockSize(R8G8B8A8Unorm); bs != ([3]uint32{1, 1, 1}) {
		t.Errorf("non-block format has extent %v", bs)
	}
	if bs := BlockSize(Bc1RgbUnormBlock); bs != ([3]uint32{4, 4, 1}) {
		t.Errorf("bc1 extent = %v, want 4x4x1", bs)
	}
	if bs := BlockSize(Astc8x8UnormBlock); bs != ([3]uint32{8, 8, 1}) {
		t.Errorf("astc8x8 extent = %v, want 8x8x1", bs)
	}
}

func TestIsSRGBAndToggle(t *testing.T) {
	if !IsSRGB(R8G8B8A8Srgb) {
		t.Errorf("R8G8B8A8Srgb should be sRGB")
	}
	if IsSRGB(R8G8B8A8Unorm) {
		t.Errorf("R8G8B8A8Unorm should not be sRGB")
	}

	if got := ToggleSRGB(R8G8B8A8Unorm); got != R8G8B8A8Srgb {
		t.Errorf("ToggleSRGB(unorm) = %v, want srgb", got)
	}
	if got := ToggleSRGB(R8G8B8A8Srgb); got != R8G8B8A8Unorm {
		t.Errorf("ToggleSRGB(srgb) = %v, want unorm", got)
	}
	if got := ToggleSRGB(Bc7UnormBlock); got != Bc7SrgbBlock {
		t.Errorf("ToggleSRGB(bc7 unorm) = %v, want bc7 srgb", got)
	}

	// A format without a paired variant is returned unchanged.
	if got := ToggleSRGB(R16G16B16A16Sfloat); got != R16G16B16A16Sfloat {
		t.Errorf("ToggleSRGB(unpaired) changed format: %v", got)
	}
}

func TestLookupUnknownFormat(t *testing.T) {
	if _, ok := Lookup(Format(1 << 30)); ok {
		t.Errorf("Lookup should fail for an unregistered format id")
	}
	if _, err := ElementSize(Format(1 << 30)); err == nil {
		t.Errorf("ElementSize should error for an unregistered format id")
	}
}
