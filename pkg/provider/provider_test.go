package provider

import (
	"testing"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
)

func TestWrapSingle(t *testing.T) {
	size := layout.Size{X: 2, Y: 2, Z: 1}
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	p, err := WrapSingle(size, gpuformat.R8G8B8A8Unorm, data)
	if err != nil {
		t.Fatalf("WrapSingle: %v", err)
	}
	defer p.Close()

	buf := make([]byte, 16)
	n, err := p.Read(0, 0, buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 16 {
		t.Errorf("Read returned %d bytes, want 16", n)
	}

	if _, err := p.Read(1, 0, buf); err == nil {
		t.Error("expected error reading out-of-range mip")
	}

	span, err := p.BorrowRead(0, 0)
	if err != nil {
		t.Fatalf("BorrowRead: %v", err)
	}
	if len(span) != 16 {
		t.Errorf("BorrowRead span len = %d, want 16", len(span))
	}
}

func TestWrapSingleTooShort(t *testing.T) {
	size := layout.Size{X: 4, Y: 4, Z: 1}
	if _, err := WrapSingle(size, gpuformat.R8G8B8A8Unorm, make([]byte, 4)); err == nil {
		t.Error("expected error for undersized buffer")
	}
}

func TestPerSubresourceOwned(t *testing.T) {
	size := layout.Size{X: 2, Y: 2, Z: 1}
	blocks := [][]byte{
		make([]byte, 16), // mip0 layer0
		make([]byte, 16), // mip0 layer1
	}
	blocks[0][0] = 0xaa
	blocks[1][0] = 0xbb

	p, err := NewPerSubresourceOwned(size, gpuformat.R8G8B8A8Unorm, 1, 2, false, blocks)
	if err != nil {
		t.Fatalf("NewPerSubresourceOwned: %v", err)
	}
	defer p.Close()

	// Mutating the caller's slice must not affect the provider (owned copy).
	blocks[0][0] = 0xff
	span, err := p.BorrowRead(0, 0)
	if err != nil {
		t.Fatalf("BorrowRead: %v", err)
	}
	if span[0] != 0xaa {
		t.Errorf("owned copy mutated by caller: got %x, want 0xaa", span[0])
	}

	span1, err := p.BorrowRead(0, 1)
	if err != nil {
		t.Fatalf("BorrowRead layer 1: %v", err)
	}
	if span1[0] != 0xbb {
		t.Errorf("layer 1 span[0] = %x, want 0xbb", span1[0])
	}
}

func TestTightOwnedAndBorrowed(t *testing.T) {
	size := layout.Size{X: 4, Y: 4, Z: 1}
	mips := uint32(3)
	layers := uint32(2)
	count := layout.TightTexelCount(size, layers, mips, 0)
	data := make([]byte, count*4)
	for i := range data {
		data[i] = byte(i)
	}

	owned, err := NewTightOwned(size, gpuformat.R8G8B8A8Unorm, mips, layers, false, data)
	if err != nil {
		t.Fatalf("NewTightOwned: %v", err)
	}
	defer owned.Close()

	borrowed, err := NewTightBorrowed(size, gpuformat.R8G8B8A8Unorm, mips, layers, false, data)
	if err != nil {
		t.Fatalf("NewTightBorrowed: %v", err)
	}
	defer borrowed.Close()

	for mip := uint32(0); mip < mips; mip++ {
		for layer := uint32(0); layer < layers; layer++ {
			a, err := owned.BorrowRead(mip, layer)
			if err != nil {
				t.Fatalf("owned.BorrowRead(%d,%d): %v", mip, layer, err)
			}
			b, err := borrowed.BorrowRead(mip, layer)
			if err != nil {
				t.Fatalf("borrowed.BorrowRead(%d,%d): %v", mip, layer, err)
			}
			if len(a) != len(b) {
				t.Fatalf("span length mismatch at (%d,%d): %d vs %d", mip, layer, len(a), len(b))
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("span mismatch at (%d,%d) byte %d", mip, layer, i)
				}
			}
		}
	}
}

func TestAggregatorLayerStacking(t *testing.T) {
	size := layout.Size{X: 2, Y: 2, Z: 1}
	mk := func(b byte) *SingleBuffer {
		data := make([]byte, 16)
		for i := range data {
			data[i] = b
		}
		p, err := WrapSingle(size, gpuformat.R8G8B8A8Unorm, data)
		if err != nil {
			t.Fatalf("WrapSingle: %v", err)
		}
		return p
	}

	subs := []Provider{mk(1), mk(2), mk(3)}
	agg, err := NewAggregator(subs, false, false)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	defer agg.Close()

	if agg.LayerCount() != 3 {
		t.Errorf("LayerCount = %d, want 3", agg.LayerCount())
	}

	span, err := agg.BorrowRead(0, 1)
	if err != nil {
		t.Fatalf("BorrowRead: %v", err)
	}
	if span[0] != 2 {
		t.Errorf("layer 1 byte = %d, want 2", span[0])
	}
}

func TestAggregatorSliceStacking(t *testing.T) {
	size := layout.Size{X: 2, Y: 2, Z: 1}
	mk := func(b byte) *SingleBuffer {
		data := make([]byte, 16)
		for i := range data {
			data[i] = b
		}
		p, err := WrapSingle(size, gpuformat.R8G8B8A8Unorm, data)
		if err != nil {
			t.Fatalf("WrapSingle: %v", err)
		}
		return p
	}

	subs := []Provider{mk(10), mk(20)}
	agg, err := NewAggregator(subs, false, true)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	defer agg.Close()

	if agg.LayerCount() != 1 {
		t.Errorf("LayerCount = %d, want 1", agg.LayerCount())
	}
	if agg.Size().Z != 2 {
		t.Errorf("Size().Z = %d, want 2", agg.Size().Z)
	}

	buf := make([]byte, 32)
	n, err := agg.Read(0, 0, buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 32 {
		t.Errorf("Read n = %d, want 32", n)
	}
	if buf[0] != 10 || buf[16] != 20 {
		t.Errorf("slices not concatenated correctly: %v", buf)
	}
}

func TestAggregatorRejectsMismatch(t *testing.T) {
	a, err := WrapSingle(layout.Size{X: 2, Y: 2, Z: 1}, gpuformat.R8G8B8A8Unorm, make([]byte, 16))
	if err != nil {
		t.Fatalf("WrapSingle a: %v", err)
	}
	b, err := WrapSingle(layout.Size{X: 4, Y: 4, Z: 1}, gpuformat.R8G8B8A8Unorm, make([]byte, 64))
	if err != nil {
		t.Fatalf("WrapSingle b: %v", err)
	}
	if _, err := NewAggregator([]Provider{a, b}, false, false); err == nil {
		t.Error("expected error for mismatched sizes")
	}
}

func TestAggregatorCubemapRequiresMultipleOfSix(t *testing.T) {
	mk := func() Provider {
		p, _ := WrapSingle(layout.Size{X: 2, Y: 2, Z: 1}, gpuformat.R8G8B8A8Unorm, make([]byte, 16))
		return p
	}
	subs := []Provider{mk(), mk(), mk()}
	if _, err := NewAggregator(subs, true, false); err == nil {
		t.Error("expected error for cubemap with non-multiple-of-6 sub-providers")
	}
}
