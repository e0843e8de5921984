package ktx

import (
	"testing"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

func buildProvider(t *testing.T, size layout.Size, mips uint32, data []byte) provider.Provider {
	t.Helper()
	p, err := provider.NewTightOwned(size, gpuformat.R8G8B8A8Unorm, mips, 1, false, data)
	if err != nil {
		t.Fatalf("NewTightOwned: %v", err)
	}
	return p
}

func TestWriteReadRoundTrip(t *testing.T) {
	size := layout.Size{X: 4, Y: 4, Z: 1}
	mips := layout.NumMipLevels(size)
	count := layout.TightTexelCount(size, 1, mips, 0)
	data := make([]byte, count*4)
	for i := range data {
		data[i] = byte(i)
	}

	src := buildProvider(t, size, mips, data)
	defer src.Close()

	w := stream.NewMemoryWriter()
	if err := Write(w, src); err != nil {
		t.Fatalf("Write: %v", err)
	}

	r := stream.NewMemoryReader(w.Bytes())
	kr, err := Open(r)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer kr.Close()

	if kr.Size() != size {
		t.Errorf("Size = %+v, want %+v", kr.Size(), size)
	}
	if kr.Format() != gpuformat.R8G8B8A8Unorm {
		t.Errorf("Format = %v, want R8G8B8A8Unorm", kr.Format())
	}
	if kr.MipCount() != mips {
		t.Errorf("MipCount = %d, want %d", kr.MipCount(), mips)
	}

	for mip := uint32(0); mip < mips; mip++ {
		want, err := src.BorrowRead(mip, 0)
		if err != nil {
			t.Fatalf("src.BorrowRead(%d): %v", mip, err)
		}
		got, err := kr.BorrowRead(mip, 0)
		if err != nil {
			t.Fatalf("kr.BorrowRead(%d): %v", mip, err)
		}
		if len(got) != len(want) {
			t.Fatalf("mip %d: length %d, want %d", mip, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("mip %d: byte %d mismatch: got %d, want %d", mip, i, got[i], want[i])
			}
		}
	}
}

func TestOpenRejectsBadIdentifier(t *testing.T) {
	r := stream.NewMemoryReader(make([]byte, 64))
	if _, err := Open(r); err == nil {
		t.Error("expected error for bad identifier")
	}
}

func TestUnmappedFormatRejectedOnWrite(t *testing.T) {
	size := layout.Size{X: 2, Y: 2, Z: 1}
	p, err := provider.WrapSingle(size, gpuformat.Bc1RgbUnormBlock, make([]byte, 8))
	if err != nil {
		t.Fatalf("WrapSingle: %v", err)
	}
	defer p.Close()

	w := stream.NewMemoryWriter()
	if err := Write(w, p); err == nil {
		t.Error("expected error writing an unmapped format")
	}
}
