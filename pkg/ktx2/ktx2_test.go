package ktx2

import (
	"testing"

	"github.com/larkspur-oss/imgio/internal/supercompress"
	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

func buildTightProvider(t *testing.T, size layout.Size, mips uint32) provider.Provider {
	t.Helper()
	count := layout.TightTexelCount(size, 1, mips, 0)
	data := make([]byte, count*4)
	for i := range data {
		data[i] = byte(i * 7)
	}
	p, err := provider.NewTightOwned(size, gpuformat.R8G8B8A8Unorm, mips, 1, false, data)
	if err != nil {
		t.Fatalf("NewTightOwned: %v", err)
	}
	return p
}

func compareAllMips(t *testing.T, want provider.Provider, got *Reader) {
	t.Helper()
	for mip := uint32(0); mip < want.MipCount(); mip++ {
		w, err := want.BorrowRead(mip, 0)
		if err != nil {
			t.Fatalf("want.BorrowRead(%d): %v", mip, err)
		}
		g, err := got.BorrowRead(mip, 0)
		if err != nil {
			t.Fatalf("got.BorrowRead(%d): %v", mip, err)
		}
		if len(w) != len(g) {
			t.Fatalf("mip %d: length %d vs %d", mip, len(w), len(g))
		}
		for i := range w {
			if w[i] != g[i] {
				t.Fatalf("mip %d: byte %d mismatch: %d vs %d", mip, i, w[i], g[i])
			}
		}
	}
}

func TestWriteReadRoundTripUncompressed(t *testing.T) {
	size := layout.Size{X: 4, Y: 4, Z: 1}
	mips := layout.NumMipLevels(size)
	src := buildTightProvider(t, size, mips)
	defer src.Close()

	w := stream.NewMemoryWriter()
	if err := Write(w, src, WriteOptions{Scheme: supercompress.None}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	r := stream.NewMemoryReader(w.Bytes())
	kr, err := Open(r)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer kr.Close()

	if kr.Format() != gpuformat.R8G8B8A8Unorm {
		t.Errorf("Format = %v", kr.Format())
	}
	if kr.MipCount() != mips {
		t.Errorf("MipCount = %d, want %d", kr.MipCount(), mips)
	}
	compareAllMips(t, src, kr)
}

func TestWriteReadRoundTripZlib(t *testing.T) {
	size := layout.Size{X: 8, Y: 8, Z: 1}
	mips := layout.NumMipLevels(size)
	src := buildTightProvider(t, size, mips)
	defer src.Close()

	w := stream.NewMemoryWriter()
	if err := Write(w, src, WriteOptions{Scheme: supercompress.Zlib, Level: supercompress.DefaultZlibLevel}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	r := stream.NewMemoryReader(w.Bytes())
	kr, err := Open(r)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer kr.Close()
	compareAllMips(t, src, kr)
}

func TestWriteReadRoundTripZstd(t *testing.T) {
	size := layout.Size{X: 4, Y: 4, Z: 1}
	mips := layout.NumMipLevels(size)
	src := buildTightProvider(t, size, mips)
	defer src.Close()

	w := stream.NewMemoryWriter()
	if err := Write(w, src, WriteOptions{Scheme: supercompress.Zstd, Level: 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	r := stream.NewMemoryReader(w.Bytes())
	kr, err := Open(r)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer kr.Close()
	compareAllMips(t, src, kr)
}

func TestOpenRejectsBadIdentifier(t *testing.T) {
	r := stream.NewMemoryReader(make([]byte, 128))
	if _, err := Open(r); err == nil {
		t.Error("expected error for bad identifier")
	}
}

func TestUnmappedFormatRejectedOnWrite(t *testing.T) {
	size := layout.Size{X: 4, Y: 4, Z: 1}
	p, err := provider.WrapSingle(size, gpuformat.Bc1RgbUnormBlock, make([]byte, 8))
	if err != nil {
		t.Fatalf("WrapSingle: %v", err)
	}
	defer p.Close()

	w := stream.NewMemoryWriter()
	if err := Write(w, p, WriteOptions{Scheme: supercompress.None}); err == nil {
		t.Error("expected error writing an unmapped format")
	}
}
