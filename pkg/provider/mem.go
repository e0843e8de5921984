package provider

import (
	"fmt"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
)

// memBase holds the fields every in-memory provider shares.
type memBase struct {
	size       layout.Size
	format     gpuformat.Format
	mipCount   uint32
	layerCount uint32
	cubemap    bool
}

func (m *memBase) Size() layout.Size        { return m.size }
func (m *memBase) Format() gpuformat.Format { return m.format }
func (m *memBase) MipCount() uint32         { return m.mipCount }
func (m *memBase) LayerCount() uint32       { return m.layerCount }
func (m *memBase) Cubemap() bool            { return m.cubemap }

// SingleBuffer borrows one flat buffer holding a single subresource
// (mipCount = 1, layerCount = 1). Corresponds to wrapImage overload 1.
type SingleBuffer struct {
	memBase
	data []byte
}

// WrapSingle borrows data as the sole subresource of a size x format
// image with one mip and one layer.
func WrapSingle(size layout.Size, format gpuformat.Format, data []byte) (*SingleBuffer, error) {
	if err := validateConstruction(size, 1, 1); err != nil {
		return nil, err
	}
	want, err := layout.SizeBytes(size, 0, format)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) < want {
		return nil, fmt.Errorf("provider: WrapSingle: buffer too short, want %d got %d", want, len(data))
	}
	return &SingleBuffer{
		memBase: memBase{size: size, format: format, mipCount: 1, layerCount: 1},
		data:    data,
	}, nil
}

func (p *SingleBuffer) Read(mip, layer uint32, buf []byte) (int, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return 0, err
	}
	return copy(buf, p.data), nil
}

func (p *SingleBuffer) BorrowRead(mip, layer uint32) ([]byte, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return nil, err
	}
	return p.data, nil
}

func (p *SingleBuffer) Close() error { return nil }

// PerSubresourceOwned owns one heap-allocated block per subresource,
// ordered mip-major, layer-minor. Corresponds to wrapImage overload 2.
type PerSubresourceOwned struct {
	memBase
	blocks [][]byte
}

// NewPerSubresourceOwned takes ownership of blocks, one per (mip, layer)
// in mip-major order, each of which is copied internally.
func NewPerSubresourceOwned(size layout.Size, format gpuformat.Format, mipCount, layerCount uint32, cubemap bool, blocks [][]byte) (*PerSubresourceOwned, error) {
	if err := validateConstruction(size, mipCount, layerCount); err != nil {
		return nil, err
	}
	if uint32(len(blocks)) != mipCount*layerCount {
		return nil, fmt.Errorf("provider: NewPerSubresourceOwned: want %d blocks, got %d", mipCount*layerCount, len(blocks))
	}

	owned := make([][]byte, len(blocks))
	for i, b := range blocks {
		mip := uint32(i) / layerCount
		want, err := layout.SizeBytes(size, mip, format)
		if err != nil {
			return nil, err
		}
		if uint64(len(b)) < want {
			return nil, fmt.Errorf("provider: NewPerSubresourceOwned: block %d too short, want %d got %d", i, want, len(b))
		}
		owned[i] = append([]byte(nil), b...)
	}

	return &PerSubresourceOwned{
		memBase: memBase{size: size, format: format, mipCount: mipCount, layerCount: layerCount, cubemap: cubemap},
		blocks:  owned,
	}, nil
}

func (p *PerSubresourceOwned) index(mip, layer uint32) int {
	return int(mip*p.layerCount + layer)
}

func (p *PerSubresourceOwned) Read(mip, layer uint32, buf []byte) (int, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return 0, err
	}
	return copy(buf, p.blocks[p.index(mip, layer)]), nil
}

func (p *PerSubresourceOwned) BorrowRead(mip, layer uint32) ([]byte, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return nil, err
	}
	return p.blocks[p.index(mip, layer)], nil
}

func (p *PerSubresourceOwned) Close() error { return nil }

// tightBuffer locates subresources within one contiguous buffer at
// elementSize * tightTexelNumber(size, layers, mip, layer, 0,0,0,0),
// shared by the owned and borrowed tight-linear providers (wrapImage
// overloads 3 and 4).
type tightBuffer struct {
	memBase
	data []byte
}

func (p *tightBuffer) Close() error { return nil }

func (p *tightBuffer) subresourceRange(mip, layer uint32) (int, int, error) {
	elemSize, err := gpuformat.ElementSize(p.format)
	if err != nil {
		return 0, 0, err
	}
	start := layout.TightTexelNumber(p.size, p.layerCount, mip, layer, 0, 0, 0, 0) * uint64(elemSize)
	n, err := layout.SizeBytes(p.size, mip, p.format)
	if err != nil {
		return 0, 0, err
	}
	return int(start), int(start + n), nil
}

func (p *tightBuffer) Read(mip, layer uint32, buf []byte) (int, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return 0, err
	}
	lo, hi, err := p.subresourceRange(mip, layer)
	if err != nil {
		return 0, err
	}
	return copy(buf, p.data[lo:hi]), nil
}

func (p *tightBuffer) BorrowRead(mip, layer uint32) ([]byte, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return nil, err
	}
	lo, hi, err := p.subresourceRange(mip, layer)
	if err != nil {
		return nil, err
	}
	return p.data[lo:hi], nil
}

// TightOwned owns a single contiguous buffer laid out in tight-linear
// order. Corresponds to wrapImage overload 3.
type TightOwned struct{ tightBuffer }

// NewTightOwned copies data into an owned tight-linear buffer.
func NewTightOwned(size layout.Size, format gpuformat.Format, mipCount, layerCount uint32, cubemap bool, data []byte) (*TightOwned, error) {
	if err := validateConstruction(size, mipCount, layerCount); err != nil {
		return nil, err
	}
	want := layout.TightTexelCount(size, layerCount, mipCount, 0)
	elemSize, err := gpuformat.ElementSize(format)
	if err != nil {
		return nil, err
	}
	wantBytes := want * uint64(elemSize)
	if uint64(len(data)) < wantBytes {
		return nil, fmt.Errorf("provider: NewTightOwned: buffer too short, want %d got %d", wantBytes, len(data))
	}
	return &TightOwned{tightBuffer{
		memBase: memBase{size: size, format: format, mipCount: mipCount, layerCount: layerCount, cubemap: cubemap},
		data:    append([]byte(nil), data...),
	}}, nil
}

func (p *TightOwned) Close() error { return nil }

// TightBorrowed borrows a caller-owned contiguous buffer laid out in
// tight-linear order. Corresponds to wrapImage overload 4. The caller
// must keep data alive for the provider's lifetime.
type TightBorrowed struct{ tightBuffer }

// NewTightBorrowed wraps data without copying.
func NewTightBorrowed(size layout.Size, format gpuformat.Format, mipCount, layerCount uint32, cubemap bool, data []byte) (*TightBorrowed, error) {
	if err := validateConstruction(size, mipCount, layerCount); err != nil {
		return nil, err
	}
	want := layout.TightTexelCount(size, layerCount, mipCount, 0)
	elemSize, err := gpuformat.ElementSize(format)
	if err != nil {
		return nil, err
	}
	wantBytes := want * uint64(elemSize)
	if uint64(len(data)) < wantBytes {
		return nil, fmt.Errorf("provider: NewTightBorrowed: buffer too short, want %d got %d", wantBytes, len(data))
	}
	return &TightBorrowed{tightBuffer{
		memBase: memBase{size: size, format: format, mipCount: mipCount, layerCount: layerCount, cubemap: cubemap},
		data:    data,
	}}, nil
}

func (p *TightBorrowed) Close() error { return nil }

// PerSubresourceBorrowed borrows a caller-owned list of per-subresource
// spans, mip-major order, without copying. Corresponds to wrapImage
// overload 5. The caller must keep every span alive for the provider's
// lifetime.
type PerSubresourceBorrowed struct {
	memBase
	blocks [][]byte
}

// NewPerSubresourceBorrowed wraps blocks without copying.
func NewPerSubresourceBorrowed(size layout.Size, format gpuformat.Format, mipCount, layerCount uint32, cubemap bool, blocks [][]byte) (*PerSubresourceBorrowed, error) {
	if err := validateConstruction(size, mipCount, layerCount); err != nil {
		return nil, err
	}
	if uint32(len(blocks)) != mipCount*layerCount {
		return nil, fmt.Errorf("provider: NewPerSubresourceBorrowed: want %d blocks, got %d", mipCount*layerCount, len(blocks))
	}
	return &PerSubresourceBorrowed{
		memBase: memBase{size: size, format: format, mipCount: mipCount, layerCount: layerCount, cubemap: cubemap},
		blocks:  blocks,
	}, nil
}

func (p *PerSubresourceBorrowed) index(mip, layer uint32) int {
	return int(mip*p.layerCount + layer)
}

func (p *PerSubresourceBorrowed) Read(mip, layer uint32, buf []byte) (int, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return 0, err
	}
	return copy(buf, p.blocks[p.index(mip, layer)]), nil
}

func (p *PerSubresourceBorrowed) BorrowRead(mip, layer uint32) ([]byte, error) {
	if err := checkSubresource(p, mip, layer); err != nil {
		return nil, err
	}
	return p.blocks[p.index(mip, layer)], nil
}

func (p *PerSubresourceBorrowed) Close() error { return nil }
