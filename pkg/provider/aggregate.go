package provider

import (
	"fmt"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
)

// Aggregator composes N sub-providers into one logical image, either by
// stacking each sub-provider's first layer (layer stacking) or by
// concatenating per-mip slices along z (slice stacking).
type Aggregator struct {
	subs     []Provider
	size     layout.Size
	format   gpuformat.Format
	mipCount uint32
	cubemap  bool
	asSlices bool

	// scratch backs BorrowRead in slice-stacking mode, since there is no
	// single contiguous span to borrow; it is overwritten by the next
	// BorrowRead call.
	scratch []byte
}

// NewAggregator composes subs, all of which must share size, format, and
// mipCount. If cubemap is true, len(subs) must be a multiple of 6.
// asSlices selects slice stacking (a single layer of depth len(subs))
// over layer stacking (layerCount = len(subs)).
func NewAggregator(subs []Provider, cubemap, asSlices bool) (*Aggregator, error) {
	if len(subs) == 0 {
		return nil, fmt.Errorf("provider: NewAggregator: no sub-providers")
	}
	first := subs[0]
	size, format, mipCount := first.Size(), first.Format(), first.MipCount()

	for i, s := range subs {
		if s.Size() != size {
			return nil, fmt.Errorf("provider: NewAggregator: sub %d size %+v != %+v", i, s.Size(), size)
		}
		if s.Format() != format {
			return nil, fmt.Errorf("provider: NewAggregator: sub %d format %v != %v", i, s.Format(), format)
		}
		if s.MipCount() != mipCount {
			return nil, fmt.Errorf("provider: NewAggregator: sub %d mipCount %d != %d", i, s.MipCount(), mipCount)
		}
	}

	if cubemap && len(subs)%6 != 0 {
		return nil, fmt.Errorf("provider: NewAggregator: cubemap requires a multiple of 6 sub-providers, got %d", len(subs))
	}

	if asSlices && size.Z != 1 {
		return nil, fmt.Errorf("provider: NewAggregator: slice stacking requires sub-providers with depth 1, got %d", size.Z)
	}

	agg := &Aggregator{subs: subs, size: size, format: format, mipCount: mipCount, cubemap: cubemap, asSlices: asSlices}
	if asSlices {
		agg.size.Z = uint32(len(subs))
	}
	return agg, nil
}

func (a *Aggregator) Size() layout.Size        { return a.size }
func (a *Aggregator) Format() gpuformat.Format { return a.format }
func (a *Aggregator) MipCount() uint32         { return a.mipCount }
func (a *Aggregator) Cubemap() bool            { return a.cubemap }

func (a *Aggregator) LayerCount() uint32 {
	if a.asSlices {
		return 1
	}
	return uint32(len(a.subs))
}

func (a *Aggregator) Read(mip, layer uint32, buf []byte) (int, error) {
	if err := checkSubresource(a, mip, layer); err != nil {
		return 0, err
	}

	if !a.asSlices {
		return a.subs[layer].Read(mip, 0, buf)
	}

	mipSize := layout.MipSize(a.size, mip)
	elemSize, err := gpuformat.ElementSize(a.format)
	if err != nil {
		return 0, err
	}
	sliceBytes := uint64(mipSize.X) * uint64(mipSize.Y) * uint64(elemSize)

	total := 0
	for i, sub := range a.subs {
		lo := uint64(i) * sliceBytes
		hi := lo + sliceBytes
		if hi > uint64(len(buf)) {
			return total, fmt.Errorf("provider: aggregator: buffer too short for slice %d", i)
		}
		n, err := sub.Read(mip, 0, buf[lo:hi])
		if err != nil {
			return total, fmt.Errorf("provider: aggregator: slice %d: %w", i, err)
		}
		total += n
	}
	return total, nil
}

func (a *Aggregator) BorrowRead(mip, layer uint32) ([]byte, error) {
	if err := checkSubresource(a, mip, layer); err != nil {
		return nil, err
	}
	if !a.asSlices {
		return a.subs[layer].BorrowRead(mip, 0)
	}

	sz, err := layout.SizeBytes(a.size, mip, a.format)
	if err != nil {
		return nil, err
	}
	if uint64(cap(a.scratch)) < sz {
		a.scratch = make([]byte, sz)
	}
	a.scratch = a.scratch[:sz]
	if _, err := a.Read(mip, layer, a.scratch); err != nil {
		return nil, err
	}
	return a.scratch, nil
}

// Close closes every sub-provider, returning the first error encountered.
func (a *Aggregator) Close() error {
	var firstErr error
	for _, s := range a.subs {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
