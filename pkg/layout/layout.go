// Package layout provides the tight-linear addressing math shared by
// every image provider and container engine: mip chain sizes, subresource
// byte sizes, and the texel-number formulas used to locate a
// (mip, layer, x, y, z) coordinate within one contiguous buffer.
package layout

import (
	"fmt"
	"math/bits"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
)

// Size is an image extent in texels, all components >= 1.
type Size struct {
	X, Y, Z uint32
}

// Volume returns X*Y*Z.
func (s Size) Volume() uint64 {
	return uint64(s.X) * uint64(s.Y) * uint64(s.Z)
}

func maxDim(s Size) uint32 {
	m := s.X
	if s.Y > m {
		m = s.Y
	}
	if s.Z > m {
		m = s.Z
	}
	return m
}

func max1(v uint32) uint32 {
	if v < 1 {
		return 1
	}
	return v
}

// floorLog2 returns floor(log2(v)) for v >= 1.
func floorLog2(v uint32) uint32 {
	if v == 0 {
		return 0
	}
	return uint32(bits.Len32(v) - 1)
}

// NumMipLevels returns the canonical mip count for size: 1 + floor(log2(max(w,h,d))).
func NumMipLevels(size Size) uint32 {
	return 1 + floorLog2(maxDim(size))
}

// MipSize returns the componentwise size of level, max(1, size >> level).
func MipSize(size Size, level uint32) Size {
	return Size{
		X: max1(size.X >> level),
		Y: max1(size.Y >> level),
		Z: max1(size.Z >> level),
	}
}

func ceilDivide(num, denom uint32) uint32 {
	return (num + denom - 1) / denom
}

// SizeBytes returns the byte size of one subresource at the given mip
// level in format f: the mip-shifted extent, divided by f's block
// extent (rounding up), times f's element size.
func SizeBytes(size Size, mip uint32, f gpuformat.Format) (uint64, error) {
	elemSize, err := gpuformat.ElementSize(f)
	if err != nil {
		return 0, fmt.Errorf("layout: size bytes: %w", err)
	}

	ms := MipSize(size, mip)
	block := gpuformat.BlockSize(f)

	blocksX := ceilDivide(ms.X, block[0])
	blocksY := ceilDivide(ms.Y, block[1])
	blocksZ := ceilDivide(ms.Z, block[2])

	return uint64(blocksX) * uint64(blocksY) * uint64(blocksZ) * uint64(elemSize), nil
}

// TightTexelCount returns the number of texels spanning numMips levels
// of size, starting at firstMip, across numLayers layers.
func TightTexelCount(size Size, numLayers, numMips, firstMip uint32) uint64 {
	var total uint64
	for i := firstMip; i < firstMip+numMips; i++ {
		total += MipSize(size, i).Volume() * uint64(numLayers)
	}
	return total
}

// TightTexelNumber returns the index, in tight-linear (mip-major, then
// layer, then z/y/x) order, of texel (x,y,z) within (mip, layer) of an
// image with the given base size and layer count.
func TightTexelNumber(size Size, numLayers, mip, layer, x, y, z, firstMip uint32) uint64 {
	var offset uint64
	for i := firstMip; i < mip; i++ {
		offset += MipSize(size, i).Volume() * uint64(numLayers)
	}

	ms := MipSize(size, mip)
	offset += uint64(layer) * ms.Volume()
	offset += uint64(z)*uint64(ms.Y)*uint64(ms.X) + uint64(y)*uint64(ms.X) + uint64(x)
	return offset
}
