package gpuformat

import "fmt"

// Info is the public view of a format's descriptor, consulted by
// pkg/texel to build its read/write engine.
type Info struct {
	// Fields lists the bit width of each wire-order component,
	// MSB-first for packed formats.
	Fields []int
	// Swizzle[k] is the wire-field index supplying destination
	// channel k (R=0,G=1,B=2,A=3). Empty means identity.
	Swizzle []int
	Family  Family
	// WordBits is >0 for formats whose fields share one N-bit word.
	WordBits    int
	Aspect      Aspect
	BlockExtent [3]uint32
	DS          DSLayout
}

// Lookup returns the catalogue entry for f, or false if f is not a
// known format.
func Lookup(f Format) (Info, bool) {
	d, ok := table[f]
	if !ok {
		return Info{}, false
	}
	return Info{
		Fields:      d.fields,
		Swizzle:     d.swizzle,
		Family:      d.family,
		WordBits:    d.wordBits,
		Aspect:      d.aspect,
		BlockExtent: d.blockExtent,
		DS:          d.ds,
	}, true
}

// NumComponents returns the channel count of f.
func NumComponents(f Format) int {
	d, ok := table[f]
	if !ok {
		return 0
	}
	return d.components()
}

// ElementSize returns the byte length of one texel (or, for
// block-compressed formats, one block). For depth-stencil composites
// this is the sum of the depth and stencil sizes.
func ElementSize(f Format) (uint32, error) {
	d, ok := table[f]
	if !ok {
		return 0, fmt.Errorf("gpuformat: unknown format %d", f)
	}

	if d.family == FamilyDepthStencil {
		sz, ok := dsElementSize[d.ds]
		if !ok {
			return 0, fmt.Errorf("gpuformat: unhandled depth/stencil layout %d", d.ds)
		}
		return sz.total, nil
	}

	if d.wordBits > 0 {
		return uint32(d.wordBits / 8), nil
	}

	bits := 0
	for _, b := range d.fields {
		bits += b
	}
	return uint32(bits / 8), nil
}

// ElementSizeAspect returns the byte length of a single aspect (color,
// depth, or stencil) of f. Required for depth-stencil writers, which
// must split a composite format's bytes between two destination
// buffers.
func ElementSizeAspect(f Format, aspect Aspect) (uint32, error) {
	d, ok := table[f]
	if !ok {
		return 0, fmt.Errorf("gpuformat: unknown format %d", f)
	}

	if d.family != FamilyDepthStencil {
		return ElementSize(f)
	}

	sz, ok := dsElementSize[d.ds]
	if !ok {
		return 0, fmt.Errorf("gpuformat: unhandled depth/stencil layout %d", d.ds)
	}

	switch {
	case aspect.Has(AspectDepth) && aspect.Has(AspectStencil):
		return sz.total, nil
	case aspect.Has(AspectDepth):
		return sz.depth, nil
	case aspect.Has(AspectStencil):
		return sz.stencil, nil
	default:
		return 0, fmt.Errorf("gpuformat: format %d has no aspect %v", f, aspect)
	}
}

// BlockSize returns the (w,h,d) extent of one block of f. Non-block
// formats return (1,1,1).
func BlockSize(f Format) [3]uint32 {
	d, ok := table[f]
	if !ok {
		return [3]uint32{1, 1, 1}
	}
	return d.blockExtent
}

// AspectOf returns the set of aspects f carries.
func AspectOf(f Format) Aspect {
	d, ok := table[f]
	if !ok {
		return 0
	}
	return d.aspect
}

// IsSRGB reports whether f's transfer function is sRGB.
func IsSRGB(f Format) bool {
	d, ok := table[f]
	return ok && d.family == FamilySrgb
}

// ToggleSRGB returns the linear variant of an sRGB format, or vice
// versa. Formats outside the paired set (spec.md 4.2) are returned
// unchanged.
func ToggleSRGB(f Format) Format {
	if paired, ok := toggleSRGBPairs[f]; ok {
		return paired
	}
	return f
}
