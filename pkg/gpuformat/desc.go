package gpuformat

// Family identifies the numeric interpretation pkg/texel applies to a
// format's raw bits.
type Family int

const (
	FamilyUndefined Family = iota
	FamilyUnorm
	FamilySnorm
	FamilyUscaled
	FamilySscaled
	FamilyUint
	FamilySint
	FamilySfloat
	FamilySrgb
	FamilyUfloatShared // e5b9g9r9 and similar shared-exponent encodings
	FamilyDepthStencil
	FamilyUnsupported // block-compressed, multi-plane, b10g11r11
)

// DSLayout names the exact byte/bit layout of a depth/stencil composite
// format, since each one is encoded case by case (spec.md 4.3).
type DSLayout int

const (
	DSNone DSLayout = iota
	DSD16
	DSD32
	DSS8
	DSD16S8
	DSD24S8
	DSX8D24
	DSD32S8
)

// desc is the per-format descriptor consulted by pkg/texel. fields lists
// the bit width of each wire-order component (MSB-first for packed
// formats); swizzle[k] is the wire-field index supplying destination
// channel k (R=0,G=1,B=2,A=3). A nil swizzle means identity.
type desc struct {
	fields      []int
	swizzle     []int
	family      Family
	wordBits    int // >0 for packed formats sharing one N-bit word
	aspect      Aspect
	blockExtent [3]uint32
	ds          DSLayout
}

func (d desc) components() int { return len(d.fields) }

func nonPacked(family Family, bits int, n int, swizzle ...int) desc {
	fields := make([]int, n)
	for i := range fields {
		fields[i] = bits
	}
	return desc{fields: fields, swizzle: swizzle, family: family, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}}
}

func packed(family Family, wordBits int, fields []int, swizzle ...int) desc {
	return desc{fields: fields, swizzle: swizzle, family: family, wordBits: wordBits, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}}
}

func depthStencil(ds DSLayout, aspect Aspect) desc {
	return desc{family: FamilyDepthStencil, ds: ds, aspect: aspect, blockExtent: [3]uint32{1, 1, 1}}
}

func block(aspect Aspect, elemSize uint32, extent [3]uint32) desc {
	return desc{family: FamilyUnsupported, aspect: aspect, blockExtent: extent, wordBits: int(elemSize) * 8}
}

// bgraSwizzle3 and bgraSwizzle4 are the wire order (B,G,R[,A]) ->
// (R,G,B[,A]) permutations shared by every BGR and BGRA format.
var bgraSwizzle3 = []int{2, 1, 0}
var bgraSwizzle4 = []int{2, 1, 0, 3}

// abgrSwizzle is the wire order (A,B,G,R) -> (R,G,B,A) permutation used
// by the packed a8b8g8r8 / a2b10g10r10 families.
var abgrSwizzle = []int{3, 2, 1, 0}

// argbSwizzle is the wire order (A,R,G,B) -> (R,G,B,A) permutation used
// by the packed a2r10g10b10 / a1r5g5b5 families.
var argbSwizzle = []int{1, 2, 3, 0}

var table = map[Format]desc{
	// 8-bit unorm
	R8Unorm:       nonPacked(FamilyUnorm, 8, 1),
	R8G8Unorm:     nonPacked(FamilyUnorm, 8, 2),
	R8G8B8Unorm:   nonPacked(FamilyUnorm, 8, 3),
	B8G8R8Unorm:   {fields: []int{8, 8, 8}, swizzle: bgraSwizzle3, family: FamilyUnorm, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	R8G8B8A8Unorm: nonPacked(FamilyUnorm, 8, 4),
	B8G8R8A8Unorm: {fields: []int{8, 8, 8, 8}, swizzle: bgraSwizzle4, family: FamilyUnorm, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// 8-bit snorm
	R8Snorm:       nonPacked(FamilySnorm, 8, 1),
	R8G8Snorm:     nonPacked(FamilySnorm, 8, 2),
	R8G8B8Snorm:   nonPacked(FamilySnorm, 8, 3),
	B8G8R8Snorm:   {fields: []int{8, 8, 8}, swizzle: bgraSwizzle3, family: FamilySnorm, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	R8G8B8A8Snorm: nonPacked(FamilySnorm, 8, 4),
	B8G8R8A8Snorm: {fields: []int{8, 8, 8, 8}, swizzle: bgraSwizzle4, family: FamilySnorm, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// 8-bit uscaled
	R8Uscaled:       nonPacked(FamilyUscaled, 8, 1),
	R8G8Uscaled:     nonPacked(FamilyUscaled, 8, 2),
	R8G8B8Uscaled:   nonPacked(FamilyUscaled, 8, 3),
	B8G8R8Uscaled:   {fields: []int{8, 8, 8}, swizzle: bgraSwizzle3, family: FamilyUscaled, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	R8G8B8A8Uscaled: nonPacked(FamilyUscaled, 8, 4),
	B8G8R8A8Uscaled: {fields: []int{8, 8, 8, 8}, swizzle: bgraSwizzle4, family: FamilyUscaled, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// 8-bit sscaled
	R8Sscaled:       nonPacked(FamilySscaled, 8, 1),
	R8G8Sscaled:     nonPacked(FamilySscaled, 8, 2),
	R8G8B8Sscaled:   nonPacked(FamilySscaled, 8, 3),
	B8G8R8Sscaled:   {fields: []int{8, 8, 8}, swizzle: bgraSwizzle3, family: FamilySscaled, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	R8G8B8A8Sscaled: nonPacked(FamilySscaled, 8, 4),
	B8G8R8A8Sscaled: {fields: []int{8, 8, 8, 8}, swizzle: bgraSwizzle4, family: FamilySscaled, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// 8-bit uint
	R8Uint:       nonPacked(FamilyUint, 8, 1),
	R8G8Uint:     nonPacked(FamilyUint, 8, 2),
	R8G8B8Uint:   nonPacked(FamilyUint, 8, 3),
	B8G8R8Uint:   {fields: []int{8, 8, 8}, swizzle: bgraSwizzle3, family: FamilyUint, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	R8G8B8A8Uint: nonPacked(FamilyUint, 8, 4),
	B8G8R8A8Uint: {fields: []int{8, 8, 8, 8}, swizzle: bgraSwizzle4, family: FamilyUint, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// 8-bit sint
	R8Sint:       nonPacked(FamilySint, 8, 1),
	R8G8Sint:     nonPacked(FamilySint, 8, 2),
	R8G8B8Sint:   nonPacked(FamilySint, 8, 3),
	B8G8R8Sint:   {fields: []int{8, 8, 8}, swizzle: bgraSwizzle3, family: FamilySint, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	R8G8B8A8Sint: nonPacked(FamilySint, 8, 4),
	B8G8R8A8Sint: {fields: []int{8, 8, 8, 8}, swizzle: bgraSwizzle4, family: FamilySint, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// 8-bit srgb
	R8Srgb:       nonPacked(FamilySrgb, 8, 1),
	R8G8Srgb:     nonPacked(FamilySrgb, 8, 2),
	R8G8B8Srgb:   nonPacked(FamilySrgb, 8, 3),
	B8G8R8Srgb:   {fields: []int{8, 8, 8}, swizzle: bgraSwizzle3, family: FamilySrgb, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	R8G8B8A8Srgb: nonPacked(FamilySrgb, 8, 4),
	B8G8R8A8Srgb: {fields: []int{8, 8, 8, 8}, swizzle: bgraSwizzle4, family: FamilySrgb, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// 16-bit
	R16Unorm:           nonPacked(FamilyUnorm, 16, 1),
	R16G16Unorm:        nonPacked(FamilyUnorm, 16, 2),
	R16G16B16Unorm:     nonPacked(FamilyUnorm, 16, 3),
	R16G16B16A16Unorm:  nonPacked(FamilyUnorm, 16, 4),
	R16Snorm:           nonPacked(FamilySnorm, 16, 1),
	R16G16Snorm:        nonPacked(FamilySnorm, 16, 2),
	R16G16B16Snorm:     nonPacked(FamilySnorm, 16, 3),
	R16G16B16A16Snorm:  nonPacked(FamilySnorm, 16, 4),
	R16Uscaled:         nonPacked(FamilyUscaled, 16, 1),
	R16G16Uscaled:      nonPacked(FamilyUscaled, 16, 2),
	R16G16B16Uscaled:   nonPacked(FamilyUscaled, 16, 3),
	R16G16B16A16Uscaled: nonPacked(FamilyUscaled, 16, 4),
	R16Sscaled:         nonPacked(FamilySscaled, 16, 1),
	R16G16Sscaled:      nonPacked(FamilySscaled, 16, 2),
	R16G16B16Sscaled:   nonPacked(FamilySscaled, 16, 3),
	R16G16B16A16Sscaled: nonPacked(FamilySscaled, 16, 4),
	R16Uint:            nonPacked(FamilyUint, 16, 1),
	R16G16Uint:         nonPacked(FamilyUint, 16, 2),
	R16G16B16Uint:      nonPacked(FamilyUint, 16, 3),
	R16G16B16A16Uint:   nonPacked(FamilyUint, 16, 4),
	R16Sint:            nonPacked(FamilySint, 16, 1),
	R16G16Sint:         nonPacked(FamilySint, 16, 2),
	R16G16B16Sint:      nonPacked(FamilySint, 16, 3),
	R16G16B16A16Sint:   nonPacked(FamilySint, 16, 4),
	R16Sfloat:          nonPacked(FamilySfloat, 16, 1),
	R16G16Sfloat:       nonPacked(FamilySfloat, 16, 2),
	R16G16B16Sfloat:    nonPacked(FamilySfloat, 16, 3),
	R16G16B16A16Sfloat: nonPacked(FamilySfloat, 16, 4),

	// 32-bit
	R32Uint:            nonPacked(FamilyUint, 32, 1),
	R32G32Uint:         nonPacked(FamilyUint, 32, 2),
	R32G32B32Uint:      nonPacked(FamilyUint, 32, 3),
	R32G32B32A32Uint:   nonPacked(FamilyUint, 32, 4),
	R32Sint:            nonPacked(FamilySint, 32, 1),
	R32G32Sint:         nonPacked(FamilySint, 32, 2),
	R32G32B32Sint:      nonPacked(FamilySint, 32, 3),
	R32G32B32A32Sint:   nonPacked(FamilySint, 32, 4),
	R32Sfloat:          nonPacked(FamilySfloat, 32, 1),
	R32G32Sfloat:       nonPacked(FamilySfloat, 32, 2),
	R32G32B32Sfloat:    nonPacked(FamilySfloat, 32, 3),
	R32G32B32A32Sfloat: nonPacked(FamilySfloat, 32, 4),

	// 64-bit
	R64Uint:            nonPacked(FamilyUint, 64, 1),
	R64G64Uint:         nonPacked(FamilyUint, 64, 2),
	R64G64B64Uint:      nonPacked(FamilyUint, 64, 3),
	R64G64B64A64Uint:   nonPacked(FamilyUint, 64, 4),
	R64Sint:            nonPacked(FamilySint, 64, 1),
	R64G64Sint:         nonPacked(FamilySint, 64, 2),
	R64G64B64Sint:      nonPacked(FamilySint, 64, 3),
	R64G64B64A64Sint:   nonPacked(FamilySint, 64, 4),
	R64Sfloat:          nonPacked(FamilySfloat, 64, 1),
	R64G64Sfloat:       nonPacked(FamilySfloat, 64, 2),
	R64G64B64Sfloat:    nonPacked(FamilySfloat, 64, 3),
	R64G64B64A64Sfloat: nonPacked(FamilySfloat, 64, 4),

	// Packed formats.
	R4G4UnormPack8:       packed(FamilyUnorm, 8, []int{4, 4}),
	R4G4B4A4UnormPack16:  packed(FamilyUnorm, 16, []int{4, 4, 4, 4}),
	B4G4R4A4UnormPack16:  packed(FamilyUnorm, 16, []int{4, 4, 4, 4}, bgraSwizzle4...),
	R5G6B5UnormPack16:    packed(FamilyUnorm, 16, []int{5, 6, 5}),
	B5G6R5UnormPack16:    packed(FamilyUnorm, 16, []int{5, 6, 5}, bgraSwizzle3...),
	R5G5B5A1UnormPack16:  packed(FamilyUnorm, 16, []int{5, 5, 5, 1}),
	B5G5R5A1UnormPack16:  packed(FamilyUnorm, 16, []int{5, 5, 5, 1}, bgraSwizzle4...),
	A1R5G5B5UnormPack16:  packed(FamilyUnorm, 16, []int{1, 5, 5, 5}, argbSwizzle...),

	A8B8G8R8UnormPack32:   packed(FamilyUnorm, 32, []int{8, 8, 8, 8}, abgrSwizzle...),
	A8B8G8R8SnormPack32:   packed(FamilySnorm, 32, []int{8, 8, 8, 8}, abgrSwizzle...),
	A8B8G8R8UscaledPack32: packed(FamilyUscaled, 32, []int{8, 8, 8, 8}, abgrSwizzle...),
	A8B8G8R8SscaledPack32: packed(FamilySscaled, 32, []int{8, 8, 8, 8}, abgrSwizzle...),
	A8B8G8R8UintPack32:    packed(FamilyUint, 32, []int{8, 8, 8, 8}, abgrSwizzle...),
	A8B8G8R8SintPack32:    packed(FamilySint, 32, []int{8, 8, 8, 8}, abgrSwizzle...),
	A8B8G8R8SrgbPack32:    packed(FamilySrgb, 32, []int{8, 8, 8, 8}, abgrSwizzle...),

	A2B10G10R10UnormPack32:   packed(FamilyUnorm, 32, []int{2, 10, 10, 10}, abgrSwizzle...),
	A2B10G10R10SnormPack32:   packed(FamilySnorm, 32, []int{2, 10, 10, 10}, abgrSwizzle...),
	A2B10G10R10UscaledPack32: packed(FamilyUscaled, 32, []int{2, 10, 10, 10}, abgrSwizzle...),
	A2B10G10R10SscaledPack32: packed(FamilySscaled, 32, []int{2, 10, 10, 10}, abgrSwizzle...),
	A2B10G10R10UintPack32:    packed(FamilyUint, 32, []int{2, 10, 10, 10}, abgrSwizzle...),
	A2B10G10R10SintPack32:    packed(FamilySint, 32, []int{2, 10, 10, 10}, abgrSwizzle...),

	A2R10G10B10UnormPack32:   packed(FamilyUnorm, 32, []int{2, 10, 10, 10}, argbSwizzle...),
	A2R10G10B10SnormPack32:   packed(FamilySnorm, 32, []int{2, 10, 10, 10}, argbSwizzle...),
	A2R10G10B10UscaledPack32: packed(FamilyUscaled, 32, []int{2, 10, 10, 10}, argbSwizzle...),
	A2R10G10B10SscaledPack32: packed(FamilySscaled, 32, []int{2, 10, 10, 10}, argbSwizzle...),
	A2R10G10B10UintPack32:    packed(FamilyUint, 32, []int{2, 10, 10, 10}, argbSwizzle...),
	A2R10G10B10SintPack32:    packed(FamilySint, 32, []int{2, 10, 10, 10}, argbSwizzle...),

	// Depth / stencil.
	D16Unorm:        depthStencil(DSD16, AspectDepth),
	X8D24UnormPack32: depthStencil(DSX8D24, AspectDepth),
	D32Sfloat:       depthStencil(DSD32, AspectDepth),
	S8Uint:          depthStencil(DSS8, AspectStencil),
	D16UnormS8Uint:  depthStencil(DSD16S8, AspectDepth|AspectStencil),
	D24UnormS8Uint:  depthStencil(DSD24S8, AspectDepth|AspectStencil),
	D32SfloatS8Uint: depthStencil(DSD32S8, AspectDepth|AspectStencil),

	// Shared-exponent / packed float.
	E5B9G9R9UfloatPack32: {family: FamilyUfloatShared, wordBits: 32, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},
	B10G11R11UfloatPack32: {family: FamilyUnsupported, wordBits: 32, aspect: AspectColor, blockExtent: [3]uint32{1, 1, 1}},

	// Block-compressed (metadata only).
	Bc1RgbUnormBlock:  block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Bc1RgbSrgbBlock:   block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Bc1RgbaUnormBlock: block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Bc1RgbaSrgbBlock:  block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Bc2UnormBlock:     block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc2SrgbBlock:      block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc3UnormBlock:     block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc3SrgbBlock:       block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc4UnormBlock:      block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Bc4SnormBlock:      block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Bc5UnormBlock:      block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc5SnormBlock:      block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc6hUfloatBlock:    block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc6hSfloatBlock:    block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc7UnormBlock:      block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Bc7SrgbBlock:       block(AspectColor, 16, [3]uint32{4, 4, 1}),

	Etc2R8G8B8UnormBlock:    block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Etc2R8G8B8SrgbBlock:     block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Etc2R8G8B8A1UnormBlock:  block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Etc2R8G8B8A1SrgbBlock:   block(AspectColor, 8, [3]uint32{4, 4, 1}),
	Etc2R8G8B8A8UnormBlock:  block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Etc2R8G8B8A8SrgbBlock:   block(AspectColor, 16, [3]uint32{4, 4, 1}),
	EacR11UnormBlock:        block(AspectColor, 8, [3]uint32{4, 4, 1}),
	EacR11SnormBlock:        block(AspectColor, 8, [3]uint32{4, 4, 1}),
	EacR11G11UnormBlock:     block(AspectColor, 16, [3]uint32{4, 4, 1}),
	EacR11G11SnormBlock:     block(AspectColor, 16, [3]uint32{4, 4, 1}),

	Astc4x4UnormBlock:   block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Astc4x4SrgbBlock:    block(AspectColor, 16, [3]uint32{4, 4, 1}),
	Astc5x5UnormBlock:   block(AspectColor, 16, [3]uint32{5, 5, 1}),
	Astc5x5SrgbBlock:    block(AspectColor, 16, [3]uint32{5, 5, 1}),
	Astc6x6UnormBlock:   block(AspectColor, 16, [3]uint32{6, 6, 1}),
	Astc6x6SrgbBlock:    block(AspectColor, 16, [3]uint32{6, 6, 1}),
	Astc8x8UnormBlock:   block(AspectColor, 16, [3]uint32{8, 8, 1}),
	Astc8x8SrgbBlock:    block(AspectColor, 16, [3]uint32{8, 8, 1}),
	Astc10x10UnormBlock: block(AspectColor, 16, [3]uint32{10, 10, 1}),
	Astc10x10SrgbBlock:  block(AspectColor, 16, [3]uint32{10, 10, 1}),
	Astc12x12UnormBlock: block(AspectColor, 16, [3]uint32{12, 12, 1}),
	Astc12x12SrgbBlock:  block(AspectColor, 16, [3]uint32{12, 12, 1}),

	// Multi-plane (metadata only, never decoded).
	G8B8G8R8422Unorm:     {family: FamilyUnsupported, aspect: AspectColor, blockExtent: [3]uint32{2, 1, 1}, wordBits: 32},
	B8G8R8G8422Unorm:     {family: FamilyUnsupported, aspect: AspectColor, blockExtent: [3]uint32{2, 1, 1}, wordBits: 32},
	G8B8R83Plane420Unorm: {family: FamilyUnsupported, aspect: AspectPlane0 | AspectPlane1 | AspectPlane2, blockExtent: [3]uint32{2, 2, 1}, wordBits: 24},
	G8B8R82Plane420Unorm: {family: FamilyUnsupported, aspect: AspectPlane0 | AspectPlane1, blockExtent: [3]uint32{2, 2, 1}, wordBits: 24},
}

// dsElementSize maps a depth/stencil layout to its total byte size and,
// when composite, the per-aspect split (depth bytes, stencil bytes).
var dsElementSize = map[DSLayout]struct{ total, depth, stencil uint32 }{
	DSD16:   {2, 2, 0},
	DSD32:   {4, 4, 0},
	DSS8:    {1, 0, 1},
	DSX8D24: {4, 4, 0},
	DSD16S8: {3, 2, 1},
	DSD24S8: {4, 3, 1},
	DSD32S8: {5, 4, 1},
}

// toggleSRGBPairs lists the formats that have an sRGB/linear counterpart,
// per spec.md 4.2: the standard 8-bit per-channel color formats and BC7.
var toggleSRGBPairs = map[Format]Format{
	R8Unorm:       R8Srgb,
	R8Srgb:        R8Unorm,
	R8G8Unorm:     R8G8Srgb,
	R8G8Srgb:      R8G8Unorm,
	R8G8B8Unorm:   R8G8B8Srgb,
	R8G8B8Srgb:    R8G8B8Unorm,
	B8G8R8Unorm:   B8G8R8Srgb,
	B8G8R8Srgb:    B8G8R8Unorm,
	R8G8B8A8Unorm: R8G8B8A8Srgb,
	R8G8B8A8Srgb:  R8G8B8A8Unorm,
	B8G8R8A8Unorm: B8G8R8A8Srgb,
	B8G8R8A8Srgb:  B8G8R8A8Unorm,
	A8B8G8R8UnormPack32: A8B8G8R8SrgbPack32,
	A8B8G8R8SrgbPack32:  A8B8G8R8UnormPack32,
	Bc7UnormBlock: Bc7SrgbBlock,
	Bc7SrgbBlock:  Bc7UnormBlock,
}
