package ktx2

import "github.com/larkspur-oss/imgio/pkg/gpuformat"

// vkFormat values, matching the Vulkan format enumeration the catalogue
// is itself modeled on.
const (
	vkUndefined = 0

	vkR8Unorm     = 9
	vkR8G8Unorm   = 16
	vkR8G8B8Unorm = 23
	vkB8G8R8Unorm = 30

	vkR8G8B8A8Unorm = 37
	vkR8G8B8A8Srgb  = 43
	vkB8G8R8A8Unorm = 44
	vkB8G8R8A8Srgb  = 50

	vkR16Unorm          = 70
	vkR16Sfloat         = 76
	vkR16G16Unorm       = 77
	vkR16G16Sfloat      = 83
	vkR16G16B16Unorm    = 84
	vkR16G16B16Sfloat   = 90
	vkR16G16B16A16Unorm = 91
	vkR16G16B16A16Sfloat = 97

	vkR32Sfloat          = 100
	vkR32G32Sfloat       = 103
	vkR32G32B32Sfloat    = 106
	vkR32G32B32A32Sfloat = 109

	vkA2B10G10R10UnormPack32  = 64
	vkB10G11R11UfloatPack32   = 122
	vkE5B9G9R9UfloatPack32    = 123

	vkD16Unorm        = 124
	vkD32Sfloat       = 126
	vkS8Uint          = 127
	vkD24UnormS8Uint  = 129
	vkD32SfloatS8Uint = 130
)

var vkFormatMap = map[gpuformat.Format]uint32{
	gpuformat.R8Unorm:     vkR8Unorm,
	gpuformat.R8G8Unorm:   vkR8G8Unorm,
	gpuformat.R8G8B8Unorm: vkR8G8B8Unorm,
	gpuformat.B8G8R8Unorm: vkB8G8R8Unorm,

	gpuformat.R8G8B8A8Unorm: vkR8G8B8A8Unorm,
	gpuformat.R8G8B8A8Srgb:  vkR8G8B8A8Srgb,
	gpuformat.B8G8R8A8Unorm: vkB8G8R8A8Unorm,
	gpuformat.B8G8R8A8Srgb:  vkB8G8R8A8Srgb,

	gpuformat.R16Unorm:          vkR16Unorm,
	gpuformat.R16Sfloat:         vkR16Sfloat,
	gpuformat.R16G16Unorm:       vkR16G16Unorm,
	gpuformat.R16G16Sfloat:      vkR16G16Sfloat,
	gpuformat.R16G16B16Unorm:    vkR16G16B16Unorm,
	gpuformat.R16G16B16Sfloat:   vkR16G16B16Sfloat,
	gpuformat.R16G16B16A16Unorm: vkR16G16B16A16Unorm,
	gpuformat.R16G16B16A16Sfloat: vkR16G16B16A16Sfloat,

	gpuformat.R32Sfloat:          vkR32Sfloat,
	gpuformat.R32G32Sfloat:       vkR32G32Sfloat,
	gpuformat.R32G32B32Sfloat:    vkR32G32B32Sfloat,
	gpuformat.R32G32B32A32Sfloat: vkR32G32B32A32Sfloat,

	gpuformat.A2B10G10R10UnormPack32: vkA2B10G10R10UnormPack32,
	gpuformat.B10G11R11UfloatPack32:  vkB10G11R11UfloatPack32,
	gpuformat.E5B9G9R9UfloatPack32:   vkE5B9G9R9UfloatPack32,

	gpuformat.D16Unorm:        vkD16Unorm,
	gpuformat.D32Sfloat:       vkD32Sfloat,
	gpuformat.S8Uint:          vkS8Uint,
	gpuformat.D24UnormS8Uint:  vkD24UnormS8Uint,
	gpuformat.D32SfloatS8Uint: vkD32SfloatS8Uint,
}

var reverseVkFormatMap = buildReverseVkFormatMap()

func buildReverseVkFormatMap() map[uint32]gpuformat.Format {
	m := make(map[uint32]gpuformat.Format, len(vkFormatMap))
	for f, v := range vkFormatMap {
		m[v] = f
	}
	return m
}

// typeSize implements spec.md 4.7: elementSize/componentCount for
// non-packed uncompressed formats, the full element size for packed
// formats, and 1 for compressed/undefined formats.
func typeSize(f gpuformat.Format) (uint32, error) {
	info, ok := gpuformat.Lookup(f)
	if !ok {
		return 1, nil
	}
	if info.Family == gpuformat.FamilyUnsupported {
		return 1, nil
	}

	elemSize, err := gpuformat.ElementSize(f)
	if err != nil {
		return 0, err
	}
	if info.WordBits > 0 {
		return elemSize, nil
	}

	n := gpuformat.NumComponents(f)
	if n == 0 {
		return elemSize, nil
	}
	return elemSize / uint32(n), nil
}
