// Package gpuformat is the format catalogue: a closed enumeration of GPU
// pixel formats modeled on a standard GPU format enumeration, queried by
// pure functions for element size, block extent, aspect decomposition,
// and sRGB pairing. It carries no decode/encode logic itself — that
// lives in pkg/texel, which consults this package's per-format
// descriptors.
package gpuformat

// Format identifies one entry in the catalogue. The zero value,
// Undefined, is never returned by a successfully parsed image provider.
type Format uint32

const (
	Undefined Format = iota

	// 8 bits per channel, unorm.
	R8Unorm
	R8G8Unorm
	R8G8B8Unorm
	B8G8R8Unorm
	R8G8B8A8Unorm
	B8G8R8A8Unorm

	// 8 bits per channel, snorm.
	R8Snorm
	R8G8Snorm
	R8G8B8Snorm
	B8G8R8Snorm
	R8G8B8A8Snorm
	B8G8R8A8Snorm

	// 8 bits per channel, uscaled.
	R8Uscaled
	R8G8Uscaled
	R8G8B8Uscaled
	B8G8R8Uscaled
	R8G8B8A8Uscaled
	B8G8R8A8Uscaled

	// 8 bits per channel, sscaled.
	R8Sscaled
	R8G8Sscaled
	R8G8B8Sscaled
	B8G8R8Sscaled
	R8G8B8A8Sscaled
	B8G8R8A8Sscaled

	// 8 bits per channel, uint.
	R8Uint
	R8G8Uint
	R8G8B8Uint
	B8G8R8Uint
	R8G8B8A8Uint
	B8G8R8A8Uint

	// 8 bits per channel, sint.
	R8Sint
	R8G8Sint
	R8G8B8Sint
	B8G8R8Sint
	R8G8B8A8Sint
	B8G8R8A8Sint

	// 8 bits per channel, srgb.
	R8Srgb
	R8G8Srgb
	R8G8B8Srgb
	B8G8R8Srgb
	R8G8B8A8Srgb
	B8G8R8A8Srgb

	// 16 bits per channel.
	R16Unorm
	R16G16Unorm
	R16G16B16Unorm
	R16G16B16A16Unorm
	R16Snorm
	R16G16Snorm
	R16G16B16Snorm
	R16G16B16A16Snorm
	R16Uscaled
	R16G16Uscaled
	R16G16B16Uscaled
	R16G16B16A16Uscaled
	R16Sscaled
	R16G16Sscaled
	R16G16B16Sscaled
	R16G16B16A16Sscaled
	R16Uint
	R16G16Uint
	R16G16B16Uint
	R16G16B16A16Uint
	R16Sint
	R16G16Sint
	R16G16B16Sint
	R16G16B16A16Sint
	R16Sfloat
	R16G16Sfloat
	R16G16B16Sfloat
	R16G16B16A16Sfloat

	// 32 bits per channel.
	R32Uint
	R32G32Uint
	R32G32B32Uint
	R32G32B32A32Uint
	R32Sint
	R32G32Sint
	R32G32B32Sint
	R32G32B32A32Sint
	R32Sfloat
	R32G32Sfloat
	R32G32B32Sfloat
	R32G32B32A32Sfloat

	// 64 bits per channel.
	R64Uint
	R64G64Uint
	R64G64B64Uint
	R64G64B64A64Uint
	R64Sint
	R64G64Sint
	R64G64B64Sint
	R64G64B64A64Sint
	R64Sfloat
	R64G64Sfloat
	R64G64B64Sfloat
	R64G64B64A64Sfloat

	// Packed formats.
	R4G4UnormPack8
	R4G4B4A4UnormPack16
	B4G4R4A4UnormPack16
	R5G6B5UnormPack16
	B5G6R5UnormPack16
	R5G5B5A1UnormPack16
	B5G5R5A1UnormPack16
	A1R5G5B5UnormPack16
	A8B8G8R8UnormPack32
	A8B8G8R8SnormPack32
	A8B8G8R8UscaledPack32
	A8B8G8R8SscaledPack32
	A8B8G8R8UintPack32
	A8B8G8R8SintPack32
	A8B8G8R8SrgbPack32
	A2B10G10R10UnormPack32
	A2B10G10R10SnormPack32
	A2B10G10R10UscaledPack32
	A2B10G10R10SscaledPack32
	A2B10G10R10UintPack32
	A2B10G10R10SintPack32
	A2R10G10B10UnormPack32
	A2R10G10B10SnormPack32
	A2R10G10B10UscaledPack32
	A2R10G10B10SscaledPack32
	A2R10G10B10UintPack32
	A2R10G10B10SintPack32

	// Depth / stencil.
	D16Unorm
	X8D24UnormPack32
	D32Sfloat
	S8Uint
	D16UnormS8Uint
	D24UnormS8Uint
	D32SfloatS8Uint

	// Shared-exponent and other packed floats.
	E5B9G9R9UfloatPack32
	B10G11R11UfloatPack32

	// Block-compressed formats. Cataloged for element size / aspect /
	// sRGB-pairing purposes only: per-texel decode is out of scope
	// (spec Non-goals), so pkg/texel reports these as unsupported.
	Bc1RgbUnormBlock
	Bc1RgbSrgbBlock
	Bc1RgbaUnormBlock
	Bc1RgbaSrgbBlock
	Bc2UnormBlock
	Bc2SrgbBlock
	Bc3UnormBlock
	Bc3SrgbBlock
	Bc4UnormBlock
	Bc4SnormBlock
	Bc5UnormBlock
	Bc5SnormBlock
	Bc6hUfloatBlock
	Bc6hSfloatBlock
	Bc7UnormBlock
	Bc7SrgbBlock

	Etc2R8G8B8UnormBlock
	Etc2R8G8B8SrgbBlock
	Etc2R8G8B8A1UnormBlock
	Etc2R8G8B8A1SrgbBlock
	Etc2R8G8B8A8UnormBlock
	Etc2R8G8B8A8SrgbBlock
	EacR11UnormBlock
	EacR11SnormBlock
	EacR11G11UnormBlock
	EacR11G11SnormBlock

	Astc4x4UnormBlock
	Astc4x4SrgbBlock
	Astc5x5UnormBlock
	Astc5x5SrgbBlock
	Astc6x6UnormBlock
	Astc6x6SrgbBlock
	Astc8x8UnormBlock
	Astc8x8SrgbBlock
	Astc10x10UnormBlock
	Astc10x10SrgbBlock
	Astc12x12UnormBlock
	Astc12x12SrgbBlock

	// Multi-plane YCbCr formats. Cataloged but never produced by a
	// successful provider: multi-plane decode is out of scope.
	G8B8G8R8422Unorm
	B8G8R8G8422Unorm
	G8B8R83Plane420Unorm
	G8B8R82Plane420Unorm
)
