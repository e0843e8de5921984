package codec

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

var jpegSignature = []byte{0xFF, 0xD8, 0xFF}

// OpenJPEG decodes a JPEG stream to straight RGBA and wraps it as a
// single-subresource r8g8b8a8Srgb provider, matching the RGBA-output
// decompression convention used throughout this codec package.
func OpenJPEG(r stream.Reader) (provider.Provider, error) {
	var sig [3]byte
	if err := r.Read(sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	if !bytes.Equal(sig[:], jpegSignature) {
		return nil, ErrInvalidType
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}

	img, err := jpeg.Decode(asIOReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: jpeg decode: %v", ErrInternal, err)
	}

	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}

	data := toStraightRGBA(img)
	return provider.WrapSingle(size, gpuformat.R8G8B8A8Srgb, data)
}
