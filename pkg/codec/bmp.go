package codec

import (
	"fmt"

	"golang.org/x/image/bmp"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// OpenBMP is part of the STB-fallback table: LDR formats the dispatcher
// only reaches when no dedicated codec claims the extension, decoded to
// r8g8b8a8Unorm.
func OpenBMP(r stream.Reader) (provider.Provider, error) {
	var sig [2]byte
	if err := r.Read(sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	if sig[0] != 'B' || sig[1] != 'M' {
		return nil, ErrInvalidType
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}

	img, err := bmp.Decode(asIOReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: bmp decode: %v", ErrInternal, err)
	}

	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}

	data := toStraightRGBA(img)
	return provider.WrapSingle(size, gpuformat.R8G8B8A8Unorm, data)
}
