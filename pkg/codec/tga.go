package codec

import (
	"fmt"

	"github.com/ftrvxmtrx/tga"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// OpenTGA is part of the STB-fallback table, decoded to r8g8b8a8Unorm.
// TGA has no reliable magic signature; a failed decode is reported as
// ErrInvalidType so the dispatcher moves on to the next probe.
func OpenTGA(r stream.Reader) (provider.Provider, error) {
	img, err := tga.Decode(asIOReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: tga decode: %v", ErrInvalidType, err)
	}

	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}

	data := toStraightRGBA(img)
	return provider.WrapSingle(size, gpuformat.R8G8B8A8Unorm, data)
}
