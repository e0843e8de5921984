package codec

import (
	"bytes"
	"fmt"

	"golang.org/x/image/webp"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

var webpRIFF = []byte("RIFF")
var webpFourCC = []byte("WEBP")

// OpenWebP decodes a WebP stream to straight RGBA and wraps it as a
// single-subresource r8g8b8a8Srgb provider. Animation frames beyond the
// first are not materialized as layers; x/image/webp itself only
// decodes the first frame.
func OpenWebP(r stream.Reader) (provider.Provider, error) {
	var hdr [12]byte
	if err := r.Read(hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	if !bytes.Equal(hdr[0:4], webpRIFF) || !bytes.Equal(hdr[8:12], webpFourCC) {
		return nil, ErrInvalidType
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}

	img, err := webp.Decode(asIOReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: webp decode: %v", ErrInternal, err)
	}

	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}

	data := toStraightRGBA(img)
	return provider.WrapSingle(size, gpuformat.R8G8B8A8Srgb, data)
}
