package codec

import (
	"bytes"
	"fmt"
	"image/gif"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

var gifSignatures = [][]byte{[]byte("GIF87a"), []byte("GIF89a")}

// OpenGIF is part of the STB-fallback table. Only the first frame is
// decoded; GIF has no first-class place in the mip/layer/cubemap model
// this library presents.
func OpenGIF(r stream.Reader) (provider.Provider, error) {
	var sig [6]byte
	if err := r.Read(sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	matched := false
	for _, s := range gifSignatures {
		if bytes.Equal(sig[:], s) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, ErrInvalidType
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}

	img, err := gif.Decode(asIOReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: gif decode: %v", ErrInternal, err)
	}

	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}

	data := toStraightRGBA(img)
	return provider.WrapSingle(size, gpuformat.R8G8B8A8Unorm, data)
}
