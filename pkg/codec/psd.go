package codec

import (
	"fmt"

	"github.com/oov/psd"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

var psdSignature = []byte{'8', 'B', 'P', 'S'}

// OpenPSD is part of the STB-fallback table: it reads the flattened
// preview canvas of a PSD document (layers are not exposed individually)
// and decodes it to r8g8b8a8Unorm.
func OpenPSD(r stream.Reader) (provider.Provider, error) {
	var sig [4]byte
	if err := r.Read(sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	match := true
	for i, c := range psdSignature {
		if sig[i] != c {
			match = false
			break
		}
	}
	if !match {
		return nil, ErrInvalidType
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}

	doc, err := psd.Decode(asIOReader(r), &psd.DecodeOptions{SkipLayerImage: true})
	if err != nil {
		return nil, fmt.Errorf("%w: psd decode: %v", ErrInternal, err)
	}

	img := doc.Picker
	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}

	data := toStraightRGBA(img)
	return provider.WrapSingle(size, gpuformat.R8G8B8A8Unorm, data)
}
