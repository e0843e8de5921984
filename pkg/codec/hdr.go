package codec

import (
	"bytes"
	"fmt"

	"github.com/mdouchement/hdr"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

var hdrSignature = []byte("#?RADIANCE")

// OpenHDR is the one STB-fallback entry that actually carries HDR data:
// Radiance .hdr files decode to r32g32b32a32Sfloat, the only fallback
// format promoted past 8-bit Unorm.
func OpenHDR(r stream.Reader) (provider.Provider, error) {
	var sig [10]byte
	if err := r.Read(sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	if !bytes.Equal(sig[:], hdrSignature) {
		return nil, ErrInvalidType
	}
	if err := r.Seek(0, stream.SeekSet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}

	img, err := hdr.Decode(asIOReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: hdr decode: %v", ErrInternal, err)
	}

	b := img.Bounds()
	size := layout.Size{X: uint32(b.Dx()), Y: uint32(b.Dy()), Z: 1}
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmpty
	}

	data := toFloatRGBA(img)
	return provider.WrapSingle(size, gpuformat.R32G32B32A32Sfloat, data)
}
