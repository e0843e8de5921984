package codec

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
	"github.com/larkspur-oss/imgio/pkg/layout"
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

// OpenEXR decodes a single-part, non-deep, non-tiled scanline EXR image.
// The catalogue format is picked from the pixel type (half/float/uint)
// and the highest-suffix channel present among R/G/B/A (matched after
// the last '.' in the channel name, so multi-view names like
// "left.R" are recognized); missing lower channels are not possible
// since channel selection always starts from R, matching the original
// parseFormat table's maxChan logic. Multi-part and deep files are
// ErrCantRepresent; tiled scanline storage is out of scope for this
// adapter and also reported as ErrCantRepresent.
func OpenEXR(r stream.Reader) (provider.Provider, error) {
	raw, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var ver [4]byte
	if len(raw) < 4 || copy(ver[:], raw[:4]) != 4 || ver[0] != 0x76 || ver[1] != 0x2f || ver[2] != 0x31 || ver[3] != 0x01 {
		return nil, ErrInvalidType
	}

	exrFile, err := exr.OpenReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	if exrFile.NumParts() > 1 {
		return nil, fmt.Errorf("%w: multi-part EXR", ErrCantRepresent)
	}
	if exrFile.IsDeep() {
		return nil, fmt.Errorf("%w: deep EXR", ErrCantRepresent)
	}

	header := exrFile.Header(0)
	if header == nil {
		return nil, fmt.Errorf("%w: missing header", ErrInternal)
	}
	if header.IsTiled() {
		return nil, fmt.Errorf("%w: tiled EXR", ErrCantRepresent)
	}

	dataWindow := header.DataWindow()
	width := int(dataWindow.Width())
	height := int(dataWindow.Height())
	if width <= 0 || height <= 0 {
		return nil, ErrEmpty
	}

	sorted := header.Channels().SortedByName()
	byLetter := map[string]exr.Channel{}
	for _, ch := range sorted {
		letter := suffixLetter(ch.Name)
		if letter == "" {
			continue
		}
		if _, ok := byLetter["R"]; letter == "R" && !ok {
			byLetter["R"] = ch
		}
		if _, ok := byLetter["G"]; letter == "G" && !ok {
			byLetter["G"] = ch
		}
		if _, ok := byLetter["B"]; letter == "B" && !ok {
			byLetter["B"] = ch
		}
		if _, ok := byLetter["A"]; letter == "A" && !ok {
			byLetter["A"] = ch
		}
	}

	rCh, hasR := byLetter["R"]
	if !hasR {
		return nil, fmt.Errorf("%w: no R channel", ErrEmpty)
	}

	maxChan := 0
	order := []string{"R"}
	for _, letter := range []string{"G", "B", "A"} {
		if _, ok := byLetter[letter]; ok {
			order = append(order, letter)
			maxChan++
		} else {
			break
		}
	}

	format, typeSize, err := exrFormat(rCh.Type, maxChan)
	if err != nil {
		return nil, err
	}

	reader, err := exr.NewScanlineReaderPart(exrFile, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	frameBuffer, buffers := exr.AllocateChannels(header.Channels(), dataWindow)
	reader.SetFrameBuffer(frameBuffer)
	if err := reader.ReadPixels(int(dataWindow.Min.Y), int(dataWindow.Max.Y)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	n := len(order)
	out := make([]byte, width*height*n*typeSize)
	channelBufs := make([][]byte, n)
	for i, letter := range order {
		channelBufs[i] = buffers[byLetter[letter].Name]
	}
	for px := 0; px < width*height; px++ {
		for i := 0; i < n; i++ {
			src := channelBufs[i][px*typeSize : px*typeSize+typeSize]
			dst := out[(px*n+i)*typeSize : (px*n+i)*typeSize+typeSize]
			copy(dst, src)
		}
	}

	size := layout.Size{X: uint32(width), Y: uint32(height), Z: 1}
	return provider.WrapSingle(size, format, out)
}

func suffixLetter(name string) string {
	idx := strings.LastIndex(name, ".")
	suffix := name
	if idx >= 0 {
		suffix = name[idx+1:]
	}
	switch suffix {
	case "R", "G", "B", "A":
		return suffix
	default:
		return ""
	}
}

func exrFormat(pt exr.PixelType, maxChan int) (gpuformat.Format, int, error) {
	switch pt {
	case exr.PixelTypeUint:
		switch maxChan {
		case 0:
			return gpuformat.R32Uint, 4, nil
		case 1:
			return gpuformat.R32G32Uint, 4, nil
		case 2:
			return gpuformat.R32G32B32Uint, 4, nil
		case 3:
			return gpuformat.R32G32B32A32Uint, 4, nil
		}
	case exr.PixelTypeHalf:
		switch maxChan {
		case 0:
			return gpuformat.R16Sfloat, 2, nil
		case 1:
			return gpuformat.R16G16Sfloat, 2, nil
		case 2:
			return gpuformat.R16G16B16Sfloat, 2, nil
		case 3:
			return gpuformat.R16G16B16A16Sfloat, 2, nil
		}
	case exr.PixelTypeFloat:
		switch maxChan {
		case 0:
			return gpuformat.R32Sfloat, 4, nil
		case 1:
			return gpuformat.R32G32Sfloat, 4, nil
		case 2:
			return gpuformat.R32G32B32Sfloat, 4, nil
		case 3:
			return gpuformat.R32G32B32A32Sfloat, 4, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: unrecognized EXR pixel type", ErrUnsupportedFormat)
}
