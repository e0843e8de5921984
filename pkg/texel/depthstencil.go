package texel

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
)

// Depth/stencil composites are stored as a depth component immediately
// followed by an 8-bit stencil component, byte-aligned (never bit-packed).
// Depth, when present, occupies R; stencil, when present, occupies G.
// The 24-bit depth field of d24UnormS8Uint is big-endian (MSB first);
// x8D24UnormPack32's 32-bit packed word stays little-endian like every
// other packed format.

func readDepthStencil(f gpuformat.Format, info gpuformat.Info, data []byte) (Color, error) {
	sz, err := gpuformat.ElementSize(f)
	if err != nil {
		return Color{}, err
	}
	if uint32(len(data)) < sz {
		return Color{}, fmt.Errorf("texel: short buffer reading %v", f)
	}

	c := Color{A: 1}

	switch info.DS {
	case gpuformat.DSD16:
		c.R = float64(binary.LittleEndian.Uint16(data)) / float64(0xffff)
	case gpuformat.DSX8D24:
		v := binary.LittleEndian.Uint32(append(append([]byte{}, data[:3]...), 0)) & 0xffffff
		c.R = float64(v) / float64(1<<24-1)
	case gpuformat.DSD24S8:
		v := uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
		c.R = float64(v) / float64(1<<24-1)
		c.G = float64(data[3])
	case gpuformat.DSD32:
		c.R = float64(math.Float32frombits(binary.LittleEndian.Uint32(data)))
	case gpuformat.DSD32S8:
		c.R = float64(math.Float32frombits(binary.LittleEndian.Uint32(data)))
		c.G = float64(data[4])
	case gpuformat.DSS8:
		c.G = float64(data[0])
	case gpuformat.DSD16S8:
		c.R = float64(binary.LittleEndian.Uint16(data)) / float64(0xffff)
		c.G = float64(data[2])
	default:
		return Color{}, fmt.Errorf("texel: unhandled depth/stencil layout for %v", f)
	}
	return c, nil
}

func writeDepthStencil(f gpuformat.Format, info gpuformat.Info, data []byte, c Color) error {
	sz, err := gpuformat.ElementSize(f)
	if err != nil {
		return err
	}
	if uint32(len(data)) < sz {
		return fmt.Errorf("texel: short buffer writing %v", f)
	}

	switch info.DS {
	case gpuformat.DSD16:
		binary.LittleEndian.PutUint16(data, uint16(math.Round(clamp01(c.R)*0xffff)))
	case gpuformat.DSX8D24:
		v := uint32(math.Round(clamp01(c.R) * float64(1<<24-1)))
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, v)
		copy(data[:3], buf[:3])
	case gpuformat.DSD24S8:
		v := uint32(math.Round(clamp01(c.R) * float64(1<<24-1)))
		data[0] = byte((v >> 16) & 0xff)
		data[1] = byte((v >> 8) & 0xff)
		data[2] = byte(v & 0xff)
		data[3] = byte(uint32(math.Round(c.G)))
	case gpuformat.DSD32:
		binary.LittleEndian.PutUint32(data, math.Float32bits(float32(c.R)))
	case gpuformat.DSD32S8:
		binary.LittleEndian.PutUint32(data, math.Float32bits(float32(c.R)))
		data[4] = byte(uint32(math.Round(c.G)))
	case gpuformat.DSS8:
		data[0] = byte(uint32(math.Round(c.G)))
	case gpuformat.DSD16S8:
		binary.LittleEndian.PutUint16(data, uint16(math.Round(clamp01(c.R)*0xffff)))
		data[2] = byte(uint32(math.Round(c.G)))
	default:
		return fmt.Errorf("texel: unhandled depth/stencil layout for %v", f)
	}
	return nil
}
