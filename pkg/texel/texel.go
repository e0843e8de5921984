// Package texel is the per-texel codec: it decodes and encodes a single
// texel of any supported, non-compressed gpuformat.Format to and from a
// canonical 4-component double-precision color vector, handling bit-level
// packing, component swizzling, the sRGB transfer function, and the
// shared-exponent HDR encoding.
package texel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/larkspur-oss/imgio/pkg/gpuformat"
)

// Color is the canonical RGBA color vector. Components are linear light
// for normalized/float formats, or the raw integer value (widened to
// double) for integer formats. A missing component on read defaults to
// 0, except alpha which defaults to 1.
type Color struct {
	R, G, B, A float64
}

// ErrUnsupportedFormat is returned for formats the codec deliberately
// does not decode: block-compressed, multi-plane, and b10g11r11.
var ErrUnsupportedFormat = errors.New("texel: unsupported format")

// Read decodes one texel of format f from data into a Color.
func Read(f gpuformat.Format, data []byte) (Color, error) {
	info, ok := gpuformat.Lookup(f)
	if !ok {
		return Color{}, fmt.Errorf("texel: unknown format %v", f)
	}

	switch info.Family {
	case gpuformat.FamilyUnsupported:
		return Color{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	case gpuformat.FamilyDepthStencil:
		return readDepthStencil(f, info, data)
	case gpuformat.FamilyUfloatShared:
		return readSharedExponent(data)
	}

	raw, err := unpackFields(info, data)
	if err != nil {
		return Color{}, err
	}

	comp := make([]float64, len(raw))
	for i, v := range raw {
		comp[i] = decodeComponent(info.Family, v, info.Fields[i])
	}

	c := assembleColor(info, comp)
	if info.Family == gpuformat.FamilySrgb {
		c.R, c.G, c.B = SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B)
	}
	return c, nil
}

// Write encodes c into data as one texel of format f.
func Write(f gpuformat.Format, data []byte, c Color) error {
	info, ok := gpuformat.Lookup(f)
	if !ok {
		return fmt.Errorf("texel: unknown format %v", f)
	}

	switch info.Family {
	case gpuformat.FamilyUnsupported:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	case gpuformat.FamilyDepthStencil:
		return writeDepthStencil(f, info, data, c)
	case gpuformat.FamilyUfloatShared:
		return writeSharedExponent(data, c)
	}

	if info.Family == gpuformat.FamilySrgb {
		c.R, c.G, c.B = LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B)
	}

	comp := disassembleColor(info, c)
	raw := make([]uint64, len(comp))
	for i, v := range comp {
		raw[i] = encodeComponent(info.Family, v, info.Fields[i])
	}

	return packFields(info, data, raw)
}

// Convert decodes one texel of srcFmt and re-encodes it into dstFmt.
func Convert(srcFmt gpuformat.Format, srcData []byte, dstFmt gpuformat.Format, dstData []byte) error {
	c, err := Read(srcFmt, srcData)
	if err != nil {
		return err
	}
	return Write(dstFmt, dstData, c)
}

func assembleColor(info gpuformat.Info, comp []float64) Color {
	c := Color{A: 1}
	set := func(k, v int) {
		switch k {
		case 0:
			c.R = comp[v]
		case 1:
			c.G = comp[v]
		case 2:
			c.B = comp[v]
		case 3:
			c.A = comp[v]
		}
	}

	if len(info.Swizzle) == 0 {
		for i := range comp {
			set(i, i)
		}
		return c
	}

	for k, srcIdx := range info.Swizzle {
		set(k, srcIdx)
	}
	return c
}

func disassembleColor(info gpuformat.Info, c Color) []float64 {
	n := len(info.Fields)
	comp := make([]float64, n)
	channel := [4]float64{c.R, c.G, c.B, c.A}

	if len(info.Swizzle) == 0 {
		for i := 0; i < n; i++ {
			comp[i] = channel[i]
		}
		return comp
	}

	// info.Swizzle[k] = field index supplying destination channel k;
	// invert it to find, for each field index, which channel feeds it.
	for k, fieldIdx := range info.Swizzle {
		comp[fieldIdx] = channel[k]
	}
	return comp
}

func decodeComponent(family gpuformat.Family, raw uint64, bits int) float64 {
	switch family {
	case gpuformat.FamilyUnorm, gpuformat.FamilySrgb:
		max := float64((uint64(1) << uint(bits)) - 1)
		return float64(raw) / max
	case gpuformat.FamilySnorm:
		s := signExtend(raw, bits)
		max := float64((int64(1) << uint(bits-1)) - 1)
		v := float64(s) / max
		if v < -1 {
			v = -1
		}
		return v
	case gpuformat.FamilyUscaled:
		return float64(raw)
	case gpuformat.FamilySscaled:
		return float64(signExtend(raw, bits))
	case gpuformat.FamilyUint:
		return float64(raw)
	case gpuformat.FamilySint:
		return float64(signExtend(raw, bits))
	case gpuformat.FamilySfloat:
		return decodeFloat(raw, bits)
	default:
		return 0
	}
}

func encodeComponent(family gpuformat.Family, v float64, bits int) uint64 {
	switch family {
	case gpuformat.FamilyUnorm, gpuformat.FamilySrgb:
		max := float64((uint64(1) << uint(bits)) - 1)
		return uint64(math.Round(clamp01(v) * max))
	case gpuformat.FamilySnorm:
		max := float64((int64(1) << uint(bits-1)) - 1)
		vv := v
		if vv < -1 {
			vv = -1
		} else if vv > 1 {
			vv = 1
		}
		return signTrim(int64(math.Round(vv*max)), bits)
	case gpuformat.FamilyUscaled:
		return uint64(math.Round(v))
	case gpuformat.FamilySscaled:
		return signTrim(int64(math.Round(v)), bits)
	case gpuformat.FamilyUint:
		return uint64(math.Round(v))
	case gpuformat.FamilySint:
		return signTrim(int64(math.Round(v)), bits)
	case gpuformat.FamilySfloat:
		return encodeFloat(v, bits)
	default:
		return 0
	}
}

func signExtend(raw uint64, bits int) int64 {
	shift := 64 - bits
	return int64(raw<<uint(shift)) >> uint(shift)
}

func signTrim(v int64, bits int) uint64 {
	mask := uint64(1)<<uint(bits) - 1
	return uint64(v) & mask
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func decodeFloat(raw uint64, bits int) float64 {
	switch bits {
	case 16:
		return float64(halfToFloat32(uint16(raw)))
	case 32:
		return float64(math.Float32frombits(uint32(raw)))
	case 64:
		return math.Float64frombits(raw)
	default:
		return 0
	}
}

func encodeFloat(v float64, bits int) uint64 {
	switch bits {
	case 16:
		return uint64(float32ToHalf(float32(v)))
	case 32:
		return uint64(math.Float32bits(float32(v)))
	case 64:
		return math.Float64bits(v)
	default:
		return 0
	}
}

// unpackFields extracts each declared field from data, most-significant
// field first. Packed formats share a single WordBits-wide little-endian
// word; non-packed formats store each component in its own byte-aligned
// slot.
func unpackFields(info gpuformat.Info, data []byte) ([]uint64, error) {
	n := len(info.Fields)
	raw := make([]uint64, n)

	if info.WordBits > 0 {
		word, err := readWord(data, info.WordBits)
		if err != nil {
			return nil, err
		}

		shift := info.WordBits
		for i, w := range info.Fields {
			shift -= w
			mask := uint64(1)<<uint(w) - 1
			raw[i] = (word >> uint(shift)) & mask
		}
		return raw, nil
	}

	off := 0
	for i, w := range info.Fields {
		byteLen := w / 8
		if off+byteLen > len(data) {
			return nil, fmt.Errorf("texel: short buffer reading field %d", i)
		}
		raw[i] = readFixed(data[off:off+byteLen], w)
		off += byteLen
	}
	return raw, nil
}

func packFields(info gpuformat.Info, data []byte, raw []uint64) error {
	if info.WordBits > 0 {
		var word uint64
		shift := info.WordBits
		for i, w := range info.Fields {
			shift -= w
			mask := uint64(1)<<uint(w) - 1
			word |= (raw[i] & mask) << uint(shift)
		}
		return writeWord(data, info.WordBits, word)
	}

	off := 0
	for i, w := range info.Fields {
		byteLen := w / 8
		if off+byteLen > len(data) {
			return fmt.Errorf("texel: short buffer writing field %d", i)
		}
		writeFixed(data[off:off+byteLen], w, raw[i])
		off += byteLen
	}
	return nil
}

func readWord(data []byte, wordBits int) (uint64, error) {
	n := wordBits / 8
	if len(data) < n {
		return 0, fmt.Errorf("texel: short buffer reading %d-bit word", wordBits)
	}
	switch wordBits {
	case 8:
		return uint64(data[0]), nil
	case 16:
		return uint64(binary.LittleEndian.Uint16(data)), nil
	case 32:
		return uint64(binary.LittleEndian.Uint32(data)), nil
	default:
		return 0, fmt.Errorf("texel: unsupported packed word width %d", wordBits)
	}
}

func writeWord(data []byte, wordBits int, word uint64) error {
	switch wordBits {
	case 8:
		data[0] = byte(word)
	case 16:
		binary.LittleEndian.PutUint16(data, uint16(word))
	case 32:
		binary.LittleEndian.PutUint32(data, uint32(word))
	default:
		return fmt.Errorf("texel: unsupported packed word width %d", wordBits)
	}
	return nil
}

func readFixed(b []byte, bits int) uint64 {
	switch bits {
	case 8:
		return uint64(b[0])
	case 16:
		return uint64(binary.LittleEndian.Uint16(b))
	case 32:
		return uint64(binary.LittleEndian.Uint32(b))
	case 64:
		return binary.LittleEndian.Uint64(b)
	default:
		return 0
	}
}

func writeFixed(b []byte, bits int, v uint64) {
	switch bits {
	case 8:
		b[0] = byte(v)
	case 16:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case 64:
		binary.LittleEndian.PutUint64(b, v)
	}
}
