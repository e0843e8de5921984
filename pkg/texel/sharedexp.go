package texel

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Shared-exponent 5/9/9/9 packed float (E5B9G9R9UfloatPack32), transcribed
// from the reference codec's e5b9g9r9 encode/decode routines.
const (
	expBias        = 15
	maxBiasedExp   = 32
	maxExp         = maxBiasedExp - expBias // 17
	mantissaValues = 512
	maxMantissa    = mantissaValues - 1 // 511
)

var sharedExpMaxValue = float64(maxMantissa) / float64(mantissaValues) * math.Pow(2, float64(maxExp))

func readSharedExponent(data []byte) (Color, error) {
	if len(data) < 4 {
		return Color{}, fmt.Errorf("texel: short buffer reading shared-exponent word")
	}
	word := binary.LittleEndian.Uint32(data)

	r := word & 0x1ff
	g := (word >> 9) & 0x1ff
	b := (word >> 18) & 0x1ff
	exp := (word >> 27) & 0x1f

	scale := math.Pow(2, float64(exp)-expBias-9)
	return Color{
		R: float64(r) * scale,
		G: float64(g) * scale,
		B: float64(b) * scale,
		A: 1,
	}, nil
}

func writeSharedExponent(data []byte, c Color) error {
	if len(data) < 4 {
		return fmt.Errorf("texel: short buffer writing shared-exponent word")
	}

	clamp := func(v float64) float64 {
		if math.IsNaN(v) || v < 0 {
			return 0
		}
		if v > sharedExpMaxValue {
			return sharedExpMaxValue
		}
		return v
	}

	rc, gc, bc := clamp(c.R), clamp(c.G), clamp(c.B)
	maxrgb := rc
	if gc > maxrgb {
		maxrgb = gc
	}
	if bc > maxrgb {
		maxrgb = bc
	}

	expShared := floorLog2Shared(maxrgb) + 1 + expBias
	if expShared < 0 {
		expShared = 0
	}

	denom := math.Pow(2, float64(expShared-expBias-9))
	maxm := int64(math.Floor(maxrgb/denom + 0.5))
	if maxm == mantissaValues {
		denom *= 2
		expShared++
	}

	round := func(v float64) uint32 {
		m := int64(math.Floor(v/denom + 0.5))
		if m < 0 {
			m = 0
		}
		if m > maxMantissa {
			m = maxMantissa
		}
		return uint32(m)
	}

	rm, gm, bm := round(rc), round(gc), round(bc)
	word := (uint32(expShared) << 27) | (bm << 18) | (gm << 9) | rm
	binary.LittleEndian.PutUint32(data, word)
	return nil
}

func floorLog2Shared(v float64) int {
	if v <= 0 {
		return -expBias - 9
	}
	return int(math.Floor(math.Log2(v)))
}
