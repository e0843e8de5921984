package texel

import "math"

// LinearToSRGB applies the sRGB OETF to a linear-light component in [0,1].
func LinearToSRGB(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1.0/2.4) - 0.055
}

// SRGBToLinear applies the sRGB EOTF to a gamma-encoded component in [0,1].
func SRGBToLinear(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}
