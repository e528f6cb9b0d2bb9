// Package srgb provides the sRGB electro-optical transfer function used by
// the luminance calculations.
//
// Decoding goes through a 256-entry lookup table built at init with the
// exact piecewise formula, so ToLinear and ToLinearSlow agree bit for bit.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - WCAG 2 relative luminance: https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
package srgb

import "math"

// Threshold is the encoded value at or below which the transfer function
// is linear.
const Threshold = 0.04045

// toLinearLUT maps an sRGB byte [0-255] to linear light [0.0-1.0].
var toLinearLUT [256]float64

func init() {
	for i := range toLinearLUT {
		toLinearLUT[i] = Decode(float64(i) / 255)
	}
}

// Decode converts an sRGB-encoded fraction in [0,1] to linear light.
// Formula: if c <= 0.04045: c/12.92; else: pow((c+0.055)/1.055, 2.4)
func Decode(c float64) float64 {
	if c <= Threshold {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ToLinear converts an sRGB byte to linear light using the lookup table.
func ToLinear(b uint8) float64 {
	return toLinearLUT[b]
}

// ToLinearSlow converts an sRGB byte to linear light with math.Pow.
//
// This is the reference implementation for ToLinear.
func ToLinearSlow(b uint8) float64 {
	return Decode(float64(b) / 255)
}
