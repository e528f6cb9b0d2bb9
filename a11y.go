package csscolor

import (
	"math"

	"github.com/gogpu/csscolor/internal/numeric"
	"github.com/gogpu/csscolor/internal/srgb"
)

// WCAG 2 luminance coefficients for linear red, green and blue.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// CIE L* constants: epsilon = 216/24389, kappa = 24389/27.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// Gamma converts an sRGB channel byte to linear light in [0, 1].
// Formula: c = b/255; if c <= 0.04045: c/12.92; else: pow((c+0.055)/1.055, 2.4)
func Gamma(b uint8) float64 {
	return srgb.ToLinear(b)
}

// RelativeLuminance returns the WCAG relative luminance in [0, 1].
// Alpha is ignored.
func (c *Color) RelativeLuminance() float64 {
	return lumR*Gamma(c.rgba[red]) + lumG*Gamma(c.rgba[green]) + lumB*Gamma(c.rgba[blue])
}

// PerceivedLightness returns CIE L* scaled to [0, 1].
func (c *Color) PerceivedLightness() float64 {
	y := c.RelativeLuminance()
	var lstar float64
	if y <= cieEpsilon {
		lstar = cieKappa * y
	} else {
		lstar = 116*math.Cbrt(y) - 16
	}
	return numeric.Clamp(lstar/100, 0, 1)
}

// ContrastRatio returns the WCAG contrast ratio between c and other,
// from 1 (identical luminance) to 21 (black on white). It is symmetric.
func (c *Color) ContrastRatio(other *Color) float64 {
	l1 := c.RelativeLuminance()
	l2 := other.RelativeLuminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// BestTextColor returns "black" or "white", whichever contrasts more with c.
// Ties go to black.
func (c *Color) BestTextColor() string {
	if Black.ContrastRatio(c) >= White.ContrastRatio(c) {
		return "black"
	}
	return "white"
}
