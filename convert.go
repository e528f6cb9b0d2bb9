package csscolor

import (
	"math"

	"github.com/gogpu/csscolor/internal/numeric"
)

// RGBToHSL converts red, green and blue bytes to hue in degrees [0, 360),
// saturation [0, 1] and lightness [0, 1].
//
// Achromatic inputs (max and min channel equal within 1e-9) report hue 0
// and saturation 0. It returns an error matching ErrRange if any input is
// outside [0, 255].
func RGBToHSL(r, g, b int) (h, s, l float64, err error) {
	if err := checkByte("red", r); err != nil {
		return 0, 0, 0, err
	}
	if err := checkByte("green", g); err != nil {
		return 0, 0, 0, err
	}
	if err := checkByte("blue", b); err != nil {
		return 0, 0, 0, err
	}
	h, s, l = rgbToHSL(uint8(r), uint8(g), uint8(b))
	return h, s, l, nil
}

// rgbToHSL is RGBToHSL for bytes the caller already holds.
func rgbToHSL(rb, gb, bb uint8) (h, s, l float64) {
	r := float64(rb) / 255
	g := float64(gb) / 255
	b := float64(bb) / 255

	hi := math.Max(math.Max(r, g), b)
	lo := math.Min(math.Min(r, g), b)
	l = (hi + lo) / 2

	if numeric.ApproxEqual(hi, lo) {
		return 0, 0, l
	}

	d := hi - lo
	switch hi {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h = numeric.WrapAngle(h * 60)
	s = numeric.Clamp(d/(1-math.Abs(2*l-1)), 0, 1)
	return h, s, l
}

// HSLToRGB converts hue in degrees, saturation [0, 1] and lightness [0, 1]
// to red, green and blue bytes.
//
// Hue is wrapped into [0, 360) first. It returns an error matching ErrRange
// if saturation or lightness is outside [0, 1] or hue is not finite.
func HSLToRGB(h, s, l float64) (r, g, b uint8, err error) {
	if err := checkHue(h); err != nil {
		return 0, 0, 0, err
	}
	if !numeric.InUnit(s) {
		return 0, 0, 0, unitRangeError("saturation", s)
	}
	if !numeric.InUnit(l) {
		return 0, 0, 0, unitRangeError("lightness", l)
	}
	r, g, b = hslToRGB(numeric.WrapAngle(h), s, l)
	return r, g, b, nil
}

// hslToRGB evaluates the closed-form CSS Color 4 conversion for a wrapped
// hue and in-range saturation and lightness.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	a := s * math.Min(l, 1-l)
	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		c := l - a*numeric.Clamp(math.Min(k-3, 9-k), -1, 1)
		return numeric.FractionToByte(c)
	}
	return f(0), f(8), f(4)
}

func checkByte(field string, v int) error {
	if v < 0 || v > 255 {
		return byteRangeError(field, v)
	}
	return nil
}

func checkUnit(field string, v float64) error {
	if !numeric.InUnit(v) {
		return unitRangeError(field, v)
	}
	return nil
}

func checkHue(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return &RangeError{Field: "hue", Value: h, Min: math.Inf(-1), Max: math.Inf(1)}
	}
	return nil
}
