package csscolor

import (
	"image/color"
	"sync/atomic"

	"github.com/gogpu/csscolor/internal/numeric"
)

// Color is an immutable RGBA color.
//
// The four channel bytes are the single source of truth. Hue, saturation
// and lightness are computed from them at most once and cached, or kept
// verbatim when the color was built from HSL.
//
// Use *Color; the zero value is not meaningful and a Color must not be
// copied after first use.
type Color struct {
	rgba [4]uint8
	hsl  atomic.Pointer[hsl]
}

// hsl is the cached HSL triple for a Color.
type hsl struct {
	h, s, l float64
}

// Channel indices into the byte store.
const (
	red = iota
	green
	blue
	alpha
)

// Common colors
var (
	Black       = FromBytes([4]uint8{0, 0, 0, 255})
	White       = FromBytes([4]uint8{255, 255, 255, 255})
	Transparent = FromBytes([4]uint8{0, 0, 0, 0})
)

// FromBytes creates a color from RGBA bytes.
func FromBytes(rgba [4]uint8) *Color {
	return &Color{rgba: rgba}
}

// FromRGB creates an opaque color from red, green and blue bytes.
// It returns an error matching ErrRange if a value is outside [0, 255].
func FromRGB(r, g, b int) (*Color, error) {
	return FromRGBA(r, g, b, 255)
}

// FromRGBA creates a color from red, green, blue and alpha bytes.
// It returns an error matching ErrRange if a value is outside [0, 255].
func FromRGBA(r, g, b, a int) (*Color, error) {
	for i, v := range [4]int{r, g, b, a} {
		if err := checkByte(channelNames[i], v); err != nil {
			return nil, err
		}
	}
	//nolint:gosec // G115: every channel is checked against [0,255] above
	return FromBytes([4]uint8{uint8(r), uint8(g), uint8(b), uint8(a)}), nil
}

// FromRGBFloat creates an opaque color from red, green and blue fractions
// in [0, 1]. Each fraction f maps to the byte round(f*255).
func FromRGBFloat(r, g, b float64) (*Color, error) {
	return FromRGBAFloat(r, g, b, 1)
}

// FromRGBAFloat creates a color from red, green, blue and alpha fractions
// in [0, 1]. It returns an error matching ErrRange otherwise.
func FromRGBAFloat(r, g, b, a float64) (*Color, error) {
	var rgba [4]uint8
	for i, v := range [4]float64{r, g, b, a} {
		if err := checkUnit(channelNames[i], v); err != nil {
			return nil, err
		}
		rgba[i] = numeric.FractionToByte(v)
	}
	return FromBytes(rgba), nil
}

// FromHSL creates an opaque color from hue in degrees, saturation and
// lightness in [0, 1].
func FromHSL(h, s, l float64) (*Color, error) {
	return FromHSLA(h, s, l, 255)
}

// FromHSLA creates a color from hue in degrees, saturation and lightness
// in [0, 1] and an alpha byte.
//
// Hue is wrapped into [0, 360). The given HSL values are kept as the
// color's HSL so they survive without a byte round trip.
func FromHSLA(h, s, l float64, a int) (*Color, error) {
	if err := checkByte("alpha", a); err != nil {
		return nil, err
	}
	//nolint:gosec // G115: alpha is checked against [0,255] above
	return newHSLA(h, s, l, uint8(a))
}

// FromHSLAFloat is like FromHSLA with alpha given as a fraction in [0, 1].
func FromHSLAFloat(h, s, l, a float64) (*Color, error) {
	if err := checkUnit("alpha", a); err != nil {
		return nil, err
	}
	return newHSLA(h, s, l, numeric.FractionToByte(a))
}

func newHSLA(h, s, l float64, a uint8) (*Color, error) {
	r, g, b, err := HSLToRGB(h, s, l)
	if err != nil {
		return nil, err
	}
	c := FromBytes([4]uint8{r, g, b, a})
	c.hsl.Store(&hsl{h: numeric.WrapAngle(h), s: s, l: l})
	return c, nil
}

// Parse creates a color from a CSS color name or hex string.
// Surrounding whitespace is ignored and names match case-insensitively.
// It returns an error matching ErrValue if s is neither.
func Parse(s string) (*Color, error) {
	rgba, err := ParseToBytes(s)
	if err != nil {
		return nil, err
	}
	return FromBytes(rgba), nil
}

// MustParse is like Parse but panics if s cannot be parsed.
// It simplifies initialization of package-level colors.
func MustParse(s string) *Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) *Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromBytes([4]uint8{n.R, n.G, n.B, n.A})
}

var channelNames = [4]string{"red", "green", "blue", "alpha"}

// Red returns the red channel byte.
func (c *Color) Red() uint8 { return c.rgba[red] }

// Green returns the green channel byte.
func (c *Color) Green() uint8 { return c.rgba[green] }

// Blue returns the blue channel byte.
func (c *Color) Blue() uint8 { return c.rgba[blue] }

// Alpha returns the alpha channel byte.
func (c *Color) Alpha() uint8 { return c.rgba[alpha] }

// Bytes returns the channels in RGBA order.
func (c *Color) Bytes() [4]uint8 { return c.rgba }

// NRGBA returns the color as a non-premultiplied color.NRGBA.
func (c *Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.rgba[red], G: c.rgba[green], B: c.rgba[blue], A: c.rgba[alpha]}
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// HSL returns hue in degrees [0, 360), saturation and lightness in [0, 1].
func (c *Color) HSL() (h, s, l float64) {
	v := c.cachedHSL()
	return v.h, v.s, v.l
}

// Hue returns the hue in degrees [0, 360).
func (c *Color) Hue() float64 { return c.cachedHSL().h }

// Saturation returns the HSL saturation in [0, 1].
func (c *Color) Saturation() float64 { return c.cachedHSL().s }

// Lightness returns the HSL lightness in [0, 1].
func (c *Color) Lightness() float64 { return c.cachedHSL().l }

// cachedHSL returns the memoized HSL triple, deriving it from the bytes on
// first use. Concurrent first reads may both compute; the first store wins.
func (c *Color) cachedHSL() *hsl {
	if v := c.hsl.Load(); v != nil {
		return v
	}
	h, s, l := rgbToHSL(c.rgba[red], c.rgba[green], c.rgba[blue])
	v := &hsl{h: h, s: s, l: l}
	if c.hsl.CompareAndSwap(nil, v) {
		return v
	}
	return c.hsl.Load()
}

// WithRed returns a copy of c with the red channel replaced.
func (c *Color) WithRed(v int) (*Color, error) { return c.withByte(red, v) }

// WithGreen returns a copy of c with the green channel replaced.
func (c *Color) WithGreen(v int) (*Color, error) { return c.withByte(green, v) }

// WithBlue returns a copy of c with the blue channel replaced.
func (c *Color) WithBlue(v int) (*Color, error) { return c.withByte(blue, v) }

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c *Color) WithAlpha(v int) (*Color, error) { return c.withByte(alpha, v) }

// WithRedFloat returns a copy of c with the red channel set from a fraction.
func (c *Color) WithRedFloat(f float64) (*Color, error) { return c.withFraction(red, f) }

// WithGreenFloat returns a copy of c with the green channel set from a fraction.
func (c *Color) WithGreenFloat(f float64) (*Color, error) { return c.withFraction(green, f) }

// WithBlueFloat returns a copy of c with the blue channel set from a fraction.
func (c *Color) WithBlueFloat(f float64) (*Color, error) { return c.withFraction(blue, f) }

// WithAlphaFloat returns a copy of c with the alpha channel set from a fraction.
func (c *Color) WithAlphaFloat(f float64) (*Color, error) { return c.withFraction(alpha, f) }

func (c *Color) withByte(i, v int) (*Color, error) {
	if err := checkByte(channelNames[i], v); err != nil {
		return nil, err
	}
	rgba := c.rgba
	//nolint:gosec // G115: v is checked against [0,255] above
	rgba[i] = uint8(v)
	return FromBytes(rgba), nil
}

func (c *Color) withFraction(i int, f float64) (*Color, error) {
	if err := checkUnit(channelNames[i], f); err != nil {
		return nil, err
	}
	rgba := c.rgba
	rgba[i] = numeric.FractionToByte(f)
	return FromBytes(rgba), nil
}

// WithHue returns a color with the given hue in degrees and the same
// saturation, lightness and alpha as c.
func (c *Color) WithHue(h float64) (*Color, error) {
	v := c.cachedHSL()
	return newHSLA(h, v.s, v.l, c.rgba[alpha])
}

// WithSaturation returns a color with the given saturation in [0, 1] and
// the same hue, lightness and alpha as c.
func (c *Color) WithSaturation(s float64) (*Color, error) {
	v := c.cachedHSL()
	return newHSLA(v.h, s, v.l, c.rgba[alpha])
}

// WithLightness returns a color with the given lightness in [0, 1] and the
// same hue, saturation and alpha as c.
func (c *Color) WithLightness(l float64) (*Color, error) {
	v := c.cachedHSL()
	return newHSLA(v.h, v.s, l, c.rgba[alpha])
}

// Equal reports whether other is a *Color with exactly the same four bytes.
// Any other operand, including a nil *Color, compares unequal.
func (c *Color) Equal(other any) bool {
	o, ok := other.(*Color)
	if !ok || o == nil || c == nil {
		return false
	}
	return c.rgba == o.rgba
}
