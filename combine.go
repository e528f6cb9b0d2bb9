package csscolor

import (
	"math"
)

// Mix linearly interpolates every channel, alpha included, from c toward
// other by fraction f in [0, 1]. f == 0 yields a copy of c and f == 1 a
// copy of other.
func (c *Color) Mix(other *Color, f float64) (*Color, error) {
	if err := checkUnit("fraction", f); err != nil {
		return nil, err
	}
	switch f {
	case 0:
		return c.clone(), nil
	case 1:
		return other.clone(), nil
	}

	var rgba [4]uint8
	for i := range rgba {
		v := float64(c.rgba[i])*(1-f) + float64(other.rgba[i])*f
		//nolint:gosec // G115: a convex combination of bytes stays in [0,255]
		rgba[i] = uint8(math.Round(v))
	}
	return FromBytes(rgba), nil
}

// Complement returns the color with hue rotated by 180 degrees and the same
// saturation, lightness and alpha.
func (c *Color) Complement() *Color {
	v := c.cachedHSL()
	// Hue is finite and s, l come from the cache, so this cannot fail.
	out, _ := newHSLA(v.h+180, v.s, v.l, c.rgba[alpha])
	return out
}

// Average returns the per-channel mean of colors, alpha included, rounded
// to the nearest byte. A single color is returned as is.
// It returns ErrArgumentCount if colors is empty.
func Average(colors ...*Color) (*Color, error) {
	switch len(colors) {
	case 0:
		return nil, ErrArgumentCount
	case 1:
		return colors[0], nil
	}

	var sum [4]int
	for _, c := range colors {
		for i, v := range c.rgba {
			sum[i] += int(v)
		}
	}
	var rgba [4]uint8
	n := float64(len(colors))
	for i := range rgba {
		//nolint:gosec // G115: the mean of bytes stays in [0,255]
		rgba[i] = uint8(math.Round(float64(sum[i]) / n))
	}
	return FromBytes(rgba), nil
}

// clone returns an independent color with the same bytes and HSL.
func (c *Color) clone() *Color {
	out := FromBytes(c.rgba)
	if v := c.hsl.Load(); v != nil {
		cp := *v
		out.hsl.Store(&cp)
	}
	return out
}
