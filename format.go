package csscolor

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/gogpu/csscolor/internal/numeric"
)

// HexOption configures hex output of Color.Hex.
//
// Example:
//
//	c.Hex()                                         // #ff8000ff
//	c.Hex(csscolor.ExcludeAlpha())                  // #ff8000
//	c.Hex(csscolor.OmitHash(), csscolor.UpperCase()) // FF8000FF
type HexOption func(*hexOptions)

// hexOptions holds optional configuration for hex output.
type hexOptions struct {
	alpha bool
	hash  bool
	upper bool
}

// defaultHexOptions returns the default hex options.
func defaultHexOptions() hexOptions {
	return hexOptions{
		alpha: true,
		hash:  true,
		upper: false,
	}
}

// ExcludeAlpha renders six digits, dropping the alpha byte.
func ExcludeAlpha() HexOption {
	return func(o *hexOptions) {
		o.alpha = false
	}
}

// OmitHash drops the leading '#'.
func OmitHash() HexOption {
	return func(o *hexOptions) {
		o.hash = false
	}
}

// UpperCase renders hex digits in upper case.
func UpperCase() HexOption {
	return func(o *hexOptions) {
		o.upper = true
	}
}

// Hex renders the color as a hex string, "#rrggbbaa" by default.
func (c *Color) Hex(opts ...HexOption) string {
	o := defaultHexOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := 4
	if !o.alpha {
		n = 3
	}
	buf := make([]byte, 0, 9)
	if o.hash {
		buf = append(buf, '#')
	}
	buf = hex.AppendEncode(buf, c.rgba[:n])
	if o.upper {
		return strings.ToUpper(string(buf))
	}
	return string(buf)
}

// String implements fmt.Stringer. It is equivalent to Hex().
func (c *Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler using Hex().
func (c *Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// RGBString renders CSS Color 4 notation "rgb(R G B / A)" with integer
// channels and alpha as a fraction of 255.
func (c *Color) RGBString() string {
	var sb strings.Builder
	sb.WriteString("rgb(")
	sb.WriteString(strconv.Itoa(int(c.rgba[red])))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(c.rgba[green])))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(c.rgba[blue])))
	sb.WriteString(" / ")
	sb.WriteString(c.alphaString())
	sb.WriteByte(')')
	return sb.String()
}

// HSLString renders CSS Color 4 notation "hsl(Hdeg S% L% / A)".
func (c *Color) HSLString() string {
	v := c.cachedHSL()
	var sb strings.Builder
	sb.WriteString("hsl(")
	sb.WriteString(formatDecimal(v.h))
	sb.WriteString("deg ")
	sb.WriteString(formatDecimal(v.s * 100))
	sb.WriteString("% ")
	sb.WriteString(formatDecimal(v.l * 100))
	sb.WriteString("% / ")
	sb.WriteString(c.alphaString())
	sb.WriteByte(')')
	return sb.String()
}

func (c *Color) alphaString() string {
	return formatDecimal(float64(c.rgba[alpha]) / 255)
}

// formatDecimal rounds f to six decimals and formats it without trailing
// zeros, so 1 renders as "1" and 200/255 as "0.784314".
func formatDecimal(f float64) string {
	return strconv.FormatFloat(numeric.RoundTo(f, 6), 'f', -1, 64)
}
