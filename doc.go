// Package csscolor provides an immutable color value with RGB and HSL
// models, CSS text encodings and WCAG accessibility metrics.
//
// # Quick Start
//
//	import "github.com/gogpu/csscolor"
//
//	c, err := csscolor.Parse("#ff8000")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Hex(csscolor.ExcludeAlpha())) // #ff8000
//	fmt.Println(c.HSLString())                  // hsl(30.117647deg 100% 50% / 1)
//	fmt.Println(c.BestTextColor())              // black
//
// # Values
//
// A [Color] stores four bytes in RGBA order. Hue, saturation and lightness
// are derived on first use and memoized. Colors built with [FromHSL] keep the
// exact HSL values they were given, so [Color.WithHue] and friends do not
// accumulate rounding error from repeated byte round trips.
//
// Colors are never modified. Every With method, [Color.Mix],
// [Color.Complement] and [Average] returns a new *Color, and a *Color may be
// shared between goroutines without locking.
//
// # Input
//
// [Parse] accepts the 147 CSS extended color keywords plus "transparent",
// matched case-insensitively, and hex strings of 3, 4, 6 or 8 digits with an
// optional leading '#'.
//
// # Output
//
// [Color.Hex] renders "#rrggbbaa" by default. [Color.RGBString] and
// [Color.HSLString] render CSS Color 4 space-separated notation with a slash
// alpha: "rgb(255 128 0 / 1)" and "hsl(30deg 100% 50% / 1)".
//
// # Errors
//
// Out-of-domain numbers fail with an error matching [ErrRange], malformed
// strings with [ErrValue], and [Average] without arguments with
// [ErrArgumentCount].
package csscolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
