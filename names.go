package csscolor

import (
	"encoding/hex"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// transparentName is the one CSS keyword missing from the SVG 1.1 keyword
// list in colornames. It is fully transparent black.
const transparentName = "transparent"

// namedHex maps each lowercase CSS color name to its canonical 8-digit hex.
var namedHex = buildNamedHex()

// sortedNames lists the keys of namedHex in ascending order.
var sortedNames = buildSortedNames()

func buildNamedHex() map[string]string {
	m := make(map[string]string, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
	}
	m[transparentName] = "00000000"
	return m
}

func buildSortedNames() []string {
	names := make([]string, 0, len(namedHex))
	for name := range namedHex {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NamedColors returns all recognized color names in ascending order.
func NamedColors() []string {
	return slices.Clone(sortedNames)
}

// nameKey returns the lookup key for a color name.
// A Caser holds state, so a new one is made per call.
func nameKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// IsValidName reports whether s names a CSS color, ignoring case and
// surrounding whitespace.
func IsValidName(s string) bool {
	_, ok := namedHex[nameKey(s)]
	return ok
}

// NameToHex returns the canonical 8-digit lowercase hex for a color name.
// It returns an error matching ErrValue if the name is unknown.
func NameToHex(s string) (string, error) {
	h, ok := namedHex[nameKey(s)]
	if !ok {
		return "", &ValueError{Input: s, Reason: "unknown color name"}
	}
	return h, nil
}

// NameToBytes returns the RGBA bytes for a color name.
// It returns an error matching ErrValue if the name is unknown.
func NameToBytes(s string) ([4]uint8, error) {
	h, err := NameToHex(s)
	if err != nil {
		return [4]uint8{}, err
	}
	return HexToBytes(h)
}

// ParseToBytes resolves s as a color name, falling back to a hex string.
// It returns an error matching ErrValue if s is neither.
func ParseToBytes(s string) ([4]uint8, error) {
	if rgba, err := NameToBytes(s); err == nil {
		return rgba, nil
	}
	if debugEnabled() {
		Logger().Debug("csscolor: not a color name, parsing as hex", slog.String("input", s))
	}
	rgba, err := HexToBytes(s)
	if err != nil {
		if debugEnabled() {
			Logger().Debug("csscolor: rejected color", slog.String("input", s))
		}
		return rgba, &ValueError{Input: s, Reason: "not a color name or hex color"}
	}
	return rgba, nil
}
