package csscolor

import (
	"encoding/hex"
	"strings"
)

// IsValidHex reports whether s is a hex color: after trimming whitespace and
// one optional leading '#', exactly 3, 4, 6 or 8 hexadecimal digits.
func IsValidHex(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// NormalizeHex returns the canonical form of a hex color: 8 lowercase digits
// in RGBA order without '#'. Short forms are expanded by doubling each digit
// and a missing alpha becomes "ff".
//
// It returns an error matching ErrValue if s is not a valid hex color.
func NormalizeHex(s string) (string, error) {
	if !IsValidHex(s) {
		return "", &ValueError{Input: s, Reason: "invalid hex color"}
	}
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	switch len(s) {
	case 8:
		return s, nil
	case 6:
		return s + "ff", nil
	}

	var sb strings.Builder
	sb.Grow(8)
	for i := 0; i < 3; i++ {
		sb.WriteByte(s[i])
		sb.WriteByte(s[i])
	}
	if len(s) == 4 {
		sb.WriteByte(s[3])
		sb.WriteByte(s[3])
	} else {
		sb.WriteString("ff")
	}
	return sb.String(), nil
}

// HexToBytes parses a hex color into RGBA bytes.
// It returns an error matching ErrValue if s is not a valid hex color.
func HexToBytes(s string) ([4]uint8, error) {
	var rgba [4]uint8
	n, err := NormalizeHex(s)
	if err != nil {
		return rgba, err
	}
	if _, err := hex.Decode(rgba[:], []byte(n)); err != nil {
		return rgba, &ValueError{Input: s, Reason: err.Error()}
	}
	return rgba, nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
