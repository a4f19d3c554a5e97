package render

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpandHex normalizes a 3-digit hex color to the 6-digit form by
// duplicating each digit. 6-digit input passes through unchanged.
func ExpandHex(hex string) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	}
	return "#" + hex
}

// DarkenColor darkens each channel by percent, truncating toward zero.
// Invalid input is returned unchanged so callers never lose a value.
func DarkenColor(hex string, percent int) string {
	expanded := strings.TrimPrefix(ExpandHex(hex), "#")
	if len(expanded) != 6 {
		return hex
	}

	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseInt(expanded[i*2:i*2+2], 16, 32)
		if err != nil {
			return hex
		}
		c := int(n)
		c -= c * percent / 100
		if c < 0 {
			c = 0
		}
		if c > 255 {
			c = 255
		}
		channels[i] = c
	}

	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])
}
