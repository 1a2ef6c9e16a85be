package utils

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var colorName = regexp.MustCompile(`^[a-z]+$`)

// NormalizeColor validates a highlight color. Hex colors ("#RGB", "#RRGGBB"
// or "#AARRGGBB") are upper-cased; anything else must be a plain color name
// and is lower-cased.
// Example: " #ffeb3b " -> "#FFEB3B", "Yellow" -> "yellow"
func NormalizeColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return "", fmt.Errorf("color is empty")
	}

	if digits, ok := strings.CutPrefix(color, "#"); ok {
		switch len(digits) {
		case 3:
			digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		case 6, 8:
		default:
			return "", fmt.Errorf("invalid hex color %q", color)
		}
		if _, err := hex.DecodeString(digits); err != nil {
			return "", fmt.Errorf("invalid hex color %q", color)
		}
		return "#" + strings.ToUpper(digits), nil
	}

	name := strings.ToLower(color)
	if !colorName.MatchString(name) {
		return "", fmt.Errorf("invalid color name %q", color)
	}
	return name, nil
}
