package core

// Color is a foreground color for a screen cell, rendered by the host as an
// ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorLightBlue
	ColorGold
	ColorSalmon
	ColorCoral
	ColorPurple
)

var colorHex = [...]string{
	ColorDefault:   "#ffffff",
	ColorRed:       "#dc3545",
	ColorGreen:     "#28a745",
	ColorYellow:    "#ffc107",
	ColorBlue:      "#007bff",
	ColorMagenta:   "#6f42c1",
	ColorCyan:      "#17a2b8",
	ColorWhite:     "#f8f9fa",
	ColorOrange:    "#fd7e14",
	ColorGray:      "#6c757d",
	ColorLightBlue: "#add8e6",
	ColorGold:      "#ffd700",
	ColorSalmon:    "#ffa07a",
	ColorCoral:     "#f08080",
	ColorPurple:    "#9370db",
}

// Hex returns the CSS hex form of the color, used by non-terminal sinks.
func (c Color) Hex() string {
	if int(c) < len(colorHex) {
		return colorHex[c]
	}
	return colorHex[ColorDefault]
}
