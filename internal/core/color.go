package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the game skins. Sky blue, black, white, grey, green and
// orange RGB colors are approximated by the nearest terminal colors.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorBlue
	ColorSkyBlue
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorLightGray
)

// String returns the palette name, used in skin configs.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorDarkGreen:
		return "dark_green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorSkyBlue:
		return "sky_blue"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightWhite:
		return "bright_white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorLightGray:
		return "light_gray"
	default:
		return "default"
	}
}

// ParseColor maps a palette name back to a Color.
// Unknown names yield ColorDefault.
func ParseColor(name string) Color {
	for c := ColorDefault; c <= ColorLightGray; c++ {
		if c.String() == name {
			return c
		}
	}
	return ColorDefault
}
