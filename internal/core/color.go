package core

// Color is a logical colour carried by draw commands and screen cells.
// Drivers translate it to whatever their surface understands.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorBlue
	ColorWhite
	ColorGray
	ColorYellow
)

// String returns the colour name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// RGBA returns the colour as 8-bit RGBA components.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0, 255
	case ColorRed:
		return 255, 0, 0, 255
	case ColorBlue:
		return 0, 0, 255, 255
	case ColorWhite, ColorDefault:
		return 255, 255, 255, 255
	case ColorGray:
		return 238, 238, 238, 255
	case ColorYellow:
		return 255, 200, 0, 255
	default:
		return 255, 255, 255, 255
	}
}
