package core

// Color is a "#rrggbb" hex color. The empty Color means "unchanged/transparent".
// Hex strings are understood directly by lipgloss and parsed by the window backend.
type Color string

// ColorNone leaves the underlying color untouched when drawing.
const ColorNone Color = ""

// Default palette of the slot screen.
const (
	ColorYellow  Color = "#fef81e"
	ColorRed     Color = "#ef758c"
	ColorGreen   Color = "#b5e281"
	ColorOrange  Color = "#fba089"
	ColorBgBlue  Color = "#5585a5"
	ColorBgGreen Color = "#3a7457"
	ColorWhite   Color = "#ffffff"
	ColorBlack   Color = "#000000"
	ColorGray    Color = "#8a8a8a"
)

// Palette groups the named colors used by the loader and game screens.
type Palette struct {
	Yellow  Color
	Red     Color
	Green   Color
	Orange  Color
	BgBlue  Color
	BgGreen Color
}

// DefaultPalette returns the stock palette.
func DefaultPalette() Palette {
	return Palette{
		Yellow:  ColorYellow,
		Red:     ColorRed,
		Green:   ColorGreen,
		Orange:  ColorOrange,
		BgBlue:  ColorBgBlue,
		BgGreen: ColorBgGreen,
	}
}
