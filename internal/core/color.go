package core

// Color is a foreground color for a screen cell.
// The platform maps it to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorOrange        // traffic cones
	ColorYellow        // coins
	ColorRed           // hearts
	ColorCyan          // the runner
	ColorGray          // ground and skyline
	ColorWhite         // popup text
	ColorGreen         // score and hints
)
