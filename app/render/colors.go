package render

// ANSI escape sequences for the terminal views, matching the palette of the
// earlier revisions.
const (
	colReset = "\033[0m"
	colBold  = "\033[01m"

	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colOrange    = "\033[33m"
	colPurple    = "\033[35m"
	colCyan      = "\033[36m"
	colLightGray = "\033[37m"
	colLightRed  = "\033[91m"
	colYellow    = "\033[93m"
)
