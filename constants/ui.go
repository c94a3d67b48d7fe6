package constants

// Hole cell geometry in terminal cells
const (
	HoleWidth  = 11
	HoleHeight = 5
	HoleGapX   = 2
	HoleGapY   = 1
)

// Board geometry including the border and HUD
const (
	BoardWidth  = GridColumns*HoleWidth + (GridColumns-1)*HoleGapX
	BoardHeight = GridRows*HoleHeight + (GridRows-1)*HoleGapY

	// HUDHeight is the number of rows above the board
	HUDHeight = 3

	// FooterHeight is the number of rows below the board
	FooterHeight = 2
)

// HUD text
const (
	TitleText      = " WHACK "
	ComboFlashText = " COMBO! "
	PausedText     = " PAUSED "
	IdleHintText   = "press SPACE to start"
	EndedHintText  = "round over - SPACE to play again"
	ControlsHelp   = "7 8 9 / 4 5 6 / 1 2 3 or q w e / a s d / z x c  |  p pause  m mute  esc quit"
	NewRecordText  = "NEW HIGH SCORE!"
	AudioOnText    = " ♪ "
	AudioMutedText = " × "
)

// Glyphs
const (
	MoleGlyph   = 'M'
	StruckGlyph = '*'
	HoleGlyph   = '_'
)

// HoleKeyLabels shows the keys that strike each hole, row-major
var HoleKeyLabels = [HoleCount]string{
	"7 q", "8 w", "9 e",
	"4 a", "5 s", "6 d",
	"1 z", "2 x", "3 c",
}

// TooSmallText is shown when the terminal cannot fit the board
const TooSmallText = "terminal too small"

// Overlay box geometry
const (
	OverlayWidth    = 34
	OverlayPaddingX = 2
)
