package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the board and HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbHoleRim    = tcell.NewRGBColor(120, 90, 60)   // Dirt brown
	RgbHoleLabel  = tcell.NewRGBColor(110, 110, 130) // Dim gray
	RgbMole       = tcell.NewRGBColor(181, 126, 70)  // Mole brown
	RgbMoleBg     = tcell.NewRGBColor(60, 40, 25)    // Dark burrow
	RgbStruck     = tcell.NewRGBColor(255, 255, 0)   // Bright yellow hit
	RgbStruckBg   = tcell.NewRGBColor(120, 40, 40)   // Dark red
	RgbHoleHidden = tcell.NewRGBColor(40, 42, 58)    // Slightly lifted background

	RgbTitleBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHUDText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDLabel   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbTimeLow    = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbComboBg    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPausedBg   = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbNewRecord  = tcell.NewRGBColor(50, 255, 50)   // Bright green

	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0) // Bright red
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0) // Bright green

	RgbOverlayBg     = tcell.NewRGBColor(20, 20, 30)    // Near black
	RgbOverlayBorder = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbOverlayText   = tcell.NewRGBColor(230, 230, 230) // Off white
)

// DefaultStyle is the style of every untouched cell
var DefaultStyle = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDText)

// TimeColor returns the countdown color, red for the last seconds
func TimeColor(timeRemaining int) tcell.Color {
	if timeRemaining <= 5 {
		return RgbTimeLow
	}
	return RgbHUDText
}
