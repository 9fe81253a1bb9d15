package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPeg        = tcell.NewRGBColor(180, 180, 180) // Light gray
	RgbBall       = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbBallScored = tcell.NewRGBColor(255, 255, 0)   // Gold once paid
	RgbZone       = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbBalance    = tcell.NewRGBColor(255, 255, 255) // White
	RgbPanelTitle = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPanelValue = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHelp       = tcell.NewRGBColor(120, 120, 120) // Dim gray

	RgbFlagActive = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbFlagMuted  = tcell.NewRGBColor(255, 0, 0)     // Bright red
)
