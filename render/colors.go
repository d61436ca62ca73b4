package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB palette for the world layers and HUD
var (
	RgbBackground  = tcell.NewRGBColor(22, 26, 18)    // Dark scrubland
	RgbRoadSurface = tcell.NewRGBColor(58, 58, 64)    // Asphalt
	RgbRoadEdge    = tcell.NewRGBColor(170, 160, 70)  // Painted edge line
	RgbRoadCurve   = tcell.NewRGBColor(120, 120, 126) // Curve shoulder
	RgbFinishLight = tcell.NewRGBColor(235, 235, 235) // Checkered cap, light square
	RgbFinishDark  = tcell.NewRGBColor(30, 30, 30)    // Checkered cap, dark square
	RgbDecoration  = tcell.NewRGBColor(46, 96, 46)    // Roadside growth

	RgbWreckRust  = tcell.NewRGBColor(168, 92, 44)   // Burned-out wreck
	RgbWreckSlate = tcell.NewRGBColor(120, 126, 134) // Stripped wreck
	RgbWreckBurnt = tcell.NewRGBColor(92, 66, 40)    // Collapsed wreck

	RgbZombie      = tcell.NewRGBColor(110, 180, 80)  // Shambler green
	RgbZombieHeavy = tcell.NewRGBColor(70, 140, 55)   // Heavy variant, darker bulk
	RgbBullet      = tcell.NewRGBColor(255, 232, 120) // Tracer

	RgbCar      = tcell.NewRGBColor(235, 235, 245) // Player vehicle
	RgbCarTurbo = tcell.NewRGBColor(255, 140, 0)   // Boost flare

	// HUD
	RgbHudText     = tcell.NewRGBColor(200, 200, 200) // Default HUD text
	RgbHealthHigh  = tcell.NewRGBColor(60, 200, 60)   // Above half
	RgbHealthMid   = tcell.NewRGBColor(230, 180, 40)  // Above quarter
	RgbHealthLow   = tcell.NewRGBColor(220, 60, 50)   // Critical
	RgbHealthEmpty = tcell.NewRGBColor(40, 40, 40)    // Drained portion of the bar
	RgbTurboBg     = tcell.NewRGBColor(0, 190, 190)   // Turbo-ready badge
	RgbScoreBg     = tcell.NewRGBColor(255, 255, 0)   // Score badge
	RgbMuteBg      = tcell.NewRGBColor(120, 120, 120) // Mute badge
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text on badges

	// Screens
	RgbTitle    = tcell.NewRGBColor(210, 60, 50)   // Blood red title
	RgbMenuText = tcell.NewRGBColor(210, 210, 210) // Menu entries
	RgbMenuDim  = tcell.NewRGBColor(130, 130, 130) // Secondary menu text
	RgbMenuKey  = tcell.NewRGBColor(255, 200, 80)  // Key bindings
	RgbWinText  = tcell.NewRGBColor(80, 220, 80)   // Victory banner
	RgbLoseText = tcell.NewRGBColor(220, 70, 60)   // Defeat banner
	RgbPauseBg  = tcell.NewRGBColor(40, 40, 55)    // Pause banner backdrop
	RgbDebug    = tcell.NewRGBColor(0, 255, 255)   // Debug overlay
)

// healthColor grades the health readout by remaining fraction
func healthColor(fraction float64) tcell.Color {
	switch {
	case fraction > 0.5:
		return RgbHealthHigh
	case fraction > 0.25:
		return RgbHealthMid
	default:
		return RgbHealthLow
	}
}
