package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/engine"
)

// drawHUD draws the health bar across the top row and the status strip
// along the bottom row
func (r *Renderer) drawHUD(ctx *engine.GameContext, snap engine.HUDSnapshot, defaultStyle tcell.Style) {
	r.drawHealthBar(snap, defaultStyle)
	r.drawStatusBar(ctx, snap, defaultStyle)
}

// drawHealthBar fills the top row proportionally to remaining health,
// with the numeric value right of the bar
func (r *Renderer) drawHealthBar(snap engine.HUDSnapshot, defaultStyle tcell.Style) {
	const numWidth = 6
	barWidth := r.width - numWidth
	if barWidth < 1 {
		barWidth = 1
	}

	fraction := snap.Health / constant.MaxCarHealth
	if fraction < 0 {
		fraction = 0
	}
	filled := int(fraction * float64(barWidth))
	color := healthColor(fraction)

	for x := 0; x < barWidth; x++ {
		if x < filled {
			r.setCell(x, 0, '█', defaultStyle.Foreground(color))
		} else {
			r.setCell(x, 0, '█', defaultStyle.Foreground(RgbHealthEmpty))
		}
	}

	healthText := fmt.Sprintf("%4.0f", snap.Health)
	numStyle := defaultStyle.Foreground(color)
	r.drawText(barWidth+1, 0, healthText, numStyle)
}

// drawStatusBar draws run telemetry on the bottom row: progress and speed
// on the left, then right-aligned chips for turbo, score, and mute
func (r *Renderer) drawStatusBar(ctx *engine.GameContext, snap engine.HUDSnapshot, defaultStyle tcell.Style) {
	statusY := r.height - 1

	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, defaultStyle)
	}

	textStyle := defaultStyle.Foreground(RgbHudText)
	x := r.drawText(0, statusY, fmt.Sprintf(" North %5.1f%% ", snap.Progress*100), textStyle)
	r.drawText(x, statusY, fmt.Sprintf(" Speed %4.0f ", ctx.Vehicle.Speed), textStyle)

	// Right-aligned chips; absent chips collapse the layout
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	turboText := ""
	if snap.TurboReady {
		turboText = " TURBO "
	}
	muteText := ""
	if ctx.IsMuted.Load() {
		muteText = " MUTED "
	}

	totalWidth := len(turboText) + len(scoreText) + len(muteText)
	chipX := r.width - totalWidth
	if turboText != "" {
		chipX = r.drawText(chipX, statusY, turboText, tcell.StyleDefault.Background(RgbTurboBg).Foreground(RgbStatusText).Bold(true))
	}
	chipX = r.drawText(chipX, statusY, scoreText, tcell.StyleDefault.Background(RgbScoreBg).Foreground(RgbStatusText))
	if muteText != "" {
		r.drawText(chipX, statusY, muteText, tcell.StyleDefault.Background(RgbMuteBg).Foreground(RgbHudText))
	}
}

// drawPauseBanner overlays the pause chip mid-screen; the world stays
// visible behind it
func (r *Renderer) drawPauseBanner(defaultStyle tcell.Style) {
	banner := defaultStyle.Background(RgbPauseBg).Foreground(RgbMenuText).Bold(true)
	hint := defaultStyle.Background(RgbPauseBg).Foreground(RgbMenuDim)

	r.drawTextCenter(r.height/2-1, "  PAUSED  ", banner)
	r.drawTextCenter(r.height/2+1, " [Esc] resume   [q] abandon run ", hint)
}

// drawEndScreen overlays the run outcome over the final world frame
func (r *Renderer) drawEndScreen(snap engine.HUDSnapshot, defaultStyle tcell.Style) {
	lines, color := endMessage(snap)

	y := r.height/2 - 3
	for _, line := range lines {
		r.drawTextCenter(y, " "+line+" ", defaultStyle.Background(RgbPauseBg).Foreground(color).Bold(true))
		y++
	}

	y++
	r.drawTextCenter(y, fmt.Sprintf(" Final score: %d ", snap.Score), defaultStyle.Background(RgbPauseBg).Foreground(RgbMenuText))
	r.drawTextCenter(y+1, fmt.Sprintf(" Distance: %.1f%% ", snap.Progress*100), defaultStyle.Background(RgbPauseBg).Foreground(RgbMenuText))
	r.drawTextCenter(y+3, " [Enter] drive again   [q] menu ", defaultStyle.Background(RgbPauseBg).Foreground(RgbMenuDim))
}

// endMessage picks the outcome banner from final progress: reaching the
// cap wins, driving backwards off the start earns the taunt
func endMessage(snap engine.HUDSnapshot) ([]string, tcell.Color) {
	switch {
	case snap.Progress >= 0.98:
		return []string{"You Survived!"}, RgbWinText
	case snap.Progress < 0.0:
		return []string{"Zombies that way ;)", "Go north!"}, RgbLoseText
	default:
		return []string{"You got Mauled"}, RgbLoseText
	}
}

// drawDebugOverlay prints live counters under the health bar
func (r *Renderer) drawDebugOverlay(ctx *engine.GameContext, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbDebug)
	v := ctx.Vehicle
	cam := ctx.World.Resources.Camera

	lines := []string{
		fmt.Sprintf("frame %d", ctx.GetFrameNumber()),
		fmt.Sprintf("zombies %d bullets %d", ctx.World.Enemies.CountEntities(), ctx.World.Projectiles.CountEntities()),
		fmt.Sprintf("pos %.0f,%.0f rot %.2f", v.Pos.X, v.Pos.Y, v.Rotation),
		fmt.Sprintf("speed %.1f zoom %.2f", v.Speed, cam.Zoom),
	}
	for i, line := range lines {
		r.drawText(0, 1+i, line, style)
	}
}
