package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/engine"
)

// World units covered by one terminal cell at zoom 1. Cells are roughly
// twice as tall as wide, so the vertical span doubles to keep world
// geometry square on screen.
const (
	cellWorldX = 10.0
	cellWorldY = 20.0
)

// ScoreRow is one finished run shown on the menu leaderboard
type ScoreRow struct {
	PlayedAt   time.Time
	Won        bool
	Score      uint32
	Progress   float64
	Difficulty string
}

// Renderer handles all terminal output using tcell
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
	debug  bool

	menu      *menuScene
	scoreRows []ScoreRow
}

// NewRenderer creates a renderer for the given screen dimensions
func NewRenderer(screen tcell.Screen, width, height int, debug bool) *Renderer {
	return &Renderer{
		screen: screen,
		width:  width,
		height: height,
		debug:  debug,
		menu:   newMenuScene(width, height),
	}
}

// Resize updates renderer dimensions when the terminal is resized
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// SetScoreRows replaces the leaderboard shown on the menu
func (r *Renderer) SetScoreRows(rows []ScoreRow) {
	r.scoreRows = rows
}

// RenderFrame draws the complete frame for the current phase.
// dt is the render frame interval, used for menu animation only;
// simulation time lives in the game clock.
func (r *Renderer) RenderFrame(ctx *engine.GameContext, dt time.Duration) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	snap := ctx.State.ReadHUDState()
	switch snap.Phase {
	case engine.PhaseMenu:
		r.drawMenu(ctx, dt, defaultStyle)
	case engine.PhaseDriving:
		r.drawWorld(ctx, defaultStyle)
		r.drawHUD(ctx, snap, defaultStyle)
		if ctx.IsPaused.Load() {
			r.drawPauseBanner(defaultStyle)
		}
	case engine.PhaseWon, engine.PhaseLost:
		r.drawWorld(ctx, defaultStyle)
		r.drawHUD(ctx, snap, defaultStyle)
		r.drawEndScreen(snap, defaultStyle)
	}

	if r.debug {
		r.drawDebugOverlay(ctx, defaultStyle)
	}

	r.screen.Show()
}

// ===== Camera Transform =====

// worldToCell maps a world position to the terminal cell covering it
func (r *Renderer) worldToCell(cam *engine.CameraResource, wx, wy float64) (int, int) {
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = constant.CameraZoomDefault
	}
	cx := float64(r.width)/2 + (wx-cam.X)/(cellWorldX*zoom)
	cy := float64(r.height)/2 - (wy-cam.Y)/(cellWorldY*zoom)
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// cellToWorld inverts worldToCell at the cell's center
func (r *Renderer) cellToWorld(cam *engine.CameraResource, x, y int) (float64, float64) {
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = constant.CameraZoomDefault
	}
	wx := cam.X + (float64(x)+0.5-float64(r.width)/2)*cellWorldX*zoom
	wy := cam.Y - (float64(y)+0.5-float64(r.height)/2)*cellWorldY*zoom
	return wx, wy
}

// AimTransform returns a cell-to-world mapping bound to the live camera,
// injected into the input handler so mouse aim tracks the view
func (r *Renderer) AimTransform(ctx *engine.GameContext) func(x, y int) (float64, float64) {
	return func(x, y int) (float64, float64) {
		return r.cellToWorld(ctx.World.Resources.Camera, x, y)
	}
}

// ===== Drawing Primitives =====

// setCell writes one cell, clipped to the screen
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// overlayCell writes a glyph while keeping the background already drawn
// at that cell, so entities stay readable over road and terrain
func (r *Renderer) overlayCell(x, y int, ch rune, fg tcell.Color, bold bool) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	_, _, style, _ := r.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	st := tcell.StyleDefault.Background(bg).Foreground(fg).Bold(bold)
	r.screen.SetContent(x, y, ch, nil, st)
}

// fill paints every cell with the given style
func (r *Renderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes a string left to right, clipped to the screen.
// Returns the x position after the text, for chaining segments.
// Callers keep text ASCII; wide runes are drawn cell by cell instead.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for i, ch := range text {
		r.setCell(x+i, y, ch, style)
	}
	return x + len(text)
}

// drawTextCenter centers a line horizontally
func (r *Renderer) drawTextCenter(y int, text string, style tcell.Style) {
	r.drawText((r.width-len(text))/2, y, text, style)
}
