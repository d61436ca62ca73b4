package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	return screen
}

// newMenuContext builds a context sitting on the menu with moderate settings
func newMenuContext(t *testing.T) *engine.GameContext {
	t.Helper()

	provider := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	world := engine.NewWorld()
	ctx := engine.NewGameContext(world, provider, 80, 40)

	settings := world.Resources.Settings
	settings.Difficulty = core.DifficultyModerate
	settings.PopulationCap = constant.DefaultPopulationCap
	return ctx
}

func screenRow(screen tcell.Screen, width, y int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenContains(screen tcell.Screen, width, height int, want string) bool {
	for y := 0; y < height; y++ {
		if strings.Contains(screenRow(screen, width, y), want) {
			return true
		}
	}
	return false
}

func TestRenderMenuFrame(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	defer screen.Fini()

	ctx := newMenuContext(t)
	r := NewRenderer(screen, 80, 40, false)
	r.SetScoreRows([]ScoreRow{
		{PlayedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), Won: true, Score: 4200, Progress: 1.0},
	})

	r.RenderFrame(ctx, constant.FrameUpdateInterval)

	for _, want := range []string{"D E A D   R U N", "difficulty   moderate", "best runs", "WON", "4200"} {
		if !screenContains(screen, 80, 40, want) {
			t.Errorf("Expected menu frame to contain %q", want)
		}
	}
}

func TestRenderDrivingFrame(t *testing.T) {
	// Wide enough to keep both road edges on screen at any generated drift
	screen := newTestScreen(t, 120, 40)
	defer screen.Fini()

	ctx := newMenuContext(t)
	if !ctx.StartRun(42) {
		t.Fatal("Expected StartRun to succeed from the menu phase")
	}

	r := NewRenderer(screen, 120, 40, false)
	r.RenderFrame(ctx, constant.FrameUpdateInterval)

	cam := ctx.World.Resources.Camera
	vx, vy := r.worldToCell(cam, ctx.Vehicle.Pos.X, ctx.Vehicle.Pos.Y)
	ch, _, _, _ := screen.GetContent(vx, vy)
	if ch != '↑' {
		t.Errorf("Expected vehicle arrow at (%d,%d), got %q", vx, vy, ch)
	}

	// Column three holds asphalt on the spawn row at any generated drift,
	// and spawn rows are obstacle-free
	ax, ay := r.worldToCell(cam, 3.5*constant.TileWorldSize, ctx.Vehicle.Pos.Y)
	roadCh, _, roadStyle, _ := screen.GetContent(ax, ay)
	_, bg, _ := roadStyle.Decompose()
	if roadCh != ' ' || bg != RgbRoadSurface {
		t.Errorf("Expected bare asphalt at (%d,%d), got %q with bg %v", ax, ay, roadCh, bg)
	}

	vehicleRow := screenRow(screen, 120, vy)
	if !strings.ContainsRune(vehicleRow, '▏') || !strings.ContainsRune(vehicleRow, '▕') {
		t.Errorf("Expected painted edge lines on the vehicle row, got %q", vehicleRow)
	}

	statusRow := screenRow(screen, 120, 39)
	if !strings.Contains(statusRow, "North") || !strings.Contains(statusRow, "Score: 0") {
		t.Errorf("Expected status chips on the bottom row, got %q", statusRow)
	}

	healthCh, _, healthStyle, _ := screen.GetContent(0, 0)
	fg, _, _ := healthStyle.Decompose()
	if healthCh != '█' || fg != RgbHealthHigh {
		t.Errorf("Expected full health bar at top-left, got %q fg %v", healthCh, fg)
	}
}

func TestRenderTurboFlare(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	defer screen.Fini()

	ctx := newMenuContext(t)
	if !ctx.StartRun(42) {
		t.Fatal("Expected StartRun to succeed")
	}

	r := NewRenderer(screen, 80, 40, false)
	cam := ctx.World.Resources.Camera

	// TurboElapsed starts at zero, so the boost window is live on spawn
	r.RenderFrame(ctx, constant.FrameUpdateInterval)
	vx, vy := r.worldToCell(cam, ctx.Vehicle.Pos.X, ctx.Vehicle.Pos.Y)
	_, _, style, _ := screen.GetContent(vx, vy)
	_, bg, _ := style.Decompose()
	if bg != RgbCarTurbo {
		t.Errorf("Expected turbo flare on spawn, got bg %v", bg)
	}

	ctx.Vehicle.TurboElapsed = constant.TurboWindow
	r.RenderFrame(ctx, constant.FrameUpdateInterval)
	_, _, style, _ = screen.GetContent(vx, vy)
	_, bg, _ = style.Decompose()
	if bg == RgbCarTurbo {
		t.Error("Expected the flare to lapse with the boost window")
	}
}

func TestRenderPauseBanner(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	defer screen.Fini()

	ctx := newMenuContext(t)
	if !ctx.StartRun(42) {
		t.Fatal("Expected StartRun to succeed")
	}
	ctx.IsPaused.Store(true)

	r := NewRenderer(screen, 80, 40, false)
	r.RenderFrame(ctx, constant.FrameUpdateInterval)

	if !screenContains(screen, 80, 40, "PAUSED") {
		t.Error("Expected pause banner over the world")
	}
}

func TestRenderEndScreens(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		won      bool
		want     string
	}{
		{"win banner", 1.0, true, "You Survived!"},
		{"loss banner", 0.3, false, "You got Mauled"},
		{"backward taunt", -0.15, false, "Go north!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t, 80, 40)
			defer screen.Fini()

			ctx := newMenuContext(t)
			if !ctx.StartRun(42) {
				t.Fatal("Expected StartRun to succeed")
			}
			ctx.State.SetProgress(tt.progress)
			if !ctx.FinishRun(tt.won) {
				t.Fatal("Expected FinishRun to transition")
			}

			r := NewRenderer(screen, 80, 40, false)
			r.RenderFrame(ctx, constant.FrameUpdateInterval)

			if !screenContains(screen, 80, 40, tt.want) {
				t.Errorf("Expected end screen to contain %q", tt.want)
			}
			if !screenContains(screen, 80, 40, "Final score:") {
				t.Error("Expected final score line")
			}
		})
	}
}

func TestWorldToCellInverse(t *testing.T) {
	r := &Renderer{width: 80, height: 40}
	cam := &engine.CameraResource{X: 123.0, Y: -456.0, Zoom: 1.3}

	cells := [][2]int{{0, 0}, {79, 39}, {40, 20}, {13, 7}}
	for _, c := range cells {
		wx, wy := r.cellToWorld(cam, c[0], c[1])
		gx, gy := r.worldToCell(cam, wx, wy)
		if gx != c[0] || gy != c[1] {
			t.Errorf("Cell (%d,%d) round-tripped to (%d,%d)", c[0], c[1], gx, gy)
		}
	}
}

func TestAimTransformTracksCamera(t *testing.T) {
	ctx := newMenuContext(t)
	r := &Renderer{width: 80, height: 40}
	transform := r.AimTransform(ctx)

	cam := ctx.World.Resources.Camera
	cam.X, cam.Y, cam.Zoom = 100.0, 200.0, 1.0

	wx1, wy1 := transform(40, 20)
	cam.X += 500.0
	cam.Y += 300.0
	wx2, wy2 := transform(40, 20)

	if math.Abs(wx2-wx1-500.0) > 1e-9 || math.Abs(wy2-wy1-300.0) > 1e-9 {
		t.Errorf("Aim transform ignored camera move: (%f,%f) then (%f,%f)", wx1, wy1, wx2, wy2)
	}
}

func TestVehicleGlyphOctants(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '↑'},
		{-math.Pi / 2, '→'},
		{math.Pi / 2, '←'},
		{math.Pi, '↓'},
		{math.Pi / 4, '↖'},
		{-math.Pi / 4, '↗'},
	}

	for _, tt := range tests {
		if got := vehicleGlyph(tt.rotation); got != tt.want {
			t.Errorf("vehicleGlyph(%f) = %q, want %q", tt.rotation, got, tt.want)
		}
	}
}

func TestMenuSceneStaysInBounds(t *testing.T) {
	s := newMenuScene(80, 24)

	for i := 0; i < 100; i++ {
		s.update(100*time.Millisecond, 80, 24)
	}
	for i, z := range s.zombies {
		if z.x < 0 || z.x >= 80 || z.y < 0 || z.y >= 24 {
			t.Fatalf("Zombie %d drifted out of bounds: (%f,%f)", i, z.x, z.y)
		}
	}

	// A shrink wraps the horde back into the new bounds
	s.update(100*time.Millisecond, 40, 12)
	for i, z := range s.zombies {
		if z.x < 0 || z.x >= 40 || z.y < 0 || z.y >= 12 {
			t.Fatalf("Zombie %d ignored resize: (%f,%f)", i, z.x, z.y)
		}
	}
}

func TestHealthColorGrades(t *testing.T) {
	if healthColor(1.0) != RgbHealthHigh {
		t.Error("Expected high color at full health")
	}
	if healthColor(0.4) != RgbHealthMid {
		t.Error("Expected mid color below half")
	}
	if healthColor(0.1) != RgbHealthLow {
		t.Error("Expected low color below quarter")
	}
}

func TestRendererResize(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	defer screen.Fini()

	ctx := newMenuContext(t)
	r := NewRenderer(screen, 80, 40, false)

	screen.SetSize(100, 30)
	r.Resize(100, 30)
	r.RenderFrame(ctx, constant.FrameUpdateInterval)

	if !screenContains(screen, 100, 30, "D E A D   R U N") {
		t.Error("Expected menu title after resize")
	}
}
