package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/engine"
)

var testBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func driveHandler() *Handler {
	h := NewHandler()
	h.SetScreen(ScreenDrive)
	return h
}

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestHandlerLatchExpiry verifies a driving key reads held within the
// latch window and released after it expires
func TestHandlerLatchExpiry(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(keyEvent('w'), testBase)

	h.Apply(&in, testBase.Add(100*time.Millisecond))
	if !in.Forward {
		t.Error("Expected forward held inside the latch window")
	}

	h.Apply(&in, testBase.Add(constant.KeyLatchWindow+50*time.Millisecond))
	if in.Forward {
		t.Error("Expected forward released after the latch window")
	}
}

// TestHandlerAutorepeatRefreshesLatch verifies a repeated key event
// extends the hold past the original deadline
func TestHandlerAutorepeatRefreshesLatch(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(keyEvent('w'), testBase)
	h.HandleEvent(keyEvent('w'), testBase.Add(150*time.Millisecond))

	// Past the first deadline, inside the refreshed one
	h.Apply(&in, testBase.Add(300*time.Millisecond))
	if !in.Forward {
		t.Error("Expected autorepeat to keep the key latched")
	}

	h.Apply(&in, testBase.Add(400*time.Millisecond))
	if in.Forward {
		t.Error("Expected the refreshed latch to expire")
	}
}

// TestHandlerArrowKeysSteer verifies arrow keys drive the same latches
// as WASD
func TestHandlerArrowKeysSteer(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), testBase)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), testBase)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), testBase)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), testBase)

	h.Apply(&in, testBase.Add(time.Millisecond))
	if !in.Forward || !in.Back || !in.Left || !in.Right {
		t.Errorf("Expected all four directions latched, got %+v", in)
	}
}

// TestHandlerUppercaseRunes verifies shifted driving keys still latch
func TestHandlerUppercaseRunes(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(keyEvent('W'), testBase)
	h.Apply(&in, testBase.Add(time.Millisecond))
	if !in.Forward {
		t.Error("Expected uppercase W to latch forward")
	}
}

// TestHandlerTurboEdge verifies the space edge is delivered exactly once
// and survives until the next Apply
func TestHandlerTurboEdge(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(keyEvent(' '), testBase)

	h.Apply(&in, testBase.Add(time.Millisecond))
	if !in.TurboPressed {
		t.Error("Expected turbo edge after space press")
	}

	// Simulate the vehicle system consuming the edge
	in.TurboPressed = false

	h.Apply(&in, testBase.Add(2*time.Millisecond))
	if in.TurboPressed {
		t.Error("Expected no turbo edge without a new press")
	}
}

// TestHandlerFireKeyLatch verifies the fire key behaves as a latched
// hold like the driving keys
func TestHandlerFireKeyLatch(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(keyEvent('f'), testBase)

	h.Apply(&in, testBase.Add(100*time.Millisecond))
	if !in.FireHeld {
		t.Error("Expected fire held inside the latch window")
	}
	if in.HasAim {
		t.Error("Expected no aim point from keyboard fire")
	}

	h.Apply(&in, testBase.Add(constant.KeyLatchWindow+50*time.Millisecond))
	if in.FireHeld {
		t.Error("Expected fire released after the latch window")
	}
}

// TestHandlerMouseAim verifies a held left button fires with an aim
// point mapped through the injected transform
func TestHandlerMouseAim(t *testing.T) {
	h := driveHandler()
	h.ScreenToWorld = func(x, y int) (float64, float64) {
		return float64(x) * 10, float64(y) * 10
	}
	var in engine.InputResource

	h.HandleEvent(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone), testBase)

	h.Apply(&in, testBase.Add(time.Millisecond))
	if !in.FireHeld {
		t.Error("Expected fire held while the button is down")
	}
	if !in.HasAim {
		t.Error("Expected an aim point while the button is down")
	}
	if in.AimX != 120 || in.AimY != 50 {
		t.Errorf("Expected aim (120, 50), got (%v, %v)", in.AimX, in.AimY)
	}

	// Drag updates the aim point
	h.HandleEvent(tcell.NewEventMouse(20, 8, tcell.Button1, tcell.ModNone), testBase)
	h.Apply(&in, testBase.Add(2*time.Millisecond))
	if in.AimX != 200 || in.AimY != 80 {
		t.Errorf("Expected aim (200, 80) after drag, got (%v, %v)", in.AimX, in.AimY)
	}

	// Release stops firing and clears the aim
	h.HandleEvent(tcell.NewEventMouse(20, 8, tcell.ButtonNone, tcell.ModNone), testBase)
	h.Apply(&in, testBase.Add(3*time.Millisecond))
	if in.FireHeld {
		t.Error("Expected fire released after the button came up")
	}
	if in.HasAim {
		t.Error("Expected no aim point after release")
	}
}

// TestHandlerMouseWithoutTransform verifies a missing screen transform
// degrades to aimless fire
func TestHandlerMouseWithoutTransform(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone), testBase)
	h.Apply(&in, testBase.Add(time.Millisecond))

	if !in.FireHeld {
		t.Error("Expected fire held without a transform")
	}
	if in.HasAim {
		t.Error("Expected no aim point without a transform")
	}
}

// TestHandlerScreenGating verifies driving keys only latch on the drive
// screen and menu keys only command on the menu
func TestHandlerScreenGating(t *testing.T) {
	h := NewHandler()
	var in engine.InputResource

	// Menu: w is dead, d cycles difficulty
	if cmd := h.HandleEvent(keyEvent('w'), testBase); cmd != CommandNone {
		t.Errorf("Expected no command for w on the menu, got %v", cmd)
	}
	if cmd := h.HandleEvent(keyEvent('d'), testBase); cmd != CommandCycleDifficulty {
		t.Errorf("Expected difficulty cycle for d on the menu, got %v", cmd)
	}
	h.Apply(&in, testBase.Add(time.Millisecond))
	if in.Forward || in.Right {
		t.Error("Expected no latched driving input from menu keys")
	}

	// Drive: d steers, no command
	h.SetScreen(ScreenDrive)
	if cmd := h.HandleEvent(keyEvent('d'), testBase); cmd != CommandNone {
		t.Errorf("Expected no command for d while driving, got %v", cmd)
	}
	h.Apply(&in, testBase.Add(time.Millisecond))
	if !in.Right {
		t.Error("Expected d to latch right steer while driving")
	}
}

// TestHandlerScreenChangeClearsLatches verifies held input never carries
// across a screen switch
func TestHandlerScreenChangeClearsLatches(t *testing.T) {
	h := driveHandler()
	var in engine.InputResource

	h.HandleEvent(keyEvent('w'), testBase)
	h.HandleEvent(keyEvent(' '), testBase)
	h.HandleEvent(tcell.NewEventMouse(4, 4, tcell.Button1, tcell.ModNone), testBase)

	h.SetScreen(ScreenPause)
	h.SetScreen(ScreenDrive)

	h.Apply(&in, testBase.Add(time.Millisecond))
	if in.Forward || in.TurboPressed || in.FireHeld {
		t.Errorf("Expected a clean slate after the screen switch, got %+v", in)
	}
}

// TestHandlerCommandMapping verifies the per-screen key bindings
func TestHandlerCommandMapping(t *testing.T) {
	tests := []struct {
		name   string
		screen Screen
		ev     *tcell.EventKey
		want   Command
	}{
		{"menu enter starts", ScreenMenu, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CommandStart},
		{"menu q quits", ScreenMenu, keyEvent('q'), CommandQuit},
		{"menu c cycles population", ScreenMenu, keyEvent('c'), CommandCyclePopulation},
		{"menu g toggles god mode", ScreenMenu, keyEvent('g'), CommandToggleGodMode},
		{"menu m toggles mute", ScreenMenu, keyEvent('m'), CommandToggleMute},
		{"drive escape pauses", ScreenDrive, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandPauseToggle},
		{"drive p pauses", ScreenDrive, keyEvent('p'), CommandPauseToggle},
		{"drive q abandons to menu", ScreenDrive, keyEvent('q'), CommandMenu},
		{"drive m toggles mute", ScreenDrive, keyEvent('m'), CommandToggleMute},
		{"pause escape resumes", ScreenPause, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandPauseToggle},
		{"pause q abandons to menu", ScreenPause, keyEvent('q'), CommandMenu},
		{"end enter restarts", ScreenEnd, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CommandStart},
		{"end q returns to menu", ScreenEnd, keyEvent('q'), CommandMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler()
			h.SetScreen(tt.screen)
			if got := h.HandleEvent(tt.ev, testBase); got != tt.want {
				t.Errorf("Expected command %v, got %v", tt.want, got)
			}
		})
	}
}

// TestHandlerCtrlCQuitsEverywhere verifies the interrupt key works on
// every screen
func TestHandlerCtrlCQuitsEverywhere(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	for _, screen := range []Screen{ScreenMenu, ScreenDrive, ScreenPause, ScreenEnd} {
		h := NewHandler()
		h.SetScreen(screen)
		if got := h.HandleEvent(ev, testBase); got != CommandQuit {
			t.Errorf("Expected quit on screen %d, got %v", screen, got)
		}
	}
}

// TestHandlerResize verifies resize events surface as a command
func TestHandlerResize(t *testing.T) {
	h := NewHandler()
	ev := tcell.NewEventResize(100, 40)
	if got := h.HandleEvent(ev, testBase); got != CommandResize {
		t.Errorf("Expected resize command, got %v", got)
	}
}
