package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/engine"
)

// Handler translates terminal events into driving input and commands.
// Terminals deliver no key-release events, so held driving keys are
// modeled as latches that keyboard autorepeat refreshes and a deadline
// expires. Latches run on wall-clock time; the game clock may be paused
type Handler struct {
	screen Screen

	// Latch deadlines for held driving keys
	forwardUntil time.Time
	backUntil    time.Time
	leftUntil    time.Time
	rightUntil   time.Time
	fireUntil    time.Time

	// Turbo edge, buffered until the next Apply
	turboPressed bool

	// Mouse fire-and-aim state
	mouseHeld      bool
	mouseX, mouseY int

	// ScreenToWorld maps a terminal cell to world coordinates for mouse
	// aim. The renderer owns the camera transform and injects this; a nil
	// func disables aiming and projectiles fly along the vehicle heading
	ScreenToWorld func(x, y int) (float64, float64)
}

// NewHandler creates a handler parsing for the menu screen
func NewHandler() *Handler {
	return &Handler{screen: ScreenMenu}
}

// SetScreen updates the parsing context when the game phase changes
// Latched input never carries across screens
func (h *Handler) SetScreen(screen Screen) {
	h.screen = screen
	h.Reset()
}

// Reset clears all latched and buffered input
func (h *Handler) Reset() {
	h.forwardUntil = time.Time{}
	h.backUntil = time.Time{}
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
	h.fireUntil = time.Time{}
	h.turboPressed = false
	h.mouseHeld = false
}

// HandleEvent parses one terminal event, updating latch state and
// returning a command for the main loop (CommandNone for absorbed input)
func (h *Handler) HandleEvent(ev tcell.Event, now time.Time) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev, now)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		return CommandResize
	}
	return CommandNone
}

func (h *Handler) handleKey(ev *tcell.EventKey, now time.Time) Command {
	// Works on every screen
	if ev.Key() == tcell.KeyCtrlC {
		return CommandQuit
	}

	switch h.screen {
	case ScreenDrive:
		return h.keyDrive(ev, now)
	case ScreenPause:
		return h.keyPause(ev)
	case ScreenMenu:
		return h.keyMenu(ev)
	case ScreenEnd:
		return h.keyEnd(ev)
	}
	return CommandNone
}

func (h *Handler) keyDrive(ev *tcell.EventKey, now time.Time) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		h.latch(&h.forwardUntil, now)
		return CommandNone
	case tcell.KeyDown:
		h.latch(&h.backUntil, now)
		return CommandNone
	case tcell.KeyLeft:
		h.latch(&h.leftUntil, now)
		return CommandNone
	case tcell.KeyRight:
		h.latch(&h.rightUntil, now)
		return CommandNone
	case tcell.KeyEscape:
		return CommandPauseToggle
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			h.latch(&h.forwardUntil, now)
		case 's':
			h.latch(&h.backUntil, now)
		case 'a':
			h.latch(&h.leftUntil, now)
		case 'd':
			h.latch(&h.rightUntil, now)
		case 'f':
			h.latch(&h.fireUntil, now)
		case ' ':
			h.turboPressed = true
		case 'p':
			return CommandPauseToggle
		case 'm':
			return CommandToggleMute
		case 'q':
			return CommandMenu
		}
	}
	return CommandNone
}

func (h *Handler) keyPause(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyEscape {
		return CommandPauseToggle
	}
	if ev.Key() == tcell.KeyRune {
		switch unicode.ToLower(ev.Rune()) {
		case 'p':
			return CommandPauseToggle
		case 'm':
			return CommandToggleMute
		case 'q':
			return CommandMenu
		}
	}
	return CommandNone
}

func (h *Handler) keyMenu(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyEnter {
		return CommandStart
	}
	if ev.Key() == tcell.KeyRune {
		switch unicode.ToLower(ev.Rune()) {
		case 'd':
			return CommandCycleDifficulty
		case 'c':
			return CommandCyclePopulation
		case 'g':
			return CommandToggleGodMode
		case 'm':
			return CommandToggleMute
		case 'q':
			return CommandQuit
		}
	}
	return CommandNone
}

func (h *Handler) keyEnd(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyEnter {
		return CommandStart
	}
	if ev.Key() == tcell.KeyRune {
		switch unicode.ToLower(ev.Rune()) {
		case 'm':
			return CommandToggleMute
		case 'q':
			return CommandMenu
		}
	}
	return CommandNone
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 != 0 {
		h.mouseHeld = true
		h.mouseX, h.mouseY = ev.Position()
		return
	}
	h.mouseHeld = false
}

// latch refreshes a key's hold deadline; autorepeat keeps a physically
// held key latched
func (h *Handler) latch(deadline *time.Time, now time.Time) {
	*deadline = now.Add(constant.KeyLatchWindow)
}

// Apply writes the current input state into the shared resource
// Called once per tick before systems run; the vehicle system consumes
// the turbo edge from the resource
func (h *Handler) Apply(in *engine.InputResource, now time.Time) {
	in.Forward = now.Before(h.forwardUntil)
	in.Back = now.Before(h.backUntil)
	in.Left = now.Before(h.leftUntil)
	in.Right = now.Before(h.rightUntil)

	if h.turboPressed {
		in.TurboPressed = true
		h.turboPressed = false
	}

	in.FireHeld = h.mouseHeld || now.Before(h.fireUntil)

	if h.mouseHeld && h.ScreenToWorld != nil {
		in.AimX, in.AimY = h.ScreenToWorld(h.mouseX, h.mouseY)
		in.HasAim = true
	} else {
		in.HasAim = false
	}
}
