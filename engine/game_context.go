package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/event"
	"github.com/lixenwraith/deadrun/road"
	"github.com/lixenwraith/deadrun/vmath"
)

// GameContext holds all game state including the ECS world
type GameContext struct {
	// ===== Immutable After Init =====
	// Set once during NewGameContext. Pointers never modified.
	// Safe for concurrent read without synchronization.

	World         *World            // ECS world; has internal locking for component access
	State         *GameState        // Centralized game state; has internal atomics/mutex
	PausableClock *PausableClock    // Pausable time source; has internal sync
	eventQueue    *event.EventQueue // Lock-free MPSC queue

	// ===== Atomic (Self-Synchronized) =====

	IsPaused atomic.Bool // Pause flag; actual timing handled by PausableClock
	IsMuted  atomic.Bool // Mute flag; mirrors the audio engine state

	// ===== Main-Loop Exclusive =====
	// Accessed only from the main goroutine (input, resize, render).
	// No synchronization required.

	Width, Height int // Terminal dimensions

	Vehicle *component.Vehicle // Stable pointer; fields rewritten on run start
	Road    *road.Road         // Replaced on run start
	Rand    *vmath.Rand        // Replaced on run start, seeded per run
}

// NewGameContext creates a GameContext using an existing ECS World
// width/height are initial terminal dimensions
func NewGameContext(world *World, provider TimeProvider, width, height int) *GameContext {
	ctx := &GameContext{
		World:         world,
		State:         NewGameState(provider),
		PausableClock: NewPausableClock(provider),
		eventQueue:    event.NewEventQueue(),
		Width:         width,
		Height:        height,
		Vehicle:       &component.Vehicle{},
	}

	// Wire World to this context's frame and event source
	world.SetEventMetadata(ctx.eventQueue, &ctx.State.FrameNumber)

	// -- Initialize Resources --

	res := world.Resources

	res.Config.ScreenWidth = ctx.Width
	res.Config.ScreenHeight = ctx.Height

	res.Time.GameTime = ctx.PausableClock.Now()
	res.Time.RealTime = ctx.PausableClock.RealTime()
	res.Time.DeltaTime = constant.FrameUpdateInterval
	res.Time.FrameNumber = 0

	res.GameState.State = ctx.State
	res.Run.Vehicle = ctx.Vehicle

	return ctx
}

// ===== Screen =====

// HandleResize handles terminal resize events
// New Width and Height are already set in context by the main loop
func (ctx *GameContext) HandleResize() {
	ctx.World.RunSafe(func() {
		configRes := ctx.World.Resources.Config
		configRes.ScreenWidth = ctx.Width
		configRes.ScreenHeight = ctx.Height
	})
}

// ===== Frame Number Accessors =====

// GetFrameNumber returns the live render frame index
func (ctx *GameContext) GetFrameNumber() int64 {
	return ctx.State.GetFrameNumber()
}

// IncrementFrameNumber advances the frame authority (called by the main loop)
func (ctx *GameContext) IncrementFrameNumber() int64 {
	return ctx.State.IncrementFrameNumber()
}

// ===== Event Queue Methods =====

// PushEvent adds an event through the world dispatcher, ensuring consistent
// frame-stamping across simulation and input sources
func (ctx *GameContext) PushEvent(eventType event.EventType, payload any) {
	ctx.World.PushEvent(eventType, payload)
}

// ConsumeEvent drains one event from the queue; main loop is the single consumer
func (ctx *GameContext) ConsumeEvent() (event.GameEvent, bool) {
	return ctx.eventQueue.Consume()
}

// ===== Run Lifecycle =====

// StartRun resets the world for a fresh run seeded by seed: generates the
// road, creates obstacle entities, respawns the vehicle, and transitions to
// the driving phase. Returns false if the current phase cannot start a run.
// A zero seed is resolved from the wall clock so the road, the run RNG, and
// the recorded seed stay in agreement.
func (ctx *GameContext) StartRun(seed uint64) bool {
	if !ctx.State.CanTransition(ctx.State.GetPhase(), PhaseDriving) {
		return false
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	rng := vmath.NewRand(seed)
	newRoad := road.Generate(road.Config{Seed: seed})

	ctx.World.RunSafe(func() {
		ctx.World.Clear()

		res := ctx.World.Resources
		res.Run.Road = newRoad
		res.Run.Rand = rng

		// Obstacles are static entities; enemies and projectiles spawn during play
		for _, obs := range newRoad.Obstacles {
			e := ctx.World.CreateEntity()
			ctx.World.Positions.SetComponent(e, component.PositionComponent{Pos: obs.Pos})
			ctx.World.Obstacles.SetComponent(e, component.ObstacleComponent{Kind: obs.Kind})
		}

		*ctx.Vehicle = component.Vehicle{
			Pos:   vmath.Vec3{X: constant.CarSpawnX, Y: constant.CarSpawnY, Z: constant.CarSpawnZ},
			Speed: constant.CarSpawnSpeed,
		}

		res.Camera.X = ctx.Vehicle.Pos.X
		res.Camera.Y = ctx.Vehicle.Pos.Y + constant.CameraLeadY
		res.Camera.Zoom = constant.CameraZoomDefault

		// Drop any latched input from the previous screen
		*res.Input = InputResource{}
	})

	ctx.Road = newRoad
	ctx.Rand = rng

	now := ctx.PausableClock.Now()
	ctx.State.BeginRun(seed, now)
	return ctx.State.TransitionPhase(PhaseDriving, now)
}

// FinishRun transitions out of the driving phase after a win or loss
func (ctx *GameContext) FinishRun(won bool) bool {
	to := PhaseLost
	if won {
		to = PhaseWon
	}
	return ctx.State.TransitionPhase(to, ctx.PausableClock.Now())
}

// QuitToMenu abandons the current screen and returns to the menu
func (ctx *GameContext) QuitToMenu() bool {
	return ctx.State.TransitionPhase(PhaseMenu, ctx.PausableClock.Now())
}

// ===== Audio =====

// GetAudioPlayer retrieves the audio player from resources
// Returns nil if audio unavailable
func (ctx *GameContext) GetAudioPlayer() AudioPlayer {
	if ctx.World.Resources.Audio != nil {
		return ctx.World.Resources.Audio.Player
	}
	return nil
}

// ToggleAudioMute toggles the mute state of the audio engine
// Returns the new mute state (true if muted, false if unmuted)
func (ctx *GameContext) ToggleAudioMute() bool {
	player := ctx.GetAudioPlayer()
	if player == nil {
		return ctx.IsMuted.Load()
	}
	newMuted := player.ToggleMute()
	ctx.IsMuted.Store(newMuted)
	return newMuted
}

// ===== Pause =====

// SetPaused sets the pause state using the pausable clock
func (ctx *GameContext) SetPaused(paused bool) {
	wasPaused := ctx.IsPaused.Load()
	ctx.IsPaused.Store(paused)

	player := ctx.GetAudioPlayer()

	if paused && !wasPaused {
		ctx.PausableClock.Pause()
		// Capture pre-pause state, then mute for pause
		if player != nil && player.IsRunning() {
			ctx.IsMuted.Store(player.IsMuted())
			if !player.IsMuted() {
				player.ToggleMute()
			}
		}
	} else if !paused && wasPaused {
		ctx.PausableClock.Resume()
		// Restore pre-pause state (respects user toggle during pause)
		if player != nil && player.IsRunning() {
			if !ctx.IsMuted.Load() && player.IsMuted() {
				player.ToggleMute()
			}
		}
	}
}
