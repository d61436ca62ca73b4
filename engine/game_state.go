package engine

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/deadrun/constant"
)

// GamePhase is the coarse application state driving the screen flow
type GamePhase uint8

const (
	PhaseMenu GamePhase = iota
	PhaseDriving
	PhaseWon
	PhaseLost
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseDriving:
		return "driving"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState centralizes run state with clear ownership boundaries
type GameState struct {
	// ===== REAL-TIME STATE (lock-free atomics) =====
	// Written by the simulation tick, read by the renderer snapshot

	Score       atomic.Uint32
	FrameNumber atomic.Int64
	TurboReady  atomic.Bool

	healthBits   atomic.Uint64 // float64 bits
	progressBits atomic.Uint64 // float64 bits

	// ===== TICK STATE (mutex protected) =====

	mu sync.RWMutex

	CurrentPhase   GamePhase
	PhaseStartTime time.Time

	RunSeed      uint64
	RunStartTime time.Time // Game time when the current run began
}

// NewGameState creates game state at the menu with a full health pool
func NewGameState(timeProvider TimeProvider) *GameState {
	gs := &GameState{}

	gs.Score.Store(0)
	gs.FrameNumber.Store(0)
	gs.TurboReady.Store(false)
	gs.SetHealth(constant.MaxCarHealth)
	gs.SetProgress(0)

	gs.CurrentPhase = PhaseMenu
	gs.PhaseStartTime = timeProvider.Now()

	return gs
}

// ===== SCORE ACCESSORS (atomic) =====

// GetScore returns the current score
func (gs *GameState) GetScore() uint32 {
	return gs.Score.Load()
}

// AddScore adds a delta to the current score
func (gs *GameState) AddScore(delta uint32) {
	gs.Score.Add(delta)
}

// ===== HEALTH ACCESSORS (atomic, float64 bits) =====

// GetHealth returns the current vehicle health
func (gs *GameState) GetHealth() float64 {
	return math.Float64frombits(gs.healthBits.Load())
}

// SetHealth stores health clamped to [0, MaxCarHealth]
func (gs *GameState) SetHealth(h float64) {
	if h < 0 {
		h = 0
	} else if h > constant.MaxCarHealth {
		h = constant.MaxCarHealth
	}
	gs.healthBits.Store(math.Float64bits(h))
}

// ===== PROGRESS ACCESSORS (atomic, float64 bits) =====

// GetProgress returns the signed progress fraction
func (gs *GameState) GetProgress() float64 {
	return math.Float64frombits(gs.progressBits.Load())
}

// SetProgress stores the progress fraction; callers clamp at the win threshold
func (gs *GameState) SetProgress(p float64) {
	gs.progressBits.Store(math.Float64bits(p))
}

// ===== FRAME COUNTER ACCESSORS (atomic) =====

// GetFrameNumber returns the current frame number
func (gs *GameState) GetFrameNumber() int64 {
	return gs.FrameNumber.Load()
}

// IncrementFrameNumber increments and returns the frame number
func (gs *GameState) IncrementFrameNumber() int64 {
	return gs.FrameNumber.Add(1)
}

// ===== PHASE STATE ACCESSORS (mutex protected) =====

// GetPhase returns the current game phase
func (gs *GameState) GetPhase() GamePhase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.CurrentPhase
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	validTransitions := map[GamePhase][]GamePhase{
		PhaseMenu:    {PhaseDriving},
		PhaseDriving: {PhaseWon, PhaseLost, PhaseMenu},
		PhaseWon:     {PhaseMenu, PhaseDriving},
		PhaseLost:    {PhaseMenu, PhaseDriving},
	}

	allowed := validTransitions[from]
	for _, phase := range allowed {
		if phase == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.CanTransition(gs.CurrentPhase, to) {
		return false
	}

	gs.CurrentPhase = to
	gs.PhaseStartTime = now
	return true
}

// GetPhaseStartTime returns when the current phase started
func (gs *GameState) GetPhaseStartTime() time.Time {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.PhaseStartTime
}

// ===== RUN STATE ACCESSORS (mutex protected) =====

// BeginRun records the seed and start time for a fresh run and resets the
// per-run counters; the caller transitions the phase separately
func (gs *GameState) BeginRun(seed uint64, now time.Time) {
	gs.mu.Lock()
	gs.RunSeed = seed
	gs.RunStartTime = now
	gs.mu.Unlock()

	gs.Score.Store(0)
	gs.TurboReady.Store(false)
	gs.SetHealth(constant.MaxCarHealth)
	gs.SetProgress(0)
}

// GetRunSeed returns the current run's generation seed
func (gs *GameState) GetRunSeed() uint64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.RunSeed
}

// RunDuration returns game-time elapsed since the run began
func (gs *GameState) RunDuration(now time.Time) time.Duration {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if gs.RunStartTime.IsZero() {
		return 0
	}
	return now.Sub(gs.RunStartTime)
}

// ===== RENDER SNAPSHOT =====

// HUDSnapshot is a consistent view of the values the HUD draws
type HUDSnapshot struct {
	Health     float64
	Progress   float64
	Score      uint32
	TurboReady bool
	Phase      GamePhase
}

// ReadHUDState returns a snapshot for rendering without holding locks
// across draw calls
func (gs *GameState) ReadHUDState() HUDSnapshot {
	return HUDSnapshot{
		Health:     gs.GetHealth(),
		Progress:   gs.GetProgress(),
		Score:      gs.GetScore(),
		TurboReady: gs.TurboReady.Load(),
		Phase:      gs.GetPhase(),
	}
}
