package engine

import (
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/road"
	"github.com/lixenwraith/deadrun/vmath"
)

// Resource holds singleton game resources, initialized during GameContext
// creation and accessed via World.Resources
type Resource struct {
	Time      *TimeResource
	Config    *ConfigResource
	Input     *InputResource
	Camera    *CameraResource
	Settings  *SettingsResource
	Audio     *AudioResource
	GameState *GameStateResource
	Run       *RunResource
}

// NewResource creates the resource set with zero-value state
func NewResource() *Resource {
	return &Resource{
		Time:      &TimeResource{},
		Config:    &ConfigResource{},
		Input:     &InputResource{},
		Camera:    &CameraResource{Zoom: constant.CameraZoomDefault},
		Settings:  &SettingsResource{},
		Audio:     &AudioResource{},
		GameState: &GameStateResource{},
		Run:       &RunResource{},
	}
}

// TimeResource wraps time data for systems
// Updated by the tick loop at the start of a frame
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ConfigResource holds static or semi-static screen configuration
type ConfigResource struct {
	ScreenWidth  int
	ScreenHeight int
}

// InputResource holds the per-tick driving input state
// Written by the input handler before systems run, read-only during Update
type InputResource struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// TurboPressed is an edge trigger, cleared after the vehicle system reads it
	TurboPressed bool

	FireHeld bool

	// Aim is the fire direction target in world coordinates (mouse); without
	// it projectiles fly along the vehicle's forward vector
	AimX, AimY float64
	HasAim     bool
}

// CameraResource is the view transform consumed by the renderer
// ProgressSystem owns the follow/zoom policy
type CameraResource struct {
	X, Y float64
	Zoom float64
}

// SettingsResource carries the run-immutable difficulty configuration
type SettingsResource struct {
	Difficulty    core.Difficulty
	PopulationCap int
	GodMode       bool
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface; Player may be nil when
// audio failed to initialize
type AudioResource struct {
	Player AudioPlayer
}

// GameStateResource exposes the centralized game state to systems
type GameStateResource struct {
	State *GameState
}

// RunResource carries per-run simulation state shared by systems.
// Road and Rand are replaced on run start under the world update lock;
// Vehicle is a stable pointer whose fields are rewritten in place.
type RunResource struct {
	Vehicle *component.Vehicle
	Road    *road.Road
	Rand    *vmath.Rand
}
