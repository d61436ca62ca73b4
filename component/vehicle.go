package component

import (
	"time"

	"github.com/lixenwraith/deadrun/vmath"
)

// Vehicle is the single player car, owned directly by the game context
// rather than stored as an ECS entity; exactly one exists per run
type Vehicle struct {
	Pos      vmath.Vec3
	Rotation float64 // Radians; zero faces up the road
	Speed    float64 // Bounded to [-MaxSpeed/2, MaxSpeed]
	TurnRate float64 // Set from input each tick

	// TurboElapsed is time since the last turbo trigger. It starts at zero on
	// spawn, so the boost window is live for the first moments of a run
	TurboElapsed time.Duration
}
