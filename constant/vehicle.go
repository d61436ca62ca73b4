package constant

import "time"

// Vehicle physics
const (
	// TurnSpeed is the fixed turn rate magnitude while steering
	TurnSpeed = 20.0

	// RotationStep scales turn rate into radians per tick; rotation integrates
	// on this fixed step, not the frame delta
	RotationStep = 0.1 / 60.0

	// CarThrust is forward acceleration in speed units per second
	CarThrust = 20.0

	// MaxSpeed bounds forward speed; reverse is bounded at -MaxSpeed/2
	MaxSpeed = 40.0

	// Friction is the base deceleration while coasting; braking applies
	// BrakeFrictionFactor on top
	Friction            = 20.0
	BrakeFrictionFactor = 1.2

	// BrakeSnapThreshold and CoastSnapThreshold zero the speed outright when
	// its magnitude falls below them, preventing oscillation around zero
	BrakeSnapThreshold = 10.0
	CoastSnapThreshold = 5.0

	// MinSpeedToSteer gates steering; the car cannot rotate while stationary
	MinSpeedToSteer = 0.0

	// OnRoadMoveFactor and OffRoadMoveFactor convert speed into displacement
	// scale; leaving the asphalt roughly halves effective speed
	OnRoadMoveFactor  = 0.1
	OffRoadMoveFactor = 0.05

	// MoveScale converts (speed * factor) into world units per second
	MoveScale = 100.0

	// MaxCarHealth is the health pool at run start
	MaxCarHealth = 200.0

	// ObstacleBounceSpeed is the forced speed after an obstacle collision
	ObstacleBounceSpeed = -6.0
)

// Turbo
const (
	// TurboBoost is the additive speed applied each tick inside the boost window
	TurboBoost = 60.0

	// TurboInterval is the cooldown before turbo can fire again
	TurboInterval = 5 * time.Second

	// TurboWindow is how long the boost stays active after a trigger
	TurboWindow = 200 * time.Millisecond
)

// Vehicle spawn transform
const (
	CarSpawnX     = 150.0
	CarSpawnY     = 50.0
	CarSpawnZ     = 10.0
	CarSpawnSpeed = 10.0
)
