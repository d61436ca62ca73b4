package system

import (
	"math"
	"time"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/event"
	"github.com/lixenwraith/deadrun/vmath"
)

// VehicleSystem integrates driving input into the vehicle transform:
// steering, throttle and friction, the turbo window, and surface drag
type VehicleSystem struct {
	world *engine.World
}

// NewVehicleSystem creates the vehicle physics system
func NewVehicleSystem(world *engine.World) *VehicleSystem {
	return &VehicleSystem{world: world}
}

func (s *VehicleSystem) Name() string {
	return "vehicle"
}

func (s *VehicleSystem) Priority() int {
	return constant.PriorityVehicle // First, everything else reads the new transform
}

func (s *VehicleSystem) Update(dt time.Duration) {
	run := s.world.Resources.Run
	if run.Road == nil {
		return
	}

	input := s.world.Resources.Input
	state := s.world.Resources.GameState.State
	v := run.Vehicle
	dts := dt.Seconds()

	// The turbo stopwatch runs whether or not the boost is usable
	v.TurboElapsed += dt

	if input.TurboPressed {
		// Edge trigger is consumed even when the cooldown rejects it
		input.TurboPressed = false
		if v.TurboElapsed > constant.TurboInterval {
			v.TurboElapsed = 0
			s.world.PushEvent(event.EventTurboFired, nil)
		}
	}

	v.TurnRate = 0
	if input.Left {
		v.TurnRate = constant.TurnSpeed
	} else if input.Right {
		v.TurnRate = -constant.TurnSpeed
	}

	switch {
	case input.Back:
		if math.Abs(v.Speed) <= constant.BrakeSnapThreshold {
			v.Speed = 0
		} else {
			v.Speed -= constant.Friction * dts * constant.BrakeFrictionFactor
		}
	case input.Forward:
		v.Speed += constant.CarThrust * dts
	default:
		switch {
		case math.Abs(v.Speed) <= constant.CoastSnapThreshold:
			v.Speed = 0
		case v.Speed > 0:
			v.Speed -= constant.Friction * dts
		case v.Speed < 0:
			v.Speed += constant.Friction * dts
		}
	}
	v.Speed = vmath.Clamp(v.Speed, -constant.MaxSpeed+constant.MaxSpeed/2, constant.MaxSpeed)

	// The boost adds on top of the clamp, so a boosted tick exceeds MaxSpeed;
	// the next clamp pulls it back once the window closes
	if v.TurboElapsed < constant.TurboWindow {
		v.Speed += constant.TurboBoost
	}

	moveFactor := constant.OffRoadMoveFactor
	if run.Road.Tiles.OnRoad(v.Pos) {
		moveFactor = constant.OnRoadMoveFactor
	}

	// Rotation integrates on the fixed step, not the frame delta
	if math.Abs(v.Speed) > constant.MinSpeedToSteer {
		v.Rotation += v.TurnRate * constant.RotationStep
	}

	forward := vmath.RotateForward(v.Rotation)
	dist := v.Speed * moveFactor * dts * constant.MoveScale
	v.Pos.X += forward.X * dist
	v.Pos.Y += forward.Y * dist

	state.TurboReady.Store(v.TurboElapsed >= constant.TurboInterval)
}
