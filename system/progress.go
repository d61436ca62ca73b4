package system

import (
	"time"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/event"
	"github.com/lixenwraith/deadrun/vmath"
)

// ProgressSystem derives run completion from the vehicle's distance up the
// road, steers the follow camera, and ends the run at either terminal
// threshold: the finish line ahead or the wrong-way limit behind
type ProgressSystem struct {
	world *engine.World
}

// NewProgressSystem creates the progress tracking system
func NewProgressSystem(world *engine.World) *ProgressSystem {
	return &ProgressSystem{world: world}
}

func (s *ProgressSystem) Name() string {
	return "progress"
}

func (s *ProgressSystem) Priority() int {
	return constant.PriorityProgress // After vehicle movement, before spawn gating
}

func (s *ProgressSystem) Update(dt time.Duration) {
	run := s.world.Resources.Run
	if run.Road == nil {
		return
	}

	state := s.world.Resources.GameState.State
	v := run.Vehicle

	progress := v.Pos.Y / constant.TotalRoadLength
	state.SetProgress(progress)

	s.updateCamera(v.Pos.X, v.Pos.Y, progress, dt)

	if progress < constant.LoseProgress {
		s.pushRunEnded(false, progress)
		return
	}
	if progress >= constant.WinProgress {
		state.SetProgress(constant.WinProgress)
		s.pushRunEnded(true, constant.WinProgress)
	}
}

// updateCamera eases the view toward a point ahead of the vehicle and walks
// the zoom policy: widen to the cruise scale, tighten again near the finish
func (s *ProgressSystem) updateCamera(carX, carY, progress float64, dt time.Duration) {
	cam := s.world.Resources.Camera

	cam.X = vmath.Lerp(cam.X, carX, constant.CameraLerp)
	cam.Y = vmath.Lerp(cam.Y, carY+constant.CameraLeadY, constant.CameraLerp)

	// Bounds are checked before the step applies, so one tick may overshoot
	// slightly; the next tick holds
	if progress > constant.CameraZoomProgressGate {
		if cam.Zoom <= constant.CameraZoomFinish {
			return
		}
		cam.Zoom -= constant.CameraZoomInRate * dt.Seconds()
		return
	}
	if cam.Zoom >= constant.CameraZoomMax {
		return
	}
	cam.Zoom += constant.CameraZoomOutRate * dt.Seconds()
}

func (s *ProgressSystem) pushRunEnded(won bool, progress float64) {
	state := s.world.Resources.GameState.State

	sound := core.SoundLose
	if won {
		sound = core.SoundWin
	}
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound})

	s.world.PushEvent(event.EventRunEnded, &event.RunEndedPayload{
		Won:      won,
		Score:    state.GetScore(),
		Progress: progress,
		Duration: state.RunDuration(s.world.Resources.Time.GameTime),
	})
}
