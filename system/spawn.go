package system

import (
	"math"
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/vmath"
)

// SpawnSystem maintains the pursuing population around the vehicle. The
// population target scales with run progress up to the configured cap, and
// placement mixes ambient side zones with road-ahead lanes gated by
// difficulty and progress
type SpawnSystem struct {
	world *engine.World
}

// NewSpawnSystem creates the enemy population system
func NewSpawnSystem(world *engine.World) *SpawnSystem {
	return &SpawnSystem{world: world}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return constant.PrioritySpawn
}

func (s *SpawnSystem) Update(dt time.Duration) {
	run := s.world.Resources.Run
	if run.Road == nil || run.Rand == nil {
		return
	}

	settings := s.world.Resources.Settings
	progress := s.world.Resources.GameState.State.GetProgress()

	// The check only gates entry; an admitted tick always places a full
	// batch, so the population briefly overshoots the target
	maxZombies := float64(settings.PopulationCap)
	target := math.Min(maxZombies*progress+constant.SpawnCapFloor, maxZombies)
	if s.world.Enemies.CountEntities() >= int(target) {
		return
	}

	rng := run.Rand
	cx, cy := run.Vehicle.Pos.X, run.Vehicle.Pos.Y

	ambientProb := ambientProbability(settings.Difficulty)
	roadZombies := roadZombiesEnabled(settings.Difficulty, progress)
	halfRoad := halfRoadEnabled(settings.Difficulty, progress)

	for i := 0; i < constant.SpawnBatchSize; i++ {
		x := rng.RangeF(0, constant.SpawnScatter)
		y := rng.RangeF(0, constant.SpawnScatter)

		var px, py float64
		switch {
		case rng.Chance(ambientProb):
			px, py = ambientZone(rng, cx, cy, x, y)
		case roadZombies:
			px, py = roadLane(rng, cx, cy, x, y, constant.RoadPadMin, constant.RoadPadMax)
		case halfRoad:
			px, py = roadLane(rng, cx, cy, x, y, constant.HalfRoadPadMin, constant.HalfRoadPadMax)
		default:
			// Never drop a rejected candidate on top of the vehicle
			px, py = constant.DiscardSpawnX, constant.DiscardSpawnY
		}

		s.spawnZombie(rng, px, py, progress)
	}
}

// spawnZombie creates one enemy entity at the given position, rolling its
// visual variant; heavies appear only past the progress gate
func (s *SpawnSystem) spawnZombie(rng *vmath.Rand, x, y, progress float64) {
	variant := constant.VariantBaseMin + rng.Intn(constant.VariantBaseMax-constant.VariantBaseMin)
	scale := constant.VariantBaseScale
	heavy := false
	if rng.Chance(constant.HeavyChance) && progress >= constant.HeavyProgressGate {
		variant = constant.VariantHeavyMin + rng.Intn(constant.VariantHeavyMax-constant.VariantHeavyMin)
		scale = constant.VariantHeavyScale
		heavy = true
	}

	e := s.world.CreateEntity()
	s.world.Positions.SetComponent(e, component.PositionComponent{
		Pos: vmath.Vec3{X: x, Y: y, Z: constant.EnemyZ},
	})
	s.world.Enemies.SetComponent(e, component.EnemyComponent{
		Variant: variant,
		Scale:   scale,
		Heavy:   heavy,
	})
}

// --- Placement ---

// ambientZone picks one of eight side bands flanking the vehicle; three of
// the four bands on each side sit progressively further up the road
func ambientZone(rng *vmath.Rand, cx, cy, x, y float64) (float64, float64) {
	switch rng.Range(1, 8) {
	case 1:
		return cx + constant.ZoneSpan + x, cy + y
	case 2:
		return cx + constant.ZoneSpan + x, cy + y + rng.RangeF(constant.AmbientBandNearMin, constant.AmbientBandNearMax)
	case 3:
		return cx + constant.ZoneSpan + x, cy + y + rng.RangeF(constant.AmbientBandMidMin, constant.AmbientBandMidMax)
	case 7:
		return cx + constant.ZoneSpan + x, cy + y + rng.RangeF(constant.AmbientBandFarMin, constant.AmbientBandFarMax)
	case 4:
		return cx - constant.ZoneSpan - x, cy - y
	case 5:
		return cx - constant.ZoneSpan - x, cy - y + rng.RangeF(constant.AmbientBandNearMin, constant.AmbientBandNearMax)
	case 6:
		return cx - constant.ZoneSpan - x, cy - y + rng.RangeF(constant.AmbientBandMidMin, constant.AmbientBandMidMax)
	default:
		return cx - constant.ZoneSpan - x, cy - y + rng.RangeF(constant.AmbientBandFarMin, constant.AmbientBandFarMax)
	}
}

// roadLane drops a candidate well ahead of the vehicle beside the asphalt,
// on a uniformly chosen side; the pad widens the lateral gap
func roadLane(rng *vmath.Rand, cx, cy, x, y, padMin, padMax float64) (float64, float64) {
	if rng.Chance(0.5) {
		px := cx + x + constant.RoadLaneOffset + rng.RangeF(padMin, padMax)
		return px, cy + y + rng.RangeF(constant.RoadBandMin, constant.RoadBandMax)
	}
	px := cx - x - constant.RoadLaneOffset - rng.RangeF(padMin, padMax)
	return px, cy + y + rng.RangeF(constant.RoadBandMin, constant.RoadBandMax)
}

// --- Difficulty Gates ---

func ambientProbability(d core.Difficulty) float64 {
	switch d {
	case core.DifficultyEasy:
		return constant.NormalProbEasy
	case core.DifficultyHard:
		return constant.NormalProbHard
	default:
		return constant.NormalProbModerate
	}
}

func roadZombiesEnabled(d core.Difficulty, progress float64) bool {
	switch d {
	case core.DifficultyEasy:
		return progress >= constant.RoadZombieGateEasy
	case core.DifficultyModerate:
		return progress >= constant.RoadZombieGateModerate
	default:
		return true
	}
}

func halfRoadEnabled(d core.Difficulty, progress float64) bool {
	if d == core.DifficultyEasy {
		return progress >= constant.HalfRoadGateEasy
	}
	return true
}
