package system

import (
	"math"
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/event"
)

// CollisionSystem resolves the three contact interactions each tick:
// obstacle bounce-back on the vehicle, zombie contact damage, and bullet
// kills. All checks are axis-aligned box overlaps against the hit boxes
type CollisionSystem struct {
	world *engine.World

	// Previous-tick contact flags, for one-shot audio on contact edges
	obstacleContact bool
	zombieContact   bool
}

// NewCollisionSystem creates the contact resolution system
func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return constant.PriorityCollision // Last, against this tick's final positions
}

func (s *CollisionSystem) Update(dt time.Duration) {
	run := s.world.Resources.Run
	if run.Road == nil {
		return
	}

	v := run.Vehicle
	state := s.world.Resources.GameState.State

	s.bounceOffObstacles(v)
	s.applyContactDamage(v, state)
	s.resolveBulletHits(state)
}

// bounceOffObstacles forces the vehicle into reverse on any wreck overlap;
// repeated overlaps just reassert the bounce speed
func (s *CollisionSystem) bounceOffObstacles(v *component.Vehicle) {
	touching := false
	for _, e := range s.world.Obstacles.GetAllEntities() {
		pos, ok := s.world.Positions.GetComponent(e)
		if !ok {
			continue
		}
		if math.Abs(pos.Pos.X-v.Pos.X) <= constant.ObstacleHitBox &&
			math.Abs(pos.Pos.Y-v.Pos.Y) <= constant.ObstacleHitBox {
			v.Speed = constant.ObstacleBounceSpeed
			touching = true
		}
	}

	if touching && !s.obstacleContact {
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundCrash})
	}
	s.obstacleContact = touching
}

// applyContactDamage drains health for every zombie overlapping the vehicle
// this tick and ends the run when the pool empties
func (s *CollisionSystem) applyContactDamage(v *component.Vehicle, state *engine.GameState) {
	hits := 0
	for _, e := range s.world.Enemies.GetAllEntities() {
		pos, ok := s.world.Positions.GetComponent(e)
		if !ok {
			continue
		}
		if math.Abs(pos.Pos.X-v.Pos.X) <= constant.ZombieHitBox &&
			math.Abs(pos.Pos.Y-v.Pos.Y) <= constant.ZombieHitBox {
			hits++
		}
	}

	if hits > 0 && !s.zombieContact {
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundHit})
	}
	s.zombieContact = hits > 0

	if hits == 0 || s.world.Resources.Settings.GodMode {
		return
	}

	health := state.GetHealth() - constant.ZombieAttack*float64(hits)
	state.SetHealth(health)

	if health <= 0 {
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundLose})
		s.world.PushEvent(event.EventRunEnded, &event.RunEndedPayload{
			Won:      false,
			Score:    state.GetScore(),
			Progress: state.GetProgress(),
			Duration: state.RunDuration(s.world.Resources.Time.GameTime),
		})
	}
}

// resolveBulletHits scores bullet/zombie overlaps. Every overlapping bullet
// scores and the zombie dies once, so a tight pair of bullets can double a
// kill's value; bullets fly on afterwards
func (s *CollisionSystem) resolveBulletHits(state *engine.GameState) {
	bullets := s.world.Projectiles.GetAllEntities()
	if len(bullets) == 0 {
		return
	}

	type point struct{ x, y float64 }
	bulletPos := make([]point, 0, len(bullets))
	for _, b := range bullets {
		if pos, ok := s.world.Positions.GetComponent(b); ok {
			bulletPos = append(bulletPos, point{pos.Pos.X, pos.Pos.Y})
		}
	}

	var killed []core.Entity
	var scored uint32

	for _, e := range s.world.Enemies.GetAllEntities() {
		pos, ok := s.world.Positions.GetComponent(e)
		if !ok {
			continue
		}
		dead := false
		for _, b := range bulletPos {
			if math.Abs(b.x-pos.Pos.X) <= constant.BulletHitBox &&
				math.Abs(b.y-pos.Pos.Y) <= constant.BulletHitBox {
				scored++
				dead = true
			}
		}
		if dead {
			killed = append(killed, e)
		}
	}

	if scored > 0 {
		state.AddScore(scored)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundScore})
	}
	s.world.DestroyBatch(killed)
}
