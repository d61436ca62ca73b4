package constant

// Enemy population control
const (
	// SpawnBatchSize caps how many enemies one tick may create
	SpawnBatchSize = 50

	// SpawnCapFloor keeps a minimum cap even at zero progress
	SpawnCapFloor = 5.0

	// ZoneSpan is the lateral half-width of the ambient spawn field; ambient
	// zombies appear at least this far to the side of the vehicle
	ZoneSpan = 1000.0

	// SpawnScatter is the per-candidate random scatter added on both axes
	SpawnScatter = 400.0

	// RoadLaneOffset is the lateral base distance for road and half-road
	// placements, half the ambient span
	RoadLaneOffset = 500.0

	// Forward displacement bands for the far ambient zones, in world units
	// up the road from the vehicle
	AmbientBandNearMin = 1000.0
	AmbientBandNearMax = 1200.0
	AmbientBandMidMin  = 1500.0
	AmbientBandMidMax  = 1800.0
	AmbientBandFarMin  = 1800.0
	AmbientBandFarMax  = 2500.0

	// RoadBandMin / RoadBandMax bound the forward band for road-lane placements
	RoadBandMin = 1000.0
	RoadBandMax = 1500.0

	// Lateral pads beyond RoadLaneOffset; half-road placements hug the
	// asphalt with a wider pad
	RoadPadMin     = 0.0
	RoadPadMax     = 100.0
	HalfRoadPadMin = 100.0
	HalfRoadPadMax = 200.0

	// Ambient probability per difficulty; the remainder goes to road placements
	NormalProbEasy     = 0.99
	NormalProbModerate = 0.98
	NormalProbHard     = 0.96

	// Road-zombie progress gates per difficulty (Hard is always on)
	RoadZombieGateEasy     = 0.7
	RoadZombieGateModerate = 0.6

	// Half-road progress gate for Easy (Moderate/Hard always on)
	HalfRoadGateEasy = 0.4

	// DiscardSpawnX / DiscardSpawnY park a rejected candidate far off-world
	DiscardSpawnX = 10000.0
	DiscardSpawnY = 10000.0
)

// Enemy movement and combat
const (
	// ZombieSpeed is the pursuit speed in world units per second
	ZombieSpeed = 255.0

	// ZombieAttack is health damage per contact per tick
	ZombieAttack = 2.0

	// ZombieJitter is the half-range of the per-tick steering noise
	ZombieJitter = 0.5

	// LeashDistance is how far ahead of the vehicle an enemy must be before
	// the overshoot rule may retarget it further up the road
	LeashDistance = 500.0

	// OvershootMin / OvershootMax bound the extra distance added to the
	// pursuit target when the overshoot rule fires
	OvershootMin = 500.0
	OvershootMax = 1500.0

	// DespawnBehind removes enemies this far behind the vehicle
	DespawnBehind = 700.0

	// EnemyZ is the draw layer for zombies, above road tiles and below the car
	EnemyZ = 1.0
)

// Enemy visual variants (sprite atlas rows)
const (
	VariantBaseMin   = 30
	VariantBaseMax   = 40 // exclusive
	VariantBaseScale = 2.5

	VariantHeavyMin   = 40
	VariantHeavyMax   = 44 // exclusive
	VariantHeavyScale = 3.2

	// HeavyChance applies once progress reaches HeavyProgressGate
	HeavyChance       = 0.1
	HeavyProgressGate = 0.3
)

// Population cap presets selectable in settings
const (
	DefaultPopulationCap = 5000
)

// PopulationLadder lists the selectable caps in menu cycle order
var PopulationLadder = []int{100, 500, 1000, 5000, 10000, 20000, 50000}

// Menu ambience
const (
	// MenuZombieCount is how many drifting zombies dress the main menu
	MenuZombieCount = 200

	// MenuZombieHeavyChance is the heavy-variant rate on the menu, deliberately
	// higher than in play
	MenuZombieHeavyChance = 0.2

	// MenuZombieDriftFactor slows menu zombies relative to pursuit speed
	MenuZombieDriftFactor = 0.025
)
