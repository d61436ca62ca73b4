package component

// ObstacleKind selects the wrecked-car sprite for a static obstacle
type ObstacleKind int

const (
	ObstacleCar1 ObstacleKind = iota
	ObstacleCar2
	ObstacleCar3
)

// ObstacleComponent marks a static road obstacle placed by generation
// Immutable after placement; collision bounces the vehicle, never the obstacle
type ObstacleComponent struct {
	Kind ObstacleKind
}
