package constant

// Road lattice geometry
// World units derive from the tile raster: TileSize * RoadScale units per tile
const (
	// TileSize is the raster size of one tile in world pixels
	TileSize = 16

	// RoadScale is the world magnification applied to tiles
	RoadScale = 5

	// TileWorldSize is the world-unit span of one tile (TileSize * RoadScale)
	TileWorldSize = 80

	// RoadWidth is the drivable width in tiles; each row spans RoadWidth+1 columns
	RoadWidth = 5

	// RoadHeight is the road length in rows
	RoadHeight = 600

	// RoadStartRow is the bottom bound of the generation walk, giving runway
	// behind the start line
	RoadStartRow = -10

	// SegmentLength is the row count between lateral walk steps; offsets hold
	// constant inside a segment, so curvature is at most one tile per segment
	SegmentLength = 5

	// ObstacleFreeRows keeps the first rows clear so the start is drivable
	ObstacleFreeRows = 30

	// ObstacleChance is the per-row probability of placing a vehicle obstacle
	ObstacleChance = 0.1

	// DecorationChance is the per-row probability of placing a roadside prop
	DecorationChance = 0.4

	// TotalRoadLength is the world-unit length of the run (RoadHeight * TileWorldSize)
	TotalRoadLength = 48000
)

// Tile sprite identifiers, matching the art atlas layout
const (
	TileRoadEdge     = 80
	TileRoadInterior = 81
	TileRoadEdgeAlt  = 82
	TileCurveExitL   = 83
	TileCurveExitR   = 84
	TileCurveEnterL  = 85
	TileCurveEnterR  = 86
	TileFinishCap    = 17
	TileDecoration   = 50
)

// CurveNudge is the world-unit x adjustment applied to curve connector tiles
const CurveNudge = 10
