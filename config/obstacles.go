package config

// ObstacleKind is the closed set of obstacle types. Weighted spawn
// selection walks the kinds in this order.
type ObstacleKind int

const (
	ObstacleTree ObstacleKind = iota
	ObstacleSnowman
	ObstacleRock
	ObstacleArrowLeft
	ObstacleArrowRight
	ObstacleHeap
	ObstacleBarrel
	ObstacleKindCount
)

// SpawnPolicy decides where along x a new obstacle appears.
type SpawnPolicy int

const (
	SpawnAnywhere SpawnPolicy = iota
	SpawnLeft
	SpawnRight
)

// ObstacleType holds the immutable per-kind values.
type ObstacleType struct {
	Name      string
	Width     float64
	Height    float64
	HitRadius float64
	HitOffset float64 // Vertical offset of the hit circle from the sprite centre
	Jumpable  bool
	Policy    SpawnPolicy
	Weight    float64
}

// ObstacleConfig holds the obstacle type table.
type ObstacleConfig struct {
	Types   [ObstacleKindCount]ObstacleType
	Default ObstacleKind // Used when weighted selection falls through
}

var Obstacles ObstacleConfig

func init() {
	Obstacles = ObstacleConfig{
		Default: ObstacleTree,
		Types: [ObstacleKindCount]ObstacleType{
			ObstacleTree: {
				Name: "tree", Width: 64, Height: 96,
				HitRadius: 16, HitOffset: 24,
				Policy: SpawnAnywhere, Weight: 40,
			},
			ObstacleSnowman: {
				Name: "snowman", Width: 48, Height: 64,
				HitRadius: 14, HitOffset: 12,
				Policy: SpawnAnywhere, Weight: 12,
			},
			ObstacleRock: {
				Name: "rock", Width: 40, Height: 28,
				HitRadius: 14, HitOffset: 4, Jumpable: true,
				Policy: SpawnAnywhere, Weight: 16,
			},
			ObstacleArrowLeft: {
				Name: "arrow-left", Width: 32, Height: 48,
				HitRadius: 8, HitOffset: 14,
				Policy: SpawnLeft, Weight: 6,
			},
			ObstacleArrowRight: {
				Name: "arrow-right", Width: 32, Height: 48,
				HitRadius: 8, HitOffset: 14,
				Policy: SpawnRight, Weight: 6,
			},
			ObstacleHeap: {
				Name: "heap", Width: 56, Height: 24,
				HitRadius: 18, HitOffset: 2, Jumpable: true,
				Policy: SpawnAnywhere, Weight: 14,
			},
			// Weight 0: never spawns.
			ObstacleBarrel: {
				Name: "barrel", Width: 40, Height: 48,
				HitRadius: 16, HitOffset: 8,
				Policy: SpawnAnywhere, Weight: 0,
			},
		},
	}
}

// Type returns the per-kind values, falling back to the default kind.
func (k ObstacleKind) Type() ObstacleType {
	if k < 0 || k >= ObstacleKindCount {
		return Obstacles.Types[Obstacles.Default]
	}
	return Obstacles.Types[k]
}

func (k ObstacleKind) String() string {
	return k.Type().Name
}
