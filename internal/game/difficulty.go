package game

// PointsPerLevel is the score needed to advance one level.
const PointsPerLevel = 500

const (
	speedStepPerLevel  = 0.15
	baseSpawnInterval  = 4.0 // Seconds at level 1
	spawnStepPerLevel  = 0.3
	minSpawnInterval   = 1.5
	baseMaxAsteroids   = 8
	asteroidCapCeiling = 15
)

// Difficulty is the set of knobs derived from the current score.
type Difficulty struct {
	Level           int
	SpeedMultiplier float64
	SpawnInterval   float64 // Seconds between edge spawns
	MaxAsteroids    int
}

// Level returns the level for a score. Negative scores count as zero.
func Level(score int) int {
	if score < 0 {
		score = 0
	}
	return score/PointsPerLevel + 1
}

// SpeedMultiplier scales the velocity of newly spawned asteroids.
func SpeedMultiplier(level int) float64 {
	return 1 + float64(level-1)*speedStepPerLevel
}

// SpawnInterval returns the seconds between timed spawns, never below 1.5.
func SpawnInterval(level int) float64 {
	return max(minSpawnInterval, baseSpawnInterval-float64(level-1)*spawnStepPerLevel)
}

// MaxAsteroids caps how many asteroids may exist before timed spawns pause.
func MaxAsteroids(level int) int {
	return min(asteroidCapCeiling, baseMaxAsteroids+(level-1))
}

// DifficultyFor bundles every difficulty knob for a score.
func DifficultyFor(score int) Difficulty {
	l := Level(score)
	return Difficulty{
		Level:           l,
		SpeedMultiplier: SpeedMultiplier(l),
		SpawnInterval:   SpawnInterval(l),
		MaxAsteroids:    MaxAsteroids(l),
	}
}
