package rules

// Speed progression, in ticks per second.
const (
	InitialSpeed       = 10
	MaxSpeed           = 20
	PointsPerSpeedStep = 5
)

// SpeedForScore returns the tick rate for a score: one step faster every
// PointsPerSpeedStep points, capped at MaxSpeed.
func SpeedForScore(score int) int {
	speed := InitialSpeed + score/PointsPerSpeedStep
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
