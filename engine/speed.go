package engine

import (
	"math"
	"time"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 50

	SlowestDelay = 1000 * time.Millisecond
	FastestDelay = 10 * time.Millisecond
)

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// Delay maps a speed to the pause between two frames. The curve is
// exponential so every step of the slider changes the delay by the same
// ratio: speed 1 waits SlowestDelay, speed 100 waits FastestDelay.
func Delay(speed int) time.Duration {
	t := float64(ClampSpeed(speed)-MinSpeed) / float64(MaxSpeed-MinSpeed)
	ratio := float64(FastestDelay) / float64(SlowestDelay)
	d := float64(SlowestDelay) * math.Pow(ratio, t)
	return time.Duration(d).Round(time.Microsecond)
}
