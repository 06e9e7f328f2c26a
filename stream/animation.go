package stream

// An Animation draws the display at a point in time, given in milliseconds
// since it started.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
