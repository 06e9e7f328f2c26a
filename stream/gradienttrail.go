package stream

import (
	"math"
)

// A GradientTrail is an Animation that sweeps a gradient diagonally across
// the display. It is shown while no algorithm is playing.
type GradientTrail struct {
	width       int
	height      int
	gradient    GradientTable
	trailLength float64
	speed       float64
	luminance   float64
}

// NewGradientTrail creates a trail that moves speed pixels per second.
func NewGradientTrail(width, height int, gradient GradientTable, trailLength int, speed float64) *GradientTrail {
	g := new(GradientTrail)
	g.width = width
	g.height = height
	g.gradient = gradient
	g.trailLength = math.Max(float64(trailLength), 1)
	g.speed = speed
	g.luminance = 0.3

	return g
}

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(g.width, g.height)
	saturation := 1.0
	offset := g.speed * float64(runtimeMs) / 1000.0

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			d := float64(x+y) - offset
			t := math.Mod(math.Mod(d, g.trailLength)+g.trailLength, g.trailLength) / g.trailLength
			f.Set(x, y, g.gradient.GetColor(t, saturation, g.luminance))
		}
	}

	return f
}
