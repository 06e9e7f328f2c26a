package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/algoviz/util"
)

const twinkleStepMs = 33

type twinkleParticle struct {
	x, y   int
	lut    []float64
	offset int
}

// A Twinkle is an Animation that fades random particles in and out.
type Twinkle struct {
	width      int
	height     int
	foreColour colorful.Color
	backColour colorful.Color
	particles  []twinkleParticle
}

// NewTwinkle scatters numParticles particles over a width x height display.
func NewTwinkle(width, height, numParticles int, foreColour, backColour colorful.Color, rng *rand.Rand) *Twinkle {
	t := new(Twinkle)
	t.width = width
	t.height = height
	t.foreColour = foreColour
	t.backColour = backColour

	if width <= 0 || height <= 0 {
		return t
	}
	for i := 0; i < numParticles; i++ {
		lut := util.GenerateLutMemoized((rng.Intn(18) + 6) * 2)
		t.particles = append(t.particles, twinkleParticle{
			x:      rng.Intn(width),
			y:      rng.Intn(height),
			lut:    lut,
			offset: rng.Intn(len(lut)),
		})
	}

	return t
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(t.width, t.height)
	f.Fill(t.backColour)

	step := int(runtimeMs / twinkleStepMs)
	for _, p := range t.particles {
		v := p.lut[(step+p.offset)%len(p.lut)]
		f.Set(p.x, p.y, t.backColour.BlendRgb(t.foreColour, v))
	}

	return f
}
