package stream

import (
	"time"
)

// Controller is an Animation that shows each of its animations in turn,
// cross-fading from one to the next.
type Controller struct {
	animations []Animation
	holdMs     int64
	fadeMs     int64
}

// NewController creates a Controller that holds each animation for hold and
// then fades to the next over fade.
func NewController(hold, fade time.Duration, animations ...Animation) *Controller {
	c := new(Controller)
	c.animations = animations
	c.holdMs = max(hold.Milliseconds(), 1)
	c.fadeMs = max(fade.Milliseconds(), 1)
	return c
}

func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	if len(c.animations) == 0 {
		return NewFrame(0, 0)
	}
	if len(c.animations) == 1 {
		return c.animations[0].CalculateFrame(runtimeMs)
	}

	period := c.holdMs + c.fadeMs
	current := int((runtimeMs / period) % int64(len(c.animations)))
	phase := runtimeMs % period

	f := c.animations[current].CalculateFrame(runtimeMs)
	if phase < c.holdMs {
		return f
	}

	next := c.animations[(current+1)%len(c.animations)].CalculateFrame(runtimeMs)
	transition := float64(phase-c.holdMs) / float64(c.fadeMs)
	return f.InterpolateFrame(next, transition)
}
