package board

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matt-g-everett/algoviz/sorting"
	"github.com/matt-g-everett/algoviz/stream"
	"github.com/matt-g-everett/algoviz/util"
)

const (
	MinRandomValue = 10
	MaxRandomValue = 99

	barWidth = 40
)

// Array is the displayed state of a sorting run. It is not safe for
// concurrent use.
type Array struct {
	elements []sorting.Element
}

// NewArray creates an array showing values in the default state.
func NewArray(values []int) *Array {
	a := new(Array)
	a.Load(values)
	return a
}

// Load replaces the array with values, all in the default state.
func (a *Array) Load(values []int) {
	a.elements = make([]sorting.Element, len(values))
	for i, v := range values {
		a.elements[i] = sorting.Element{Value: v, State: sorting.StateDefault}
	}
}

// Randomize loads size values drawn from [MinRandomValue, MaxRandomValue].
func (a *Array) Randomize(rng *rand.Rand, size int) {
	a.Load(util.RandomValues(rng, size, MinRandomValue, MaxRandomValue))
}

// Values returns the values currently shown.
func (a *Array) Values() []int {
	out := make([]int, len(a.elements))
	for i, e := range a.elements {
		out[i] = e.Value
	}
	return out
}

// Elements returns a copy of the elements currently shown.
func (a *Array) Elements() []sorting.Element {
	out := make([]sorting.Element, len(a.elements))
	copy(out, a.elements)
	return out
}

// Apply shows frame in place of whatever was shown before.
func (a *Array) Apply(frame sorting.Frame, index int) {
	a.elements = make([]sorting.Element, len(frame.Elements))
	copy(a.elements, frame.Elements)
}

func (a *Array) maxValue() int {
	m := 1
	for _, e := range a.elements {
		if e.Value > m {
			m = e.Value
		}
	}
	return m
}

// Render draws the array as vertical bars scaled to fill height.
func (a *Array) Render(width, height int) *stream.Frame {
	f := stream.NewFrame(width, height)
	f.Fill(ColourEmpty)
	if len(a.elements) == 0 || width <= 0 {
		return f
	}

	maxValue := float64(a.maxValue())
	for x := 0; x < width; x++ {
		e := a.elements[x*len(a.elements)/width]
		bar := int(math.Round(float64(e.Value) / maxValue * float64(height)))
		c := elementColour(e.State)
		for y := height - 1; y >= height-bar; y-- {
			f.Set(x, y, c)
		}
	}

	return f
}

// View draws the array as horizontal bars for a terminal.
func (a *Array) View() string {
	if len(a.elements) == 0 {
		return "No array to visualize"
	}

	maxValue := float64(a.maxValue())
	lines := make([]string, len(a.elements))
	for i, e := range a.elements {
		n := int(math.Max(1, math.Round(float64(e.Value)/maxValue*barWidth)))
		style := lipgloss.NewStyle().Foreground(terminalColour(elementColour(e.State)))
		lines[i] = fmt.Sprintf("%s %d", style.Render(strings.Repeat("█", n)), e.Value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
