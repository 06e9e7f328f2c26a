package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/algoviz/pathfinding"
	"github.com/matt-g-everett/algoviz/sorting"
)

var (
	ColourDefault    = mustHex("#3b82f6")
	ColourComparing  = mustHex("#f59e0b")
	ColourSorted     = mustHex("#22c55e")
	ColourOutOfPlace = mustHex("#ef4444")

	ColourEmpty   = mustHex("#111827")
	ColourWall    = mustHex("#6b7280")
	ColourWeight  = mustHex("#7e22ce")
	ColourVisited = mustHex("#1e40af")
	ColourPath    = mustHex("#4ade80")
	ColourStart   = mustHex("#f59e0b")
	ColourEnd     = mustHex("#ef4444")

	// Freshly visited cells flash towards this.
	ColourPulse = mustHex("#e0f2fe")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func elementColour(s sorting.State) colorful.Color {
	switch s {
	case sorting.StateComparing:
		return ColourComparing
	case sorting.StateSorted:
		return ColourSorted
	case sorting.StateOutOfPlace:
		return ColourOutOfPlace
	default:
		return ColourDefault
	}
}

func nodeColour(t pathfinding.NodeType) colorful.Color {
	switch t {
	case pathfinding.TypeWall:
		return ColourWall
	case pathfinding.TypeWeight:
		return ColourWeight
	case pathfinding.TypeVisited:
		return ColourVisited
	case pathfinding.TypePath:
		return ColourPath
	case pathfinding.TypeStart:
		return ColourStart
	case pathfinding.TypeEnd:
		return ColourEnd
	default:
		return ColourEmpty
	}
}

func terminalColour(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
