// Package demo defines a small, representative group type shared by the
// cmd/ front ends (profiling harnesses, CLI demo, interactive shell) so each
// of them exercises the same realistic mix of managers instead of rolling
// its own throwaway component set.
package demo

import "github.com/northfield-games/bitecs"

// Position and Velocity are worked-example value components, a typical
// small payload shape for profiling and demo workloads.
type Position struct {
	X, Y, Z float32
}

type Velocity struct {
	X, Y, Z float32
}

// Group is the caller-defined group type: it embeds EntityGroup for
// Base()/AddEntity()/RemoveEntity(), and names one manager per component
// plus a flag and a custom multi-array manager, covering every manager kind
// the library supports.
type Group struct {
	bitecs.EntityGroup
	Positions *bitecs.TypedManager[Position]
	Velocity  *bitecs.TypedManager[Velocity]
	Visible   *bitecs.FlagManager
	Bounds    *bitecs.Bounds
}

// NewGroup constructs and registers every manager, ready to pass to
// bitecs.NewContext.
func NewGroup() *Group {
	g := &Group{
		Positions: bitecs.NewTypedManager[Position](),
		Velocity:  bitecs.NewTypedManager[Velocity](),
		Visible:   bitecs.NewFlagManager(),
		Bounds:    bitecs.NewBounds(),
	}
	g.AddManager(g.Positions)
	g.AddManager(g.Velocity)
	g.AddManager(g.Bounds)
	g.AddFlagManager(g.Visible)
	return g
}

// NewContext builds a *bitecs.Context[*Group] wired to NewGroup.
func NewContext() *bitecs.Context[*Group] {
	return bitecs.NewContext(NewGroup)
}
