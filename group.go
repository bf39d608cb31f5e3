package bitecs

import "math"

// EntityGroup is a registry of component managers plus an entity allocator
// with a LIFO free-list. It is meant to be embedded in a caller-defined
// struct carrying named manager fields (see Context and Group).
type EntityGroup struct {
	entityMax    uint16
	managers     []manager
	flagManagers []*FlagManager
	freeList     []EntitySubID
}

// Base returns g itself; defined so that any struct embedding EntityGroup
// automatically satisfies the Group interface via method promotion.
func (g *EntityGroup) Base() *EntityGroup {
	return g
}

// EntityMax returns the upper bound on sub-ids ever issued in this group.
func (g *EntityGroup) EntityMax() uint16 {
	return g.entityMax
}

// IsValid reports whether sub has been allocated (it may since have been
// freed; use it together with application-level liveness tracking if that
// distinction matters to the caller).
func (g *EntityGroup) IsValid(sub EntitySubID) bool {
	return uint16(sub) < g.entityMax
}

// AddManager registers a value-carrying component manager. Precondition:
// the group has not yet allocated any entity (invariant G1).
func (g *EntityGroup) AddManager(m manager) {
	if g.entityMax != 0 {
		panic("bitecs: AddManager called after entities have been allocated")
	}
	g.managers = append(g.managers, m)
}

// AddFlagManager registers a flag (bitset-only) manager. Precondition: the
// group has not yet allocated any entity (invariant G1).
func (g *EntityGroup) AddFlagManager(m *FlagManager) {
	if g.entityMax != 0 {
		panic("bitecs: AddFlagManager called after entities have been allocated")
	}
	g.flagManagers = append(g.flagManagers, m)
}

// AddEntity allocates a sub-id: reused from the free-list (LIFO) if
// available, otherwise the next never-used id. The returned id is guaranteed
// to have no component bits set in any registered manager.
func (g *EntityGroup) AddEntity() EntitySubID {
	if n := len(g.freeList); n > 0 {
		sub := g.freeList[n-1]
		g.freeList = g.freeList[:n-1]
		return sub
	}
	if g.entityMax == math.MaxUint16 {
		panic("bitecs: entity limit (65535) exceeded for this group")
	}
	sub := EntitySubID(g.entityMax)
	g.entityMax++
	return sub
}

// RemoveEntity clears sub's bit in every registered manager (running each
// value-carrying manager's full remove pipeline) and pushes sub onto the
// free-list for reuse.
func (g *EntityGroup) RemoveEntity(sub EntitySubID) {
	for _, m := range g.managers {
		m.removeIfSet(sub)
	}
	for _, f := range g.flagManagers {
		f.clearIfSet(sub)
	}
	g.freeList = append(g.freeList, sub)
}

// ReserveEntities hints every registered manager to reserve storage for n
// entities and grows each manager's bitset words to cover them.
func (g *EntityGroup) ReserveEntities(n int) {
	for _, m := range g.managers {
		m.reserve(n)
	}
	for _, f := range g.flagManagers {
		f.reserve(n)
	}
}
