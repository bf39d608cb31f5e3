package bitecs

// Group is satisfied by any caller-defined group type that embeds
// EntityGroup: method promotion gives Base() for free, so in ordinary use no
// manual implementation is required.
type Group interface {
	Base() *EntityGroup
}

// Context owns a sparse slice of groups of caller-defined type E (typically
// a struct embedding EntityGroup plus named *TypedManager[T]/*FlagManager/
// custom-manager fields) and is the front door for every add/remove/query
// operation. A nil slot is a vacant, removed group that AddGroup may refill.
type Context[E Group] struct {
	groups   []E
	newGroup func() E
}

// NewContext constructs a Context whose groups are produced by newGroup,
// which must return a fully-wired E with every manager field constructed and
// registered via AddManager/AddFlagManager before any entity is allocated.
func NewContext[E Group](newGroup func() E) *Context[E] {
	return &Context[E]{newGroup: newGroup}
}

// IsValidGroup reports whether g indexes a live (non-vacant) group.
func (c *Context[E]) IsValidGroup(g GroupID) bool {
	if int(g) >= len(c.groups) {
		return false
	}
	return !isZeroGroup(c.groups[g])
}

// IsValidEntity reports whether e's group is live and e's sub-id has been
// allocated within it.
func (c *Context[E]) IsValidEntity(e EntityID) bool {
	if !c.IsValidGroup(e.Group) {
		return false
	}
	return c.groups[e.Group].Base().IsValid(e.Sub)
}

// isZeroGroup reports whether g is the zero value of E, used to detect
// vacant slots left by RemoveGroup. E is constrained to Group (an
// interface), so its zero value is nil for pointer-typed E, which is the
// expected instantiation.
func isZeroGroup[E Group](g E) bool {
	var zero E
	return any(g) == any(zero)
}

// AddGroup fills the first vacant slot if any, else appends, constructing a
// fresh E via the factory passed to NewContext.
func (c *Context[E]) AddGroup() GroupID {
	fresh := c.newGroup()
	for i := range c.groups {
		if isZeroGroup(c.groups[i]) {
			c.groups[i] = fresh
			return GroupID(i)
		}
	}
	if len(c.groups) >= 0xFFFF {
		panic("bitecs: group limit (65535) exceeded")
	}
	c.groups = append(c.groups, fresh)
	return GroupID(len(c.groups) - 1)
}

// RemoveGroup drops the group at g; the slot becomes vacant and may be
// refilled by a later AddGroup.
func (c *Context[E]) RemoveGroup(g GroupID) {
	assertValidGroup(c, g)
	var zero E
	c.groups[g] = zero
}

// Group returns the caller-defined group value at g, for use in selector
// closures passed to Add/Get/Remove/HasFlag/SetFlag.
func (c *Context[E]) Group(g GroupID) E {
	assertValidGroup(c, g)
	return c.groups[g]
}

// AddEntity allocates a new entity within group g.
func (c *Context[E]) AddEntity(g GroupID) EntityID {
	assertValidGroup(c, g)
	sub := c.groups[g].Base().AddEntity()
	return EntityID{Group: g, Sub: sub}
}

// RemoveEntity frees e, clearing every component bit it held first.
func (c *Context[E]) RemoveEntity(e EntityID) {
	assertValidEntity(c, e)
	c.groups[e.Group].Base().RemoveEntity(e.Sub)
}

// ReserveGroups hints the groups slice's backing array to avoid reallocation
// up to n groups.
func (c *Context[E]) ReserveGroups(n int) {
	if cap(c.groups) < n {
		grown := make([]E, len(c.groups), n)
		copy(grown, c.groups)
		c.groups = grown
	}
}

// ReserveEntities hints group g's managers to reserve storage for n
// entities.
func (c *Context[E]) ReserveEntities(g GroupID, n int) {
	assertValidGroup(c, g)
	c.groups[g].Base().ReserveEntities(n)
}

func assertValidGroup[E Group](c *Context[E], g GroupID) {
	if !c.IsValidGroup(g) {
		panic("bitecs: invalid GroupID")
	}
}

func assertValidEntity[E Group](c *Context[E], e EntityID) {
	if !c.IsValidEntity(e) {
		panic("bitecs: invalid EntityID")
	}
}

// Has reports whether e currently has the component managed by sel(group).
func Has[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T]) bool {
	assertValidEntity(c, e)
	m := sel(c.groups[e.Group])
	return m.has(e.Sub)
}

// Get returns a debug-locked handle to e's component in the manager picked
// out by sel. Precondition: Has(c, e, sel).
func Get[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T]) ComponentRef[T] {
	assertValidEntity(c, e)
	m := sel(c.groups[e.Group])
	index := m.componentIndexOf(e.Sub)
	return newRef(m, index)
}

// Add sets e's bit in the manager picked out by sel and inserts value at the
// new dense index. Precondition: valid entity, component not already
// present, and no outstanding ComponentRef borrows on this manager.
func Add[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T], value T) ComponentRef[T] {
	assertValidEntity(c, e)
	m := sel(c.groups[e.Group])
	index := m.setBit(e.Sub)
	m.insertValue(index, value)
	return newRef(m, index)
}

// Remove clears e's bit in the manager picked out by sel and erases its
// payload slot. Precondition: Has(c, e, sel), and no outstanding
// ComponentRef borrows on this manager.
func Remove[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T]) {
	assertValidEntity(c, e)
	m := sel(c.groups[e.Group])
	index := m.clearBit(e.Sub)
	m.data = removeAt(m.data, int(index))
}

// Reserve hints the manager picked out by sel to reserve storage for n
// entities in group g.
func Reserve[E Group, T any](c *Context[E], g GroupID, sel func(E) *TypedManager[T], n int) {
	assertValidGroup(c, g)
	sel(c.groups[g]).reserve(n)
}

// AddCustom is the Insertable-driven counterpart of Add, for managers whose
// on-add hook has no value parameter (Bounds, WorldBounds): it sets the bit
// and inserts a default-valued slot, returning the dense index the caller
// can use to build its own typed ref (see BoundsRef).
func AddCustom[E Group, M Insertable](c *Context[E], e EntityID, sel func(E) M) uint16 {
	assertValidEntity(c, e)
	m := sel(c.groups[e.Group])
	index := m.setBit(e.Sub)
	m.insertDefault(index)
	return index
}

// RemoveCustom mirrors Remove for Insertable managers.
func RemoveCustom[E Group, M Insertable](c *Context[E], e EntityID, sel func(E) M) {
	assertValidEntity(c, e)
	m := sel(c.groups[e.Group])
	m.removeIfSet(e.Sub)
}

// HasFlag reports whether e has the flag managed by sel(group) set.
func HasFlag[E Group](c *Context[E], e EntityID, sel func(E) *FlagManager) bool {
	assertValidEntity(c, e)
	return sel(c.groups[e.Group]).Has(e.Sub)
}

// SetFlag sets or clears the flag managed by sel(group).
func SetFlag[E Group](c *Context[E], e EntityID, sel func(E) *FlagManager, value bool) {
	assertValidEntity(c, e)
	sel(c.groups[e.Group]).Set(e.Sub, value)
}
