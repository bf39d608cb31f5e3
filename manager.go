package bitecs

// componentIndex is the abstract ComponentManager: a membership bitset paired
// with its prefix-sum index and a debug access check. Concrete managers
// (TypedManager, FlagManager excepted, and custom multi-array managers like
// Bounds) embed it to get set/clear/query/reserve bookkeeping for free, and
// layer their own dense-storage hooks on top.
type componentIndex struct {
	index  prefixSumIndex
	access debugAccessCheck
}

// has reports whether sub currently has this component.
func (c *componentIndex) has(sub EntitySubID) bool {
	return c.index.has(sub)
}

// componentCount returns the total number of set bits, i.e. dense payload
// slots.
func (c *componentIndex) componentCount() uint16 {
	return c.index.totalCount()
}

// componentIndexOf returns the dense index for a currently-set bit.
func (c *componentIndex) componentIndexOf(sub EntitySubID) uint16 {
	return c.index.componentIndex(sub)
}

// setBit asserts the access check is clear, sets the membership bit, and
// returns the dense index a payload slot must be inserted at.
func (c *componentIndex) setBit(sub EntitySubID) uint16 {
	c.access.checkLock()
	return c.index.setBit(sub)
}

// clearBit asserts the access check is clear, clears the membership bit, and
// returns the dense index a payload slot must be removed from.
func (c *componentIndex) clearBit(sub EntitySubID) uint16 {
	c.access.checkLock()
	return c.index.clearBit(sub)
}

// manager is the minimal vtable an EntityGroup needs to drive an entity's
// removal and capacity reservations without knowing a manager's concrete
// payload type. Every value-carrying manager (TypedManager, custom
// multi-array managers) implements it.
type manager interface {
	// has reports membership without mutating anything.
	has(sub EntitySubID) bool
	// setBit and clearBit drive the membership bitset and prefix sum
	// directly, for callers (AddCustom/RemoveCustom) that work through the
	// manager interface rather than a concrete manager type.
	setBit(sub EntitySubID) uint16
	clearBit(sub EntitySubID) uint16
	// removeIfSet clears sub's bit and runs the manager's own onRemove hook,
	// if and only if sub currently has the component. A no-op otherwise.
	removeIfSet(sub EntitySubID)
	// reserve hints the manager's dense storage and bitset words to
	// accommodate n entities.
	reserve(n int)
}

// Insertable is implemented by component managers whose dense storage can be
// extended with a zero/default value at a caller-computed index. TypedManager
// and custom multi-array managers (Bounds, WorldBounds) both implement it;
// AddCustom uses it to drive the common add pipeline (set bit, then insert
// a default slot) before the caller fills in real data.
type Insertable interface {
	manager
	insertDefault(index uint16)
}
