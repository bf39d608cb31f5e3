package bitecs

// Vec3 is a minimal stand-in for the surrounding math library's vector type.
// The real implementation is an external collaborator (see spec §1); this
// placeholder exists only so Bounds/WorldBounds below have something to
// store.
type Vec3 struct {
	X, Y, Z float32
}

// Bounds is a worked example of a custom, multi-array component manager: two
// parallel dense slices (centers, extents) updated in lockstep by the shared
// bitset-derived index, ported from the original source's Bounds.h (the
// non-commented AoS half; the commented-out SIMD/SoA column layout is not
// carried over, per spec §9).
type Bounds struct {
	componentIndex
	centers []Vec3
	extents []Vec3
}

// NewBounds constructs an empty Bounds manager.
func NewBounds() *Bounds {
	return &Bounds{}
}

// insertDefault inserts a zero-valued slot at index in both parallel arrays,
// satisfying Insertable.
func (b *Bounds) insertDefault(index uint16) {
	b.centers = insertAt(b.centers, int(index), Vec3{})
	b.extents = insertAt(b.extents, int(index), Vec3{})
}

// removeIfSet satisfies manager.
func (b *Bounds) removeIfSet(sub EntitySubID) {
	if !b.has(sub) {
		return
	}
	index := b.clearBit(sub)
	b.centers = removeAt(b.centers, int(index))
	b.extents = removeAt(b.extents, int(index))
}

// reserve hints both parallel arrays' backing storage.
func (b *Bounds) reserve(n int) {
	b.access.checkLock()
	if cap(b.centers) < n {
		grown := make([]Vec3, len(b.centers), n)
		copy(grown, b.centers)
		b.centers = grown
	}
	if cap(b.extents) < n {
		grown := make([]Vec3, len(b.extents), n)
		copy(grown, b.extents)
		b.extents = grown
	}
	b.index.reserveWords(n)
}

// BoundsRef is a debug-locked handle into a Bounds manager's parallel
// arrays, mirroring ComponentRef but exposing the two named fields instead
// of a single Get().
type BoundsRef struct {
	m     *Bounds
	index uint16
}

// Center returns a pointer to this entity's center.
func (r BoundsRef) Center() *Vec3 { return &r.m.centers[r.index] }

// Extents returns a pointer to this entity's extents.
func (r BoundsRef) Extents() *Vec3 { return &r.m.extents[r.index] }

// Release gives up this ref's lock on the manager.
func (r BoundsRef) Release() { r.m.access.releaseLock() }

// newBoundsRef acquires a lock and wraps (m, index) into a BoundsRef.
func newBoundsRef(m *Bounds, index uint16) BoundsRef {
	m.access.addLock()
	return BoundsRef{m: m, index: index}
}

// WorldBounds is a second, independent instantiation of the same Bounds
// shape, carried over from the original source: an entity can carry both
// local-space (Bounds) and world-space (WorldBounds) bounding volumes at
// once, because they are registered as two distinct managers.
type WorldBounds struct {
	Bounds
}

// NewWorldBounds constructs an empty WorldBounds manager.
func NewWorldBounds() *WorldBounds {
	return &WorldBounds{}
}
