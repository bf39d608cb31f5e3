package bitecs

// TypedManager is the ComponentManager specialisation for a single
// value-carrying component type T: its dense payload is one contiguous
// slice of T, kept in the same order as the set bits of its bitset.
type TypedManager[T any] struct {
	componentIndex
	data []T
}

// NewTypedManager constructs an empty manager for component type T.
func NewTypedManager[T any]() *TypedManager[T] {
	return &TypedManager[T]{}
}

// insertDefault inserts the zero value of T at index, satisfying Insertable.
func (m *TypedManager[T]) insertDefault(index uint16) {
	var zero T
	m.data = insertAt(m.data, int(index), zero)
}

// insertValue inserts v at index.
func (m *TypedManager[T]) insertValue(index uint16, v T) {
	m.data = insertAt(m.data, int(index), v)
}

// removeIfSet satisfies manager: if sub has the component, removes it.
func (m *TypedManager[T]) removeIfSet(sub EntitySubID) {
	if !m.has(sub) {
		return
	}
	index := m.clearBit(sub)
	m.data = removeAt(m.data, int(index))
}

// Len returns the number of dense payload slots currently in use, i.e. the
// component's total set-bit count.
func (m *TypedManager[T]) Len() uint16 {
	return m.componentCount()
}

// Raw returns the manager's dense payload slice directly, for callers that
// want to iterate every instance of T in storage order without per-entity
// lookups. The slice is invalidated by any subsequent add/remove/reserve on
// this manager.
func (m *TypedManager[T]) Raw() []T {
	return m.data
}

// reserve hints the dense slice's backing array to avoid reallocation up to
// n entries, asserting no outstanding borrows.
func (m *TypedManager[T]) reserve(n int) {
	m.access.checkLock()
	if cap(m.data) < n {
		grown := make([]T, len(m.data), n)
		copy(grown, m.data)
		m.data = grown
	}
	m.index.reserveWords(n)
}

// ComponentRef is a debug-locked handle to one entity's component in a
// TypedManager's dense array. Acquired by Context.Add/Context.Get; the lock
// must be released explicitly via Release when the caller is done, since Go
// has no destructors to do this automatically on scope exit.
type ComponentRef[T any] struct {
	m     *TypedManager[T]
	index uint16
}

// Get returns a pointer to the referenced component's current slot. The
// pointer is invalidated by any subsequent add/remove/reserve on the same
// manager.
func (r ComponentRef[T]) Get() *T {
	return &r.m.data[r.index]
}

// Release gives up this ref's lock on the manager. Calling it more than once
// is a precondition violation.
func (r ComponentRef[T]) Release() {
	r.m.access.releaseLock()
}

// newRef acquires a lock and wraps (m, index) into a ComponentRef.
func newRef[T any](m *TypedManager[T], index uint16) ComponentRef[T] {
	m.access.addLock()
	return ComponentRef[T]{m: m, index: index}
}
