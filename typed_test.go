package bitecs

import "testing"

type vec3 struct {
	X, Y, Z float32
}

func TestTypedManagerInsertRemove(t *testing.T) {
	m := NewTypedManager[vec3]()

	idx := m.setBit(1)
	m.insertValue(idx, vec3{1, 2, 3})
	if got := m.data[0]; got != (vec3{1, 2, 3}) {
		t.Fatalf("expected (1,2,3) at dense slot 0, got %+v", got)
	}

	idx = m.setBit(0)
	m.insertValue(idx, vec3{9, 9, 9})
	if m.data[0] != (vec3{9, 9, 9}) || m.data[1] != (vec3{1, 2, 3}) {
		t.Fatalf("unexpected dense order: %+v", m.data)
	}
	if got := m.componentIndexOf(0); got != 0 {
		t.Errorf("expected sub 0 at index 0, got %d", got)
	}
	if got := m.componentIndexOf(1); got != 1 {
		t.Errorf("expected sub 1 at index 1, got %d", got)
	}

	removedIdx := m.clearBit(0)
	m.data = removeAt(m.data, int(removedIdx))
	if len(m.data) != 1 || m.data[0] != (vec3{1, 2, 3}) {
		t.Fatalf("expected single remaining slot (1,2,3), got %+v", m.data)
	}
	if got := m.componentIndexOf(1); got != 0 {
		t.Errorf("expected sub 1 shifted to index 0, got %d", got)
	}
}

func TestTypedManagerComponentRefRoundTrip(t *testing.T) {
	m := NewTypedManager[vec3]()
	idx := m.setBit(0)
	m.insertValue(idx, vec3{1, 1, 1})

	ref := newRef(m, idx)
	got := *ref.Get()
	ref.Release()

	if got != (vec3{1, 1, 1}) {
		t.Fatalf("expected (1,1,1), got %+v", got)
	}
}

func TestTypedManagerLenAndRaw(t *testing.T) {
	m := NewTypedManager[vec3]()
	m.insertValue(m.setBit(0), vec3{1, 0, 0})
	m.insertValue(m.setBit(1), vec3{2, 0, 0})

	if got := m.Len(); got != 2 {
		t.Errorf("expected Len()==2, got %d", got)
	}
	raw := m.Raw()
	if len(raw) != 2 || raw[0].X != 1 || raw[1].X != 2 {
		t.Errorf("unexpected Raw() contents: %+v", raw)
	}
}
