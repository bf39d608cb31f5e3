package bitecs

import "testing"

func TestEntityGroupAddEntityReusesFreeList(t *testing.T) {
	g := &EntityGroup{}
	e0 := g.AddEntity()
	e1 := g.AddEntity()
	if e0 != 0 || e1 != 1 {
		t.Fatalf("expected sub ids 0,1, got %d,%d", e0, e1)
	}

	g.RemoveEntity(e0)
	reused := g.AddEntity()
	if reused != e0 {
		t.Fatalf("expected LIFO reuse of freed sub id %d, got %d", e0, reused)
	}
}

func TestEntityGroupAddManagerAfterEntityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering a manager after an entity was allocated")
		}
	}()
	g := &EntityGroup{}
	g.AddEntity()
	g.AddManager(NewTypedManager[vec3]())
}

func TestEntityGroupRemoveEntityClearsEveryManager(t *testing.T) {
	g := &EntityGroup{}
	positions := NewTypedManager[vec3]()
	visible := NewFlagManager()
	g.AddManager(positions)
	g.AddFlagManager(visible)

	e := g.AddEntity()
	idx := positions.setBit(e)
	positions.insertValue(idx, vec3{1, 2, 3})
	visible.Set(e, true)

	g.RemoveEntity(e)

	if positions.has(e) {
		t.Error("expected Position bit cleared by RemoveEntity")
	}
	if visible.Has(e) {
		t.Error("expected Visible flag cleared by RemoveEntity")
	}
	if len(positions.data) != 0 {
		t.Errorf("expected empty dense array, got %+v", positions.data)
	}
}
