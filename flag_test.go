package bitecs

import "testing"

func TestFlagManagerSetHas(t *testing.T) {
	f := NewFlagManager()

	if f.Has(4) {
		t.Fatal("expected flag unset initially")
	}
	f.Set(4, true)
	if !f.Has(4) {
		t.Fatal("expected flag set after Set(true)")
	}
	f.Set(4, false)
	if f.Has(4) {
		t.Fatal("expected flag unset after Set(false)")
	}
}

func TestFlagManagerClearIfSet(t *testing.T) {
	f := NewFlagManager()
	f.Set(2, true)
	f.clearIfSet(2)
	if f.Has(2) {
		t.Fatal("expected flag cleared")
	}
	// no-op on an already-clear bit
	f.clearIfSet(2)
	if f.Has(2) {
		t.Fatal("expected flag to remain clear")
	}
}
