package bitecs

import "testing"

func TestPrefixSumIndexSetClear(t *testing.T) {
	var p prefixSumIndex

	if idx := p.setBit(1); idx != 0 {
		t.Fatalf("expected dense index 0 for first set, got %d", idx)
	}
	if idx := p.setBit(0); idx != 0 {
		t.Fatalf("expected dense index 0 inserting before sub 1, got %d", idx)
	}
	// sub 0 now occupies dense slot 0, sub 1 shifted to dense slot 1.
	if idx := p.componentIndex(1); idx != 1 {
		t.Fatalf("expected sub 1 at dense index 1 after sub 0 inserted before it, got %d", idx)
	}
	if got := p.totalCount(); got != 2 {
		t.Fatalf("expected total count 2, got %d", got)
	}

	if idx := p.clearBit(0); idx != 0 {
		t.Fatalf("expected dense index 0 removed for sub 0, got %d", idx)
	}
	if idx := p.componentIndex(1); idx != 0 {
		t.Fatalf("expected sub 1 shifted to dense index 0 after sub 0 removed, got %d", idx)
	}
	if got := p.totalCount(); got != 1 {
		t.Fatalf("expected total count 1, got %d", got)
	}
}

func TestPrefixSumIndexCrossWordBoundary(t *testing.T) {
	var p prefixSumIndex
	p.setBit(5)
	p.setBit(70) // forces growth into word 1

	if got := p.componentIndex(5); got != 0 {
		t.Errorf("expected sub 5 at dense index 0, got %d", got)
	}
	if got := p.componentIndex(70); got != 1 {
		t.Errorf("expected sub 70 at dense index 1, got %d", got)
	}
	if got := p.totalCount(); got != 2 {
		t.Errorf("expected total count 2, got %d", got)
	}
}

func TestPrefixSumIndexSetAlreadySetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic setting an already-set bit")
		}
	}()
	var p prefixSumIndex
	p.setBit(3)
	p.setBit(3)
}

func TestPrefixSumIndexClearUnsetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic clearing an unset bit")
		}
	}()
	var p prefixSumIndex
	p.clearBit(3)
}

func TestPrefixSumIndexComponentIndexUnsetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic querying an unset bit's index")
		}
	}()
	var p prefixSumIndex
	p.componentIndex(3)
}
