package bitecs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/natefinch/atomic"
)

// ManagerSnapshot is a point-in-time, read-only export of one manager's
// membership: which sub-ids currently have the component, encoded as a
// Roaring bitmap for compact storage. It carries no payload data — this is a
// diagnostic aid, not a restorable format.
type ManagerSnapshot struct {
	Name       string `json:"name"`
	Count      uint16 `json:"count"`
	MembersB64 string `json:"membersBase64"`
}

// GroupSnapshot exports one group's entity bookkeeping plus every named
// manager's membership.
type GroupSnapshot struct {
	Group       GroupID           `json:"group"`
	EntityMax   uint16            `json:"entityMax"`
	FreeListLen int               `json:"freeListLen"`
	Managers    []ManagerSnapshot `json:"managers"`
}

// Snapshot is the full diagnostic export of a Context: one GroupSnapshot per
// live group. Loading a Snapshot back into a Context is unsupported by
// design (see spec Non-goals on persistence) — it exists to be read by a
// human or a monitoring pipeline, not by this library.
type Snapshot struct {
	Groups []GroupSnapshot `json:"groups"`
}

// namedManager pairs a manager with the name it should be reported under,
// since the manager interface itself carries no name. SnapshotGroup does not
// use it; it takes the same pairing as a name-to-manager map.
type namedManager struct {
	Name string
	M    manager
}

// memberBitmap asserts mgr's concrete membership via the has/EntityMax
// contract every manager in this package already satisfies through
// componentIndex, scanning linearly since no manager exposes its raw bitset
// words outside the package.
func memberBitmap(mgr manager, entityMax uint16) (*roaring.Bitmap, uint16) {
	bm := roaring.New()
	var count uint16
	for sub := uint16(0); sub < entityMax; sub++ {
		if mgr.has(EntitySubID(sub)) {
			bm.Add(uint32(sub))
			count++
		}
	}
	return bm, count
}

// SnapshotGroup builds a GroupSnapshot for g, given the named managers the
// caller wants included (a Context has no registry of names, so the caller
// supplies them explicitly).
func SnapshotGroup(g GroupID, base *EntityGroup, named map[string]manager) (GroupSnapshot, error) {
	gs := GroupSnapshot{
		Group:       g,
		EntityMax:   base.EntityMax(),
		FreeListLen: len(base.freeList),
	}
	for name, m := range named {
		bm, count := memberBitmap(m, base.EntityMax())
		encoded, err := bm.ToBase64()
		if err != nil {
			return GroupSnapshot{}, fmt.Errorf("bitecs: encoding snapshot for manager %q: %w", name, err)
		}
		gs.Managers = append(gs.Managers, ManagerSnapshot{
			Name:       name,
			Count:      count,
			MembersB64: encoded,
		})
	}
	return gs, nil
}

// WriteSnapshot serializes snap as JSON and writes it to path atomically
// (write-to-temp-then-rename), so a concurrent reader never observes a
// partially-written file.
func WriteSnapshot(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("bitecs: marshaling snapshot: %w", err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("bitecs: writing snapshot %q: %w", path, err)
	}
	return nil
}
