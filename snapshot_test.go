package bitecs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSnapshotGroupEncodesMembership(t *testing.T) {
	ctx := newTestContext()
	g0 := ctx.AddGroup()
	e0 := ctx.AddEntity(g0)
	_ = ctx.AddEntity(g0)
	Add(ctx, e0, positionSel, vec3{1, 2, 3}).Release()

	group := ctx.Group(g0)
	gs, err := SnapshotGroup(g0, group.Base(), map[string]manager{
		"Position": group.Position,
	})
	require.NoError(t, err)
	require.Equal(t, uint16(2), gs.EntityMax)
	require.Len(t, gs.Managers, 1)
	require.Equal(t, uint16(1), gs.Managers[0].Count)
	require.NotEmpty(t, gs.Managers[0].MembersB64)
}

func TestWriteSnapshotIsAtomicAndReadable(t *testing.T) {
	snap := Snapshot{Groups: []GroupSnapshot{{Group: 0, EntityMax: 3}}}
	path := filepath.Join(t.TempDir(), "snapshot.json")

	require.NoError(t, WriteSnapshot(path, snap))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(snap, decoded); diff != "" {
		t.Errorf("snapshot round trip mismatch (-want +got):\n%s", diff)
	}
}
