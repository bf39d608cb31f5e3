package bitecs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/northfield-games/bitecs"
)

func TestLoadConfigParsesJSONC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.jsonc")
	contents := `{
		// trailing comments and commas are tolerated
		"initialGroups": 4,
		"initialEntitiesPerGroup": 1024,
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := bitecs.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.InitialGroups)
	require.Equal(t, 1024, cfg.InitialEntitiesPerGroup)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := bitecs.LoadConfig(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)
}

func TestLoadConfigInvalidJSONC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.jsonc")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := bitecs.LoadConfig(path)
	require.Error(t, err)
}

func TestDefaultConfigIsZeroReservation(t *testing.T) {
	require.Equal(t, bitecs.Config{}, bitecs.DefaultConfig())
}
