package bitecs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Config describes default initial capacities for a Context: how many
// groups to reserve up front, and how many entities to reserve per group's
// managers. Nothing in this package applies a Config automatically; the
// caller passes its values to the Reserve* methods. Zero values mean "grow
// on demand, no up-front reservation" and are always valid.
type Config struct {
	// InitialGroups is a group count for Context.ReserveGroups.
	InitialGroups int `json:"initialGroups"`
	// InitialEntitiesPerGroup is a per-group entity count for
	// Context.ReserveEntities.
	InitialEntitiesPerGroup int `json:"initialEntitiesPerGroup"`
}

// DefaultConfig returns the zero-reservation Config: every capacity grows on
// demand.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads a hujson (JSON-with-comments, trailing commas allowed)
// document from path and decodes it into a Config. No environment variables
// are consulted; the path is always explicit.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bitecs: reading config %q: %w", path, err)
	}
	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, fmt.Errorf("bitecs: config %q is not valid JSONC: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("bitecs: decoding config %q: %w", path, err)
	}
	return cfg, nil
}
