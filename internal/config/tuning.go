package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// TuningConfig holds the externally supplied planning-heuristic
// parameters. Fields are pointers so a partial JSON file overrides only
// what it names; unset fields fall back to defaults at ApplyDefaults
// time.
type TuningConfig struct {
	// ClearanceThresholdMeters: voxels with obstacle clearance at or
	// below this value are classified as walls. Usually the planning
	// link sphere radius.
	ClearanceThresholdMeters *float64 `json:"clearance_threshold_meters,omitempty"`
	// CostPerCell converts grid distance to search cost units.
	CostPerCell *int `json:"cost_per_cell,omitempty"`
	// Connectivity is the wavefront adjacency scheme: 6, 18 or 26.
	Connectivity *int `json:"connectivity,omitempty"`
}

// Default tuning values. The 6-connected default keeps the heuristic
// admissible and the frontier small; see bfs3d.Conn6.
const (
	DefaultClearanceThresholdMeters = 0.02
	DefaultCostPerCell              = 100
	DefaultConnectivity             = 6
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// DefaultTuningConfig returns a fully populated config.
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		ClearanceThresholdMeters: ptrFloat64(DefaultClearanceThresholdMeters),
		CostPerCell:              ptrInt(DefaultCostPerCell),
		Connectivity:             ptrInt(DefaultConnectivity),
	}
}

// LoadTuningConfig reads a JSON tuning file. A missing file is not an
// error: it returns an empty config so defaults apply.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &TuningConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tuning config: %w", err)
	}
	var c TuningConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse tuning config %s: %w", path, err)
	}
	return &c, nil
}

// ApplyDefaults fills every unset field from the defaults.
func (c *TuningConfig) ApplyDefaults() {
	if c.ClearanceThresholdMeters == nil {
		c.ClearanceThresholdMeters = ptrFloat64(DefaultClearanceThresholdMeters)
	}
	if c.CostPerCell == nil {
		c.CostPerCell = ptrInt(DefaultCostPerCell)
	}
	if c.Connectivity == nil {
		c.Connectivity = ptrInt(DefaultConnectivity)
	}
}

// Validate reports the first invalid field. Call after ApplyDefaults.
func (c *TuningConfig) Validate() error {
	if c.ClearanceThresholdMeters == nil || *c.ClearanceThresholdMeters < 0 {
		return fmt.Errorf("clearance_threshold_meters must be non-negative")
	}
	if c.CostPerCell == nil || *c.CostPerCell <= 0 {
		return fmt.Errorf("cost_per_cell must be positive")
	}
	if c.Connectivity == nil {
		return fmt.Errorf("connectivity must be set")
	}
	switch *c.Connectivity {
	case 6, 18, 26:
	default:
		return fmt.Errorf("connectivity must be 6, 18 or 26, got %d", *c.Connectivity)
	}
	return nil
}
