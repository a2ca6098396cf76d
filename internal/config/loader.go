package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadAll reads scenario.yaml from dir.
func LoadAll(dir string) (*ScenarioConfig, error) {
	return LoadScenario(filepath.Join(dir, "scenario.yaml"))
}

func LoadScenario(path string) (*ScenarioConfig, error) {
	var sc ScenarioConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &sc, nil
}

func (sc *ScenarioConfig) Validate() error {
	if sc.Dt <= 0 {
		return fmt.Errorf("%w: dt %v must be positive", ErrInvalidScenario, sc.Dt)
	}
	if sc.Steps <= 0 {
		return fmt.Errorf("%w: steps %d must be positive", ErrInvalidScenario, sc.Steps)
	}
	if sc.Cell <= 0 {
		return fmt.Errorf("%w: cell %v must be positive", ErrInvalidScenario, sc.Cell)
	}
	if len(sc.Bodies) == 0 {
		return fmt.Errorf("%w: no bodies", ErrInvalidScenario)
	}
	seen := map[string]bool{}
	for i, b := range sc.Bodies {
		if b.ID == "" {
			return fmt.Errorf("%w: body #%d has no id", ErrInvalidScenario, i)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: duplicate body %q", ErrInvalidScenario, b.ID)
		}
		seen[b.ID] = true
		if b.Speed < 0 || b.Range < 0 || b.Jitter < 0 {
			return fmt.Errorf("%w: body %q has a negative speed, range or jitter", ErrInvalidScenario, b.ID)
		}
		if b.Chase != "" && len(b.Waypoints) > 0 {
			return fmt.Errorf("%w: body %q both chases and follows waypoints", ErrInvalidScenario, b.ID)
		}
	}
	for _, b := range sc.Bodies {
		if b.Chase == "" {
			continue
		}
		if b.Chase == b.ID || !seen[b.Chase] {
			return fmt.Errorf("%w: body %q chases unknown body %q", ErrInvalidScenario, b.ID, b.Chase)
		}
	}
	return nil
}
