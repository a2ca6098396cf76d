package config

import "vecmath/pkg/vec"

// ScenarioConfig describes one kinematics run. Vectors are written either as
// "x y" text or as {x: .., y: ..} mappings.
type ScenarioConfig struct {
	ID           string    `yaml:"id"`
	Note         string    `yaml:"note"`
	Dt           float64   `yaml:"dt"`
	Steps        int       `yaml:"steps"`
	ArriveRadius float64   `yaml:"arrive_radius"`
	Cell         float64   `yaml:"cell"`
	Bodies       []BodyDef `yaml:"bodies"`
}

type BodyDef struct {
	ID        string              `yaml:"id"`
	Name      string              `yaml:"name"`
	Spawn     vec.Vec2[float64]   `yaml:"spawn"`
	Speed     float64             `yaml:"speed"`
	Waypoints []vec.Vec2[float64] `yaml:"waypoints"`
	Loop      bool                `yaml:"loop"`
	Chase     string              `yaml:"chase"`
	Range     float64             `yaml:"range"`
	Jitter    float64             `yaml:"jitter"`
	Note      string              `yaml:"note"`
}

const (
	DefaultDt           = 0.1
	DefaultSteps        = 600
	DefaultArriveRadius = 0.05
	DefaultCell         = 1.0
)

func (sc *ScenarioConfig) applyDefaults() {
	if sc.Dt == 0 {
		sc.Dt = DefaultDt
	}
	if sc.Steps == 0 {
		sc.Steps = DefaultSteps
	}
	if sc.ArriveRadius == 0 {
		sc.ArriveRadius = DefaultArriveRadius
	}
	if sc.Cell == 0 {
		sc.Cell = DefaultCell
	}
}

// Body returns the definition with the given id.
func (sc *ScenarioConfig) Body(id string) (BodyDef, bool) {
	for _, b := range sc.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return BodyDef{}, false
}
