package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a scripted fight: a set of combatants and the
// effects cast at fixed points on the simulation clock.
type Scenario struct {
	Duration float64          `yaml:"duration"` // simulated seconds
	Entities []ScenarioEntity `yaml:"entities"`
	Casts    []ScenarioCast   `yaml:"casts"`
}

// ScenarioEntity declares one combatant.
type ScenarioEntity struct {
	Name       string   `yaml:"name"`
	Categories []string `yaml:"categories"`
	Position   Point    `yaml:"position"`
	Facing     Point    `yaml:"facing"`
	MaxHP      float64  `yaml:"max_hp"`
}

// ScenarioCast triggers one effect once the clock reaches At.
type ScenarioCast struct {
	At      float64        `yaml:"at"` // simulation time, seconds
	Source  string         `yaml:"source"`
	Primary string         `yaml:"primary"`
	Tags    []string       `yaml:"tags"`
	Params  map[string]any `yaml:"params"`
}

// Point is a 2D coordinate in scenario files.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultScenario returns a small demonstration fight so the simulator
// runs usefully with no files present.
func DefaultScenario() Scenario {
	return Scenario{
		Duration: 6,
		Entities: []ScenarioEntity{
			{Name: "hero", Categories: []string{"player"}, Position: Point{X: 0, Y: 0}, Facing: Point{X: 1, Y: 0}, MaxHP: 120},
			{Name: "goblin", Categories: []string{"enemy"}, Position: Point{X: 3, Y: 0}, MaxHP: 80},
			{Name: "goblin_shaman", Categories: []string{"enemy"}, Position: Point{X: 6, Y: 0}, MaxHP: 60},
			{Name: "bone_walker", Categories: []string{"enemy", "undead"}, Position: Point{X: 9, Y: 0}, MaxHP: 90},
		},
		Casts: []ScenarioCast{
			{At: 0.5, Source: "hero", Primary: "goblin", Tags: []string{"fire", "chain", "burn"},
				Params: map[string]any{"base_damage": 40}},
			{At: 2, Source: "hero", Primary: "bone_walker", Tags: []string{"holy", "single"},
				Params: map[string]any{"base_damage": 60}},
			{At: 3.5, Source: "hero", Primary: "hero", Tags: []string{"healing", "self"}},
		},
	}
}

// LoadScenario loads a scenario from a YAML file.
// If the file doesn't exist, returns the default demonstration fight.
func LoadScenario(path string) (Scenario, error) {
	sc := DefaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sc, nil
		}
		return sc, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	sc = Scenario{}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("scenario %s: %w", path, err)
	}

	return sc, nil
}

// Validate checks internal consistency: positive duration, unique
// entity names, casts referring to declared entities in time order.
func (s Scenario) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", s.Duration)
	}
	seen := make(map[string]bool, len(s.Entities))
	for i, e := range s.Entities {
		if e.Name == "" {
			return fmt.Errorf("entity %d: name is required", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate entity name %q", e.Name)
		}
		seen[e.Name] = true
		if e.MaxHP <= 0 {
			return fmt.Errorf("entity %q: max_hp must be positive, got %v", e.Name, e.MaxHP)
		}
	}
	prev := 0.0
	for i, c := range s.Casts {
		if !seen[c.Source] {
			return fmt.Errorf("cast %d: unknown source %q", i, c.Source)
		}
		if !seen[c.Primary] {
			return fmt.Errorf("cast %d: unknown primary %q", i, c.Primary)
		}
		if c.At < prev {
			return fmt.Errorf("cast %d: out of order at %v", i, c.At)
		}
		prev = c.At
	}
	return nil
}
