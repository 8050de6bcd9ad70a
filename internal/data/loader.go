package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
)

// catalogFile is the YAML shape of a tag catalog. Entries merge over
// the builtin catalog: a file entry with the same name replaces the
// builtin one.
type catalogFile struct {
	Tags      []tagEntry     `yaml:"tags"`
	Synergies []synergyEntry `yaml:"synergies"`
}

type tagEntry struct {
	Name      string             `yaml:"name"`
	Category  string             `yaml:"category"`
	Kind      string             `yaml:"kind"` // geometry/damage/status/context/special value
	Defaults  map[string]float64 `yaml:"defaults"`
	Conflicts []string           `yaml:"conflicts"`
	Aliases   []string           `yaml:"aliases"`
}

type synergyEntry struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Param string  `yaml:"param"`
	Mul   float64 `yaml:"mul"`
	Add   float64 `yaml:"add"`
}

// LoadCatalog loads a tag catalog from a YAML file and merges it over
// the builtin catalog. If the file doesn't exist, returns the builtin
// catalog unchanged.
func LoadCatalog(path string) ([]tag.Definition, []tag.Synergy, error) {
	defs, synergies := BuiltinCatalog()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defs, synergies, nil
		}
		return nil, nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	for i, entry := range file.Tags {
		def, err := entry.toDefinition()
		if err != nil {
			return nil, nil, fmt.Errorf("catalog %s: tag %d (%q): %w", path, i, entry.Name, err)
		}
		defs = append(defs, def)
	}

	for i, entry := range file.Synergies {
		if entry.A == "" || entry.B == "" || entry.Param == "" {
			return nil, nil, fmt.Errorf("catalog %s: synergy %d: a, b and param are required", path, i)
		}
		synergies = append(synergies, tag.Synergy{
			A: entry.A, B: entry.B, Param: entry.Param, Mul: entry.Mul, Add: entry.Add,
		})
	}

	return defs, synergies, nil
}

func (e tagEntry) toDefinition() (tag.Definition, error) {
	if e.Name == "" {
		return tag.Definition{}, fmt.Errorf("name is required")
	}

	def := tag.Definition{
		Name:      e.Name,
		Defaults:  e.Defaults,
		Conflicts: e.Conflicts,
		Aliases:   e.Aliases,
	}

	kind := e.Kind
	if kind == "" {
		kind = e.Name
	}

	switch e.Category {
	case "geometry":
		def.Category = tag.CategoryGeometry
		g, err := parseGeometry(kind)
		if err != nil {
			return tag.Definition{}, err
		}
		def.Geometry = g
	case "damage":
		def.Category = tag.CategoryDamage
		d, err := parseDamage(kind)
		if err != nil {
			return tag.Definition{}, err
		}
		def.Damage = d
	case "status":
		def.Category = tag.CategoryStatus
		k, ok := status.KnownKind(kind)
		if !ok {
			return tag.Definition{}, fmt.Errorf("unknown status kind %q", kind)
		}
		def.Status = k
	case "context":
		def.Category = tag.CategoryContext
		c, err := parseContext(kind)
		if err != nil {
			return tag.Definition{}, err
		}
		def.Context = c
	case "special":
		def.Category = tag.CategorySpecial
		s, err := parseSpecial(kind)
		if err != nil {
			return tag.Definition{}, err
		}
		def.Special = s
	default:
		return tag.Definition{}, fmt.Errorf("unknown category %q", e.Category)
	}

	return def, nil
}

func parseGeometry(s string) (tag.GeometryKind, error) {
	switch s {
	case "single":
		return tag.GeometrySingle, nil
	case "pierce":
		return tag.GeometryPierce, nil
	case "beam":
		return tag.GeometryBeam, nil
	case "circle":
		return tag.GeometryCircle, nil
	case "cone":
		return tag.GeometryCone, nil
	case "chain":
		return tag.GeometryChain, nil
	}
	return 0, fmt.Errorf("unknown geometry %q", s)
}

func parseDamage(s string) (constants.DamageKind, error) {
	switch k := constants.DamageKind(s); k {
	case constants.DamagePhysical, constants.DamageFire, constants.DamageIce,
		constants.DamageLightning, constants.DamagePoison, constants.DamageHoly,
		constants.DamageArcane:
		return k, nil
	}
	return "", fmt.Errorf("unknown damage kind %q", s)
}

func parseContext(s string) (tag.ContextKind, error) {
	switch s {
	case "self":
		return tag.ContextSelf, nil
	case "ally":
		return tag.ContextAlly, nil
	case "enemy":
		return tag.ContextEnemy, nil
	case "all":
		return tag.ContextAll, nil
	}
	return 0, fmt.Errorf("unknown context %q", s)
}

func parseSpecial(s string) (tag.SpecialKind, error) {
	switch k := tag.SpecialKind(s); k {
	case tag.SpecialLifesteal, tag.SpecialHealing:
		return k, nil
	}
	return "", fmt.Errorf("unknown special %q", s)
}
