package tag

import (
	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
)

// Category buckets a tag by what facet of an effect it names.
type Category int8

const (
	CategoryGeometry Category = iota
	CategoryDamage
	CategoryStatus
	CategoryContext
	CategorySpecial
)

func (c Category) String() string {
	switch c {
	case CategoryGeometry:
		return "geometry"
	case CategoryDamage:
		return "damage"
	case CategoryStatus:
		return "status"
	case CategoryContext:
		return "context"
	default:
		return "special"
	}
}

// GeometryKind is the closed set of targeting shapes. Ordinal order is
// selection priority: when several geometry tags appear in one list the
// highest value wins (chain > cone > circle > beam > pierce > single).
type GeometryKind int8

const (
	GeometrySingle GeometryKind = iota
	GeometryPierce
	GeometryBeam
	GeometryCircle
	GeometryCone
	GeometryChain
)

func (g GeometryKind) String() string {
	switch g {
	case GeometryChain:
		return "chain"
	case GeometryCone:
		return "cone"
	case GeometryCircle:
		return "circle"
	case GeometryBeam:
		return "beam"
	case GeometryPierce:
		return "pierce"
	default:
		return "single"
	}
}

// ContextKind is the relationship filter for eligible targets.
type ContextKind int8

const (
	ContextSelf ContextKind = iota
	ContextAlly
	ContextEnemy
	ContextAll
)

func (c ContextKind) String() string {
	switch c {
	case ContextSelf:
		return "self"
	case ContextAlly:
		return "ally"
	case ContextEnemy:
		return "enemy"
	default:
		return "all"
	}
}

// SpecialKind names special mechanic tags.
type SpecialKind string

const (
	SpecialLifesteal SpecialKind = "lifesteal"
	SpecialHealing   SpecialKind = "healing"
)

// Definition is the immutable registry entry for one tag. Exactly one
// of the kind fields is meaningful, selected by Category.
type Definition struct {
	Name     string
	Category Category

	Geometry GeometryKind
	Damage   constants.DamageKind
	Status   status.Kind
	Context  ContextKind
	Special  SpecialKind

	// Defaults are the tag's default parameters, overridable by the
	// caller at Execute time.
	Defaults map[string]float64

	// Conflicts lists tags that cannot coexist with this one as the
	// selected geometry/status. Informational for loaders/tools; the
	// parser resolves geometry by priority and the status manager
	// enforces exclusion at apply time.
	Conflicts []string

	// Aliases are alternate spellings resolving to this tag.
	Aliases []string
}

// Synergy is a registry-defined parameter bonus triggered when both
// tags appear in one effect. Mul is applied first when non-zero, then
// Add.
type Synergy struct {
	A     string
	B     string
	Param string
	Mul   float64
	Add   float64
}
