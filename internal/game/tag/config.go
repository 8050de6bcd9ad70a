package tag

import (
	"fmt"

	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
)

// OriginMode selects the circle geometry's center point.
type OriginMode int8

const (
	OriginSource OriginMode = iota
	OriginTarget
	OriginPoint
)

// EffectConfig is the fully resolved result of parsing one tag list.
// Ephemeral: created, consumed by one Execute call and discarded.
type EffectConfig struct {
	Geometry   GeometryKind
	DamageTags []*Definition
	StatusTags []*Definition
	Specials   []*Definition
	Context    ContextKind

	// ContextExplicit is set when a context tag was supplied rather
	// than inferred.
	ContextExplicit bool

	// Params is the merged parameter map: registry defaults, then
	// caller overrides, then synergy deltas.
	Params map[string]float64

	// CircleOrigin and Origin select the circle geometry center.
	CircleOrigin OriginMode
	Origin       geo.Vec2

	// RawTags preserves the caller's original tag list for diagnostics.
	RawTags []string

	// Warnings collected while parsing; merged into the execution
	// report.
	Warnings []string
}

// Param returns the named parameter or fallback when absent.
func (c *EffectConfig) Param(key string, fallback float64) float64 {
	if v, ok := c.Params[key]; ok {
		return v
	}
	return fallback
}

// ParamWarn returns the named parameter; when absent it records a
// MissingParameterNotice and returns fallback.
func (c *EffectConfig) ParamWarn(key string, fallback float64) float64 {
	if v, ok := c.Params[key]; ok {
		return v
	}
	c.Warnings = append(c.Warnings,
		fmt.Sprintf("%s: %q missing, using %v", MissingParameterNotice, key, fallback))
	return fallback
}

// HasParam reports whether the merged parameters contain key.
func (c *EffectConfig) HasParam(key string) bool {
	_, ok := c.Params[key]
	return ok
}

// HasSpecial reports whether a special tag of kind was selected.
func (c *EffectConfig) HasSpecial(kind SpecialKind) bool {
	for _, d := range c.Specials {
		if d.Special == kind {
			return true
		}
	}
	return false
}
