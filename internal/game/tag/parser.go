package tag

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
)

// Parser turns a raw tag list plus caller overrides into a resolved
// EffectConfig. Pure and deterministic: identical input always yields
// an identical config. Parse never fails; malformed input degrades to
// warnings.
type Parser struct {
	reg *Registry
	log *slog.Logger
}

// NewParser creates a Parser over a registry. A nil logger falls back
// to slog.Default().
func NewParser(reg *Registry, log *slog.Logger) *Parser {
	if reg == nil {
		panic("tag: nil registry passed to NewParser")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Parser{reg: reg, log: log}
}

// Parse resolves tags and overrides into an EffectConfig.
//
// Steps: dedupe (case-insensitive) and resolve aliases; bucket by
// category dropping unknown tags with a warning; pick one geometry by
// priority; resolve context (explicit wins over inference); merge
// parameters defaults → overrides → synergy deltas. An empty tag list
// yields {single, enemy, no tags, empty params}.
func (p *Parser) Parse(tags []string, overrides map[string]any) *EffectConfig {
	cfg := &EffectConfig{
		Geometry: GeometrySingle,
		Params:   map[string]float64{},
		RawTags:  append([]string(nil), tags...),
	}

	defs := p.resolve(tags, cfg)

	var geometryDefs []*Definition
	var contextDefs []*Definition
	for _, d := range defs {
		switch d.Category {
		case CategoryGeometry:
			geometryDefs = append(geometryDefs, d)
		case CategoryDamage:
			cfg.DamageTags = append(cfg.DamageTags, d)
		case CategoryStatus:
			cfg.StatusTags = append(cfg.StatusTags, d)
		case CategoryContext:
			contextDefs = append(contextDefs, d)
		case CategorySpecial:
			cfg.Specials = append(cfg.Specials, d)
		}
	}

	geometryDef := p.resolveGeometry(geometryDefs, cfg)
	p.resolveContext(contextDefs, cfg)
	p.mergeParams(geometryDef, defs, overrides, cfg)
	p.resolveOrigin(overrides, cfg)

	return cfg
}

// resolve dedupes the tag list case-insensitively (first occurrence
// wins), resolves aliases, and drops unknown tags with a warning.
func (p *Parser) resolve(tags []string, cfg *EffectConfig) []*Definition {
	seen := make(map[string]bool, len(tags))
	var defs []*Definition
	for _, raw := range tags {
		d, ok := p.reg.Lookup(raw)
		if !ok {
			key := strings.ToLower(raw)
			if seen[key] {
				continue
			}
			seen[key] = true
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("%s: unknown tag %q ignored", UnknownTagWarning, raw))
			p.log.Warn("unknown tag ignored", "tag", raw)
			continue
		}
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		defs = append(defs, d)
	}
	return defs
}

// resolveGeometry selects exactly one geometry by fixed priority
// chain > cone > circle > beam > pierce > single, warning about any
// discarded geometry tags. An empty bucket defaults to single.
func (p *Parser) resolveGeometry(geometryDefs []*Definition, cfg *EffectConfig) *Definition {
	if len(geometryDefs) == 0 {
		cfg.Geometry = GeometrySingle
		return nil
	}

	selected := geometryDefs[0]
	for _, d := range geometryDefs[1:] {
		if d.Geometry > selected.Geometry {
			selected = d
		}
	}
	cfg.Geometry = selected.Geometry

	if len(geometryDefs) > 1 {
		var discarded []string
		for _, d := range geometryDefs {
			if d != selected {
				discarded = append(discarded, d.Name)
			}
		}
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("%s: selected %q by priority, discarded %s",
				GeometryConflictWarning, selected.Name, strings.Join(discarded, ", ")))
		p.log.Debug("geometry conflict resolved",
			"selected", selected.Name,
			"discarded", discarded)
	}
	return selected
}

// resolveContext applies an explicit context tag or infers one:
// damage tags imply enemy, healing/buff tags imply ally, harmful
// statuses imply enemy, and a list with no functional tags defaults
// to enemy. Explicit context always wins; a mismatch between an
// explicit context and the tag content is flagged, not corrected.
func (p *Parser) resolveContext(contextDefs []*Definition, cfg *EffectConfig) {
	if len(contextDefs) > 0 {
		cfg.Context = contextDefs[0].Context
		cfg.ContextExplicit = true

		if (cfg.Context == ContextAlly || cfg.Context == ContextSelf) && len(cfg.DamageTags) > 0 {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("%s: damage tags with explicit %s context", ContextMismatchNotice, cfg.Context))
		}
		if cfg.Context == ContextEnemy && cfg.HasSpecial(SpecialHealing) {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("%s: healing tag with explicit enemy context", ContextMismatchNotice))
		}
		return
	}

	cfg.Context = inferContext(cfg)
}

// inferContext picks a context from tag content alone.
func inferContext(cfg *EffectConfig) ContextKind {
	if len(cfg.DamageTags) > 0 {
		return ContextEnemy
	}
	if cfg.HasSpecial(SpecialHealing) {
		return ContextAlly
	}
	beneficial := false
	harmful := false
	for _, d := range cfg.StatusTags {
		if status.IsBeneficial(d.Status) {
			beneficial = true
		} else {
			harmful = true
		}
	}
	if beneficial && !harmful {
		return ContextAlly
	}
	if harmful {
		return ContextEnemy
	}
	if len(cfg.Specials) > 0 {
		// Special-only lists (bare lifesteal) act on the caster.
		return ContextSelf
	}
	// Nothing functional at all: an empty effect against an enemy.
	return ContextEnemy
}

// mergeParams unions default parameters of the selected functional
// tags, applies caller overrides, then synergy deltas for pairs that
// are both present.
func (p *Parser) mergeParams(geometryDef *Definition, defs []*Definition, overrides map[string]any, cfg *EffectConfig) {
	apply := func(d *Definition) {
		for k, v := range d.Defaults {
			cfg.Params[k] = v
		}
	}
	if geometryDef != nil {
		apply(geometryDef)
	}
	for _, d := range cfg.DamageTags {
		apply(d)
	}
	for _, d := range cfg.StatusTags {
		apply(d)
	}
	for _, d := range cfg.Specials {
		apply(d)
	}

	for key, raw := range overrides {
		v, ok := toFloat(raw)
		if !ok {
			// String-valued origin selection is handled separately.
			if strings.ToLower(key) == "circle_origin" {
				continue
			}
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("%s: override %q is not numeric, ignored", MissingParameterNotice, key))
			continue
		}
		cfg.Params[strings.ToLower(key)] = v
	}

	present := make(map[string]bool, len(defs))
	if geometryDef != nil {
		present[geometryDef.Name] = true
	}
	for _, d := range defs {
		if d.Category != CategoryGeometry {
			present[d.Name] = true
		}
	}
	for _, s := range p.reg.Synergies() {
		if !present[s.A] || !present[s.B] {
			continue
		}
		if s.Mul != 0 {
			if v, ok := cfg.Params[s.Param]; ok {
				cfg.Params[s.Param] = v * s.Mul
			}
		}
		if s.Add != 0 {
			cfg.Params[s.Param] += s.Add
		}
		p.log.Debug("synergy applied", "a", s.A, "b", s.B, "param", s.Param)
	}
}

// resolveOrigin turns the circle_origin parameter into an OriginMode
// once, so downstream code never re-interprets strings. Accepts the
// string forms "source", "target" and "point" in overrides, or the
// numeric forms 0/1/2 from catalog defaults.
func (p *Parser) resolveOrigin(overrides map[string]any, cfg *EffectConfig) {
	mode := OriginMode(int(cfg.Param("circle_origin", 0)))
	if raw, ok := overrides["circle_origin"]; ok {
		if s, isStr := raw.(string); isStr {
			switch strings.ToLower(s) {
			case "source":
				mode = OriginSource
			case "target":
				mode = OriginTarget
			case "point":
				mode = OriginPoint
			default:
				cfg.Warnings = append(cfg.Warnings,
					fmt.Sprintf("%s: unknown circle_origin %q, using source", MissingParameterNotice, s))
				mode = OriginSource
			}
		}
	}
	if mode < OriginSource || mode > OriginPoint {
		mode = OriginSource
	}
	cfg.CircleOrigin = mode
	cfg.Origin = geo.Vec2{X: cfg.Param("origin_x", 0), Y: cfg.Param("origin_y", 0)}

	if mode == OriginPoint && !cfg.HasParam("origin_x") && !cfg.HasParam("origin_y") {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("%s: circle_origin is point but no origin_x/origin_y given", MissingParameterNotice))
	}
}

// toFloat coerces override values: numbers pass through, numeric
// strings are parsed, everything else is rejected.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
