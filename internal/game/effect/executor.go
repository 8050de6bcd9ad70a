package effect

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
	"github.com/VincentYChia/Game-1-sub006/internal/game/target"
	"github.com/VincentYChia/Game-1-sub006/internal/model"
)

// Executor orchestrates one effect resolution: parse the tag list,
// find targets, apply damage, healing and statuses in target order,
// then settle lifesteal. Stateless apart from its registry and logger;
// one Executor serves the whole process.
type Executor struct {
	parser *tag.Parser
	log    *slog.Logger
}

// New creates an Executor over a registry. A nil logger falls back to
// slog.Default().
func New(reg *tag.Registry, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{parser: tag.NewParser(reg, log), log: log}
}

// Execute resolves tags+overrides against the candidate pool and
// applies the result. Never fails for malformed input: unknown tags,
// missing parameters and unreachable geometries degrade to warnings in
// the report. Passing a nil source or primary target is a host
// contract violation and panics.
//
// Targets are processed strictly in the order the geometry produced;
// lifesteal is settled once after the target loop from the damage
// total, so the order is observable through the source's heal.
func (e *Executor) Execute(source, primary model.Entity, tags []string, overrides map[string]any, pool []model.Entity) Report {
	if source == nil || primary == nil {
		panic("effect: nil entity passed to Execute")
	}

	cfg := e.parser.Parse(tags, overrides)
	hits := target.Find(source, primary, cfg, pool)
	if len(hits) == 0 {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("%s: %s geometry found no eligible targets", tag.NoValidTargetsNotice, cfg.Geometry))
		e.log.Debug("no valid targets",
			"geometry", cfg.Geometry.String(),
			"context", cfg.Context.String(),
			"tags", cfg.RawTags)
		return Report{Warnings: cfg.Warnings}
	}

	baseDamage := 0.0
	if len(cfg.DamageTags) > 0 {
		baseDamage = cfg.ParamWarn("base_damage", constants.DefaultBaseDamage)
	}

	var results []TargetResult
	var totalDamage float64
	for _, h := range hits {
		res := TargetResult{Target: h.Target}

		for _, d := range cfg.DamageTags {
			dealt, healed := e.applyDamage(source, h.Target, d.Damage, baseDamage, h.Multiplier)
			res.Damage += dealt
			res.Healing += healed
			totalDamage += dealt
		}

		if cfg.HasSpecial(tag.SpecialHealing) && (cfg.Context == tag.ContextAlly || cfg.Context == tag.ContextSelf) {
			amount := roundAmount(cfg.ParamWarn("base_healing", constants.DefaultBaseHealing) * h.Multiplier)
			if amount > 0 {
				h.Target.ReceiveHeal(amount)
				res.Healing += amount
			}
		}

		for _, d := range cfg.StatusTags {
			outcome := h.Target.Statuses().Apply(d.Status, statusParams(cfg, d))
			if outcome.Applied() {
				res.Statuses = append(res.Statuses, d.Status)
			}
		}

		results = append(results, res)
	}

	// Lifesteal settles once from the cross-target damage total, not
	// per target.
	if cfg.HasSpecial(tag.SpecialLifesteal) && totalDamage > 0 {
		heal := roundAmount(cfg.Param("lifesteal_percent", 0.2) * totalDamage)
		if heal > 0 {
			source.ReceiveHeal(heal)
			e.log.Debug("lifesteal settled", "source", source.Name(), "heal", heal)
		}
	}

	e.log.Debug("effect executed",
		"tags", cfg.RawTags,
		"geometry", cfg.Geometry.String(),
		"context", cfg.Context.String(),
		"targets", len(results),
		"totalDamage", totalDamage)

	return Report{TargetsHit: results, Warnings: cfg.Warnings}
}

// applyDamage applies one damage tag to one target, returning
// (damage dealt, healing dealt). Holy against an ally of the source
// redirects to healing at the full base amount.
func (e *Executor) applyDamage(source, tgt model.Entity, kind constants.DamageKind, base, multiplier float64) (dealt, healed float64) {
	if kind == constants.DamageHoly && tgt.IsAlliedWith(source) {
		amount := roundAmount(base * multiplier * constants.HolyAllyHealFraction)
		if amount > 0 {
			tgt.ReceiveHeal(amount)
		}
		return 0, amount
	}

	amount := roundAmount(base * multiplier * contextMultiplier(kind, tgt.Categories()))
	if amount > 0 {
		tgt.ReceiveDamage(amount, kind)
	}
	return amount, 0
}

// contextMultiplier is the fixed lookup of damage-kind effectiveness
// against target categories. Unlisted combinations are 1.
func contextMultiplier(kind constants.DamageKind, cats constants.CategorySet) float64 {
	switch kind {
	case constants.DamageHoly:
		if cats.Has(constants.CategoryUndead) {
			return constants.HolyUndeadMultiplier
		}
	case constants.DamagePoison:
		if cats.Has(constants.CategoryConstruct) || cats.Has(constants.CategoryUndead) {
			return constants.PoisonImmuneMultiplier
		}
		if cats.Has(constants.CategoryMechanical) {
			return constants.PoisonMechanicalMultiplier
		}
	case constants.DamageLightning:
		if cats.Has(constants.CategoryMechanical) {
			return constants.LightningMechanicalMultiplier
		}
	}
	return 1
}

// statusParams extracts the status tag's parameters from the merged
// map using the kind's name as prefix (burn_duration, slow_magnitude).
// Tick magnitudes deliberately ignore the falloff multiplier: a
// chained burn ticks at full strength on every hop, only the direct
// damage decays.
func statusParams(cfg *tag.EffectConfig, d *tag.Definition) status.ApplyParams {
	prefix := string(d.Status)
	interval := cfg.Param(prefix+"_tick_interval", 1)
	perSecond := cfg.Param(prefix+"_damage_per_second", cfg.Param(prefix+"_heal_per_second", 0))
	return status.ApplyParams{
		Duration:  cfg.Param(prefix+"_duration", 3),
		PerTick:   perSecond * interval,
		Interval:  interval,
		Magnitude: cfg.Param(prefix+"_magnitude", 0),
	}
}

// roundAmount quantizes damage/heal amounts half-away-from-zero to
// two decimals so falloff chains stay stable (50 → 35 → 24.5).
func roundAmount(x float64) float64 {
	return math.Round(x*100) / 100
}
