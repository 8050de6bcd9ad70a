package data

import (
	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
)

// BuiltinCatalog returns the default tag definitions and synergies.
// This is the in-memory equivalent of the shipped tags.yaml; loaded
// catalogs override it entry by entry.
func BuiltinCatalog() ([]tag.Definition, []tag.Synergy) {
	return builtinDefinitions(), builtinSynergies()
}

func geometryConflicts(self string) []string {
	all := []string{"single", "chain", "cone", "circle", "beam", "pierce"}
	out := make([]string, 0, len(all)-1)
	for _, g := range all {
		if g != self {
			out = append(out, g)
		}
	}
	return out
}

func builtinDefinitions() []tag.Definition {
	return []tag.Definition{
		// Geometry.
		{
			Name: "single", Category: tag.CategoryGeometry, Geometry: tag.GeometrySingle,
			Conflicts: geometryConflicts("single"),
			Aliases:   []string{"one"},
		},
		{
			Name: "chain", Category: tag.CategoryGeometry, Geometry: tag.GeometryChain,
			Defaults:  map[string]float64{"chain_count": 2, "chain_range": 5, "chain_falloff": 0.3},
			Conflicts: geometryConflicts("chain"),
			Aliases:   []string{"bounce"},
		},
		{
			Name: "cone", Category: tag.CategoryGeometry, Geometry: tag.GeometryCone,
			Defaults:  map[string]float64{"cone_range": 6, "cone_angle": 90},
			Conflicts: geometryConflicts("cone"),
			Aliases:   []string{"arc", "spray"},
		},
		{
			Name: "circle", Category: tag.CategoryGeometry, Geometry: tag.GeometryCircle,
			// circle_origin 1 centers on the primary target.
			Defaults:  map[string]float64{"radius": 4, "max_targets": 0, "circle_origin": 1},
			Conflicts: geometryConflicts("circle"),
			Aliases:   []string{"aoe", "burst", "nova"},
		},
		{
			Name: "beam", Category: tag.CategoryGeometry, Geometry: tag.GeometryBeam,
			Defaults:  map[string]float64{"beam_range": 10, "beam_width": 1},
			Conflicts: geometryConflicts("beam"),
			Aliases:   []string{"ray", "laser"},
		},
		{
			Name: "pierce", Category: tag.CategoryGeometry, Geometry: tag.GeometryPierce,
			Defaults:  map[string]float64{"pierce_count": 3, "pierce_falloff": 0.2, "pierce_width": 1.5},
			Conflicts: geometryConflicts("pierce"),
			Aliases:   []string{"impale"},
		},

		// Damage types. Base damage comes from the caller; absence is
		// flagged with a MissingParameterNotice at execute time.
		{Name: "physical", Category: tag.CategoryDamage, Damage: constants.DamagePhysical, Aliases: []string{"kinetic"}},
		{Name: "fire", Category: tag.CategoryDamage, Damage: constants.DamageFire, Aliases: []string{"flame"}},
		{Name: "ice", Category: tag.CategoryDamage, Damage: constants.DamageIce, Aliases: []string{"frost"}},
		{Name: "lightning", Category: tag.CategoryDamage, Damage: constants.DamageLightning, Aliases: []string{"shock", "electric"}},
		{Name: "poison", Category: tag.CategoryDamage, Damage: constants.DamagePoison, Aliases: []string{"toxic"}},
		{Name: "holy", Category: tag.CategoryDamage, Damage: constants.DamageHoly, Aliases: []string{"radiant"}},
		{Name: "arcane", Category: tag.CategoryDamage, Damage: constants.DamageArcane, Aliases: []string{"magic"}},

		// Status conditions.
		{
			Name: "burn", Category: tag.CategoryStatus, Status: status.KindBurn,
			Defaults:  map[string]float64{"burn_duration": 4, "burn_damage_per_second": 5, "burn_tick_interval": 1},
			Conflicts: []string{"freeze"},
			Aliases:   []string{"ignite"},
		},
		{
			Name: "bleed", Category: tag.CategoryStatus, Status: status.KindBleed,
			Defaults: map[string]float64{"bleed_duration": 6, "bleed_damage_per_second": 3, "bleed_tick_interval": 1},
			Aliases:  []string{"hemorrhage", "rend"},
		},
		{
			Name: "poison_status", Category: tag.CategoryStatus, Status: status.KindPoison,
			Defaults: map[string]float64{"poison_duration": 8, "poison_damage_per_second": 2, "poison_tick_interval": 1},
			Aliases:  []string{"venom"},
		},
		{
			Name: "freeze", Category: tag.CategoryStatus, Status: status.KindFreeze,
			Defaults:  map[string]float64{"freeze_duration": 2},
			Conflicts: []string{"burn"},
			Aliases:   []string{"frozen"},
		},
		{
			Name: "slow", Category: tag.CategoryStatus, Status: status.KindSlow,
			Defaults: map[string]float64{"slow_duration": 3, "slow_magnitude": 0.3},
			Aliases:  []string{"chill", "cripple"},
		},
		{
			Name: "stun", Category: tag.CategoryStatus, Status: status.KindStun,
			Defaults: map[string]float64{"stun_duration": 1},
			Aliases:  []string{"daze"},
		},
		{
			Name: "regen", Category: tag.CategoryStatus, Status: status.KindRegen,
			Defaults: map[string]float64{"regen_duration": 5, "regen_heal_per_second": 4, "regen_tick_interval": 1},
			Aliases:  []string{"renew"},
		},
		{
			Name: "haste", Category: tag.CategoryStatus, Status: status.KindHaste,
			Defaults: map[string]float64{"haste_duration": 4, "haste_magnitude": 0.25},
			Aliases:  []string{"swift"},
		},

		// Context.
		{Name: "self", Category: tag.CategoryContext, Context: tag.ContextSelf},
		{Name: "ally", Category: tag.CategoryContext, Context: tag.ContextAlly, Aliases: []string{"friendly"}},
		{Name: "enemy", Category: tag.CategoryContext, Context: tag.ContextEnemy, Aliases: []string{"hostile"}},
		{Name: "all", Category: tag.CategoryContext, Context: tag.ContextAll, Aliases: []string{"any", "everyone"}},

		// Specials.
		{
			Name: "healing", Category: tag.CategorySpecial, Special: tag.SpecialHealing,
			Defaults: map[string]float64{"base_healing": 15},
			Aliases:  []string{"heal"},
		},
		{
			Name: "lifesteal", Category: tag.CategorySpecial, Special: tag.SpecialLifesteal,
			Defaults: map[string]float64{"lifesteal_percent": 0.2},
			Aliases:  []string{"leech", "vampiric"},
		},
	}
}

func builtinSynergies() []tag.Synergy {
	return []tag.Synergy{
		{A: "lightning", B: "chain", Param: "chain_range", Mul: 1.2},
		{A: "ice", B: "slow", Param: "slow_magnitude", Add: 0.1},
		{A: "poison", B: "poison_status", Param: "poison_damage_per_second", Mul: 1.25},
		{A: "holy", B: "healing", Param: "base_healing", Mul: 1.2},
	}
}
