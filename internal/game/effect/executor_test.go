package effect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/data"
	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
	"github.com/VincentYChia/Game-1-sub006/internal/model"
)

func newExecutor() *Executor {
	defs, synergies := data.BuiltinCatalog()
	return New(tag.NewRegistry(defs, synergies), nil)
}

func combatant(name string, x, y float64, hp float64, cats ...constants.Category) *model.Combatant {
	return model.NewCombatant(name, geo.Vec2{X: x, Y: y}, constants.NewCategorySet(cats...), hp)
}

func reportHasWarning(r Report, prefix string) bool {
	for _, w := range r.Warnings {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

func TestExecute_ChainFalloffDamage(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	a := combatant("a", 2, 0, 100, constants.CategoryEnemy)
	b := combatant("b", 5, 0, 100, constants.CategoryEnemy)
	c := combatant("c", 8, 0, 100, constants.CategoryEnemy)
	pool := []model.Entity{a, b, c}

	report := newExecutor().Execute(src, a,
		[]string{"fire", "chain", "burn"},
		map[string]any{
			"base_damage":            50,
			"chain_count":            2,
			"chain_range":            5,
			"chain_falloff":          0.3,
			"burn_duration":          5,
			"burn_damage_per_second": 8,
		},
		pool)

	require.Len(t, report.TargetsHit, 3)
	assert.Equal(t, 50.0, report.TargetsHit[0].Damage)
	assert.Equal(t, 35.0, report.TargetsHit[1].Damage)
	assert.Equal(t, 24.5, report.TargetsHit[2].Damage, "round-half-up to two decimals")

	for _, tgt := range []*model.Combatant{a, b, c} {
		assert.Equal(t, 1, tgt.Statuses().Stacks(status.KindBurn), "%s gains one burn stack", tgt.Name())
		assert.Equal(t, 5.0, tgt.Statuses().Remaining(status.KindBurn))
	}

	// Burn ticks at full 8/s on every hop; falloff affects direct
	// damage only.
	hpBefore := c.CurrentHP()
	c.Statuses().Update(1)
	assert.InDelta(t, 8.0, hpBefore-c.CurrentHP(), 1e-9)
}

func TestExecute_ChainNoExtrasEqualsSingle(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	prim := combatant("prim", 2, 0, 100, constants.CategoryEnemy)

	chain := newExecutor().Execute(src, prim,
		[]string{"fire", "chain"}, map[string]any{"base_damage": 40}, []model.Entity{prim})

	prim2 := combatant("prim2", 2, 0, 100, constants.CategoryEnemy)
	single := newExecutor().Execute(src, prim2,
		[]string{"fire", "single"}, map[string]any{"base_damage": 40}, []model.Entity{prim2})

	require.Len(t, chain.TargetsHit, 1)
	require.Len(t, single.TargetsHit, 1)
	assert.Equal(t, single.TargetsHit[0].Damage, chain.TargetsHit[0].Damage)
}

func TestExecute_HolyVsUndead(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	undead := combatant("skeleton", 3, 0, 200, constants.CategoryEnemy, constants.CategoryUndead)

	report := newExecutor().Execute(src, undead,
		[]string{"holy", "single"}, map[string]any{"base_damage": 100}, []model.Entity{undead})

	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, 150.0, report.TargetsHit[0].Damage)
	assert.Equal(t, 50.0, undead.CurrentHP())
}

func TestExecute_HolyOnAllyHeals(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	friend := combatant("friend", 3, 0, 150, constants.CategoryAlly)
	friend.ReceiveDamage(100, constants.DamagePhysical)

	report := newExecutor().Execute(src, friend,
		[]string{"holy", "single"}, map[string]any{"base_damage": 100}, []model.Entity{friend})

	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, 0.0, report.TargetsHit[0].Damage, "holy on ally deals no damage")
	assert.Equal(t, 100.0, report.TargetsHit[0].Healing, "full base amount redirected to healing")
	assert.Equal(t, 150.0, friend.CurrentHP())
}

func TestExecute_PoisonVsConstruct(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	golem := combatant("golem", 3, 0, 100, constants.CategoryEnemy, constants.CategoryConstruct)

	report := newExecutor().Execute(src, golem,
		[]string{"poison", "poison_status"}, map[string]any{"base_damage": 30}, []model.Entity{golem})

	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, 0.0, report.TargetsHit[0].Damage, "constructs are immune to poison damage")
	assert.Empty(t, report.TargetsHit[0].Statuses, "no poison status lands")
	assert.Equal(t, 0, golem.Statuses().Count(), "zero status instances created")
	assert.Equal(t, 100.0, golem.CurrentHP())
}

func TestExecute_PoisonVsMechanicalHalved(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	drone := combatant("drone", 3, 0, 100, constants.CategoryEnemy, constants.CategoryMechanical)

	report := newExecutor().Execute(src, drone,
		[]string{"poison"}, map[string]any{"base_damage": 30}, []model.Entity{drone})

	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, 15.0, report.TargetsHit[0].Damage)
}

func TestExecute_EmptyTagListIsNoOp(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	prim := combatant("prim", 3, 0, 100, constants.CategoryEnemy)

	report := newExecutor().Execute(src, prim, nil, nil, []model.Entity{prim})

	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, 0.0, report.TargetsHit[0].Damage)
	assert.Equal(t, 0.0, report.TargetsHit[0].Healing)
	assert.Empty(t, report.TargetsHit[0].Statuses)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 100.0, prim.CurrentHP())
}

func TestExecute_NoValidTargets(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	prim := combatant("prim", 50, 0, 100, constants.CategoryEnemy)

	report := newExecutor().Execute(src, prim,
		[]string{"fire", "circle"}, map[string]any{"base_damage": 30, "radius": 2},
		nil)

	assert.Empty(t, report.TargetsHit)
	assert.True(t, reportHasWarning(report, tag.NoValidTargetsNotice))
}

func TestExecute_LifestealSettlesOnceAfterLoop(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	src.ReceiveDamage(50, constants.DamagePhysical)
	a := combatant("a", 2, 0, 100, constants.CategoryEnemy)
	b := combatant("b", 4, 0, 100, constants.CategoryEnemy)

	report := newExecutor().Execute(src, a,
		[]string{"fire", "chain", "lifesteal"},
		map[string]any{"base_damage": 50, "chain_count": 1, "chain_range": 5, "chain_falloff": 0.3},
		[]model.Entity{a, b})

	require.Len(t, report.TargetsHit, 2)
	// Total damage 50 + 35 = 85, default lifesteal 20% → 17.
	assert.InDelta(t, 67.0, src.CurrentHP(), 1e-9)
}

func TestExecute_LifestealWithoutDamageHealsNothing(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	src.ReceiveDamage(50, constants.DamagePhysical)

	newExecutor().Execute(src, src, []string{"lifesteal"}, nil, []model.Entity{src})

	assert.Equal(t, 50.0, src.CurrentHP())
}

func TestExecute_HealingTag(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	friend := combatant("friend", 2, 0, 100, constants.CategoryAlly)
	friend.ReceiveDamage(30, constants.DamagePhysical)

	report := newExecutor().Execute(src, friend,
		[]string{"healing"}, map[string]any{"base_healing": 25}, []model.Entity{friend})

	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, 25.0, report.TargetsHit[0].Healing)
	assert.Equal(t, 95.0, friend.CurrentHP())
}

func TestExecute_MissingBaseDamageFallsBack(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	prim := combatant("prim", 3, 0, 100, constants.CategoryEnemy)

	report := newExecutor().Execute(src, prim, []string{"fire"}, nil, []model.Entity{prim})

	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, constants.DefaultBaseDamage, report.TargetsHit[0].Damage)
	assert.True(t, reportHasWarning(report, tag.MissingParameterNotice))
}

func TestExecute_StatusDisplacementEndToEnd(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	prim := combatant("prim", 3, 0, 200, constants.CategoryEnemy)
	pool := []model.Entity{prim}
	ex := newExecutor()

	ex.Execute(src, prim, []string{"fire", "burn"}, map[string]any{"base_damage": 10}, pool)
	require.True(t, prim.Statuses().Has(status.KindBurn))

	ex.Execute(src, prim, []string{"ice", "freeze"}, map[string]any{"base_damage": 10}, pool)

	assert.False(t, prim.Statuses().Has(status.KindBurn), "freeze displaces burn")
	assert.True(t, prim.Statuses().Has(status.KindFreeze))
}

func TestExecute_UnknownTagsDegrade(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	prim := combatant("prim", 3, 0, 100, constants.CategoryEnemy)

	report := newExecutor().Execute(src, prim,
		[]string{"fire", "tentacles"}, map[string]any{"base_damage": 20}, []model.Entity{prim})

	assert.True(t, reportHasWarning(report, tag.UnknownTagWarning))
	require.Len(t, report.TargetsHit, 1)
	assert.Equal(t, 20.0, report.TargetsHit[0].Damage, "known tags still execute")
}

func TestExecute_NilEntityPanics(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)

	assert.Panics(t, func() {
		newExecutor().Execute(nil, src, []string{"fire"}, nil, nil)
	})
	assert.Panics(t, func() {
		newExecutor().Execute(src, nil, []string{"fire"}, nil, nil)
	})
}

func TestExecute_ReportTotals(t *testing.T) {
	src := combatant("src", 0, 0, 100, constants.CategoryPlayer)
	a := combatant("a", 2, 0, 100, constants.CategoryEnemy)
	b := combatant("b", 4, 0, 100, constants.CategoryEnemy)

	report := newExecutor().Execute(src, a,
		[]string{"fire", "chain"},
		map[string]any{"base_damage": 50, "chain_count": 1, "chain_range": 5, "chain_falloff": 0.3},
		[]model.Entity{a, b})

	assert.InDelta(t, 85.0, report.TotalDamage(), 1e-9)
	assert.Equal(t, 0.0, report.TotalHealing())
}
