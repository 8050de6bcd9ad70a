package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/data"
	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
	"github.com/VincentYChia/Game-1-sub006/internal/model"
)

func parseTags(t *testing.T, tags []string, overrides map[string]any) *tag.EffectConfig {
	t.Helper()
	defs, synergies := data.BuiltinCatalog()
	return tag.NewParser(tag.NewRegistry(defs, synergies), nil).Parse(tags, overrides)
}

func enemy(name string, x, y float64) *model.Combatant {
	return model.NewCombatant(name, geo.Vec2{X: x, Y: y}, constants.NewCategorySet(constants.CategoryEnemy), 100)
}

func ally(name string, x, y float64) *model.Combatant {
	return model.NewCombatant(name, geo.Vec2{X: x, Y: y}, constants.NewCategorySet(constants.CategoryAlly), 100)
}

func player(name string, x, y float64) *model.Combatant {
	return model.NewCombatant(name, geo.Vec2{X: x, Y: y}, constants.NewCategorySet(constants.CategoryPlayer), 100)
}

func names(hits []Hit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Target.Name()
	}
	return out
}

func TestFind_Single(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 3, 0)
	cfg := parseTags(t, []string{"fire"}, nil)

	hits := Find(src, prim, cfg, []model.Entity{prim, enemy("other", 1, 0)})

	require.Len(t, hits, 1)
	assert.Equal(t, "prim", hits[0].Target.Name())
	assert.Equal(t, 1.0, hits[0].Multiplier)
}

func TestFind_ChainHopsAndFalloff(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("a", 2, 0)
	b := enemy("b", 5, 0)
	c := enemy("c", 8, 0)
	far := enemy("far", 50, 0)
	cfg := parseTags(t, []string{"fire", "chain"}, map[string]any{
		"chain_count": 2, "chain_range": 5, "chain_falloff": 0.3,
	})

	hits := Find(src, prim, cfg, []model.Entity{far, c, b, prim})

	require.Equal(t, []string{"a", "b", "c"}, names(hits), "hop order from the last hit")
	assert.InDelta(t, 1.0, hits[0].Multiplier, 1e-9)
	assert.InDelta(t, 0.7, hits[1].Multiplier, 1e-9)
	assert.InDelta(t, 0.49, hits[2].Multiplier, 1e-9)
}

func TestFind_ChainStopsEarly(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("a", 2, 0)
	cfg := parseTags(t, []string{"fire", "chain"}, nil)

	// Nothing reachable: behaves exactly like single.
	hits := Find(src, prim, cfg, []model.Entity{prim, enemy("far", 100, 100)})

	require.Len(t, hits, 1)
	assert.Equal(t, "a", hits[0].Target.Name())
	assert.Equal(t, 1.0, hits[0].Multiplier)
}

func TestFind_ChainSkipsIneligible(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("a", 2, 0)
	friend := ally("friend", 3, 0)
	b := enemy("b", 4, 0)
	cfg := parseTags(t, []string{"fire", "chain"}, map[string]any{"chain_count": 1})

	hits := Find(src, prim, cfg, []model.Entity{friend, b, prim})

	require.Equal(t, []string{"a", "b"}, names(hits), "allies are not chain candidates in enemy context")
}

func TestFind_Cone(t *testing.T) {
	src := player("src", 0, 0)
	src.SetFacing(geo.Vec2{X: 1})
	inside := enemy("inside", 3, 1)
	edge := enemy("edge", 2, 2)
	behind := enemy("behind", -3, 0)
	tooFar := enemy("far", 20, 0)
	cfg := parseTags(t, []string{"fire", "cone"}, map[string]any{"cone_range": 6, "cone_angle": 90})

	hits := Find(src, inside, cfg, []model.Entity{tooFar, behind, edge, inside})

	require.Equal(t, []string{"edge", "inside"}, names(hits), "closest first")
	for _, h := range hits {
		assert.Equal(t, 1.0, h.Multiplier, "cone has no falloff")
	}
}

func TestFind_CircleAroundPrimary(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 10, 0)
	near := enemy("near", 11, 0)
	mid := enemy("mid", 10, 3)
	out := enemy("out", 20, 0)
	cfg := parseTags(t, []string{"fire", "circle"}, map[string]any{"radius": 4})

	hits := Find(src, prim, cfg, []model.Entity{out, mid, near, prim})

	require.Equal(t, []string{"prim", "near", "mid"}, names(hits), "ascending distance from origin")
}

func TestFind_CircleMaxTargets(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 10, 0)
	near := enemy("near", 11, 0)
	mid := enemy("mid", 10, 3)
	cfg := parseTags(t, []string{"fire", "circle"}, map[string]any{"radius": 4, "max_targets": 2})

	hits := Find(src, prim, cfg, []model.Entity{mid, near, prim})

	require.Equal(t, []string{"prim", "near"}, names(hits), "capped at max_targets, closest kept")
}

func TestFind_CircleExplicitPoint(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 10, 0)
	atPoint := enemy("atpoint", -5, -5)
	cfg := parseTags(t, []string{"fire", "circle"}, map[string]any{
		"circle_origin": "point", "origin_x": -5, "origin_y": -5, "radius": 2,
	})

	hits := Find(src, prim, cfg, []model.Entity{prim, atPoint})

	require.Equal(t, []string{"atpoint"}, names(hits))
}

func TestFind_CircleOriginSource(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 10, 0)
	nearSrc := enemy("nearsrc", 1, 1)
	cfg := parseTags(t, []string{"fire", "circle"}, map[string]any{"circle_origin": "source", "radius": 3})

	hits := Find(src, prim, cfg, []model.Entity{prim, nearSrc})

	require.Equal(t, []string{"nearsrc"}, names(hits))
}

func TestFind_Beam(t *testing.T) {
	src := player("src", 0, 0)
	src.SetFacing(geo.Vec2{X: 1})
	first := enemy("first", 3, 0.5)
	second := enemy("second", 7, -0.5)
	offLine := enemy("offline", 5, 4)
	behind := enemy("behind", -2, 0)
	cfg := parseTags(t, []string{"fire", "beam"}, map[string]any{"beam_range": 10, "beam_width": 1})

	hits := Find(src, first, cfg, []model.Entity{behind, offLine, second, first})

	require.Equal(t, []string{"first", "second"}, names(hits), "ordered along the ray")
}

func TestFind_BeamPierceCap(t *testing.T) {
	src := player("src", 0, 0)
	a := enemy("a", 2, 0)
	b := enemy("b", 4, 0)
	c := enemy("c", 6, 0)
	cfg := parseTags(t, []string{"fire", "beam"}, map[string]any{"pierce_count": 2})

	hits := Find(src, a, cfg, []model.Entity{c, b, a})

	require.Equal(t, []string{"a", "b"}, names(hits))
}

func TestFind_PierceFalloffAndCap(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 3, 0)
	behindPrim := enemy("behind1", 6, 0.5)
	farther := enemy("behind2", 9, -0.5)
	fourth := enemy("behind3", 12, 0)
	cfg := parseTags(t, []string{"fire", "pierce"}, map[string]any{
		"pierce_count": 3, "pierce_falloff": 0.2,
	})

	hits := Find(src, prim, cfg, []model.Entity{fourth, farther, behindPrim, prim})

	require.Equal(t, []string{"prim", "behind1", "behind2"}, names(hits))
	assert.InDelta(t, 1.0, hits[0].Multiplier, 1e-9)
	assert.InDelta(t, 0.8, hits[1].Multiplier, 1e-9)
	assert.InDelta(t, 0.64, hits[2].Multiplier, 1e-9)
}

func TestFind_PierceIncludesCloserCandidateFirst(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 6, 0)
	between := enemy("between", 3, 0)
	cfg := parseTags(t, []string{"fire", "pierce"}, nil)

	hits := Find(src, prim, cfg, []model.Entity{prim, between})

	require.Equal(t, []string{"between", "prim"}, names(hits),
		"an enemy between source and primary is struck first")
}

func TestFind_ContextSelf(t *testing.T) {
	src := player("src", 0, 0)
	cfg := parseTags(t, []string{"healing", "self", "circle"}, map[string]any{"circle_origin": "source"})

	hits := Find(src, src, cfg, []model.Entity{src, ally("friend", 1, 0)})

	require.Equal(t, []string{"src"}, names(hits), "self context hits only the source")
}

func TestFind_ContextAllUnfiltered(t *testing.T) {
	src := player("src", 0, 0)
	e := enemy("e", 1, 0)
	a := ally("a", 2, 0)
	cfg := parseTags(t, []string{"fire", "circle", "all"}, map[string]any{"circle_origin": "source", "radius": 5})

	hits := Find(src, e, cfg, []model.Entity{e, a})

	assert.Len(t, hits, 2)
}

func TestFind_DeadCandidatesSkipped(t *testing.T) {
	src := player("src", 0, 0)
	prim := enemy("prim", 2, 0)
	corpse := enemy("corpse", 3, 0)
	corpse.ReceiveDamage(1000, constants.DamagePhysical)
	live := enemy("live", 4, 0)
	cfg := parseTags(t, []string{"fire", "chain"}, map[string]any{"chain_count": 2})

	hits := Find(src, prim, cfg, []model.Entity{corpse, live, prim})

	require.Equal(t, []string{"prim", "live"}, names(hits), "dead candidates are not chained")
}
