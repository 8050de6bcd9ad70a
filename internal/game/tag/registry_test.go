package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VincentYChia/Game-1-sub006/internal/data"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
)

func builtinRegistry() *tag.Registry {
	defs, synergies := data.BuiltinCatalog()
	return tag.NewRegistry(defs, synergies)
}

func TestLookup_CanonicalAndAlias(t *testing.T) {
	reg := builtinRegistry()

	d, ok := reg.Lookup("chain")
	require.True(t, ok)
	assert.Equal(t, tag.GeometryChain, d.Geometry)

	// Aliases resolve to the canonical definition.
	alias, ok := reg.Lookup("bounce")
	require.True(t, ok)
	assert.Equal(t, d, alias)

	// Case-insensitive.
	upper, ok := reg.Lookup("CHAIN")
	require.True(t, ok)
	assert.Equal(t, d, upper)
}

func TestLookup_Unknown(t *testing.T) {
	reg := builtinRegistry()
	_, ok := reg.Lookup("tentacles")
	assert.False(t, ok)
}

func TestDefaultParams_ReturnsCopy(t *testing.T) {
	reg := builtinRegistry()

	p1 := reg.DefaultParams("chain")
	require.NotNil(t, p1)
	assert.Equal(t, 2.0, p1["chain_count"])

	p1["chain_count"] = 99
	p2 := reg.DefaultParams("chain")
	assert.Equal(t, 2.0, p2["chain_count"], "registry must stay immutable")
}

func TestConflicts(t *testing.T) {
	reg := builtinRegistry()

	assert.Contains(t, reg.Conflicts("burn"), "freeze")
	assert.Contains(t, reg.Conflicts("freeze"), "burn")
	assert.Contains(t, reg.Conflicts("chain"), "cone")
	assert.Nil(t, reg.Conflicts("tentacles"))
}

func TestSynergy_Unordered(t *testing.T) {
	reg := builtinRegistry()

	s, ok := reg.Synergy("lightning", "chain")
	require.True(t, ok)
	assert.Equal(t, "chain_range", s.Param)
	assert.Equal(t, 1.2, s.Mul)

	// Pair order does not matter.
	s2, ok := reg.Synergy("chain", "lightning")
	require.True(t, ok)
	assert.Equal(t, s, s2)

	_, ok = reg.Synergy("fire", "freeze")
	assert.False(t, ok)
}

func TestLaterDefinitionOverrides(t *testing.T) {
	defs, synergies := data.BuiltinCatalog()
	defs = append(defs, tag.Definition{
		Name:     "chain",
		Category: tag.CategoryGeometry,
		Geometry: tag.GeometryChain,
		Defaults: map[string]float64{"chain_count": 5, "chain_range": 8, "chain_falloff": 0.1},
	})
	reg := tag.NewRegistry(defs, synergies)

	p := reg.DefaultParams("chain")
	assert.Equal(t, 5.0, p["chain_count"], "loaded catalog entry overrides builtin")
}
