package target

import (
	"sort"

	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
	"github.com/VincentYChia/Game-1-sub006/internal/model"
)

// Hit pairs an affected entity with its magnitude multiplier. The
// slice order produced by Find is the application order and is part of
// the engine contract: hop order for chain, ascending distance for
// circle, ascending ray distance for beam and pierce.
type Hit struct {
	Target     model.Entity
	Multiplier float64
}

// Find resolves the config's geometry against the candidate pool.
// The primary target is always the first hit for single, chain and
// pierce. Never fails; an unreachable geometry yields an empty slice.
func Find(source, primary model.Entity, cfg *tag.EffectConfig, pool []model.Entity) []Hit {
	switch cfg.Geometry {
	case tag.GeometryChain:
		return findChain(source, primary, cfg, pool)
	case tag.GeometryCone:
		return findCone(source, cfg, pool)
	case tag.GeometryCircle:
		return findCircle(source, primary, cfg, pool)
	case tag.GeometryBeam:
		return findBeam(source, cfg, pool)
	case tag.GeometryPierce:
		return findPierce(source, primary, cfg, pool)
	default:
		return []Hit{{Target: primary, Multiplier: 1}}
	}
}

// eligible checks a candidate against the resolved context through the
// capability interface only. Dead candidates are never eligible.
func eligible(ctx tag.ContextKind, source, candidate model.Entity) bool {
	if candidate == nil || candidate.IsDead() {
		return false
	}
	switch ctx {
	case tag.ContextSelf:
		return candidate == source
	case tag.ContextEnemy:
		return candidate.IsHostileTo(source)
	case tag.ContextAlly:
		return candidate.IsAlliedWith(source)
	default: // ContextAll
		return true
	}
}

// findChain hops from the primary target to the nearest unhit eligible
// candidate within chain_range of the last hit, decaying the
// multiplier by (1 - chain_falloff) per hop. Stops early when no
// candidate is reachable; a chain with zero extra targets behaves
// exactly like single.
func findChain(source, primary model.Entity, cfg *tag.EffectConfig, pool []model.Entity) []Hit {
	chainRange := cfg.Param("chain_range", 5)
	hops := int(cfg.Param("chain_count", 2))
	falloff := cfg.Param("chain_falloff", 0.3)

	hits := []Hit{{Target: primary, Multiplier: 1}}
	visited := map[model.Entity]bool{primary: true}
	last := primary
	mult := 1.0

	for i := 0; i < hops; i++ {
		var next model.Entity
		best := chainRange * chainRange
		for _, cand := range pool {
			if visited[cand] || !eligible(cfg.Context, source, cand) {
				continue
			}
			d := last.Position().DistSquared(cand.Position())
			if d <= best {
				best = d
				next = cand
			}
		}
		if next == nil {
			break
		}
		mult *= 1 - falloff
		hits = append(hits, Hit{Target: next, Multiplier: mult})
		visited[next] = true
		last = next
	}
	return hits
}

// findCone returns all eligible candidates inside the cone rooted at
// the source along its facing, closest first, all at full magnitude.
func findCone(source model.Entity, cfg *tag.EffectConfig, pool []model.Entity) []Hit {
	coneRange := cfg.Param("cone_range", 6)
	halfAngle := geo.DegToRad(cfg.Param("cone_angle", 90) / 2)

	var hits []Hit
	for _, cand := range pool {
		if !eligible(cfg.Context, source, cand) {
			continue
		}
		if geo.InCone(source.Position(), source.Facing(), cand.Position(), coneRange, halfAngle) {
			hits = append(hits, Hit{Target: cand, Multiplier: 1})
		}
	}
	sortByDistance(hits, source.Position())
	return hits
}

// findCircle returns eligible candidates within radius of the origin
// point, ascending by distance, capped at max_targets (0 = unlimited).
func findCircle(source, primary model.Entity, cfg *tag.EffectConfig, pool []model.Entity) []Hit {
	radius := cfg.Param("radius", 4)
	maxTargets := int(cfg.Param("max_targets", 0))

	origin := source.Position()
	switch cfg.CircleOrigin {
	case tag.OriginTarget:
		if primary != nil {
			origin = primary.Position()
		}
	case tag.OriginPoint:
		origin = cfg.Origin
	}

	var hits []Hit
	for _, cand := range pool {
		if !eligible(cfg.Context, source, cand) {
			continue
		}
		if origin.Dist(cand.Position()) <= radius {
			hits = append(hits, Hit{Target: cand, Multiplier: 1})
		}
	}
	sortByDistance(hits, origin)

	if maxTargets > 0 && len(hits) > maxTargets {
		hits = hits[:maxTargets]
	}
	return hits
}

// findBeam returns eligible candidates within beam_width perpendicular
// distance of the ray from the source along its facing, ordered by
// distance along the ray, optionally capped by pierce_count.
func findBeam(source model.Entity, cfg *tag.EffectConfig, pool []model.Entity) []Hit {
	beamRange := cfg.Param("beam_range", 10)
	beamWidth := cfg.Param("beam_width", 1)

	type rayHit struct {
		hit   Hit
		along float64
	}
	var ray []rayHit
	for _, cand := range pool {
		if cand == source || !eligible(cfg.Context, source, cand) {
			continue
		}
		along, perp := geo.RayProject(source.Position(), source.Facing(), cand.Position())
		if along <= 0 || along > beamRange || perp > beamWidth {
			continue
		}
		ray = append(ray, rayHit{hit: Hit{Target: cand, Multiplier: 1}, along: along})
	}
	sort.SliceStable(ray, func(i, j int) bool { return ray[i].along < ray[j].along })

	if limit := int(cfg.Param("pierce_count", 0)); limit > 0 && len(ray) > limit {
		ray = ray[:limit]
	}

	hits := make([]Hit, len(ray))
	for i, r := range ray {
		hits[i] = r.hit
	}
	return hits
}

// findPierce travels along the line from the source through the
// primary target. Hits are ordered by distance along the line; the
// first hit is at full magnitude and each successive one decays by
// (1 - pierce_falloff), capped at pierce_count total hits. The primary
// target is always included even when absent from the pool.
func findPierce(source, primary model.Entity, cfg *tag.EffectConfig, pool []model.Entity) []Hit {
	maxHits := int(cfg.Param("pierce_count", 3))
	falloff := cfg.Param("pierce_falloff", 0.2)
	width := cfg.Param("pierce_width", 1.5)

	dir := primary.Position().Sub(source.Position())
	if dir.IsZero() {
		dir = source.Facing()
	}

	type rayHit struct {
		target model.Entity
		along  float64
	}
	along, _ := geo.RayProject(source.Position(), dir, primary.Position())
	ray := []rayHit{{target: primary, along: along}}

	for _, cand := range pool {
		if cand == primary || cand == source || !eligible(cfg.Context, source, cand) {
			continue
		}
		along, perp := geo.RayProject(source.Position(), dir, cand.Position())
		if along <= 0 || perp > width {
			continue
		}
		ray = append(ray, rayHit{target: cand, along: along})
	}
	sort.SliceStable(ray, func(i, j int) bool { return ray[i].along < ray[j].along })

	if maxHits > 0 && len(ray) > maxHits {
		ray = ray[:maxHits]
	}

	hits := make([]Hit, len(ray))
	mult := 1.0
	for i, r := range ray {
		hits[i] = Hit{Target: r.target, Multiplier: mult}
		mult *= 1 - falloff
	}
	return hits
}

// sortByDistance orders hits ascending by distance from origin,
// keeping pool order for ties.
func sortByDistance(hits []Hit, origin geo.Vec2) {
	sort.SliceStable(hits, func(i, j int) bool {
		return origin.DistSquared(hits[i].Target.Position()) < origin.DistSquared(hits[j].Target.Position())
	})
}
