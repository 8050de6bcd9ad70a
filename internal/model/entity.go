package model

import (
	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
)

// Entity is the capability interface every combat participant exposes
// to the effect engine. Targeting and effect application go through
// these methods only — never through name matching or attribute
// probing.
type Entity interface {
	Name() string
	Position() geo.Vec2
	Facing() geo.Vec2
	Categories() constants.CategorySet

	// IsHostileTo and IsAlliedWith resolve the relationship between
	// two entities for context filtering.
	IsHostileTo(other Entity) bool
	IsAlliedWith(other Entity) bool

	CurrentHP() float64
	MaxHP() float64
	IsDead() bool

	ReceiveDamage(amount float64, kind constants.DamageKind)
	ReceiveHeal(amount float64)

	// Statuses is the entity's owned status collection.
	Statuses() *status.Manager
}
