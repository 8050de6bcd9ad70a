package model

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
)

// Combatant is the engine's concrete Entity: players, monsters,
// turrets and traps are all Combatants differing only in categories
// and stats. HP is clamped to [0, max]; healing does nothing once
// dead.
type Combatant struct {
	name      string
	pos       geo.Vec2
	facing    geo.Vec2
	cats      constants.CategorySet
	curHP     float64
	maxHP     float64
	baseSpeed float64
	statuses  *status.Manager
}

// NewCombatant creates a live Combatant at full HP facing +X.
func NewCombatant(name string, pos geo.Vec2, cats constants.CategorySet, maxHP float64) *Combatant {
	c := &Combatant{
		name:      name,
		pos:       pos,
		facing:    geo.Vec2{X: 1},
		cats:      cats,
		curHP:     maxHP,
		maxHP:     maxHP,
		baseSpeed: 5,
	}
	c.statuses = status.NewManager(c, slog.Default())
	return c
}

func (c *Combatant) Name() string                       { return c.name }
func (c *Combatant) Position() geo.Vec2                 { return c.pos }
func (c *Combatant) Facing() geo.Vec2                   { return c.facing }
func (c *Combatant) Categories() constants.CategorySet  { return c.cats }
func (c *Combatant) CurrentHP() float64                 { return c.curHP }
func (c *Combatant) MaxHP() float64                     { return c.maxHP }
func (c *Combatant) IsDead() bool                       { return c.curHP <= 0 }
func (c *Combatant) Statuses() *status.Manager          { return c.statuses }

// SetPosition moves the combatant.
func (c *Combatant) SetPosition(pos geo.Vec2) { c.pos = pos }

// SetFacing sets the facing direction, normalized. A zero vector is
// ignored so the combatant always faces somewhere.
func (c *Combatant) SetFacing(dir geo.Vec2) {
	n := dir.Normalize()
	if !n.IsZero() {
		c.facing = n
	}
}

// SetBaseSpeed sets the unmodified movement speed.
func (c *Combatant) SetBaseSpeed(speed float64) { c.baseSpeed = speed }

// MoveSpeed returns base speed with active status modifiers applied
// (slow, freeze, haste).
func (c *Combatant) MoveSpeed() float64 {
	return c.statuses.Modify(status.StatMoveSpeed, c.baseSpeed)
}

// CanAct reports whether the combatant may act this tick: alive and
// not under hard crowd control.
func (c *Combatant) CanAct() bool {
	return !c.IsDead() && !c.statuses.Disabled()
}

// IsHostileTo reports whether c would attack other: one side is
// enemy-flagged while the other belongs to the player/ally side.
// Entities on the same side are never hostile.
func (c *Combatant) IsHostileTo(other Entity) bool {
	if other == nil || Entity(c) == other {
		return false
	}
	a := c.cats
	b := other.Categories()
	friendlyA := a.Has(constants.CategoryAlly) || a.Has(constants.CategoryPlayer)
	friendlyB := b.Has(constants.CategoryAlly) || b.Has(constants.CategoryPlayer)
	if a.Has(constants.CategoryEnemy) && friendlyB {
		return true
	}
	if friendlyA && b.Has(constants.CategoryEnemy) {
		return true
	}
	return false
}

// IsAlliedWith reports whether c and other fight on the same side.
// An entity is always allied with itself.
func (c *Combatant) IsAlliedWith(other Entity) bool {
	if other == nil {
		return false
	}
	if Entity(c) == other {
		return true
	}
	a := c.cats
	b := other.Categories()
	friendlyA := a.Has(constants.CategoryAlly) || a.Has(constants.CategoryPlayer)
	friendlyB := b.Has(constants.CategoryAlly) || b.Has(constants.CategoryPlayer)
	if friendlyA && friendlyB {
		return true
	}
	return a.Has(constants.CategoryEnemy) && b.Has(constants.CategoryEnemy)
}

// ReceiveDamage reduces HP by amount, clamped at zero. Dead
// combatants and non-positive amounts are ignored.
func (c *Combatant) ReceiveDamage(amount float64, kind constants.DamageKind) {
	if c.IsDead() || amount <= 0 {
		return
	}
	c.curHP -= amount
	if c.curHP < 0 {
		c.curHP = 0
	}
	if c.IsDead() {
		slog.Debug("combatant died", "name", c.name, "kind", kind)
	}
}

// ReceiveHeal raises HP by amount, clamped at max. Dead combatants
// cannot be healed.
func (c *Combatant) ReceiveHeal(amount float64) {
	if c.IsDead() || amount <= 0 {
		return
	}
	c.curHP += amount
	if c.curHP > c.maxHP {
		c.curHP = c.maxHP
	}
}
