package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// bleedBehavior deals periodic physical damage. Deep additive stacking
// (up to 5), linear scaling, no exclusions.
type bleedBehavior struct{}

func init() { RegisterBehavior(bleedBehavior{}) }

func (bleedBehavior) Kind() Kind                              { return KindBleed }
func (bleedBehavior) Stacking() StackRule                     { return StackAdditive }
func (bleedBehavior) MaxStacks() int                          { return 5 }
func (bleedBehavior) Excludes() []Kind                        { return nil }
func (bleedBehavior) ImmuneCategories() constants.CategorySet { return 0 }
func (bleedBehavior) Disabling() bool                         { return false }
func (bleedBehavior) Beneficial() bool                        { return false }
func (bleedBehavior) StackScaling(stacks int) float64         { return float64(stacks) }

func (bleedBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {}

func (b bleedBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {
	if owner.IsDead() {
		return
	}
	dmg := inst.PerTick * b.StackScaling(inst.Stacks)
	if dmg <= 0 {
		return
	}
	owner.ReceiveDamage(dmg, constants.DamagePhysical)
	log.Debug("bleed tick", "target", owner.Name(), "damage", dmg, "stacks", inst.Stacks)
}

func (bleedBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {}
