package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// regenBehavior heals the carrier each tick. Additive stacking up to 3
// with linear scaling; a buff for context inference purposes.
type regenBehavior struct{}

func init() { RegisterBehavior(regenBehavior{}) }

func (regenBehavior) Kind() Kind                              { return KindRegen }
func (regenBehavior) Stacking() StackRule                     { return StackAdditive }
func (regenBehavior) MaxStacks() int                          { return 3 }
func (regenBehavior) Excludes() []Kind                        { return nil }
func (regenBehavior) ImmuneCategories() constants.CategorySet { return 0 }
func (regenBehavior) Disabling() bool                         { return false }
func (regenBehavior) Beneficial() bool                        { return true }
func (regenBehavior) StackScaling(stacks int) float64         { return float64(stacks) }

func (regenBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {}

func (b regenBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {
	if owner.IsDead() {
		return
	}
	heal := inst.PerTick * b.StackScaling(inst.Stacks)
	if heal <= 0 {
		return
	}
	owner.ReceiveHeal(heal)
	log.Debug("regen tick", "target", owner.Name(), "heal", heal, "stacks", inst.Stacks)
}

func (regenBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {}
