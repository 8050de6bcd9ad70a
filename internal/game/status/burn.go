package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// burnBehavior deals periodic fire damage. Additive stacking up to 3;
// tick magnitude scales linearly with stack count. Burn and freeze are
// mutually exclusive: whichever lands later displaces the other.
type burnBehavior struct{}

func init() { RegisterBehavior(burnBehavior{}) }

func (burnBehavior) Kind() Kind                                  { return KindBurn }
func (burnBehavior) Stacking() StackRule                         { return StackAdditive }
func (burnBehavior) MaxStacks() int                              { return 3 }
func (burnBehavior) Excludes() []Kind                            { return []Kind{KindFreeze} }
func (burnBehavior) ImmuneCategories() constants.CategorySet     { return 0 }
func (burnBehavior) Disabling() bool                             { return false }
func (burnBehavior) Beneficial() bool                            { return false }
func (burnBehavior) StackScaling(stacks int) float64             { return float64(stacks) }

func (burnBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("burn applied", "target", owner.Name(), "perTick", inst.PerTick, "duration", inst.Remaining)
}

func (b burnBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {
	if owner.IsDead() {
		return
	}
	dmg := inst.PerTick * b.StackScaling(inst.Stacks)
	if dmg <= 0 {
		return
	}
	owner.ReceiveDamage(dmg, constants.DamageFire)
	log.Debug("burn tick", "target", owner.Name(), "damage", dmg, "stacks", inst.Stacks)
}

func (burnBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("burn expired", "target", owner.Name())
}
