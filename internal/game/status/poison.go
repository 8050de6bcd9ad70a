package status

import (
	"log/slog"
	"math"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// poisonBehavior deals periodic poison damage with a superlinear
// stack curve: tick magnitude = perTick × stacks^1.2. Constructs and
// undead are fully immune; application is rejected before an instance
// is ever created.
type poisonBehavior struct{}

func init() { RegisterBehavior(poisonBehavior{}) }

func (poisonBehavior) Kind() Kind          { return KindPoison }
func (poisonBehavior) Stacking() StackRule { return StackAdditive }
func (poisonBehavior) MaxStacks() int      { return 3 }
func (poisonBehavior) Excludes() []Kind    { return nil }

func (poisonBehavior) ImmuneCategories() constants.CategorySet {
	return constants.NewCategorySet(constants.CategoryConstruct, constants.CategoryUndead)
}

func (poisonBehavior) Disabling() bool  { return false }
func (poisonBehavior) Beneficial() bool { return false }

// StackScaling uses stacks^1.2 so later stacks hit harder than linear.
func (poisonBehavior) StackScaling(stacks int) float64 {
	return math.Pow(float64(stacks), 1.2)
}

func (poisonBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("poison applied", "target", owner.Name(), "perTick", inst.PerTick)
}

func (b poisonBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {
	if owner.IsDead() {
		return
	}
	dmg := inst.PerTick * b.StackScaling(inst.Stacks)
	if dmg <= 0 {
		return
	}
	owner.ReceiveDamage(dmg, constants.DamagePoison)
	log.Debug("poison tick", "target", owner.Name(), "damage", dmg, "stacks", inst.Stacks)
}

func (poisonBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {}
