package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// slowBehavior reduces movement speed by the instance magnitude
// (0.3 → 30% slower). Reapplication refreshes duration without
// stacking. Speed is restored when the modifier drops on expiry.
type slowBehavior struct{}

func init() { RegisterBehavior(slowBehavior{}) }

func (slowBehavior) Kind() Kind                              { return KindSlow }
func (slowBehavior) Stacking() StackRule                     { return StackRefresh }
func (slowBehavior) MaxStacks() int                          { return 1 }
func (slowBehavior) Excludes() []Kind                        { return nil }
func (slowBehavior) ImmuneCategories() constants.CategorySet { return 0 }
func (slowBehavior) Disabling() bool                         { return false }
func (slowBehavior) Beneficial() bool                        { return false }
func (slowBehavior) StackScaling(stacks int) float64         { return 1 }

func (slowBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("slow applied", "target", owner.Name(), "magnitude", inst.Magnitude)
}

func (slowBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {}

func (slowBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("slow expired, movement speed restored", "target", owner.Name())
}

// StatModifiers scales movement speed by (1 - magnitude) while active.
func (slowBehavior) StatModifiers(inst *Instance) []StatModifier {
	factor := 1 - inst.Magnitude
	if factor < 0 {
		factor = 0
	}
	return []StatModifier{{Stat: StatMoveSpeed, Type: StatModMul, Value: factor}}
}
