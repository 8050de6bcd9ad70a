package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// hasteBehavior raises movement speed by the instance magnitude
// (0.25 → 25% faster). Refresh stacking; a buff.
type hasteBehavior struct{}

func init() { RegisterBehavior(hasteBehavior{}) }

func (hasteBehavior) Kind() Kind                              { return KindHaste }
func (hasteBehavior) Stacking() StackRule                     { return StackRefresh }
func (hasteBehavior) MaxStacks() int                          { return 1 }
func (hasteBehavior) Excludes() []Kind                        { return nil }
func (hasteBehavior) ImmuneCategories() constants.CategorySet { return 0 }
func (hasteBehavior) Disabling() bool                         { return false }
func (hasteBehavior) Beneficial() bool                        { return true }
func (hasteBehavior) StackScaling(stacks int) float64         { return 1 }

func (hasteBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("haste applied", "target", owner.Name(), "magnitude", inst.Magnitude)
}

func (hasteBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {}

func (hasteBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {}

// StatModifiers scales movement speed by (1 + magnitude) while active.
func (hasteBehavior) StatModifiers(inst *Instance) []StatModifier {
	return []StatModifier{{Stat: StatMoveSpeed, Type: StatModMul, Value: 1 + inst.Magnitude}}
}
