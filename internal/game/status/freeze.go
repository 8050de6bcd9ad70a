package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// freezeBehavior is hard crowd control: the carrier cannot act and
// cannot move while frozen. Does not stack; reapplying replaces the
// instance. Mutually exclusive with burn.
type freezeBehavior struct{}

func init() { RegisterBehavior(freezeBehavior{}) }

func (freezeBehavior) Kind() Kind                              { return KindFreeze }
func (freezeBehavior) Stacking() StackRule                     { return StackNone }
func (freezeBehavior) MaxStacks() int                          { return 1 }
func (freezeBehavior) Excludes() []Kind                        { return []Kind{KindBurn} }
func (freezeBehavior) ImmuneCategories() constants.CategorySet { return 0 }
func (freezeBehavior) Disabling() bool                         { return true }
func (freezeBehavior) Beneficial() bool                        { return false }
func (freezeBehavior) StackScaling(stacks int) float64         { return 1 }

func (freezeBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("freeze applied", "target", owner.Name(), "duration", inst.Remaining)
}

func (freezeBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {}

func (freezeBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("freeze expired", "target", owner.Name())
}

// StatModifiers pins movement speed to zero while frozen.
func (freezeBehavior) StatModifiers(inst *Instance) []StatModifier {
	return []StatModifier{{Stat: StatMoveSpeed, Type: StatModMul, Value: 0}}
}
