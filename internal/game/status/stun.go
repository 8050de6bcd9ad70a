package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// stunBehavior is short hard crowd control: the carrier cannot act.
// Does not stack and carries no tick or stat modifier.
type stunBehavior struct{}

func init() { RegisterBehavior(stunBehavior{}) }

func (stunBehavior) Kind() Kind                              { return KindStun }
func (stunBehavior) Stacking() StackRule                     { return StackNone }
func (stunBehavior) MaxStacks() int                          { return 1 }
func (stunBehavior) Excludes() []Kind                        { return nil }
func (stunBehavior) ImmuneCategories() constants.CategorySet { return 0 }
func (stunBehavior) Disabling() bool                         { return true }
func (stunBehavior) Beneficial() bool                        { return false }
func (stunBehavior) StackScaling(stacks int) float64         { return 1 }

func (stunBehavior) OnApply(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("stun applied", "target", owner.Name(), "duration", inst.Remaining)
}

func (stunBehavior) OnTick(owner Owner, inst *Instance, log *slog.Logger) {}

func (stunBehavior) OnExpire(owner Owner, inst *Instance, log *slog.Logger) {
	log.Debug("stun expired", "target", owner.Name())
}
