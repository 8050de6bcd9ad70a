package status

import "github.com/VincentYChia/Game-1-sub006/internal/constants"

// Kind identifies a status effect type.
type Kind string

const (
	KindBurn   Kind = "burn"
	KindBleed  Kind = "bleed"
	KindPoison Kind = "poison"
	KindFreeze Kind = "freeze"
	KindSlow   Kind = "slow"
	KindStun   Kind = "stun"
	KindRegen  Kind = "regen"
	KindHaste  Kind = "haste"
)

// StackRule governs how repeated applications of one kind combine.
type StackRule int8

const (
	// StackAdditive increments the stack count up to the kind's maximum
	// and extends duration to the longest remaining value.
	StackAdditive StackRule = iota
	// StackRefresh resets duration to the new value, stacks unchanged.
	StackRefresh
	// StackNone discards the old instance and starts a fresh one.
	StackNone
)

// ApplyParams carries the scaled parameters for one application.
// PerTick is the per-stack magnitude applied each tick interval.
type ApplyParams struct {
	Duration  float64
	PerTick   float64
	Interval  float64
	Magnitude float64
}

// Outcome reports what an Apply call did.
type Outcome int8

const (
	OutcomeApplied Outcome = iota
	OutcomeStacked
	OutcomeRefreshed
	OutcomeReplaced
	OutcomeImmune
	OutcomeUnknown
)

// Applied reports whether the target ended up carrying the status.
func (o Outcome) Applied() bool {
	return o == OutcomeApplied || o == OutcomeStacked || o == OutcomeRefreshed || o == OutcomeReplaced
}

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeStacked:
		return "stacked"
	case OutcomeRefreshed:
		return "refreshed"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeImmune:
		return "immune"
	default:
		return "unknown"
	}
}

// timeEpsilon absorbs float drift when summing fixed dt steps: fifty
// 0.1s updates must behave as exactly five seconds, firing the fifth
// tick of a 1s interval and expiring a 5s instance.
const timeEpsilon = 1e-9

// Instance is one active status effect on an entity. At most one
// instance per kind exists per entity; stacking mutates it in place.
type Instance struct {
	Kind      Kind
	Stacks    int
	Remaining float64 // seconds
	PerTick   float64 // per-stack magnitude per tick
	Interval  float64 // seconds between ticks, 0 = no ticking
	Magnitude float64 // kind-specific (slow fraction, haste bonus)

	acc float64 // sub-tick accumulator
}

// Expired reports whether the remaining duration has elapsed, within
// timeEpsilon of zero.
func (in *Instance) Expired() bool {
	return in.Remaining <= timeEpsilon
}

// Owner is the entity carrying a status collection. Implemented by
// model.Combatant; kept minimal so this package stays a leaf.
type Owner interface {
	Name() string
	Categories() constants.CategorySet
	IsDead() bool
	ReceiveDamage(amount float64, kind constants.DamageKind)
	ReceiveHeal(amount float64)
}
