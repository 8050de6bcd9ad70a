package status

import (
	"log/slog"

	"github.com/VincentYChia/Game-1-sub006/internal/constants"
)

// Behavior defines the fixed per-kind rules of a status effect:
// stacking, exclusions, immunities, stack scaling and the tick/expire
// hooks. Implementations live one per file and register in init().
type Behavior interface {
	Kind() Kind
	Stacking() StackRule
	MaxStacks() int
	// Excludes lists kinds that cannot coexist with this one. The
	// relation is enforced in both directions by the Manager.
	Excludes() []Kind
	// ImmuneCategories is the category mask that rejects application
	// outright (e.g. poison never lands on constructs).
	ImmuneCategories() constants.CategorySet
	// Disabling marks hard crowd control: the carrier cannot act.
	Disabling() bool
	// Beneficial marks buffs; used for context inference during parsing.
	Beneficial() bool
	// StackScaling maps the stack count to a tick magnitude factor.
	// Documented per kind; linear for burn/bleed, stacks^1.2 for poison.
	StackScaling(stacks int) float64

	// Lifecycle hooks receive the owning Manager's logger so behavior
	// logs honor the injected handler.
	OnApply(owner Owner, inst *Instance, log *slog.Logger)
	OnTick(owner Owner, inst *Instance, log *slog.Logger)
	OnExpire(owner Owner, inst *Instance, log *slog.Logger)
}

// StatModifierProvider is optionally implemented by behaviors that
// modify carrier stats while active (slow, freeze, haste).
type StatModifierProvider interface {
	StatModifiers(inst *Instance) []StatModifier
}

// behaviors maps kind → behavior, populated by init() in each
// behavior file.
var behaviors = map[Kind]Behavior{}

// RegisterBehavior registers a behavior by its kind.
// Called from init() in each behavior implementation file.
func RegisterBehavior(b Behavior) {
	behaviors[b.Kind()] = b
}

// BehaviorFor returns the registered behavior for kind.
func BehaviorFor(kind Kind) (Behavior, bool) {
	b, ok := behaviors[kind]
	return b, ok
}

// KnownKind resolves a lowercase kind name to a registered Kind.
func KnownKind(name string) (Kind, bool) {
	k := Kind(name)
	_, ok := behaviors[k]
	return k, ok
}

// IsBeneficial reports whether kind is a registered buff.
func IsBeneficial(kind Kind) bool {
	b, ok := behaviors[kind]
	return ok && b.Beneficial()
}

// excluded reports whether a and b are mutually exclusive in either
// direction of the registry relation.
func excluded(a, b Behavior) bool {
	for _, k := range a.Excludes() {
		if k == b.Kind() {
			return true
		}
	}
	for _, k := range b.Excludes() {
		if k == a.Kind() {
			return true
		}
	}
	return false
}
