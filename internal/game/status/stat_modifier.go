package status

// StatModType defines how a stat modifier is applied.
type StatModType int8

const (
	StatModAdd StatModType = iota // additive bonus
	StatModMul                    // multiplicative factor
)

// Stat names understood by the engine's combatants.
const (
	StatMoveSpeed = "move_speed"
)

// StatModifier is a single stat modification contributed by an active
// status instance. Multiple modifiers can stack on the same stat.
type StatModifier struct {
	Stat  string
	Type  StatModType
	Value float64
}
