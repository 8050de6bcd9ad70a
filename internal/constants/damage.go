package constants

// DamageKind classifies a damage application for resistances and
// context multipliers. Status ticks carry the kind of their source
// element (burn ticks are fire, bleed ticks are physical).
type DamageKind string

const (
	DamagePhysical  DamageKind = "physical"
	DamageFire      DamageKind = "fire"
	DamageIce       DamageKind = "ice"
	DamageLightning DamageKind = "lightning"
	DamagePoison    DamageKind = "poison"
	DamageHoly      DamageKind = "holy"
	DamageArcane    DamageKind = "arcane"
)

// Balance constants for context-dependent damage rules. Each rule has
// exactly one named constant so call paths cannot diverge.
const (
	// HolyUndeadMultiplier amplifies holy damage against undead targets.
	HolyUndeadMultiplier = 1.5

	// HolyAllyHealFraction is the fraction of base holy damage converted
	// to healing when the target is an ally of the source. Full amount.
	HolyAllyHealFraction = 1.0

	// PoisonImmuneMultiplier is poison effectiveness against constructs
	// and undead. Fully immune.
	PoisonImmuneMultiplier = 0.0

	// PoisonMechanicalMultiplier is poison effectiveness against
	// mechanical targets. Half effect.
	PoisonMechanicalMultiplier = 0.5

	// LightningMechanicalMultiplier amplifies lightning against
	// mechanical targets.
	LightningMechanicalMultiplier = 1.25

	// DefaultBaseDamage is the fallback when a damage tag is present but
	// no base_damage parameter was supplied or defaulted.
	DefaultBaseDamage = 10.0

	// DefaultBaseHealing is the fallback for the healing tag without a
	// base_healing parameter.
	DefaultBaseHealing = 15.0
)
