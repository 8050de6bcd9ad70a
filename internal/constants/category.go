package constants

import "strings"

// Category is a single entity classification bit. Categories compose:
// an undead enemy is Enemy|Undead, a player-built turret is Ally|Construct.
type Category uint16

const (
	CategoryEnemy Category = 1 << iota
	CategoryAlly
	CategorySelf
	CategoryConstruct
	CategoryUndead
	CategoryMechanical
	CategoryPlayer
)

var categoryNames = map[Category]string{
	CategoryEnemy:      "enemy",
	CategoryAlly:       "ally",
	CategorySelf:       "self",
	CategoryConstruct:  "construct",
	CategoryUndead:     "undead",
	CategoryMechanical: "mechanical",
	CategoryPlayer:     "player",
}

// CategoryByName resolves a lowercase category name.
func CategoryByName(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == strings.ToLower(name) {
			return c, true
		}
	}
	return 0, false
}

// CategorySet is a bitmask of composed categories.
type CategorySet uint16

// NewCategorySet combines categories into a set.
func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s |= CategorySet(c)
	}
	return s
}

// Has reports whether the set contains c.
func (s CategorySet) Has(c Category) bool {
	return s&CategorySet(c) != 0
}

// HasAny reports whether the set intersects other.
func (s CategorySet) HasAny(other CategorySet) bool {
	return s&other != 0
}

// With returns a copy of the set with c added.
func (s CategorySet) With(c Category) CategorySet {
	return s | CategorySet(c)
}

// String returns a pipe-joined list of category names.
func (s CategorySet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for c := CategoryEnemy; c <= CategoryPlayer; c <<= 1 {
		if s.Has(c) {
			parts = append(parts, categoryNames[c])
		}
	}
	return strings.Join(parts, "|")
}
