package effect

import (
	"github.com/VincentYChia/Game-1-sub006/internal/game/status"
	"github.com/VincentYChia/Game-1-sub006/internal/model"
)

// TargetResult records what one target received during an Execute
// call. A target found by the geometry appears here even when every
// amount is zero.
type TargetResult struct {
	Target   model.Entity
	Damage   float64
	Healing  float64
	Statuses []status.Kind
}

// Report is the outcome of one Execute call, consumed by logging and
// UI layers. TargetsHit preserves the geometry's application order.
type Report struct {
	TargetsHit []TargetResult
	Warnings   []string
}

// TotalDamage sums damage dealt across all targets.
func (r Report) TotalDamage() float64 {
	var sum float64
	for _, tr := range r.TargetsHit {
		sum += tr.Damage
	}
	return sum
}

// TotalHealing sums healing dealt across all targets.
func (r Report) TotalHealing() float64 {
	var sum float64
	for _, tr := range r.TargetsHit {
		sum += tr.Healing
	}
	return sum
}
