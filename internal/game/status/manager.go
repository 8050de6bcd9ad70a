package status

import (
	"log/slog"
	"sync"
)

// Manager tracks the active status instances of one entity. Each
// entity owns exactly one Manager; instances never outlive it.
//
// Thread-safe: all methods are protected by sync.Mutex so a host loop
// parallelized across entities stays correct. Within one simulation
// step the engine calls it single-threaded.
type Manager struct {
	mu     sync.Mutex
	owner  Owner
	log    *slog.Logger
	active []*Instance

	// Stat modifiers aggregated from all active instances.
	modifiers []StatModifier
}

// NewManager creates an empty Manager for owner. A nil logger falls
// back to slog.Default().
func NewManager(owner Owner, log *slog.Logger) *Manager {
	if owner == nil {
		panic("status: nil owner passed to NewManager")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		owner:  owner,
		log:    log,
		active: make([]*Instance, 0, len(behaviors)),
	}
}

// Apply applies one status application with already-scaled parameters.
//
// Rules, in order:
//  1. Unknown kinds are rejected.
//  2. The kind's immunity category mask rejects the whole application
//     before any instance is created.
//  3. Mutual exclusion: any active instance conflicting with the new
//     kind (in either direction of the registry relation) is displaced
//     first — the newcomer always survives.
//  4. Stacking against an existing instance of the same kind:
//     Additive → stacks+1 capped at MaxStacks, duration = max(old, new);
//     Refresh  → duration = new, stacks unchanged;
//     None     → old instance replaced by a fresh one.
func (m *Manager) Apply(kind Kind, p ApplyParams) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := behaviors[kind]
	if !ok {
		m.log.Warn("unknown status kind", "kind", kind, "target", m.owner.Name())
		return OutcomeUnknown
	}

	if m.owner.Categories().HasAny(b.ImmuneCategories()) {
		m.log.Debug("status rejected, target immune",
			"kind", kind,
			"target", m.owner.Name(),
			"categories", m.owner.Categories())
		return OutcomeImmune
	}

	// Displace mutually-exclusive instances before inserting.
	n := 0
	for _, inst := range m.active {
		other, _ := behaviors[inst.Kind]
		if other != nil && excluded(b, other) {
			other.OnExpire(m.owner, inst, m.log)
			m.log.Debug("status displaced by exclusion",
				"removed", inst.Kind,
				"by", kind,
				"target", m.owner.Name())
			continue
		}
		m.active[n] = inst
		n++
	}
	m.active = m.active[:n]

	outcome := m.insert(b, p)
	m.rebuildModifiers()
	return outcome
}

// insert handles stacking against an existing instance of the same
// kind, or creates a new one. Must be called with mu held.
func (m *Manager) insert(b Behavior, p ApplyParams) Outcome {
	for i, inst := range m.active {
		if inst.Kind != b.Kind() {
			continue
		}
		switch b.Stacking() {
		case StackAdditive:
			if inst.Stacks < b.MaxStacks() {
				inst.Stacks++
			}
			if p.Duration > inst.Remaining {
				inst.Remaining = p.Duration
			}
			return OutcomeStacked
		case StackRefresh:
			inst.Remaining = p.Duration
			inst.Magnitude = p.Magnitude
			return OutcomeRefreshed
		default: // StackNone
			b.OnExpire(m.owner, inst, m.log)
			fresh := newInstance(b.Kind(), p)
			m.active[i] = fresh
			b.OnApply(m.owner, fresh, m.log)
			return OutcomeReplaced
		}
	}

	inst := newInstance(b.Kind(), p)
	m.active = append(m.active, inst)
	b.OnApply(m.owner, inst, m.log)
	return OutcomeApplied
}

func newInstance(kind Kind, p ApplyParams) *Instance {
	return &Instance{
		Kind:      kind,
		Stacks:    1,
		Remaining: p.Duration,
		PerTick:   p.PerTick,
		Interval:  p.Interval,
		Magnitude: p.Magnitude,
	}
}

// Update advances all active instances by dt seconds. Tick intervals
// are tracked with a sub-tick accumulator: a large dt spanning several
// intervals produces several tick applications, and many small dt
// values summing to one interval produce exactly one. Expired
// instances run their removal hook and are deleted.
func (m *Manager) Update(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := false
	n := 0
	for _, inst := range m.active {
		b := behaviors[inst.Kind]

		if inst.Interval > 0 {
			inst.acc += dt
			for inst.acc >= inst.Interval-timeEpsilon {
				inst.acc -= inst.Interval
				b.OnTick(m.owner, inst, m.log)
			}
		}

		inst.Remaining -= dt
		if inst.Expired() {
			b.OnExpire(m.owner, inst, m.log)
			changed = true
			continue
		}
		m.active[n] = inst
		n++
	}
	m.active = m.active[:n]

	if changed {
		m.rebuildModifiers()
	}
}

// Remove dispels all instances of kind, running removal hooks.
func (m *Manager) Remove(kind Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, inst := range m.active {
		if inst.Kind == kind {
			if b, ok := behaviors[kind]; ok {
				b.OnExpire(m.owner, inst, m.log)
			}
			continue
		}
		m.active[n] = inst
		n++
	}
	m.active = m.active[:n]
	m.rebuildModifiers()
}

// Has reports whether an instance of kind is active.
func (m *Manager) Has(kind Kind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(kind) != nil
}

// Stacks returns the stack count of kind, 0 if absent.
func (m *Manager) Stacks(kind Kind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inst := m.find(kind); inst != nil {
		return inst.Stacks
	}
	return 0
}

// Remaining returns the remaining duration of kind in seconds,
// 0 if absent.
func (m *Manager) Remaining(kind Kind) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inst := m.find(kind); inst != nil {
		return inst.Remaining
	}
	return 0
}

// Active returns a snapshot copy of all active instances.
func (m *Manager) Active() []Instance {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Instance, len(m.active))
	for i, inst := range m.active {
		out[i] = *inst
	}
	return out
}

// Count returns the number of active instances.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

// Disabled reports whether any active instance is hard crowd control.
func (m *Manager) Disabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inst := range m.active {
		if b, ok := behaviors[inst.Kind]; ok && b.Disabling() {
			return true
		}
	}
	return false
}

// Modify applies the aggregated stat modifiers for stat to base:
// additive bonuses are summed first, then multiplicative factors are
// applied to the total.
func (m *Manager) Modify(stat string, base float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	value := base
	for _, mod := range m.modifiers {
		if mod.Stat == stat && mod.Type == StatModAdd {
			value += mod.Value
		}
	}
	for _, mod := range m.modifiers {
		if mod.Stat == stat && mod.Type == StatModMul {
			value *= mod.Value
		}
	}
	return value
}

// find returns the active instance of kind. Must be called with mu held.
func (m *Manager) find(kind Kind) *Instance {
	for _, inst := range m.active {
		if inst.Kind == kind {
			return inst
		}
	}
	return nil
}

// rebuildModifiers recollects stat modifiers from all active
// instances. Must be called with mu held.
func (m *Manager) rebuildModifiers() {
	m.modifiers = m.modifiers[:0]
	for _, inst := range m.active {
		b, ok := behaviors[inst.Kind]
		if !ok {
			continue
		}
		if provider, ok := b.(StatModifierProvider); ok {
			m.modifiers = append(m.modifiers, provider.StatModifiers(inst)...)
		}
	}
}
