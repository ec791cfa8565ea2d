package sim

// Timer is a self-scheduled event queue owned by a component: structurally
// a Port combined with a zero-latency self-link (spec.md §3/§4.e). Timer.Set
// is the Link.Send equivalent; there is no separate connect step since the
// target is always the owning component.
type Timer[M any] struct {
	owner *Base
	seq   uint64
	heap  eventHeap[M]
}

// NewTimer creates a Timer owned by owner.
func NewTimer[M any](owner *Base) *Timer[M] {
	t := &Timer[M]{owner: owner}
	owner.Track(t)
	return t
}

// Set schedules msg to fire after delay ticks from the simulator's current
// time. delay must be > 0 (KindInvalidDelay otherwise), matching the
// latency floor every Link enforces.
func (t *Timer[M]) Set(msg M, delay SimulationTime) error {
	if delay <= 0 {
		return newError(KindInvalidDelay, t.owner.name)
	}
	now := t.owner.sim.CurrentTime()
	t.seq++
	t.heap.push(event[M]{msg: msg, time: now + delay, seq: t.seq})
	return nil
}

// PeekTime returns the earliest queued time, or NoEvent if empty.
func (t *Timer[M]) PeekTime() SimulationTime {
	return t.heap.peekTime()
}

// Len reports how many timer events are currently queued.
func (t *Timer[M]) Len() int { return t.heap.Len() }

func (t *Timer[M]) drainAt(at SimulationTime) []M {
	return t.heap.drainAt(at)
}
