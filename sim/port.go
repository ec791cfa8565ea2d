package sim

// Port is a component's inbound event queue for messages of type M,
// priority-ordered by arrival time (spec.md §3/§4.c). A Port is
// reference-shared between the component that reads it and any Link bound
// to it for writing; both sides hold the same *Port[M].
type Port[M any] struct {
	owner *Base
	seq   uint64
	heap  eventHeap[M]
}

// NewPort creates a Port owned by owner and tracks it on owner. owner is
// typically c.Base for the concrete component c constructing this port.
func NewPort[M any](owner *Base) *Port[M] {
	p := &Port[M]{owner: owner}
	owner.Track(p)
	return p
}

// push inserts msg, dated at, in time order. Invoked by Link.Send/BroadcastLink.Send,
// never directly by user code.
func (p *Port[M]) push(msg M, at SimulationTime) {
	p.seq++
	p.heap.push(event[M]{msg: msg, time: at, seq: p.seq})
}

// PeekTime returns the earliest queued time, or NoEvent if the port is
// empty.
func (p *Port[M]) PeekTime() SimulationTime {
	return p.heap.peekTime()
}

// Len reports how many events are currently queued (for diagnostics; not
// part of the causal model).
func (p *Port[M]) Len() int { return p.heap.Len() }

// Peek returns the earliest queued (message, time) pair without removing
// it, for diagnostics or user code that wants to inspect what is about to
// arrive. ok is false if the port is empty.
func (p *Port[M]) Peek() (ev Event[M], ok bool) {
	e, ok := p.heap.peek()
	if !ok {
		return Event[M]{}, false
	}
	return Event[M]{Msg: e.msg, Time: e.time}, true
}

// drainAt pops every event at time `at`, in arrival order. Used by
// DrainPort; exposed read-side access for user code goes through the
// behavior-binding layer rather than this method, per spec.md §6.
func (p *Port[M]) drainAt(at SimulationTime) []M {
	return p.heap.drainAt(at)
}
