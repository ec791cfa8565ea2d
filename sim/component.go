package sim

import "github.com/rs/xid"

// componentID is the dense identifier the Simulator assigns a component at
// registration: its index in registration order. Ports/links/timers never
// need it directly — they hold a pointer to the owning Base instead. The
// Simulator uses it to detect double registration and reports it in the
// registration log entry.
type componentID int

const unregistered componentID = -1

// Waker is anything that can report the earliest time it next needs
// attention, and how many events it currently holds: a Port or a Timer.
// Component.NextWake is computed as the minimum PeekTime across every
// Waker a component has registered with its Base — the explicit,
// non-reflective replacement for structural field discovery that spec.md's
// Design Notes call for. Len backs Simulator.Stats' events-in-flight count.
type Waker interface {
	PeekTime() SimulationTime
	Len() int
}

// Component is the polymorphic capability every registered entity
// implements. Concrete components embed *Base, which supplies NextWake and
// the unexported base() method; they implement Tick themselves (directly,
// or via the behavior-binding helpers in behavior.go).
type Component interface {
	// Tick runs one dispatch for this component. isStartup and
	// isShutdown are mutually exclusive with each other and with a
	// "normal" tick; the Simulator guarantees Tick is called with
	// isStartup true exactly once before any other tick, and isShutdown
	// true exactly once after the last other tick (spec.md §8, "laws").
	Tick(sim *Simulator, isStartup, isShutdown bool)

	// NextWake returns the earliest SimulationTime at which this
	// component next needs to be ticked, or NoEvent if it has nothing
	// pending.
	NextWake() SimulationTime

	// base is unexported so Component can only be implemented by types
	// that embed Base — the sealed-interface idiom that keeps the
	// Simulator's registration bookkeeping from leaking into the public
	// API.
	base() *Base
}

// Base is the component base described in spec.md §4.b: it owns the
// back-reference to the owning Simulator, the component's own next_event,
// and the set of Wakers (ports/timers) that feed NextWake. Concrete
// component types embed *Base, set up in their constructor, mirroring the
// teacher's *sim.TickingComponent embedding.
type Base struct {
	name      string
	uid       xid.ID
	sim       *Simulator
	id        componentID
	nextEvent SimulationTime
	wakers    []Waker
}

// NewBase creates a component base with the given diagnostic name. Ports
// and timers created on it with NewPort and NewTimer are tracked
// automatically.
func NewBase(name string) *Base {
	return &Base{
		name:      name,
		uid:       xid.New(),
		id:        unregistered,
		nextEvent: NoEvent,
	}
}

// Name returns the component's diagnostic name.
func (b *Base) Name() string { return b.name }

// UID returns the component's registration-independent debug identifier.
func (b *Base) UID() string { return b.uid.String() }

// Track registers one or more Wakers (Ports or Timers) this component owns
// so NextWake and the behavior-binding helpers can fold their PeekTime into
// the component's next_event — the field walk spec.md's source language
// performed via reflection/macros. NewPort and NewTimer call it for every
// port and timer they create; a Waker tracked twice is counted twice.
func (b *Base) Track(w ...Waker) {
	b.wakers = append(b.wakers, w...)
}

// NextWake returns the minimum PeekTime across every tracked Waker, or
// NoEvent if none are pending. Most concrete components never call this
// directly: it satisfies Component.NextWake by promotion through
// embedding, and behavior.go's drain helpers keep b.nextEvent in sync with
// it incrementally during a tick.
func (b *Base) NextWake() SimulationTime {
	next := NoEvent
	for _, w := range b.wakers {
		next = minWake(next, w.PeekTime())
	}
	return next
}

// Simulator returns the simulator this component is registered with, or
// nil before registration.
func (b *Base) Simulator() *Simulator { return b.sim }

func (b *Base) base() *Base { return b }

// recomputeNextWake folds every tracked Waker's PeekTime into b.nextEvent.
// Called by the Simulator once per tick step, before checking whether this
// component is due (spec.md §4.a run loop: "recompute c.next_event from
// its ports/timers").
func (b *Base) recomputeNextWake() {
	next := NoEvent
	for _, w := range b.wakers {
		next = minWake(next, w.PeekTime())
	}
	b.nextEvent = next
}

// pendingEvents sums Len across every Waker this component has registered,
// for Simulator.Stats' events-in-flight count.
func (b *Base) pendingEvents() int {
	n := 0
	for _, w := range b.wakers {
		n += w.Len()
	}
	return n
}
