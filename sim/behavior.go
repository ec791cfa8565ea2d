package sim

// This file is the behavior-binding layer spec.md §4.f describes: since Go
// has no macros or structural reflection, the declarative
// startup/shutdown/on_message/on_timer block becomes a plain hand-written
// Tick method that calls these three helpers (see spec.md Design Notes,
// "reduced to a plain hand-written tick method... helper iterators that
// drain ports at sim.current_time and update next_wake as a side effect").
//
// The idiomatic shape for a concrete component's Tick:
//
//	func (c *Pinger) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
//		now := sim.BeginTick(c.Base)
//		switch {
//		case isStartup:
//			c.onStartup(s)
//		case isShutdown:
//			c.onShutdown(s)
//		default:
//			sim.DrainPort(c.Base, c.in, now, func(msg bool) { c.count++ })
//		}
//	}

// BeginTick resets a component's next_event to NoEvent (responsibility 1)
// and returns the simulator's current time captured into a local
// (responsibility 2), so that a tick's own sends — which cannot land at
// the current time, since every latency is >= 1 — never change which
// messages this tick drains even if some future extension made sends
// time-sensitive mid-tick.
func BeginTick(b *Base) SimulationTime {
	b.nextEvent = NoEvent
	return b.sim.CurrentTime()
}

// DrainPort delivers every message queued on p at time `at`, oldest first,
// to fn, then folds p's residual earliest time into b.nextEvent
// (responsibility 4). Call once per port per non-startup, non-shutdown
// tick.
func DrainPort[M any](b *Base, p *Port[M], at SimulationTime, fn func(M)) {
	for _, msg := range p.drainAt(at) {
		fn(msg)
	}
	b.nextEvent = minWake(b.nextEvent, p.PeekTime())
}

// DrainTimer delivers every message queued on t at time `at`, oldest
// first, to fn, then folds t's residual earliest time into b.nextEvent.
// Identical semantics to DrainPort, applied to a Timer.
func DrainTimer[M any](b *Base, t *Timer[M], at SimulationTime, fn func(M)) {
	for _, msg := range t.drainAt(at) {
		fn(msg)
	}
	b.nextEvent = minWake(b.nextEvent, t.PeekTime())
}
