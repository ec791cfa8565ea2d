package sim

// SimulationTime measures ticks on the simulator's virtual clock. The unit
// of a tick is user-defined; the engine only requires that it be
// monotonically non-decreasing and addable.
type SimulationTime int64

// NoEvent is the sentinel value meaning "no event pending" for any quantity
// that would otherwise hold a SimulationTime: Port.PeekTime, Component's
// next wake, and Simulator.nextEvent all return NoEvent when empty.
const NoEvent SimulationTime = -1

// BatchLatency is the engine-chosen latency BatchLink currently applies to
// every send. A future parallel scheduler may widen this to give coarser
// time frontiers for metadata traffic; spec.md leaves that policy
// undocumented, so it stays a single named constant rather than a
// configurable field (see DESIGN.md, Open Question decisions).
const BatchLatency SimulationTime = 1

// before reports whether a is the earlier of two wake times, treating
// NoEvent as +Inf.
func before(a, b SimulationTime) bool {
	switch {
	case a == NoEvent:
		return false
	case b == NoEvent:
		return true
	default:
		return a < b
	}
}

// minWake returns the earlier of two wake times, treating NoEvent as +Inf.
func minWake(a, b SimulationTime) SimulationTime {
	if before(b, a) {
		return b
	}
	return a
}
