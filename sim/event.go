package sim

// event is a (message, time) pair queued on a Port or Timer. seq is a
// per-heap monotonic sequence number that breaks ties between events with
// equal time, giving FIFO order among simultaneous arrivals at one port
// (spec.md §5.2: "heap stability must preserve insertion order").
type event[M any] struct {
	msg  M
	time SimulationTime
	seq  uint64
}

// Event is the read-only view of a queued (message, time) pair handed to
// user code by Port.Peek, e.g. for diagnostics. The engine's internal
// event[M] adds a sequence number invisible to callers.
type Event[M any] struct {
	Msg  M
	Time SimulationTime
}
