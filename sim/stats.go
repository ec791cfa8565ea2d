package sim

import "fmt"

// Stats is a read-only snapshot of simulator progress, for diagnostics and
// the demo binary's end-of-run summary. It is purely observational — it
// does not feed back into scheduling — so it doesn't reintroduce the
// configuration/persistence surface spec.md's Non-goals exclude.
type Stats struct {
	CurrentTime    SimulationTime
	Components     int
	Ticks          uint64
	EventsInFlight int
	State          string
}

// Stats returns a snapshot of the simulator's current progress, including
// the number of events still queued across every component's ports and
// timers (SPEC_FULL.md §3: "events in flight across all ports/timers").
func (s *Simulator) Stats() Stats {
	inFlight := 0
	for _, c := range s.components {
		inFlight += c.base().pendingEvents()
	}
	return Stats{
		CurrentTime:    s.currentTime,
		Components:     len(s.components),
		Ticks:          s.ticks,
		EventsInFlight: inFlight,
		State:          s.state.String(),
	}
}

// String renders the simulator's state for test failure output and
// logging, e.g. "current_time=5 state=Running components=3".
func (s *Simulator) String() string {
	return fmt.Sprintf("current_time=%d state=%s components=%d",
		int64(s.currentTime), s.state, len(s.components))
}

// String renders a Stats snapshot for the demo binary's end-of-run summary,
// e.g. "current_time=5 ticks=7 components=3 events_in_flight=0 state=Terminated".
func (st Stats) String() string {
	return fmt.Sprintf("current_time=%d ticks=%d components=%d events_in_flight=%d state=%s",
		int64(st.CurrentTime), st.Ticks, st.Components, st.EventsInFlight, st.State)
}
