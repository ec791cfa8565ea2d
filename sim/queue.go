package sim

import "container/heap"

// eventHeap is the priority-ordered event store backing both Port and
// Timer: a min-heap keyed by time, with seq as tiebreaker. Grounded on
// container/heap, the same vehicle the retrieved corpus's own simulation
// code (inference-sim's ClusterEventQueue) uses for an identical
// timestamp-ordered event store — see DESIGN.md.
type eventHeap[M any] []event[M]

func (h eventHeap[M]) Len() int { return len(h) }

func (h eventHeap[M]) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap[M]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap[M]) Push(x any) {
	*h = append(*h, x.(event[M]))
}

func (h *eventHeap[M]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// peekTime returns the earliest queued time, or NoEvent if the heap is
// empty.
func (h eventHeap[M]) peekTime() SimulationTime {
	if len(h) == 0 {
		return NoEvent
	}
	return h[0].time
}

// push inserts e in time order.
func (h *eventHeap[M]) push(e event[M]) {
	heap.Push(h, e)
}

// peek returns the earliest queued event without removing it.
func (h eventHeap[M]) peek() (event[M], bool) {
	if len(h) == 0 {
		return event[M]{}, false
	}
	return h[0], true
}

// drainAt pops and returns, in heap order, every event whose time equals
// at. Pre: no pending event has time < at (spec.md §4.c); violating this
// indicates an engine bug, not a caller mistake, so it panics rather than
// returning an error (spec.md §7).
func (h *eventHeap[M]) drainAt(at SimulationTime) []M {
	var out []M
	for h.Len() > 0 {
		t := (*h)[0].time
		if t < at {
			panic("desim: port holds an event dated before the dispatch time")
		}
		if t != at {
			break
		}
		e := heap.Pop(h).(event[M])
		out = append(out, e.msg)
	}
	return out
}
