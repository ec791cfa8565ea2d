package sim

// Link is a unicast outbound handle bound to exactly one target Port,
// carrying a fixed minimum latency (spec.md §3/§4.d). It is owned by the
// sending component; the component reads its own current time through the
// owner back-reference to compute arrival times.
type Link[M any] struct {
	owner     *Base
	latency   SimulationTime
	target    *Port[M]
	connected bool
}

// NewLink creates a unicast Link with the given latency. latency must be
// > 0 (KindInvalidLatency otherwise); it is bound to a target Port later,
// via Simulator.Connect.
func NewLink[M any](owner *Base, latency SimulationTime) (*Link[M], error) {
	if latency <= 0 {
		return nil, newError(KindInvalidLatency, owner.name)
	}
	return &Link[M]{owner: owner, latency: latency}, nil
}

// Latency returns the link's base latency.
func (l *Link[M]) Latency() SimulationTime { return l.latency }

// Send enqueues msg on the bound target port, to arrive at
// current_time + latency + extraDelay. extraDelay must be >= 0
// (KindInvalidDelay otherwise); the link must already be connected
// (KindNotConnected otherwise).
func (l *Link[M]) Send(msg M, extraDelay SimulationTime) error {
	if extraDelay < 0 {
		return newError(KindInvalidDelay, l.owner.name)
	}
	if !l.connected {
		return newError(KindNotConnected, l.owner.name)
	}
	at := l.owner.sim.CurrentTime() + l.latency + extraDelay
	l.target.push(msg, at)
	return nil
}

// BroadcastLink is an outbound handle bound to zero or more target Ports,
// all of which receive the same event at the same time on Send (spec.md
// §4.d). Sending on an unconnected BroadcastLink is a silent no-op, unlike
// unicast Link — spec.md's Design Notes preserve this asymmetry verbatim.
type BroadcastLink[M any] struct {
	owner   *Base
	latency SimulationTime
	targets []*Port[M]
}

// NewBroadcastLink creates a BroadcastLink with the given latency and no
// bound targets. latency must be > 0 (KindInvalidLatency otherwise).
func NewBroadcastLink[M any](owner *Base, latency SimulationTime) (*BroadcastLink[M], error) {
	if latency <= 0 {
		return nil, newError(KindInvalidLatency, owner.name)
	}
	return &BroadcastLink[M]{owner: owner, latency: latency}, nil
}

// Latency returns the link's base latency.
func (l *BroadcastLink[M]) Latency() SimulationTime { return l.latency }

// Send enqueues msg, at the same arrival time, on every currently bound
// target port. With zero bound ports this is a no-op, not an error.
func (l *BroadcastLink[M]) Send(msg M, extraDelay SimulationTime) error {
	if extraDelay < 0 {
		return newError(KindInvalidDelay, l.owner.name)
	}
	if len(l.targets) == 0 {
		return nil
	}
	at := l.owner.sim.CurrentTime() + l.latency + extraDelay
	for _, p := range l.targets {
		p.push(msg, at)
	}
	return nil
}

// BatchLink is a unicast handle whose latency is chosen by the engine
// rather than the caller (currently BatchLatency; spec.md §4.d leaves the
// policy for a future parallel scheduler undocumented — see DESIGN.md).
type BatchLink[M any] struct {
	owner     *Base
	target    *Port[M]
	connected bool
}

// NewBatchLink creates a BatchLink with engine-chosen latency.
func NewBatchLink[M any](owner *Base) *BatchLink[M] {
	return &BatchLink[M]{owner: owner}
}

// Latency returns the engine-chosen latency this link currently applies.
func (l *BatchLink[M]) Latency() SimulationTime { return BatchLatency }

// Send enqueues msg on the bound target port, to arrive at
// current_time + BatchLatency + extraDelay.
func (l *BatchLink[M]) Send(msg M, extraDelay SimulationTime) error {
	if extraDelay < 0 {
		return newError(KindInvalidDelay, l.owner.name)
	}
	if !l.connected {
		return newError(KindNotConnected, l.owner.name)
	}
	at := l.owner.sim.CurrentTime() + BatchLatency + extraDelay
	l.target.push(msg, at)
	return nil
}
