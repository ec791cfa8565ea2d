package sim

import (
	"github.com/sirupsen/logrus"
)

// simState is the Simulator's lifecycle state (spec.md §4's state machine):
// Building -> Running -> Terminated. Register and Connect are only valid in
// Building; Run transitions Building -> Running, then -> Terminated on
// return.
type simState int

const (
	stateBuilding simState = iota
	stateRunning
	stateTerminated
)

func (s simState) String() string {
	switch s {
	case stateBuilding:
		return "Building"
	case stateRunning:
		return "Running"
	case stateTerminated:
		return "Terminated"
	default:
		return "unknown"
	}
}

// Simulator owns the virtual clock, the registered component set, and the
// quit condition, and drives the per-tick scheduling loop (spec.md §4.a).
type Simulator struct {
	currentTime   SimulationTime
	nextEvent     SimulationTime
	quitTime      SimulationTime
	quitRequested bool
	state         simState
	components    []Component
	ticks         uint64
	log           *logrus.Logger
}

// NewSimulator creates a Simulator. quitTime == 0 means "run until
// quiescent"; otherwise the run loop stops once current_time > quitTime.
func NewSimulator(quitTime SimulationTime) *Simulator {
	return &Simulator{
		nextEvent: NoEvent,
		quitTime:  quitTime,
		state:     stateBuilding,
		log:       newDefaultLogger(),
	}
}

// SetLogger overrides the simulator's logger (default: a logrus.Logger with
// timestamps disabled, since virtual time has no bearing on wall time).
func (s *Simulator) SetLogger(l *logrus.Logger) {
	s.log = l
}

// CurrentTime returns the simulator's current virtual time.
func (s *Simulator) CurrentTime() SimulationTime {
	return s.currentTime
}

// Register appends component to the registered sequence and wires its
// back-reference to this simulator. Components must be registered exactly
// once, before Run; registering the same component twice returns
// KindAlreadyRegistered, and registering after Run has started returns
// KindNotRegistered (the Building-only precondition spec.md's state machine
// describes).
func (s *Simulator) Register(c Component) error {
	b := c.base()
	if s.state != stateBuilding {
		return newError(KindNotRegistered, b.name)
	}
	if b.id != unregistered {
		return newError(KindAlreadyRegistered, b.name)
	}
	b.sim = s
	b.id = componentID(len(s.components))
	s.components = append(s.components, c)
	s.log.WithFields(logrus.Fields{
		"component": b.name,
		"uid":       b.uid.String(),
		"id":        int(b.id),
	}).Info("component registered")
	return nil
}

func validateEndpoint(s *Simulator, b *Base) error {
	if b.sim == nil {
		return newError(KindNotRegistered, b.name)
	}
	if b.sim != s {
		return newError(KindSimulatorMismatch, b.name)
	}
	return nil
}

// Connect binds a unicast Link to a Port. Both owning components must
// already be registered with s. Rebinding an already-connected Link
// returns KindAlreadyConnected.
func Connect[M any](s *Simulator, l *Link[M], p *Port[M]) error {
	if err := validateEndpoint(s, l.owner); err != nil {
		return err
	}
	if err := validateEndpoint(s, p.owner); err != nil {
		return err
	}
	if l.connected {
		return newError(KindAlreadyConnected, l.owner.name)
	}
	l.target = p
	l.connected = true
	s.log.WithFields(logrus.Fields{
		"from": l.owner.name,
		"to":   p.owner.name,
	}).Info("link connected")
	return nil
}

// ConnectBroadcast appends p to the BroadcastLink's target list. Unlike
// Connect, this never fails with KindAlreadyConnected: a BroadcastLink's
// target count only grows during Building.
func ConnectBroadcast[M any](s *Simulator, l *BroadcastLink[M], p *Port[M]) error {
	if err := validateEndpoint(s, l.owner); err != nil {
		return err
	}
	if err := validateEndpoint(s, p.owner); err != nil {
		return err
	}
	l.targets = append(l.targets, p)
	s.log.WithFields(logrus.Fields{
		"from":    l.owner.name,
		"to":      p.owner.name,
		"targets": len(l.targets),
	}).Info("broadcast link connected")
	return nil
}

// ConnectBatch binds a BatchLink to a Port, same semantics as Connect.
func ConnectBatch[M any](s *Simulator, l *BatchLink[M], p *Port[M]) error {
	if err := validateEndpoint(s, l.owner); err != nil {
		return err
	}
	if err := validateEndpoint(s, p.owner); err != nil {
		return err
	}
	if l.connected {
		return newError(KindAlreadyConnected, l.owner.name)
	}
	l.target = p
	l.connected = true
	s.log.WithFields(logrus.Fields{
		"from": l.owner.name,
		"to":   p.owner.name,
	}).Info("batch link connected")
	return nil
}

// Quit requests that the run loop stop after the tick currently in
// progress completes. Safe to call from within a component's Tick.
func (s *Simulator) Quit() {
	s.quitRequested = true
}

// keepGoing is the run loop's continuation predicate (spec.md §4.a).
func (s *Simulator) keepGoing() bool {
	if s.quitRequested {
		return false
	}
	if s.nextEvent == NoEvent {
		return false
	}
	if s.quitTime != 0 && s.quitTime < s.currentTime {
		return false
	}
	return true
}

func (s *Simulator) recomputeNextEvent() {
	next := NoEvent
	for _, c := range s.components {
		next = minWake(next, c.NextWake())
	}
	s.nextEvent = next
}

// Run fires every component's startup hook, drives ticks in time order
// until quiescent (or quit_requested, or quit_time is exceeded), fires
// every component's shutdown hook, then returns. See spec.md §4.a for the
// reference algorithm this follows exactly.
func (s *Simulator) Run() {
	s.state = stateRunning
	s.log.WithField("components", len(s.components)).Info("simulation starting")

	for _, c := range s.components {
		c.Tick(s, true, false)
	}
	for _, c := range s.components {
		c.base().recomputeNextWake()
	}
	s.recomputeNextEvent()

	for s.keepGoing() {
		s.currentTime = s.nextEvent
		for _, c := range s.components {
			b := c.base()
			b.recomputeNextWake()
			if b.nextEvent == s.currentTime {
				s.ticks++
				if s.log.IsLevelEnabled(logrus.DebugLevel) {
					s.log.WithFields(logrus.Fields{
						"time":      int64(s.currentTime),
						"component": b.name,
					}).Debug("ticking component")
				}
				c.Tick(s, false, false)
			}
		}
		s.recomputeNextEvent()
	}

	for _, c := range s.components {
		c.Tick(s, false, true)
	}
	s.state = stateTerminated
	s.log.WithFields(logrus.Fields{
		"final_time": int64(s.currentTime),
		"ticks":      s.ticks,
	}).Info("simulation terminated")
}
