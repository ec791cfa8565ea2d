package sim

import "fmt"

// Kind identifies a class of engine error so callers can branch on it with
// errors.Is against the exported Kind values below, independent of the
// human-readable message.
type Kind int

const (
	// KindAlreadyRegistered: a component was registered with a simulator
	// it was already registered with.
	KindAlreadyRegistered Kind = iota
	// KindNotRegistered: an operation referenced a component (or one of
	// its ports/links/timers) that hasn't been registered yet.
	KindNotRegistered
	// KindSimulatorMismatch: Connect was called with a link and port
	// whose owning components are registered with different simulators.
	KindSimulatorMismatch
	// KindAlreadyConnected: a unicast Link was bound to a second port.
	KindAlreadyConnected
	// KindNotConnected: Send was called on a unicast Link with no bound
	// port.
	KindNotConnected
	// KindInvalidLatency: a Link/BroadcastLink was constructed with a
	// latency <= 0.
	KindInvalidLatency
	// KindInvalidDelay: Timer.Set was called with a delay <= 0, or Send
	// was called with a negative extra_delay.
	KindInvalidDelay
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyRegistered:
		return "already registered"
	case KindNotRegistered:
		return "not registered"
	case KindSimulatorMismatch:
		return "simulator mismatch"
	case KindAlreadyConnected:
		return "already connected"
	case KindNotConnected:
		return "not connected"
	case KindInvalidLatency:
		return "invalid latency"
	case KindInvalidDelay:
		return "invalid delay"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type every exported engine operation returns
// on failure. Subject is the name of the component involved (for link
// errors, the link's owning component) where one is available.
type Error struct {
	Kind    Kind
	Subject string
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
}

// Is lets callers write errors.Is(err, &sim.Error{Kind: sim.KindNotConnected})
// without caring about Subject.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, subject string) *Error {
	return &Error{Kind: kind, Subject: subject}
}

// Sentinels for errors.Is(err, sim.ErrNotConnected) style comparisons
// without constructing a *Error by hand.
var (
	ErrAlreadyRegistered = &Error{Kind: KindAlreadyRegistered}
	ErrNotRegistered     = &Error{Kind: KindNotRegistered}
	ErrSimulatorMismatch = &Error{Kind: KindSimulatorMismatch}
	ErrAlreadyConnected  = &Error{Kind: KindAlreadyConnected}
	ErrNotConnected      = &Error{Kind: KindNotConnected}
	ErrInvalidLatency    = &Error{Kind: KindInvalidLatency}
	ErrInvalidDelay      = &Error{Kind: KindInvalidDelay}
)
