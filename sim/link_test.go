package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLinkRejectsNonPositiveLatency(t *testing.T) {
	c := newProbeComponent("sender")
	_, err := NewLink[int](c.Base, 0)
	require.ErrorIs(t, err, ErrInvalidLatency)

	_, err = NewLink[int](c.Base, -3)
	require.ErrorIs(t, err, ErrInvalidLatency)
}

func TestLinkSendBeforeConnectIsNotConnected(t *testing.T) {
	s := NewSimulator(0)
	sender := newProbeComponent("sender")
	mustRegister(s, sender)
	link, err := NewLink[int](sender.Base, 1)
	require.NoError(t, err)

	err = link.Send(1, 0)
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestLinkSendComputesArrivalFromLatencyAndExtraDelay(t *testing.T) {
	s := NewSimulator(0)
	sender := newProbeComponent("sender")
	receiver := newProbeComponent("receiver")
	mustRegister(s, sender)
	mustRegister(s, receiver)

	link, err := NewLink[int](sender.Base, 1)
	require.NoError(t, err)
	port := NewPort[int](receiver.Base)
	require.NoError(t, Connect(s, link, port))

	require.NoError(t, link.Send(1, 0))
	require.NoError(t, link.Send(2, 5))
	require.NoError(t, link.Send(3, 25))

	require.Equal(t, SimulationTime(1), port.PeekTime())
	require.Equal(t, []int{1}, port.drainAt(1))
	require.Equal(t, []int{2}, port.drainAt(6))
	require.Equal(t, []int{3}, port.drainAt(26))
}

func TestConnectTwiceIsAlreadyConnected(t *testing.T) {
	s := NewSimulator(0)
	sender := newProbeComponent("sender")
	receiver := newProbeComponent("receiver")
	mustRegister(s, sender)
	mustRegister(s, receiver)

	link, _ := NewLink[int](sender.Base, 1)
	portA := NewPort[int](receiver.Base)
	portB := NewPort[int](receiver.Base)

	require.NoError(t, Connect(s, link, portA))
	require.ErrorIs(t, Connect(s, link, portB), ErrAlreadyConnected)
}

func TestConnectRequiresRegisteredEndpoints(t *testing.T) {
	s := NewSimulator(0)
	sender := newProbeComponent("sender")
	receiver := newProbeComponent("receiver")
	mustRegister(s, sender) // receiver left unregistered

	link, _ := NewLink[int](sender.Base, 1)
	port := NewPort[int](receiver.Base)

	require.ErrorIs(t, Connect(s, link, port), ErrNotRegistered)
}

func TestConnectRequiresSameSimulator(t *testing.T) {
	s1 := NewSimulator(0)
	s2 := NewSimulator(0)
	sender := newProbeComponent("sender")
	receiver := newProbeComponent("receiver")
	mustRegister(s1, sender)
	mustRegister(s2, receiver)

	link, _ := NewLink[int](sender.Base, 1)
	port := NewPort[int](receiver.Base)

	require.ErrorIs(t, Connect(s1, link, port), ErrSimulatorMismatch)
}

func TestBroadcastLinkSendWithNoTargetsIsSilentNoOp(t *testing.T) {
	s := NewSimulator(0)
	sender := newProbeComponent("sender")
	mustRegister(s, sender)
	link, err := NewBroadcastLink[int](sender.Base, 1)
	require.NoError(t, err)

	require.NoError(t, link.Send(99, 0))
}

func TestBroadcastLinkSendReachesEveryTargetAtSameTime(t *testing.T) {
	s := NewSimulator(0)
	sender := newProbeComponent("sender")
	r1 := newProbeComponent("r1")
	r2 := newProbeComponent("r2")
	mustRegister(s, sender)
	mustRegister(s, r1)
	mustRegister(s, r2)

	link, _ := NewBroadcastLink[int](sender.Base, 1)
	p1 := NewPort[int](r1.Base)
	p2 := NewPort[int](r2.Base)
	require.NoError(t, ConnectBroadcast(s, link, p1))
	require.NoError(t, ConnectBroadcast(s, link, p2))

	require.NoError(t, link.Send(42, 0))

	require.Equal(t, SimulationTime(1), p1.PeekTime())
	require.Equal(t, SimulationTime(1), p2.PeekTime())
	require.Equal(t, []int{42}, p1.drainAt(1))
	require.Equal(t, []int{42}, p2.drainAt(1))
}

func TestBatchLinkUsesEngineChosenLatency(t *testing.T) {
	s := NewSimulator(0)
	sender := newProbeComponent("sender")
	receiver := newProbeComponent("receiver")
	mustRegister(s, sender)
	mustRegister(s, receiver)

	link := NewBatchLink[int](sender.Base)
	require.Equal(t, BatchLatency, link.Latency())
	port := NewPort[int](receiver.Base)
	require.NoError(t, ConnectBatch(s, link, port))

	require.NoError(t, link.Send(1, 0))
	require.Equal(t, SimulationTime(1), port.PeekTime())
}
