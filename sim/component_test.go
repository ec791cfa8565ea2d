package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseNextWakeIsMinimumAcrossTrackedWakers(t *testing.T) {
	b := NewBase("c")
	p1 := NewPort[int](b)
	p2 := NewPort[int](b)
	timer := NewTimer[int](b)

	p1.push(1, 9)
	p2.push(2, 4)
	timer.heap.push(event[int]{msg: 3, time: 7, seq: 1})

	b.recomputeNextWake()
	require.Equal(t, SimulationTime(4), b.NextWake())
}

func TestBaseNextWakeEmptyIsNoEvent(t *testing.T) {
	b := NewBase("c")
	NewPort[int](b)
	b.recomputeNextWake()
	require.Equal(t, NoEvent, b.NextWake())
}

func TestBaseUIDIsStableAndNonEmpty(t *testing.T) {
	b := NewBase("c")
	require.NotEmpty(t, b.UID())
	require.Equal(t, b.UID(), b.UID())
}
