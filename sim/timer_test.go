package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimerSetSchedulesRelativeToCurrentTime(t *testing.T) {
	s := NewSimulator(0)
	c := newProbeComponent("c")
	mustRegister(s, c)
	timer := NewTimer[int](c.Base)

	require.NoError(t, timer.Set(42, 5))
	require.Equal(t, SimulationTime(5), timer.PeekTime())

	s.currentTime = 10
	require.NoError(t, timer.Set(7, 3))
	require.Equal(t, SimulationTime(5), timer.PeekTime(), "earlier event still first")

	out := timer.drainAt(5)
	require.Equal(t, []int{42}, out)
	require.Equal(t, SimulationTime(13), timer.PeekTime())
}

func TestTimerSetRejectsNonPositiveDelay(t *testing.T) {
	s := NewSimulator(0)
	c := newProbeComponent("c")
	mustRegister(s, c)
	timer := NewTimer[int](c.Base)

	err := timer.Set(1, 0)
	require.ErrorIs(t, err, ErrInvalidDelay)

	err = timer.Set(1, -1)
	require.ErrorIs(t, err, ErrInvalidDelay)
}

func TestTimerTracksItselfOnOwner(t *testing.T) {
	s := NewSimulator(0)
	c := newProbeComponent("c")
	mustRegister(s, c)
	timer := NewTimer[bool](c.Base)
	require.NoError(t, timer.Set(true, 4))

	c.Base.recomputeNextWake()
	require.Equal(t, SimulationTime(4), c.Base.NextWake())
}
