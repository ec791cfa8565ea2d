package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jayvanderwall/desim/sim"
)

type timedComponent struct {
	*sim.Base
	timer  *sim.Timer[int]
	delays []sim.SimulationTime
	got    []int
}

func (c *timedComponent) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	now := sim.BeginTick(c.Base)
	if isStartup {
		for i, d := range c.delays {
			if err := c.timer.Set(i, d); err != nil {
				panic(err)
			}
		}
		return
	}
	if isShutdown {
		return
	}
	sim.DrainTimer(c.Base, c.timer, now, func(m int) { c.got = append(c.got, m) })
}

func newTimerCmd() *cobra.Command {
	var k int
	var seed int64
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "A component schedules K self-timers with random delays in [1,100]",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			delays := make([]sim.SimulationTime, k)
			for i := range delays {
				delays[i] = sim.SimulationTime(1 + rng.Intn(100))
			}

			s := sim.NewSimulator(0)
			s.SetLogger(newLogger())

			c := &timedComponent{Base: sim.NewBase("timed"), delays: delays}
			c.timer = sim.NewTimer[int](c.Base)
			if err := s.Register(c); err != nil {
				return err
			}

			s.Run()

			fmt.Printf("timer: delivered=%v %s stats=%s\n", c.got, s, s.Stats())
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "count", 10, "number of timers to schedule")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "PRNG seed for timer delays")
	return cmd
}
