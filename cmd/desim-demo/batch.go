package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jayvanderwall/desim/sim"
)

// batchSender paces K sends over a BatchLink one per tick, using a Timer to
// wake itself up rather than being ticked every cycle.
type batchSender struct {
	*sim.Base
	timer *sim.Timer[struct{}]
	link  *sim.BatchLink[int]
	sent  []int
	next  int
	k     int
}

func (c *batchSender) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	now := sim.BeginTick(c.Base)
	if isStartup {
		if err := c.timer.Set(struct{}{}, 1); err != nil {
			panic(err)
		}
		return
	}
	if isShutdown {
		return
	}
	sim.DrainTimer(c.Base, c.timer, now, func(struct{}) {
		if c.next >= c.k {
			return
		}
		if err := c.link.Send(c.next, 0); err != nil {
			panic(err)
		}
		c.sent = append(c.sent, c.next)
		c.next++
		if c.next < c.k {
			if err := c.timer.Set(struct{}{}, 1); err != nil {
				panic(err)
			}
		}
	})
}

type batchReceiver struct {
	*sim.Base
	port *sim.Port[int]
	got  []int
}

func (c *batchReceiver) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	now := sim.BeginTick(c.Base)
	if isStartup || isShutdown {
		return
	}
	sim.DrainPort(c.Base, c.port, now, func(m int) { c.got = append(c.got, m) })
}

func newBatchCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "A component paces K sends over a BatchLink via a self-timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sim.NewSimulator(0)
			s.SetLogger(newLogger())

			sender := &batchSender{Base: sim.NewBase("sender"), k: k}
			sender.timer = sim.NewTimer[struct{}](sender.Base)
			sender.link = sim.NewBatchLink[int](sender.Base)
			if err := s.Register(sender); err != nil {
				return err
			}

			receiver := &batchReceiver{Base: sim.NewBase("receiver")}
			receiver.port = sim.NewPort[int](receiver.Base)
			if err := s.Register(receiver); err != nil {
				return err
			}
			if err := sim.ConnectBatch(s, sender.link, receiver.port); err != nil {
				return err
			}

			s.Run()

			fmt.Printf("batch: sent=%v received=%v %s stats=%s\n", sender.sent, receiver.got, s, s.Stats())
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "count", 5, "number of sends to pace over the batch link")
	return cmd
}
