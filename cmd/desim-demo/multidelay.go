package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jayvanderwall/desim/sim"
)

type delayedValue struct {
	value int
	extra sim.SimulationTime
}

type burstSender struct {
	*sim.Base
	link  *sim.Link[int]
	sends []delayedValue
}

func (c *burstSender) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	sim.BeginTick(c.Base)
	if !isStartup {
		return
	}
	for _, sd := range c.sends {
		if err := c.link.Send(sd.value, sd.extra); err != nil {
			panic(err)
		}
	}
}

type arrivalLog struct {
	*sim.Base
	port *sim.Port[int]
	log  []delayedValue
}

func (c *arrivalLog) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	now := sim.BeginTick(c.Base)
	if isStartup || isShutdown {
		return
	}
	sim.DrainPort(c.Base, c.port, now, func(m int) {
		c.log = append(c.log, delayedValue{value: m, extra: now - 1})
	})
}

func newMultiDelayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multidelay",
		Short: "One link, three sends with different extra delays",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sim.NewSimulator(0)
			s.SetLogger(newLogger())

			sender := &burstSender{
				Base: sim.NewBase("sender"),
				sends: []delayedValue{
					{value: 1, extra: 0},
					{value: 2, extra: 5},
					{value: 3, extra: 25},
				},
			}
			link, err := sim.NewLink[int](sender.Base, 1)
			if err != nil {
				return err
			}
			sender.link = link
			if err := s.Register(sender); err != nil {
				return err
			}

			receiver := &arrivalLog{Base: sim.NewBase("receiver")}
			receiver.port = sim.NewPort[int](receiver.Base)
			if err := s.Register(receiver); err != nil {
				return err
			}

			if err := sim.Connect(s, link, receiver.port); err != nil {
				return err
			}
			s.Run()

			for _, got := range receiver.log {
				fmt.Printf("multidelay: value=%d extra_delay=%d\n", got.value, got.extra)
			}
			fmt.Printf("multidelay: %s stats=%s\n", s, s.Stats())
			return nil
		},
	}
}
