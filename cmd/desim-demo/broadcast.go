package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jayvanderwall/desim/sim"
)

type announcer struct {
	*sim.Base
	link *sim.BroadcastLink[int]
}

func (c *announcer) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	sim.BeginTick(c.Base)
	if isStartup {
		if err := c.link.Send(42, 0); err != nil {
			panic(err)
		}
	}
}

func newBroadcastCmd() *cobra.Command {
	var fanout int
	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "One component broadcasts a value to N listeners",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fanout < 1 {
				return fmt.Errorf("--fanout must be >= 1")
			}
			s := sim.NewSimulator(0)
			s.SetLogger(newLogger())

			sender := &announcer{Base: sim.NewBase("announcer")}
			link, err := sim.NewBroadcastLink[int](sender.Base, 1)
			if err != nil {
				return err
			}
			sender.link = link
			if err := s.Register(sender); err != nil {
				return err
			}

			listeners := make([]*recorder, fanout)
			for i := range listeners {
				r := &recorder{Base: sim.NewBase(fmt.Sprintf("listener-%d", i))}
				r.port = sim.NewPort[int](r.Base)
				if err := s.Register(r); err != nil {
					return err
				}
				if err := sim.ConnectBroadcast(s, link, r.port); err != nil {
					return err
				}
				listeners[i] = r
			}

			s.Run()

			for i, l := range listeners {
				fmt.Printf("broadcast: listener-%d received=%d\n", i, l.received)
			}
			fmt.Printf("broadcast: %s stats=%s\n", s, s.Stats())
			return nil
		},
	}
	cmd.Flags().IntVar(&fanout, "fanout", 2, "number of listeners")
	return cmd
}
