package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jayvanderwall/desim/sim"
)

// pinger sends itself a single message on startup over a latency-1 self
// loop, and counts how many times it arrives.
type pinger struct {
	*sim.Base
	link    *sim.Link[bool]
	port    *sim.Port[bool]
	counter int
}

func newPinger() *pinger {
	p := &pinger{Base: sim.NewBase("pinger")}
	link, err := sim.NewLink[bool](p.Base, 1)
	if err != nil {
		panic(err)
	}
	p.link = link
	p.port = sim.NewPort[bool](p.Base)
	return p
}

func (p *pinger) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	now := sim.BeginTick(p.Base)
	switch {
	case isStartup:
		if err := p.link.Send(true, 0); err != nil {
			panic(err)
		}
	case isShutdown:
	default:
		sim.DrainPort(p.Base, p.port, now, func(bool) { p.counter++ })
	}
}

func newSelfLoopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfloop",
		Short: "One component pings itself over a latency-1 loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sim.NewSimulator(0)
			s.SetLogger(newLogger())
			p := newPinger()
			if err := s.Register(p); err != nil {
				return err
			}
			if err := sim.Connect(s, p.link, p.port); err != nil {
				return err
			}
			s.Run()
			fmt.Printf("selfloop: counter=%d %s stats=%s\n", p.counter, s, s.Stats())
			return nil
		},
	}
}
