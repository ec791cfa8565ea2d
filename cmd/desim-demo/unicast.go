package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jayvanderwall/desim/sim"
)

type producer struct {
	*sim.Base
	link  *sim.Link[int]
	value int
}

func (p *producer) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	sim.BeginTick(p.Base)
	if isStartup {
		if err := p.link.Send(p.value, 0); err != nil {
			panic(err)
		}
	}
}

type recorder struct {
	*sim.Base
	port     *sim.Port[int]
	received int
	seen     bool
}

func (r *recorder) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	now := sim.BeginTick(r.Base)
	if isStartup || isShutdown {
		return
	}
	sim.DrainPort(r.Base, r.port, now, func(m int) {
		r.received = m
		r.seen = true
	})
}

func newUnicastCmd() *cobra.Command {
	var value int
	cmd := &cobra.Command{
		Use:   "unicast",
		Short: "One component sends another a single value over a unicast link",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sim.NewSimulator(0)
			s.SetLogger(newLogger())

			p := &producer{Base: sim.NewBase("producer"), value: value}
			link, err := sim.NewLink[int](p.Base, 1)
			if err != nil {
				return err
			}
			p.link = link
			if err := s.Register(p); err != nil {
				return err
			}

			r := &recorder{Base: sim.NewBase("consumer")}
			r.port = sim.NewPort[int](r.Base)
			if err := s.Register(r); err != nil {
				return err
			}

			if err := sim.Connect(s, link, r.port); err != nil {
				return err
			}
			s.Run()

			fmt.Printf("unicast: received=%d seen=%v %s stats=%s\n", r.received, r.seen, s, s.Stats())
			return nil
		},
	}
	cmd.Flags().IntVar(&value, "value", 42, "value the producer sends")
	return cmd
}
