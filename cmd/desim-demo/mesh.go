package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jayvanderwall/desim/sim"
)

// meshNode is one participant in a fully-connected mesh: on startup it
// sends its own index to exactly one randomly chosen peer, over a
// dedicated latency-1 link per destination.
type meshNode struct {
	*sim.Base
	idx    int
	links  []*sim.Link[int] // links[j] targets node j; links[idx] unused
	port   *sim.Port[int]
	rng    *rand.Rand
	sentTo int
	got    []int
}

func (c *meshNode) Tick(s *sim.Simulator, isStartup, isShutdown bool) {
	now := sim.BeginTick(c.Base)
	if isStartup {
		n := len(c.links)
		dst := c.idx
		for dst == c.idx {
			dst = c.rng.Intn(n)
		}
		c.sentTo = dst
		if err := c.links[dst].Send(c.idx, 0); err != nil {
			panic(err)
		}
		return
	}
	if isShutdown {
		return
	}
	sim.DrainPort(c.Base, c.port, now, func(m int) { c.got = append(c.got, m) })
}

func newMeshCmd() *cobra.Command {
	var n int
	var seed int64
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "N fully-connected components each send one message to a random peer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 3 || n > 20 {
				return fmt.Errorf("--nodes must be between 3 and 20")
			}
			rng := rand.New(rand.NewSource(seed))
			s := sim.NewSimulator(0)
			s.SetLogger(newLogger())

			nodes := make([]*meshNode, n)
			for i := range nodes {
				nodes[i] = &meshNode{Base: sim.NewBase(fmt.Sprintf("node-%d", i)), idx: i, rng: rng}
				nodes[i].port = sim.NewPort[int](nodes[i].Base)
				nodes[i].links = make([]*sim.Link[int], n)
				if err := s.Register(nodes[i]); err != nil {
					return err
				}
			}
			for i := range nodes {
				for j := range nodes {
					if i == j {
						continue
					}
					link, err := sim.NewLink[int](nodes[i].Base, 1)
					if err != nil {
						return err
					}
					nodes[i].links[j] = link
					if err := sim.Connect(s, link, nodes[j].port); err != nil {
						return err
					}
				}
			}

			s.Run()

			for _, node := range nodes {
				fmt.Printf("mesh: node-%d sent_to=node-%d received=%v\n", node.idx, node.sentTo, node.got)
			}
			fmt.Printf("mesh: %s stats=%s\n", s, s.Stats())
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "nodes", 5, "number of mesh nodes (3-20)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "PRNG seed for destination choice")
	return cmd
}
