package sim

// probeComponent is a minimal Component used across unit tests that need a
// registered owner (so Link.Send/Timer.Set can read the simulator's
// current time) without pulling in a full scenario component.
type probeComponent struct {
	*Base
	onTick func(s *Simulator, isStartup, isShutdown bool)
	extra  any
}

func newProbeComponent(name string) *probeComponent {
	return &probeComponent{Base: NewBase(name)}
}

func (p *probeComponent) Tick(s *Simulator, isStartup, isShutdown bool) {
	if p.onTick != nil {
		p.onTick(s, isStartup, isShutdown)
	}
}

// mustRegister registers c with s, failing the test harness via panic if
// registration fails — every caller in these tests controls registration
// order and expects it to succeed.
func mustRegister(s *Simulator, c Component) {
	if err := s.Register(c); err != nil {
		panic(err)
	}
}
