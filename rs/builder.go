package rs

import "github.com/sarchlab/akita/v4/sim"

// Builder can build reservation-station components.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine that drives the reservation station.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the reservation station.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// Build creates a reservation-station component.
func (b Builder) Build(name string) *Comp {
	c := &Comp{}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.topPort = sim.NewPort(c, 4, 4, name+".Top")
	c.AddPort("Top", c.topPort)

	return c
}
