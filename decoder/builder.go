package decoder

import "github.com/sarchlab/akita/v4/sim"

// Builder can build decoder components.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine that drives the decoder.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the decoder.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// Build creates a decoder component.
func (b Builder) Build(name string) *Comp {
	c := &Comp{}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.topPort = sim.NewPort(c, 4, 4, name+".Top")
	c.AddPort("Top", c.topPort)

	c.bottomPort = sim.NewPort(c, 4, 4, name+".Bottom")
	c.AddPort("Bottom", c.bottomPort)

	return c
}
