package rob

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/frontsim/front"
)

// Builder can build reorder-buffer allocator components.
type Builder struct {
	engine         sim.Engine
	freq           sim.Freq
	capacity       int
	numReqPerCycle int
}

// WithEngine sets the engine that drives the allocator.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the allocator.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithCapacity sets the number of entries the allocator can hold.
func (b Builder) WithCapacity(capacity int) Builder {
	b.capacity = capacity
	return b
}

// WithNumReqPerCycle sets how many allocate requests are processed per
// cycle.
func (b Builder) WithNumReqPerCycle(n int) Builder {
	b.numReqPerCycle = n
	return b
}

// Build creates an allocator component.
func (b Builder) Build(name string) *Comp {
	if b.capacity <= 0 {
		panic("rob capacity must be positive")
	}
	if b.numReqPerCycle == 0 {
		b.numReqPerCycle = 1
	}

	c := &Comp{}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.capacity = b.capacity
	c.numReqPerCycle = b.numReqPerCycle
	c.entries = make(map[uint32]front.Entry)
	c.refused = make(map[front.AllocRequest]sim.RemotePort)

	c.topPort = sim.NewPort(c, 4, 4, name+".Top")
	c.AddPort("Top", c.topPort)

	c.dispatchPort = sim.NewPort(c, 4, 4, name+".Bottom")
	c.AddPort("Bottom", c.dispatchPort)

	c.ctrlPort = sim.NewPort(c, 4, 4, name+".Ctrl")
	c.AddPort("Ctrl", c.ctrlPort)

	return c
}
