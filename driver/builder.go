package driver

import "github.com/sarchlab/akita/v4/sim"

// Builder can build drivers.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine that drives the driver.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// Build creates a driver.
func (b Builder) Build(name string) Driver {
	d := &driverImpl{
		calls: make(map[string]*Call),
	}
	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	d.decodePort = sim.NewPort(d, 4, 4, name+".Decode")
	d.AddPort("Decode", d.decodePort)

	d.allocPort = sim.NewPort(d, 4, 4, name+".Alloc")
	d.AddPort("Alloc", d.allocPort)

	d.ctrlPort = sim.NewPort(d, 4, 4, name+".Ctrl")
	d.AddPort("Ctrl", d.ctrlPort)

	return d
}
