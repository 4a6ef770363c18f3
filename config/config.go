// Package config assembles the issue pipeline: decoder, reorder-buffer
// allocator, reservation station, and the host driver, wired over direct
// connections.
package config

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/frontsim/decoder"
	"github.com/sarchlab/frontsim/driver"
	"github.com/sarchlab/frontsim/rob"
	"github.com/sarchlab/frontsim/rs"
)

// A Pipeline is one assembled instruction-issue front end.
type Pipeline struct {
	Driver  driver.Driver
	Decoder *decoder.Comp
	ROB     *rob.Comp
	RS      *rs.Comp
}

// PipelineBuilder can build issue pipelines.
type PipelineBuilder struct {
	engine         sim.Engine
	freq           sim.Freq
	capacity       int
	numReqPerCycle int
}

// WithEngine sets the engine that drives the pipeline.
func (b PipelineBuilder) WithEngine(engine sim.Engine) PipelineBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of all pipeline components.
func (b PipelineBuilder) WithFreq(freq sim.Freq) PipelineBuilder {
	b.freq = freq
	return b
}

// WithCapacity sets the reorder-buffer capacity.
func (b PipelineBuilder) WithCapacity(capacity int) PipelineBuilder {
	b.capacity = capacity
	return b
}

// WithNumReqPerCycle sets how many allocate requests the reorder buffer
// processes per cycle.
func (b PipelineBuilder) WithNumReqPerCycle(n int) PipelineBuilder {
	b.numReqPerCycle = n
	return b
}

// WithConfig applies a configuration file to the builder. Zero-valued
// fields keep their current setting.
func (b PipelineBuilder) WithConfig(cfg Config) PipelineBuilder {
	if cfg.Capacity > 0 {
		b.capacity = cfg.Capacity
	}
	if cfg.NumReqPerCycle > 0 {
		b.numReqPerCycle = cfg.NumReqPerCycle
	}
	if cfg.FreqMHz > 0 {
		b.freq = sim.Freq(cfg.FreqMHz) * sim.MHz
	}
	return b
}

// Build creates a pipeline.
func (b PipelineBuilder) Build(name string) *Pipeline {
	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}
	if b.capacity == 0 {
		b.capacity = 64
	}
	if b.numReqPerCycle == 0 {
		b.numReqPerCycle = 1
	}

	dec := decoder.Builder{}.
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".Decoder")
	alloc := rob.Builder{}.
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithCapacity(b.capacity).
		WithNumReqPerCycle(b.numReqPerCycle).
		Build(name + ".ROB")
	station := rs.Builder{}.
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".RS")
	drv := driver.Builder{}.
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".Driver")

	b.connect(name+".DecodeBus",
		drv.GetPortByName("Decode"), dec.GetPortByName("Top"))
	b.connect(name+".AllocBus",
		dec.GetPortByName("Bottom"), alloc.GetPortByName("Top"),
		drv.GetPortByName("Alloc"))
	b.connect(name+".DispatchBus",
		alloc.GetPortByName("Bottom"), station.GetPortByName("Top"))
	b.connect(name+".CtrlBus",
		drv.GetPortByName("Ctrl"), alloc.GetPortByName("Ctrl"))

	dec.ROBPort = alloc.GetPortByName("Top").AsRemote()
	alloc.RSPort = station.GetPortByName("Top").AsRemote()
	drv.RegisterEndpoints(
		dec.GetPortByName("Top").AsRemote(),
		alloc.GetPortByName("Top").AsRemote(),
		alloc.GetPortByName("Ctrl").AsRemote(),
	)

	return &Pipeline{
		Driver:  drv,
		Decoder: dec,
		ROB:     alloc,
		RS:      station,
	}
}

func (b PipelineBuilder) connect(name string, ports ...sim.Port) {
	conn := directconnection.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name)

	for _, port := range ports {
		conn.PlugIn(port)
	}
}
