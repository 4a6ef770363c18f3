// Package rs implements the reservation-station dispatcher, the terminal
// consumer of entries admitted by the reorder buffer.
package rs

import (
	"log"
	"reflect"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/frontsim/front"
)

// Comp is the reservation-station component. It records every dispatched
// entry in arrival order.
type Comp struct {
	*sim.TickingComponent

	topPort sim.Port

	dispatched []front.Entry
}

// Dispatched returns the entries received so far, in arrival order.
func (c *Comp) Dispatched() []front.Entry {
	return c.dispatched
}

// Tick runs the dispatcher for one cycle. A malformed dispatch message is
// an allocator bug and panics.
func (c *Comp) Tick() (madeProgress bool) {
	item := c.topPort.PeekIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*front.DispatchMsg)
	if !ok {
		log.Panicf("rs cannot process msg %s", reflect.TypeOf(item))
	}
	if msg.Status != front.EntryAllocated {
		log.Panicf("rs received an entry that was never allocated: %+v", msg.Entry)
	}

	c.dispatched = append(c.dispatched, msg.Entry)

	c.topPort.RetrieveIncoming()

	front.Trace("EntryDispatched",
		"RobID", msg.RobID,
		"Funct", msg.Funct,
		"XS1", msg.XS1,
		"XS2", msg.XS2,
		"Domain", msg.Domain.Name(),
	)

	return true
}
