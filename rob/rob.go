// Package rob implements the reorder-buffer allocator: admission control
// over a fixed-capacity table of in-flight instructions, identifier
// recycling, and the retry and confirm signalling toward the decoder.
package rob

import (
	"log"
	"reflect"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/frontsim/front"
)

// Comp is the reorder-buffer allocator component.
type Comp struct {
	*sim.TickingComponent

	topPort      sim.Port // allocate requests in, retry and confirm out
	dispatchPort sim.Port // admitted entries out
	ctrlPort     sim.Port // release messages in

	// RSPort is the reservation-station port dispatch messages are sent to.
	// Wired by the pipeline builder.
	RSPort sim.RemotePort

	capacity       int
	numReqPerCycle int

	nextID  uint32
	entries map[uint32]front.Entry

	// Requests refused for capacity, keyed by their full field tuple, so a
	// later admission of the same request can be confirmed back to its
	// sender.
	refused map[front.AllocRequest]sim.RemotePort
}

// Occupancy returns the number of entries currently held.
func (c *Comp) Occupancy() int {
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Comp) Capacity() int {
	return c.capacity
}

// Tick runs the allocator for one cycle.
func (c *Comp) Tick() (madeProgress bool) {
	madeProgress = c.processCtrl() || madeProgress

	for i := 0; i < c.numReqPerCycle; i++ {
		madeProgress = c.allocate() || madeProgress
	}

	return madeProgress
}

func (c *Comp) processCtrl() bool {
	item := c.ctrlPort.PeekIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*front.ReleaseMsg)
	if !ok {
		log.Panicf("rob cannot process msg %s", reflect.TypeOf(item))
	}

	c.ctrlPort.RetrieveIncoming()

	if _, present := c.entries[msg.RobID]; !present {
		front.Trace("ReleaseUnknownEntry", "RobID", msg.RobID)
		return true
	}

	delete(c.entries, msg.RobID)

	front.Trace("EntryReleased", "RobID", msg.RobID, "Occupancy", len(c.entries))

	return true
}

// freeID returns the next identifier not held by a live entry. Releases
// can advance allocation past the wrap point while an early entry is still
// allocated, which parks nextID on a live id; handing that id out again
// would overwrite the live entry. Admission only runs below capacity, and
// the id window is twice the capacity, so a free id always exists.
func (c *Comp) freeID() uint32 {
	id := c.nextID
	for {
		if _, live := c.entries[id]; !live {
			return id
		}
		id = (id + 1) % uint32(2*c.capacity)
	}
}

func (c *Comp) allocate() bool {
	item := c.topPort.PeekIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*front.AllocReqMsg)
	if !ok {
		log.Panicf("rob cannot process msg %s", reflect.TypeOf(item))
	}

	if len(c.entries) >= c.capacity {
		return c.refuse(msg)
	}

	return c.admit(msg)
}

// refuse signals one retry for a newly refused request. A resubmission of
// the already-refused request stays parked in the incoming buffer until
// capacity frees up; signalling it again would only bounce the same pair
// of messages back and forth while the table stays full.
func (c *Comp) refuse(msg *front.AllocReqMsg) bool {
	if _, pending := c.refused[msg.AllocRequest]; pending {
		return false
	}

	if !c.topPort.CanSend() {
		return false
	}

	retry := front.AllocRetryMsgBuilder{}.
		WithSrc(c.topPort.AsRemote()).
		WithDst(msg.Src).
		WithRequest(msg.AllocRequest).
		Build()
	err := c.topPort.Send(retry)
	if err != nil {
		panic("retry port cannot send after CanSend check")
	}

	c.refused[msg.AllocRequest] = msg.Src

	c.topPort.RetrieveIncoming()

	front.Trace("AllocRefused",
		"Funct", msg.Funct,
		"Domain", msg.Domain.Name(),
		"Occupancy", len(c.entries),
	)

	return true
}

// admit assigns the next identifier and inserts the entry. The dispatch
// message, and the confirm when the request was previously refused, must
// leave in the same cycle as the table mutation, so the ports are checked
// before anything changes.
func (c *Comp) admit(msg *front.AllocReqMsg) bool {
	confirmDst, confirming := c.refused[msg.AllocRequest]

	if !c.dispatchPort.CanSend() {
		return false
	}
	if confirming && !c.topPort.CanSend() {
		return false
	}

	entry := front.Entry{
		RobID:        c.freeID(),
		AllocRequest: msg.AllocRequest,
		Status:       front.EntryAllocated,
	}
	c.entries[entry.RobID] = entry
	c.nextID = (entry.RobID + 1) % uint32(2*c.capacity)

	dispatch := front.DispatchMsgBuilder{}.
		WithSrc(c.dispatchPort.AsRemote()).
		WithDst(c.RSPort).
		WithEntry(entry).
		Build()
	err := c.dispatchPort.Send(dispatch)
	if err != nil {
		panic("dispatch port cannot send after CanSend check")
	}

	if confirming {
		confirm := front.AllocConfirmMsgBuilder{}.
			WithSrc(c.topPort.AsRemote()).
			WithDst(confirmDst).
			WithRobID(entry.RobID).
			WithRequest(msg.AllocRequest).
			Build()
		err = c.topPort.Send(confirm)
		if err != nil {
			panic("confirm port cannot send after CanSend check")
		}

		delete(c.refused, msg.AllocRequest)
	}

	c.topPort.RetrieveIncoming()

	front.Trace("EntryAllocated",
		"RobID", entry.RobID,
		"Funct", entry.Funct,
		"XS1", entry.XS1,
		"XS2", entry.XS2,
		"Domain", entry.Domain.Name(),
		"Occupancy", len(c.entries),
	)

	return true
}
