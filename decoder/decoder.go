// Package decoder implements the decode stage of the issue pipeline. The
// decoder classifies instructions into dispatch domains, forwards
// allocation requests to the reorder buffer, and enforces the
// single-outstanding-retry discipline: while one refused request is being
// retried, every new decode request is rejected.
package decoder

import (
	"log"
	"reflect"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/frontsim/front"
)

// Comp is the decoder component.
type Comp struct {
	*sim.TickingComponent

	topPort    sim.Port // decode requests in, decode responses out
	bottomPort sim.Port // allocate requests out, retry and confirm in

	// ROBPort is the allocator port allocate requests are sent to. Wired by
	// the pipeline builder.
	ROBPort sim.RemotePort

	// blocked is true exactly while pendingRetry is non-nil.
	blocked      bool
	pendingRetry *front.AllocRequest
	needResend   bool
}

// Blocked reports whether the decoder is holding new work while a refused
// allocation request is outstanding.
func (c *Comp) Blocked() bool {
	return c.blocked
}

// Tick runs the decoder for one cycle.
func (c *Comp) Tick() (madeProgress bool) {
	madeProgress = c.processROBFeedback() || madeProgress
	madeProgress = c.resendPendingRetry() || madeProgress
	madeProgress = c.decode() || madeProgress

	return madeProgress
}

// processROBFeedback consumes one retry or confirm signal from the
// allocator. Feedback runs before new decode work so that a decode request
// arriving in the same cycle as a retry already sees the blocked state.
func (c *Comp) processROBFeedback() bool {
	item := c.bottomPort.PeekIncoming()
	if item == nil {
		return false
	}

	switch msg := item.(type) {
	case *front.AllocRetryMsg:
		return c.handleRetry(msg)
	case *front.AllocConfirmMsg:
		return c.handleConfirm(msg)
	default:
		log.Panicf("decoder cannot process msg %s", reflect.TypeOf(item))
		return false
	}
}

func (c *Comp) handleRetry(msg *front.AllocRetryMsg) bool {
	req := msg.AllocRequest

	c.blocked = true
	c.pendingRetry = &req
	c.needResend = true

	c.bottomPort.RetrieveIncoming()

	front.Trace("DecoderBlocked",
		"Funct", req.Funct,
		"XS1", req.XS1,
		"XS2", req.XS2,
		"Domain", req.Domain.Name(),
	)

	return true
}

func (c *Comp) handleConfirm(msg *front.AllocConfirmMsg) bool {
	c.bottomPort.RetrieveIncoming()

	if !c.blocked {
		// A first-attempt admission needs no unblocking.
		return true
	}

	if !c.pendingRetry.Matches(msg.AllocRequest) {
		return true
	}

	c.blocked = false
	c.pendingRetry = nil
	c.needResend = false

	front.Trace("DecoderUnblocked", "RobID", msg.RobID)

	return true
}

// resendPendingRetry re-emits the refused request field for field. The
// resend stalls on port backpressure and is attempted again every cycle
// until it leaves the port.
func (c *Comp) resendPendingRetry() bool {
	if !c.needResend {
		return false
	}

	msg := front.AllocReqMsgBuilder{}.
		WithSrc(c.bottomPort.AsRemote()).
		WithDst(c.ROBPort).
		WithRequest(*c.pendingRetry).
		Build()

	err := c.bottomPort.Send(msg)
	if err != nil {
		return false
	}

	c.needResend = false

	return true
}

func (c *Comp) decode() bool {
	item := c.topPort.PeekIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*front.DecodeMsg)
	if !ok {
		log.Panicf("decoder cannot process msg %s", reflect.TypeOf(item))
	}

	if c.blocked {
		return c.reject(msg)
	}

	return c.accept(msg)
}

func (c *Comp) reject(msg *front.DecodeMsg) bool {
	rsp := front.DecodeRspMsgBuilder{}.
		WithSrc(c.topPort.AsRemote()).
		WithDst(msg.Src).
		WithRspTo(msg.ID).
		WithAccepted(false).
		Build()

	err := c.topPort.Send(rsp)
	if err != nil {
		return false
	}

	c.topPort.RetrieveIncoming()

	front.Trace("DecodeRejected", "Funct", msg.Funct)

	return true
}

// accept classifies the instruction and forwards it to the allocator. The
// allocate request and the acknowledgement must leave in the same cycle, so
// both ports are checked before either send.
func (c *Comp) accept(msg *front.DecodeMsg) bool {
	if !c.bottomPort.CanSend() || !c.topPort.CanSend() {
		return false
	}

	req := front.AllocRequest{
		DecodeRequest: msg.DecodeRequest,
		Domain:        front.Classify(msg.Funct),
	}

	allocMsg := front.AllocReqMsgBuilder{}.
		WithSrc(c.bottomPort.AsRemote()).
		WithDst(c.ROBPort).
		WithRequest(req).
		Build()
	err := c.bottomPort.Send(allocMsg)
	if err != nil {
		panic("allocate port cannot send after CanSend check")
	}

	rsp := front.DecodeRspMsgBuilder{}.
		WithSrc(c.topPort.AsRemote()).
		WithDst(msg.Src).
		WithRspTo(msg.ID).
		WithAccepted(true).
		Build()
	err = c.topPort.Send(rsp)
	if err != nil {
		panic("decode port cannot send after CanSend check")
	}

	c.topPort.RetrieveIncoming()

	front.Trace("DecodeIssued",
		"Funct", msg.Funct,
		"XS1", msg.XS1,
		"XS2", msg.XS2,
		"Domain", req.Domain.Name(),
	)

	return true
}
