// Package driver defines the host-side API of the issue pipeline.
// Submissions are validated synchronously, queued as tasks, and pushed into
// the pipeline as the simulation runs.
package driver

import (
	"log"
	"reflect"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/frontsim/front"
)

// A Call tracks the outcome of one submission. Done and Err are filled in
// while the simulation runs.
type Call struct {
	ID   string
	Done bool
	Err  error
}

// DecodeParams carries the fields of a decode submission. All fields are
// required; nil marks an absent field.
type DecodeParams struct {
	Funct *uint32
	XS1   *uint64
	XS2   *uint64
}

// AllocParams carries the fields of a direct allocation submission, used
// when the dispatch domain is already known. All fields are required.
type AllocParams struct {
	Funct  *uint32
	XS1    *uint64
	XS2    *uint64
	Domain *front.Domain
}

// Driver provides the interface to feed the issue pipeline.
type Driver interface {
	sim.Component

	// RegisterEndpoints points the driver at the pipeline's inbound ports.
	RegisterEndpoints(decodeDst, allocDst, ctrlDst sim.RemotePort)

	// SubmitDecode queues one decode request. It fails synchronously with
	// front.ErrMissingFields when a required field is absent. The returned
	// call completes as the decoder responds; a rejection while the decoder
	// is blocked surfaces as front.ErrDecoderBlocked on the call.
	SubmitDecode(p DecodeParams) (*Call, error)

	// SubmitAlloc queues one allocation request that bypasses decoding and
	// classification. The call completes once the request enters the
	// pipeline.
	SubmitAlloc(p AllocParams) (*Call, error)

	// Release queues the freeing of one reorder-buffer entry.
	Release(robID uint32)

	// Run runs all the tasks that have been added to the driver.
	Run() error
}

type driverImpl struct {
	*sim.TickingComponent

	decodePort sim.Port
	allocPort  sim.Port
	ctrlPort   sim.Port

	decodeDst sim.RemotePort
	allocDst  sim.RemotePort
	ctrlDst   sim.RemotePort

	decodeTasks []*decodeTask
	allocTasks  []*allocTask
	ctrlTasks   []*ctrlTask

	calls map[string]*Call
}

type decodeTask struct {
	call *Call
	req  front.DecodeRequest
}

type allocTask struct {
	call *Call
	req  front.AllocRequest
}

type ctrlTask struct {
	robID uint32
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.collectResponses() || madeProgress
	madeProgress = d.sendDecodeTasks() || madeProgress
	madeProgress = d.sendAllocTasks() || madeProgress
	madeProgress = d.sendCtrlTasks() || madeProgress

	return madeProgress
}

func (d *driverImpl) collectResponses() bool {
	madeProgress := false

	for {
		item := d.decodePort.PeekIncoming()
		if item == nil {
			break
		}

		rsp, ok := item.(*front.DecodeRspMsg)
		if !ok {
			log.Panicf("driver cannot process msg %s", reflect.TypeOf(item))
		}

		call, present := d.calls[rsp.RspTo]
		if !present {
			log.Panicf("driver received a response to unknown call %s", rsp.RspTo)
		}

		call.Done = true
		if !rsp.Accepted {
			call.Err = front.ErrDecoderBlocked
		}
		delete(d.calls, rsp.RspTo)

		d.decodePort.RetrieveIncoming()
		madeProgress = true
	}

	for {
		item := d.allocPort.PeekIncoming()
		if item == nil {
			break
		}

		// Feedback for direct submissions. The retry discipline lives in
		// the decoder, so the driver only records these.
		front.Trace("DirectAllocFeedback", "Msg", reflect.TypeOf(item).String())

		d.allocPort.RetrieveIncoming()
		madeProgress = true
	}

	return madeProgress
}

func (d *driverImpl) sendDecodeTasks() bool {
	madeProgress := false

	for len(d.decodeTasks) > 0 {
		task := d.decodeTasks[0]

		msg := front.DecodeMsgBuilder{}.
			WithSrc(d.decodePort.AsRemote()).
			WithDst(d.decodeDst).
			WithRequest(task.req).
			Build()
		err := d.decodePort.Send(msg)
		if err != nil {
			return madeProgress
		}

		task.call.ID = msg.ID
		d.calls[msg.ID] = task.call

		d.decodeTasks = d.decodeTasks[1:]
		madeProgress = true
	}

	return madeProgress
}

func (d *driverImpl) sendAllocTasks() bool {
	madeProgress := false

	for len(d.allocTasks) > 0 {
		task := d.allocTasks[0]

		msg := front.AllocReqMsgBuilder{}.
			WithSrc(d.allocPort.AsRemote()).
			WithDst(d.allocDst).
			WithRequest(task.req).
			Build()
		err := d.allocPort.Send(msg)
		if err != nil {
			return madeProgress
		}

		task.call.ID = msg.ID
		task.call.Done = true

		d.allocTasks = d.allocTasks[1:]
		madeProgress = true
	}

	return madeProgress
}

func (d *driverImpl) sendCtrlTasks() bool {
	madeProgress := false

	for len(d.ctrlTasks) > 0 {
		task := d.ctrlTasks[0]

		msg := front.ReleaseMsgBuilder{}.
			WithSrc(d.ctrlPort.AsRemote()).
			WithDst(d.ctrlDst).
			WithRobID(task.robID).
			Build()
		err := d.ctrlPort.Send(msg)
		if err != nil {
			return madeProgress
		}

		d.ctrlTasks = d.ctrlTasks[1:]
		madeProgress = true
	}

	return madeProgress
}

// RegisterEndpoints points the driver at the pipeline's inbound ports.
func (d *driverImpl) RegisterEndpoints(
	decodeDst, allocDst, ctrlDst sim.RemotePort,
) {
	d.decodeDst = decodeDst
	d.allocDst = allocDst
	d.ctrlDst = ctrlDst
}

func (d *driverImpl) SubmitDecode(p DecodeParams) (*Call, error) {
	if p.Funct == nil || p.XS1 == nil || p.XS2 == nil {
		return nil, front.ErrMissingFields
	}

	call := &Call{}
	d.decodeTasks = append(d.decodeTasks, &decodeTask{
		call: call,
		req: front.DecodeRequest{
			Funct: *p.Funct,
			XS1:   *p.XS1,
			XS2:   *p.XS2,
		},
	})

	return call, nil
}

func (d *driverImpl) SubmitAlloc(p AllocParams) (*Call, error) {
	if p.Funct == nil || p.XS1 == nil || p.XS2 == nil || p.Domain == nil {
		return nil, front.ErrMissingFields
	}

	call := &Call{}
	d.allocTasks = append(d.allocTasks, &allocTask{
		call: call,
		req: front.AllocRequest{
			DecodeRequest: front.DecodeRequest{
				Funct: *p.Funct,
				XS1:   *p.XS1,
				XS2:   *p.XS2,
			},
			Domain: *p.Domain,
		},
	})

	return call, nil
}

func (d *driverImpl) Release(robID uint32) {
	d.ctrlTasks = append(d.ctrlTasks, &ctrlTask{robID: robID})
}

// Run runs all the tasks in the driver. It can be called repeatedly; state
// accumulated by earlier runs is kept.
func (d *driverImpl) Run() error {
	d.TickNow()
	return d.Engine.Run()
}
