package front

import "github.com/sarchlab/akita/v4/sim"

// DecodeMsg submits one instruction to the decoder.
type DecodeMsg struct {
	sim.MsgMeta

	DecodeRequest
}

// Meta returns the meta data of the msg.
func (m *DecodeMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *DecodeMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// DecodeMsgBuilder is a factory for DecodeMsg.
type DecodeMsgBuilder struct {
	src, dst sim.RemotePort
	req      DecodeRequest
}

// WithSrc sets the source port of the msg.
func (b DecodeMsgBuilder) WithSrc(src sim.RemotePort) DecodeMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b DecodeMsgBuilder) WithDst(dst sim.RemotePort) DecodeMsgBuilder {
	b.dst = dst
	return b
}

// WithRequest sets the instruction carried by the msg.
func (b DecodeMsgBuilder) WithRequest(req DecodeRequest) DecodeMsgBuilder {
	b.req = req
	return b
}

// Build creates a DecodeMsg.
func (b DecodeMsgBuilder) Build() *DecodeMsg {
	return &DecodeMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		DecodeRequest: b.req,
	}
}

// DecodeRspMsg acknowledges or rejects one DecodeMsg.
type DecodeRspMsg struct {
	sim.MsgMeta

	// RspTo is the ID of the DecodeMsg this responds to.
	RspTo    string
	Accepted bool
}

// Meta returns the meta data of the msg.
func (m *DecodeRspMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *DecodeRspMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// DecodeRspMsgBuilder is a factory for DecodeRspMsg.
type DecodeRspMsgBuilder struct {
	src, dst sim.RemotePort
	rspTo    string
	accepted bool
}

// WithSrc sets the source port of the msg.
func (b DecodeRspMsgBuilder) WithSrc(src sim.RemotePort) DecodeRspMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b DecodeRspMsgBuilder) WithDst(dst sim.RemotePort) DecodeRspMsgBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request this responds to.
func (b DecodeRspMsgBuilder) WithRspTo(id string) DecodeRspMsgBuilder {
	b.rspTo = id
	return b
}

// WithAccepted sets whether the decode request was accepted.
func (b DecodeRspMsgBuilder) WithAccepted(accepted bool) DecodeRspMsgBuilder {
	b.accepted = accepted
	return b
}

// Build creates a DecodeRspMsg.
func (b DecodeRspMsgBuilder) Build() *DecodeRspMsg {
	return &DecodeRspMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		RspTo:    b.rspTo,
		Accepted: b.accepted,
	}
}

// AllocReqMsg asks the reorder buffer to admit one decoded instruction.
type AllocReqMsg struct {
	sim.MsgMeta

	AllocRequest
}

// Meta returns the meta data of the msg.
func (m *AllocReqMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *AllocReqMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// AllocReqMsgBuilder is a factory for AllocReqMsg.
type AllocReqMsgBuilder struct {
	src, dst sim.RemotePort
	req      AllocRequest
}

// WithSrc sets the source port of the msg.
func (b AllocReqMsgBuilder) WithSrc(src sim.RemotePort) AllocReqMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b AllocReqMsgBuilder) WithDst(dst sim.RemotePort) AllocReqMsgBuilder {
	b.dst = dst
	return b
}

// WithRequest sets the allocation request carried by the msg.
func (b AllocReqMsgBuilder) WithRequest(req AllocRequest) AllocReqMsgBuilder {
	b.req = req
	return b
}

// Build creates an AllocReqMsg.
func (b AllocReqMsgBuilder) Build() *AllocReqMsg {
	return &AllocReqMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		AllocRequest: b.req,
	}
}

// AllocRetryMsg tells the sender of a refused allocation request to hold
// new work and resubmit the same request later. It echoes the refused
// request field for field.
type AllocRetryMsg struct {
	sim.MsgMeta

	AllocRequest
}

// Meta returns the meta data of the msg.
func (m *AllocRetryMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *AllocRetryMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// AllocRetryMsgBuilder is a factory for AllocRetryMsg.
type AllocRetryMsgBuilder struct {
	src, dst sim.RemotePort
	req      AllocRequest
}

// WithSrc sets the source port of the msg.
func (b AllocRetryMsgBuilder) WithSrc(src sim.RemotePort) AllocRetryMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b AllocRetryMsgBuilder) WithDst(dst sim.RemotePort) AllocRetryMsgBuilder {
	b.dst = dst
	return b
}

// WithRequest sets the refused allocation request echoed by the msg.
func (b AllocRetryMsgBuilder) WithRequest(req AllocRequest) AllocRetryMsgBuilder {
	b.req = req
	return b
}

// Build creates an AllocRetryMsg.
func (b AllocRetryMsgBuilder) Build() *AllocRetryMsg {
	return &AllocRetryMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		AllocRequest: b.req,
	}
}

// AllocConfirmMsg notifies the sender of a previously refused allocation
// request that its resubmission was admitted.
type AllocConfirmMsg struct {
	sim.MsgMeta

	RobID uint32
	AllocRequest
}

// Meta returns the meta data of the msg.
func (m *AllocConfirmMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *AllocConfirmMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// AllocConfirmMsgBuilder is a factory for AllocConfirmMsg.
type AllocConfirmMsgBuilder struct {
	src, dst sim.RemotePort
	robID    uint32
	req      AllocRequest
}

// WithSrc sets the source port of the msg.
func (b AllocConfirmMsgBuilder) WithSrc(src sim.RemotePort) AllocConfirmMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b AllocConfirmMsgBuilder) WithDst(dst sim.RemotePort) AllocConfirmMsgBuilder {
	b.dst = dst
	return b
}

// WithRobID sets the identifier the entry was admitted under.
func (b AllocConfirmMsgBuilder) WithRobID(robID uint32) AllocConfirmMsgBuilder {
	b.robID = robID
	return b
}

// WithRequest sets the admitted allocation request echoed by the msg.
func (b AllocConfirmMsgBuilder) WithRequest(req AllocRequest) AllocConfirmMsgBuilder {
	b.req = req
	return b
}

// Build creates an AllocConfirmMsg.
func (b AllocConfirmMsgBuilder) Build() *AllocConfirmMsg {
	return &AllocConfirmMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		RobID:        b.robID,
		AllocRequest: b.req,
	}
}

// DispatchMsg hands one admitted entry to the reservation station.
type DispatchMsg struct {
	sim.MsgMeta

	Entry
}

// Meta returns the meta data of the msg.
func (m *DispatchMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *DispatchMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// DispatchMsgBuilder is a factory for DispatchMsg.
type DispatchMsgBuilder struct {
	src, dst sim.RemotePort
	entry    Entry
}

// WithSrc sets the source port of the msg.
func (b DispatchMsgBuilder) WithSrc(src sim.RemotePort) DispatchMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b DispatchMsgBuilder) WithDst(dst sim.RemotePort) DispatchMsgBuilder {
	b.dst = dst
	return b
}

// WithEntry sets the entry carried by the msg.
func (b DispatchMsgBuilder) WithEntry(entry Entry) DispatchMsgBuilder {
	b.entry = entry
	return b
}

// Build creates a DispatchMsg.
func (b DispatchMsgBuilder) Build() *DispatchMsg {
	return &DispatchMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Entry: b.entry,
	}
}

// ReleaseMsg frees one reorder-buffer entry by identifier.
type ReleaseMsg struct {
	sim.MsgMeta

	RobID uint32
}

// Meta returns the meta data of the msg.
func (m *ReleaseMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *ReleaseMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// ReleaseMsgBuilder is a factory for ReleaseMsg.
type ReleaseMsgBuilder struct {
	src, dst sim.RemotePort
	robID    uint32
}

// WithSrc sets the source port of the msg.
func (b ReleaseMsgBuilder) WithSrc(src sim.RemotePort) ReleaseMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ReleaseMsgBuilder) WithDst(dst sim.RemotePort) ReleaseMsgBuilder {
	b.dst = dst
	return b
}

// WithRobID sets the identifier of the entry to free.
func (b ReleaseMsgBuilder) WithRobID(robID uint32) ReleaseMsgBuilder {
	b.robID = robID
	return b
}

// Build creates a ReleaseMsg.
func (b ReleaseMsgBuilder) Build() *ReleaseMsg {
	return &ReleaseMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		RobID: b.robID,
	}
}
