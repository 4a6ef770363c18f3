// Package front defines the shared contracts of the instruction-issue
// pipeline: dispatch domains, request and entry value types, the messages
// exchanged between the decoder, the reorder-buffer allocator, and the
// reservation-station dispatcher, and the trace logging helper.
package front

// Domain is the dispatch domain an instruction is routed to.
type Domain uint8

const (
	// DomainFence is the synchronization domain.
	DomainFence Domain = iota

	// DomainMem is the memory-movement domain.
	DomainMem

	// DomainCompute is the execution domain for everything else.
	DomainCompute
)

// Name returns the name of the domain.
func (d Domain) Name() string {
	switch d {
	case DomainFence:
		return "Fence"
	case DomainMem:
		return "Mem"
	case DomainCompute:
		return "Compute"
	default:
		panic("invalid domain")
	}
}

// Classify maps a funct opcode to its dispatch domain. Classification is
// total: every funct not claimed by the fence or memory groups falls
// through to the compute domain.
func Classify(funct uint32) Domain {
	switch funct {
	case 31:
		return DomainFence
	case 24, 25:
		return DomainMem
	default:
		return DomainCompute
	}
}
