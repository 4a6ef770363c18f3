package front

// A DecodeRequest is one instruction submitted for decoding.
type DecodeRequest struct {
	Funct uint32
	XS1   uint64
	XS2   uint64
}

// An AllocRequest asks the reorder buffer to admit one decoded instruction.
type AllocRequest struct {
	DecodeRequest

	Domain Domain
}

// Matches reports whether two allocation requests are identical field for
// field. The retry protocol correlates refused requests with their later
// resubmission by the full tuple, not by message identity.
func (r AllocRequest) Matches(other AllocRequest) bool {
	return r == other
}

// EntryStatus is the lifecycle state of a reorder-buffer entry.
type EntryStatus uint8

// EntryAllocated marks an entry that has been admitted to the reorder
// buffer. Entries are never mutated after admission.
const EntryAllocated EntryStatus = iota

// An Entry is one in-flight instruction owned by the reorder buffer.
type Entry struct {
	RobID uint32

	AllocRequest

	Status EntryStatus
}
