package front

import "errors"

var (
	// ErrMissingFields rejects a submission that does not carry all required
	// fields. The submission has no effect; nothing enters the pipeline.
	ErrMissingFields = errors.New("missing required fields")

	// ErrDecoderBlocked rejects a decode request that arrived while the
	// decoder is waiting for an outstanding allocation retry to resolve.
	ErrDecoderBlocked = errors.New("decoder is blocked on an allocation retry")
)
