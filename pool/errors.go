package pool

import "errors"

// Release failures indicate a frame-loop bug (double release, stale index)
// Callers should treat them as fatal rather than retry
var (
	ErrIndexOutOfRange = errors.New("pool: index out of range")
	ErrPoolEmpty       = errors.New("pool: empty")
	ErrNotOwned        = errors.New("pool: vector not live in this pool")
)
