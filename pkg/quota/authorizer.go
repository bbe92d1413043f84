package quota

import "context"

// SlotAuthorizer limits number of simultaneously running browsers
type SlotAuthorizer interface {
	Enabled() bool
	// Reserve blocks until a slot is granted, context is done or waiting queue is full
	Reserve(ctx context.Context) error
	Release() int
	Limit() int
	Allocated() int
	QueueSize() int
}
