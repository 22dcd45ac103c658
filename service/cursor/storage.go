package cursor

import (
	"context"
	"errors"
	"io"
)

// Storage keeps the offset of the next update to poll so a restart doesn't re-deliver the processed ones.
type Storage interface {
	io.Closer
	// Get returns 0 when no offset is stored yet.
	Get(ctx context.Context) (offset int, err error)
	Set(ctx context.Context, offset int) (err error)
}

var ErrInternal = errors.New("internal failure")
