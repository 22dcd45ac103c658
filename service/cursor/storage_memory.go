package cursor

import (
	"context"
	"sync"
)

type storageMemory struct {
	lock   *sync.Mutex
	offset *int
}

func NewStorageMemory() Storage {
	return storageMemory{
		lock:   &sync.Mutex{},
		offset: new(int),
	}
}

func (sm storageMemory) Close() error {
	return nil
}

func (sm storageMemory) Get(_ context.Context) (offset int, err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	offset = *sm.offset
	return
}

func (sm storageMemory) Set(_ context.Context, offset int) (err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	*sm.offset = offset
	return
}
