package cursor

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"os"
	"sync"
	"testing"
)

func TestStorageMemory(t *testing.T) {
	s := NewStorageLogging(NewStorageMemory(), slog.New(slog.NewTextHandler(os.Stdout, nil)))
	defer s.Close()
	ctx := context.TODO()
	offset, err := s.Get(ctx)
	require.Nil(t, err)
	assert.Equal(t, 0, offset)
	require.Nil(t, s.Set(ctx, 100500))
	offset, err = s.Get(ctx)
	require.Nil(t, err)
	assert.Equal(t, 100500, offset)
}

func TestStorageMemory_Concurrent(t *testing.T) {
	s := NewStorageMemory()
	ctx := context.TODO()
	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, i)
		}()
	}
	wg.Wait()
	offset, err := s.Get(ctx)
	require.Nil(t, err)
	assert.True(t, offset >= 1 && offset <= 10)
}
