package cursor

import (
	"context"
	"fmt"
	"github.com/seriesbot/bot-telegram/util"
	"log/slog"
)

type storageLogging struct {
	stor Storage
	log  *slog.Logger
}

func NewStorageLogging(stor Storage, log *slog.Logger) Storage {
	return storageLogging{
		stor: stor,
		log:  log,
	}
}

func (sl storageLogging) Close() (err error) {
	err = sl.stor.Close()
	sl.log.Log(context.TODO(), util.LogLevel(err), fmt.Sprintf("cursor.Close(): err=%s", err))
	return
}

func (sl storageLogging) Get(ctx context.Context) (offset int, err error) {
	offset, err = sl.stor.Get(ctx)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("cursor.Get(): %d, err=%s", offset, err))
	return
}

func (sl storageLogging) Set(ctx context.Context, offset int) (err error) {
	err = sl.stor.Set(ctx, offset)
	// every polled batch moves the cursor
	lvl := util.LogLevel(err)
	if err == nil {
		lvl = slog.LevelDebug
	}
	sl.log.Log(ctx, lvl, fmt.Sprintf("cursor.Set(%d): err=%s", offset, err))
	return
}
