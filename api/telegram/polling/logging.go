package polling

import (
	"context"
	"fmt"
	"github.com/seriesbot/bot-telegram/util"
	"gopkg.in/telebot.v3"
	"log/slog"
	"time"
)

type sourceLogging struct {
	src Source
	log *slog.Logger
}

func NewSourceLogging(src Source, log *slog.Logger) Source {
	return sourceLogging{
		src: src,
		log: log,
	}
}

func (sl sourceLogging) GetUpdates(ctx context.Context, offset int, timeout time.Duration) (updates []telebot.Update, err error) {
	updates, err = sl.src.GetUpdates(ctx, offset, timeout)
	lvl := util.LogLevel(err)
	if err == nil && len(updates) == 0 {
		lvl = slog.LevelDebug
	}
	sl.log.Log(ctx, lvl, fmt.Sprintf("polling.GetUpdates(%d, %s): %d, err=%s", offset, timeout, len(updates), err))
	return
}
