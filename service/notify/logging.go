package notify

import (
	"context"
	"fmt"
	"github.com/seriesbot/bot-telegram/util"
	"log/slog"
)

type serviceLogging struct {
	svc Service
	log *slog.Logger
}

func NewServiceLogging(svc Service, log *slog.Logger) Service {
	return serviceLogging{
		svc: svc,
		log: log,
	}
}

func (sl serviceLogging) SendText(ctx context.Context, chatId int64, text string, kbd Keyboard) (err error) {
	err = sl.svc.SendText(ctx, chatId, text, kbd)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("notify.SendText(%d, %d chars, %d rows): err=%s", chatId, len(text), len(kbd), err))
	return
}

func (sl serviceLogging) SendVideo(ctx context.Context, chatId int64, ref, caption string) (err error) {
	err = sl.svc.SendVideo(ctx, chatId, ref, caption)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("notify.SendVideo(%d, %s): err=%s", chatId, ref, err))
	return
}
