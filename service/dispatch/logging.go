package dispatch

import (
	"context"
	"errors"
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

func (sl serviceLogging) Dispatch(ctx context.Context, evt Event) (err error) {
	err = sl.svc.Dispatch(ctx, evt)
	sl.log.Log(ctx, logLevel(err), fmt.Sprintf("dispatch.Dispatch(%s): err=%s", evt, err))
	return
}

func logLevel(err error) (lvl slog.Level) {
	switch {
	case errors.Is(err, ErrIgnored):
		lvl = slog.LevelDebug
	default:
		lvl = util.LogLevel(err)
	}
	return
}
