package membership

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

func (sl serviceLogging) Check(ctx context.Context, userId int64) (r Result, err error) {
	r, err = sl.svc.Check(ctx, userId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("membership.Check(%d): %s, err=%s", userId, r, err))
	return
}
