package polling

import (
	"context"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"github.com/seriesbot/bot-telegram/config"
	"github.com/seriesbot/bot-telegram/service/cursor"
	"gopkg.in/telebot.v3"
	"log/slog"
	"time"
)

// Processor handles a single update, *telebot.Bot in synchronous mode does.
type Processor interface {
	ProcessUpdate(u telebot.Update)
}

type Loop interface {
	// Run polls until the context is done.
	Run(ctx context.Context) (err error)
	// RunOnce fetches a single batch of updates and processes them one by one in the arrival order.
	RunOnce(ctx context.Context) (count int, err error)
}

type loop struct {
	src      Source
	proc     Processor
	stor     cursor.Storage
	timeout  time.Duration
	interval time.Duration
	bo       *backoff.ExponentialBackOff
	sleep    func(ctx context.Context, d time.Duration) error
	log      *slog.Logger
	offset   int
	loaded   bool
}

const msgFmtRunOnceFailed = "failed to poll the updates: %s, retrying in %s"

func NewLoop(src Source, proc Processor, stor cursor.Storage, cfgPoll config.PollConfig, log *slog.Logger) Loop {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfgPoll.Interval
	bo.MaxInterval = cfgPoll.BackoffMax
	bo.MaxElapsedTime = 0
	return &loop{
		src:      src,
		proc:     proc,
		stor:     stor,
		timeout:  cfgPoll.Timeout,
		interval: cfgPoll.Interval,
		bo:       bo,
		sleep:    sleep,
		log:      log,
	}
}

func (l *loop) Run(ctx context.Context) (err error) {
	l.bo.Reset()
	for ctx.Err() == nil {
		var d time.Duration
		_, err = l.RunOnce(ctx)
		switch err {
		case nil:
			l.bo.Reset()
			d = l.interval
		default:
			d = l.bo.NextBackOff()
			l.log.Warn(fmt.Sprintf(msgFmtRunOnceFailed, err, d))
		}
		_ = l.sleep(ctx, d)
	}
	return nil
}

func (l *loop) RunOnce(ctx context.Context) (count int, err error) {
	if !l.loaded {
		l.offset, err = l.stor.Get(ctx)
		if err != nil {
			return
		}
		l.loaded = true
	}
	var updates []telebot.Update
	updates, err = l.src.GetUpdates(ctx, l.offset, l.timeout)
	for _, u := range updates {
		if u.ID < l.offset {
			continue
		}
		l.proc.ProcessUpdate(u)
		l.offset = u.ID + 1
		count++
		// the cursor stays in memory when persisting fails, the next batch retries
		_ = l.stor.Set(ctx, l.offset)
	}
	return
}

func sleep(ctx context.Context, d time.Duration) (err error) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-t.C:
	}
	return
}
