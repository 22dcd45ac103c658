package dispatch

import (
	"context"
	"errors"
	"fmt"
	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
	"github.com/seriesbot/bot-telegram/service/catalog"
	"github.com/seriesbot/bot-telegram/service/membership"
	"github.com/seriesbot/bot-telegram/service/notify"
)

type Service interface {
	// Dispatch reacts to the event. Returns ErrIgnored when the event is not addressed to the bot.
	// Delivery failures are not returned.
	Dispatch(ctx context.Context, evt Event) (err error)
}

var ErrIgnored = errors.New("ignored")

type service struct {
	cat            catalog.Catalog
	gate           membership.Service
	notifier       notify.Service
	joinLinks      []membership.JoinLink
	allowOnFailure bool
	html           *bluemonday.Policy
}

func NewService(
	cat catalog.Catalog,
	gate membership.Service,
	notifier notify.Service,
	joinLinks []membership.JoinLink,
	allowOnFailure bool,
) Service {
	return service{
		cat:            cat,
		gate:           gate,
		notifier:       notifier,
		joinLinks:      joinLinks,
		allowOnFailure: allowOnFailure,
		html:           bluemonday.StrictPolicy(),
	}
}

func (svc service) Dispatch(ctx context.Context, evt Event) (err error) {
	switch evt.Kind {
	case KindText:
		err = svc.dispatchText(ctx, evt)
	case KindCallback:
		err = svc.dispatchCallback(ctx, evt)
	default:
		err = fmt.Errorf("%w: event kind %s", ErrIgnored, evt.Kind)
	}
	return
}

func (svc service) dispatchText(ctx context.Context, evt Event) (err error) {
	cmd := command(evt.Text)
	switch cmd {
	case cmdStart:
		switch svc.allowed(ctx, evt.UserId) {
		case true:
			_ = svc.notifier.SendText(ctx, evt.ChatId, msgWelcome, svc.seriesKeyboard())
		default:
			_ = svc.notifier.SendText(ctx, evt.ChatId, msgJoin, svc.joinKeyboard())
		}
	case cmdSeries:
		switch svc.allowed(ctx, evt.UserId) {
		case true:
			_ = svc.notifier.SendText(ctx, evt.ChatId, msgSeries, svc.seriesKeyboard())
		default:
			_ = svc.notifier.SendText(ctx, evt.ChatId, msgJoin, nil)
		}
	default:
		err = fmt.Errorf("%w: text %q", ErrIgnored, evt.Text)
	}
	return
}

func (svc service) dispatchCallback(ctx context.Context, evt Event) (err error) {
	var p Payload
	p, err = DecodePayload(evt.Text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIgnored, err)
	}
	if !svc.allowed(ctx, evt.UserId) {
		_ = svc.notifier.SendText(ctx, evt.ChatId, msgJoin, svc.joinKeyboard())
		return
	}
	switch pt := p.(type) {
	case SeriesPayload:
		svc.sendEpisodes(ctx, evt.ChatId, pt)
	case EpisodePayload:
		svc.sendEpisode(ctx, evt.ChatId, pt)
	}
	return
}

func (svc service) allowed(ctx context.Context, userId int64) (ok bool) {
	r, _ := svc.gate.Check(ctx, userId)
	switch r {
	case membership.ResultAllowed:
		ok = true
	case membership.ResultCheckFailed:
		ok = svc.allowOnFailure
	}
	return
}

func (svc service) sendEpisodes(ctx context.Context, chatId int64, p SeriesPayload) {
	s, err := svc.cat.Lookup(p.Code)
	if err != nil {
		_ = svc.notifier.SendText(ctx, chatId, msgSeriesNotFound, nil)
		return
	}
	kbd := lo.Map(s.Episodes, func(ep catalog.Episode, _ int) notify.Row {
		return notify.Row{
			{
				Label: fmt.Sprintf(fmtEpisodeButton, ep.Label),
				Data: EpisodePayload{
					Code:  s.Code,
					Label: ep.Label,
				}.Encode(),
			},
		}
	})
	_ = svc.notifier.SendText(ctx, chatId, fmt.Sprintf(fmtEpisodes, svc.html.Sanitize(s.Title)), kbd)
}

func (svc service) sendEpisode(ctx context.Context, chatId int64, p EpisodePayload) {
	s, err := svc.cat.Lookup(p.Code)
	if err != nil {
		_ = svc.notifier.SendText(ctx, chatId, msgSeriesNotFound, nil)
		return
	}
	var ep catalog.Episode
	ep, err = s.Episode(p.Label)
	if err != nil {
		_ = svc.notifier.SendText(ctx, chatId, msgEpisodeNotFound, nil)
		return
	}
	title := svc.html.Sanitize(s.Title)
	label := svc.html.Sanitize(ep.Label)
	switch ep.Available() {
	case true:
		_ = svc.notifier.SendVideo(ctx, chatId, ep.Media, fmt.Sprintf(fmtCaption, title, label))
	default:
		_ = svc.notifier.SendText(ctx, chatId, fmt.Sprintf(fmtComingSoon, title, label), nil)
	}
}

func (svc service) seriesKeyboard() (kbd notify.Keyboard) {
	return lo.Map(svc.cat.List(), func(s catalog.Series, _ int) notify.Row {
		return notify.Row{
			{
				Label: s.Title,
				Data: SeriesPayload{
					Code: s.Code,
				}.Encode(),
			},
		}
	})
}

func (svc service) joinKeyboard() (kbd notify.Keyboard) {
	return lo.Map(svc.joinLinks, func(l membership.JoinLink, _ int) notify.Row {
		return notify.Row{
			{
				Label: l.Label,
				Url:   l.Url,
			},
		}
	})
}
