package dispatch

import (
	"context"
	"github.com/segmentio/ksuid"
	"github.com/seriesbot/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

func TextHandlerFunc(svc Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		userId, chatId, ok := util.SenderAndChat(tgCtx)
		if ok {
			_ = svc.Dispatch(context.TODO(), Event{
				Id:     ksuid.New().String(),
				Kind:   KindText,
				UserId: userId,
				ChatId: chatId,
				Text:   tgCtx.Text(),
			})
		}
		return
	}
}

func CallbackHandlerFunc(svc Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		// stop the client's spinner first, the reply may take a while
		_ = tgCtx.Respond()
		userId, chatId, ok := util.SenderAndChat(tgCtx)
		if ok {
			_ = svc.Dispatch(context.TODO(), Event{
				Id:     ksuid.New().String(),
				Kind:   KindCallback,
				UserId: userId,
				ChatId: chatId,
				Text:   tgCtx.Callback().Data,
			})
		}
		return
	}
}
