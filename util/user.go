package util

import (
	"gopkg.in/telebot.v3"
)

// SenderAndChat returns the ids of the update's sender and the chat to reply to.
// The callback of an inline-mode message carries no chat, ok is false then.
func SenderAndChat(tgCtx telebot.Context) (userId, chatId int64, ok bool) {
	sender := tgCtx.Sender()
	chat := tgCtx.Chat()
	if sender != nil && chat != nil {
		userId = sender.ID
		chatId = chat.ID
		ok = true
	}
	return
}
