package notify

import (
	"context"
	"errors"
	"fmt"
	"gopkg.in/telebot.v3"
	"strings"
)

type Service interface {
	SendText(ctx context.Context, chatId int64, text string, kbd Keyboard) (err error)
	SendVideo(ctx context.Context, chatId int64, ref, caption string) (err error)
}

// Sender is the subset of *telebot.Bot used to deliver the messages.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

var ErrSend = errors.New("failed to send")

type service struct {
	sender Sender
}

func NewService(sender Sender) Service {
	return service{
		sender: sender,
	}
}

func (svc service) SendText(_ context.Context, chatId int64, text string, kbd Keyboard) (err error) {
	opts := []interface{}{
		telebot.ModeHTML,
		telebot.NoPreview,
	}
	if m := kbd.markup(); m != nil {
		opts = append(opts, m)
	}
	_, err = svc.sender.Send(telebot.ChatID(chatId), text, opts...)
	if err != nil {
		err = fmt.Errorf("%w text to %d: %s", ErrSend, chatId, err)
	}
	return
}

func (svc service) SendVideo(_ context.Context, chatId int64, ref, caption string) (err error) {
	v := &telebot.Video{
		Caption: caption,
	}
	switch {
	case strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "http://"):
		v.File = telebot.FromURL(ref)
	default:
		v.File = telebot.File{
			FileID: ref,
		}
	}
	_, err = svc.sender.Send(telebot.ChatID(chatId), v, telebot.ModeHTML)
	if err != nil {
		err = fmt.Errorf("%w video %s to %d: %s", ErrSend, ref, chatId, err)
	}
	return
}
