package notify

import (
	"context"
)

const MockChatIdFail int64 = -1

type Sent struct {
	ChatId   int64
	Text     string
	Keyboard Keyboard
	VideoRef string
}

// ServiceMock records everything sent except to MockChatIdFail.
type ServiceMock struct {
	Sent []Sent
}

func NewServiceMock() *ServiceMock {
	return &ServiceMock{}
}

func (sm *ServiceMock) SendText(_ context.Context, chatId int64, text string, kbd Keyboard) (err error) {
	if chatId == MockChatIdFail {
		return ErrSend
	}
	sm.Sent = append(sm.Sent, Sent{
		ChatId:   chatId,
		Text:     text,
		Keyboard: kbd,
	})
	return
}

func (sm *ServiceMock) SendVideo(_ context.Context, chatId int64, ref, caption string) (err error) {
	if chatId == MockChatIdFail {
		return ErrSend
	}
	sm.Sent = append(sm.Sent, Sent{
		ChatId:   chatId,
		Text:     caption,
		VideoRef: ref,
	})
	return
}
