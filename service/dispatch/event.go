package dispatch

import "fmt"

type Kind int

const (
	KindUndefined Kind = iota
	KindText
	KindCallback
)

func (k Kind) String() (s string) {
	switch k {
	case KindText:
		s = "Text"
	case KindCallback:
		s = "Callback"
	default:
		s = "Undefined"
	}
	return
}

// Event is the part of an inbound update the bot reacts to.
type Event struct {
	// Id correlates the log records of a single update.
	Id     string
	Kind   Kind
	UserId int64
	ChatId int64
	// Text of a message or the data of a callback.
	Text string
}

func (evt Event) String() string {
	return fmt.Sprintf("%s{id=%s, user=%d, chat=%d, text=%q}", evt.Kind, evt.Id, evt.UserId, evt.ChatId, evt.Text)
}
