package membership

import (
	"context"
	"errors"
	"fmt"
	"gopkg.in/telebot.v3"
)

type Service interface {
	// Check returns ResultCheckFailed together with the cause when the membership could not be resolved.
	Check(ctx context.Context, userId int64) (r Result, err error)
}

// MemberReader is the subset of *telebot.Bot used to resolve a membership.
type MemberReader interface {
	ChatMemberOf(chat, user telebot.Recipient) (*telebot.ChatMember, error)
}

// Chat is either a numeric chat id or a public "@username".
type Chat string

func (c Chat) Recipient() string {
	return string(c)
}

var ErrCheckFailed = errors.New("membership check failed")

var acceptedRoles = map[telebot.MemberStatus]bool{
	telebot.Member:        true,
	telebot.Administrator: true,
	telebot.Creator:       true,
}

type service struct {
	reader MemberReader
	chats  []Chat
}

type bypass struct{}

// NewService returns the gate requiring the membership in every chat.
// Without chats the gate allows everybody.
func NewService(reader MemberReader, chats ...Chat) Service {
	if len(chats) == 0 {
		return bypass{}
	}
	return service{
		reader: reader,
		chats:  chats,
	}
}

func (svc service) Check(_ context.Context, userId int64) (r Result, err error) {
	user := &telebot.User{
		ID: userId,
	}
	r = ResultAllowed
	for _, chat := range svc.chats {
		member, errMember := svc.reader.ChatMemberOf(chat, user)
		switch {
		case errMember != nil:
			r = ResultCheckFailed
			err = errors.Join(err, fmt.Errorf("%w: chat %s, user %d: %s", ErrCheckFailed, chat, userId, errMember))
		case member == nil:
			r = ResultCheckFailed
			err = errors.Join(err, fmt.Errorf("%w: chat %s, user %d: empty response", ErrCheckFailed, chat, userId))
		case !acceptedRoles[member.Role]:
			// a definite refusal outweighs failures of the other chats
			r = ResultDenied
			err = nil
			return
		}
	}
	return
}

func (bypass) Check(_ context.Context, _ int64) (r Result, err error) {
	r = ResultAllowed
	return
}
