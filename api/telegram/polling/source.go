package polling

import (
	"context"
	"errors"
	"fmt"
	"github.com/bytedance/sonic"
	"gopkg.in/telebot.v3"
	"time"
)

// Source fetches the updates starting from the offset, waiting up to the timeout for the first one.
type Source interface {
	GetUpdates(ctx context.Context, offset int, timeout time.Duration) (updates []telebot.Update, err error)
}

// RawCaller is the subset of *telebot.Bot used to call the Bot API methods.
type RawCaller interface {
	Raw(method string, payload interface{}) ([]byte, error)
}

const methodGetUpdates = "getUpdates"

var allowedUpdates = []string{
	"message",
	"callback_query",
}

var ErrFetch = errors.New("failed to fetch updates")

type source struct {
	raw RawCaller
}

func NewSource(raw RawCaller) Source {
	return source{
		raw: raw,
	}
}

type getUpdatesResponse struct {
	Result []telebot.Update `json:"result"`
}

func (src source) GetUpdates(ctx context.Context, offset int, timeout time.Duration) (updates []telebot.Update, err error) {
	// the request can not be interrupted, the http client timeout bounds it
	if err = ctx.Err(); err != nil {
		return
	}
	params := map[string]interface{}{
		"offset":          offset,
		"timeout":         int(timeout / time.Second),
		"allowed_updates": allowedUpdates,
	}
	var data []byte
	data, err = src.raw.Raw(methodGetUpdates, params)
	var resp getUpdatesResponse
	if err == nil {
		err = sonic.Unmarshal(data, &resp)
	}
	switch err {
	case nil:
		updates = resp.Result
	default:
		err = fmt.Errorf("%w, offset %d: %s", ErrFetch, offset, err)
	}
	return
}
