package polling

import (
	"context"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestSource_GetUpdates(t *testing.T) {
	var params map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123456:test/getUpdates", r.URL.Path)
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&params))
		w.Header().Set("Content-Type", "application/json")
		switch params["offset"] {
		case float64(13):
			_, _ = w.Write([]byte(`{"ok":false,"error_code":409,"description":"Conflict: terminated by other getUpdates request"}`))
		default:
			_, _ = w.Write([]byte(`{"ok":true,"result":[
				{"update_id":10,"message":{"message_id":1,"date":0,"from":{"id":7},"chat":{"id":7,"type":"private"},"text":"/start"}},
				{"update_id":11,"callback_query":{"id":"cb","from":{"id":7},"data":"series:rick_and_morty"}}
			]}`))
		}
	}))
	defer srv.Close()
	b, err := telebot.NewBot(telebot.Settings{
		URL:     srv.URL,
		Token:   "123456:test",
		Offline: true,
	})
	require.Nil(t, err)
	src := NewSourceLogging(NewSource(b), slog.New(slog.NewTextHandler(os.Stdout, nil)))
	//
	updates, err := src.GetUpdates(context.TODO(), 10, 30*time.Second)
	require.Nil(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, 10, updates[0].ID)
	assert.Equal(t, "/start", updates[0].Message.Text)
	assert.Equal(t, 11, updates[1].ID)
	assert.Equal(t, "series:rick_and_morty", updates[1].Callback.Data)
	assert.Equal(t, float64(30), params["timeout"])
	assert.Equal(t, []interface{}{"message", "callback_query"}, params["allowed_updates"])
	//
	updates, err = src.GetUpdates(context.TODO(), 13, time.Second)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Empty(t, updates)
	//
	ctx, cancel := context.WithCancel(context.TODO())
	cancel()
	_, err = src.GetUpdates(ctx, 10, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
