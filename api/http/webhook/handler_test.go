package webhook

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gopkg.in/telebot.v3"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type processorMock struct {
	updates []telebot.Update
}

func (pm *processorMock) ProcessUpdate(u telebot.Update) {
	pm.updates = append(pm.updates, u)
}

func TestHandler_Deliver(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]struct {
		secret    string
		token     string
		body      string
		code      int
		resp      string
		processed int
	}{
		"ok": {
			body:      `{"update_id":1,"message":{"message_id":1,"date":0,"from":{"id":7},"chat":{"id":7,"type":"private"},"text":"/start"}}`,
			code:      http.StatusOK,
			resp:      "ok",
			processed: 1,
		},
		"callback": {
			body:      `{"update_id":2,"callback_query":{"id":"cb","from":{"id":7},"data":"series:rick_and_morty"}}`,
			code:      http.StatusOK,
			resp:      "ok",
			processed: 1,
		},
		"unsupported update is still acknowledged": {
			body:      `{"update_id":3,"edited_message":{"message_id":1,"date":0,"chat":{"id":7,"type":"private"},"text":"x"}}`,
			code:      http.StatusOK,
			resp:      "ok",
			processed: 1,
		},
		"empty": {
			code: http.StatusOK,
			resp: "no update",
		},
		"null": {
			body: " null\n",
			code: http.StatusOK,
			resp: "no update",
		},
		"malformed": {
			body: `{"update_id":`,
			code: http.StatusBadRequest,
		},
		"secret ok": {
			secret:    "s3cr3t",
			token:     "s3cr3t",
			body:      `{"update_id":4}`,
			code:      http.StatusOK,
			resp:      "ok",
			processed: 1,
		},
		"secret mismatch": {
			secret: "s3cr3t",
			token:  "guess",
			body:   `{"update_id":5}`,
			code:   http.StatusUnauthorized,
		},
		"secret missing": {
			secret: "s3cr3t",
			body:   `{"update_id":6}`,
			code:   http.StatusUnauthorized,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			proc := &processorMock{}
			r := NewRouter(NewHandler(proc, c.secret), "/webhook")
			req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(c.body))
			if c.token != "" {
				req.Header.Set(keySecretToken, c.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, c.code, w.Code)
			if c.resp != "" {
				assert.Equal(t, c.resp, w.Body.String())
			}
			assert.Len(t, proc.updates, c.processed)
		})
	}
}

func TestHandler_Deliver_TooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	proc := &processorMock{}
	r := NewRouter(NewHandler(proc, ""), "/webhook")
	body := `{"update_id":1,"message":{"message_id":1,"date":0,"chat":{"id":7,"type":"private"},"text":"` + strings.Repeat("x", UpdateLenMax) + `"}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, proc.updates)
}

func TestHandler_Deliver_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	proc := &processorMock{}
	r := NewRouter(NewHandler(proc, ""), "/hook")
	body := `{"update_id":10,"callback_query":{"id":"cb","from":{"id":7},"data":"episode:rick_and_morty:1"}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, proc.updates, 1)
	assert.Equal(t, 10, proc.updates[0].ID)
	assert.Equal(t, int64(7), proc.updates[0].Callback.Sender.ID)
	assert.Equal(t, "episode:rick_and_morty:1", proc.updates[0].Callback.Data)
}

func TestHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&processorMock{}, ""), "/webhook")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bot is running!", w.Body.String())
	//
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
