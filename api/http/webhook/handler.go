package webhook

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"gopkg.in/telebot.v3"
	"io"
	"net/http"
)

type Handler interface {
	Deliver(ctx *gin.Context)
	Health(ctx *gin.Context)
}

// Processor handles a single update, *telebot.Bot in synchronous mode does.
type Processor interface {
	ProcessUpdate(u telebot.Update)
}

// UpdateLenMax bounds the request body, an update is far smaller.
const UpdateLenMax = 1 << 20

const keySecretToken = "X-Telegram-Bot-Api-Secret-Token"
const respOk = "ok"
const respNoUpdate = "no update"
const respHealth = "Bot is running!"

var bodyNull = []byte("null")

type handler struct {
	proc   Processor
	secret string
}

// NewHandler accepts any update when the secret is empty.
func NewHandler(proc Processor, secret string) Handler {
	return handler{
		proc:   proc,
		secret: secret,
	}
}

func (h handler) Deliver(ctx *gin.Context) {
	if h.secret != "" {
		token := ctx.GetHeader(keySecretToken)
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
			ctx.String(http.StatusUnauthorized, "invalid secret token")
			return
		}
	}
	defer ctx.Request.Body.Close()
	data, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, UpdateLenMax))
	var errTooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &errTooLarge):
		ctx.String(http.StatusRequestEntityTooLarge, fmt.Sprintf("request payload exceeds %d bytes", errTooLarge.Limit))
		return
	case err != nil:
		ctx.String(http.StatusBadRequest, fmt.Sprintf("failed to read the request payload: %s", err))
		return
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, bodyNull) {
		ctx.String(http.StatusOK, respNoUpdate)
		return
	}
	var u telebot.Update
	err = sonic.Unmarshal(data, &u)
	if err != nil {
		ctx.String(http.StatusBadRequest, fmt.Sprintf("failed to deserialize the request payload: %s", err))
		return
	}
	h.proc.ProcessUpdate(u)
	ctx.String(http.StatusOK, respOk)
}

func (h handler) Health(ctx *gin.Context) {
	ctx.String(http.StatusOK, respHealth)
}
