package config

import (
	"errors"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"strings"
	"time"
)

const GateChatsMax = 2

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Api struct {
		Telegram struct {
			Token   string        `envconfig:"BOT_TOKEN" required:"true"`
			Url     string        `envconfig:"API_URL" default:"https://api.telegram.org" required:"true"`
			Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s" required:"true"`
			Webhook WebhookConfig
			Poll    PollConfig
		}
	}
	Gate    GateConfig
	Catalog struct {
		Path string `envconfig:"CATALOG_PATH" default:""`
	}
	Cursor struct {
		Db CursorDbConfig
	}
	Log struct {
		Level int `envconfig:"LOG_LEVEL" default:"-4" required:"true"`
	}
}

type WebhookConfig struct {
	Port      uint16 `envconfig:"PORT" default:"8080" required:"true"`
	Path      string `envconfig:"WEBHOOK_PATH" default:"/webhook" required:"true"`
	Secret    string `envconfig:"WEBHOOK_SECRET" default:""`
	PublicUrl string `envconfig:"WEBHOOK_PUBLIC_URL" default:""`
}

type PollConfig struct {
	Timeout    time.Duration `envconfig:"POLL_TIMEOUT" default:"30s" required:"true"`
	Interval   time.Duration `envconfig:"POLL_INTERVAL" default:"1s" required:"true"`
	BackoffMax time.Duration `envconfig:"POLL_BACKOFF_MAX" default:"1m" required:"true"`
}

type GateConfig struct {
	Chats          []string `envconfig:"GATE_CHATS" default:""`
	InviteLinks    []string `envconfig:"GATE_INVITE_LINKS" default:""`
	AllowOnFailure bool     `envconfig:"GATE_ALLOW_ON_FAILURE" default:"false"`
}

type CursorDbConfig struct {
	Uri      string `envconfig:"CURSOR_DB_URI" default:""`
	Name     string `envconfig:"CURSOR_DB_NAME" default:"series-bot" required:"true"`
	UserName string `envconfig:"CURSOR_DB_USERNAME" default:""`
	Password string `envconfig:"CURSOR_DB_PASSWORD" default:""`
	Table    struct {
		Name string `envconfig:"CURSOR_DB_TABLE_NAME" default:"cursors" required:"true"`
	}
	Tls struct {
		Enabled  bool `envconfig:"CURSOR_DB_TLS_ENABLED" default:"false" required:"true"`
		Insecure bool `envconfig:"CURSOR_DB_TLS_INSECURE" default:"false" required:"true"`
	}
}

func NewConfigFromEnv() (cfg Config, err error) {
	err = envconfig.Process("", &cfg)
	if err == nil {
		err = cfg.validate()
	}
	return
}

func (cfg Config) validate() (err error) {
	gate := cfg.Gate
	switch {
	case strings.TrimSpace(cfg.Api.Telegram.Token) == "":
		err = fmt.Errorf("%w: empty bot token", ErrInvalid)
	case len(gate.Chats) > GateChatsMax:
		err = fmt.Errorf("%w: at most %d gate chats allowed, got %d", ErrInvalid, GateChatsMax, len(gate.Chats))
	case len(gate.InviteLinks) > len(gate.Chats):
		err = fmt.Errorf("%w: %d invite links for %d gate chats", ErrInvalid, len(gate.InviteLinks), len(gate.Chats))
	case cfg.Api.Telegram.Poll.Timeout < 0:
		err = fmt.Errorf("%w: negative poll timeout %s", ErrInvalid, cfg.Api.Telegram.Poll.Timeout)
	case cfg.Api.Telegram.Poll.Interval <= 0:
		err = fmt.Errorf("%w: non-positive poll interval %s", ErrInvalid, cfg.Api.Telegram.Poll.Interval)
	}
	return
}
